package api

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/quietpage/stacks-api/internal/service/auth"
)

func TestRegister(t *testing.T) {
	t.Parallel()

	t.Run("valid registration", func(t *testing.T) {
		t.Parallel()
		env := newTestEnv(t)

		rec := env.do(t, http.MethodPost, "/register", RegisterRequest{
			Username: "alice",
			Password: "secret123",
		})
		require.Equal(t, http.StatusCreated, rec.Code)

		var resp RegisterResponse
		envelope := decodeData(t, rec, &resp)
		assert.True(t, envelope.Success)
		assert.Equal(t, "alice", resp.Username)
		assert.False(t, resp.RegisteredAt.IsZero())
	})

	t.Run("duplicate username conflicts", func(t *testing.T) {
		t.Parallel()
		env := newTestEnv(t)
		env.register(t, "bob", "secret123")

		rec := env.do(t, http.MethodPost, "/register", RegisterRequest{
			Username: "bob",
			Password: "otherpass",
		})
		require.Equal(t, http.StatusConflict, rec.Code)

		envelope := decodeEnvelope(t, rec)
		assert.Equal(t, "Username already taken", envelope.Message)
	})

	t.Run("missing fields", func(t *testing.T) {
		t.Parallel()
		env := newTestEnv(t)

		rec := env.do(t, http.MethodPost, "/register", RegisterRequest{Username: "carol"})
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("username with illegal characters", func(t *testing.T) {
		t.Parallel()
		env := newTestEnv(t)

		rec := env.do(t, http.MethodPost, "/register", RegisterRequest{
			Username: "not ok!",
			Password: "secret123",
		})
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("password too short", func(t *testing.T) {
		t.Parallel()
		env := newTestEnv(t)

		rec := env.do(t, http.MethodPost, "/register", RegisterRequest{
			Username: "dave",
			Password: "short",
		})
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("malformed body", func(t *testing.T) {
		t.Parallel()
		env := newTestEnv(t)

		rec := env.do(t, http.MethodPost, "/register", "not-an-object")
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})
}

func TestLogin(t *testing.T) {
	t.Parallel()

	t.Run("valid credentials", func(t *testing.T) {
		t.Parallel()
		env := newTestEnv(t)
		env.register(t, "alice", "secret123")

		rec := env.do(t, http.MethodPost, "/customer/login", LoginRequest{
			Username: "alice",
			Password: "secret123",
		})
		require.Equal(t, http.StatusOK, rec.Code)

		var resp LoginResponse
		decodeData(t, rec, &resp)
		assert.NotEmpty(t, resp.Token)
		assert.NotEmpty(t, resp.ExpiresAt)

		// A signed session cookie accompanies the token.
		cookies := rec.Result().Cookies()
		require.Len(t, cookies, 1)
		assert.Equal(t, auth.SessionCookieName, cookies[0].Name)
		assert.True(t, cookies[0].HttpOnly)

		_, err := env.signer.Decode(cookies[0].Value)
		assert.NoError(t, err)
	})

	t.Run("wrong password", func(t *testing.T) {
		t.Parallel()
		env := newTestEnv(t)
		env.register(t, "bob", "secret123")

		rec := env.do(t, http.MethodPost, "/customer/login", LoginRequest{
			Username: "bob",
			Password: "wrong-pass",
		})
		require.Equal(t, http.StatusUnauthorized, rec.Code)

		envelope := decodeEnvelope(t, rec)
		assert.Equal(t, "Invalid credentials", envelope.Message)
	})

	t.Run("unknown username", func(t *testing.T) {
		t.Parallel()
		env := newTestEnv(t)

		rec := env.do(t, http.MethodPost, "/customer/login", LoginRequest{
			Username: "nobody",
			Password: "secret123",
		})
		require.Equal(t, http.StatusUnauthorized, rec.Code)

		// Unknown user and wrong password read the same to the caller.
		envelope := decodeEnvelope(t, rec)
		assert.Equal(t, "Invalid credentials", envelope.Message)
	})

	t.Run("malformed username short-circuits", func(t *testing.T) {
		t.Parallel()
		env := newTestEnv(t)

		rec := env.do(t, http.MethodPost, "/customer/login", LoginRequest{
			Username: "has spaces!",
			Password: "secret123",
		})
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("missing fields", func(t *testing.T) {
		t.Parallel()
		env := newTestEnv(t)

		rec := env.do(t, http.MethodPost, "/customer/login", LoginRequest{Username: "alice"})
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})
}

func TestLogout(t *testing.T) {
	t.Parallel()

	t.Run("invalidates the session", func(t *testing.T) {
		t.Parallel()
		env := newTestEnv(t)
		cookie := env.registerAndLogin(t, "alice", "secret123")

		rec := env.do(t, http.MethodPost, "/customer/logout", nil, cookie)
		require.Equal(t, http.StatusOK, rec.Code)

		// The session is gone; authenticated routes reject the old cookie.
		rec = env.do(t, http.MethodGet, "/customer/auth/profile", nil, cookie)
		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})

	t.Run("without a session still succeeds", func(t *testing.T) {
		t.Parallel()
		env := newTestEnv(t)

		rec := env.do(t, http.MethodPost, "/customer/logout", nil)
		assert.Equal(t, http.StatusOK, rec.Code)
	})
}

func TestProfile(t *testing.T) {
	t.Parallel()

	t.Run("authenticated", func(t *testing.T) {
		t.Parallel()
		env := newTestEnv(t)
		cookie := env.registerAndLogin(t, "alice", "secret123")

		rec := env.do(t, http.MethodGet, "/customer/auth/profile", nil, cookie)
		require.Equal(t, http.StatusOK, rec.Code)

		var resp ProfileResponse
		decodeData(t, rec, &resp)
		assert.Equal(t, "alice", resp.Username)
		assert.False(t, resp.RegisteredAt.IsZero())
		assert.False(t, resp.LastLogin.IsZero())
	})

	t.Run("unauthenticated", func(t *testing.T) {
		t.Parallel()
		env := newTestEnv(t)

		rec := env.do(t, http.MethodGet, "/customer/auth/profile", nil)
		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})
}
