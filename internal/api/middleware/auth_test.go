package middleware

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/quietpage/stacks-api/internal/api/shared"
	"github.com/quietpage/stacks-api/internal/domain"
	"github.com/quietpage/stacks-api/internal/platform/memory"
	"github.com/quietpage/stacks-api/internal/service/auth"
	"github.com/quietpage/stacks-api/internal/store"
)

const (
	gateTestJWTSecret     = "test-secret-that-is-long-enough-for-testing"
	gateTestSessionSecret = "session-secret-that-is-long-enough"
)

// gateFixture holds a SessionGate with its stores, plus a clock the tests
// can move forward to expire tokens without sleeping.
type gateFixture struct {
	gate     *SessionGate
	sessions store.SessionStore
	signer   *auth.CookieSigner
	jwt      auth.JWTService
	now      time.Time
}

func newGateFixture(t *testing.T) *gateFixture {
	t.Helper()

	f := &gateFixture{now: time.Date(2025, 1, 1, 12, 0, 0, 0, time.UTC)}
	f.sessions = memory.NewSessionStore(0)
	f.jwt = auth.NewTestJWTService(gateTestJWTSecret, time.Hour, func() time.Time {
		return f.now
	})

	signer, err := auth.NewCookieSigner(gateTestSessionSecret)
	require.NoError(t, err)
	f.signer = signer

	f.gate = NewSessionGate(f.sessions, f.jwt, f.signer)
	return f
}

// startSession mints a token, binds it into a stored session, and returns
// the signed cookie a logged-in client would hold.
func (f *gateFixture) startSession(t *testing.T, username string) *http.Cookie {
	t.Helper()

	token, err := f.jwt.GenerateToken(context.Background(), uuid.New(), username)
	require.NoError(t, err)

	session, err := domain.NewSession(uuid.New(), username, token, 24*time.Hour)
	require.NoError(t, err)
	require.NoError(t, f.sessions.Create(context.Background(), session))

	return &http.Cookie{
		Name:  auth.SessionCookieName,
		Value: f.signer.Encode(session.ID),
	}
}

func (f *gateFixture) serve(t *testing.T, cookie *http.Cookie, next http.HandlerFunc) *httptest.ResponseRecorder {
	t.Helper()

	req := httptest.NewRequest(http.MethodGet, "/customer/auth/profile", nil)
	if cookie != nil {
		req.AddCookie(cookie)
	}
	rec := httptest.NewRecorder()
	f.gate.Authenticate(next).ServeHTTP(rec, req)
	return rec
}

func TestSessionGateAuthorizedRequest(t *testing.T) {
	t.Parallel()

	f := newGateFixture(t)
	cookie := f.startSession(t, "alice")

	var gotIdentity shared.Identity
	rec := f.serve(t, cookie, func(w http.ResponseWriter, r *http.Request) {
		identity, ok := shared.IdentityFromContext(r.Context())
		require.True(t, ok)
		gotIdentity = identity
		w.WriteHeader(http.StatusOK)
	})

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "alice", gotIdentity.Username)
	assert.NotEqual(t, uuid.Nil, gotIdentity.UserID)
}

func TestSessionGateRejectsUnauthenticated(t *testing.T) {
	t.Parallel()

	f := newGateFixture(t)

	tests := []struct {
		name   string
		cookie *http.Cookie
	}{
		{
			name:   "no cookie",
			cookie: nil,
		},
		{
			name: "tampered cookie",
			cookie: &http.Cookie{
				Name:  auth.SessionCookieName,
				Value: "forged.deadbeef",
			},
		},
		{
			name: "cookie for a session that no longer exists",
			cookie: &http.Cookie{
				Name:  auth.SessionCookieName,
				Value: f.signer.Encode("vanished-session"),
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := f.serve(t, tt.cookie, func(w http.ResponseWriter, r *http.Request) {
				t.Error("handler must not run for unauthenticated request")
			})
			assert.Equal(t, http.StatusUnauthorized, rec.Code)
		})
	}
}

func TestSessionGateRejectsExpiredToken(t *testing.T) {
	t.Parallel()

	f := newGateFixture(t)
	cookie := f.startSession(t, "alice")

	// The session outlives the token: two hours later the session entry is
	// still live, but the one-hour token inside it is not.
	f.now = f.now.Add(2 * time.Hour)

	rec := f.serve(t, cookie, func(w http.ResponseWriter, r *http.Request) {
		t.Error("handler must not run for expired token")
	})

	assert.Equal(t, http.StatusForbidden, rec.Code)
	assert.Contains(t, rec.Body.String(), "Token expired")
}

func TestSessionGateRejectsForeignToken(t *testing.T) {
	t.Parallel()

	f := newGateFixture(t)

	// Token signed with a different key, bound into an otherwise valid session.
	foreign := auth.NewTestJWTService("another-secret-that-is-long-enough-too", time.Hour, func() time.Time {
		return f.now
	})
	token, err := foreign.GenerateToken(context.Background(), uuid.New(), "mallory")
	require.NoError(t, err)

	session, err := domain.NewSession(uuid.New(), "mallory", token, 24*time.Hour)
	require.NoError(t, err)
	require.NoError(t, f.sessions.Create(context.Background(), session))

	cookie := &http.Cookie{
		Name:  auth.SessionCookieName,
		Value: f.signer.Encode(session.ID),
	}

	rec := f.serve(t, cookie, func(w http.ResponseWriter, r *http.Request) {
		t.Error("handler must not run for invalid token")
	})

	assert.Equal(t, http.StatusForbidden, rec.Code)
	assert.Contains(t, rec.Body.String(), "Invalid token")
}
