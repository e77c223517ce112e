package api

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/require"

	"github.com/quietpage/stacks-api/internal/api/middleware"
	"github.com/quietpage/stacks-api/internal/metrics"
	"github.com/quietpage/stacks-api/internal/platform/memory"
	"github.com/quietpage/stacks-api/internal/service/auth"
	"github.com/quietpage/stacks-api/internal/store"
)

const (
	testJWTSecret     = "test-secret-that-is-long-enough-for-testing"
	testSessionSecret = "session-secret-that-is-long-enough"
)

// testEnv wires the handlers onto a router the same way the server does,
// backed by fresh in-memory stores per test.
type testEnv struct {
	router   chi.Router
	sessions store.SessionStore
	catalog  store.CatalogStore
	jwt      auth.JWTService
	signer   *auth.CookieSigner
	timeFunc func() time.Time
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()

	now := time.Now()
	env := &testEnv{
		timeFunc: func() time.Time { return now },
	}

	hasher := auth.NewBcryptHasher()
	users := memory.NewUserStore(hasher)
	env.sessions = memory.NewSessionStore(0)
	env.catalog = memory.NewCatalogStore(memory.SeedBooks())
	env.jwt = auth.NewTestJWTService(testJWTSecret, time.Hour, func() time.Time {
		return env.timeFunc()
	})

	signer, err := auth.NewCookieSigner(testSessionSecret)
	require.NoError(t, err)
	env.signer = signer

	collector := metrics.NewCollector(prometheus.NewRegistry())
	gate := middleware.NewSessionGate(env.sessions, env.jwt, env.signer)

	books := NewBookHandler(env.catalog)
	reviews := NewReviewHandler(env.catalog, collector)
	authHandler := NewAuthHandler(users, env.sessions, env.jwt, hasher, env.signer, 24*time.Hour, collector)

	r := chi.NewRouter()
	r.Get("/", books.ListBooks)
	r.Get("/isbn/{isbn}", books.GetBookByISBN)
	r.Get("/author/{author}", books.SearchByAuthor)
	r.Get("/title/{title}", books.SearchByTitle)
	r.Get("/review/{isbn}", books.ListReviews)
	r.Post("/register", authHandler.Register)
	r.Route("/customer", func(r chi.Router) {
		r.Post("/login", authHandler.Login)
		r.Post("/logout", authHandler.Logout)
		r.Route("/auth", func(r chi.Router) {
			r.Use(gate.Authenticate)
			r.Put("/review/{isbn}", reviews.UpsertReview)
			r.Delete("/review/{isbn}", reviews.DeleteReview)
			r.Get("/profile", authHandler.Profile)
		})
	})
	env.router = r

	return env
}

// testEnvelope mirrors the response envelope for assertions; Data stays raw
// so each test can decode its own payload shape.
type testEnvelope struct {
	Success bool            `json:"success"`
	Message string          `json:"message"`
	Data    json.RawMessage `json:"data"`
	Error   string          `json:"error"`
}

func (e *testEnv) do(t *testing.T, method, path string, body interface{}, cookies ...*http.Cookie) *httptest.ResponseRecorder {
	t.Helper()

	var reader io.Reader
	if body != nil {
		encoded, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(encoded)
	}

	req := httptest.NewRequest(method, path, reader)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	for _, c := range cookies {
		req.AddCookie(c)
	}

	rec := httptest.NewRecorder()
	e.router.ServeHTTP(rec, req)
	return rec
}

func decodeEnvelope(t *testing.T, rec *httptest.ResponseRecorder) testEnvelope {
	t.Helper()

	var envelope testEnvelope
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&envelope))
	return envelope
}

func decodeData(t *testing.T, rec *httptest.ResponseRecorder, out interface{}) testEnvelope {
	t.Helper()

	envelope := decodeEnvelope(t, rec)
	require.NotEmpty(t, envelope.Data)
	require.NoError(t, json.Unmarshal(envelope.Data, out))
	return envelope
}

func (e *testEnv) register(t *testing.T, username, password string) {
	t.Helper()

	rec := e.do(t, http.MethodPost, "/register", RegisterRequest{
		Username: username,
		Password: password,
	})
	require.Equal(t, http.StatusCreated, rec.Code)
}

// login registers nothing; callers register first. Returns the session
// cookie issued by the login response.
func (e *testEnv) login(t *testing.T, username, password string) *http.Cookie {
	t.Helper()

	rec := e.do(t, http.MethodPost, "/customer/login", LoginRequest{
		Username: username,
		Password: password,
	})
	require.Equal(t, http.StatusOK, rec.Code)

	for _, c := range rec.Result().Cookies() {
		if c.Name == auth.SessionCookieName {
			return c
		}
	}
	t.Fatal("login response did not set a session cookie")
	return nil
}

func (e *testEnv) registerAndLogin(t *testing.T, username, password string) *http.Cookie {
	t.Helper()
	e.register(t, username, password)
	return e.login(t, username, password)
}
