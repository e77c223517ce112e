package api

import (
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/quietpage/stacks-api/internal/api/shared"
	"github.com/quietpage/stacks-api/internal/domain"
	"github.com/quietpage/stacks-api/internal/metrics"
	"github.com/quietpage/stacks-api/internal/service/auth"
	"github.com/quietpage/stacks-api/internal/store"
)

// AuthHandler handles registration, login, logout, and profile requests.
type AuthHandler struct {
	userStore       store.UserStore
	sessionStore    store.SessionStore
	jwtService      auth.JWTService
	hasher          auth.PasswordHasher
	signer          *auth.CookieSigner
	sessionLifetime time.Duration
	collector       *metrics.Collector
}

// NewAuthHandler creates a new AuthHandler with the given dependencies.
func NewAuthHandler(
	userStore store.UserStore,
	sessionStore store.SessionStore,
	jwtService auth.JWTService,
	hasher auth.PasswordHasher,
	signer *auth.CookieSigner,
	sessionLifetime time.Duration,
	collector *metrics.Collector,
) *AuthHandler {
	return &AuthHandler{
		userStore:       userStore,
		sessionStore:    sessionStore,
		jwtService:      jwtService,
		hasher:          hasher,
		signer:          signer,
		sessionLifetime: sessionLifetime,
		collector:       collector,
	}
}

// Register handles POST /register.
func (h *AuthHandler) Register(w http.ResponseWriter, r *http.Request) {
	var req RegisterRequest

	if err := shared.DecodeJSON(r, &req); err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, "Invalid request format")
		return
	}

	if err := shared.ValidateRequest(req); err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, "Username and password are required")
		return
	}

	user, err := domain.NewUser(req.Username, req.Password)
	if err != nil {
		HandleAPIError(w, r, err, "")
		return
	}

	if err := h.userStore.Create(r.Context(), user); err != nil {
		if errors.Is(err, store.ErrUsernameExists) {
			shared.RespondWithError(w, r, http.StatusConflict, "Username already taken")
			return
		}
		slog.Error("failed to create user", "error", err, "username", req.Username)
		HandleAPIError(w, r, err, "Failed to register user")
		return
	}

	slog.Info("user registered", "username", user.Username)

	shared.RespondWithJSON(w, r, http.StatusCreated, "User registered", RegisterResponse{
		Username:     user.Username,
		RegisteredAt: user.RegisteredAt,
	})
}

// Login handles POST /customer/login. On success it issues a token, binds
// it into a fresh server-side session, and sets the session cookie.
func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req LoginRequest

	if err := shared.DecodeJSON(r, &req); err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, "Invalid request format")
		return
	}

	if err := shared.ValidateRequest(req); err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, "Username and password are required")
		return
	}

	// Reject malformed usernames before touching the store; they can never
	// match a stored record.
	if !domain.IsValidUsername(req.Username) {
		HandleAPIError(w, r, domain.ErrInvalidUsername, "")
		return
	}

	user, err := h.userStore.GetByUsername(r.Context(), req.Username)
	if err != nil {
		if errors.Is(err, store.ErrUserNotFound) {
			h.collector.RecordAuthFailure()
			shared.RespondWithError(w, r, http.StatusUnauthorized, "Invalid credentials")
			return
		}
		slog.Error("failed to get user", "error", err, "username", req.Username)
		HandleAPIError(w, r, err, "Failed to authenticate user")
		return
	}

	if err := h.hasher.Compare(user.HashedPassword, req.Password); err != nil {
		h.collector.RecordAuthFailure()
		shared.RespondWithError(w, r, http.StatusUnauthorized, "Invalid credentials")
		return
	}

	token, err := h.jwtService.GenerateToken(r.Context(), user.ID, user.Username)
	if err != nil {
		slog.Error("failed to generate token", "error", err, "username", user.Username)
		shared.RespondWithError(w, r, http.StatusInternalServerError, "Failed to generate authentication token")
		return
	}

	session, err := domain.NewSession(user.ID, user.Username, token, h.sessionLifetime)
	if err != nil {
		slog.Error("failed to create session", "error", err, "username", user.Username)
		shared.RespondWithError(w, r, http.StatusInternalServerError, "Failed to create session")
		return
	}

	if err := h.sessionStore.Create(r.Context(), session); err != nil {
		slog.Error("failed to store session", "error", err, "username", user.Username)
		shared.RespondWithError(w, r, http.StatusInternalServerError, "Failed to create session")
		return
	}

	h.setSessionCookie(w, session)

	slog.Info("user logged in", "username", user.Username)

	expiresAt := session.LoginAt.Add(h.jwtService.TokenLifetime())
	shared.RespondWithJSON(w, r, http.StatusOK, "Login successful", LoginResponse{
		Token:     token,
		ExpiresAt: expiresAt.Format(time.RFC3339),
	})
}

// Logout handles POST /customer/logout. Idempotent: logging out without a
// session still succeeds and clears the cookie.
func (h *AuthHandler) Logout(w http.ResponseWriter, r *http.Request) {
	if cookie, err := r.Cookie(auth.SessionCookieName); err == nil && cookie.Value != "" {
		if sessionID, err := h.signer.Decode(cookie.Value); err == nil {
			if err := h.sessionStore.Delete(r.Context(), sessionID); err != nil {
				slog.Error("failed to delete session", "error", err)
				shared.RespondWithError(w, r, http.StatusInternalServerError, "Failed to log out")
				return
			}
		}
	}

	h.clearSessionCookie(w)

	shared.RespondWithJSON(w, r, http.StatusOK, "Logged out", nil)
}

// Profile handles GET /customer/auth/profile.
func (h *AuthHandler) Profile(w http.ResponseWriter, r *http.Request) {
	identity, ok := identityFromRequest(w, r)
	if !ok {
		return
	}

	user, err := h.userStore.GetByUsername(r.Context(), identity.Username)
	if err != nil {
		slog.Error("failed to load profile", "error", err, "username", identity.Username)
		HandleAPIError(w, r, err, "")
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, "Profile retrieved", ProfileResponse{
		Username:     user.Username,
		RegisteredAt: user.RegisteredAt,
		LastLogin:    identity.LoginAt,
	})
}

func (h *AuthHandler) setSessionCookie(w http.ResponseWriter, session *domain.Session) {
	http.SetCookie(w, &http.Cookie{
		Name:     auth.SessionCookieName,
		Value:    h.signer.Encode(session.ID),
		Path:     "/",
		MaxAge:   int(h.sessionLifetime.Seconds()),
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})
}

func (h *AuthHandler) clearSessionCookie(w http.ResponseWriter) {
	http.SetCookie(w, &http.Cookie{
		Name:     auth.SessionCookieName,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})
}
