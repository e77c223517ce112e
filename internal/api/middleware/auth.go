package middleware

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/quietpage/stacks-api/internal/api/shared"
	"github.com/quietpage/stacks-api/internal/service/auth"
	"github.com/quietpage/stacks-api/internal/store"
)

// SessionGate guards the authenticated route prefix. A request must carry a
// cookie referencing a live session entry (else 401 "no active session"),
// and the token bound into that session must still verify (else 403,
// distinguishing expired from otherwise invalid). The session entry alone is
// never enough: it outlives the token, so a stale session yields 403 until
// the user logs in again.
type SessionGate struct {
	sessions   store.SessionStore
	jwtService auth.JWTService
	signer     *auth.CookieSigner
}

// NewSessionGate creates a SessionGate with the given dependencies.
func NewSessionGate(
	sessions store.SessionStore,
	jwtService auth.JWTService,
	signer *auth.CookieSigner,
) *SessionGate {
	return &SessionGate{
		sessions:   sessions,
		jwtService: jwtService,
		signer:     signer,
	}
}

// Authenticate validates the session cookie and its bound token, then adds
// the acting identity to the request context for authorized requests.
func (g *SessionGate) Authenticate(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		cookie, err := r.Cookie(auth.SessionCookieName)
		if err != nil || cookie.Value == "" {
			shared.RespondWithError(w, r, http.StatusUnauthorized, "No active session, please log in")
			return
		}

		sessionID, err := g.signer.Decode(cookie.Value)
		if err != nil {
			shared.RespondWithError(w, r, http.StatusUnauthorized, "No active session, please log in")
			return
		}

		session, err := g.sessions.Get(r.Context(), sessionID)
		if err != nil {
			if errors.Is(err, store.ErrSessionNotFound) {
				shared.RespondWithError(w, r, http.StatusUnauthorized, "No active session, please log in")
				return
			}
			slog.Error("failed to load session", "error", err)
			shared.RespondWithError(w, r, http.StatusInternalServerError, "Authentication error")
			return
		}

		claims, err := g.jwtService.ValidateToken(r.Context(), session.Token)
		if err != nil {
			switch {
			case errors.Is(err, auth.ErrExpiredToken):
				shared.RespondWithError(w, r, http.StatusForbidden, "Token expired, please log in again")
			case errors.Is(err, auth.ErrInvalidToken), errors.Is(err, auth.ErrTokenNotYetValid):
				shared.RespondWithError(w, r, http.StatusForbidden, "Invalid token")
			default:
				slog.Error("failed to validate token", "error", err)
				shared.RespondWithError(w, r, http.StatusInternalServerError, "Authentication error")
			}
			return
		}

		ctx := shared.WithIdentity(r.Context(), shared.Identity{
			UserID:   claims.UserID,
			Username: claims.Username,
			LoginAt:  session.LoginAt,
		})

		next.ServeHTTP(w, r.WithContext(ctx))
	})
}
