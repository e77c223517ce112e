package api

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/quietpage/stacks-api/internal/api/shared"
	"github.com/quietpage/stacks-api/internal/platform/logger"
)

// identityFromRequest extracts the authenticated identity placed in the
// context by the session gate. It writes the error response itself when no
// identity is present, which only happens if a handler is mounted outside
// the gate by mistake.
func identityFromRequest(w http.ResponseWriter, r *http.Request) (shared.Identity, bool) {
	id, ok := shared.IdentityFromContext(r.Context())
	if !ok {
		log := logger.FromContext(r.Context())
		log.Warn("identity not found in request context", "path", r.URL.Path)
		shared.RespondWithError(w, r, http.StatusUnauthorized, "No active session, please log in")
		return shared.Identity{}, false
	}
	return id, true
}

// pathParam extracts a URL path parameter, writing a 400 response when the
// parameter is empty.
func pathParam(w http.ResponseWriter, r *http.Request, name string) (string, bool) {
	value := chi.URLParam(r, name)
	if value == "" {
		shared.RespondWithError(w, r, http.StatusBadRequest, "Missing "+name+" parameter")
		return "", false
	}
	return value, true
}
