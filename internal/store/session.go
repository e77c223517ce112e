package store

import (
	"context"

	"github.com/quietpage/stacks-api/internal/domain"
)

// SessionStore defines the interface for server-side session persistence.
// Sessions are ephemeral: created at login, deleted at logout, and evicted
// once their own expiry lapses.
type SessionStore interface {
	// Create saves a new session entry.
	Create(ctx context.Context, session *domain.Session) error

	// Get retrieves a session by ID. Returns ErrSessionNotFound if the
	// session does not exist or has expired.
	Get(ctx context.Context, id string) (*domain.Session, error)

	// Delete removes a session by ID. Deleting an absent session is not an
	// error; logout is idempotent.
	Delete(ctx context.Context, id string) error
}
