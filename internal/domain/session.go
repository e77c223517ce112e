package domain

import (
	"crypto/rand"
	"encoding/hex"
	"fmt"
	"time"

	"github.com/google/uuid"
)

// Session is the server-held per-client state created at login. It binds the
// issued access token to login metadata and is keyed by a random session ID
// carried in an HTTP-only cookie.
//
// A session outlives its token: the session entry expires after the
// configured session lifetime (24h by default) while the embedded token stops
// being valid after the shorter token lifetime (1h). The authenticated-route
// gate therefore checks token validity, never mere session presence.
type Session struct {
	ID        string
	UserID    uuid.UUID
	Username  string
	Token     string
	LoginAt   time.Time
	ExpiresAt time.Time
}

// NewSession creates a session with a cryptographically random 64-character
// hex ID.
func NewSession(userID uuid.UUID, username, token string, lifetime time.Duration) (*Session, error) {
	id, err := generateSessionID()
	if err != nil {
		return nil, fmt.Errorf("failed to generate session ID: %w", err)
	}

	now := time.Now().UTC()
	return &Session{
		ID:        id,
		UserID:    userID,
		Username:  username,
		Token:     token,
		LoginAt:   now,
		ExpiresAt: now.Add(lifetime),
	}, nil
}

// Expired reports whether the session entry itself has lapsed at the given
// instant. Token expiry is judged separately by the token service.
func (s *Session) Expired(now time.Time) bool {
	return now.After(s.ExpiresAt)
}

func generateSessionID() (string, error) {
	b := make([]byte, 32)
	if _, err := rand.Read(b); err != nil {
		return "", err
	}
	return hex.EncodeToString(b), nil
}
