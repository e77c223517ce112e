package auth

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"strings"
)

// SessionCookieName is the cookie carrying the signed session ID.
const SessionCookieName = "stacks_session"

// CookieSigner authenticates session cookie values with HMAC-SHA256 so a
// client cannot fabricate or splice session IDs. The session secret is
// distinct from the JWT signing secret; the two rotate independently.
type CookieSigner struct {
	secret []byte
}

// NewCookieSigner creates a signer from the configured session secret.
func NewCookieSigner(secret string) (*CookieSigner, error) {
	if len(secret) < 32 {
		return nil, fmt.Errorf("session secret must be at least 32 characters")
	}
	return &CookieSigner{secret: []byte(secret)}, nil
}

// Encode returns the cookie value for a session ID: "<id>.<hex signature>".
func (c *CookieSigner) Encode(sessionID string) string {
	return sessionID + "." + c.sign(sessionID)
}

// Decode verifies a cookie value and returns the embedded session ID.
// Returns ErrNoSession for malformed or tampered values; the gate treats
// those the same as a missing cookie.
func (c *CookieSigner) Decode(value string) (string, error) {
	id, sig, ok := strings.Cut(value, ".")
	if !ok || id == "" {
		return "", ErrNoSession
	}

	expected := c.sign(id)
	if !hmac.Equal([]byte(sig), []byte(expected)) {
		return "", ErrNoSession
	}

	return id, nil
}

func (c *CookieSigner) sign(sessionID string) string {
	mac := hmac.New(sha256.New, c.secret)
	mac.Write([]byte(sessionID))
	return hex.EncodeToString(mac.Sum(nil))
}
