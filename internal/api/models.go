package api

import "time"

// Common request/response structures

// RegisterRequest defines the payload for the user registration endpoint.
// Username shape (3-30 alphanumeric/underscore) is enforced by the domain
// validator; the tags here catch missing fields and gross length violations
// before the domain layer sees them.
type RegisterRequest struct {
	Username string `json:"username" validate:"required,min=3,max=30"`
	Password string `json:"password" validate:"required,min=6,max=100"`
}

// LoginRequest defines the payload for the login endpoint.
type LoginRequest struct {
	Username string `json:"username" validate:"required"`
	Password string `json:"password" validate:"required"`
}

// ReviewRequest defines the payload for the review upsert endpoint.
type ReviewRequest struct {
	Review string `json:"review"`
}

// RegisterResponse echoes the created user.
type RegisterResponse struct {
	Username     string    `json:"username"`
	RegisteredAt time.Time `json:"registered_at"`
}

// LoginResponse defines the successful response for the login endpoint.
type LoginResponse struct {
	// Token is the JWT accepted by the authenticated routes.
	Token string `json:"token"`

	// ExpiresAt is the ISO 8601 timestamp when the token expires. The
	// session cookie outlives it; a fresh login is needed after this time.
	ExpiresAt string `json:"expires_at"`
}

// ProfileResponse describes the authenticated user.
type ProfileResponse struct {
	Username     string    `json:"username"`
	RegisteredAt time.Time `json:"registered_at"`
	LastLogin    time.Time `json:"last_login"`
}

// ReviewActionResponse reports the outcome of a review write or delete.
type ReviewActionResponse struct {
	ISBN string `json:"isbn"`

	// Action is "added", "updated", or "deleted".
	Action string `json:"action"`

	// Reviews is the book's full reviews map after the operation.
	Reviews map[string]string `json:"reviews"`
}

// HealthResponse reports process liveness.
type HealthResponse struct {
	Status    string `json:"status"`
	Uptime    string `json:"uptime"`
	Timestamp string `json:"timestamp"`
}
