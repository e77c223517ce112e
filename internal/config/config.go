package config

// Config holds all application configuration.
// It organizes settings into logical groups for better maintainability.
type Config struct {
	Server    ServerConfig    `mapstructure:"server"     validate:"required"`
	Auth      AuthConfig      `mapstructure:"auth"       validate:"required"`
	RateLimit RateLimitConfig `mapstructure:"rate_limit" validate:"required"`
}

// ServerConfig contains all server-related configuration settings.
type ServerConfig struct {
	Port     int    `mapstructure:"port"      validate:"required,gt=0,lt=65536"`
	LogLevel string `mapstructure:"log_level" validate:"required,oneof=debug info warn error"`

	// Env toggles verbose error detail in responses: "production" returns
	// generic messages for unexpected errors, anything else includes detail.
	Env string `mapstructure:"env" validate:"required,oneof=development production"`
}

// AuthConfig contains all authentication and session settings.
type AuthConfig struct {
	// JWTSecret signs access tokens. Distinct from SessionSecret so the two
	// credentials can be rotated independently.
	JWTSecret string `mapstructure:"jwt_secret" validate:"required,min=32"`

	// SessionSecret authenticates session cookies.
	SessionSecret string `mapstructure:"session_secret" validate:"required,min=32"`

	// TokenLifetimeMinutes is how long an issued access token stays valid.
	TokenLifetimeMinutes int `mapstructure:"token_lifetime_minutes" validate:"required,gt=0"`

	// SessionLifetimeHours is how long a server-side session entry lives.
	// Deliberately longer than the token lifetime; see the session docs.
	SessionLifetimeHours int `mapstructure:"session_lifetime_hours" validate:"required,gt=0"`
}

// RateLimitConfig contains rate limiting settings for the credential
// endpoints (register and login).
type RateLimitConfig struct {
	// AuthPerMinute is the sustained request rate allowed per client IP.
	AuthPerMinute int `mapstructure:"auth_per_minute" validate:"required,gt=0"`

	// AuthBurst is the burst size allowed per client IP.
	AuthBurst int `mapstructure:"auth_burst" validate:"required,gt=0"`
}
