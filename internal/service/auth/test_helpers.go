package auth

import "time"

// NewTestJWTService creates a JWT service with an injectable time function
// and no clock-skew leeway, so tests can simulate expiry deterministically.
func NewTestJWTService(
	secret string,
	tokenLifetime time.Duration,
	timeFunc func() time.Time,
) JWTService {
	return &hmacJWTService{
		signingKey:    []byte(secret),
		tokenLifetime: tokenLifetime,
		timeFunc:      timeFunc,
		clockSkew:     0,
	}
}
