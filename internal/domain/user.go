package domain

import (
	"regexp"
	"time"

	"github.com/google/uuid"
)

// Username and password shape constraints.
const (
	MinPasswordLength = 6
	MaxPasswordLength = 100
)

// usernamePattern matches 3-30 alphanumeric or underscore characters,
// anchored to the whole string.
var usernamePattern = regexp.MustCompile(`^[A-Za-z0-9_]{3,30}$`)

// User represents a registered reviewer. The plaintext password only lives
// on the struct between request decoding and hashing; it is never stored
// and never serialized.
type User struct {
	ID             uuid.UUID `json:"id"`
	Username       string    `json:"username"`
	Password       string    `json:"-"` // plaintext, transient; hashed before storage
	HashedPassword string    `json:"-"`
	RegisteredAt   time.Time `json:"registered_at"`
}

// NewUser creates a User from a registration request. It validates the
// username shape and password length but leaves hashing to the store layer.
func NewUser(username, password string) (*User, error) {
	user := &User{
		ID:           uuid.New(),
		Username:     username,
		Password:     password,
		RegisteredAt: time.Now().UTC(),
	}

	if err := user.Validate(); err != nil {
		return nil, err
	}

	return user, nil
}

// Validate checks the user's fields. Existing users loaded from a store have
// an empty plaintext password and are validated against the hash instead.
func (u *User) Validate() error {
	if u.ID == uuid.Nil {
		return ErrEmptyUserID
	}

	if !IsValidUsername(u.Username) {
		return ErrInvalidUsername
	}

	if u.Password != "" {
		return ValidatePassword(u.Password)
	}
	if u.HashedPassword == "" {
		return ErrEmptyPassword
	}

	return nil
}

// IsValidUsername reports whether s is 3-30 alphanumeric/underscore
// characters.
func IsValidUsername(s string) bool {
	return usernamePattern.MatchString(s)
}

// ValidatePassword checks the password length bounds. Length is the only
// constraint; longer passphrases beat forced character classes.
func ValidatePassword(s string) error {
	switch {
	case s == "":
		return ErrEmptyPassword
	case len(s) < MinPasswordLength:
		return ErrPasswordTooShort
	case len(s) > MaxPasswordLength:
		return ErrPasswordTooLong
	}
	return nil
}
