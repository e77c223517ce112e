// Package domain defines the core business entities and errors.
package domain

import "errors"

// Common domain errors used across the application.
var (
	// ErrValidation is returned when a domain entity fails validation.
	// This is often wrapped with a more specific error message.
	ErrValidation = errors.New("validation failed")

	// ErrEmptyUserID is returned when a user has no ID.
	ErrEmptyUserID = errors.New("user ID cannot be empty")

	// ErrInvalidUsername is returned when a username is not 3-30
	// alphanumeric/underscore characters.
	ErrInvalidUsername = errors.New("username must be 3-30 alphanumeric or underscore characters")

	// ErrEmptyPassword is returned when a password is missing.
	ErrEmptyPassword = errors.New("password cannot be empty")

	// ErrPasswordTooShort is returned when a password is under the minimum length.
	ErrPasswordTooShort = errors.New("password must be at least 6 characters long")

	// ErrPasswordTooLong is returned when a password exceeds the maximum length.
	ErrPasswordTooLong = errors.New("password must be at most 100 characters long")

	// ErrEmptyReview is returned when a review body is empty.
	ErrEmptyReview = errors.New("review cannot be empty")

	// ErrReviewTooLong is returned when a review body exceeds MaxReviewLength.
	ErrReviewTooLong = errors.New("review exceeds maximum length")
)
