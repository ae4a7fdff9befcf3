package user

import "errors"

// Sentinel errors for the user service layer.
var (
	ErrNotFound = errors.New("user not found")

	// ErrEmailTaken means a user with the given email already exists.
	ErrEmailTaken = errors.New("user already exists")

	// ErrInvalidCredentials covers both unknown email and wrong password.
	// Callers must not be able to tell which check failed.
	ErrInvalidCredentials = errors.New("credentials invalid")

	// ErrValidation marks bad or missing input. Wrapped with field detail.
	ErrValidation = errors.New("invalid input")
)
