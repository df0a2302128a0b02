package domain

import "errors"

var (
	// ErrValidation wraps malformed client input; reported as 400, never retried.
	ErrValidation = errors.New("validation failed")

	// ErrInvalidCredentials covers both "no such user" and "wrong password".
	ErrInvalidCredentials = errors.New("invalid credentials")

	ErrTokenExpired   = errors.New("token expired")
	ErrTokenMalformed = errors.New("token malformed")

	ErrEmailTaken = errors.New("email already registered")

	// ErrDeviceNotFound is returned both for devices that do not exist and for
	// devices the caller does not own, so non-owners cannot probe existence.
	ErrDeviceNotFound = errors.New("device not found")
)
