package domain

import "errors"

var (
	// ErrInvalidCredentials covers both "no such user" and "wrong password";
	// callers must not be able to tell the two apart.
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrForbidden          = errors.New("access forbidden")
	ErrUserNotFound       = errors.New("user not found")
	ErrUserExists         = errors.New("user already exists")
	ErrEntryNotFound      = errors.New("planning entry not found")
	ErrInvalidStatus      = errors.New("invalid day status")
	ErrInvalidDate        = errors.New("invalid date")
	ErrInvalidUsername    = errors.New("invalid username")
	ErrWeakPassword       = errors.New("password does not meet the security policy")
	ErrTooManyAttempts    = errors.New("too many login attempts")
)
