package auth

import "errors"

// Local validation errors, raised before any network call.
var (
	ErrEmptyEmail       = errors.New("email is required")
	ErrInvalidEmail     = errors.New("email address is malformed")
	ErrEmptyPassword    = errors.New("password is required")
	ErrEmptyName        = errors.New("first and last name are required")
	ErrEmptyResetToken  = errors.New("reset token is required")
	ErrPasswordMismatch = errors.New("password confirmation does not match")
)
