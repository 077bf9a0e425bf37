package token

import "errors"

// Local validation errors, raised before any network call.
var (
	ErrEmptyTokenName = errors.New("token name is required")
	ErrEmptyToken     = errors.New("token is required")
)
