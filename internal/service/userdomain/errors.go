package userdomain

import "errors"

// Local validation errors, raised before any network call.
var (
	ErrEmptyDomainName = errors.New("domain name is required")
	ErrEmptyUUID       = errors.New("domain uuid is required")
)
