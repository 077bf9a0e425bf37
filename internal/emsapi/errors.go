package emsapi

import "fmt"

// Kind classifies an API client failure.
type Kind string

const (
	KindInvalidURL          Kind = "invalid_url"
	KindNoData              Kind = "no_data"
	KindDecoding            Kind = "decoding_error"
	KindValidation          Kind = "validation_error"
	KindAuthentication      Kind = "authentication_error"
	KindAccountNotActivated Kind = "account_not_activated"
	KindNotFound            Kind = "not_found"
	KindTooManyRequests     Kind = "too_many_requests"
	KindServer              Kind = "server_error"
	KindUnknown             Kind = "unknown"
)

// FieldError is a single field-level validation failure reported by the API.
type FieldError struct {
	Entity string `json:"entity"`
	Error  string `json:"error"`
}

// APIError is the typed failure produced by the Client. Repositories and
// services pass it through unmodified, so callers can match on the kind
// with errors.Is against the exported sentinels.
type APIError struct {
	Kind    Kind
	Message string
	Details []FieldError
}

func (e *APIError) Error() string {
	if e.Message != "" {
		return fmt.Sprintf("emsapi: %s: %s", e.Kind, e.Message)
	}
	return fmt.Sprintf("emsapi: %s", e.Kind)
}

// Is matches any *APIError of the same kind, so
// errors.Is(err, ErrNotFound) works regardless of message or details.
func (e *APIError) Is(target error) bool {
	t, ok := target.(*APIError)
	return ok && t.Kind == e.Kind
}

// Sentinel errors for each failure kind.
var (
	ErrInvalidURL          = &APIError{Kind: KindInvalidURL}
	ErrNoData              = &APIError{Kind: KindNoData}
	ErrDecoding            = &APIError{Kind: KindDecoding}
	ErrValidation          = &APIError{Kind: KindValidation}
	ErrAuthentication      = &APIError{Kind: KindAuthentication}
	ErrAccountNotActivated = &APIError{Kind: KindAccountNotActivated}
	ErrNotFound            = &APIError{Kind: KindNotFound}
	ErrTooManyRequests     = &APIError{Kind: KindTooManyRequests}
	ErrServer              = &APIError{Kind: KindServer}
	ErrUnknown             = &APIError{Kind: KindUnknown}
)

// ValidationError builds the error carrying per-field failures from the
// envelope's status details.
func ValidationError(details []FieldError) *APIError {
	return &APIError{Kind: KindValidation, Details: details}
}

// ServerError builds the error for a 5xx response.
func ServerError(message string) *APIError {
	return &APIError{Kind: KindServer, Message: message}
}
