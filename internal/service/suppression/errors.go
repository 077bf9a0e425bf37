package suppression

import "errors"

// Local validation errors, raised before any network call.
var (
	ErrInvalidDateRange = errors.New("dateFrom must not be after dateTo")
)
