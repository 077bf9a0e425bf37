package emsapi

import (
	"encoding/json"

	"github.com/ignite/emspanel/internal/domain"
)

// API status codes carried in the envelope. These exact strings are
// matched case-sensitively before any HTTP status inspection.
const (
	StatusOK                  = "ok"
	StatusValidationFailed    = "ems.validation.not_valid"
	StatusAccountNotActivated = "ems.auth.account_not_activated"
	StatusNotFound            = "ems.common.not_found"
)

// RequestInfo is the correlation block attached to every response.
type RequestInfo struct {
	ID        string `json:"id"`
	Timestamp string `json:"timestamp"`
}

// Status is the fixed part of the response envelope.
type Status struct {
	Code    string       `json:"code"`
	Details []FieldError `json:"details,omitempty"`
	Request RequestInfo  `json:"request"`
}

// envelope is the uniform wrapper on every API response. The shell is
// decoded strictly; the payload stays raw so it can be decoded leniently
// in a second stage (a mismatched payload shape becomes absent data,
// never a hard failure).
type envelope struct {
	Status Status          `json:"status"`
	Data   json.RawMessage `json:"data,omitempty"`
}

// decodePayload attempts the second-stage payload decode. ok is false
// when the data block is absent or does not match T.
func decodePayload[T any](raw json.RawMessage) (v T, ok bool) {
	if len(raw) == 0 || string(raw) == "null" {
		return v, false
	}
	if err := json.Unmarshal(raw, &v); err != nil {
		return v, false
	}
	return v, true
}

// Pagination mirrors the wire pagination block of every listing.
type Pagination struct {
	Page               int `json:"page"`
	PerPage            int `json:"perPage"`
	ItemsOnCurrentPage int `json:"itemsOnCurrentPage"`
	TotalItems         int `json:"totalItems"`
}

// ToDomain maps the pagination block unchanged.
func (p Pagination) ToDomain() domain.Page {
	return domain.Page{
		Page:               p.Page,
		PerPage:            p.PerPage,
		ItemsOnCurrentPage: p.ItemsOnCurrentPage,
		TotalItems:         p.TotalItems,
	}
}

// ListingResponse is the generic payload of every listing endpoint.
type ListingResponse[T any] struct {
	Items      []T        `json:"items"`
	Pagination Pagination `json:"pagination"`
}
