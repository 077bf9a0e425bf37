package stubapi

import (
	"encoding/json"
	"net/http"
	"strconv"
	"time"

	"github.com/google/uuid"
)

// Envelope status codes served by the stub. They mirror the panel's
// public contract.
const (
	codeOK                  = "ok"
	codeValidationFailed    = "ems.validation.not_valid"
	codeAccountNotActivated = "ems.auth.account_not_activated"
	codeNotFound            = "ems.common.not_found"
	codeUnauthenticated     = "ems.auth.unauthenticated"
)

type fieldError struct {
	Entity string `json:"entity"`
	Error  string `json:"error"`
}

type requestBlock struct {
	ID        string `json:"id"`
	Timestamp string `json:"timestamp"`
}

type statusBlock struct {
	Code    string       `json:"code"`
	Details []fieldError `json:"details,omitempty"`
	Request requestBlock `json:"request"`
}

type responseEnvelope struct {
	Status statusBlock `json:"status"`
	Data   any         `json:"data,omitempty"`
}

func newStatus(code string, details []fieldError) statusBlock {
	return statusBlock{
		Code:    code,
		Details: details,
		Request: requestBlock{
			ID:        uuid.NewString(),
			Timestamp: time.Now().UTC().Format(time.RFC3339),
		},
	}
}

func writeEnvelope(w http.ResponseWriter, httpStatus int, env responseEnvelope) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(httpStatus)
	json.NewEncoder(w).Encode(env)
}

func writeOK(w http.ResponseWriter, data any) {
	writeEnvelope(w, http.StatusOK, responseEnvelope{Status: newStatus(codeOK, nil), Data: data})
}

func writeError(w http.ResponseWriter, httpStatus int, code string, details ...fieldError) {
	writeEnvelope(w, httpStatus, responseEnvelope{Status: newStatus(code, details)})
}

func writeValidation(w http.ResponseWriter, details ...fieldError) {
	writeError(w, http.StatusBadRequest, codeValidationFailed, details...)
}

func decodeBody(w http.ResponseWriter, r *http.Request, v any) bool {
	if err := json.NewDecoder(r.Body).Decode(v); err != nil {
		writeValidation(w, fieldError{Entity: "body", Error: "malformed JSON"})
		return false
	}
	return true
}

type paginationBlock struct {
	Page               int `json:"page"`
	PerPage            int `json:"perPage"`
	ItemsOnCurrentPage int `json:"itemsOnCurrentPage"`
	TotalItems         int `json:"totalItems"`
}

type listingPayload struct {
	Items      any             `json:"items"`
	Pagination paginationBlock `json:"pagination"`
}

// pageParams reads page and perPage from the query with the panel's
// defaults of 1 and 10.
func pageParams(r *http.Request) (page, perPage int) {
	page, perPage = 1, 10
	if v, err := strconv.Atoi(r.URL.Query().Get("page")); err == nil && v > 0 {
		page = v
	}
	if v, err := strconv.Atoi(r.URL.Query().Get("perPage")); err == nil && v > 0 {
		perPage = v
	}
	return page, perPage
}

// slicePage returns the [low, high) bounds of the requested page over a
// collection of n items.
func slicePage(n, page, perPage int) (low, high int) {
	low = (page - 1) * perPage
	if low > n {
		low = n
	}
	high = low + perPage
	if high > n {
		high = n
	}
	return low, high
}

func listing(items any, page, perPage, onPage, total int) listingPayload {
	return listingPayload{
		Items: items,
		Pagination: paginationBlock{
			Page:               page,
			PerPage:            perPage,
			ItemsOnCurrentPage: onPage,
			TotalItems:         total,
		},
	}
}
