package emsapi

import (
	"encoding/json"
	"net/url"
	"strconv"
	"strings"
	"time"
)

// QueryItem is a single name/value pair. Query items keep their
// construction order when encoded, unlike url.Values.
type QueryItem struct {
	Name  string
	Value string
}

// Endpoint is an immutable descriptor of one API operation: path, HTTP
// method, optional serialized body, and ordered query items. Endpoints
// are built fresh per call from a typed request value and hold no
// shared state.
type Endpoint struct {
	Path   string
	Method string
	Body   []byte
	Query  []QueryItem
}

// EncodeQuery renders the query items in order, percent-escaped.
// Returns "" when there are none.
func (e Endpoint) EncodeQuery() string {
	if len(e.Query) == 0 {
		return ""
	}
	var b strings.Builder
	for i, q := range e.Query {
		if i > 0 {
			b.WriteByte('&')
		}
		b.WriteString(url.QueryEscape(q.Name))
		b.WriteByte('=')
		b.WriteString(url.QueryEscape(q.Value))
	}
	return b.String()
}

// mustJSON serializes a request struct for an endpoint body. The request
// types below only contain marshalable fields, so failure is a programming
// error and yields a nil body rather than a panic path at call sites.
func mustJSON(v any) []byte {
	data, err := json.Marshal(v)
	if err != nil {
		return nil
	}
	return data
}

// appendInt adds a query item when the value is positive.
func appendInt(items []QueryItem, name string, v int) []QueryItem {
	if v <= 0 {
		return items
	}
	return append(items, QueryItem{Name: name, Value: strconv.Itoa(v)})
}

// appendString adds a query item when the value is non-empty.
func appendString(items []QueryItem, name, v string) []QueryItem {
	if v == "" {
		return items
	}
	return append(items, QueryItem{Name: name, Value: v})
}

// appendTime adds a date query item when the value is set.
func appendTime(items []QueryItem, name string, t *time.Time) []QueryItem {
	if t == nil || t.IsZero() {
		return items
	}
	return append(items, QueryItem{Name: name, Value: t.UTC().Format("2006-01-02")})
}

// Endpoint paths, one constant per API operation.
const (
	pathLogin            = "/api/auth/login"
	pathLogout           = "/api/auth/logout"
	pathRegistration     = "/api/user/registration"
	pathForgotPassword   = "/api/auth/forgot_password"
	pathResetPassword    = "/api/auth/reset_password"
	pathResendActivation = "/api/user/registration/resend_activation_email"
	pathProfile          = "/api/user"
	pathTokenListing     = "/api/token/listing"
	pathTokenCreate      = "/api/token/create"
	pathTokenUpdate      = "/api/token/update"
	pathTokenDelete      = "/api/token/delete"
	pathSuppressionList  = "/api/suppression/listing"
	pathDomainListing    = "/api/user_domain/listing"
	pathDomainCreate     = "/api/user_domain/create"
	pathDomainVerify     = "/api/user_domain/verify"
	pathDomainDelete     = "/api/user_domain/delete"
)
