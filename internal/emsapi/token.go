package emsapi

import (
	"net/http"
	"time"

	"github.com/ignite/emspanel/internal/domain"
)

// TokenListQuery holds the filters of GET /api/token/listing. Query items
// are emitted in the documented order: page, perPage, orderBy,
// orderDirection. Zero values are omitted.
type TokenListQuery struct {
	Page           int
	PerPage        int
	OrderBy        string
	OrderDirection string
}

// NewTokenListEndpoint describes the token listing operation.
func NewTokenListEndpoint(q TokenListQuery) Endpoint {
	var items []QueryItem
	items = appendInt(items, "page", q.Page)
	items = appendInt(items, "perPage", q.PerPage)
	items = appendString(items, "orderBy", q.OrderBy)
	items = appendString(items, "orderDirection", q.OrderDirection)
	return Endpoint{Path: pathTokenListing, Method: http.MethodGet, Query: items}
}

// CreateTokenRequest is the body of POST /api/token/create.
type CreateTokenRequest struct {
	TokenName string `json:"tokenName"`
}

// NewCreateTokenEndpoint describes the token creation operation.
func NewCreateTokenEndpoint(req CreateTokenRequest) Endpoint {
	return Endpoint{Path: pathTokenCreate, Method: http.MethodPost, Body: mustJSON(req)}
}

// UpdateTokenRequest is the body of PUT /api/token/update. The token
// secret identifies the record; name and state are the mutable fields.
type UpdateTokenRequest struct {
	Token     string `json:"token"`
	TokenName string `json:"tokenName"`
	State     string `json:"state"`
}

// NewUpdateTokenEndpoint describes the token update operation.
func NewUpdateTokenEndpoint(req UpdateTokenRequest) Endpoint {
	return Endpoint{Path: pathTokenUpdate, Method: http.MethodPut, Body: mustJSON(req)}
}

// NewDeleteTokenEndpoint describes the token delete operation. Delete
// carries no body; the token travels as a query item.
func NewDeleteTokenEndpoint(token string) Endpoint {
	return Endpoint{
		Path:   pathTokenDelete,
		Method: http.MethodDelete,
		Query:  []QueryItem{{Name: "token", Value: token}},
	}
}

// TokenDTO mirrors a single token record on the wire. Timestamps are
// ISO-8601 strings; ExpiredAt is null for non-expiring tokens.
type TokenDTO struct {
	TokenName string `json:"tokenName"`
	Token     string `json:"token"`
	State     string `json:"state"`
	CreatedAt string `json:"createdAt"`
	ExpiredAt string `json:"expiredAt,omitempty"`
	UpdatedAt string `json:"updatedAt"`
}

// ToDomain maps the wire shape to the domain record. Unrecognized states
// normalize to inactive.
func (d TokenDTO) ToDomain() domain.Token {
	var expired *time.Time
	if d.ExpiredAt != "" {
		expired = parseOptionalTimestamp(d.ExpiredAt)
	}
	return domain.Token{
		Name:      d.TokenName,
		Value:     d.Token,
		State:     domain.TokenStateFromString(d.State),
		CreatedAt: parseTimestamp(d.CreatedAt),
		ExpiredAt: expired,
		UpdatedAt: parseTimestamp(d.UpdatedAt),
	}
}
