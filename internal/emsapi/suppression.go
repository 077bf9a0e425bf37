package emsapi

import (
	"net/http"
	"time"

	"github.com/ignite/emspanel/internal/domain"
)

// SuppressionListQuery holds the filters of GET /api/suppression/listing.
// Query items are emitted in the documented order: dateFrom, dateTo,
// page, perPage, orderBy, orderDirection. Unset values are omitted.
type SuppressionListQuery struct {
	DateFrom       *time.Time
	DateTo         *time.Time
	Page           int
	PerPage        int
	OrderBy        string
	OrderDirection string
}

// NewSuppressionListEndpoint describes the suppression listing operation.
func NewSuppressionListEndpoint(q SuppressionListQuery) Endpoint {
	var items []QueryItem
	items = appendTime(items, "dateFrom", q.DateFrom)
	items = appendTime(items, "dateTo", q.DateTo)
	items = appendInt(items, "page", q.Page)
	items = appendInt(items, "perPage", q.PerPage)
	items = appendString(items, "orderBy", q.OrderBy)
	items = appendString(items, "orderDirection", q.OrderDirection)
	return Endpoint{Path: pathSuppressionList, Method: http.MethodGet, Query: items}
}

// SuppressionDTO mirrors a single suppression record on the wire.
type SuppressionDTO struct {
	SuppressionID int64  `json:"suppressionId"`
	Email         string `json:"email"`
	Type          string `json:"type"`
	DomainName    string `json:"domainName,omitempty"`
	CreatedAt     string `json:"createdAt"`
	UpdatedAt     string `json:"updatedAt"`
}

// ToDomain maps the wire shape to the domain record. Unrecognized types
// normalize to hard_bounce; an absent domain means all domains.
func (d SuppressionDTO) ToDomain() domain.Suppression {
	domainName := d.DomainName
	if domainName == "" {
		domainName = domain.AllDomains
	}
	return domain.Suppression{
		ID:         d.SuppressionID,
		Email:      d.Email,
		Type:       domain.SuppressionTypeFromString(d.Type),
		DomainName: domainName,
		CreatedAt:  parseTimestamp(d.CreatedAt),
		UpdatedAt:  parseTimestamp(d.UpdatedAt),
	}
}
