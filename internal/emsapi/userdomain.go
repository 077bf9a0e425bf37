package emsapi

import (
	"net/http"

	"github.com/ignite/emspanel/internal/domain"
)

// DomainListQuery holds the filters of GET /api/user_domain/listing.
// Query items are emitted in the documented order: page, perPage,
// orderBy, orderDirection. Zero values are omitted.
type DomainListQuery struct {
	Page           int
	PerPage        int
	OrderBy        string
	OrderDirection string
}

// NewDomainListEndpoint describes the sending-domain listing operation.
func NewDomainListEndpoint(q DomainListQuery) Endpoint {
	var items []QueryItem
	items = appendInt(items, "page", q.Page)
	items = appendInt(items, "perPage", q.PerPage)
	items = appendString(items, "orderBy", q.OrderBy)
	items = appendString(items, "orderDirection", q.OrderDirection)
	return Endpoint{Path: pathDomainListing, Method: http.MethodGet, Query: items}
}

// CreateDomainRequest is the body of POST /api/user_domain/create.
type CreateDomainRequest struct {
	DomainName string `json:"domainName"`
}

// NewCreateDomainEndpoint describes the domain creation operation.
func NewCreateDomainEndpoint(req CreateDomainRequest) Endpoint {
	return Endpoint{Path: pathDomainCreate, Method: http.MethodPost, Body: mustJSON(req)}
}

// VerifyDomainRequest is the body of POST /api/user_domain/verify. The
// server re-runs the DNS checks and returns the updated aggregate.
type VerifyDomainRequest struct {
	UUID string `json:"uuid"`
}

// NewVerifyDomainEndpoint describes the domain verification operation.
func NewVerifyDomainEndpoint(req VerifyDomainRequest) Endpoint {
	return Endpoint{Path: pathDomainVerify, Method: http.MethodPost, Body: mustJSON(req)}
}

// NewDeleteDomainEndpoint describes the domain delete operation. Delete
// carries no body; the domain UUID travels as a query item.
func NewDeleteDomainEndpoint(uuid string) Endpoint {
	return Endpoint{
		Path:   pathDomainDelete,
		Method: http.MethodDelete,
		Query:  []QueryItem{{Name: "uuid", Value: uuid}},
	}
}

// CNAMERecordDTO mirrors one DNS CNAME entry on the wire.
type CNAMERecordDTO struct {
	Hostname string `json:"hostname"`
	PointTo  string `json:"pointTo"`
}

// DNSSettingsDTO mirrors the DNS settings block of a sending domain.
type DNSSettingsDTO struct {
	DKIMDomain           string         `json:"dkimDomain"`
	OwnerValidationToken string         `json:"ownerValidationToken"`
	DKIM                 CNAMERecordDTO `json:"dkim"`
	SPF                  CNAMERecordDTO `json:"spf"`
	Tracking             CNAMERecordDTO `json:"tracking"`
}

// UserDomainDTO mirrors a sending-domain record on the wire.
type UserDomainDTO struct {
	UUID       string         `json:"uuid"`
	DomainName string         `json:"domainName"`
	State      string         `json:"state"`
	CreatedAt  string         `json:"createdAt"`
	UpdatedAt  string         `json:"updatedAt"`
	SPFValid   bool           `json:"spfValid"`
	DKIMValid  bool           `json:"dkimValid"`
	OwnerValid bool           `json:"ownerValid"`
	FBLValid   bool           `json:"fblValid"`
	DNS        DNSSettingsDTO `json:"dnsSettings"`
}

// ToDomain maps the wire shape to the domain aggregate. Unrecognized
// states normalize to disabled.
func (d UserDomainDTO) ToDomain() domain.UserDomain {
	return domain.UserDomain{
		UUID:       d.UUID,
		DomainName: d.DomainName,
		State:      domain.UserDomainStateFromString(d.State),
		CreatedAt:  parseTimestamp(d.CreatedAt),
		UpdatedAt:  parseTimestamp(d.UpdatedAt),
		SPFValid:   d.SPFValid,
		DKIMValid:  d.DKIMValid,
		OwnerValid: d.OwnerValid,
		FBLValid:   d.FBLValid,
		DNS: domain.DNSSettings{
			DKIMDomain:           d.DNS.DKIMDomain,
			OwnerValidationToken: d.DNS.OwnerValidationToken,
			DKIM:                 domain.CNAMERecord{Hostname: d.DNS.DKIM.Hostname, PointTo: d.DNS.DKIM.PointTo},
			SPF:                  domain.CNAMERecord{Hostname: d.DNS.SPF.Hostname, PointTo: d.DNS.SPF.PointTo},
			Tracking:             domain.CNAMERecord{Hostname: d.DNS.Tracking.Hostname, PointTo: d.DNS.Tracking.PointTo},
		},
	}
}
