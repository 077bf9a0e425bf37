package remote

import (
	"context"

	"github.com/ignite/emspanel/internal/domain"
	"github.com/ignite/emspanel/internal/emsapi"
	"github.com/ignite/emspanel/internal/service/userdomain"
)

// UserDomainRepository executes the sending-domain endpoints.
type UserDomainRepository struct {
	client *emsapi.Client
}

var _ userdomain.Repository = (*UserDomainRepository)(nil)

// NewUserDomainRepository creates the repository.
func NewUserDomainRepository(client *emsapi.Client) *UserDomainRepository {
	return &UserDomainRepository{client: client}
}

func (r *UserDomainRepository) List(ctx context.Context, filter userdomain.ListFilter) ([]domain.UserDomain, domain.Page, error) {
	ep := emsapi.NewDomainListEndpoint(emsapi.DomainListQuery{
		Page:           filter.Page,
		PerPage:        filter.PerPage,
		OrderBy:        filter.OrderBy,
		OrderDirection: filter.OrderDirection,
	})
	listing, err := emsapi.Do[emsapi.ListingResponse[emsapi.UserDomainDTO]](ctx, r.client, ep)
	if err != nil {
		return nil, domain.Page{}, err
	}
	domains := make([]domain.UserDomain, 0, len(listing.Items))
	for _, dto := range listing.Items {
		domains = append(domains, dto.ToDomain())
	}
	return domains, listing.Pagination.ToDomain(), nil
}

func (r *UserDomainRepository) Create(ctx context.Context, domainName string) (*domain.UserDomain, error) {
	ep := emsapi.NewCreateDomainEndpoint(emsapi.CreateDomainRequest{DomainName: domainName})
	dto, err := emsapi.Do[emsapi.UserDomainDTO](ctx, r.client, ep)
	if err != nil {
		return nil, err
	}
	d := dto.ToDomain()
	return &d, nil
}

func (r *UserDomainRepository) Verify(ctx context.Context, uuid string) (*domain.UserDomain, error) {
	ep := emsapi.NewVerifyDomainEndpoint(emsapi.VerifyDomainRequest{UUID: uuid})
	dto, err := emsapi.Do[emsapi.UserDomainDTO](ctx, r.client, ep)
	if err != nil {
		return nil, err
	}
	d := dto.ToDomain()
	return &d, nil
}

func (r *UserDomainRepository) Delete(ctx context.Context, uuid string) error {
	return r.client.DoNoContent(ctx, emsapi.NewDeleteDomainEndpoint(uuid))
}
