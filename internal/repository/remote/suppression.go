package remote

import (
	"context"

	"github.com/ignite/emspanel/internal/domain"
	"github.com/ignite/emspanel/internal/emsapi"
	"github.com/ignite/emspanel/internal/service/suppression"
)

// SuppressionRepository executes the suppression listing endpoint.
type SuppressionRepository struct {
	client *emsapi.Client
}

var _ suppression.Repository = (*SuppressionRepository)(nil)

// NewSuppressionRepository creates the repository.
func NewSuppressionRepository(client *emsapi.Client) *SuppressionRepository {
	return &SuppressionRepository{client: client}
}

func (r *SuppressionRepository) List(ctx context.Context, filter suppression.ListFilter) ([]domain.Suppression, domain.Page, error) {
	ep := emsapi.NewSuppressionListEndpoint(emsapi.SuppressionListQuery{
		DateFrom:       filter.DateFrom,
		DateTo:         filter.DateTo,
		Page:           filter.Page,
		PerPage:        filter.PerPage,
		OrderBy:        filter.OrderBy,
		OrderDirection: filter.OrderDirection,
	})
	listing, err := emsapi.Do[emsapi.ListingResponse[emsapi.SuppressionDTO]](ctx, r.client, ep)
	if err != nil {
		return nil, domain.Page{}, err
	}
	items := make([]domain.Suppression, 0, len(listing.Items))
	for _, dto := range listing.Items {
		items = append(items, dto.ToDomain())
	}
	return items, listing.Pagination.ToDomain(), nil
}
