package remote

import (
	"context"

	"github.com/ignite/emspanel/internal/domain"
	"github.com/ignite/emspanel/internal/emsapi"
	"github.com/ignite/emspanel/internal/service/token"
)

// TokenRepository executes the SMTP API token endpoints.
type TokenRepository struct {
	client *emsapi.Client
}

var _ token.Repository = (*TokenRepository)(nil)

// NewTokenRepository creates the repository.
func NewTokenRepository(client *emsapi.Client) *TokenRepository {
	return &TokenRepository{client: client}
}

func (r *TokenRepository) List(ctx context.Context, filter token.ListFilter) ([]domain.Token, domain.Page, error) {
	ep := emsapi.NewTokenListEndpoint(emsapi.TokenListQuery{
		Page:           filter.Page,
		PerPage:        filter.PerPage,
		OrderBy:        filter.OrderBy,
		OrderDirection: filter.OrderDirection,
	})
	listing, err := emsapi.Do[emsapi.ListingResponse[emsapi.TokenDTO]](ctx, r.client, ep)
	if err != nil {
		return nil, domain.Page{}, err
	}
	tokens := make([]domain.Token, 0, len(listing.Items))
	for _, dto := range listing.Items {
		tokens = append(tokens, dto.ToDomain())
	}
	return tokens, listing.Pagination.ToDomain(), nil
}

func (r *TokenRepository) Create(ctx context.Context, name string) (*domain.Token, error) {
	ep := emsapi.NewCreateTokenEndpoint(emsapi.CreateTokenRequest{TokenName: name})
	dto, err := emsapi.Do[emsapi.TokenDTO](ctx, r.client, ep)
	if err != nil {
		return nil, err
	}
	tok := dto.ToDomain()
	return &tok, nil
}

func (r *TokenRepository) Update(ctx context.Context, tokenValue, name string, state domain.TokenState) (*domain.Token, error) {
	ep := emsapi.NewUpdateTokenEndpoint(emsapi.UpdateTokenRequest{
		Token:     tokenValue,
		TokenName: name,
		State:     string(state),
	})
	dto, err := emsapi.Do[emsapi.TokenDTO](ctx, r.client, ep)
	if err != nil {
		return nil, err
	}
	tok := dto.ToDomain()
	return &tok, nil
}

func (r *TokenRepository) Delete(ctx context.Context, tokenValue string) error {
	return r.client.DoNoContent(ctx, emsapi.NewDeleteTokenEndpoint(tokenValue))
}
