package token

import (
	"context"

	"github.com/ignite/emspanel/internal/domain"
)

// ListFilter controls pagination and ordering for token listings.
type ListFilter struct {
	Page           int
	PerPage        int
	OrderBy        string
	OrderDirection string
}

// Repository defines the remote access contract for SMTP API tokens.
type Repository interface {
	// List returns one page of tokens with the pagination block.
	List(ctx context.Context, filter ListFilter) ([]domain.Token, domain.Page, error)

	// Create issues a new token with the given name.
	Create(ctx context.Context, name string) (*domain.Token, error)

	// Update renames a token and/or changes its state. The token is
	// identified by its secret value.
	Update(ctx context.Context, token, name string, state domain.TokenState) (*domain.Token, error)

	// Delete destroys a token.
	Delete(ctx context.Context, token string) error
}
