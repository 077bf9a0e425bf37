package userdomain

import (
	"context"

	"github.com/ignite/emspanel/internal/domain"
)

// ListFilter controls pagination and ordering for domain listings.
type ListFilter struct {
	Page           int
	PerPage        int
	OrderBy        string
	OrderDirection string
}

// Repository defines the remote access contract for sending domains.
type Repository interface {
	// List returns one page of domains with the pagination block.
	List(ctx context.Context, filter ListFilter) ([]domain.UserDomain, domain.Page, error)

	// Create registers a new sending domain and returns it with the
	// DNS records the user must publish.
	Create(ctx context.Context, domainName string) (*domain.UserDomain, error)

	// Verify re-runs the server-side DNS checks and returns the
	// updated aggregate.
	Verify(ctx context.Context, uuid string) (*domain.UserDomain, error)

	// Delete removes a sending domain.
	Delete(ctx context.Context, uuid string) error
}
