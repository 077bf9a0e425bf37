package suppression

import (
	"context"

	"github.com/ignite/emspanel/internal/domain"
)

// Service implements the suppression listing use case.
type Service struct {
	repo Repository
}

// NewService creates a suppression service backed by the given repository.
func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

// List fetches one page of suppressions. A reversed date range is
// rejected locally before any network call.
func (s *Service) List(ctx context.Context, filter ListFilter) ([]domain.Suppression, domain.Page, error) {
	if filter.DateFrom != nil && filter.DateTo != nil && filter.DateFrom.After(*filter.DateTo) {
		return nil, domain.Page{}, ErrInvalidDateRange
	}
	return s.repo.List(ctx, filter)
}
