package userdomain

import (
	"context"
	"strings"

	"github.com/ignite/emspanel/internal/domain"
)

// Service implements the sending-domain use cases. Validation is
// structural only; remote failures pass through unmodified.
type Service struct {
	repo Repository
}

// NewService creates a domain service backed by the given repository.
func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

// List fetches one page of sending domains.
func (s *Service) List(ctx context.Context, filter ListFilter) ([]domain.UserDomain, domain.Page, error) {
	return s.repo.List(ctx, filter)
}

// Create registers a new sending domain. Names are lowercased before
// submission.
func (s *Service) Create(ctx context.Context, domainName string) (*domain.UserDomain, error) {
	domainName = strings.ToLower(strings.TrimSpace(domainName))
	if domainName == "" {
		return nil, ErrEmptyDomainName
	}
	return s.repo.Create(ctx, domainName)
}

// Verify re-runs the server-side DNS checks for a domain.
func (s *Service) Verify(ctx context.Context, uuid string) (*domain.UserDomain, error) {
	if uuid == "" {
		return nil, ErrEmptyUUID
	}
	return s.repo.Verify(ctx, uuid)
}

// Delete removes a sending domain.
func (s *Service) Delete(ctx context.Context, uuid string) error {
	if uuid == "" {
		return ErrEmptyUUID
	}
	return s.repo.Delete(ctx, uuid)
}
