package token

import (
	"context"
	"strings"

	"github.com/ignite/emspanel/internal/domain"
)

// Service implements the token use cases. Validation is structural
// only; remote failures pass through unmodified.
type Service struct {
	repo Repository
}

// NewService creates a token service backed by the given repository.
func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

// List fetches one page of tokens.
func (s *Service) List(ctx context.Context, filter ListFilter) ([]domain.Token, domain.Page, error) {
	return s.repo.List(ctx, filter)
}

// Create issues a new token. The name must be non-empty.
func (s *Service) Create(ctx context.Context, name string) (*domain.Token, error) {
	if strings.TrimSpace(name) == "" {
		return nil, ErrEmptyTokenName
	}
	return s.repo.Create(ctx, name)
}

// Update renames a token and/or changes its state.
func (s *Service) Update(ctx context.Context, token, name string, state domain.TokenState) (*domain.Token, error) {
	if token == "" {
		return nil, ErrEmptyToken
	}
	if strings.TrimSpace(name) == "" {
		return nil, ErrEmptyTokenName
	}
	return s.repo.Update(ctx, token, name, state)
}

// Delete destroys a token.
func (s *Service) Delete(ctx context.Context, token string) error {
	if token == "" {
		return ErrEmptyToken
	}
	return s.repo.Delete(ctx, token)
}
