package session

import (
	"context"

	"github.com/ignite/emspanel/internal/emsapi"
)

// UserStore caches the last-fetched user profile DTO verbatim for fast
// cold-start restoration. It is overwritten on every successful profile
// fetch and removed on logout. The wire DTO is stored rather than the
// domain type so the cache survives without a reverse mapping.
type UserStore struct {
	region *Region[emsapi.UserDTO]
}

// NewUserStore creates the user region over a backend.
func NewUserStore(backend Backend) *UserStore {
	return &UserStore{region: NewJSONRegion[emsapi.UserDTO](backend, keyUser)}
}

// Save overwrites the cached profile.
func (s *UserStore) Save(ctx context.Context, dto emsapi.UserDTO) {
	s.region.Save(ctx, dto)
}

// Load returns the cached profile DTO, or false when absent.
func (s *UserStore) Load(ctx context.Context) (emsapi.UserDTO, bool) {
	return s.region.Load(ctx)
}

// Clear removes the cached profile.
func (s *UserStore) Clear(ctx context.Context) {
	s.region.Remove(ctx)
}
