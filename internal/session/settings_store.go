package session

import (
	"context"

	"github.com/ignite/emspanel/internal/domain"
)

// appSettingsDTO is the persisted shape of the UI preferences. This is
// the one deliberate two-way domain↔DTO mapping in the client.
type appSettingsDTO struct {
	MainCurrentTab int `json:"mainCurrentTab"`
}

func (d appSettingsDTO) toDomain() domain.AppSettings {
	return domain.AppSettings{MainCurrentTab: d.MainCurrentTab}
}

func settingsFromDomain(s domain.AppSettings) appSettingsDTO {
	return appSettingsDTO{MainCurrentTab: s.MainCurrentTab}
}

// SettingsStore persists small UI preferences.
type SettingsStore struct {
	region *Region[appSettingsDTO]
}

// NewSettingsStore creates the settings region over a backend.
func NewSettingsStore(backend Backend) *SettingsStore {
	return &SettingsStore{region: NewJSONRegion[appSettingsDTO](backend, keySettings)}
}

// Save persists the settings.
func (s *SettingsStore) Save(ctx context.Context, settings domain.AppSettings) {
	s.region.Save(ctx, settingsFromDomain(settings))
}

// Load returns the stored settings, or the zero value when absent.
func (s *SettingsStore) Load(ctx context.Context) domain.AppSettings {
	dto, ok := s.region.Load(ctx)
	if !ok {
		return domain.AppSettings{}
	}
	return dto.toDomain()
}

// Clear removes the stored settings.
func (s *SettingsStore) Clear(ctx context.Context) {
	s.region.Remove(ctx)
}
