package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/syslocale/domainpbn/internal/database"
	"github.com/syslocale/domainpbn/internal/models"
)

// SettingsRepository is the singleton-document surface the settings
// service needs.
type SettingsRepository interface {
	// FindByID retrieves the document stored under the given id,
	// or database.ErrNotFound.
	FindByID(ctx context.Context, id string) (*models.Settings, error)

	// Upsert stores the document under the given id, replacing any previous
	// state, and returns the stored state.
	Upsert(ctx context.Context, id string, doc *models.Settings) (*models.Settings, error)
}

// SettingsService manages the single site-settings document.
type SettingsService struct {
	repo SettingsRepository
}

func NewSettingsService(repo SettingsRepository) *SettingsService {
	return &SettingsService{repo: repo}
}

// Get returns the stored settings, or the built-in defaults when nothing
// has been saved yet. The defaults are not written back.
func (s *SettingsService) Get(ctx context.Context) (*models.Settings, error) {
	const op = "service.SettingsService.Get"

	settings, err := s.repo.FindByID(ctx, models.SettingsID)
	if err != nil {
		if errors.Is(err, database.ErrNotFound) {
			return models.DefaultSettings(), nil
		}

		return nil, fmt.Errorf("%s: failed to get settings: %w", op, err)
	}

	return settings, nil
}

// Update replaces the settings document, stamping a fresh update
// timestamp, and returns the stored state. The first update creates the
// document.
func (s *SettingsService) Update(ctx context.Context, settings *models.Settings) (*models.Settings, error) {
	const op = "service.SettingsService.Update"

	settings.ID = models.SettingsID
	settings.UpdatedAt = now()

	stored, err := s.repo.Upsert(ctx, models.SettingsID, settings)
	if err != nil {
		return nil, fmt.Errorf("%s: failed to update settings: %w", op, err)
	}

	return stored, nil
}
