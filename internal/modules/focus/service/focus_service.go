package service

import (
	"context"
	"fmt"
	"strings"

	"focusctl/internal/modules/focus/domain"
	focusout "focusctl/internal/modules/focus/port/out"
	"focusctl/internal/platform/clock"
)

type FocusService struct {
	clock    clock.Clock
	catalog  focusout.CatalogStore
	settings focusout.SettingsStore
}

func NewFocusService(clk clock.Clock, catalog focusout.CatalogStore, settings focusout.SettingsStore) *FocusService {
	return &FocusService{clock: clk, catalog: catalog, settings: settings}
}

// SeedCatalog loads the catalog, populating it with the presets when nothing
// has been persisted yet. Idempotent: a non-empty catalog is never rewritten.
func (s *FocusService) SeedCatalog(ctx context.Context) (domain.Catalog, bool, error) {
	catalog, err := s.catalog.Load(ctx)
	if err != nil {
		return domain.Catalog{}, false, err
	}
	if len(catalog.Modes) > 0 {
		return catalog, false, nil
	}
	catalog = domain.Catalog{SchemaVersion: domain.SchemaVersion, Modes: domain.PresetModes()}
	if err := s.catalog.Save(ctx, catalog); err != nil {
		return domain.Catalog{}, false, err
	}
	return catalog, true, nil
}

// CreateCustomMode appends a user-defined mode to the catalog. The new mode is
// never activated here.
func (s *FocusService) CreateCustomMode(ctx context.Context, name string, allowedApps []string) (domain.FocusMode, error) {
	if strings.TrimSpace(name) == "" {
		return domain.FocusMode{}, domain.ErrEmptyModeName
	}
	catalog, _, err := s.SeedCatalog(ctx)
	if err != nil {
		return domain.FocusMode{}, err
	}
	mode := domain.NewCustomMode(name, allowedApps, s.clock.Now())
	mode.IsCustom = true
	if _, exists := catalog.Find(mode.ID); exists {
		return domain.FocusMode{}, fmt.Errorf("%w: %s", domain.ErrDuplicateModeID, mode.ID)
	}
	catalog.Modes = append(catalog.Modes, mode)
	if err := catalog.Validate(); err != nil {
		return domain.FocusMode{}, err
	}
	if err := s.catalog.Save(ctx, catalog); err != nil {
		return domain.FocusMode{}, err
	}
	return mode, nil
}

// LoadSettings returns persisted settings, falling back to defaults before the
// first save.
func (s *FocusService) LoadSettings(ctx context.Context) (domain.Settings, error) {
	settings, err := s.settings.Load(ctx)
	if err != nil {
		if err == domain.ErrSettingsMissing {
			return domain.DefaultSettings(), nil
		}
		return domain.Settings{}, err
	}
	return settings, nil
}

func (s *FocusService) SaveSettings(ctx context.Context, settings domain.Settings) error {
	return s.settings.Save(ctx, settings)
}
