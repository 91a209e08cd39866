package out_test

import (
	"context"
	"testing"

	focusout "focusctl/internal/modules/focus/adapter/out"
	"focusctl/internal/modules/focus/domain"
	apperrors "focusctl/internal/platform/errors"
)

func TestCatalogStoreAbsenceMeansEmpty(t *testing.T) {
	t.Parallel()
	store := focusout.NewFileCatalogStore(t.TempDir())
	ctx := context.Background()

	catalog, err := store.Load(ctx)
	if err != nil {
		t.Fatalf("load empty catalog: %v", err)
	}
	if len(catalog.Modes) != 0 {
		t.Fatalf("expected empty catalog, got %d modes", len(catalog.Modes))
	}

	catalog.Modes = domain.PresetModes()
	if err := store.Save(ctx, catalog); err != nil {
		t.Fatalf("save catalog: %v", err)
	}
	loaded, err := store.Load(ctx)
	if err != nil {
		t.Fatalf("reload catalog: %v", err)
	}
	if len(loaded.Modes) != 4 || loaded.SchemaVersion != domain.SchemaVersion {
		t.Fatalf("unexpected reloaded catalog: %d modes, schema %d", len(loaded.Modes), loaded.SchemaVersion)
	}
}

func TestActiveModeStoreAbsenceIsSentinel(t *testing.T) {
	t.Parallel()
	store := focusout.NewFileActiveModeStore(t.TempDir())
	ctx := context.Background()

	if _, err := store.Load(ctx); err != apperrors.ErrNoActiveMode {
		t.Fatalf("expected ErrNoActiveMode, got %v", err)
	}
	if err := store.Save(ctx, "work"); err != nil {
		t.Fatalf("save pointer: %v", err)
	}
	activeID, err := store.Load(ctx)
	if err != nil {
		t.Fatalf("load pointer: %v", err)
	}
	if activeID != "work" {
		t.Fatalf("expected work, got %s", activeID)
	}
	if err := store.Clear(ctx); err != nil {
		t.Fatalf("clear pointer: %v", err)
	}
	if _, err := store.Load(ctx); err != apperrors.ErrNoActiveMode {
		t.Fatalf("expected ErrNoActiveMode after clear, got %v", err)
	}
	// Clearing twice is fine.
	if err := store.Clear(ctx); err != nil {
		t.Fatalf("second clear: %v", err)
	}
}

func TestSettingsStoreAbsenceIsSentinel(t *testing.T) {
	t.Parallel()
	store := focusout.NewFileSettingsStore(t.TempDir())
	ctx := context.Background()

	if _, err := store.Load(ctx); err != domain.ErrSettingsMissing {
		t.Fatalf("expected ErrSettingsMissing, got %v", err)
	}
	settings := domain.DefaultSettings()
	settings.BreakGlassPhrase = "open sesame"
	if err := store.Save(ctx, settings); err != nil {
		t.Fatalf("save settings: %v", err)
	}
	loaded, err := store.Load(ctx)
	if err != nil {
		t.Fatalf("load settings: %v", err)
	}
	if loaded.BreakGlassPhrase != "open sesame" || loaded.EveningCheckInTime != "21:00" {
		t.Fatalf("unexpected settings %+v", loaded)
	}
}
