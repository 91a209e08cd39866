package domain_test

import (
	"reflect"
	"testing"
	"time"

	"focusctl/internal/modules/focus/domain"
)

func TestBlockSetIsComplementOfAllowList(t *testing.T) {
	t.Parallel()
	mode := domain.FocusMode{ID: "work", Name: "Work", AllowedApps: []string{"a", "c"}}
	inventory := []string{"c", "b", "a", "d"}

	blocked := domain.BlockSet(mode, inventory)
	if !reflect.DeepEqual(blocked, []string{"b", "d"}) {
		t.Fatalf("expected [b d], got %v", blocked)
	}
	for _, pkg := range blocked {
		if mode.Allows(pkg) {
			t.Fatalf("blocked app %s is on the allow-list", pkg)
		}
	}
}

func TestBlockSetIgnoresAllowedAppsNotInstalled(t *testing.T) {
	t.Parallel()
	mode := domain.FocusMode{ID: "m", Name: "M", AllowedApps: []string{"a", "ghost"}}
	blocked := domain.BlockSet(mode, []string{"a", "b"})
	if !reflect.DeepEqual(blocked, []string{"b"}) {
		t.Fatalf("expected [b], got %v", blocked)
	}
}

func TestBlockSetDeduplicatesInventory(t *testing.T) {
	t.Parallel()
	mode := domain.FocusMode{ID: "m", Name: "M"}
	blocked := domain.BlockSet(mode, []string{"b", "b", "a", "a"})
	if !reflect.DeepEqual(blocked, []string{"a", "b"}) {
		t.Fatalf("expected [a b], got %v", blocked)
	}
}

func TestBlockSetEmptyAllowListBlocksEverything(t *testing.T) {
	t.Parallel()
	mode := domain.FocusMode{ID: "m", Name: "M"}
	inventory := []string{"x", "y"}
	blocked := domain.BlockSet(mode, inventory)
	if len(blocked) != len(inventory) {
		t.Fatalf("expected all %d apps blocked, got %v", len(inventory), blocked)
	}
}

func TestNormalizeMarksExactlyOneModeActive(t *testing.T) {
	t.Parallel()
	catalog := domain.Catalog{Modes: []domain.FocusMode{
		{ID: "a", Name: "A", IsActive: true},
		{ID: "b", Name: "B"},
	}}

	normalized, changed := domain.Normalize(catalog, "b")
	if !changed {
		t.Fatalf("expected normalization to report a change")
	}
	if normalized.Modes[0].IsActive || !normalized.Modes[1].IsActive {
		t.Fatalf("expected only b active, got %+v", normalized.Modes)
	}

	// Original slice must be untouched.
	if !catalog.Modes[0].IsActive {
		t.Fatalf("normalize mutated the input catalog")
	}

	again, changed := domain.Normalize(normalized, "b")
	if changed {
		t.Fatalf("expected idempotent normalize, got change: %+v", again.Modes)
	}
}

func TestNormalizeEmptyIDClearsAllFlags(t *testing.T) {
	t.Parallel()
	catalog := domain.Catalog{Modes: []domain.FocusMode{
		{ID: "a", Name: "A", IsActive: true},
		{ID: "b", Name: "B", IsActive: true},
	}}
	normalized, changed := domain.Normalize(catalog, "")
	if !changed {
		t.Fatalf("expected change")
	}
	for _, mode := range normalized.Modes {
		if mode.IsActive {
			t.Fatalf("expected no active mode, got %+v", mode)
		}
	}
}

func TestPresetModes(t *testing.T) {
	t.Parallel()
	presets := domain.PresetModes()
	if len(presets) != 4 {
		t.Fatalf("expected 4 presets, got %d", len(presets))
	}
	wantIDs := []string{"emergency", "work", "reading", "sleep"}
	for i, mode := range presets {
		if mode.ID != wantIDs[i] {
			t.Fatalf("expected preset %s at index %d, got %s", wantIDs[i], i, mode.ID)
		}
		if mode.IsCustom || mode.IsActive {
			t.Fatalf("preset %s must not be custom or active", mode.ID)
		}
		if len(mode.AllowedApps) == 0 {
			t.Fatalf("preset %s has an empty allow-list", mode.ID)
		}
	}
	work, _ := domain.Catalog{Modes: presets}.Find("work")
	if work.EnableGrayscale {
		t.Fatalf("work mode must not force grayscale")
	}
	for _, id := range []string{"emergency", "reading", "sleep"} {
		mode, _ := domain.Catalog{Modes: presets}.Find(id)
		if !mode.EnableGrayscale {
			t.Fatalf("preset %s must enable grayscale", id)
		}
	}
	if err := (domain.Catalog{Modes: presets}).Validate(); err != nil {
		t.Fatalf("presets must validate: %v", err)
	}
}

func TestNewCustomModeDerivesIDFromCreationTime(t *testing.T) {
	t.Parallel()
	createdAt := time.Date(2026, 3, 1, 9, 30, 0, 0, time.UTC)
	mode := domain.NewCustomMode("  Deep Work ", []string{"a", "", "a", "b"}, createdAt)

	wantID := "custom-" + "1772357400000"
	if mode.ID != wantID {
		t.Fatalf("expected id %s, got %s", wantID, mode.ID)
	}
	if mode.Name != "Deep Work" {
		t.Fatalf("expected trimmed name, got %q", mode.Name)
	}
	if !reflect.DeepEqual(mode.AllowedApps, []string{"a", "b"}) {
		t.Fatalf("expected deduped allow-list, got %v", mode.AllowedApps)
	}
}

func TestCatalogValidateRejectsDuplicatesAndBlankModes(t *testing.T) {
	t.Parallel()
	dup := domain.Catalog{Modes: []domain.FocusMode{
		{ID: "a", Name: "A"},
		{ID: "a", Name: "Other"},
	}}
	if err := dup.Validate(); err == nil {
		t.Fatalf("expected duplicate id error")
	}
	blank := domain.Catalog{Modes: []domain.FocusMode{{ID: "a"}}}
	if err := blank.Validate(); err != domain.ErrEmptyModeName {
		t.Fatalf("expected ErrEmptyModeName, got %v", err)
	}
}

func TestBlockReason(t *testing.T) {
	t.Parallel()
	reason := domain.BlockReason(domain.FocusMode{ID: "work", Name: "Work Mode"})
	if reason != "Focus Mode: Work Mode" {
		t.Fatalf("unexpected reason %q", reason)
	}
}
