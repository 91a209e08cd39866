package out

import (
	"context"

	"focusctl/internal/modules/focus/domain"
)

// CatalogStore persists the full mode catalog as one record. Load returns an
// empty catalog when nothing has been persisted yet; absence is "not yet
// initialized", never an error.
type CatalogStore interface {
	Load(ctx context.Context) (domain.Catalog, error)
	Save(ctx context.Context, catalog domain.Catalog) error
}

// ActiveModeStore persists the single active-mode pointer. Load returns
// apperrors.ErrNoActiveMode when no pointer is set.
type ActiveModeStore interface {
	Load(ctx context.Context) (string, error)
	Save(ctx context.Context, modeID string) error
	Clear(ctx context.Context) error
}

// SettingsStore persists launcher settings. Load returns
// domain.ErrSettingsMissing before the first save.
type SettingsStore interface {
	Load(ctx context.Context) (domain.Settings, error)
	Save(ctx context.Context, settings domain.Settings) error
}

// Enforcer is the OS-level blocking surface.
type Enforcer interface {
	PermissionGranted(ctx context.Context) (bool, error)
	RequestPermission(ctx context.Context) error
	SetBlocked(ctx context.Context, packageNames []string, reason string) error
	ClearBlocked(ctx context.Context) error
	Blocked(ctx context.Context) ([]string, error)
	SetBreakGlassPhrase(ctx context.Context, phrase string) error
}

// Display is the grayscale switch. Policy-requested and user-toggled state are
// the same underlying switch; last writer wins.
type Display interface {
	EnableGrayscale(ctx context.Context) error
	DisableGrayscale(ctx context.Context) error
	GrayscaleEnabled(ctx context.Context) (bool, error)
	ToggleGrayscale(ctx context.Context) (bool, error)
}

// Inventory lists the installed application identifiers at call time.
type Inventory interface {
	InstalledPackages(ctx context.Context) ([]string, error)
}
