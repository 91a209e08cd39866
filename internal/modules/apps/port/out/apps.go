package out

import (
	"context"

	"focusctl/internal/modules/apps/domain"
)

// FavoritesStore persists the home-row record. Load returns an empty record
// before the first save.
type FavoritesStore interface {
	Load(ctx context.Context) (domain.Favorites, error)
	Save(ctx context.Context, favorites domain.Favorites) error
}

// UsageStore persists the open counters the same way.
type UsageStore interface {
	Load(ctx context.Context) (domain.Usage, error)
	Save(ctx context.Context, usage domain.Usage) error
}

// Inventory lists installed apps at call time.
type Inventory interface {
	ListApps(ctx context.Context) ([]domain.App, error)
}

// Launcher starts an app on the device.
type Launcher interface {
	Launch(ctx context.Context, packageName string) error
}
