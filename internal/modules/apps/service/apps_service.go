package service

import (
	"context"
	"strings"

	"focusctl/internal/modules/apps/domain"
	appsout "focusctl/internal/modules/apps/port/out"
)

type AppsService struct {
	favorites appsout.FavoritesStore
	usage     appsout.UsageStore
	inventory appsout.Inventory
	launcher  appsout.Launcher
}

func NewAppsService(favorites appsout.FavoritesStore, usage appsout.UsageStore, inventory appsout.Inventory, launcher appsout.Launcher) *AppsService {
	return &AppsService{favorites: favorites, usage: usage, inventory: inventory, launcher: launcher}
}

func (s *AppsService) List(ctx context.Context) ([]domain.App, domain.Favorites, domain.Usage, error) {
	apps, err := s.inventory.ListApps(ctx)
	if err != nil {
		return nil, domain.Favorites{}, domain.Usage{}, err
	}
	favorites, err := s.favorites.Load(ctx)
	if err != nil {
		return nil, domain.Favorites{}, domain.Usage{}, err
	}
	usage, err := s.usage.Load(ctx)
	if err != nil {
		return nil, domain.Favorites{}, domain.Usage{}, err
	}
	return apps, favorites, usage, nil
}

func (s *AppsService) Favorites(ctx context.Context) (domain.Favorites, error) {
	return s.favorites.Load(ctx)
}

func (s *AppsService) ToggleFavorite(ctx context.Context, packageName string) (domain.Favorites, bool, error) {
	if strings.TrimSpace(packageName) == "" {
		return domain.Favorites{}, false, domain.ErrEmptyPackageName
	}
	favorites, err := s.favorites.Load(ctx)
	if err != nil {
		return domain.Favorites{}, false, err
	}
	favorites, changed := favorites.Toggle(packageName)
	if !changed {
		return favorites, false, nil
	}
	if err := s.favorites.Save(ctx, favorites); err != nil {
		return domain.Favorites{}, false, err
	}
	return favorites, true, nil
}

// Launch tallies the open before handing off to the device so the counter
// survives even when the launched app never returns control.
func (s *AppsService) Launch(ctx context.Context, packageName string) (int, error) {
	if strings.TrimSpace(packageName) == "" {
		return 0, domain.ErrEmptyPackageName
	}
	usage, err := s.usage.Load(ctx)
	if err != nil {
		return 0, err
	}
	usage = usage.Increment(packageName)
	if err := s.usage.Save(ctx, usage); err != nil {
		return 0, err
	}
	if err := s.launcher.Launch(ctx, packageName); err != nil {
		return 0, err
	}
	return usage.Count(packageName), nil
}
