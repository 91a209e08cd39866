package usecase_test

import (
	"context"
	"errors"
	"testing"

	appsout "focusctl/internal/modules/apps/adapter/out"
	"focusctl/internal/modules/apps/domain"
	appsin "focusctl/internal/modules/apps/port/in"
	"focusctl/internal/modules/apps/service"
	"focusctl/internal/modules/apps/usecase"
)

// fakeDevice implements the inventory and launcher ports in memory.
type fakeDevice struct {
	apps      []domain.App
	launched  []string
	launchErr error
}

func (f *fakeDevice) ListApps(context.Context) ([]domain.App, error) { return f.apps, nil }
func (f *fakeDevice) Launch(_ context.Context, packageName string) error {
	if f.launchErr != nil {
		return f.launchErr
	}
	f.launched = append(f.launched, packageName)
	return nil
}

func newShelf(t *testing.T, device *fakeDevice) appsin.Usecase {
	t.Helper()
	stateDir := t.TempDir()
	return usecase.NewInteractor(service.NewAppsService(
		appsout.NewFileFavoritesStore(stateDir),
		appsout.NewFileUsageStore(stateDir),
		device,
		device,
	))
}

func TestListMergesFavoritesAndUsage(t *testing.T) {
	t.Parallel()
	device := &fakeDevice{apps: []domain.App{
		{PackageName: "com.a", AppName: "Alpha"},
		{PackageName: "com.b", AppName: "Beta"},
	}}
	uc := newShelf(t, device)
	ctx := context.Background()

	if _, err := uc.ToggleFavorite(ctx, "com.b"); err != nil {
		t.Fatalf("toggle favorite: %v", err)
	}
	if _, err := uc.Launch(ctx, "com.a"); err != nil {
		t.Fatalf("launch: %v", err)
	}
	if _, err := uc.Launch(ctx, "com.a"); err != nil {
		t.Fatalf("launch: %v", err)
	}

	list, err := uc.List(ctx)
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(list) != 2 {
		t.Fatalf("expected 2 apps, got %d", len(list))
	}
	if list[0].PackageName != "com.a" || list[0].Favorite || list[0].Opens != 2 {
		t.Fatalf("unexpected com.a entry %+v", list[0])
	}
	if list[1].PackageName != "com.b" || !list[1].Favorite || list[1].Opens != 0 {
		t.Fatalf("unexpected com.b entry %+v", list[1])
	}
}

func TestToggleFavoriteReportsCap(t *testing.T) {
	t.Parallel()
	uc := newShelf(t, &fakeDevice{})
	ctx := context.Background()

	pkgs := []string{"com.1", "com.2", "com.3", "com.4", "com.5"}
	for _, pkg := range pkgs {
		out, err := uc.ToggleFavorite(ctx, pkg)
		if err != nil {
			t.Fatalf("toggle %s: %v", pkg, err)
		}
		if !out.Changed {
			t.Fatalf("pin %s must succeed", pkg)
		}
	}
	out, err := uc.ToggleFavorite(ctx, "com.6")
	if err != nil {
		t.Fatalf("toggle over cap: %v", err)
	}
	if out.Changed || len(out.Favorites) != domain.MaxFavorites {
		t.Fatalf("expected silent no-op at cap, got %+v", out)
	}

	if _, err := uc.ToggleFavorite(ctx, ""); err != domain.ErrEmptyPackageName {
		t.Fatalf("expected ErrEmptyPackageName, got %v", err)
	}
}

func TestLaunchCountsOpenBeforeHandingOff(t *testing.T) {
	t.Parallel()
	device := &fakeDevice{}
	uc := newShelf(t, device)
	ctx := context.Background()

	out, err := uc.Launch(ctx, "com.a")
	if err != nil {
		t.Fatalf("launch: %v", err)
	}
	if out.Opens != 1 {
		t.Fatalf("expected 1 open, got %d", out.Opens)
	}
	if len(device.launched) != 1 || device.launched[0] != "com.a" {
		t.Fatalf("device never launched, got %v", device.launched)
	}

	// A failed hand-off still keeps the tally: the count was written first.
	device.launchErr = errors.New("blocked")
	if _, err := uc.Launch(ctx, "com.a"); err == nil {
		t.Fatalf("expected launch error")
	}
	device.launchErr = nil
	out, err = uc.Launch(ctx, "com.a")
	if err != nil {
		t.Fatalf("launch: %v", err)
	}
	if out.Opens != 3 {
		t.Fatalf("expected 3 opens including the failed hand-off, got %d", out.Opens)
	}
}

func TestFavoritesReturnsPinOrder(t *testing.T) {
	t.Parallel()
	uc := newShelf(t, &fakeDevice{})
	ctx := context.Background()

	for _, pkg := range []string{"com.z", "com.a"} {
		if _, err := uc.ToggleFavorite(ctx, pkg); err != nil {
			t.Fatalf("toggle: %v", err)
		}
	}
	favorites, err := uc.Favorites(ctx)
	if err != nil {
		t.Fatalf("favorites: %v", err)
	}
	if len(favorites) != 2 || favorites[0] != "com.z" || favorites[1] != "com.a" {
		t.Fatalf("expected pin order [com.z com.a], got %v", favorites)
	}
}
