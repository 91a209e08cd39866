package service_test

import (
	"context"
	"testing"

	"focusctl/internal/modules/device/domain"
	"focusctl/internal/modules/device/service"
)

// fakeHost implements the plugin host port in memory.
type fakeHost struct {
	apps     []domain.InstalledApp
	launched []string
}

func (f *fakeHost) Info(context.Context) (domain.Info, error) {
	return domain.Info{Name: "fake", Platform: "test", Version: "0"}, nil
}
func (f *fakeHost) ListApps(context.Context) ([]domain.InstalledApp, error) { return f.apps, nil }
func (f *fakeHost) LaunchApp(_ context.Context, packageName string) error {
	f.launched = append(f.launched, packageName)
	return nil
}
func (f *fakeHost) IsPermissionGranted(context.Context) (bool, error) { return true, nil }
func (f *fakeHost) RequestPermission(context.Context) error { return nil }
func (f *fakeHost) SetBlockedApps(context.Context, []string, string) error { return nil }
func (f *fakeHost) ClearBlockedApps(context.Context) error { return nil }
func (f *fakeHost) BlockedApps(context.Context) ([]string, error) { return nil, nil }
func (f *fakeHost) SetBreakGlassPhrase(context.Context, string) error { return nil }
func (f *fakeHost) EnableGrayscale(context.Context) error { return nil }
func (f *fakeHost) DisableGrayscale(context.Context) error { return nil }
func (f *fakeHost) IsGrayscaleEnabled(context.Context) (bool, error) { return false, nil }
func (f *fakeHost) ToggleGrayscale(context.Context) (bool, error) { return true, nil }

func TestListAppsReturnsSortedInventory(t *testing.T) {
	t.Parallel()
	host := &fakeHost{apps: []domain.InstalledApp{
		{PackageName: "com.z", AppName: "Zeta"},
		{PackageName: "com.a", AppName: "alpha"},
	}}
	svc := service.NewDeviceService(host)

	apps, err := svc.ListApps(context.Background())
	if err != nil {
		t.Fatalf("list apps: %v", err)
	}
	if apps[0].AppName != "alpha" || apps[1].AppName != "Zeta" {
		t.Fatalf("unexpected order %v", apps)
	}
}

func TestLaunchAppRequiresPackageName(t *testing.T) {
	t.Parallel()
	host := &fakeHost{}
	svc := service.NewDeviceService(host)

	if err := svc.LaunchApp(context.Background(), "  "); err != domain.ErrEmptyPackageName {
		t.Fatalf("expected ErrEmptyPackageName, got %v", err)
	}
	if err := svc.LaunchApp(context.Background(), "com.a"); err != nil {
		t.Fatalf("launch: %v", err)
	}
	if len(host.launched) != 1 || host.launched[0] != "com.a" {
		t.Fatalf("launch not forwarded, got %v", host.launched)
	}
}
