package out

import (
	"context"

	"focusctl/internal/modules/apps/domain"
	appsout "focusctl/internal/modules/apps/port/out"
	devicein "focusctl/internal/modules/device/port/in"
)

// DeviceInventoryAdapter narrows the device usecase to the apps module's
// inventory and launcher ports.
type DeviceInventoryAdapter struct {
	device devicein.Usecase
}

func NewDeviceInventoryAdapter(device devicein.Usecase) *DeviceInventoryAdapter {
	return &DeviceInventoryAdapter{device: device}
}

var (
	_ appsout.Inventory = (*DeviceInventoryAdapter)(nil)
	_ appsout.Launcher  = (*DeviceInventoryAdapter)(nil)
)

func (a *DeviceInventoryAdapter) ListApps(ctx context.Context) ([]domain.App, error) {
	apps, err := a.device.ListApps(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]domain.App, 0, len(apps))
	for _, app := range apps {
		out = append(out, domain.App{PackageName: app.PackageName, AppName: app.AppName})
	}
	return out, nil
}

func (a *DeviceInventoryAdapter) Launch(ctx context.Context, packageName string) error {
	return a.device.LaunchApp(ctx, packageName)
}
