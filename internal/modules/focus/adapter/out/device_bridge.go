package out

import (
	"context"

	devicein "focusctl/internal/modules/device/port/in"
	focusout "focusctl/internal/modules/focus/port/out"
)

// DeviceBridge narrows the device usecase to the three out-ports the policy
// engine needs: enforcement, display, inventory.
type DeviceBridge struct {
	device devicein.Usecase
}

func NewDeviceBridge(device devicein.Usecase) *DeviceBridge {
	return &DeviceBridge{device: device}
}

var (
	_ focusout.Enforcer  = (*DeviceBridge)(nil)
	_ focusout.Display   = (*DeviceBridge)(nil)
	_ focusout.Inventory = (*DeviceBridge)(nil)
)

func (b *DeviceBridge) PermissionGranted(ctx context.Context) (bool, error) {
	return b.device.IsPermissionGranted(ctx)
}

func (b *DeviceBridge) RequestPermission(ctx context.Context) error {
	return b.device.RequestPermission(ctx)
}

func (b *DeviceBridge) SetBlocked(ctx context.Context, packageNames []string, reason string) error {
	return b.device.SetBlockedApps(ctx, packageNames, reason)
}

func (b *DeviceBridge) ClearBlocked(ctx context.Context) error {
	return b.device.ClearBlockedApps(ctx)
}

func (b *DeviceBridge) Blocked(ctx context.Context) ([]string, error) {
	return b.device.BlockedApps(ctx)
}

func (b *DeviceBridge) SetBreakGlassPhrase(ctx context.Context, phrase string) error {
	return b.device.SetBreakGlassPhrase(ctx, phrase)
}

func (b *DeviceBridge) EnableGrayscale(ctx context.Context) error {
	return b.device.EnableGrayscale(ctx)
}

func (b *DeviceBridge) DisableGrayscale(ctx context.Context) error {
	return b.device.DisableGrayscale(ctx)
}

func (b *DeviceBridge) GrayscaleEnabled(ctx context.Context) (bool, error) {
	return b.device.IsGrayscaleEnabled(ctx)
}

func (b *DeviceBridge) ToggleGrayscale(ctx context.Context) (bool, error) {
	return b.device.ToggleGrayscale(ctx)
}

func (b *DeviceBridge) InstalledPackages(ctx context.Context) ([]string, error) {
	apps, err := b.device.ListApps(ctx)
	if err != nil {
		return nil, err
	}
	pkgs := make([]string, 0, len(apps))
	for _, app := range apps {
		pkgs = append(pkgs, app.PackageName)
	}
	return pkgs, nil
}
