package out

import (
	"context"

	"focusctl/internal/modules/device/domain"
)

// Host drives the out-of-process device plugin. Every call is one short-lived
// plugin session; the plugin owns all OS-level state.
type Host interface {
	Info(ctx context.Context) (domain.Info, error)
	ListApps(ctx context.Context) ([]domain.InstalledApp, error)
	LaunchApp(ctx context.Context, packageName string) error

	IsPermissionGranted(ctx context.Context) (bool, error)
	RequestPermission(ctx context.Context) error

	SetBlockedApps(ctx context.Context, packageNames []string, reason string) error
	ClearBlockedApps(ctx context.Context) error
	BlockedApps(ctx context.Context) ([]string, error)
	SetBreakGlassPhrase(ctx context.Context, phrase string) error

	EnableGrayscale(ctx context.Context) error
	DisableGrayscale(ctx context.Context) error
	IsGrayscaleEnabled(ctx context.Context) (bool, error)
	ToggleGrayscale(ctx context.Context) (bool, error)
}
