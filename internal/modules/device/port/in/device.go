package in

import (
	"context"

	"focusctl/internal/modules/device/domain"
	"focusctl/internal/modules/device/dto"
)

type Usecase interface {
	Status(ctx context.Context) (dto.StatusOutput, error)
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
