package usecase

import (
	"context"

	"focusctl/internal/modules/device/domain"
	"focusctl/internal/modules/device/dto"
	devicein "focusctl/internal/modules/device/port/in"
	deviceout "focusctl/internal/modules/device/port/out"
	"focusctl/internal/modules/device/service"
)

type Interactor struct {
	svc  *service.DeviceService
	host deviceout.Host
}

func NewInteractor(svc *service.DeviceService, host deviceout.Host) devicein.Usecase {
	return &Interactor{svc: svc, host: host}
}

func (i *Interactor) Status(ctx context.Context) (dto.StatusOutput, error) {
	info, err := i.host.Info(ctx)
	if err != nil {
		return dto.StatusOutput{}, err
	}
	granted, err := i.host.IsPermissionGranted(ctx)
	if err != nil {
		return dto.StatusOutput{}, err
	}
	grayscale, err := i.host.IsGrayscaleEnabled(ctx)
	if err != nil {
		return dto.StatusOutput{}, err
	}
	blocked, err := i.host.BlockedApps(ctx)
	if err != nil {
		return dto.StatusOutput{}, err
	}
	return dto.StatusOutput{
		Info:              dto.InfoOutput{Name: info.Name, Platform: info.Platform, Version: info.Version},
		PermissionGranted: granted,
		GrayscaleEnabled:  grayscale,
		BlockedApps:       blocked,
	}, nil
}

func (i *Interactor) ListApps(ctx context.Context) ([]domain.InstalledApp, error) {
	return i.svc.ListApps(ctx)
}

func (i *Interactor) LaunchApp(ctx context.Context, packageName string) error {
	return i.svc.LaunchApp(ctx, packageName)
}

func (i *Interactor) IsPermissionGranted(ctx context.Context) (bool, error) {
	return i.host.IsPermissionGranted(ctx)
}

func (i *Interactor) RequestPermission(ctx context.Context) error {
	return i.host.RequestPermission(ctx)
}

func (i *Interactor) SetBlockedApps(ctx context.Context, packageNames []string, reason string) error {
	return i.host.SetBlockedApps(ctx, packageNames, reason)
}

func (i *Interactor) ClearBlockedApps(ctx context.Context) error {
	return i.host.ClearBlockedApps(ctx)
}

func (i *Interactor) BlockedApps(ctx context.Context) ([]string, error) {
	return i.host.BlockedApps(ctx)
}

func (i *Interactor) SetBreakGlassPhrase(ctx context.Context, phrase string) error {
	return i.host.SetBreakGlassPhrase(ctx, phrase)
}

func (i *Interactor) EnableGrayscale(ctx context.Context) error {
	return i.host.EnableGrayscale(ctx)
}

func (i *Interactor) DisableGrayscale(ctx context.Context) error {
	return i.host.DisableGrayscale(ctx)
}

func (i *Interactor) IsGrayscaleEnabled(ctx context.Context) (bool, error) {
	return i.host.IsGrayscaleEnabled(ctx)
}

func (i *Interactor) ToggleGrayscale(ctx context.Context) (bool, error) {
	return i.host.ToggleGrayscale(ctx)
}
