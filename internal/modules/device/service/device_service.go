package service

import (
	"context"
	"strings"

	"focusctl/internal/modules/device/domain"
	deviceout "focusctl/internal/modules/device/port/out"
)

type DeviceService struct {
	host deviceout.Host
}

func NewDeviceService(host deviceout.Host) *DeviceService {
	return &DeviceService{host: host}
}

func (s *DeviceService) Info(ctx context.Context) (domain.Info, error) {
	return s.host.Info(ctx)
}

func (s *DeviceService) ListApps(ctx context.Context) ([]domain.InstalledApp, error) {
	apps, err := s.host.ListApps(ctx)
	if err != nil {
		return nil, err
	}
	return domain.SortApps(apps), nil
}

func (s *DeviceService) LaunchApp(ctx context.Context, packageName string) error {
	if strings.TrimSpace(packageName) == "" {
		return domain.ErrEmptyPackageName
	}
	return s.host.LaunchApp(ctx, packageName)
}
