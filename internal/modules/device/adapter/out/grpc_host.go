package out

import (
	"context"
	"fmt"
	"io"
	"os/exec"
	"strings"
	"time"

	hclog "github.com/hashicorp/go-hclog"
	"github.com/hashicorp/go-plugin"

	devicerpc "focusctl/internal/modules/device/adapter/out/rpc"
	"focusctl/internal/modules/device/domain"
	deviceout "focusctl/internal/modules/device/port/out"
	apperrors "focusctl/internal/platform/errors"
)

const (
	defaultStartTimeout = 3 * time.Second
	defaultCallTimeout  = 5 * time.Second
)

// GRPCHost spawns the configured device plugin binary per call and speaks the
// device RPC contract over go-plugin.
type GRPCHost struct {
	binary string
}

func NewGRPCHost(binary string) deviceout.Host {
	return &GRPCHost{binary: binary}
}

func (h *GRPCHost) Info(ctx context.Context) (domain.Info, error) {
	var info domain.Info
	err := h.withClient(ctx, func(callCtx context.Context, client devicerpc.DevicePluginClient) error {
		resp, err := client.GetDeviceInfo(callCtx)
		if err != nil {
			return fmt.Errorf("get device info: %w", err)
		}
		info = domain.Info{Name: resp.Name, Platform: resp.Platform, Version: resp.Version}
		return nil
	})
	return info, err
}

func (h *GRPCHost) ListApps(ctx context.Context) ([]domain.InstalledApp, error) {
	var apps []domain.InstalledApp
	err := h.withClient(ctx, func(callCtx context.Context, client devicerpc.DevicePluginClient) error {
		resp, err := client.ListApps(callCtx)
		if err != nil {
			return fmt.Errorf("list apps: %w", err)
		}
		apps = make([]domain.InstalledApp, 0, len(resp.Apps))
		for _, app := range resp.Apps {
			apps = append(apps, domain.InstalledApp{PackageName: app.PackageName, AppName: app.AppName})
		}
		return nil
	})
	return apps, err
}

func (h *GRPCHost) LaunchApp(ctx context.Context, packageName string) error {
	return h.withClient(ctx, func(callCtx context.Context, client devicerpc.DevicePluginClient) error {
		if _, err := client.LaunchApp(callCtx, &devicerpc.LaunchAppRequest{PackageName: packageName}); err != nil {
			return fmt.Errorf("launch app: %w", err)
		}
		return nil
	})
}

func (h *GRPCHost) IsPermissionGranted(ctx context.Context) (bool, error) {
	var granted bool
	err := h.withClient(ctx, func(callCtx context.Context, client devicerpc.DevicePluginClient) error {
		resp, err := client.IsPermissionGranted(callCtx)
		if err != nil {
			return fmt.Errorf("check permission: %w", err)
		}
		granted = resp.Value
		return nil
	})
	return granted, err
}

func (h *GRPCHost) RequestPermission(ctx context.Context) error {
	return h.withClient(ctx, func(callCtx context.Context, client devicerpc.DevicePluginClient) error {
		if _, err := client.RequestPermission(callCtx); err != nil {
			return fmt.Errorf("request permission: %w", err)
		}
		return nil
	})
}

func (h *GRPCHost) SetBlockedApps(ctx context.Context, packageNames []string, reason string) error {
	return h.withClient(ctx, func(callCtx context.Context, client devicerpc.DevicePluginClient) error {
		req := &devicerpc.SetBlockedAppsRequest{PackageNames: packageNames, Reason: reason}
		if _, err := client.SetBlockedApps(callCtx, req); err != nil {
			return fmt.Errorf("set blocked apps: %w", err)
		}
		return nil
	})
}

func (h *GRPCHost) ClearBlockedApps(ctx context.Context) error {
	return h.withClient(ctx, func(callCtx context.Context, client devicerpc.DevicePluginClient) error {
		if _, err := client.ClearBlockedApps(callCtx); err != nil {
			return fmt.Errorf("clear blocked apps: %w", err)
		}
		return nil
	})
}

func (h *GRPCHost) BlockedApps(ctx context.Context) ([]string, error) {
	var blocked []string
	err := h.withClient(ctx, func(callCtx context.Context, client devicerpc.DevicePluginClient) error {
		resp, err := client.GetBlockedApps(callCtx)
		if err != nil {
			return fmt.Errorf("get blocked apps: %w", err)
		}
		blocked = resp.PackageNames
		return nil
	})
	return blocked, err
}

func (h *GRPCHost) SetBreakGlassPhrase(ctx context.Context, phrase string) error {
	return h.withClient(ctx, func(callCtx context.Context, client devicerpc.DevicePluginClient) error {
		if _, err := client.SetBreakGlassPhrase(callCtx, &devicerpc.SetBreakGlassRequest{Phrase: phrase}); err != nil {
			return fmt.Errorf("set break glass phrase: %w", err)
		}
		return nil
	})
}

func (h *GRPCHost) EnableGrayscale(ctx context.Context) error {
	return h.withClient(ctx, func(callCtx context.Context, client devicerpc.DevicePluginClient) error {
		if _, err := client.EnableGrayscale(callCtx); err != nil {
			return fmt.Errorf("enable grayscale: %w", err)
		}
		return nil
	})
}

func (h *GRPCHost) DisableGrayscale(ctx context.Context) error {
	return h.withClient(ctx, func(callCtx context.Context, client devicerpc.DevicePluginClient) error {
		if _, err := client.DisableGrayscale(callCtx); err != nil {
			return fmt.Errorf("disable grayscale: %w", err)
		}
		return nil
	})
}

func (h *GRPCHost) IsGrayscaleEnabled(ctx context.Context) (bool, error) {
	var enabled bool
	err := h.withClient(ctx, func(callCtx context.Context, client devicerpc.DevicePluginClient) error {
		resp, err := client.IsGrayscaleEnabled(callCtx)
		if err != nil {
			return fmt.Errorf("check grayscale: %w", err)
		}
		enabled = resp.Value
		return nil
	})
	return enabled, err
}

func (h *GRPCHost) ToggleGrayscale(ctx context.Context) (bool, error) {
	var enabled bool
	err := h.withClient(ctx, func(callCtx context.Context, client devicerpc.DevicePluginClient) error {
		resp, err := client.ToggleGrayscale(callCtx)
		if err != nil {
			return fmt.Errorf("toggle grayscale: %w", err)
		}
		enabled = resp.Value
		return nil
	})
	return enabled, err
}

func (h *GRPCHost) withClient(ctx context.Context, fn func(context.Context, devicerpc.DevicePluginClient) error) error {
	if strings.TrimSpace(h.binary) == "" {
		return domain.ErrPluginNotConfigured
	}
	client := plugin.NewClient(&plugin.ClientConfig{
		HandshakeConfig:  devicerpc.HandshakeConfig,
		AllowedProtocols: []plugin.Protocol{plugin.ProtocolGRPC},
		Plugins:          devicerpc.PluginMap(nil),
		Cmd:              exec.Command(h.binary),
		Managed:          true,
		StartTimeout:     defaultStartTimeout,
		Logger:           hclog.New(&hclog.LoggerOptions{Output: io.Discard, Level: hclog.NoLevel}),
	})
	defer client.Kill()

	rpcClient, err := client.Client()
	if err != nil {
		return fmt.Errorf("%w: start device plugin: %v", apperrors.ErrDeviceUnavailable, err)
	}
	raw, err := rpcClient.Dispense(devicerpc.PluginMapKey)
	if err != nil {
		return fmt.Errorf("%w: dispense device plugin: %v", apperrors.ErrDeviceUnavailable, err)
	}
	typed, ok := raw.(devicerpc.DevicePluginClient)
	if !ok {
		return fmt.Errorf("%w: device rpc client type mismatch", apperrors.ErrDeviceUnavailable)
	}

	callCtx, cancel := callContext(ctx, defaultCallTimeout)
	defer cancel()
	return fn(callCtx, typed)
}

func callContext(parent context.Context, timeout time.Duration) (context.Context, context.CancelFunc) {
	if _, ok := parent.Deadline(); ok {
		return context.WithCancel(parent)
	}
	return context.WithTimeout(parent, timeout)
}
