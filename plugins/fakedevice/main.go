// Command fakedevice is a simulated device plugin for development. It keeps
// its enforcement state in a JSON file so consecutive focusctl invocations
// observe the same blocked apps and grayscale switch.
package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"github.com/hashicorp/go-plugin"

	devicerpc "focusctl/internal/modules/device/adapter/out/rpc"
)

type deviceState struct {
	PermissionGranted bool     `json:"permission_granted"`
	GrayscaleEnabled  bool     `json:"grayscale_enabled"`
	BlockedApps       []string `json:"blocked_apps"`
	BlockReason       string   `json:"block_reason,omitempty"`
	BreakGlassPhrase  string   `json:"break_glass_phrase,omitempty"`
}

type server struct {
	mu   sync.Mutex
	path string
}

func newServer() (*server, error) {
	path := os.Getenv("FOCUSCTL_FAKEDEVICE_STATE")
	if path == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, fmt.Errorf("resolve home dir: %w", err)
		}
		path = filepath.Join(home, ".focusctl", "fakedevice.json")
	}
	return &server{path: path}, nil
}

func (s *server) load() (deviceState, error) {
	payload, err := os.ReadFile(s.path)
	if err != nil {
		if os.IsNotExist(err) {
			return deviceState{}, nil
		}
		return deviceState{}, fmt.Errorf("read device state: %w", err)
	}
	state := deviceState{}
	if err := json.Unmarshal(payload, &state); err != nil {
		return deviceState{}, fmt.Errorf("decode device state: %w", err)
	}
	return state, nil
}

func (s *server) save(state deviceState) error {
	if err := os.MkdirAll(filepath.Dir(s.path), 0o755); err != nil {
		return fmt.Errorf("create state dir: %w", err)
	}
	payload, err := json.MarshalIndent(state, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal device state: %w", err)
	}
	if err := os.WriteFile(s.path, payload, 0o644); err != nil {
		return fmt.Errorf("write device state: %w", err)
	}
	return nil
}

func (s *server) mutate(apply func(*deviceState)) (deviceState, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	state, err := s.load()
	if err != nil {
		return deviceState{}, err
	}
	apply(&state)
	if err := s.save(state); err != nil {
		return deviceState{}, err
	}
	return state, nil
}

func (s *server) GetDeviceInfo(_ context.Context, _ *devicerpc.Empty) (*devicerpc.DeviceInfo, error) {
	return &devicerpc.DeviceInfo{Name: "fakedevice", Platform: "simulator", Version: "1.0.0"}, nil
}

func (s *server) ListApps(_ context.Context, _ *devicerpc.Empty) (*devicerpc.ListAppsResponse, error) {
	return &devicerpc.ListAppsResponse{Apps: []devicerpc.InstalledApp{
		{PackageName: "com.android.dialer", AppName: "Phone"},
		{PackageName: "com.android.mms", AppName: "Messages"},
		{PackageName: "com.android.camera", AppName: "Camera"},
		{PackageName: "com.android.chrome", AppName: "Chrome"},
		{PackageName: "com.google.android.gm", AppName: "Gmail"},
		{PackageName: "com.google.android.calendar", AppName: "Calendar"},
		{PackageName: "com.google.android.apps.maps", AppName: "Maps"},
		{PackageName: "com.google.android.keep", AppName: "Keep Notes"},
		{PackageName: "com.amazon.kindle", AppName: "Kindle"},
		{PackageName: "com.spotify.music", AppName: "Spotify"},
		{PackageName: "com.instagram.android", AppName: "Instagram"},
		{PackageName: "com.twitter.android", AppName: "X"},
	}}, nil
}

func (s *server) LaunchApp(_ context.Context, in *devicerpc.LaunchAppRequest) (*devicerpc.Ack, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	state, err := s.load()
	if err != nil {
		return nil, err
	}
	for _, blocked := range state.BlockedApps {
		if blocked == in.PackageName {
			return nil, fmt.Errorf("app is blocked: %s (%s)", in.PackageName, state.BlockReason)
		}
	}
	return &devicerpc.Ack{OK: true}, nil
}

func (s *server) IsPermissionGranted(_ context.Context, _ *devicerpc.Empty) (*devicerpc.BoolResponse, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	state, err := s.load()
	if err != nil {
		return nil, err
	}
	return &devicerpc.BoolResponse{Value: state.PermissionGranted}, nil
}

func (s *server) RequestPermission(_ context.Context, _ *devicerpc.Empty) (*devicerpc.Ack, error) {
	// The simulator grants immediately; a real device would open a
	// system settings screen here.
	if _, err := s.mutate(func(state *deviceState) {
		state.PermissionGranted = true
	}); err != nil {
		return nil, err
	}
	return &devicerpc.Ack{OK: true}, nil
}

func (s *server) SetBlockedApps(_ context.Context, in *devicerpc.SetBlockedAppsRequest) (*devicerpc.Ack, error) {
	if _, err := s.mutate(func(state *deviceState) {
		state.BlockedApps = in.PackageNames
		state.BlockReason = in.Reason
	}); err != nil {
		return nil, err
	}
	return &devicerpc.Ack{OK: true}, nil
}

func (s *server) ClearBlockedApps(_ context.Context, _ *devicerpc.Empty) (*devicerpc.Ack, error) {
	if _, err := s.mutate(func(state *deviceState) {
		state.BlockedApps = nil
		state.BlockReason = ""
	}); err != nil {
		return nil, err
	}
	return &devicerpc.Ack{OK: true}, nil
}

func (s *server) GetBlockedApps(_ context.Context, _ *devicerpc.Empty) (*devicerpc.BlockedAppsResponse, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	state, err := s.load()
	if err != nil {
		return nil, err
	}
	return &devicerpc.BlockedAppsResponse{PackageNames: state.BlockedApps}, nil
}

func (s *server) SetBreakGlassPhrase(_ context.Context, in *devicerpc.SetBreakGlassRequest) (*devicerpc.Ack, error) {
	if _, err := s.mutate(func(state *deviceState) {
		state.BreakGlassPhrase = in.Phrase
	}); err != nil {
		return nil, err
	}
	return &devicerpc.Ack{OK: true}, nil
}

func (s *server) EnableGrayscale(_ context.Context, _ *devicerpc.Empty) (*devicerpc.Ack, error) {
	if _, err := s.mutate(func(state *deviceState) {
		state.GrayscaleEnabled = true
	}); err != nil {
		return nil, err
	}
	return &devicerpc.Ack{OK: true}, nil
}

func (s *server) DisableGrayscale(_ context.Context, _ *devicerpc.Empty) (*devicerpc.Ack, error) {
	if _, err := s.mutate(func(state *deviceState) {
		state.GrayscaleEnabled = false
	}); err != nil {
		return nil, err
	}
	return &devicerpc.Ack{OK: true}, nil
}

func (s *server) IsGrayscaleEnabled(_ context.Context, _ *devicerpc.Empty) (*devicerpc.BoolResponse, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	state, err := s.load()
	if err != nil {
		return nil, err
	}
	return &devicerpc.BoolResponse{Value: state.GrayscaleEnabled}, nil
}

func (s *server) ToggleGrayscale(_ context.Context, _ *devicerpc.BoolResponse) (*devicerpc.BoolResponse, error) {
	state, err := s.mutate(func(state *deviceState) {
		state.GrayscaleEnabled = !state.GrayscaleEnabled
	})
	if err != nil {
		return nil, err
	}
	return &devicerpc.BoolResponse{Value: state.GrayscaleEnabled}, nil
}

func main() {
	srv, err := newServer()
	if err != nil {
		_, _ = fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	plugin.Serve(&plugin.ServeConfig{
		HandshakeConfig: devicerpc.HandshakeConfig,
		Plugins:         devicerpc.PluginMap(srv),
		GRPCServer:      plugin.DefaultGRPCServer,
	})
}
