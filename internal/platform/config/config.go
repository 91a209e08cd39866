package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// fileConfig is the optional on-disk override, read from <data-dir>/config.yaml.
type fileConfig struct {
	DevicePlugin string `yaml:"device_plugin"`
}

type Config struct {
	DataDir      string
	StateDir     string
	DBPath       string
	DevicePlugin string
}

func New(dataDir string) (Config, error) {
	if dataDir == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return Config{}, fmt.Errorf("resolve home dir: %w", err)
		}
		dataDir = filepath.Join(home, ".focusctl")
	}
	cfg := Config{
		DataDir:      dataDir,
		StateDir:     filepath.Join(dataDir, "state"),
		DBPath:       filepath.Join(dataDir, "focusctl.db"),
		DevicePlugin: filepath.Join(dataDir, "plugins", "device"),
	}

	raw, err := os.ReadFile(filepath.Join(dataDir, "config.yaml"))
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return Config{}, fmt.Errorf("read config: %w", err)
	}
	overrides := fileConfig{}
	if err := yaml.Unmarshal(raw, &overrides); err != nil {
		return Config{}, fmt.Errorf("decode config: %w", err)
	}
	if overrides.DevicePlugin != "" {
		cfg.DevicePlugin = overrides.DevicePlugin
	}
	return cfg, nil
}
