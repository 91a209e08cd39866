package out

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"focusctl/internal/modules/focus/domain"
	focusout "focusctl/internal/modules/focus/port/out"
)

type FileSettingsStore struct {
	path string
}

func NewFileSettingsStore(stateDir string) focusout.SettingsStore {
	return &FileSettingsStore{path: filepath.Join(stateDir, "settings.json")}
}

func (s *FileSettingsStore) Load(_ context.Context) (domain.Settings, error) {
	payload, err := os.ReadFile(s.path)
	if err != nil {
		if os.IsNotExist(err) {
			return domain.Settings{}, domain.ErrSettingsMissing
		}
		return domain.Settings{}, fmt.Errorf("read settings: %w", err)
	}
	settings := domain.Settings{}
	if err := json.Unmarshal(payload, &settings); err != nil {
		return domain.Settings{}, fmt.Errorf("decode settings: %w", err)
	}
	return settings, nil
}

func (s *FileSettingsStore) Save(_ context.Context, settings domain.Settings) error {
	settings.SchemaVersion = domain.SchemaVersion
	if err := os.MkdirAll(filepath.Dir(s.path), 0o755); err != nil {
		return fmt.Errorf("create state dir: %w", err)
	}
	payload, err := json.MarshalIndent(settings, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal settings: %w", err)
	}
	if err := os.WriteFile(s.path, payload, 0o644); err != nil {
		return fmt.Errorf("write settings: %w", err)
	}
	return nil
}
