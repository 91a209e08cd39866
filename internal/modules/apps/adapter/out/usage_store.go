package out

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"focusctl/internal/modules/apps/domain"
	appsout "focusctl/internal/modules/apps/port/out"
)

type FileUsageStore struct {
	path string
}

func NewFileUsageStore(stateDir string) appsout.UsageStore {
	return &FileUsageStore{path: filepath.Join(stateDir, "app-usage.json")}
}

func (s *FileUsageStore) Load(_ context.Context) (domain.Usage, error) {
	payload, err := os.ReadFile(s.path)
	if err != nil {
		if os.IsNotExist(err) {
			return domain.Usage{SchemaVersion: domain.SchemaVersion}, nil
		}
		return domain.Usage{}, fmt.Errorf("read app usage: %w", err)
	}
	usage := domain.Usage{}
	if err := json.Unmarshal(payload, &usage); err != nil {
		return domain.Usage{}, fmt.Errorf("decode app usage: %w", err)
	}
	return usage, nil
}

func (s *FileUsageStore) Save(_ context.Context, usage domain.Usage) error {
	usage.SchemaVersion = domain.SchemaVersion
	if err := os.MkdirAll(filepath.Dir(s.path), 0o755); err != nil {
		return fmt.Errorf("create state dir: %w", err)
	}
	payload, err := json.MarshalIndent(usage, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal app usage: %w", err)
	}
	if err := os.WriteFile(s.path, payload, 0o644); err != nil {
		return fmt.Errorf("write app usage: %w", err)
	}
	return nil
}
