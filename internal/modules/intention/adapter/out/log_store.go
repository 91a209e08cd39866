package out

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"focusctl/internal/modules/intention/domain"
	intentionout "focusctl/internal/modules/intention/port/out"
)

type FileLogStore struct {
	path string
}

func NewFileLogStore(stateDir string) intentionout.LogStore {
	return &FileLogStore{path: filepath.Join(stateDir, "intentions.json")}
}

func (s *FileLogStore) Load(_ context.Context) (domain.Log, error) {
	payload, err := os.ReadFile(s.path)
	if err != nil {
		if os.IsNotExist(err) {
			return domain.Log{SchemaVersion: domain.SchemaVersion}, nil
		}
		return domain.Log{}, fmt.Errorf("read intention log: %w", err)
	}
	log := domain.Log{}
	if err := json.Unmarshal(payload, &log); err != nil {
		return domain.Log{}, fmt.Errorf("decode intention log: %w", err)
	}
	return log, nil
}

func (s *FileLogStore) Save(_ context.Context, log domain.Log) error {
	log.SchemaVersion = domain.SchemaVersion
	if err := os.MkdirAll(filepath.Dir(s.path), 0o755); err != nil {
		return fmt.Errorf("create state dir: %w", err)
	}
	payload, err := json.MarshalIndent(log, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal intention log: %w", err)
	}
	if err := os.WriteFile(s.path, payload, 0o644); err != nil {
		return fmt.Errorf("write intention log: %w", err)
	}
	return nil
}
