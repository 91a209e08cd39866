package out

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"focusctl/internal/modules/focus/domain"
	focusout "focusctl/internal/modules/focus/port/out"
	apperrors "focusctl/internal/platform/errors"
)

type FileActiveModeStore struct {
	path string
}

func NewFileActiveModeStore(stateDir string) focusout.ActiveModeStore {
	return &FileActiveModeStore{path: filepath.Join(stateDir, "active-mode.json")}
}

func (s *FileActiveModeStore) Load(_ context.Context) (string, error) {
	payload, err := os.ReadFile(s.path)
	if err != nil {
		if os.IsNotExist(err) {
			return "", apperrors.ErrNoActiveMode
		}
		return "", fmt.Errorf("read active mode: %w", err)
	}
	pointer := domain.ActivePointer{}
	if err := json.Unmarshal(payload, &pointer); err != nil {
		return "", fmt.Errorf("decode active mode: %w", err)
	}
	if pointer.ModeID == "" {
		return "", apperrors.ErrNoActiveMode
	}
	return pointer.ModeID, nil
}

func (s *FileActiveModeStore) Save(_ context.Context, modeID string) error {
	if err := os.MkdirAll(filepath.Dir(s.path), 0o755); err != nil {
		return fmt.Errorf("create state dir: %w", err)
	}
	pointer := domain.ActivePointer{SchemaVersion: domain.SchemaVersion, ModeID: modeID}
	payload, err := json.MarshalIndent(pointer, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal active mode: %w", err)
	}
	if err := os.WriteFile(s.path, payload, 0o644); err != nil {
		return fmt.Errorf("write active mode: %w", err)
	}
	return nil
}

func (s *FileActiveModeStore) Clear(_ context.Context) error {
	if err := os.Remove(s.path); err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		return fmt.Errorf("clear active mode: %w", err)
	}
	return nil
}
