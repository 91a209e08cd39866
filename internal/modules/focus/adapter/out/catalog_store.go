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

type FileCatalogStore struct {
	path string
}

func NewFileCatalogStore(stateDir string) focusout.CatalogStore {
	return &FileCatalogStore{path: filepath.Join(stateDir, "focus-modes.json")}
}

func (s *FileCatalogStore) Load(_ context.Context) (domain.Catalog, error) {
	payload, err := os.ReadFile(s.path)
	if err != nil {
		if os.IsNotExist(err) {
			return domain.Catalog{SchemaVersion: domain.SchemaVersion}, nil
		}
		return domain.Catalog{}, fmt.Errorf("read catalog: %w", err)
	}
	catalog := domain.Catalog{}
	if err := json.Unmarshal(payload, &catalog); err != nil {
		return domain.Catalog{}, fmt.Errorf("decode catalog: %w", err)
	}
	return catalog, nil
}

func (s *FileCatalogStore) Save(_ context.Context, catalog domain.Catalog) error {
	catalog.SchemaVersion = domain.SchemaVersion
	if err := os.MkdirAll(filepath.Dir(s.path), 0o755); err != nil {
		return fmt.Errorf("create state dir: %w", err)
	}
	payload, err := json.MarshalIndent(catalog, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal catalog: %w", err)
	}
	if err := os.WriteFile(s.path, payload, 0o644); err != nil {
		return fmt.Errorf("write catalog: %w", err)
	}
	return nil
}
