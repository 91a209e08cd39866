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

type FileFavoritesStore struct {
	path string
}

func NewFileFavoritesStore(stateDir string) appsout.FavoritesStore {
	return &FileFavoritesStore{path: filepath.Join(stateDir, "favorites.json")}
}

func (s *FileFavoritesStore) Load(_ context.Context) (domain.Favorites, error) {
	payload, err := os.ReadFile(s.path)
	if err != nil {
		if os.IsNotExist(err) {
			return domain.Favorites{SchemaVersion: domain.SchemaVersion}, nil
		}
		return domain.Favorites{}, fmt.Errorf("read favorites: %w", err)
	}
	favorites := domain.Favorites{}
	if err := json.Unmarshal(payload, &favorites); err != nil {
		return domain.Favorites{}, fmt.Errorf("decode favorites: %w", err)
	}
	return favorites, nil
}

func (s *FileFavoritesStore) Save(_ context.Context, favorites domain.Favorites) error {
	favorites.SchemaVersion = domain.SchemaVersion
	if err := os.MkdirAll(filepath.Dir(s.path), 0o755); err != nil {
		return fmt.Errorf("create state dir: %w", err)
	}
	payload, err := json.MarshalIndent(favorites, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal favorites: %w", err)
	}
	if err := os.WriteFile(s.path, payload, 0o644); err != nil {
		return fmt.Errorf("write favorites: %w", err)
	}
	return nil
}
