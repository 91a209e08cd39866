package domain_test

import (
	"fmt"
	"reflect"
	"testing"

	"focusctl/internal/modules/apps/domain"
)

func TestFavoritesTogglePinsAndUnpins(t *testing.T) {
	t.Parallel()
	favorites := domain.Favorites{}

	favorites, changed := favorites.Toggle("com.a")
	if !changed || !favorites.Contains("com.a") {
		t.Fatalf("expected com.a pinned, got %+v", favorites)
	}

	favorites, changed = favorites.Toggle("com.a")
	if !changed || favorites.Contains("com.a") {
		t.Fatalf("expected com.a unpinned, got %+v", favorites)
	}
}

func TestFavoritesCapIsSilent(t *testing.T) {
	t.Parallel()
	favorites := domain.Favorites{}
	for i := 0; i < domain.MaxFavorites; i++ {
		var changed bool
		favorites, changed = favorites.Toggle(fmt.Sprintf("com.app%d", i))
		if !changed {
			t.Fatalf("pin %d must succeed", i)
		}
	}

	full, changed := favorites.Toggle("com.overflow")
	if changed {
		t.Fatalf("sixth pin must be a no-op")
	}
	if len(full.Packages) != domain.MaxFavorites || full.Contains("com.overflow") {
		t.Fatalf("cap breached: %+v", full)
	}

	// Unpinning still works at the cap.
	reduced, changed := full.Toggle("com.app0")
	if !changed || reduced.Contains("com.app0") {
		t.Fatalf("unpin at cap must work, got %+v", reduced)
	}
}

func TestFavoritesTogglePreservesPinOrder(t *testing.T) {
	t.Parallel()
	favorites := domain.Favorites{Packages: []string{"a", "b", "c"}}
	favorites, _ = favorites.Toggle("b")
	if !reflect.DeepEqual(favorites.Packages, []string{"a", "c"}) {
		t.Fatalf("expected [a c], got %v", favorites.Packages)
	}
	favorites, _ = favorites.Toggle("d")
	if !reflect.DeepEqual(favorites.Packages, []string{"a", "c", "d"}) {
		t.Fatalf("expected append at the end, got %v", favorites.Packages)
	}
}

func TestFavoritesToggleBlankIsNoOp(t *testing.T) {
	t.Parallel()
	favorites := domain.Favorites{Packages: []string{"a"}}
	out, changed := favorites.Toggle("  ")
	if changed || len(out.Packages) != 1 {
		t.Fatalf("blank package must be ignored, got %+v", out)
	}
}

func TestUsageIncrementIsCopyOnWrite(t *testing.T) {
	t.Parallel()
	usage := domain.Usage{Opens: map[string]int{"a": 2}}

	next := usage.Increment("a")
	if next.Count("a") != 3 {
		t.Fatalf("expected 3 opens, got %d", next.Count("a"))
	}
	if usage.Count("a") != 2 {
		t.Fatalf("increment mutated the original record")
	}
	if next.Increment("new").Count("new") != 1 {
		t.Fatalf("first open must count 1")
	}
	if usage.Count("never-opened") != 0 {
		t.Fatalf("unknown package must count 0")
	}
}
