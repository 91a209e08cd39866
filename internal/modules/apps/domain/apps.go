package domain

import (
	"errors"
	"strings"
)

const SchemaVersion = 1

// MaxFavorites caps the home row. Toggling a sixth favorite is ignored, not
// an error; the shell greys the action out.
const MaxFavorites = 5

var ErrEmptyPackageName = errors.New("package name is required")

type App struct {
	PackageName string
	AppName     string
}

// Favorites is the persisted home-row record, in pin order.
type Favorites struct {
	SchemaVersion int      `json:"schema_version"`
	Packages      []string `json:"packages"`
}

func (f Favorites) Contains(packageName string) bool {
	for _, pkg := range f.Packages {
		if pkg == packageName {
			return true
		}
	}
	return false
}

// Toggle removes the package when pinned, pins it when below the cap, and
// leaves a full list untouched otherwise. Reports whether anything changed.
func (f Favorites) Toggle(packageName string) (Favorites, bool) {
	if strings.TrimSpace(packageName) == "" {
		return f, false
	}
	if f.Contains(packageName) {
		kept := make([]string, 0, len(f.Packages))
		for _, pkg := range f.Packages {
			if pkg != packageName {
				kept = append(kept, pkg)
			}
		}
		return Favorites{SchemaVersion: SchemaVersion, Packages: kept}, true
	}
	if len(f.Packages) >= MaxFavorites {
		return f, false
	}
	packages := make([]string, 0, len(f.Packages)+1)
	packages = append(packages, f.Packages...)
	packages = append(packages, packageName)
	return Favorites{SchemaVersion: SchemaVersion, Packages: packages}, true
}

// Usage counts app opens per package. Opens-so-far, not screen time; the
// launcher tallies its own launches.
type Usage struct {
	SchemaVersion int            `json:"schema_version"`
	Opens         map[string]int `json:"opens"`
}

func (u Usage) Count(packageName string) int {
	return u.Opens[packageName]
}

func (u Usage) Increment(packageName string) Usage {
	opens := make(map[string]int, len(u.Opens)+1)
	for pkg, count := range u.Opens {
		opens[pkg] = count
	}
	opens[packageName]++
	return Usage{SchemaVersion: SchemaVersion, Opens: opens}
}
