package domain

import (
	"errors"
	"fmt"
	"sort"
	"strings"
	"time"
)

const SchemaVersion = 1

var (
	ErrEmptyModeName   = errors.New("focus mode name is required")
	ErrEmptyModeID     = errors.New("focus mode id is required")
	ErrSettingsMissing = errors.New("settings are not initialized")
	ErrDuplicateModeID = errors.New("duplicate focus mode id")
)

// FocusMode is one named allow-list policy. IsActive is a denormalized view of
// the active pointer; Normalize keeps the two from drifting.
type FocusMode struct {
	ID              string   `json:"id"`
	Name            string   `json:"name"`
	Icon            string   `json:"icon"`
	AllowedApps     []string `json:"allowed_apps"`
	EnableGrayscale bool     `json:"enable_grayscale"`
	IsCustom        bool     `json:"is_custom"`
	IsActive        bool     `json:"is_active"`
}

func (m FocusMode) Validate() error {
	if strings.TrimSpace(m.ID) == "" {
		return ErrEmptyModeID
	}
	if strings.TrimSpace(m.Name) == "" {
		return ErrEmptyModeName
	}
	return nil
}

// Allows reports allow-list membership.
func (m FocusMode) Allows(packageName string) bool {
	for _, allowed := range m.AllowedApps {
		if allowed == packageName {
			return true
		}
	}
	return false
}

// Catalog is the full persisted set of focus modes, presets first.
type Catalog struct {
	SchemaVersion int         `json:"schema_version"`
	Modes         []FocusMode `json:"modes"`
}

func (c Catalog) Validate() error {
	seen := make(map[string]struct{}, len(c.Modes))
	for _, mode := range c.Modes {
		if err := mode.Validate(); err != nil {
			return err
		}
		if _, dup := seen[mode.ID]; dup {
			return fmt.Errorf("%w: %s", ErrDuplicateModeID, mode.ID)
		}
		seen[mode.ID] = struct{}{}
	}
	return nil
}

func (c Catalog) Find(modeID string) (FocusMode, bool) {
	for _, mode := range c.Modes {
		if mode.ID == modeID {
			return mode, true
		}
	}
	return FocusMode{}, false
}

// ActivePointer is the persisted single-active-mode record. An empty ModeID
// never round-trips; absence of the record means no mode is active.
type ActivePointer struct {
	SchemaVersion int    `json:"schema_version"`
	ModeID        string `json:"mode_id"`
}

// Normalize rewrites IsActive so exactly the entry matching activeID carries
// true. Returns the rewritten catalog and whether anything changed.
func Normalize(catalog Catalog, activeID string) (Catalog, bool) {
	changed := false
	modes := make([]FocusMode, len(catalog.Modes))
	copy(modes, catalog.Modes)
	for i := range modes {
		want := activeID != "" && modes[i].ID == activeID
		if modes[i].IsActive != want {
			modes[i].IsActive = want
			changed = true
		}
	}
	catalog.Modes = modes
	return catalog, changed
}

// BlockSet is the complement of the mode's allow-list within the live
// inventory, computed at activation time. Later-installed apps are picked up
// on the next activation, not live.
func BlockSet(mode FocusMode, inventory []string) []string {
	allowed := make(map[string]struct{}, len(mode.AllowedApps))
	for _, pkg := range mode.AllowedApps {
		allowed[pkg] = struct{}{}
	}
	blocked := make([]string, 0, len(inventory))
	seen := make(map[string]struct{}, len(inventory))
	for _, pkg := range inventory {
		if _, dup := seen[pkg]; dup {
			continue
		}
		seen[pkg] = struct{}{}
		if _, ok := allowed[pkg]; !ok {
			blocked = append(blocked, pkg)
		}
	}
	sort.Strings(blocked)
	return blocked
}

// BlockReason is the human-readable tag the enforcement layer shows on the
// interception screen.
func BlockReason(mode FocusMode) string {
	return "Focus Mode: " + mode.Name
}

const customIcon = "⚙️"

// NewCustomMode builds a user-defined mode. The id pattern is stable across
// reinstalls of the same record and derives from creation time.
func NewCustomMode(name string, allowedApps []string, createdAt time.Time) FocusMode {
	return FocusMode{
		ID:          fmt.Sprintf("custom-%d", createdAt.UnixMilli()),
		Name:        strings.TrimSpace(name),
		Icon:        customIcon,
		AllowedApps: dedupe(allowedApps),
	}
}

func dedupe(pkgs []string) []string {
	out := make([]string, 0, len(pkgs))
	seen := make(map[string]struct{}, len(pkgs))
	for _, pkg := range pkgs {
		pkg = strings.TrimSpace(pkg)
		if pkg == "" {
			continue
		}
		if _, dup := seen[pkg]; dup {
			continue
		}
		seen[pkg] = struct{}{}
		out = append(out, pkg)
	}
	return out
}
