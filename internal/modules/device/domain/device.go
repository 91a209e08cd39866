package domain

import (
	"errors"
	"sort"
	"strings"
)

var (
	ErrPluginNotConfigured = errors.New("device plugin binary is not configured")
	ErrEmptyPackageName    = errors.New("package name is required")
)

type Info struct {
	Name     string
	Platform string
	Version  string
}

type InstalledApp struct {
	PackageName string
	AppName     string
}

// SortApps orders the inventory by display name, case-insensitively, the way
// the launcher presents it.
func SortApps(apps []InstalledApp) []InstalledApp {
	out := make([]InstalledApp, len(apps))
	copy(out, apps)
	sort.Slice(out, func(i, j int) bool {
		a, b := strings.ToLower(out[i].AppName), strings.ToLower(out[j].AppName)
		if a == b {
			return out[i].PackageName < out[j].PackageName
		}
		return a < b
	})
	return out
}
