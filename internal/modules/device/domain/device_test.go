package domain_test

import (
	"testing"

	"focusctl/internal/modules/device/domain"
)

func TestSortAppsOrdersByDisplayNameCaseInsensitively(t *testing.T) {
	t.Parallel()
	apps := []domain.InstalledApp{
		{PackageName: "com.z", AppName: "zulu"},
		{PackageName: "com.b", AppName: "Alpha"},
		{PackageName: "com.a", AppName: "alpha"},
		{PackageName: "com.m", AppName: "Mike"},
	}

	sorted := domain.SortApps(apps)
	wantPkgs := []string{"com.a", "com.b", "com.m", "com.z"}
	for i, want := range wantPkgs {
		if sorted[i].PackageName != want {
			t.Fatalf("expected %s at index %d, got %s", want, i, sorted[i].PackageName)
		}
	}
	// Input order must be untouched.
	if apps[0].PackageName != "com.z" {
		t.Fatalf("SortApps mutated its input")
	}
}
