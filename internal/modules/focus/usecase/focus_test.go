package usecase_test

import (
	"context"
	"errors"
	"reflect"
	"testing"
	"time"

	focusout "focusctl/internal/modules/focus/adapter/out"
	"focusctl/internal/modules/focus/dto"
	focusin "focusctl/internal/modules/focus/port/in"
	focusports "focusctl/internal/modules/focus/port/out"
	"focusctl/internal/modules/focus/service"
	"focusctl/internal/modules/focus/usecase"
	apperrors "focusctl/internal/platform/errors"
)

type fakeClock struct {
	values []time.Time
	idx    int
}

func (f *fakeClock) Now() time.Time {
	if f.idx >= len(f.values) {
		return f.values[len(f.values)-1]
	}
	v := f.values[f.idx]
	f.idx++
	return v
}

// fakeDevice implements the enforcement, display and inventory ports in
// memory, recording what the engine asked for.
type fakeDevice struct {
	granted    bool
	grayscale  bool
	blocked    []string
	reason     string
	installed  []string
	phrase     string
	requested  bool
	setErr     error
	installErr error
}

func (f *fakeDevice) PermissionGranted(context.Context) (bool, error) { return f.granted, nil }
func (f *fakeDevice) RequestPermission(context.Context) error {
	f.requested = true
	return nil
}
func (f *fakeDevice) SetBlocked(_ context.Context, pkgs []string, reason string) error {
	if f.setErr != nil {
		return f.setErr
	}
	f.blocked = pkgs
	f.reason = reason
	return nil
}
func (f *fakeDevice) ClearBlocked(context.Context) error {
	f.blocked = nil
	f.reason = ""
	return nil
}
func (f *fakeDevice) Blocked(context.Context) ([]string, error) { return f.blocked, nil }
func (f *fakeDevice) SetBreakGlassPhrase(_ context.Context, phrase string) error {
	f.phrase = phrase
	return nil
}
func (f *fakeDevice) EnableGrayscale(context.Context) error {
	f.grayscale = true
	return nil
}
func (f *fakeDevice) DisableGrayscale(context.Context) error {
	f.grayscale = false
	return nil
}
func (f *fakeDevice) GrayscaleEnabled(context.Context) (bool, error) { return f.grayscale, nil }
func (f *fakeDevice) ToggleGrayscale(context.Context) (bool, error) {
	f.grayscale = !f.grayscale
	return f.grayscale, nil
}
func (f *fakeDevice) InstalledPackages(context.Context) ([]string, error) {
	if f.installErr != nil {
		return nil, f.installErr
	}
	return f.installed, nil
}

func newEngine(t *testing.T, device *fakeDevice) *testEngine {
	t.Helper()
	stateDir := t.TempDir()
	clk := &fakeClock{values: []time.Time{time.Date(2026, 3, 1, 9, 0, 0, 0, time.UTC)}}
	catalog := focusout.NewFileCatalogStore(stateDir)
	pointer := focusout.NewFileActiveModeStore(stateDir)
	svc := service.NewFocusService(clk, catalog, focusout.NewFileSettingsStore(stateDir))
	uc := usecase.NewInteractor(svc, catalog, pointer, device, device, device)
	return &testEngine{uc: uc, pointer: pointer, device: device}
}

type testEngine struct {
	uc      focusin.Usecase
	pointer focusports.ActiveModeStore
	device  *fakeDevice
}

func TestActivateBlocksComplementOfAllowList(t *testing.T) {
	t.Parallel()
	device := &fakeDevice{granted: true, installed: []string{
		"com.android.dialer", "com.instagram.android", "com.twitter.android",
	}}
	eng := newEngine(t, device)

	out, err := eng.uc.Activate(context.Background(), dto.ActivateInput{ModeID: "emergency"})
	if err != nil {
		t.Fatalf("activate: %v", err)
	}
	want := []string{"com.instagram.android", "com.twitter.android"}
	if !reflect.DeepEqual(out.BlockedApps, want) {
		t.Fatalf("expected blocked %v, got %v", want, out.BlockedApps)
	}
	if !reflect.DeepEqual(device.blocked, want) {
		t.Fatalf("enforcement port saw %v", device.blocked)
	}
	if device.reason != "Focus Mode: Emergency Only" {
		t.Fatalf("unexpected block reason %q", device.reason)
	}
	if !device.grayscale {
		t.Fatalf("emergency mode must enable grayscale")
	}

	activeID, err := eng.pointer.Load(context.Background())
	if err != nil {
		t.Fatalf("load pointer: %v", err)
	}
	if activeID != "emergency" {
		t.Fatalf("expected pointer emergency, got %s", activeID)
	}

	modes, err := eng.uc.ListModes(context.Background())
	if err != nil {
		t.Fatalf("list modes: %v", err)
	}
	for _, mode := range modes {
		if mode.IsActive != (mode.ID == "emergency") {
			t.Fatalf("active flag drifted on %s", mode.ID)
		}
	}
}

func TestActivateSwitchReplacesPreviousMode(t *testing.T) {
	t.Parallel()
	device := &fakeDevice{granted: true, installed: []string{
		"com.android.dialer", "com.google.android.gm", "com.instagram.android",
	}}
	eng := newEngine(t, device)
	ctx := context.Background()

	if _, err := eng.uc.Activate(ctx, dto.ActivateInput{ModeID: "sleep"}); err != nil {
		t.Fatalf("activate sleep: %v", err)
	}
	if _, err := eng.uc.Activate(ctx, dto.ActivateInput{ModeID: "work"}); err != nil {
		t.Fatalf("activate work: %v", err)
	}

	activeID, err := eng.pointer.Load(ctx)
	if err != nil {
		t.Fatalf("load pointer: %v", err)
	}
	if activeID != "work" {
		t.Fatalf("expected work active, got %s", activeID)
	}
	// Work allows email; the new block-set must not contain it.
	for _, pkg := range device.blocked {
		if pkg == "com.google.android.gm" {
			t.Fatalf("work mode blocked an allowed app")
		}
	}

	modes, err := eng.uc.ListModes(ctx)
	if err != nil {
		t.Fatalf("list modes: %v", err)
	}
	activeCount := 0
	for _, mode := range modes {
		if mode.IsActive {
			activeCount++
		}
	}
	if activeCount != 1 {
		t.Fatalf("expected exactly one active mode, got %d", activeCount)
	}
}

func TestActivateUnknownModeFails(t *testing.T) {
	t.Parallel()
	eng := newEngine(t, &fakeDevice{granted: true})
	_, err := eng.uc.Activate(context.Background(), dto.ActivateInput{ModeID: "nope"})
	if !errors.Is(err, apperrors.ErrModeNotFound) {
		t.Fatalf("expected ErrModeNotFound, got %v", err)
	}
}

func TestActivateWithoutPermissionFails(t *testing.T) {
	t.Parallel()
	device := &fakeDevice{granted: false, installed: []string{"x"}}
	eng := newEngine(t, device)
	_, err := eng.uc.Activate(context.Background(), dto.ActivateInput{ModeID: "work"})
	if err != apperrors.ErrPermissionDenied {
		t.Fatalf("expected ErrPermissionDenied, got %v", err)
	}
	if _, err := eng.pointer.Load(context.Background()); err != apperrors.ErrNoActiveMode {
		t.Fatalf("pointer must stay clear, got %v", err)
	}
}

func TestActivateEnforcementFailureLeavesNoDurableState(t *testing.T) {
	t.Parallel()
	device := &fakeDevice{granted: true, installed: []string{"x"}, setErr: errors.New("boom")}
	eng := newEngine(t, device)

	if _, err := eng.uc.Activate(context.Background(), dto.ActivateInput{ModeID: "work"}); err == nil {
		t.Fatalf("expected enforcement error")
	}
	if _, err := eng.pointer.Load(context.Background()); err != apperrors.ErrNoActiveMode {
		t.Fatalf("pointer written despite failed enforcement: %v", err)
	}
	if device.grayscale {
		t.Fatalf("grayscale enabled despite failed enforcement")
	}
}

func TestDeactivateReversesOnlyWhatActivationEnabled(t *testing.T) {
	t.Parallel()
	device := &fakeDevice{granted: true, installed: []string{"a", "b"}}
	eng := newEngine(t, device)
	ctx := context.Background()

	if _, err := eng.uc.Activate(ctx, dto.ActivateInput{ModeID: "reading"}); err != nil {
		t.Fatalf("activate: %v", err)
	}
	out, err := eng.uc.Deactivate(ctx)
	if err != nil {
		t.Fatalf("deactivate: %v", err)
	}
	if !out.WasActive || out.ModeID != "reading" {
		t.Fatalf("unexpected deactivate output %+v", out)
	}
	if !out.GrayscaleDisabled || device.grayscale {
		t.Fatalf("reading mode grayscale must be disabled on deactivation")
	}
	if len(device.blocked) != 0 {
		t.Fatalf("blocked apps not cleared: %v", device.blocked)
	}
	if _, err := eng.pointer.Load(ctx); err != apperrors.ErrNoActiveMode {
		t.Fatalf("pointer not cleared: %v", err)
	}
}

func TestDeactivateKeepsUserToggledGrayscale(t *testing.T) {
	t.Parallel()
	device := &fakeDevice{granted: true, installed: []string{"a"}}
	eng := newEngine(t, device)
	ctx := context.Background()

	// Work mode does not request grayscale; the user toggles it on by hand.
	if _, err := eng.uc.Activate(ctx, dto.ActivateInput{ModeID: "work"}); err != nil {
		t.Fatalf("activate: %v", err)
	}
	if _, err := eng.uc.ToggleGrayscale(ctx); err != nil {
		t.Fatalf("toggle: %v", err)
	}
	out, err := eng.uc.Deactivate(ctx)
	if err != nil {
		t.Fatalf("deactivate: %v", err)
	}
	if out.GrayscaleDisabled {
		t.Fatalf("deactivation must not disable user-toggled grayscale")
	}
	if !device.grayscale {
		t.Fatalf("user grayscale toggle lost on deactivation")
	}
}

func TestDeactivateWithNoActiveModeIsNoOp(t *testing.T) {
	t.Parallel()
	eng := newEngine(t, &fakeDevice{})
	out, err := eng.uc.Deactivate(context.Background())
	if err != nil {
		t.Fatalf("deactivate: %v", err)
	}
	if out.WasActive {
		t.Fatalf("expected no-op, got %+v", out)
	}
}

func TestReconcileClearsOrphanedEnforcement(t *testing.T) {
	t.Parallel()
	device := &fakeDevice{blocked: []string{"a", "b"}}
	eng := newEngine(t, device)

	out, err := eng.uc.Reconcile(context.Background())
	if err != nil {
		t.Fatalf("reconcile: %v", err)
	}
	if out.Consistent || out.Repair == "" {
		t.Fatalf("expected repair, got %+v", out)
	}
	if len(device.blocked) != 0 {
		t.Fatalf("orphaned enforcement not cleared")
	}
}

func TestReconcileClearsStalePointer(t *testing.T) {
	t.Parallel()
	device := &fakeDevice{}
	eng := newEngine(t, device)
	ctx := context.Background()

	if _, err := eng.uc.InitializeCatalog(ctx); err != nil {
		t.Fatalf("init: %v", err)
	}
	// Simulate a reboot that wiped enforcement but left the pointer.
	if err := eng.pointer.Save(ctx, "work"); err != nil {
		t.Fatalf("save pointer: %v", err)
	}

	out, err := eng.uc.Reconcile(ctx)
	if err != nil {
		t.Fatalf("reconcile: %v", err)
	}
	if out.Consistent {
		t.Fatalf("expected repair, got consistent")
	}
	if _, err := eng.pointer.Load(ctx); err != apperrors.ErrNoActiveMode {
		t.Fatalf("stale pointer survived: %v", err)
	}
}

func TestReconcileClearsPointerToUnknownMode(t *testing.T) {
	t.Parallel()
	device := &fakeDevice{blocked: []string{"a"}}
	eng := newEngine(t, device)
	ctx := context.Background()

	if err := eng.pointer.Save(ctx, "deleted-mode"); err != nil {
		t.Fatalf("save pointer: %v", err)
	}
	out, err := eng.uc.Reconcile(ctx)
	if err != nil {
		t.Fatalf("reconcile: %v", err)
	}
	if out.Consistent {
		t.Fatalf("expected repair for unknown mode")
	}
	if _, err := eng.pointer.Load(ctx); err != apperrors.ErrNoActiveMode {
		t.Fatalf("pointer to unknown mode survived: %v", err)
	}
}

func TestReconcileConsistentStates(t *testing.T) {
	t.Parallel()
	device := &fakeDevice{granted: true, installed: []string{"a", "b"}}
	eng := newEngine(t, device)
	ctx := context.Background()

	// Nothing active, nothing blocked.
	out, err := eng.uc.Reconcile(ctx)
	if err != nil {
		t.Fatalf("reconcile: %v", err)
	}
	if !out.Consistent {
		t.Fatalf("expected consistent idle state, got %+v", out)
	}

	// Active mode with live enforcement.
	if _, err := eng.uc.Activate(ctx, dto.ActivateInput{ModeID: "work"}); err != nil {
		t.Fatalf("activate: %v", err)
	}
	out, err = eng.uc.Reconcile(ctx)
	if err != nil {
		t.Fatalf("reconcile: %v", err)
	}
	if !out.Consistent {
		t.Fatalf("expected consistent active state, got %+v", out)
	}
}

func TestStatusReportsActiveModeAndRunsReconcile(t *testing.T) {
	t.Parallel()
	device := &fakeDevice{granted: true, installed: []string{"a", "b"}}
	eng := newEngine(t, device)
	ctx := context.Background()

	if _, err := eng.uc.Activate(ctx, dto.ActivateInput{ModeID: "emergency"}); err != nil {
		t.Fatalf("activate: %v", err)
	}
	out, err := eng.uc.Status(ctx)
	if err != nil {
		t.Fatalf("status: %v", err)
	}
	if out.ActiveModeID != "emergency" || out.ActiveModeName != "Emergency Only" {
		t.Fatalf("unexpected status %+v", out)
	}
	if !out.PermissionGranted || !out.GrayscaleEnabled {
		t.Fatalf("status missing device state %+v", out)
	}
	if out.Repair != "" {
		t.Fatalf("unexpected repair on healthy state: %s", out.Repair)
	}
}

func TestCreateCustomModeAppearsInCatalog(t *testing.T) {
	t.Parallel()
	eng := newEngine(t, &fakeDevice{})
	ctx := context.Background()

	created, err := eng.uc.CreateCustomMode(ctx, dto.CreateModeInput{
		Name:        "Deep Work",
		AllowedApps: []string{"com.google.android.keep"},
	})
	if err != nil {
		t.Fatalf("create custom mode: %v", err)
	}
	if !created.IsCustom {
		t.Fatalf("expected custom flag")
	}
	modes, err := eng.uc.ListModes(ctx)
	if err != nil {
		t.Fatalf("list modes: %v", err)
	}
	if len(modes) != 5 {
		t.Fatalf("expected 4 presets + 1 custom, got %d", len(modes))
	}
	found := false
	for _, mode := range modes {
		if mode.ID == created.ID {
			found = true
		}
	}
	if !found {
		t.Fatalf("custom mode missing from catalog")
	}
}

func TestUpdateSettingsPushesBreakGlassPhrase(t *testing.T) {
	t.Parallel()
	device := &fakeDevice{}
	eng := newEngine(t, device)
	ctx := context.Background()

	phrase := "let me through"
	out, err := eng.uc.UpdateSettings(ctx, dto.UpdateSettingsInput{BreakGlassPhrase: &phrase})
	if err != nil {
		t.Fatalf("update settings: %v", err)
	}
	if out.BreakGlassPhrase != phrase {
		t.Fatalf("expected phrase persisted, got %q", out.BreakGlassPhrase)
	}
	if device.phrase != phrase {
		t.Fatalf("phrase not pushed to enforcement, got %q", device.phrase)
	}

	// Defaults survive a partial update.
	if out.EveningCheckInTime != "21:00" || out.MorningPromptTime != "08:00" {
		t.Fatalf("partial update clobbered defaults: %+v", out)
	}
}

func TestGetSettingsReturnsDefaultsBeforeFirstSave(t *testing.T) {
	t.Parallel()
	eng := newEngine(t, &fakeDevice{grayscale: true})
	out, err := eng.uc.GetSettings(context.Background())
	if err != nil {
		t.Fatalf("get settings: %v", err)
	}
	if out.EveningCheckInTime != "21:00" || out.MorningPromptTime != "08:00" {
		t.Fatalf("unexpected defaults %+v", out)
	}
	if !out.GrayscaleEnabled {
		t.Fatalf("settings must reflect the live grayscale switch")
	}
}

func TestRequestPermissionDelegates(t *testing.T) {
	t.Parallel()
	device := &fakeDevice{}
	eng := newEngine(t, device)
	if err := eng.uc.RequestPermission(context.Background()); err != nil {
		t.Fatalf("request permission: %v", err)
	}
	if !device.requested {
		t.Fatalf("request not forwarded to device")
	}
}
