package usecase

import (
	"context"
	"fmt"

	"focusctl/internal/modules/focus/domain"
	"focusctl/internal/modules/focus/dto"
	focusin "focusctl/internal/modules/focus/port/in"
	focusout "focusctl/internal/modules/focus/port/out"
	"focusctl/internal/modules/focus/service"
	apperrors "focusctl/internal/platform/errors"
)

// Interactor orchestrates the policy engine: pure block-set decisions plus the
// enforcement, display and persistence side effects around them. Callers
// invoke operations sequentially; the engine assumes one in-flight mutation.
type Interactor struct {
	svc       *service.FocusService
	catalog   focusout.CatalogStore
	pointer   focusout.ActiveModeStore
	enforcer  focusout.Enforcer
	display   focusout.Display
	inventory focusout.Inventory
}

func NewInteractor(
	svc *service.FocusService,
	catalog focusout.CatalogStore,
	pointer focusout.ActiveModeStore,
	enforcer focusout.Enforcer,
	display focusout.Display,
	inventory focusout.Inventory,
) focusin.Usecase {
	return &Interactor{
		svc:       svc,
		catalog:   catalog,
		pointer:   pointer,
		enforcer:  enforcer,
		display:   display,
		inventory: inventory,
	}
}

func (i *Interactor) InitializeCatalog(ctx context.Context) (dto.InitOutput, error) {
	catalog, seeded, err := i.svc.SeedCatalog(ctx)
	if err != nil {
		return dto.InitOutput{}, err
	}
	return dto.InitOutput{Seeded: seeded, Modes: len(catalog.Modes)}, nil
}

func (i *Interactor) ListModes(ctx context.Context) ([]dto.ModeOutput, error) {
	catalog, _, err := i.svc.SeedCatalog(ctx)
	if err != nil {
		return nil, err
	}
	activeID, err := i.pointer.Load(ctx)
	if err != nil && err != apperrors.ErrNoActiveMode {
		return nil, err
	}
	catalog, _ = domain.Normalize(catalog, activeID)
	out := make([]dto.ModeOutput, 0, len(catalog.Modes))
	for _, mode := range catalog.Modes {
		out = append(out, toModeOutput(mode))
	}
	return out, nil
}

// Activate computes the block-set from the live inventory and commits it.
// Side-effect order matters: enforcement first, then grayscale, then the
// durable pointer and catalog rewrite. A failure at any step surfaces before
// the steps after it run, so a failed activation never leaves the pointer
// naming a mode whose enforcement call did not succeed.
func (i *Interactor) Activate(ctx context.Context, input dto.ActivateInput) (dto.ActivateOutput, error) {
	catalog, _, err := i.svc.SeedCatalog(ctx)
	if err != nil {
		return dto.ActivateOutput{}, err
	}
	mode, ok := catalog.Find(input.ModeID)
	if !ok {
		return dto.ActivateOutput{}, fmt.Errorf("%w: %s", apperrors.ErrModeNotFound, input.ModeID)
	}

	granted, err := i.enforcer.PermissionGranted(ctx)
	if err != nil {
		return dto.ActivateOutput{}, err
	}
	if !granted {
		return dto.ActivateOutput{}, apperrors.ErrPermissionDenied
	}

	installed, err := i.inventory.InstalledPackages(ctx)
	if err != nil {
		return dto.ActivateOutput{}, err
	}
	blocked := domain.BlockSet(mode, installed)

	if err := i.enforcer.SetBlocked(ctx, blocked, domain.BlockReason(mode)); err != nil {
		return dto.ActivateOutput{}, err
	}
	if mode.EnableGrayscale {
		if err := i.display.EnableGrayscale(ctx); err != nil {
			return dto.ActivateOutput{}, err
		}
	}

	if err := i.pointer.Save(ctx, mode.ID); err != nil {
		return dto.ActivateOutput{}, err
	}
	catalog, _ = domain.Normalize(catalog, mode.ID)
	if err := i.catalog.Save(ctx, catalog); err != nil {
		return dto.ActivateOutput{}, err
	}

	return dto.ActivateOutput{
		ModeID:           mode.ID,
		Name:             mode.Name,
		BlockedApps:      blocked,
		GrayscaleEnabled: mode.EnableGrayscale,
	}, nil
}

// Deactivate reverses exactly what activation turned on. Grayscale is only
// disabled when the active mode itself requested it; an independent user
// toggle survives deactivation.
func (i *Interactor) Deactivate(ctx context.Context) (dto.DeactivateOutput, error) {
	activeID, err := i.pointer.Load(ctx)
	if err != nil {
		if err == apperrors.ErrNoActiveMode {
			return dto.DeactivateOutput{}, nil
		}
		return dto.DeactivateOutput{}, err
	}

	catalog, _, err := i.svc.SeedCatalog(ctx)
	if err != nil {
		return dto.DeactivateOutput{}, err
	}
	mode, known := catalog.Find(activeID)

	if err := i.enforcer.ClearBlocked(ctx); err != nil {
		return dto.DeactivateOutput{}, err
	}
	disabledGrayscale := false
	if known && mode.EnableGrayscale {
		if err := i.display.DisableGrayscale(ctx); err != nil {
			return dto.DeactivateOutput{}, err
		}
		disabledGrayscale = true
	}

	if err := i.pointer.Clear(ctx); err != nil {
		return dto.DeactivateOutput{}, err
	}
	catalog, _ = domain.Normalize(catalog, "")
	if err := i.catalog.Save(ctx, catalog); err != nil {
		return dto.DeactivateOutput{}, err
	}

	return dto.DeactivateOutput{
		WasActive:         true,
		ModeID:            activeID,
		GrayscaleDisabled: disabledGrayscale,
	}, nil
}

func (i *Interactor) ToggleGrayscale(ctx context.Context) (bool, error) {
	return i.display.ToggleGrayscale(ctx)
}

func (i *Interactor) CreateCustomMode(ctx context.Context, input dto.CreateModeInput) (dto.ModeOutput, error) {
	mode, err := i.svc.CreateCustomMode(ctx, input.Name, input.AllowedApps)
	if err != nil {
		return dto.ModeOutput{}, err
	}
	return toModeOutput(mode), nil
}

func (i *Interactor) Status(ctx context.Context) (dto.StatusOutput, error) {
	reconciled, err := i.Reconcile(ctx)
	if err != nil {
		return dto.StatusOutput{}, err
	}

	granted, err := i.enforcer.PermissionGranted(ctx)
	if err != nil {
		return dto.StatusOutput{}, err
	}
	grayscale, err := i.display.GrayscaleEnabled(ctx)
	if err != nil {
		return dto.StatusOutput{}, err
	}
	blocked, err := i.enforcer.Blocked(ctx)
	if err != nil {
		return dto.StatusOutput{}, err
	}

	out := dto.StatusOutput{
		GrayscaleEnabled:  grayscale,
		PermissionGranted: granted,
		BlockedApps:       blocked,
		Repair:            reconciled.Repair,
	}
	activeID, err := i.pointer.Load(ctx)
	if err != nil {
		if err == apperrors.ErrNoActiveMode {
			return out, nil
		}
		return dto.StatusOutput{}, err
	}
	out.ActiveModeID = activeID
	catalog, _, err := i.svc.SeedCatalog(ctx)
	if err != nil {
		return dto.StatusOutput{}, err
	}
	if mode, ok := catalog.Find(activeID); ok {
		out.ActiveModeName = mode.Name
	}
	return out, nil
}

// Reconcile repairs disagreement between live enforcement state and the
// persisted pointer, trusting the enforcement port. A crash between the
// enforcement call and the persistence write can leave either side ahead.
func (i *Interactor) Reconcile(ctx context.Context) (dto.ReconcileOutput, error) {
	blocked, err := i.enforcer.Blocked(ctx)
	if err != nil {
		return dto.ReconcileOutput{}, err
	}
	activeID, err := i.pointer.Load(ctx)
	if err != nil && err != apperrors.ErrNoActiveMode {
		return dto.ReconcileOutput{}, err
	}

	catalog, _, err := i.svc.SeedCatalog(ctx)
	if err != nil {
		return dto.ReconcileOutput{}, err
	}
	_, known := catalog.Find(activeID)

	switch {
	case activeID == "" && len(blocked) > 0:
		// Enforcement outlived its pointer. There is no way to tell which
		// mode installed the block-set, so drop it rather than guess.
		if err := i.enforcer.ClearBlocked(ctx); err != nil {
			return dto.ReconcileOutput{}, err
		}
		return dto.ReconcileOutput{Repair: "cleared orphaned enforcement"}, nil

	case activeID != "" && !known:
		if err := i.clearDurableActive(ctx, catalog); err != nil {
			return dto.ReconcileOutput{}, err
		}
		return dto.ReconcileOutput{Repair: "cleared pointer to unknown mode " + activeID}, nil

	case activeID != "" && len(blocked) == 0:
		if err := i.clearDurableActive(ctx, catalog); err != nil {
			return dto.ReconcileOutput{}, err
		}
		return dto.ReconcileOutput{Repair: "cleared stale active pointer " + activeID}, nil
	}
	return dto.ReconcileOutput{Consistent: true}, nil
}

func (i *Interactor) RequestPermission(ctx context.Context) error {
	return i.enforcer.RequestPermission(ctx)
}

func (i *Interactor) GetSettings(ctx context.Context) (dto.SettingsOutput, error) {
	settings, err := i.svc.LoadSettings(ctx)
	if err != nil {
		return dto.SettingsOutput{}, err
	}
	grayscale, err := i.display.GrayscaleEnabled(ctx)
	if err != nil {
		return dto.SettingsOutput{}, err
	}
	settings.GrayscaleEnabled = grayscale
	return toSettingsOutput(settings), nil
}

// UpdateSettings persists the merged record and pushes a changed break-glass
// phrase down to the enforcement layer.
func (i *Interactor) UpdateSettings(ctx context.Context, input dto.UpdateSettingsInput) (dto.SettingsOutput, error) {
	settings, err := i.svc.LoadSettings(ctx)
	if err != nil {
		return dto.SettingsOutput{}, err
	}
	if input.NotificationsEnabled != nil {
		settings.NotificationsEnabled = *input.NotificationsEnabled
	}
	if input.EveningCheckInTime != nil {
		settings.EveningCheckInTime = *input.EveningCheckInTime
	}
	if input.MorningPromptTime != nil {
		settings.MorningPromptTime = *input.MorningPromptTime
	}
	if input.VibrationEnabled != nil {
		settings.VibrationEnabled = *input.VibrationEnabled
	}
	phraseChanged := false
	if input.BreakGlassPhrase != nil && *input.BreakGlassPhrase != settings.BreakGlassPhrase {
		settings.BreakGlassPhrase = *input.BreakGlassPhrase
		phraseChanged = true
	}
	if phraseChanged {
		if err := i.enforcer.SetBreakGlassPhrase(ctx, settings.BreakGlassPhrase); err != nil {
			return dto.SettingsOutput{}, err
		}
	}
	if err := i.svc.SaveSettings(ctx, settings); err != nil {
		return dto.SettingsOutput{}, err
	}
	return toSettingsOutput(settings), nil
}

func (i *Interactor) clearDurableActive(ctx context.Context, catalog domain.Catalog) error {
	if err := i.pointer.Clear(ctx); err != nil {
		return err
	}
	normalized, changed := domain.Normalize(catalog, "")
	if !changed {
		return nil
	}
	return i.catalog.Save(ctx, normalized)
}

func toModeOutput(mode domain.FocusMode) dto.ModeOutput {
	return dto.ModeOutput{
		ID:              mode.ID,
		Name:            mode.Name,
		Icon:            mode.Icon,
		AllowedApps:     mode.AllowedApps,
		EnableGrayscale: mode.EnableGrayscale,
		IsCustom:        mode.IsCustom,
		IsActive:        mode.IsActive,
	}
}

func toSettingsOutput(settings domain.Settings) dto.SettingsOutput {
	return dto.SettingsOutput{
		GrayscaleEnabled:     settings.GrayscaleEnabled,
		NotificationsEnabled: settings.NotificationsEnabled,
		EveningCheckInTime:   settings.EveningCheckInTime,
		MorningPromptTime:    settings.MorningPromptTime,
		BreakGlassPhrase:     settings.BreakGlassPhrase,
		VibrationEnabled:     settings.VibrationEnabled,
	}
}
