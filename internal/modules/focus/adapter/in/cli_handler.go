package in

import (
	"context"

	"focusctl/internal/modules/focus/dto"
	focusin "focusctl/internal/modules/focus/port/in"
)

type CLIHandler struct {
	usecase focusin.Usecase
}

func NewCLIHandler(usecase focusin.Usecase) CLIHandler {
	return CLIHandler{usecase: usecase}
}

func (h CLIHandler) Init(ctx context.Context) (dto.InitOutput, error) {
	return h.usecase.InitializeCatalog(ctx)
}

func (h CLIHandler) List(ctx context.Context) ([]dto.ModeOutput, error) {
	return h.usecase.ListModes(ctx)
}

func (h CLIHandler) Activate(ctx context.Context, modeID string) (dto.ActivateOutput, error) {
	return h.usecase.Activate(ctx, dto.ActivateInput{ModeID: modeID})
}

func (h CLIHandler) Deactivate(ctx context.Context) (dto.DeactivateOutput, error) {
	return h.usecase.Deactivate(ctx)
}

func (h CLIHandler) ToggleGrayscale(ctx context.Context) (bool, error) {
	return h.usecase.ToggleGrayscale(ctx)
}

func (h CLIHandler) Create(ctx context.Context, name string, allowedApps []string) (dto.ModeOutput, error) {
	return h.usecase.CreateCustomMode(ctx, dto.CreateModeInput{Name: name, AllowedApps: allowedApps})
}

func (h CLIHandler) Status(ctx context.Context) (dto.StatusOutput, error) {
	return h.usecase.Status(ctx)
}

func (h CLIHandler) Reconcile(ctx context.Context) (dto.ReconcileOutput, error) {
	return h.usecase.Reconcile(ctx)
}

func (h CLIHandler) RequestPermission(ctx context.Context) error {
	return h.usecase.RequestPermission(ctx)
}

func (h CLIHandler) Settings(ctx context.Context) (dto.SettingsOutput, error) {
	return h.usecase.GetSettings(ctx)
}

func (h CLIHandler) UpdateSettings(ctx context.Context, input dto.UpdateSettingsInput) (dto.SettingsOutput, error) {
	return h.usecase.UpdateSettings(ctx, input)
}
