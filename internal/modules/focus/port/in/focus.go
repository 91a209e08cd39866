package in

import (
	"context"

	"focusctl/internal/modules/focus/dto"
)

type Usecase interface {
	InitializeCatalog(ctx context.Context) (dto.InitOutput, error)
	ListModes(ctx context.Context) ([]dto.ModeOutput, error)
	Activate(ctx context.Context, input dto.ActivateInput) (dto.ActivateOutput, error)
	Deactivate(ctx context.Context) (dto.DeactivateOutput, error)
	ToggleGrayscale(ctx context.Context) (bool, error)
	CreateCustomMode(ctx context.Context, input dto.CreateModeInput) (dto.ModeOutput, error)
	Status(ctx context.Context) (dto.StatusOutput, error)
	Reconcile(ctx context.Context) (dto.ReconcileOutput, error)
	RequestPermission(ctx context.Context) error
	GetSettings(ctx context.Context) (dto.SettingsOutput, error)
	UpdateSettings(ctx context.Context, input dto.UpdateSettingsInput) (dto.SettingsOutput, error)
}
