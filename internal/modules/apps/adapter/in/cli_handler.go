package in

import (
	"context"

	"focusctl/internal/modules/apps/dto"
	appsin "focusctl/internal/modules/apps/port/in"
)

type CLIHandler struct {
	usecase appsin.Usecase
}

func NewCLIHandler(usecase appsin.Usecase) CLIHandler {
	return CLIHandler{usecase: usecase}
}

func (h CLIHandler) List(ctx context.Context) ([]dto.AppOutput, error) {
	return h.usecase.List(ctx)
}

func (h CLIHandler) Favorites(ctx context.Context) ([]string, error) {
	return h.usecase.Favorites(ctx)
}

func (h CLIHandler) ToggleFavorite(ctx context.Context, packageName string) (dto.ToggleFavoriteOutput, error) {
	return h.usecase.ToggleFavorite(ctx, packageName)
}

func (h CLIHandler) Launch(ctx context.Context, packageName string) (dto.LaunchOutput, error) {
	return h.usecase.Launch(ctx, packageName)
}
