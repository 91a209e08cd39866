package in

import (
	"context"

	"focusctl/internal/modules/apps/dto"
)

type Usecase interface {
	List(ctx context.Context) ([]dto.AppOutput, error)
	Favorites(ctx context.Context) ([]string, error)
	ToggleFavorite(ctx context.Context, packageName string) (dto.ToggleFavoriteOutput, error)
	Launch(ctx context.Context, packageName string) (dto.LaunchOutput, error)
}
