package usecase

import (
	"context"

	"focusctl/internal/modules/apps/dto"
	appsin "focusctl/internal/modules/apps/port/in"
	"focusctl/internal/modules/apps/service"
)

type Interactor struct {
	svc *service.AppsService
}

func NewInteractor(svc *service.AppsService) appsin.Usecase {
	return &Interactor{svc: svc}
}

func (i *Interactor) List(ctx context.Context) ([]dto.AppOutput, error) {
	apps, favorites, usage, err := i.svc.List(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]dto.AppOutput, 0, len(apps))
	for _, app := range apps {
		out = append(out, dto.AppOutput{
			PackageName: app.PackageName,
			AppName:     app.AppName,
			Favorite:    favorites.Contains(app.PackageName),
			Opens:       usage.Count(app.PackageName),
		})
	}
	return out, nil
}

func (i *Interactor) Favorites(ctx context.Context) ([]string, error) {
	favorites, err := i.svc.Favorites(ctx)
	if err != nil {
		return nil, err
	}
	return favorites.Packages, nil
}

func (i *Interactor) ToggleFavorite(ctx context.Context, packageName string) (dto.ToggleFavoriteOutput, error) {
	favorites, changed, err := i.svc.ToggleFavorite(ctx, packageName)
	if err != nil {
		return dto.ToggleFavoriteOutput{}, err
	}
	return dto.ToggleFavoriteOutput{Favorites: favorites.Packages, Changed: changed}, nil
}

func (i *Interactor) Launch(ctx context.Context, packageName string) (dto.LaunchOutput, error) {
	opens, err := i.svc.Launch(ctx, packageName)
	if err != nil {
		return dto.LaunchOutput{}, err
	}
	return dto.LaunchOutput{PackageName: packageName, Opens: opens}, nil
}
