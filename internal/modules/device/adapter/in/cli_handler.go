package in

import (
	"context"

	"focusctl/internal/modules/device/dto"
	devicein "focusctl/internal/modules/device/port/in"
)

type CLIHandler struct {
	usecase devicein.Usecase
}

func NewCLIHandler(usecase devicein.Usecase) CLIHandler {
	return CLIHandler{usecase: usecase}
}

func (h CLIHandler) Status(ctx context.Context) (dto.StatusOutput, error) {
	return h.usecase.Status(ctx)
}

func (h CLIHandler) RequestPermission(ctx context.Context) error {
	return h.usecase.RequestPermission(ctx)
}
