package in

import (
	"context"

	"focusctl/internal/modules/intention/dto"
	intentionin "focusctl/internal/modules/intention/port/in"
)

type CLIHandler struct {
	usecase intentionin.Usecase
}

func NewCLIHandler(usecase intentionin.Usecase) CLIHandler {
	return CLIHandler{usecase: usecase}
}

func (h CLIHandler) Declare(ctx context.Context, text string) (dto.IntentionOutput, error) {
	return h.usecase.DeclareToday(ctx, dto.DeclareInput{Text: text})
}

func (h CLIHandler) CheckIn(ctx context.Context, status string) (dto.CheckInOutput, error) {
	return h.usecase.CheckIn(ctx, dto.CheckInInput{Status: status})
}

func (h CLIHandler) Today(ctx context.Context) (dto.TodayOutput, error) {
	return h.usecase.Today(ctx)
}

func (h CLIHandler) History(ctx context.Context) ([]dto.IntentionOutput, error) {
	return h.usecase.History(ctx)
}

func (h CLIHandler) Streak(ctx context.Context) (dto.StreakOutput, error) {
	return h.usecase.Streak(ctx)
}

func (h CLIHandler) Stats(ctx context.Context) (dto.StatsOutput, error) {
	return h.usecase.Stats(ctx)
}

func (h CLIHandler) Reindex(ctx context.Context) error {
	return h.usecase.Reindex(ctx)
}
