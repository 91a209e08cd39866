package in

import (
	"context"

	"focusctl/internal/modules/intention/dto"
)

type Usecase interface {
	DeclareToday(ctx context.Context, input dto.DeclareInput) (dto.IntentionOutput, error)
	CheckIn(ctx context.Context, input dto.CheckInInput) (dto.CheckInOutput, error)
	Today(ctx context.Context) (dto.TodayOutput, error)
	History(ctx context.Context) ([]dto.IntentionOutput, error)
	Streak(ctx context.Context) (dto.StreakOutput, error)
	Stats(ctx context.Context) (dto.StatsOutput, error)
	Reindex(ctx context.Context) error
}
