package usecase

import (
	"context"

	"focusctl/internal/modules/intention/domain"
	"focusctl/internal/modules/intention/dto"
	intentionin "focusctl/internal/modules/intention/port/in"
	"focusctl/internal/modules/intention/service"
)

type Interactor struct {
	svc *service.IntentionService
}

func NewInteractor(svc *service.IntentionService) intentionin.Usecase {
	return &Interactor{svc: svc}
}

func (i *Interactor) DeclareToday(ctx context.Context, input dto.DeclareInput) (dto.IntentionOutput, error) {
	intention, err := i.svc.DeclareToday(ctx, input.Text)
	if err != nil {
		return dto.IntentionOutput{}, err
	}
	return toOutput(intention), nil
}

func (i *Interactor) CheckIn(ctx context.Context, input dto.CheckInInput) (dto.CheckInOutput, error) {
	intention, found, err := i.svc.CheckIn(ctx, domain.Status(input.Status))
	if err != nil {
		return dto.CheckInOutput{}, err
	}
	streak, err := i.svc.Streak(ctx)
	if err != nil {
		return dto.CheckInOutput{}, err
	}
	out := dto.CheckInOutput{Updated: found, Streak: streak}
	if found {
		out.Intention = toOutput(intention)
	}
	return out, nil
}

func (i *Interactor) Today(ctx context.Context) (dto.TodayOutput, error) {
	intention, found, err := i.svc.Today(ctx)
	if err != nil {
		return dto.TodayOutput{}, err
	}
	out := dto.TodayOutput{Declared: found}
	if found {
		out.Intention = toOutput(intention)
	}
	return out, nil
}

func (i *Interactor) History(ctx context.Context) ([]dto.IntentionOutput, error) {
	intentions, err := i.svc.History(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]dto.IntentionOutput, 0, len(intentions))
	for _, intention := range intentions {
		out = append(out, toOutput(intention))
	}
	return out, nil
}

func (i *Interactor) Streak(ctx context.Context) (dto.StreakOutput, error) {
	days, err := i.svc.Streak(ctx)
	if err != nil {
		return dto.StreakOutput{}, err
	}
	return dto.StreakOutput{Days: days}, nil
}

func (i *Interactor) Stats(ctx context.Context) (dto.StatsOutput, error) {
	stats, err := i.svc.Stats(ctx)
	if err != nil {
		return dto.StatsOutput{}, err
	}
	return dto.StatsOutput{
		Total:          stats.Total,
		Complete:       stats.Complete,
		Partial:        stats.Partial,
		Missed:         stats.Missed,
		InProgress:     stats.InProgress,
		CompletionRate: stats.CompletionRate(),
	}, nil
}

func (i *Interactor) Reindex(ctx context.Context) error {
	return i.svc.Reindex(ctx)
}

func toOutput(intention domain.DailyIntention) dto.IntentionOutput {
	return dto.IntentionOutput{
		ID:          intention.ID,
		Date:        intention.Date,
		Text:        intention.Text,
		Status:      string(intention.Status),
		CreatedAt:   intention.CreatedAt,
		CompletedAt: intention.CompletedAt,
	}
}
