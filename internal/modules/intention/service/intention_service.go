package service

import (
	"context"
	"strings"

	"focusctl/internal/modules/intention/domain"
	intentionout "focusctl/internal/modules/intention/port/out"
	"focusctl/internal/platform/clock"
)

type IntentionService struct {
	clock     clock.Clock
	log       intentionout.LogStore
	projector intentionout.HistoryProjector
}

func NewIntentionService(clk clock.Clock, log intentionout.LogStore, projector intentionout.HistoryProjector) *IntentionService {
	return &IntentionService{clock: clk, log: log, projector: projector}
}

// DeclareToday replaces any record for the current calendar day with a fresh
// in_progress one. Re-declaring starts the day over.
func (s *IntentionService) DeclareToday(ctx context.Context, text string) (domain.DailyIntention, error) {
	if strings.TrimSpace(text) == "" {
		return domain.DailyIntention{}, domain.ErrEmptyIntentionText
	}
	log, err := s.log.Load(ctx)
	if err != nil {
		return domain.DailyIntention{}, err
	}
	intention := domain.NewIntention(text, s.clock.Now())
	log = log.Replace(intention)
	if err := s.log.Save(ctx, log); err != nil {
		return domain.DailyIntention{}, err
	}
	if err := s.projector.Upsert(ctx, intention); err != nil {
		return domain.DailyIntention{}, err
	}
	return intention, nil
}

// CheckIn moves today's record to its terminal status. When no record exists
// for today the call reports found=false and changes nothing; the shell only
// offers check-in while a record exists, so this is not an error.
func (s *IntentionService) CheckIn(ctx context.Context, status domain.Status) (domain.DailyIntention, bool, error) {
	if err := status.Validate(); err != nil {
		return domain.DailyIntention{}, false, err
	}
	if !status.Terminal() {
		return domain.DailyIntention{}, false, domain.ErrNotTerminalStatus
	}
	log, err := s.log.Load(ctx)
	if err != nil {
		return domain.DailyIntention{}, false, err
	}
	now := s.clock.Now()
	intention, found := log.FindByDate(domain.DayKey(now))
	if !found {
		return domain.DailyIntention{}, false, nil
	}
	intention.Status = status
	intention.CompletedAt = &now
	log = log.Replace(intention)
	if err := s.log.Save(ctx, log); err != nil {
		return domain.DailyIntention{}, false, err
	}
	if err := s.projector.Upsert(ctx, intention); err != nil {
		return domain.DailyIntention{}, false, err
	}
	return intention, true, nil
}

func (s *IntentionService) Today(ctx context.Context) (domain.DailyIntention, bool, error) {
	log, err := s.log.Load(ctx)
	if err != nil {
		return domain.DailyIntention{}, false, err
	}
	intention, found := log.FindByDate(domain.DayKey(s.clock.Now()))
	return intention, found, nil
}

func (s *IntentionService) History(ctx context.Context) ([]domain.DailyIntention, error) {
	log, err := s.log.Load(ctx)
	if err != nil {
		return nil, err
	}
	return log.SortedDesc(), nil
}

func (s *IntentionService) Streak(ctx context.Context) (int, error) {
	log, err := s.log.Load(ctx)
	if err != nil {
		return 0, err
	}
	return domain.ComputeStreak(log.Intentions, domain.DayKey(s.clock.Now())), nil
}

func (s *IntentionService) Stats(ctx context.Context) (domain.Stats, error) {
	return s.projector.Stats(ctx)
}

// Reindex rebuilds the projection from the log record.
func (s *IntentionService) Reindex(ctx context.Context) error {
	if err := s.projector.Reset(ctx); err != nil {
		return err
	}
	log, err := s.log.Load(ctx)
	if err != nil {
		return err
	}
	for _, intention := range log.Intentions {
		if err := s.projector.Upsert(ctx, intention); err != nil {
			return err
		}
	}
	return nil
}
