package out

import (
	"context"

	"focusctl/internal/modules/intention/domain"
)

// LogStore persists the whole intention log as one record. Load returns an
// empty log before the first save.
type LogStore interface {
	Load(ctx context.Context) (domain.Log, error)
	Save(ctx context.Context, log domain.Log) error
}

// HistoryProjector maintains the queryable read model of the log. The log
// store stays the source of truth; the projection can always be rebuilt.
type HistoryProjector interface {
	Upsert(ctx context.Context, intention domain.DailyIntention) error
	Reset(ctx context.Context) error
	Stats(ctx context.Context) (domain.Stats, error)
}
