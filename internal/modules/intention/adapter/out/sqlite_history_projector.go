package out

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"focusctl/internal/modules/intention/domain"
	intentionout "focusctl/internal/modules/intention/port/out"

	_ "modernc.org/sqlite"
)

type SQLiteHistoryProjector struct {
	db *sql.DB
}

func NewSQLiteHistoryProjector(dbPath string) (intentionout.HistoryProjector, error) {
	if err := os.MkdirAll(filepath.Dir(dbPath), 0o755); err != nil {
		return nil, fmt.Errorf("create db dir: %w", err)
	}
	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("open sqlite: %w", err)
	}
	projector := &SQLiteHistoryProjector{db: db}
	if err := projector.ensureSchema(context.Background()); err != nil {
		return nil, err
	}
	return projector, nil
}

func (s *SQLiteHistoryProjector) ensureSchema(ctx context.Context) error {
	const ddl = `
CREATE TABLE IF NOT EXISTS intentions (
  date TEXT PRIMARY KEY,
  id TEXT NOT NULL,
  text TEXT NOT NULL,
  status TEXT NOT NULL,
  created_at TEXT NOT NULL,
  completed_at TEXT
);
`
	if _, err := s.db.ExecContext(ctx, ddl); err != nil {
		return fmt.Errorf("create intentions table: %w", err)
	}
	return nil
}

func (s *SQLiteHistoryProjector) Reset(ctx context.Context) error {
	if _, err := s.db.ExecContext(ctx, `DELETE FROM intentions`); err != nil {
		return fmt.Errorf("reset intentions: %w", err)
	}
	return nil
}

func (s *SQLiteHistoryProjector) Upsert(ctx context.Context, intention domain.DailyIntention) error {
	const stmt = `
INSERT INTO intentions (date, id, text, status, created_at, completed_at)
VALUES (?, ?, ?, ?, ?, ?)
ON CONFLICT(date) DO UPDATE SET
  id=excluded.id,
  text=excluded.text,
  status=excluded.status,
  created_at=excluded.created_at,
  completed_at=excluded.completed_at;
`
	var completedAt any
	if intention.CompletedAt != nil {
		completedAt = intention.CompletedAt.Format(time.RFC3339)
	}
	_, err := s.db.ExecContext(ctx, stmt,
		intention.Date,
		intention.ID,
		intention.Text,
		string(intention.Status),
		intention.CreatedAt.Format(time.RFC3339),
		completedAt,
	)
	if err != nil {
		return fmt.Errorf("upsert intention: %w", err)
	}
	return nil
}

func (s *SQLiteHistoryProjector) Stats(ctx context.Context) (domain.Stats, error) {
	const query = `SELECT status, COUNT(*) FROM intentions GROUP BY status`
	rows, err := s.db.QueryContext(ctx, query)
	if err != nil {
		return domain.Stats{}, fmt.Errorf("query intention stats: %w", err)
	}
	defer func() { _ = rows.Close() }()

	stats := domain.Stats{}
	for rows.Next() {
		var status string
		var count int
		if err := rows.Scan(&status, &count); err != nil {
			return domain.Stats{}, fmt.Errorf("scan intention stats: %w", err)
		}
		stats.Total += count
		switch domain.Status(status) {
		case domain.StatusComplete:
			stats.Complete = count
		case domain.StatusPartial:
			stats.Partial = count
		case domain.StatusMissed:
			stats.Missed = count
		case domain.StatusInProgress:
			stats.InProgress = count
		}
	}
	if err := rows.Err(); err != nil {
		return domain.Stats{}, fmt.Errorf("iterate intention stats: %w", err)
	}
	return stats, nil
}
