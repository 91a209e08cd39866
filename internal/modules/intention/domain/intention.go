package domain

import (
	"errors"
	"fmt"
	"sort"
	"strings"
	"time"
)

const SchemaVersion = 1

var (
	ErrEmptyIntentionText = errors.New("intention text is required")
	ErrUnknownStatus      = errors.New("unknown intention status")
	ErrNotTerminalStatus  = errors.New("check-in status must be terminal")
)

type Status string

const (
	StatusInProgress Status = "in_progress"
	StatusComplete   Status = "complete"
	StatusPartial    Status = "partial"
	StatusMissed     Status = "missed"
)

func (s Status) Validate() error {
	switch s {
	case StatusInProgress, StatusComplete, StatusPartial, StatusMissed:
		return nil
	default:
		return fmt.Errorf("%w: %s", ErrUnknownStatus, s)
	}
}

// Terminal reports whether the status ends the intention's lifecycle. The only
// way out of a terminal status is a fresh declaration replacing the record.
func (s Status) Terminal() bool {
	return s == StatusComplete || s == StatusPartial || s == StatusMissed
}

// DailyIntention is one day's goal. Date is the calendar-day key (YYYY-MM-DD);
// the log holds at most one record per date.
type DailyIntention struct {
	ID          string     `json:"id"`
	Date        string     `json:"date"`
	Text        string     `json:"text"`
	Status      Status     `json:"status"`
	CreatedAt   time.Time  `json:"created_at"`
	CompletedAt *time.Time `json:"completed_at"`
}

func (d DailyIntention) Validate() error {
	if strings.TrimSpace(d.Text) == "" {
		return ErrEmptyIntentionText
	}
	if d.Date == "" {
		return fmt.Errorf("intention date is required")
	}
	return d.Status.Validate()
}

// Log is the full persisted intention history.
type Log struct {
	SchemaVersion int              `json:"schema_version"`
	Intentions    []DailyIntention `json:"intentions"`
}

func (l Log) FindByDate(date string) (DailyIntention, bool) {
	for _, intention := range l.Intentions {
		if intention.Date == date {
			return intention, true
		}
	}
	return DailyIntention{}, false
}

// Replace inserts the intention, discarding any prior record for the same
// date. A same-day re-declaration starts over; the replaced record's status is
// gone for good.
func (l Log) Replace(intention DailyIntention) Log {
	kept := make([]DailyIntention, 0, len(l.Intentions)+1)
	for _, existing := range l.Intentions {
		if existing.Date != intention.Date {
			kept = append(kept, existing)
		}
	}
	kept = append(kept, intention)
	return Log{SchemaVersion: SchemaVersion, Intentions: kept}
}

// SortedDesc returns the history newest-first.
func (l Log) SortedDesc() []DailyIntention {
	out := make([]DailyIntention, len(l.Intentions))
	copy(out, l.Intentions)
	sort.Slice(out, func(i, j int) bool { return out[i].Date > out[j].Date })
	return out
}

// NewIntention builds today's record in its initial state. The id derives from
// creation time like custom focus-mode ids do.
func NewIntention(text string, now time.Time) DailyIntention {
	return DailyIntention{
		ID:        fmt.Sprintf("intention-%d", now.UnixMilli()),
		Date:      DayKey(now),
		Text:      strings.TrimSpace(text),
		Status:    StatusInProgress,
		CreatedAt: now,
	}
}

const dayLayout = "2006-01-02"

// DayKey collapses a timestamp to its calendar-day key.
func DayKey(t time.Time) string {
	return t.Format(dayLayout)
}

func prevDay(key string) string {
	t, err := time.Parse(dayLayout, key)
	if err != nil {
		return ""
	}
	return t.AddDate(0, 0, -1).Format(dayLayout)
}

// ComputeStreak counts consecutive complete days walking back from today.
// A missing day or any non-complete record terminates the count immediately;
// the walk never skips forward over a gap. Today's in_progress record neither
// counts nor carries the walk past today, so it yields 0 on its own.
func ComputeStreak(intentions []DailyIntention, today string) int {
	byDate := make(map[string]DailyIntention, len(intentions))
	for _, intention := range intentions {
		byDate[intention.Date] = intention
	}
	streak := 0
	for expected := today; expected != ""; expected = prevDay(expected) {
		record, ok := byDate[expected]
		if !ok || record.Status != StatusComplete {
			break
		}
		streak++
	}
	return streak
}
