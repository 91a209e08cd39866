package clock

import "time"

const dayLayout = "2006-01-02"

// Clock abstracts time to keep usecases deterministic in tests.
type Clock interface {
	Now() time.Time
}

// SystemClock reports device-local time. Day keys must roll over at the
// device's midnight, not UTC's.
type SystemClock struct{}

func (SystemClock) Now() time.Time {
	return time.Now()
}

// DayKey collapses a timestamp to its calendar-day key (YYYY-MM-DD).
func DayKey(t time.Time) string {
	return t.Format(dayLayout)
}

// ParseDayKey is the inverse of DayKey. The zero time is returned for
// malformed keys.
func ParseDayKey(key string) time.Time {
	t, err := time.Parse(dayLayout, key)
	if err != nil {
		return time.Time{}
	}
	return t
}

// PrevDayKey returns the key for the calendar day before the given key.
func PrevDayKey(key string) string {
	return DayKey(ParseDayKey(key).AddDate(0, 0, -1))
}
