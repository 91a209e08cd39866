package domain

// Stats is the aggregate view served by the history projection.
type Stats struct {
	Total      int
	Complete   int
	Partial    int
	Missed     int
	InProgress int
}

// CompletionRate is the share of terminal days that ended complete. Days still
// in progress are excluded from the denominator.
func (s Stats) CompletionRate() float64 {
	settled := s.Complete + s.Partial + s.Missed
	if settled == 0 {
		return 0
	}
	return float64(s.Complete) / float64(settled)
}
