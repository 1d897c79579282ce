package timeline

import "time"

// Position is the visible part of a job inside a week.
type Position struct {
	StartDay int `json:"start_day"`
	Duration int `json:"duration"`
}

// Covers reports whether day (0-6) lies inside the position.
func (p *Position) Covers(day int) bool {
	if p == nil {
		return false
	}
	return day >= p.StartDay && day < p.StartDay+p.Duration
}

// PositionFor maps a job's date range onto week. It returns nil when the range
// does not intersect the week; otherwise the range is clamped to the week.
// An end date before the start date shows as a single day.
func PositionFor(start, end time.Time, week Week) *Position {
	if daysBetween(week.Start(), end) < 0 || daysBetween(week.End(), start) > 0 {
		return nil
	}
	from := max(daysBetween(week.Start(), start), 0)
	to := min(daysBetween(week.Start(), end), DaysPerWeek-1)
	if to < from {
		to = from
	}
	return &Position{StartDay: from, Duration: to - from + 1}
}
