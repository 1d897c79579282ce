// Package timeline projects jobs and employees onto a Monday-start week grid.
//
// Every function here is pure: the evaluation instant is passed in as now and
// nothing is cached between calls. Dates are compared by calendar day, so job
// dates decoded in UTC line up with a week built in a local timezone.
package timeline

import "time"

const DaysPerWeek = 7

// Week is Monday through Sunday of one displayed week, each at local midnight.
type Week [DaysPerWeek]time.Time

// WeekDays returns the week offset whole weeks away from the week containing now.
func WeekDays(now time.Time, offset int) Week {
	today := dateOf(now)
	monday := today.AddDate(0, 0, -weekdayIndex(today)+DaysPerWeek*offset)
	var w Week
	for i := range w {
		w[i] = monday.AddDate(0, 0, i)
	}
	return w
}

func (w Week) Start() time.Time { return w[0] }
func (w Week) End() time.Time   { return w[DaysPerWeek-1] }

// DayIndex returns t's 0-6 index within the week, or false if t falls outside it.
func (w Week) DayIndex(t time.Time) (int, bool) {
	d := daysBetween(w[0], t)
	if d < 0 || d >= DaysPerWeek {
		return 0, false
	}
	return d, true
}

// Labels renders the week as YYYY-MM-DD strings.
func (w Week) Labels() []string {
	out := make([]string, 0, DaysPerWeek)
	for _, d := range w {
		out = append(out, d.Format(time.DateOnly))
	}
	return out
}

// weekdayIndex is 0 for Monday through 6 for Sunday.
func weekdayIndex(t time.Time) int {
	return (int(t.Weekday()) + 6) % DaysPerWeek
}

// IsWeekend reports whether a Monday-start day index is Saturday or Sunday.
func IsWeekend(day int) bool { return day >= 5 }

func dateOf(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, t.Location())
}

// daysBetween counts calendar days from a to b, ignoring clock time and zone.
func daysBetween(a, b time.Time) int {
	ay, am, ad := a.Date()
	by, bm, bd := b.Date()
	ua := time.Date(ay, am, ad, 0, 0, 0, 0, time.UTC)
	ub := time.Date(by, bm, bd, 0, 0, 0, 0, time.UTC)
	return int(ub.Sub(ua).Hours() / 24)
}
