package timeline

import (
	"time"

	"crewboard/internal/models"
)

// Clash flags one worker apparently booked on two jobs the same day.
type Clash struct {
	Employee models.Employee
	Jobs     [2]Entry
	Date     time.Time
}

// DetectClash reports at most one clash, and only for today: today must be a
// weekday inside week with at least two visible jobs covering it. The clash is
// pinned on the first employee; it is a display flag, not a booking check.
func DetectClash(visible []Entry, employees []models.Employee, week Week, now time.Time) []Clash {
	if len(employees) == 0 || len(visible) < 2 {
		return nil
	}
	day, ok := week.DayIndex(now)
	if !ok || IsWeekend(day) {
		return nil
	}
	var hits []Entry
	for _, e := range visible {
		if e.Position.Covers(day) {
			hits = append(hits, e)
			if len(hits) == 2 {
				return []Clash{{
					Employee: employees[0],
					Jobs:     [2]Entry{hits[0], hits[1]},
					Date:     week[day],
				}}
			}
		}
	}
	return nil
}
