package timeline

import (
	"github.com/shopspring/decimal"

	"crewboard/internal/models"
)

var thousand = decimal.NewFromInt(1000)

// Summary holds the headline counts shown above the grid.
type Summary struct {
	JobsThisWeek   int
	ActiveWorkers  int
	TotalWeekValue decimal.Decimal
	ClashCount     int
}

// Summarise aggregates entries that are visible this week. Null values count as zero.
func Summarise(entries []Entry, employees []models.Employee, clashes []Clash) Summary {
	s := Summary{TotalWeekValue: decimal.Zero, ClashCount: len(clashes)}
	for _, e := range entries {
		if !e.Visible() {
			continue
		}
		s.JobsThisWeek++
		if e.Job.Value.Valid {
			s.TotalWeekValue = s.TotalWeekValue.Add(e.Job.Value.Decimal)
		}
	}
	for _, emp := range employees {
		if emp.Active() {
			s.ActiveWorkers++
		}
	}
	return s
}

// FormatValue abbreviates amounts of £1000 or more either side of zero to
// whole thousands ("£2k", "£-2k").
func FormatValue(v decimal.Decimal) string {
	if v.IsZero() {
		return "£0"
	}
	if v.Abs().GreaterThanOrEqual(thousand) {
		return "£" + v.Div(thousand).Round(0).String() + "k"
	}
	return "£" + v.String()
}
