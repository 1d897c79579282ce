package board

import (
	"fmt"
	"strings"

	"crewboard/internal/timeline"
)

const (
	nameWidth   = 24
	statusWidth = 10
	cellWidth   = 6
)

var (
	cellFilled      = strings.Repeat("█", cellWidth-1) + " "
	cellPlaceholder = strings.Repeat("░", cellWidth-1) + " "
	cellEmpty       = "  ·   "
)

// Render draws the whole board for one projected week.
func Render(v timeline.View) string {
	return strings.Join([]string{Header(v), Jobs(v), Workers(v)}, "\n") + "\n"
}

// Header is the week range, navigation hint and headline numbers.
func Header(v timeline.View) string {
	var b strings.Builder
	b.WriteString(titleStyle.Render(WeekTitle(v.Week, v.Offset)))
	b.WriteByte('\n')
	s := v.Summary
	fmt.Fprintf(&b, "Jobs this week: %d   Active workers: %d   Value: %s   Clashes: %d",
		s.JobsThisWeek, s.ActiveWorkers, timeline.FormatValue(s.TotalWeekValue), s.ClashCount)
	for _, c := range v.Clashes {
		b.WriteByte('\n')
		b.WriteString(clashStyle.Render(fmt.Sprintf("! Clash: %s on %s and %s (%s)",
			c.Employee.Name, c.Jobs[0].Job.Title, c.Jobs[1].Job.Title, c.Date.Format("Mon 02 Jan"))))
	}
	return b.String()
}

// WeekTitle names the week and how far it is from the current one.
func WeekTitle(w timeline.Week, offset int) string {
	title := fmt.Sprintf("Week of %s to %s", w.Start().Format("02 Jan 2006"), w.End().Format("02 Jan 2006"))
	switch {
	case offset == 0:
		return title + " (this week)"
	case offset == 1 || offset == -1:
		return fmt.Sprintf("%s (%+d week)", title, offset)
	default:
		return fmt.Sprintf("%s (%+d weeks)", title, offset)
	}
}

func dayHeader(w timeline.Week, lead int) string {
	var b strings.Builder
	b.WriteString(strings.Repeat(" ", lead))
	for i, d := range w {
		label := fmt.Sprintf("%-*s", cellWidth, d.Format("Mon 02"))
		if timeline.IsWeekend(i) {
			label = mutedStyle.Render(label)
		}
		b.WriteString(label)
	}
	return b.String()
}

// Jobs draws one row per visible job with its span across the week.
func Jobs(v timeline.View) string {
	var b strings.Builder
	b.WriteString(sectionStyle.Render("JOBS"))
	b.WriteByte('\n')
	if len(v.Visible) == 0 {
		b.WriteString(mutedStyle.Render("No jobs scheduled this week"))
		return b.String()
	}
	b.WriteString(dayHeader(v.Week, nameWidth))
	for _, e := range v.Visible {
		b.WriteByte('\n')
		b.WriteString(pad(e.Job.Title, nameWidth))
		style := cellStyle(e.Stage.Color())
		for day := 0; day < timeline.DaysPerWeek; day++ {
			if e.Position.Covers(day) {
				b.WriteString(style.Render(cellFilled))
			} else {
				b.WriteString(cellEmpty)
			}
		}
		value := "£0"
		if e.Job.Value.Valid {
			value = timeline.FormatValue(e.Job.Value.Decimal)
		}
		fmt.Fprintf(&b, " %s  %d workers  %s", style.Render(string(e.Stage)), e.AssignedWorkers, value)
	}
	return b.String()
}

// Workers draws one row per employee with status badge and schedule.
func Workers(v timeline.View) string {
	var b strings.Builder
	b.WriteString(sectionStyle.Render("TEAM"))
	b.WriteByte('\n')
	if len(v.Workers) == 0 {
		b.WriteString(mutedStyle.Render("No employees"))
		return b.String()
	}
	b.WriteString(dayHeader(v.Week, nameWidth+statusWidth))
	for _, w := range v.Workers {
		b.WriteByte('\n')
		b.WriteString(pad(w.Employee.Name, nameWidth))
		b.WriteString(badge(w.Status.Style(), pad(string(w.Status), statusWidth)))
		for _, slot := range w.Schedule {
			switch {
			case !slot.Assigned:
				b.WriteString(cellEmpty)
			case slot.JobColor == "":
				b.WriteString(mutedStyle.Render(cellPlaceholder))
			default:
				b.WriteString(cellStyle(slot.JobColor).Render(cellFilled))
			}
		}
		if w.CurrentJob != nil {
			b.WriteString(" " + w.CurrentJob.Job.Title)
		}
	}
	return b.String()
}

// pad fits s into n columns, cutting it with an ellipsis when too long.
func pad(s string, n int) string {
	r := []rune(s)
	if len(r) >= n {
		return string(r[:n-2]) + "… "
	}
	return s + strings.Repeat(" ", n-len(r))
}
