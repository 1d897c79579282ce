package timeline

import (
	"time"

	"crewboard/internal/models"
)

// View is everything the grid needs for one week.
type View struct {
	Offset  int
	Week    Week
	Today   time.Time
	Entries []Entry // all Active/Pending jobs, visible or not
	Visible []Entry
	Workers []Worker
	Clashes []Clash
	Summary Summary
}

// Projector turns jobs and employees into a View. The zero value uses RoundRobin.
type Projector struct {
	Assigner Assigner
}

func NewProjector(onSiteLimit int) *Projector {
	return &Projector{Assigner: RoundRobin{Limit: onSiteLimit}}
}

// Project builds the view for the week offset weeks from now's week.
// Inputs are read only.
func (p *Projector) Project(jobs []models.Job, employees []models.Employee, offset int, now time.Time) View {
	assigner := p.Assigner
	if assigner == nil {
		assigner = RoundRobin{}
	}
	week := WeekDays(now, offset)

	entries := make([]Entry, 0, len(jobs))
	var visible []Entry
	for _, j := range jobs {
		if !Projectable(j.Status) {
			continue
		}
		e := NewEntry(j, now, week)
		entries = append(entries, e)
		if e.Visible() {
			visible = append(visible, e)
		}
	}

	clashes := DetectClash(visible, employees, week, now)

	workers := make([]Worker, 0, len(employees))
	activeIndex := 0
	for _, emp := range employees {
		idx := -1
		if emp.Active() {
			idx = activeIndex
			activeIndex++
		}
		status, job := ResolveStatus(emp, idx, clashes, visible, assigner)
		workers = append(workers, Worker{
			Employee:   emp,
			Status:     status,
			CurrentJob: job,
			Schedule:   BuildSchedule(status, job),
		})
	}

	return View{
		Offset:  offset,
		Week:    week,
		Today:   dateOf(now),
		Entries: entries,
		Visible: visible,
		Workers: workers,
		Clashes: clashes,
		Summary: Summarise(entries, employees, clashes),
	}
}
