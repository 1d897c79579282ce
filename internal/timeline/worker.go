package timeline

import (
	"github.com/google/uuid"

	"crewboard/internal/models"
)

type WorkerStatus string

const (
	StatusLeave     WorkerStatus = "Leave"
	StatusClash     WorkerStatus = "Clash"
	StatusOnSite    WorkerStatus = "On Site"
	StatusAvailable WorkerStatus = "Available"
)

// Style is the display token the UI maps to badge colours.
func (s WorkerStatus) Style() string {
	switch s {
	case StatusLeave:
		return "muted"
	case StatusClash:
		return "danger"
	case StatusOnSite:
		return "success"
	default:
		return "info"
	}
}

// DaySlot is one cell of a worker's week. JobColor is empty for placeholder
// availability, which the UI draws differently from a real job.
type DaySlot struct {
	Assigned bool   `json:"assigned"`
	JobColor string `json:"job_color,omitempty"`
}

// Worker is one employee row of the grid.
type Worker struct {
	Employee   models.Employee
	Status     WorkerStatus
	CurrentJob *Entry
	Schedule   [DaysPerWeek]DaySlot
}

// ResolveStatus applies Leave > Clash > On Site > Available. The current job is
// only set for On Site.
func ResolveStatus(emp models.Employee, activeIndex int, clashes []Clash, visible []Entry, a Assigner) (WorkerStatus, *Entry) {
	if !emp.Active() {
		return StatusLeave, nil
	}
	if inClash(emp.ID, clashes) {
		return StatusClash, nil
	}
	if onSite, job := a.Assign(activeIndex, visible); onSite {
		return StatusOnSite, job
	}
	return StatusAvailable, nil
}

func inClash(id uuid.UUID, clashes []Clash) bool {
	for _, c := range clashes {
		if c.Employee.ID == id {
			return true
		}
	}
	return false
}

// BuildSchedule lays out a worker's week. Weekends and leave are never
// assigned; a current job fills only the days its position covers; any other
// weekday is marked as available.
func BuildSchedule(status WorkerStatus, current *Entry) [DaysPerWeek]DaySlot {
	var days [DaysPerWeek]DaySlot
	if status == StatusLeave {
		return days
	}
	for i := range days {
		switch {
		case IsWeekend(i):
		case current != nil:
			if current.Position.Covers(i) {
				days[i] = DaySlot{Assigned: true, JobColor: current.Stage.Color()}
			}
		default:
			days[i] = DaySlot{Assigned: true}
		}
	}
	return days
}
