package timeline

import (
	"time"

	"crewboard/internal/models"
)

// DefaultJobSpanDays is how many days past today a job without an end date is assumed to run.
const DefaultJobSpanDays = 7

type Stage string

const (
	StageInProgress Stage = "In Progress"
	StageScheduled  Stage = "Scheduled"
)

// Color is the display colour for grid cells of this stage.
func (s Stage) Color() string {
	switch s {
	case StageInProgress:
		return "#2563eb"
	case StageScheduled:
		return "#d97706"
	default:
		return ""
	}
}

// StageFor maps a job status to its stage; only Active and Pending jobs are projected.
func StageFor(status models.JobStatus) (Stage, bool) {
	switch status {
	case models.JobActive:
		return StageInProgress, true
	case models.JobPending:
		return StageScheduled, true
	default:
		return "", false
	}
}

// Projectable reports whether a job with this status appears on the timeline at all.
func Projectable(status models.JobStatus) bool {
	_, ok := StageFor(status)
	return ok
}

// Entry is a job resolved against one week. Entries are rebuilt on every projection.
type Entry struct {
	Job             models.Job
	Stage           Stage
	AssignedWorkers int
	StartDate       time.Time
	EndDate         time.Time
	Position        *Position
}

// Visible reports whether the entry intersects the week it was built for.
func (e Entry) Visible() bool { return e.Position != nil }

// NewEntry applies defaults (start=today, end=today+7d, workers=0) and positions
// the job within week.
func NewEntry(job models.Job, now time.Time, week Week) Entry {
	today := dateOf(now)
	start := today
	if job.StartDate != nil {
		start = *job.StartDate
	}
	end := today.AddDate(0, 0, DefaultJobSpanDays)
	if job.EndDate != nil {
		end = *job.EndDate
	}
	workers := 0
	if job.WorkersCount != nil {
		workers = *job.WorkersCount
	}
	stage, _ := StageFor(job.Status)
	return Entry{
		Job:             job,
		Stage:           stage,
		AssignedWorkers: workers,
		StartDate:       start,
		EndDate:         end,
		Position:        PositionFor(start, end, week),
	}
}
