package week

import (
	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"crewboard/internal/timeline"
)

// Response is the JSON body of GET /orgs/{orgID}/timeline.
type Response struct {
	Week    weekDTO     `json:"week"`
	Nav     navDTO      `json:"nav"`
	Entries []entryDTO  `json:"entries"`
	Workers []workerDTO `json:"workers"`
	Clashes []clashDTO  `json:"clashes"`
	Summary summaryDTO  `json:"summary"`
}

type weekDTO struct {
	Start string   `json:"start"`
	End   string   `json:"end"`
	Days  []string `json:"days"`
	Today string   `json:"today"`
}

type navDTO struct {
	Offset  int  `json:"offset"`
	Prev    int  `json:"prev"`
	Next    int  `json:"next"`
	Current bool `json:"is_current_week"`
}

type entryDTO struct {
	ID              uuid.UUID          `json:"id"`
	Title           string             `json:"title"`
	Client          string             `json:"client"`
	Location        string             `json:"location"`
	Status          string             `json:"status"`
	Stage           string             `json:"stage"`
	Color           string             `json:"color"`
	AssignedWorkers int                `json:"assigned_workers"`
	StartDate       string             `json:"start_date"`
	EndDate         string             `json:"end_date"`
	Value           *decimal.Decimal   `json:"value"`
	Progress        int                `json:"progress"`
	Position        *timeline.Position `json:"position"`
}

type workerDTO struct {
	ID             uuid.UUID                               `json:"id"`
	Name           string                                  `json:"name"`
	TeamRole       string                                  `json:"team_role"`
	AvatarInitials string                                  `json:"avatar_initials"`
	Status         string                                  `json:"status"`
	Style          string                                  `json:"style"`
	CurrentJobID   *uuid.UUID                              `json:"current_job_id,omitempty"`
	CurrentJob     string                                  `json:"current_job,omitempty"`
	Schedule       [timeline.DaysPerWeek]timeline.DaySlot `json:"schedule"`
}

type clashDTO struct {
	EmployeeID   uuid.UUID    `json:"employee_id"`
	EmployeeName string       `json:"employee_name"`
	JobIDs       [2]uuid.UUID `json:"job_ids"`
	JobTitles    [2]string    `json:"job_titles"`
	Date         string       `json:"date"`
}

type summaryDTO struct {
	JobsThisWeek   int             `json:"jobs_this_week"`
	ActiveWorkers  int             `json:"active_workers"`
	TotalWeekValue decimal.Decimal `json:"total_week_value"`
	FormattedValue string          `json:"total_week_value_formatted"`
	ClashCount     int             `json:"clash_count"`
}

func toResponse(v timeline.View, nav *timeline.Navigator) Response {
	const layout = "2006-01-02"

	resp := Response{
		Week: weekDTO{
			Start: v.Week.Start().Format(layout),
			End:   v.Week.End().Format(layout),
			Days:  v.Week.Labels(),
			Today: v.Today.Format(layout),
		},
		Nav: navDTO{
			Offset:  v.Offset,
			Prev:    nav.Clamp(v.Offset - 1),
			Next:    nav.Clamp(v.Offset + 1),
			Current: v.Offset == 0,
		},
		Entries: make([]entryDTO, 0, len(v.Visible)),
		Workers: make([]workerDTO, 0, len(v.Workers)),
		Clashes: make([]clashDTO, 0, len(v.Clashes)),
		Summary: summaryDTO{
			JobsThisWeek:   v.Summary.JobsThisWeek,
			ActiveWorkers:  v.Summary.ActiveWorkers,
			TotalWeekValue: v.Summary.TotalWeekValue,
			FormattedValue: timeline.FormatValue(v.Summary.TotalWeekValue),
			ClashCount:     v.Summary.ClashCount,
		},
	}

	for _, e := range v.Visible {
		d := entryDTO{
			ID:              e.Job.ID,
			Title:           e.Job.Title,
			Client:          e.Job.Client,
			Location:        e.Job.Location,
			Status:          string(e.Job.Status),
			Stage:           string(e.Stage),
			Color:           e.Stage.Color(),
			AssignedWorkers: e.AssignedWorkers,
			StartDate:       e.StartDate.Format(layout),
			EndDate:         e.EndDate.Format(layout),
			Progress:        e.Job.Progress,
			Position:        e.Position,
		}
		if e.Job.Value.Valid {
			val := e.Job.Value.Decimal
			d.Value = &val
		}
		resp.Entries = append(resp.Entries, d)
	}

	for _, w := range v.Workers {
		d := workerDTO{
			ID:             w.Employee.ID,
			Name:           w.Employee.Name,
			TeamRole:       string(w.Employee.TeamRole),
			AvatarInitials: w.Employee.AvatarInitials,
			Status:         string(w.Status),
			Style:          w.Status.Style(),
			Schedule:       w.Schedule,
		}
		if w.CurrentJob != nil {
			id := w.CurrentJob.Job.ID
			d.CurrentJobID = &id
			d.CurrentJob = w.CurrentJob.Job.Title
		}
		resp.Workers = append(resp.Workers, d)
	}

	for _, c := range v.Clashes {
		resp.Clashes = append(resp.Clashes, clashDTO{
			EmployeeID:   c.Employee.ID,
			EmployeeName: c.Employee.Name,
			JobIDs:       [2]uuid.UUID{c.Jobs[0].Job.ID, c.Jobs[1].Job.ID},
			JobTitles:    [2]string{c.Jobs[0].Job.Title, c.Jobs[1].Job.Title},
			Date:         c.Date.Format(layout),
		})
	}
	return resp
}
