package repo

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/BurntSushi/toml"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"crewboard/internal/models"
)

// roster is the on-disk layout of a file source.
//
//	[[orgs]]
//	id = "..."
//	[[orgs.employees]]
//	name = "James Wilson"
//	[[orgs.jobs]]
//	title = "Commercial Rewiring"
//	start_in_days = -3   # relative to the day the file is loaded
//	end_date = 2024-02-28
type roster struct {
	Orgs []rosterOrg `toml:"orgs"`
}

type rosterOrg struct {
	ID        string           `toml:"id"`
	Name      string           `toml:"name"`
	Employees []rosterEmployee `toml:"employees"`
	Jobs      []rosterJob      `toml:"jobs"`
}

type rosterEmployee struct {
	ID       string `toml:"id"`
	Name     string `toml:"name"`
	TeamRole string `toml:"team_role"`
	Avatar   string `toml:"avatar"`
	Status   string `toml:"status"`
}

type rosterJob struct {
	ID           string     `toml:"id"`
	Title        string     `toml:"title"`
	Client       string     `toml:"client"`
	Location     string     `toml:"location"`
	Status       string     `toml:"status"`
	StartDate    *time.Time `toml:"start_date"`
	EndDate      *time.Time `toml:"end_date"`
	StartInDays  *int       `toml:"start_in_days"`
	EndInDays    *int       `toml:"end_in_days"`
	WorkersCount *int       `toml:"workers_count"`
	Value        *string    `toml:"value"`
	Progress     int        `toml:"progress"`
}

type orgData struct {
	jobs      []models.Job
	employees []models.Employee
}

// fileRepo serves a roster decoded once from TOML. It is read-only and safe
// for concurrent use.
type fileRepo struct {
	orgs map[uuid.UUID]orgData
}

// NewFile loads a roster file. Relative job dates are resolved against now.
func NewFile(path string, now time.Time) (Repo, error) {
	var r roster
	if _, err := toml.DecodeFile(path, &r); err != nil {
		return nil, fmt.Errorf("load roster %s: %w", path, err)
	}
	return fromRoster(r, now)
}

// NewFileFromString is NewFile for an in-memory document.
func NewFileFromString(doc string, now time.Time) (Repo, error) {
	var r roster
	if _, err := toml.Decode(doc, &r); err != nil {
		return nil, fmt.Errorf("decode roster: %w", err)
	}
	return fromRoster(r, now)
}

func fromRoster(r roster, now time.Time) (*fileRepo, error) {
	y, m, d := now.Date()
	today := time.Date(y, m, d, 0, 0, 0, 0, time.UTC)

	out := &fileRepo{orgs: make(map[uuid.UUID]orgData, len(r.Orgs))}
	for _, o := range r.Orgs {
		orgID, err := uuid.Parse(o.ID)
		if err != nil {
			return nil, fmt.Errorf("org %q: bad id: %w", o.Name, err)
		}
		var data orgData
		for i, e := range o.Employees {
			id, err := idOrNew(e.ID)
			if err != nil {
				return nil, fmt.Errorf("org %s employee %d: %w", orgID, i, err)
			}
			status := models.EmployeeStatus(e.Status)
			if status == "" {
				status = models.EmployeeActive
			}
			data.employees = append(data.employees, models.Employee{
				ID:             id,
				OrgID:          orgID,
				Name:           e.Name,
				TeamRole:       models.TeamRole(e.TeamRole),
				AvatarInitials: initials(e.Avatar, e.Name),
				Status:         status,
			})
		}
		for i, j := range o.Jobs {
			job, err := j.toJob(orgID, today)
			if err != nil {
				return nil, fmt.Errorf("org %s job %d: %w", orgID, i, err)
			}
			data.jobs = append(data.jobs, job)
		}
		out.orgs[orgID] = data
	}
	return out, nil
}

func (j rosterJob) toJob(orgID uuid.UUID, today time.Time) (models.Job, error) {
	id, err := idOrNew(j.ID)
	if err != nil {
		return models.Job{}, err
	}
	job := models.Job{
		ID:           id,
		OrgID:        orgID,
		Title:        j.Title,
		Client:       j.Client,
		Location:     j.Location,
		Status:       models.JobStatus(j.Status),
		StartDate:    resolveDate(j.StartDate, j.StartInDays, today),
		EndDate:      resolveDate(j.EndDate, j.EndInDays, today),
		WorkersCount: j.WorkersCount,
		Progress:     j.Progress,
	}
	if j.Value != nil {
		v, err := decimal.NewFromString(*j.Value)
		if err != nil {
			return models.Job{}, fmt.Errorf("bad value %q: %w", *j.Value, err)
		}
		job.Value = decimal.NewNullDecimal(v)
	}
	return job, nil
}

func resolveDate(abs *time.Time, rel *int, today time.Time) *time.Time {
	if abs != nil {
		y, m, d := abs.Date()
		t := time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
		return &t
	}
	if rel != nil {
		t := today.AddDate(0, 0, *rel)
		return &t
	}
	return nil
}

func idOrNew(s string) (uuid.UUID, error) {
	if s == "" {
		return uuid.New(), nil
	}
	return uuid.Parse(s)
}

// initials falls back to the first letter of each word of the name.
func initials(avatar, name string) string {
	if avatar != "" {
		return avatar
	}
	var b strings.Builder
	for _, w := range strings.Fields(name) {
		b.WriteString(strings.ToUpper(string([]rune(w)[:1])))
	}
	return b.String()
}

func (f *fileRepo) org(ctx context.Context, orgID uuid.UUID) (orgData, error) {
	data, ok := f.orgs[orgID]
	if !ok {
		slog.DebugContext(ctx, "roster org missing", "org_id", orgID.String())
		return orgData{}, models.ErrOrgNotFound
	}
	return data, nil
}

// ListJobs returns a copy so callers cannot change the roster.
func (f *fileRepo) ListJobs(ctx context.Context, orgID uuid.UUID) ([]models.Job, error) {
	data, err := f.org(ctx, orgID)
	if err != nil {
		return nil, err
	}
	return append([]models.Job{}, data.jobs...), nil
}

func (f *fileRepo) ListEmployees(ctx context.Context, orgID uuid.UUID) ([]models.Employee, error) {
	data, err := f.org(ctx, orgID)
	if err != nil {
		return nil, err
	}
	return append([]models.Employee{}, data.employees...), nil
}

func (f *fileRepo) Ping(context.Context) error { return nil }

// Orgs lists the org ids in the roster, mostly for the CLI's default org.
func Orgs(r Repo) []uuid.UUID {
	f, ok := r.(*fileRepo)
	if !ok {
		return nil
	}
	ids := make([]uuid.UUID, 0, len(f.orgs))
	for id := range f.orgs {
		ids = append(ids, id)
	}
	return ids
}
