package repo

import (
	"context"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"

	"crewboard/internal/models"
)

// Roster is one org's jobs and employees read together.
type Roster struct {
	Jobs      []models.Job
	Employees []models.Employee
}

// FetchRoster reads both sources concurrently. The first error cancels the
// other read and is returned as-is.
func FetchRoster(ctx context.Context, r Repo, orgID uuid.UUID) (Roster, error) {
	var out Roster
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		jobs, err := r.ListJobs(gctx, orgID)
		out.Jobs = jobs
		return err
	})
	g.Go(func() error {
		emps, err := r.ListEmployees(gctx, orgID)
		out.Employees = emps
		return err
	})
	if err := g.Wait(); err != nil {
		return Roster{}, err
	}
	return out, nil
}
