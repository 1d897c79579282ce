// internal/repo/repo.go
package repo

import (
	"context"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"crewboard/internal/models"
)

// Repo is the read side the timeline needs: the job source and the employee source.
type Repo interface {
	ListJobs(ctx context.Context, orgID uuid.UUID) ([]models.Job, error)
	ListEmployees(ctx context.Context, orgID uuid.UUID) ([]models.Employee, error)
	Ping(ctx context.Context) error
}

// DB is the subset of *pgxpool.Pool the Postgres repo uses.
type DB interface {
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	Ping(ctx context.Context) error
}

// pgRepo reads jobs and employees from Postgres.
type pgRepo struct{ db DB }

func New(db DB) Repo { return &pgRepo{db: db} }

func (p *pgRepo) Ping(ctx context.Context) error { return p.db.Ping(ctx) }
