package repo

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"

	"crewboard/internal/models"
)

const listJobsSQL = `
SELECT id, org_id, title, client, location, status,
       start_date, end_date, workers_count, value::text, progress
FROM jobs
WHERE org_id = $1
ORDER BY start_date NULLS LAST, created_at, id`

func (p *pgRepo) ListJobs(ctx context.Context, orgID uuid.UUID) ([]models.Job, error) {
	slog.DebugContext(ctx, "ListJobs", "org_id", orgID.String())
	rows, err := p.db.Query(ctx, listJobsSQL, fromUUID(orgID))
	if err != nil {
		slog.ErrorContext(ctx, "ListJobs failed", "err", err)
		return nil, fmt.Errorf("list jobs: %w", err)
	}
	defer rows.Close()

	jobs := []models.Job{}
	for rows.Next() {
		var (
			id, org          pgtype.UUID
			title, status    string
			client, location pgtype.Text
			start, end       pgtype.Date
			workers          pgtype.Int4
			value            pgtype.Text
			progress         int32
		)
		if err := rows.Scan(&id, &org, &title, &client, &location, &status,
			&start, &end, &workers, &value, &progress); err != nil {
			slog.ErrorContext(ctx, "ListJobs scan failed", "err", err)
			return nil, fmt.Errorf("scan job: %w", err)
		}
		v, err := decimalFromText(value)
		if err != nil {
			return nil, fmt.Errorf("job %s value: %w", toUUID(id), err)
		}
		jobs = append(jobs, models.Job{
			ID:           toUUID(id),
			OrgID:        toUUID(org),
			Title:        title,
			Client:       textOrEmpty(client),
			Location:     textOrEmpty(location),
			Status:       models.JobStatus(status),
			StartDate:    dateOrNil(start),
			EndDate:      dateOrNil(end),
			WorkersCount: intOrNil(workers),
			Value:        v,
			Progress:     int(progress),
		})
	}
	if err := rows.Err(); err != nil {
		slog.ErrorContext(ctx, "ListJobs rows failed", "err", err)
		return nil, fmt.Errorf("list jobs: %w", err)
	}
	slog.DebugContext(ctx, "ListJobs ok", "count", len(jobs))
	return jobs, nil
}
