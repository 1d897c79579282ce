package repo

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"

	"crewboard/internal/models"
)

const listEmployeesSQL = `
SELECT id, org_id, name, team_role, avatar_initials, status
FROM employees
WHERE org_id = $1
ORDER BY name, id`

func (p *pgRepo) ListEmployees(ctx context.Context, orgID uuid.UUID) ([]models.Employee, error) {
	slog.DebugContext(ctx, "ListEmployees", "org_id", orgID.String())
	rows, err := p.db.Query(ctx, listEmployeesSQL, fromUUID(orgID))
	if err != nil {
		slog.ErrorContext(ctx, "ListEmployees failed", "err", err)
		return nil, fmt.Errorf("list employees: %w", err)
	}
	defer rows.Close()

	emps := []models.Employee{}
	for rows.Next() {
		var (
			id, org        pgtype.UUID
			name, status   string
			role, initials pgtype.Text
		)
		if err := rows.Scan(&id, &org, &name, &role, &initials, &status); err != nil {
			slog.ErrorContext(ctx, "ListEmployees scan failed", "err", err)
			return nil, fmt.Errorf("scan employee: %w", err)
		}
		emps = append(emps, models.Employee{
			ID:             toUUID(id),
			OrgID:          toUUID(org),
			Name:           name,
			TeamRole:       models.TeamRole(textOrEmpty(role)),
			AvatarInitials: textOrEmpty(initials),
			Status:         models.EmployeeStatus(status),
		})
	}
	if err := rows.Err(); err != nil {
		slog.ErrorContext(ctx, "ListEmployees rows failed", "err", err)
		return nil, fmt.Errorf("list employees: %w", err)
	}
	slog.DebugContext(ctx, "ListEmployees ok", "count", len(emps))
	return emps, nil
}
