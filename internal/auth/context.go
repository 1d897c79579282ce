// internal/auth/context.go
package auth

import (
	"context"

	"github.com/google/uuid"
)

type ctxKey string

var ctxOrg ctxKey = "org"

func WithOrg(ctx context.Context, orgID uuid.UUID) context.Context {
	return context.WithValue(ctx, ctxOrg, orgID)
}

func OrgFromContext(ctx context.Context) (uuid.UUID, bool) {
	id, ok := ctx.Value(ctxOrg).(uuid.UUID)
	return id, ok && id != uuid.Nil
}
