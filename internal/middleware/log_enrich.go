package middleware

import (
	"context"
	"net/http"
	"sync"

	"github.com/google/uuid"
)

// logFields is shared by every handler of one request, so values set deep in a
// sub-router are still visible to the outer request logger.
type logFields struct {
	mu    sync.RWMutex
	orgID string
}

type ctxKeyLogFields struct{}

// EnrichLogger installs per-request log fields for logging handlers to pick up.
func EnrichLogger(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ctx := context.WithValue(r.Context(), ctxKeyLogFields{}, &logFields{})
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// SetLogOrg records the org a request resolved to.
func SetLogOrg(ctx context.Context, id uuid.UUID) {
	if f, ok := ctx.Value(ctxKeyLogFields{}).(*logFields); ok {
		f.mu.Lock()
		f.orgID = id.String()
		f.mu.Unlock()
	}
}

// GetLogOrgID returns the enriched org id if set.
func GetLogOrgID(ctx context.Context) (string, bool) {
	f, ok := ctx.Value(ctxKeyLogFields{}).(*logFields)
	if !ok {
		return "", false
	}
	f.mu.RLock()
	defer f.mu.RUnlock()
	return f.orgID, f.orgID != ""
}
