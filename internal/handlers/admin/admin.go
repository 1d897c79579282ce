package admin

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	httpserver "crewboard/internal/http"
	"crewboard/internal/repo"
)

// HealthHandler reports whether the job/employee source answers a ping.
// Access: public; it reveals nothing beyond up or down.
func HealthHandler(r repo.Repo) http.HandlerFunc {
	return func(w http.ResponseWriter, req *http.Request) {
		ctx, cancel := context.WithTimeout(req.Context(), 2*time.Second)
		defer cancel()

		type body struct {
			Status string `json:"status"`
			Source string `json:"source"`
		}
		if err := r.Ping(ctx); err != nil {
			slog.WarnContext(req.Context(), "health ping failed", "err", err)
			httpserver.JSON(w, http.StatusServiceUnavailable, body{Status: "degraded", Source: "down"})
			return
		}
		httpserver.JSON(w, http.StatusOK, body{Status: "ok", Source: "up"})
	}
}
