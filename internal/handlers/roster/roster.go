// internal/handlers/roster/roster.go
package roster

import (
	"log/slog"
	"net/http"

	"crewboard/internal/auth"
	httpserver "crewboard/internal/http"
	"crewboard/internal/repo"
)

type Handler struct {
	repo repo.Repo
}

func New(repo repo.Repo) *Handler { return &Handler{repo: repo} }

// Jobs handles GET /orgs/{orgID}/jobs with the unprojected job list.
func (h *Handler) Jobs(w http.ResponseWriter, r *http.Request) {
	orgID, ok := auth.OrgFromContext(r.Context())
	if !ok {
		httpserver.Error(w, http.StatusUnauthorized, "unauthorized")
		return
	}
	jobs, err := h.repo.ListJobs(r.Context(), orgID)
	if err != nil {
		status, msg := httpserver.SourceErrorMessage(err, "failed to list jobs")
		slog.ErrorContext(r.Context(), "list jobs failed", "err", err)
		httpserver.Error(w, status, msg)
		return
	}
	httpserver.JSON(w, http.StatusOK, map[string]any{
		"content": jobs,
		"loading": false,
	})
}

// Employees handles GET /orgs/{orgID}/employees.
func (h *Handler) Employees(w http.ResponseWriter, r *http.Request) {
	orgID, ok := auth.OrgFromContext(r.Context())
	if !ok {
		httpserver.Error(w, http.StatusUnauthorized, "unauthorized")
		return
	}
	emps, err := h.repo.ListEmployees(r.Context(), orgID)
	if err != nil {
		status, msg := httpserver.SourceErrorMessage(err, "failed to list employees")
		slog.ErrorContext(r.Context(), "list employees failed", "err", err)
		httpserver.Error(w, status, msg)
		return
	}
	httpserver.JSON(w, http.StatusOK, map[string]any{
		"content": emps,
		"loading": false,
	})
}
