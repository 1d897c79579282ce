// internal/handlers/week/week.go
package week

import (
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"crewboard/internal/auth"
	httpserver "crewboard/internal/http"
	"crewboard/internal/repo"
	"crewboard/internal/timeline"
)

type Handler struct {
	repo      repo.Repo
	projector *timeline.Projector
	maxOffset int
	loc       *time.Location
	now       func() time.Time
}

// New builds the timeline handler. now is the clock used for "today"; it is
// converted to loc before projecting.
func New(r repo.Repo, p *timeline.Projector, maxOffset int, loc *time.Location, now func() time.Time) *Handler {
	if loc == nil {
		loc = time.UTC
	}
	if now == nil {
		now = time.Now
	}
	return &Handler{repo: r, projector: p, maxOffset: maxOffset, loc: loc, now: now}
}

// Timeline handles GET /orgs/{orgID}/timeline?week=N.
func (h *Handler) Timeline(w http.ResponseWriter, r *http.Request) {
	orgID, ok := auth.OrgFromContext(r.Context())
	if !ok {
		httpserver.Error(w, http.StatusUnauthorized, "unauthorized")
		return
	}

	nav := timeline.NewNavigator(h.maxOffset)
	if raw := r.URL.Query().Get("week"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil {
			httpserver.Error(w, http.StatusBadRequest, "week must be an integer")
			return
		}
		nav.Set(n)
	}

	roster, err := repo.FetchRoster(r.Context(), h.repo, orgID)
	if err != nil {
		status, msg := httpserver.SourceErrorMessage(err, "failed to load timeline")
		slog.ErrorContext(r.Context(), "timeline fetch failed", "err", err, "status", status)
		httpserver.Error(w, status, msg)
		return
	}

	view := h.projector.Project(roster.Jobs, roster.Employees, nav.Offset, h.now().In(h.loc))
	slog.DebugContext(r.Context(), "timeline projected",
		"week", view.Offset, "visible", len(view.Visible), "clashes", len(view.Clashes))
	httpserver.JSON(w, http.StatusOK, toResponse(view, nav))
}
