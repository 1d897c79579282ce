// internal/handlers/router.go
package handlers

import (
	"time"

	"github.com/go-chi/chi/v5"

	"crewboard/internal/auth"
	"crewboard/internal/handlers/admin"
	"crewboard/internal/handlers/roster"
	"crewboard/internal/handlers/week"
	"crewboard/internal/middleware"
	"crewboard/internal/repo"
	"crewboard/internal/security"
	"crewboard/internal/timeline"
)

// Deps are the collaborators the routes need. A nil Keyring leaves org routes
// unauthenticated.
type Deps struct {
	Repo          repo.Repo
	Projector     *timeline.Projector
	Keyring       *auth.Keyring
	Denylist      *security.Denylist
	MaxWeekOffset int
	Location      *time.Location
	Now           func() time.Time
}

func RegisterRoutes(mux *chi.Mux, d Deps) {
	if d.Projector == nil {
		d.Projector = timeline.NewProjector(timeline.DefaultOnSiteLimit)
	}
	wk := week.New(d.Repo, d.Projector, d.MaxWeekOffset, d.Location, d.Now)
	ro := roster.New(d.Repo)

	mux.Get("/healthz", admin.HealthHandler(d.Repo))

	mux.Route("/orgs/{orgID}", func(sr chi.Router) {
		// Resolve and authorise the org ONCE for the group
		sr.Use(middleware.OrgScope(d.Keyring, d.Denylist))

		sr.Get("/timeline", wk.Timeline)
		sr.Get("/jobs", ro.Jobs)
		sr.Get("/employees", ro.Employees)
	})
}
