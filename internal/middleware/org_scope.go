package middleware

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"crewboard/internal/auth"
	httpserver "crewboard/internal/http"
	"crewboard/internal/security"
)

// OrgScope resolves the {orgID} route parameter into the request context.
// With a keyring the request must carry a bearer key issued for that org;
// with a nil keyring the path is trusted as-is. Suspended orgs get 403.
func OrgScope(kr *auth.Keyring, deny *security.Denylist) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			orgID, err := uuid.Parse(chi.URLParam(r, "orgID"))
			if err != nil {
				httpserver.Error(w, http.StatusBadRequest, "invalid org id")
				return
			}
			if kr != nil {
				keyOrg, err := kr.Lookup(auth.BearerToken(r))
				if err != nil {
					httpserver.Error(w, http.StatusUnauthorized, "unauthorized")
					return
				}
				if keyOrg != orgID {
					httpserver.Error(w, http.StatusForbidden, "forbidden")
					return
				}
			}
			if deny.IsOrgDenied(orgID) {
				httpserver.Error(w, http.StatusForbidden, "organisation suspended")
				return
			}
			ctx := auth.WithOrg(r.Context(), orgID)
			SetLogOrg(ctx, orgID)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}
