package middleware

import (
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"crewboard/internal/auth"
	"crewboard/internal/config"
	"crewboard/internal/security"
)

func TestRequestID(t *testing.T) {
	var seen string
	h := RequestID(true)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		seen, _ = GetRequestID(r.Context())
	}))

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("X-Request-ID", "abc")
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	assert.Equal(t, "abc", seen)
	assert.Equal(t, "abc", rec.Header().Get("X-Request-ID"))

	h = RequestID(false)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		seen, _ = GetRequestID(r.Context())
	}))
	h.ServeHTTP(httptest.NewRecorder(), req)
	assert.NotEqual(t, "abc", seen)
	_, err := uuid.Parse(seen)
	assert.NoError(t, err)
}

func orgRouter(kr *auth.Keyring, deny *security.Denylist, seen *string) http.Handler {
	r := chi.NewRouter()
	r.Use(EnrichLogger)
	r.Use(func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, req *http.Request) {
			next.ServeHTTP(w, req)
			// outer middleware sees the org set by the sub-router
			*seen, _ = GetLogOrgID(req.Context())
		})
	})
	r.Route("/orgs/{orgID}", func(sr chi.Router) {
		sr.Use(OrgScope(kr, deny))
		sr.Get("/ping", func(w http.ResponseWriter, req *http.Request) {
			if _, ok := auth.OrgFromContext(req.Context()); !ok {
				w.WriteHeader(http.StatusInternalServerError)
				return
			}
			w.WriteHeader(http.StatusNoContent)
		})
	})
	return r
}

func TestOrgScope_PathOnly(t *testing.T) {
	var seen string
	h := orgRouter(nil, nil, &seen)
	org := uuid.New()

	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/orgs/"+org.String()+"/ping", nil))
	assert.Equal(t, http.StatusNoContent, rec.Code)
	assert.Equal(t, org.String(), seen)

	rec = httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/orgs/not-a-uuid/ping", nil))
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestOrgScope_APIKey(t *testing.T) {
	org, other := uuid.New(), uuid.New()
	phc, err := auth.HashKey("key-1", auth.ArgonParams{Memory: 1024, Time: 1, Threads: 1, SaltLen: 8, KeyLen: 16})
	require.NoError(t, err)
	kr, err := auth.NewKeyring([]config.APIKey{{OrgID: org.String(), Hash: phc}})
	require.NoError(t, err)

	var seen string
	h := orgRouter(kr, nil, &seen)
	do := func(path, token string) int {
		req := httptest.NewRequest(http.MethodGet, path, nil)
		if token != "" {
			req.Header.Set("Authorization", "Bearer "+token)
		}
		rec := httptest.NewRecorder()
		h.ServeHTTP(rec, req)
		return rec.Code
	}

	assert.Equal(t, http.StatusNoContent, do("/orgs/"+org.String()+"/ping", "key-1"))
	assert.Equal(t, http.StatusUnauthorized, do("/orgs/"+org.String()+"/ping", ""))
	assert.Equal(t, http.StatusUnauthorized, do("/orgs/"+org.String()+"/ping", "wrong"))
	assert.Equal(t, http.StatusForbidden, do("/orgs/"+other.String()+"/ping", "key-1"))
}

func TestOrgScope_Denylist(t *testing.T) {
	org := uuid.New()
	deny, err := security.NewDenylist([]string{org.String()})
	require.NoError(t, err)

	var seen string
	h := orgRouter(nil, deny, &seen)
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/orgs/"+org.String()+"/ping", nil))
	assert.Equal(t, http.StatusForbidden, rec.Code)

	rec = httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/orgs/"+uuid.NewString()+"/ping", nil))
	assert.Equal(t, http.StatusNoContent, rec.Code)
}

func TestRateLimiter(t *testing.T) {
	now := time.Date(2024, 6, 5, 10, 0, 0, 0, time.UTC)
	l := newLimiter(1, 2, time.Minute)
	l.now = func() time.Time { return now }

	assert.True(t, l.allow("a"))
	assert.True(t, l.allow("a"))
	assert.False(t, l.allow("a"), "burst exhausted")
	assert.True(t, l.allow("b"), "buckets are per principal")

	now = now.Add(time.Second)
	assert.True(t, l.allow("a"), "refilled after a second")

	now = now.Add(2 * time.Minute)
	l.evict(now)
	assert.Empty(t, l.buckets)
}

func TestRateLimitWith(t *testing.T) {
	h := RateLimitWith(nil, 60, 1, time.Minute)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))

	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))
	assert.Equal(t, http.StatusOK, rec.Code)

	rec = httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))
	assert.Equal(t, http.StatusTooManyRequests, rec.Code)
	assert.Equal(t, "1", rec.Header().Get("Retry-After"))
}

func TestRateLimitWith_UnverifiedTokensShareIPBucket(t *testing.T) {
	org := uuid.New()
	phc, err := auth.HashKey("key-1", auth.ArgonParams{Memory: 1024, Time: 1, Threads: 1, SaltLen: 8, KeyLen: 16})
	require.NoError(t, err)
	kr, err := auth.NewKeyring([]config.APIKey{{OrgID: org.String(), Hash: phc}})
	require.NoError(t, err)

	h := RateLimitWith(kr, 1, 1, time.Minute)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	do := func(remote, token string) int {
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		req.RemoteAddr = remote
		req.Header.Set("Authorization", "Bearer "+token)
		rec := httptest.NewRecorder()
		h.ServeHTTP(rec, req)
		return rec.Code
	}

	allowed := 0
	for i := 0; i < 20; i++ {
		if do("10.0.0.1:5000", fmt.Sprintf("junk-%d", i)) == http.StatusOK {
			allowed++
		}
	}
	assert.Equal(t, 1, allowed)

	// a verified key gets its own bucket even from the same IP
	_, err = kr.Lookup("key-1")
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, do("10.0.0.1:5000", "key-1"))
	assert.Equal(t, http.StatusTooManyRequests, do("10.0.0.1:5000", "key-1"))
}

func TestOrgScope_ErrorBody(t *testing.T) {
	var seen string
	h := orgRouter(nil, nil, &seen)
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/orgs/not-a-uuid/ping", nil))
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))
	assert.JSONEq(t, `{"error":"invalid org id"}`, rec.Body.String())
}

func TestSlogRequestLogger_DefaultStatus(t *testing.T) {
	h := SlogRequestLogger(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte("ok"))
	}))
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "ok", rec.Body.String())
}
