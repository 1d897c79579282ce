// cmd/server/main.go
package main

import (
	"context"
	"log/slog"
	"net/http"
	"os"
	"time"
	_ "time/tzdata"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"

	"crewboard/internal/auth"
	"crewboard/internal/config"
	"crewboard/internal/handlers"
	"crewboard/internal/logging"
	"crewboard/internal/middleware"
	"crewboard/internal/security"
	"crewboard/internal/source"
	"crewboard/internal/timeline"
)

func main() {
	// --- Load config (config.yaml + .env + env overrides) ---
	cfg, err := config.Load()
	if err != nil {
		slog.Error("config", "err", err)
		os.Exit(1)
	}

	// --- Logger ---
	logging.Setup(cfg.Logging.Level, cfg.Logging.Format == "json")

	loc, _ := cfg.Location() // validated by Load

	// --- Job/employee source ---
	ctx := context.Background()
	r, closeSource, err := source.Open(ctx, cfg, time.Now().In(loc))
	if err != nil {
		slog.Error("source open error", "kind", cfg.Source.Kind, "err", err)
		os.Exit(1)
	}
	defer closeSource()

	// --- API keys ---
	var kr *auth.Keyring
	if cfg.Security.APIKeys.Enabled {
		kr, err = auth.NewKeyring(cfg.Security.APIKeys.Keys)
		if err != nil {
			slog.Error("api keys", "err", err)
			os.Exit(1)
		}
		slog.Debug("api keys loaded", "count", len(cfg.Security.APIKeys.Keys))
	} else {
		slog.Warn("api keys disabled; org routes are open")
	}

	var deny *security.Denylist
	if cfg.Security.Denylist.Enabled {
		deny, err = security.NewDenylist(cfg.Security.Denylist.Orgs)
		if err != nil {
			slog.Error("denylist", "err", err)
			os.Exit(1)
		}
	}

	// --- Router ---
	mux := chi.NewRouter()

	// Ensure request ID then log requests with slog
	mux.Use(middleware.RequestID(cfg.Security.RequestID.TrustHeader))
	mux.Use(middleware.EnrichLogger)
	mux.Use(middleware.SlogRequestLogger)
	mux.Use(chimw.Recoverer)
	if cfg.Security.RateLimit.Enabled {
		mux.Use(middleware.RateLimitWith(kr, cfg.Security.RateLimit.RequestsPerMinute, cfg.Security.RateLimit.Burst, cfg.Security.RateLimit.TTL))
	}

	// --- CORS middleware ---
	mux.Use(cors.Handler(cors.Options{
		AllowedOrigins:   cfg.CORS.AllowedOrigins,
		AllowedMethods:   []string{"GET", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type", "X-Request-ID"},
		ExposedHeaders:   []string{"X-Request-ID", "Retry-After"},
		AllowCredentials: false,
		MaxAge:           300, // Maximum value not ignored by browsers
	}))

	handlers.RegisterRoutes(mux, handlers.Deps{
		Repo:          r,
		Projector:     timeline.NewProjector(cfg.Timeline.OnSiteLimit),
		Keyring:       kr,
		Denylist:      deny,
		MaxWeekOffset: cfg.Timeline.MaxWeekOffset,
		Location:      loc,
		Now:           time.Now,
	})

	// --- Start server ---
	addr := cfg.ListenAddr
	if v := os.Getenv("PORT"); v != "" {
		addr = ":" + v
	}
	slog.Info("listening", "addr", addr, "source", cfg.Source.Kind, "timezone", loc.String())
	if err := http.ListenAndServe(addr, mux); err != nil {
		slog.Error("server error", "err", err)
		os.Exit(1)
	}
}
