// Package source opens the configured job/employee repository.
package source

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"

	"crewboard/internal/config"
	"crewboard/internal/repo"
)

// Open returns the repo selected by source.kind and a func that releases it.
// now anchors relative dates in a roster file.
func Open(ctx context.Context, cfg config.Config, now time.Time) (repo.Repo, func(), error) {
	switch cfg.Source.Kind {
	case config.SourceFile:
		r, err := repo.NewFile(cfg.Source.File, now)
		if err != nil {
			return nil, nil, err
		}
		slog.Debug("roster file loaded", "path", cfg.Source.File)
		return r, func() {}, nil

	case config.SourcePostgres:
		slog.Debug("connecting to database")
		pool, err := pgxpool.New(ctx, cfg.Database.URL)
		if err != nil {
			return nil, nil, fmt.Errorf("db connect: %w", err)
		}
		pctx, cancel := context.WithTimeout(ctx, 5*time.Second)
		defer cancel()
		if err := pool.Ping(pctx); err != nil {
			pool.Close()
			return nil, nil, fmt.Errorf("db ping: %w", err)
		}
		slog.Debug("database connection ready")
		return repo.New(pool), pool.Close, nil

	default:
		return nil, nil, fmt.Errorf("unknown source kind %q", cfg.Source.Kind)
	}
}
