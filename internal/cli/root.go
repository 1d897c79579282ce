// Package cli provides the crewboard command-line interface.
package cli

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"time"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"crewboard/internal/config"
	"crewboard/internal/logging"
	"crewboard/internal/repo"
	"crewboard/internal/source"
)

// env is what every data command needs once config is loaded.
type env struct {
	cfg   config.Config
	loc   *time.Location
	now   time.Time
	repo  repo.Repo
	close func()
}

type rootOptions struct {
	org string
}

// NewRootCmd builds the command tree. Each call returns fresh flag state.
func NewRootCmd() *cobra.Command {
	opts := &rootOptions{}
	root := &cobra.Command{
		Use:   "crewboard",
		Short: "Weekly job and crew board",
		Long: `crewboard shows which jobs run in a week and where each employee stands.

Jobs and employees come from the source configured in config.yaml
(source.kind: postgres or file). Use --org to pick the organisation; a
roster file with a single org needs no flag.`,
		SilenceUsage: true,
	}
	root.PersistentFlags().StringVar(&opts.org, "org", "", "organisation id")

	root.AddCommand(
		newWeekCmd(opts),
		newBoardCmd(opts),
		newHashKeyCmd(),
	)
	return root
}

// Execute runs the CLI and returns an exit code for main.
func Execute() int {
	if err := NewRootCmd().Execute(); err != nil {
		return 1
	}
	return 0
}

// openEnv loads config, sets up stderr logging and opens the source. asOf is
// a YYYY-MM-DD date to evaluate at instead of the clock; it also anchors
// relative dates in a roster file.
func openEnv(ctx context.Context, asOf string) (*env, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, err
	}
	slog.SetDefault(logging.New(os.Stderr, cfg.Logging.Level, cfg.Logging.Format == "json"))

	loc, err := cfg.Location()
	if err != nil {
		return nil, err
	}
	now := time.Now().In(loc)
	if asOf != "" {
		d, err := time.ParseInLocation(time.DateOnly, asOf, loc)
		if err != nil {
			return nil, fmt.Errorf("invalid --now: %w", err)
		}
		now = d.Add(12 * time.Hour)
	}
	r, closeFn, err := source.Open(ctx, cfg, now)
	if err != nil {
		return nil, err
	}
	return &env{cfg: cfg, loc: loc, now: now, repo: r, close: closeFn}, nil
}

// resolveOrg uses --org, falling back to the only org of a roster file.
func resolveOrg(flag string, r repo.Repo) (uuid.UUID, error) {
	if flag != "" {
		id, err := uuid.Parse(flag)
		if err != nil {
			return uuid.Nil, fmt.Errorf("invalid --org: %w", err)
		}
		return id, nil
	}
	if orgs := repo.Orgs(r); len(orgs) == 1 {
		return orgs[0], nil
	}
	return uuid.Nil, errors.New("--org is required")
}
