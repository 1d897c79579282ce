package cli

import (
	"context"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"crewboard/internal/repo"
	"crewboard/internal/timeline"
	"crewboard/internal/tui/board"
)

type weekOptions struct {
	*rootOptions
	week int
	now  string
}

func newWeekCmd(root *rootOptions) *cobra.Command {
	opts := &weekOptions{rootOptions: root}
	cmd := &cobra.Command{
		Use:   "week",
		Short: "Print the board for one week",
		Long: `Print the board for one week and exit.

--week moves whole weeks from the current one (-1 is last week). --now
pretends today is the given date, which is handy for looking at old rosters.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runWeek(cmd, opts)
		},
	}
	cmd.Flags().IntVar(&opts.week, "week", 0, "week offset from the current week")
	cmd.Flags().StringVar(&opts.now, "now", "", "evaluate as of this date (YYYY-MM-DD)")
	return cmd
}

func runWeek(cmd *cobra.Command, opts *weekOptions) error {
	ctx, cancel := context.WithTimeout(cmd.Context(), 30*time.Second)
	defer cancel()

	e, err := openEnv(ctx, opts.now)
	if err != nil {
		return err
	}
	defer e.close()

	org, err := resolveOrg(opts.org, e.repo)
	if err != nil {
		return err
	}
	roster, err := repo.FetchRoster(ctx, e.repo, org)
	if err != nil {
		return err
	}

	nav := timeline.NewNavigator(e.cfg.Timeline.MaxWeekOffset)
	nav.Set(opts.week)
	v := timeline.NewProjector(e.cfg.Timeline.OnSiteLimit).Project(roster.Jobs, roster.Employees, nav.Offset, e.now)
	_, err = fmt.Fprint(cmd.OutOrStdout(), board.Render(v))
	return err
}
