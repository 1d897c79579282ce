package cli

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"crewboard/internal/timeline"
	"crewboard/internal/tui/board"
)

func newBoardCmd(root *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "board",
		Short: "Interactive week board",
		Long: `Open the interactive week board.

Keys: ←/h previous week, →/l next week, t this week, r reload, ? help, q quit.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			e, err := openEnv(cmd.Context(), "")
			if err != nil {
				return err
			}
			defer e.close()

			org, err := resolveOrg(root.org, e.repo)
			if err != nil {
				return err
			}
			m := board.New(
				e.repo,
				org,
				timeline.NewProjector(e.cfg.Timeline.OnSiteLimit),
				timeline.NewNavigator(e.cfg.Timeline.MaxWeekOffset),
				func() time.Time { return time.Now().In(e.loc) },
			)
			_, err = tea.NewProgram(m, tea.WithAltScreen(), tea.WithContext(cmd.Context())).Run()
			return err
		},
	}
}
