package cli

import (
	"context"
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
)

func newTrackCmd(app *App) *cobra.Command {
	var group string

	cmd := &cobra.Command{
		Use:   "track",
		Short: "Open the live tracker",
		RunE: func(cmd *cobra.Command, args []string) error {
			if app.IsInteractive != nil && !app.IsInteractive() {
				return fmt.Errorf("the live tracker needs an interactive terminal; use \"trackr start\" instead")
			}

			ctx := context.Background()
			user, err := currentUser(ctx, app)
			if err != nil {
				return err
			}

			m := newTrackModel(app, user.ID, group)
			p := tea.NewProgram(m)
			if _, err := p.Run(); err != nil {
				return fmt.Errorf("running tracker: %w", err)
			}
			return nil
		},
	}

	cmd.Flags().StringVarP(&group, "group", "g", "", "Group label for new sessions")

	return cmd
}
