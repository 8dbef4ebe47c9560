package cli

import (
	"context"
	"fmt"

	"github.com/alexanderramin/trackr/internal/cli/formatter"
	"github.com/spf13/cobra"
)

func newStartCmd(app *App) *cobra.Command {
	var group string

	cmd := &cobra.Command{
		Use:   "start",
		Short: "Start tracking a session",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			user, err := currentUser(ctx, app)
			if err != nil {
				return err
			}

			s, err := app.Tracker.Start(ctx, user.ID, group)
			if err != nil {
				return err
			}

			label := s.Group
			if label == "" {
				label = "no group"
			}
			fmt.Printf("Tracking started at %s (%s)\n", formatter.LocalClock(s.StartTime), label)
			return nil
		},
	}

	cmd.Flags().StringVarP(&group, "group", "g", "", "Group label for this session")

	return cmd
}
