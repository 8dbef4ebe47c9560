package cli

import (
	"context"
	"fmt"

	"github.com/alexanderramin/trackr/internal/stats"
	"github.com/spf13/cobra"
)

func newStopCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "stop",
		Short: "Stop the active session",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			user, err := currentUser(ctx, app)
			if err != nil {
				return err
			}

			s, err := app.Tracker.Stop(ctx, user.ID)
			if err != nil {
				return err
			}

			fmt.Printf("Stopped after %s\n", stats.FormatHMS(*s.Duration))
			return nil
		},
	}
}
