package cli

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/alexanderramin/trackr/internal/cli/formatter"
	"github.com/alexanderramin/trackr/internal/service"
	"github.com/alexanderramin/trackr/internal/stats"
	"github.com/spf13/cobra"
)

func newStatusCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "status",
		Short: "Show whether a session is being tracked",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			user, err := currentUser(ctx, app)
			if err != nil {
				return err
			}

			s, err := app.Tracker.Active(ctx, user.ID)
			if err != nil {
				if errors.Is(err, service.ErrNoActiveSession) {
					fmt.Println("Not tracking.")
					return nil
				}
				return err
			}

			// Elapsed is always derived from the stored start, never a
			// counter, so it stays correct regardless of when the last
			// status check ran.
			elapsed := int(time.Now().UTC().Sub(s.StartTime) / time.Second)
			label := s.Group
			if label == "" {
				label = "no group"
			}
			fmt.Printf("Tracking %s since %s (%s)\n",
				label, formatter.LocalClock(s.StartTime), stats.FormatHMS(elapsed))
			return nil
		},
	}
}
