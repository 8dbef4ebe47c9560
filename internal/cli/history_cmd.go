package cli

import (
	"context"
	"fmt"

	"github.com/alexanderramin/trackr/internal/cli/formatter"
	"github.com/alexanderramin/trackr/internal/stats"
	"github.com/spf13/cobra"
)

func newHistoryCmd(app *App) *cobra.Command {
	var limit int

	cmd := &cobra.Command{
		Use:   "history",
		Short: "List tracked sessions, newest first",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			user, err := currentUser(ctx, app)
			if err != nil {
				return err
			}

			sessions, err := app.Sessions.History(ctx, user.ID)
			if err != nil {
				return err
			}
			if len(sessions) == 0 {
				fmt.Println("No sessions recorded yet.")
				return nil
			}
			if limit > 0 && len(sessions) > limit {
				sessions = sessions[:limit]
			}

			headers := []string{"ID", "DATE", "START", "END", "DURATION", "GROUP"}
			rows := make([][]string, 0, len(sessions))
			for _, s := range sessions {
				endCell, durationCell := "", ""
				if s.EndTime != nil {
					endCell = formatter.LocalClock(*s.EndTime)
				}
				if s.Duration != nil {
					durationCell = stats.FormatHMS(*s.Duration)
				}
				rows = append(rows, []string{
					formatter.TruncID(s.ID),
					formatter.LocalDate(s.StartTime),
					formatter.LocalClock(s.StartTime),
					formatter.Cell(endCell),
					formatter.Cell(durationCell),
					formatter.Cell(s.Group),
				})
			}
			fmt.Print(formatter.RenderTable(headers, rows))
			return nil
		},
	}

	cmd.Flags().IntVarP(&limit, "limit", "n", 0, "Show at most this many sessions (0 = all)")

	return cmd
}
