package cli

import (
	"context"
	"fmt"

	"github.com/alexanderramin/trackr/internal/cli/formatter"
	"github.com/spf13/cobra"
)

func newDeleteCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "delete <session-id>",
		Short: "Delete a session",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			user, err := currentUser(ctx, app)
			if err != nil {
				return err
			}

			id, err := resolveSessionID(ctx, app, user.ID, args[0])
			if err != nil {
				return err
			}
			if err := app.Sessions.Delete(ctx, user.ID, id); err != nil {
				return err
			}
			fmt.Printf("Deleted session %s\n", formatter.TruncID(id))
			return nil
		},
	}
}
