package cli

import (
	"context"
	"fmt"

	"github.com/alexanderramin/trackr/internal/cli/formatter"
	"github.com/spf13/cobra"
)

func newUserCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "user",
		Short: "Manage accounts",
	}

	cmd.AddCommand(
		newUserAddCmd(app),
		newUserUseCmd(app),
		newUserListCmd(app),
		newUserCurrentCmd(app),
	)

	return cmd
}

func newUserAddCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "add <email>",
		Short: "Create an account and select it",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			user, err := app.Users.SignUp(context.Background(), args[0])
			if err != nil {
				return err
			}
			fmt.Printf("Created account %s (%s)\n", user.Email, formatter.TruncID(user.ID))
			return nil
		},
	}
}

func newUserUseCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "use <email>",
		Short: "Select an existing account",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			user, err := app.Users.Use(context.Background(), args[0])
			if err != nil {
				return err
			}
			fmt.Printf("Now tracking as %s\n", user.Email)
			return nil
		},
	}
}

func newUserListCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List accounts",
		RunE: func(cmd *cobra.Command, args []string) error {
			users, err := app.Users.List(context.Background())
			if err != nil {
				return err
			}
			if len(users) == 0 {
				fmt.Println("No accounts yet.")
				return nil
			}

			headers := []string{"ID", "EMAIL", "CREATED"}
			rows := make([][]string, 0, len(users))
			for _, u := range users {
				rows = append(rows, []string{
					formatter.TruncID(u.ID),
					u.Email,
					formatter.LocalDate(u.CreatedAt),
				})
			}
			fmt.Print(formatter.RenderTable(headers, rows))
			return nil
		},
	}
}

func newUserCurrentCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "current",
		Short: "Show the selected account",
		RunE: func(cmd *cobra.Command, args []string) error {
			user, err := currentUser(context.Background(), app)
			if err != nil {
				return err
			}
			fmt.Printf("%s (%s)\n", user.Email, formatter.TruncID(user.ID))
			return nil
		},
	}
}
