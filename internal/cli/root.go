package cli

import (
	"context"
	"fmt"

	"github.com/alexanderramin/trackr/internal/domain"
	"github.com/alexanderramin/trackr/internal/service"
	"github.com/spf13/cobra"
)

// App holds references to all service interfaces used by CLI commands.
type App struct {
	Tracker    service.TrackerService
	Sessions   service.SessionService
	GroupStats service.GroupStatService
	Export     service.ExportService
	Users      service.UserService

	// IsInteractive reports whether stdin is attached to a terminal.
	IsInteractive func() bool
}

// NewRootCmd creates the top-level "trackr" command and registers all
// subcommands against the provided App.
func NewRootCmd(app *App) *cobra.Command {
	root := &cobra.Command{
		Use:   "trackr",
		Short: "Lightweight personal time tracker",
	}

	root.AddCommand(
		newStartCmd(app),
		newStopCmd(app),
		newStatusCmd(app),
		newTrackCmd(app),
		newHistoryCmd(app),
		newEditCmd(app),
		newDeleteCmd(app),
		newExportCmd(app),
		newStatsCmd(app),
		newCalendarCmd(app),
		newUserCmd(app),
	)

	return root
}

// currentUser resolves the selected account, shared by every command that
// operates on session data.
func currentUser(ctx context.Context, app *App) (*domain.User, error) {
	user, err := app.Users.Current(ctx)
	if err != nil {
		return nil, fmt.Errorf("resolving current user: %w", err)
	}
	return user, nil
}
