package cli

import (
	"context"
	"fmt"
	"time"

	"github.com/alexanderramin/trackr/internal/stats"
	"github.com/charmbracelet/huh"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
)

const editTimeLayout = "2006-01-02 15:04:05"

func newEditCmd(app *App) *cobra.Command {
	var startFlag, endFlag, groupFlag string

	cmd := &cobra.Command{
		Use:   "edit <session-id>",
		Short: "Edit a session's times or group",
		Long: "Edit a session's start time, end time, or group. With flags the edit is\n" +
			"applied directly; without flags an interactive form opens. The duration\n" +
			"is re-derived from the edited times.",
		Args: cobra.ExactArgs(1),
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
			session, err := app.Sessions.Get(ctx, id)
			if err != nil {
				return err
			}

			start := session.StartTime.Local().Format(editTimeLayout)
			end := ""
			if session.EndTime != nil {
				end = session.EndTime.Local().Format(editTimeLayout)
			}
			group := session.Group

			if !anyFlagChanged(cmd.Flags()) {
				form := editForm(&start, &end, &group)
				if err := form.Run(); err != nil {
					return err
				}
			} else {
				if startFlag != "" {
					start = startFlag
				}
				if endFlag != "" {
					end = endFlag
				}
				if cmd.Flags().Changed("group") {
					group = groupFlag
				}
			}

			startTime, err := time.ParseInLocation(editTimeLayout, start, time.Local)
			if err != nil {
				return fmt.Errorf("invalid start time %q (want YYYY-MM-DD HH:MM:SS)", start)
			}
			session.StartTime = startTime.UTC()
			session.EndTime = nil
			if end != "" {
				endTime, err := time.ParseInLocation(editTimeLayout, end, time.Local)
				if err != nil {
					return fmt.Errorf("invalid end time %q (want YYYY-MM-DD HH:MM:SS)", end)
				}
				u := endTime.UTC()
				session.EndTime = &u
			}
			session.Group = group

			if err := app.Sessions.Update(ctx, session); err != nil {
				return err
			}

			if session.Duration != nil {
				fmt.Printf("Saved; duration is now %s\n", stats.FormatHMS(*session.Duration))
			} else {
				fmt.Println("Saved; session is open again")
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&startFlag, "start", "", "New start time (YYYY-MM-DD HH:MM:SS, local)")
	cmd.Flags().StringVar(&endFlag, "end", "", "New end time (YYYY-MM-DD HH:MM:SS, local)")
	cmd.Flags().StringVar(&groupFlag, "group", "", "New group label (empty clears it)")

	return cmd
}

func anyFlagChanged(fs *pflag.FlagSet) bool {
	changed := false
	fs.VisitAll(func(f *pflag.Flag) {
		if f.Changed {
			changed = true
		}
	})
	return changed
}

func editForm(start, end, group *string) *huh.Form {
	return huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("Start (YYYY-MM-DD HH:MM:SS)").
				Value(start).
				Validate(validateDateTime),
			huh.NewInput().
				Title("End (blank keeps the session open)").
				Value(end).
				Validate(validateOptionalDateTime),
			huh.NewInput().
				Title("Group").
				Placeholder("optional").
				Value(group),
		),
	).WithShowHelp(false)
}

func validateDateTime(v string) error {
	if _, err := time.ParseInLocation(editTimeLayout, v, time.Local); err != nil {
		return fmt.Errorf("use YYYY-MM-DD HH:MM:SS")
	}
	return nil
}

func validateOptionalDateTime(v string) error {
	if v == "" {
		return nil
	}
	return validateDateTime(v)
}
