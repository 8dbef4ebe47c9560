package cli

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/alexanderramin/trackr/internal/calendar"
	"github.com/alexanderramin/trackr/internal/cli/formatter"
	"github.com/alexanderramin/trackr/internal/domain"
	"github.com/alexanderramin/trackr/internal/stats"
	"github.com/spf13/cobra"
)

func newCalendarCmd(app *App) *cobra.Command {
	var weekFlag string

	cmd := &cobra.Command{
		Use:   "calendar",
		Short: "Show the week as a day-by-hour grid",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			user, err := currentUser(ctx, app)
			if err != nil {
				return err
			}

			anchor := time.Now()
			if weekFlag != "" {
				anchor, err = time.ParseInLocation("2006-01-02", weekFlag, time.Local)
				if err != nil {
					return fmt.Errorf("invalid week date %q (want YYYY-MM-DD)", weekFlag)
				}
			}
			weekStart := startOfWeek(anchor)

			sessions, err := app.Sessions.History(ctx, user.ID)
			if err != nil {
				return err
			}

			fmt.Print(renderWeek(sessions, weekStart, time.Now()))
			return nil
		},
	}

	cmd.Flags().StringVarP(&weekFlag, "week", "w", "", "Any date inside the week to show (YYYY-MM-DD)")

	return cmd
}

// startOfWeek returns the Monday midnight preceding (or equal to) t.
func startOfWeek(t time.Time) time.Time {
	t = time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
	offset := (int(t.Weekday()) + 6) % 7
	return t.AddDate(0, 0, -offset)
}

// renderWeek draws a 24-row-by-7-day grid. Each session segment produced by
// the layout calculator is mapped from pixel offsets back to hour rows; the
// segment's group color fills its cells.
func renderWeek(sessions []*domain.TimeSession, weekStart time.Time, now time.Time) string {
	const dayWidth = 9

	var grid [24][7]*string

	for _, s := range sessions {
		group := s.Group
		for _, seg := range calendar.WeekSegments(s, weekStart, now) {
			firstRow := int(seg.Top / calendar.RowHeight)
			lastRow := int((seg.Top + seg.Height - 1) / calendar.RowHeight)
			if lastRow > 23 {
				lastRow = 23
			}
			for row := firstRow; row <= lastRow; row++ {
				grid[row][seg.DayIndex] = &group
			}
		}
	}

	var b strings.Builder

	// Header row: the first column is reserved for hour labels.
	b.WriteString(strings.Repeat(" ", 6))
	for day := 0; day < 7; day++ {
		label := weekStart.AddDate(0, 0, day).Format("Mon 02")
		b.WriteString(formatter.StyleHeader.Render(label))
		b.WriteString(strings.Repeat(" ", dayWidth-len(label)))
	}
	b.WriteString("\n")

	for hour := 0; hour < 24; hour++ {
		b.WriteString(formatter.StyleDim.Render(fmt.Sprintf("%02d:00 ", hour)))
		for day := 0; day < 7; day++ {
			if fill := grid[hour][day]; fill != nil {
				label := *fill
				if label == "" {
					label = stats.NoGroupLabel
				}
				style := formatter.GroupStyle(stats.GroupColor(label))
				b.WriteString(style.Render(strings.Repeat("█", dayWidth-1)))
				b.WriteString(" ")
			} else {
				b.WriteString(formatter.StyleDim.Render(strings.Repeat("·", dayWidth-1)))
				b.WriteString(" ")
			}
		}
		b.WriteString("\n")
	}

	return b.String()
}
