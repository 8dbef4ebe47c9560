package cli

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/alexanderramin/trackr/internal/cli/formatter"
	"github.com/alexanderramin/trackr/internal/domain"
	"github.com/alexanderramin/trackr/internal/stats"
	"github.com/spf13/cobra"
)

const chartWidth = 30

func newStatsCmd(app *App) *cobra.Command {
	var mode string

	cmd := &cobra.Command{
		Use:   "stats",
		Short: "Show totals, group breakdown, and trend charts",
		RunE: func(cmd *cobra.Command, args []string) error {
			if !domain.ValidTrendModes[mode] {
				return fmt.Errorf("invalid mode %q (week, month, 3months, year, alltime)", mode)
			}

			ctx := context.Background()
			user, err := currentUser(ctx, app)
			if err != nil {
				return err
			}

			sessions, err := app.Sessions.History(ctx, user.ID)
			if err != nil {
				return err
			}

			now := time.Now()
			var b strings.Builder

			total := stats.TotalSeconds(sessions)
			b.WriteString(formatter.StyleHeader.Render("TOTAL") + "\n")
			b.WriteString(fmt.Sprintf("%s  (dd:hh:mm:ss)\n\n", stats.BreakdownSeconds(total)))

			periods := stats.PeriodTotalsAt(sessions, now)
			b.WriteString(formatter.StyleHeader.Render("PERIODS") + "\n")
			b.WriteString(fmt.Sprintf("week   %s\n", stats.FormatHMS(periods.Week)))
			b.WriteString(fmt.Sprintf("month  %s\n", stats.FormatHMS(periods.Month)))
			b.WriteString(fmt.Sprintf("year   %s\n\n", stats.FormatHMS(periods.Year)))

			b.WriteString(formatter.StyleHeader.Render("GROUPS") + "\n")
			b.WriteString(renderGroupChart(sessions))

			b.WriteString(formatter.StyleHeader.Render(strings.ToUpper(mode)) + "\n")
			b.WriteString(renderTrendChart(sessions, domain.TrendMode(mode), now))

			fmt.Print(b.String())
			return nil
		},
	}

	cmd.AddCommand(newStatsGroupsCmd(app))
	cmd.Flags().StringVarP(&mode, "mode", "m", "week", "Trend mode: week, month, 3months, year, alltime")

	return cmd
}

func renderGroupChart(sessions []*domain.TimeSession) string {
	slices := stats.GroupBreakdown(sessions)
	if len(slices) == 0 {
		return "No completed sessions.\n\n"
	}

	labelWidth := 0
	for _, s := range slices {
		if len(s.Label) > labelWidth {
			labelWidth = len(s.Label)
		}
	}
	max := slices[0].Seconds

	var b strings.Builder
	for _, s := range slices {
		frac := 0.0
		if max > 0 {
			frac = float64(s.Seconds) / float64(max)
		}
		bar := formatter.GroupStyle(s.Color).Render(formatter.Bar(chartWidth, frac))
		b.WriteString(fmt.Sprintf("%-*s  %s %s\n", labelWidth, s.Label, bar, stats.FormatHMS(s.Seconds)))
	}
	b.WriteString("\n")
	return b.String()
}

func renderTrendChart(sessions []*domain.TimeSession, mode domain.TrendMode, now time.Time) string {
	points := stats.TrendSeries(sessions, mode, now)
	if len(points) == 0 {
		return "No sessions yet.\n"
	}

	labelWidth := 0
	max := 0.0
	for _, p := range points {
		if len(p.Label) > labelWidth {
			labelWidth = len(p.Label)
		}
		if p.Hours > max {
			max = p.Hours
		}
	}

	var b strings.Builder
	for _, p := range points {
		frac := 0.0
		if max > 0 {
			frac = p.Hours / max
		}
		bar := formatter.StyleBlue.Render(formatter.Bar(chartWidth, frac))
		b.WriteString(fmt.Sprintf("%-*s  %s %s\n", labelWidth, p.Label, bar, formatter.HoursLabel(p.Hours)))
	}
	return b.String()
}

func newStatsGroupsCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "groups",
		Short: "Show the materialized per-group statistics",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			user, err := currentUser(ctx, app)
			if err != nil {
				return err
			}

			// Refresh first so the table reflects the latest sessions.
			if _, err := app.GroupStats.Recompute(ctx, user.ID); err != nil {
				return err
			}
			groupStats, err := app.GroupStats.List(ctx, user.ID)
			if err != nil {
				return err
			}
			if len(groupStats) == 0 {
				fmt.Println("No grouped sessions yet.")
				return nil
			}

			headers := []string{"GROUP", "SESSIONS", "TOTAL", "UPDATED"}
			rows := make([][]string, 0, len(groupStats))
			for _, g := range groupStats {
				style := formatter.GroupStyle(stats.GroupColor(g.GroupName))
				rows = append(rows, []string{
					style.Render(g.GroupName),
					fmt.Sprintf("%d", g.SessionCount),
					stats.FormatHMS(g.TotalDuration),
					formatter.LocalDate(g.LastUpdated),
				})
			}
			fmt.Print(formatter.RenderTable(headers, rows))
			return nil
		},
	}
}
