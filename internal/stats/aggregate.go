// Package stats holds the pure aggregation functions shared by the live
// tracker, the history view, and the statistics dashboards. Everything here
// operates on an in-memory session list that a repository already fetched;
// nothing touches the store.
package stats

import (
	"fmt"
	"time"

	"github.com/alexanderramin/trackr/internal/domain"
)

// TotalSeconds sums the durations of all completed sessions.
// Sessions without a duration (still open) are excluded from every sum
// this package computes.
func TotalSeconds(sessions []*domain.TimeSession) int {
	total := 0
	for _, s := range sessions {
		if s.Duration != nil {
			total += *s.Duration
		}
	}
	return total
}

// Breakdown is a total split into calendar-free units.
type Breakdown struct {
	Days    int
	Hours   int
	Minutes int
	Seconds int
}

// BreakdownSeconds splits a second count into days/hours/minutes/seconds.
func BreakdownSeconds(total int) Breakdown {
	if total < 0 {
		total = 0
	}
	return Breakdown{
		Days:    total / 86400,
		Hours:   total % 86400 / 3600,
		Minutes: total % 3600 / 60,
		Seconds: total % 60,
	}
}

// String renders the breakdown as DD:HH:MM:SS.
func (b Breakdown) String() string {
	return fmt.Sprintf("%02d:%02d:%02d:%02d", b.Days, b.Hours, b.Minutes, b.Seconds)
}

// FormatHMS renders a second count as HH:MM:SS, the format used by the
// history table and the CSV export.
func FormatHMS(seconds int) string {
	if seconds < 0 {
		seconds = 0
	}
	return fmt.Sprintf("%02d:%02d:%02d", seconds/3600, seconds%3600/60, seconds%60)
}

// PeriodTotals are trailing-window duration sums anchored at a fixed now.
type PeriodTotals struct {
	Week  int
	Month int
	Year  int
}

// PeriodTotalsAt computes week/month/year totals for sessions whose start
// time falls within [now-period, now], lower bound inclusive. Three
// independent scans, matching the windows' independent boundary semantics.
func PeriodTotalsAt(sessions []*domain.TimeSession, now time.Time) PeriodTotals {
	return PeriodTotals{
		Week:  windowTotal(sessions, now.AddDate(0, 0, -7), now),
		Month: windowTotal(sessions, now.AddDate(0, -1, 0), now),
		Year:  windowTotal(sessions, now.AddDate(-1, 0, 0), now),
	}
}

func windowTotal(sessions []*domain.TimeSession, from, to time.Time) int {
	total := 0
	for _, s := range sessions {
		if s.Duration == nil {
			continue
		}
		if s.StartTime.Before(from) || s.StartTime.After(to) {
			continue
		}
		total += *s.Duration
	}
	return total
}
