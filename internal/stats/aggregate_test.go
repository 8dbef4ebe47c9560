package stats

import (
	"testing"
	"time"

	"github.com/alexanderramin/trackr/internal/domain"
	"github.com/stretchr/testify/assert"
)

func completed(start time.Time, seconds int) *domain.TimeSession {
	end := start.Add(time.Duration(seconds) * time.Second)
	return &domain.TimeSession{
		ID:        "s",
		UserID:    "u",
		StartTime: start,
		EndTime:   &end,
		Duration:  &seconds,
	}
}

func open(start time.Time) *domain.TimeSession {
	return &domain.TimeSession{ID: "s", UserID: "u", StartTime: start}
}

func TestTotalSeconds(t *testing.T) {
	now := time.Date(2024, 6, 10, 12, 0, 0, 0, time.UTC)

	assert.Equal(t, 0, TotalSeconds(nil))

	sessions := []*domain.TimeSession{
		completed(now.Add(-2*time.Hour), 3600),
		completed(now.Add(-4*time.Hour), 1800),
		open(now.Add(-10 * time.Minute)),
	}
	// Open sessions carry no duration and are excluded.
	assert.Equal(t, 5400, TotalSeconds(sessions))
}

func TestBreakdownSeconds(t *testing.T) {
	b := BreakdownSeconds(2*86400 + 3*3600 + 4*60 + 5)
	assert.Equal(t, Breakdown{Days: 2, Hours: 3, Minutes: 4, Seconds: 5}, b)
	assert.Equal(t, "02:03:04:05", b.String())

	assert.Equal(t, "00:00:00:00", BreakdownSeconds(0).String())
}

func TestFormatHMS(t *testing.T) {
	assert.Equal(t, "00:00:00", FormatHMS(0))
	assert.Equal(t, "01:30:05", FormatHMS(5405))
	assert.Equal(t, "27:00:00", FormatHMS(27*3600))
}

func TestPeriodTotalsAt(t *testing.T) {
	now := time.Date(2024, 6, 15, 12, 0, 0, 0, time.UTC)

	sessions := []*domain.TimeSession{
		completed(now.Add(-24*time.Hour), 100),          // inside week
		completed(now.AddDate(0, 0, -20), 200),          // inside month only
		completed(now.AddDate(0, -6, 0), 400),           // inside year only
		completed(now.AddDate(-2, 0, 0), 800),           // outside all windows
		completed(now.AddDate(0, 0, -7), 50),            // exactly on the week boundary, inclusive
		open(now.Add(-time.Hour)),                       // active, excluded
		completed(now.Add(2*time.Hour), 1000),           // future start, excluded
	}

	totals := PeriodTotalsAt(sessions, now)
	assert.Equal(t, 150, totals.Week)
	assert.Equal(t, 350, totals.Month)
	assert.Equal(t, 750, totals.Year)
}

func TestPeriodTotals_Monotone(t *testing.T) {
	now := time.Date(2024, 6, 15, 12, 0, 0, 0, time.UTC)
	sessions := []*domain.TimeSession{
		completed(now.Add(-time.Hour), 10),
		completed(now.AddDate(0, 0, -3), 20),
		completed(now.AddDate(0, 0, -15), 30),
		completed(now.AddDate(0, -4, 0), 40),
		completed(now.AddDate(0, -11, 0), 50),
	}

	totals := PeriodTotalsAt(sessions, now)
	assert.LessOrEqual(t, totals.Week, totals.Month)
	assert.LessOrEqual(t, totals.Month, totals.Year)
}

func TestPeriodTotals_Empty(t *testing.T) {
	totals := PeriodTotalsAt(nil, time.Now())
	assert.Equal(t, PeriodTotals{}, totals)
}
