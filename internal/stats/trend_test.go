package stats

import (
	"testing"
	"time"

	"github.com/alexanderramin/trackr/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTrendSeries_Week(t *testing.T) {
	// A Saturday.
	now := time.Date(2024, 6, 15, 12, 0, 0, 0, time.UTC)

	sessions := []*domain.TimeSession{
		completed(now.Add(-2*time.Hour), 3600),              // today
		completed(now.AddDate(0, 0, -2), 1800),              // Thursday
		completed(now.AddDate(0, 0, -8), 7200),              // before the window
		open(now.Add(-time.Minute)),                         // active, excluded
	}

	points := TrendSeries(sessions, domain.TrendWeek, now)
	require.Len(t, points, 7)

	assert.Equal(t, "Sun", points[0].Label)
	assert.Equal(t, "Sat", points[6].Label)
	assert.Equal(t, 1.0, points[6].Hours)
	assert.Equal(t, 0.5, points[4].Hours)
	assert.Equal(t, 0.0, points[0].Hours)
}

func TestTrendSeries_MonthZeroFills(t *testing.T) {
	// June has 30 days.
	now := time.Date(2024, 6, 15, 12, 0, 0, 0, time.UTC)

	sessions := []*domain.TimeSession{
		completed(time.Date(2024, 6, 3, 9, 0, 0, 0, time.UTC), 5400),
		completed(time.Date(2024, 5, 30, 9, 0, 0, 0, time.UTC), 3600), // prior month
	}

	points := TrendSeries(sessions, domain.TrendMonth, now)
	require.Len(t, points, 30)

	assert.Equal(t, "1", points[0].Label)
	assert.Equal(t, "30", points[29].Label)
	assert.Equal(t, 1.5, points[2].Hours)
	for i, p := range points {
		if i != 2 {
			assert.Zero(t, p.Hours, "day %s should be zero-filled", p.Label)
		}
	}
}

func TestTrendSeries_MonthLengthFollowsCalendar(t *testing.T) {
	feb := time.Date(2024, 2, 10, 0, 0, 0, 0, time.UTC) // leap year
	assert.Len(t, TrendSeries(nil, domain.TrendMonth, feb), 29)

	jan := time.Date(2025, 1, 10, 0, 0, 0, 0, time.UTC)
	assert.Len(t, TrendSeries(nil, domain.TrendMonth, jan), 31)
}

func TestTrendSeries_ThreeMonths(t *testing.T) {
	now := time.Date(2024, 6, 15, 12, 0, 0, 0, time.UTC)

	sessions := []*domain.TimeSession{
		completed(time.Date(2024, 4, 2, 9, 0, 0, 0, time.UTC), 3600),
		completed(time.Date(2024, 6, 2, 9, 0, 0, 0, time.UTC), 7200),
		completed(time.Date(2024, 3, 20, 9, 0, 0, 0, time.UTC), 900), // out of window
	}

	points := TrendSeries(sessions, domain.TrendThreeMonths, now)
	require.Len(t, points, 3)
	assert.Equal(t, []string{"Apr", "May", "Jun"}, []string{points[0].Label, points[1].Label, points[2].Label})
	assert.Equal(t, 1.0, points[0].Hours)
	assert.Equal(t, 0.0, points[1].Hours)
	assert.Equal(t, 2.0, points[2].Hours)
}

func TestTrendSeries_Year(t *testing.T) {
	now := time.Date(2024, 6, 15, 12, 0, 0, 0, time.UTC)

	sessions := []*domain.TimeSession{
		completed(time.Date(2024, 1, 2, 9, 0, 0, 0, time.UTC), 3600),
		completed(time.Date(2023, 12, 30, 9, 0, 0, 0, time.UTC), 7200), // prior year
	}

	points := TrendSeries(sessions, domain.TrendYear, now)
	require.Len(t, points, 12)
	assert.Equal(t, "Jan", points[0].Label)
	assert.Equal(t, "Dec", points[11].Label)
	assert.Equal(t, 1.0, points[0].Hours)
	assert.Equal(t, 0.0, points[11].Hours)
}

func TestTrendSeries_AllTime(t *testing.T) {
	now := time.Date(2024, 6, 15, 12, 0, 0, 0, time.UTC)

	sessions := []*domain.TimeSession{
		completed(time.Date(2023, 11, 5, 9, 0, 0, 0, time.UTC), 3600),
		completed(time.Date(2024, 2, 5, 9, 0, 0, 0, time.UTC), 1800),
	}

	points := TrendSeries(sessions, domain.TrendAllTime, now)
	// Nov 2023 through Feb 2024 inclusive, zero-filled in between.
	require.Len(t, points, 4)
	assert.Equal(t, "Nov '23", points[0].Label)
	assert.Equal(t, "Dec '23", points[1].Label)
	assert.Equal(t, "Jan '24", points[2].Label)
	assert.Equal(t, "Feb '24", points[3].Label)
	assert.Equal(t, 1.0, points[0].Hours)
	assert.Equal(t, 0.0, points[1].Hours)
	assert.Equal(t, 0.5, points[3].Hours)
}

func TestTrendSeries_AllTimeEmpty(t *testing.T) {
	assert.Empty(t, TrendSeries(nil, domain.TrendAllTime, time.Now()))
}

func TestTrendSeries_HoursRounding(t *testing.T) {
	now := time.Date(2024, 6, 15, 12, 0, 0, 0, time.UTC)
	sessions := []*domain.TimeSession{
		completed(now.Add(-time.Hour), 1000), // 0.2777... hours
	}

	points := TrendSeries(sessions, domain.TrendWeek, now)
	assert.Equal(t, 0.28, points[6].Hours)
}

func TestTrendSeries_BucketsFollowLocalCalendar(t *testing.T) {
	loc := time.FixedZone("UTC+2", 2*3600)
	// Saturday noon in the viewer's zone.
	now := time.Date(2024, 6, 15, 12, 0, 0, 0, loc)

	sessions := []*domain.TimeSession{
		// Stored as Friday 23:00 UTC, but locally Saturday 01:00.
		completed(time.Date(2024, 6, 14, 23, 0, 0, 0, time.UTC), 3600),
	}

	points := TrendSeries(sessions, domain.TrendWeek, now)
	require.Len(t, points, 7)
	assert.Equal(t, "Fri", points[5].Label)
	assert.Zero(t, points[5].Hours)
	assert.Equal(t, "Sat", points[6].Label)
	assert.Equal(t, 1.0, points[6].Hours)
}

func TestTrendSeries_MonthBoundaryFollowsLocalCalendar(t *testing.T) {
	loc := time.FixedZone("UTC+2", 2*3600)
	now := time.Date(2024, 6, 15, 12, 0, 0, 0, loc)

	sessions := []*domain.TimeSession{
		// Stored as May 31 23:30 UTC; locally June 1 01:30.
		completed(time.Date(2024, 5, 31, 23, 30, 0, 0, time.UTC), 1800),
	}

	points := TrendSeries(sessions, domain.TrendMonth, now)
	require.Len(t, points, 30)
	assert.Equal(t, 0.5, points[0].Hours)

	months := TrendSeries(sessions, domain.TrendThreeMonths, now)
	require.Len(t, months, 3)
	assert.Equal(t, "May", months[1].Label)
	assert.Zero(t, months[1].Hours)
	assert.Equal(t, "Jun", months[2].Label)
	assert.Equal(t, 0.5, months[2].Hours)
}
