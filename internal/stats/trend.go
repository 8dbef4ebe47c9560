package stats

import (
	"math"
	"strconv"
	"time"

	"github.com/alexanderramin/trackr/internal/domain"
)

// TrendPoint is one bucket of a trend chart: a calendar label and the hours
// worked in that bucket, rounded to two decimal places.
type TrendPoint struct {
	Label string
	Hours float64
}

const (
	dayKeyLayout     = "2006-01-02"
	monthKeyLayout   = "2006-01"
	allTimeLabelFmt  = "Jan '06"
	monthShortLayout = "Jan"
)

// TrendSeries produces the ordered, zero-filled bucket sequence for the
// given reporting mode. Buckets with no sessions stay present with zero
// hours; membership follows calendar semantics, not fixed-size windows.
//
//	week:    last 7 days ending today, weekday short names
//	month:   every day of the current calendar month, day numbers
//	3months: the current and two prior calendar months
//	year:    every month of the current calendar year
//	alltime: every month between the earliest and latest session
func TrendSeries(sessions []*domain.TimeSession, mode domain.TrendMode, now time.Time) []TrendPoint {
	loc := now.Location()
	switch mode {
	case domain.TrendWeek:
		days := make([]time.Time, 0, 7)
		for i := 6; i >= 0; i-- {
			days = append(days, now.AddDate(0, 0, -i))
		}
		return dailySeries(sessions, days, loc, func(d time.Time) string {
			return d.Format("Mon")
		})

	case domain.TrendMonth:
		first := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, now.Location())
		n := daysInMonth(now)
		days := make([]time.Time, 0, n)
		for i := 0; i < n; i++ {
			days = append(days, first.AddDate(0, 0, i))
		}
		return dailySeries(sessions, days, loc, func(d time.Time) string {
			return strconv.Itoa(d.Day())
		})

	case domain.TrendThreeMonths:
		months := make([]time.Time, 0, 3)
		for i := 2; i >= 0; i-- {
			months = append(months, monthStart(now).AddDate(0, -i, 0))
		}
		return monthlySeries(sessions, months, loc, func(m time.Time) string {
			return m.Format(monthShortLayout)
		})

	case domain.TrendYear:
		months := make([]time.Time, 0, 12)
		for m := time.January; m <= time.December; m++ {
			months = append(months, time.Date(now.Year(), m, 1, 0, 0, 0, 0, now.Location()))
		}
		return monthlySeries(sessions, months, loc, func(m time.Time) string {
			return m.Format(monthShortLayout)
		})

	case domain.TrendAllTime:
		if len(sessions) == 0 {
			return nil
		}
		earliest, latest := sessions[0].StartTime, sessions[0].StartTime
		for _, s := range sessions[1:] {
			if s.StartTime.Before(earliest) {
				earliest = s.StartTime
			}
			if s.StartTime.After(latest) {
				latest = s.StartTime
			}
		}
		var months []time.Time
		first := monthStart(earliest.In(loc))
		last := monthStart(latest.In(loc))
		for m := first; !m.After(last); m = m.AddDate(0, 1, 0) {
			months = append(months, m)
		}
		return monthlySeries(sessions, months, loc, func(m time.Time) string {
			return m.Format(allTimeLabelFmt)
		})
	}

	return nil
}

// dailySeries buckets sessions by the calendar day their start falls on
// in loc. Stored times are UTC; keying them in their own zone would push
// sessions near local midnight into the neighboring day.
func dailySeries(sessions []*domain.TimeSession, days []time.Time, loc *time.Location, label func(time.Time) string) []TrendPoint {
	totals := make(map[string]int)
	for _, s := range sessions {
		if s.Duration == nil {
			continue
		}
		totals[s.StartTime.In(loc).Format(dayKeyLayout)] += *s.Duration
	}

	points := make([]TrendPoint, 0, len(days))
	for _, d := range days {
		points = append(points, TrendPoint{
			Label: label(d),
			Hours: roundHours(totals[d.Format(dayKeyLayout)]),
		})
	}
	return points
}

func monthlySeries(sessions []*domain.TimeSession, months []time.Time, loc *time.Location, label func(time.Time) string) []TrendPoint {
	totals := make(map[string]int)
	for _, s := range sessions {
		if s.Duration == nil {
			continue
		}
		totals[s.StartTime.In(loc).Format(monthKeyLayout)] += *s.Duration
	}

	points := make([]TrendPoint, 0, len(months))
	for _, m := range months {
		points = append(points, TrendPoint{
			Label: label(m),
			Hours: roundHours(totals[m.Format(monthKeyLayout)]),
		})
	}
	return points
}

func monthStart(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), 1, 0, 0, 0, 0, t.Location())
}

func daysInMonth(t time.Time) int {
	return time.Date(t.Year(), t.Month()+1, 0, 0, 0, 0, 0, t.Location()).Day()
}

// roundHours converts summed seconds to hours with two decimal places.
func roundHours(seconds int) float64 {
	return math.Round(float64(seconds)/3600*100) / 100
}
