// Package calendar maps sessions onto a 7-day-by-24-hour grid. The layout
// math is pure: callers pass the week start and a fixed now, and get back
// positioned segments they can render at any scale.
package calendar

import (
	"time"

	"github.com/alexanderramin/trackr/internal/domain"
)

const (
	// RowHeight is the height of one hour row, in pixels.
	RowHeight = 48.0

	// MinSegmentHeight guarantees a visible sliver for very short sessions.
	// Display-only distortion; clipped Start/End stay exact.
	MinSegmentHeight = 10.0

	// Of the 8 grid columns, the first is reserved for hour labels; days
	// occupy columns 1..7.
	gridColumns = 8
)

// Segment is one rendered piece of a session, clipped to a single calendar
// day of the displayed week.
type Segment struct {
	DayIndex int // 0-based day within the week
	Start    time.Time
	End      time.Time
	Top      float64 // vertical pixel offset of the segment start
	Height   float64 // pixel height, floored at MinSegmentHeight
	LeftPct  float64 // horizontal position as a percentage of grid width
	WidthPct float64
}

// WeekSegments produces zero or more segments for the session within the
// week [weekStart, weekStart+7d). weekStart must be a local midnight. An
// open session ends at now for layout purposes. A session that never
// overlaps the week yields no segments; a session spanning midnight yields
// one independently clipped segment per day it touches, so no segment
// extends outside its own day cell and together they cover the session's
// full interval.
func WeekSegments(s *domain.TimeSession, weekStart time.Time, now time.Time) []Segment {
	start := s.StartTime
	end := s.EffectiveEnd(now)
	if end.Before(start) {
		return nil
	}

	var segments []Segment
	loc := weekStart.Location()
	for day := 0; day < 7; day++ {
		dayStart := weekStart.AddDate(0, 0, day)
		dayEnd := dayStart.Add(24*time.Hour - time.Millisecond)

		if end.Before(dayStart) || start.After(dayEnd) {
			continue
		}

		segStart := start
		if segStart.Before(dayStart) {
			segStart = dayStart
		}
		segEnd := end
		if segEnd.After(dayEnd) {
			segEnd = dayEnd
		}

		// Session times are stored in UTC; offsets must come from the
		// wall clock of the grid's zone.
		top := clockOffset(segStart.In(loc))
		height := clockOffset(segEnd.In(loc)) - top
		if height < MinSegmentHeight {
			height = MinSegmentHeight
		}

		segments = append(segments, Segment{
			DayIndex: day,
			Start:    segStart,
			End:      segEnd,
			Top:      top,
			Height:   height,
			LeftPct:  float64(day+1) / gridColumns * 100,
			WidthPct: 1.0 / gridColumns * 100,
		})
	}
	return segments
}

// clockOffset converts a wall-clock time to a vertical pixel offset.
func clockOffset(t time.Time) float64 {
	return (float64(t.Hour()) + float64(t.Minute())/60) * RowHeight
}
