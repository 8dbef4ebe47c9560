package formatter

import (
	"fmt"
	"strings"
	"time"
)

// TruncID returns the first 8 characters of an ID, dimmed.
func TruncID(id string) string {
	if len(id) > 8 {
		id = id[:8]
	}
	return StyleDim.Render(id)
}

// Cell renders an optional value, falling back to a dimmed dash.
func Cell(value string) string {
	if value == "" {
		return StyleDim.Render("-")
	}
	return value
}

// LocalDate formats a timestamp as the local calendar date.
func LocalDate(t time.Time) string {
	return t.Local().Format("2006-01-02")
}

// LocalClock formats a timestamp as a local wall-clock time.
func LocalClock(t time.Time) string {
	return t.Local().Format("15:04:05")
}

// Bar renders a horizontal chart bar of the given fraction of width.
// At least one block is drawn for any nonzero fraction.
func Bar(width int, frac float64) string {
	if width <= 0 {
		return ""
	}
	if frac < 0 {
		frac = 0
	}
	if frac > 1 {
		frac = 1
	}
	filled := int(frac * float64(width))
	if filled == 0 && frac > 0 {
		filled = 1
	}
	return strings.Repeat("█", filled)
}

// HoursLabel renders a bucket's hour count for the trend chart.
func HoursLabel(hours float64) string {
	return fmt.Sprintf("%.2fh", hours)
}
