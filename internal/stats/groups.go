package stats

import (
	"sort"

	"github.com/alexanderramin/trackr/internal/domain"
)

// NoGroupLabel is the display bucket for sessions without a group.
const NoGroupLabel = "No group"

// HSL is a hue/saturation/lightness triple. Hue is in degrees, saturation
// and lightness are percentages.
type HSL struct {
	Hue        int
	Saturation int
	Lightness  int
}

// GroupSlice is one bucket of the per-group chart.
type GroupSlice struct {
	Label   string
	Seconds int
	Color   HSL
}

// GroupColor derives a stable color from a group label so the same group
// renders the same hue across reloads. Polynomial rolling hash over the
// character codes; saturation lands in [65,100), lightness in [45,65).
func GroupColor(label string) HSL {
	var h int32
	for _, c := range label {
		h = h*31 + c
	}
	abs := int(h)
	if abs < 0 {
		abs = -abs
	}
	return HSL{
		Hue:        abs % 360,
		Saturation: 65 + abs%35,
		Lightness:  45 + abs%20,
	}
}

// GroupBreakdown buckets completed sessions by normalized group, sums their
// durations, and sorts descending by total. Ungrouped sessions land in the
// NoGroupLabel bucket. Ties sort by label for a stable order.
func GroupBreakdown(sessions []*domain.TimeSession) []GroupSlice {
	totals := make(map[string]int)
	for _, s := range sessions {
		if s.Duration == nil {
			continue
		}
		label := domain.NormalizeGroup(s.Group)
		if label == "" {
			label = NoGroupLabel
		}
		totals[label] += *s.Duration
	}

	slices := make([]GroupSlice, 0, len(totals))
	for label, seconds := range totals {
		slices = append(slices, GroupSlice{
			Label:   label,
			Seconds: seconds,
			Color:   GroupColor(label),
		})
	}
	sort.Slice(slices, func(i, j int) bool {
		if slices[i].Seconds != slices[j].Seconds {
			return slices[i].Seconds > slices[j].Seconds
		}
		return slices[i].Label < slices[j].Label
	})
	return slices
}
