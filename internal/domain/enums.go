package domain

type TrackingState string

const (
	// TrackingPending marks a session the tracker has started locally but
	// whose insert has not been confirmed by the store yet. A failed insert
	// rolls the tracker back to idle instead of leaving a phantom session.
	TrackingPending   TrackingState = "pending"
	TrackingConfirmed TrackingState = "confirmed"
)

type TrendMode string

const (
	TrendWeek        TrendMode = "week"
	TrendMonth       TrendMode = "month"
	TrendThreeMonths TrendMode = "3months"
	TrendYear        TrendMode = "year"
	TrendAllTime     TrendMode = "alltime"
)

// ValidTrendModes is the canonical set of accepted trend mode strings.
var ValidTrendModes = map[string]bool{
	"week": true, "month": true, "3months": true,
	"year": true, "alltime": true,
}
