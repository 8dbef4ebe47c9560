package domain

import "time"

// GroupStat is the materialized aggregate for one (user, group) pair.
// Rows are recomputed by a full scan of the user's completed sessions and
// diffed against what is stored, not updated incrementally.
type GroupStat struct {
	ID            string
	UserID        string
	GroupName     string
	SessionCount  int
	TotalDuration int
	LastUpdated   time.Time
}
