package domain

import (
	"strings"
	"time"
)

// TimeSession is one tracked interval. EndTime is nil while the session is
// still open; Duration is derived seconds and is nil exactly when EndTime is.
type TimeSession struct {
	ID        string
	UserID    string
	StartTime time.Time
	EndTime   *time.Time
	Duration  *int
	Group     string
}

// Active reports whether the session has been started but not stopped.
func (s *TimeSession) Active() bool {
	return s.EndTime == nil
}

// EffectiveEnd returns the session end, or now for an open session.
func (s *TimeSession) EffectiveEnd(now time.Time) time.Time {
	if s.EndTime != nil {
		return *s.EndTime
	}
	return now
}

// Stop closes the session at the given time and derives its duration.
func (s *TimeSession) Stop(end time.Time) {
	e := end
	s.EndTime = &e
	s.RecomputeDuration()
}

// RecomputeDuration re-derives Duration from StartTime and EndTime.
// Must be called whenever either time is edited. A nil EndTime clears
// Duration; a negative interval clamps to zero.
func (s *TimeSession) RecomputeDuration() {
	if s.EndTime == nil {
		s.Duration = nil
		return
	}
	d := int(s.EndTime.Sub(s.StartTime) / time.Second)
	if d < 0 {
		d = 0
	}
	s.Duration = &d
}

// NormalizeGroup trims the label so absent and empty-string groups collapse
// to the same representation.
func NormalizeGroup(group string) string {
	return strings.TrimSpace(group)
}
