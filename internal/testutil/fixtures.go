package testutil

import (
	"database/sql"
	"testing"
	"time"

	"github.com/alexanderramin/trackr/internal/domain"
	"github.com/google/uuid"
)

type sessionSpec struct {
	start    time.Time
	duration time.Duration
	group    string
	open     bool
}

// Session options
type SessionOption func(*sessionSpec)

func WithGroup(group string) SessionOption {
	return func(spec *sessionSpec) {
		spec.group = group
	}
}

func WithStart(t time.Time) SessionOption {
	return func(spec *sessionSpec) {
		spec.start = t
	}
}

func WithDuration(d time.Duration) SessionOption {
	return func(spec *sessionSpec) {
		spec.duration = d
	}
}

// Open leaves the session active (no end time, no duration).
func Open() SessionOption {
	return func(spec *sessionSpec) {
		spec.open = true
	}
}

// NewTestSession builds a completed one-hour session starting an hour ago
// unless options say otherwise.
func NewTestSession(userID string, opts ...SessionOption) *domain.TimeSession {
	// Second precision matches what RFC3339 storage round-trips.
	spec := sessionSpec{
		start:    time.Now().UTC().Add(-time.Hour).Truncate(time.Second),
		duration: time.Hour,
	}
	for _, opt := range opts {
		opt(&spec)
	}

	s := &domain.TimeSession{
		ID:        uuid.New().String(),
		UserID:    userID,
		StartTime: spec.start,
		Group:     spec.group,
	}
	if !spec.open {
		end := spec.start.Add(spec.duration)
		s.EndTime = &end
		secs := int(spec.duration / time.Second)
		s.Duration = &secs
	}
	return s
}

// SeedUser inserts a user row and returns its id. Raw SQL keeps this
// package free of a repository import, so repository tests can use it too.
func SeedUser(t *testing.T, database *sql.DB, email string) string {
	t.Helper()
	id := uuid.New().String()
	_, err := database.Exec(
		`INSERT INTO users (id, email, created_at) VALUES (?, ?, ?)`,
		id, email, time.Now().UTC().Format(time.RFC3339),
	)
	if err != nil {
		t.Fatalf("seeding user: %v", err)
	}
	return id
}

// SeedSession inserts a session row built from the given options.
func SeedSession(t *testing.T, database *sql.DB, userID string, opts ...SessionOption) *domain.TimeSession {
	t.Helper()
	s := NewTestSession(userID, opts...)

	var end, duration any
	if s.EndTime != nil {
		end = s.EndTime.Format(time.RFC3339)
	}
	if s.Duration != nil {
		duration = *s.Duration
	}
	_, err := database.Exec(
		`INSERT INTO time_sessions (id, user_id, start_time, end_time, duration, group_name)
		VALUES (?, ?, ?, ?, ?, ?)`,
		s.ID, s.UserID, s.StartTime.Format(time.RFC3339), end, duration, s.Group,
	)
	if err != nil {
		t.Fatalf("seeding session: %v", err)
	}
	return s
}
