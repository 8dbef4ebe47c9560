package service

import (
	"context"
	"errors"
	"io"

	"github.com/alexanderramin/trackr/internal/domain"
)

// ErrSessionActive is returned by Start when the user already has an open
// session. One open session per user is a convention this layer enforces;
// the store does not.
var ErrSessionActive = errors.New("a session is already being tracked")

// ErrNoActiveSession is returned by Stop when nothing is being tracked.
var ErrNoActiveSession = errors.New("no active session")

type TrackerService interface {
	// Start opens a new session for the user, refusing if one is open.
	Start(ctx context.Context, userID, group string) (*domain.TimeSession, error)
	// Stop closes the user's open session, derives its duration, and
	// refreshes the user's group statistics.
	Stop(ctx context.Context, userID string) (*domain.TimeSession, error)
	// Active returns the user's open session, or ErrNoActiveSession.
	Active(ctx context.Context, userID string) (*domain.TimeSession, error)
}

type SessionService interface {
	History(ctx context.Context, userID string) ([]*domain.TimeSession, error)
	Get(ctx context.Context, id string) (*domain.TimeSession, error)
	// Update persists edited fields, re-deriving the duration from the
	// session's times, then refreshes the owner's group statistics.
	Update(ctx context.Context, s *domain.TimeSession) error
	// Delete removes a session and refreshes the owner's group statistics.
	Delete(ctx context.Context, userID, id string) error
}

// RecomputeResult reports what a group-stat recompute actually wrote.
// A recompute with nothing changed performs zero writes.
type RecomputeResult struct {
	Upserted int
	Deleted  int
}

type GroupStatService interface {
	// Recompute scans the user's completed, duration-positive sessions,
	// diffs the aggregates against the stored rows, and applies only the
	// difference. Serialized per user.
	Recompute(ctx context.Context, userID string) (RecomputeResult, error)
	List(ctx context.Context, userID string) ([]*domain.GroupStat, error)
}

type ExportService interface {
	// WriteCSV writes the user's session history as a spreadsheet with
	// columns Date, Start Time, End Time, Duration, Group Name.
	WriteCSV(ctx context.Context, userID string, w io.Writer) error
}

type UserService interface {
	SignUp(ctx context.Context, email string) (*domain.User, error)
	// Use selects an existing account (by email) as the current user.
	Use(ctx context.Context, email string) (*domain.User, error)
	Current(ctx context.Context) (*domain.User, error)
	List(ctx context.Context) ([]*domain.User, error)
}
