package repository

import (
	"context"

	"github.com/alexanderramin/trackr/internal/domain"
)

type SessionRepo interface {
	Create(ctx context.Context, s *domain.TimeSession) error
	GetByID(ctx context.Context, id string) (*domain.TimeSession, error)
	// ListByUser returns all of a user's sessions ordered newest-first
	// by start_time.
	ListByUser(ctx context.Context, userID string) ([]*domain.TimeSession, error)
	// FindOpenByUser returns the user's open session, or ErrNotFound.
	FindOpenByUser(ctx context.Context, userID string) (*domain.TimeSession, error)
	Update(ctx context.Context, s *domain.TimeSession) error
	// Delete removes a session by id; a nonexistent id is ErrNotFound,
	// never a silent success.
	Delete(ctx context.Context, id string) error
}

type GroupStatRepo interface {
	ListByUser(ctx context.Context, userID string) ([]*domain.GroupStat, error)
	// UpsertBatch inserts or replaces stats keyed by (user_id, group_name).
	UpsertBatch(ctx context.Context, stats []*domain.GroupStat) error
	// DeleteBatch removes the named groups for a user.
	DeleteBatch(ctx context.Context, userID string, groupNames []string) error
}

type UserRepo interface {
	Create(ctx context.Context, u *domain.User) error
	GetByID(ctx context.Context, id string) (*domain.User, error)
	GetByEmail(ctx context.Context, email string) (*domain.User, error)
	List(ctx context.Context) ([]*domain.User, error)
}

// StateRepo persists small app-level key/value state such as the
// currently selected user.
type StateRepo interface {
	CurrentUserID(ctx context.Context) (string, error)
	SetCurrentUserID(ctx context.Context, userID string) error
}
