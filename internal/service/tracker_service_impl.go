package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/alexanderramin/trackr/internal/domain"
	"github.com/alexanderramin/trackr/internal/repository"
	"github.com/charmbracelet/log"
	"github.com/google/uuid"
)

type trackerService struct {
	sessions   repository.SessionRepo
	groupStats GroupStatService
	logger     *log.Logger
}

func NewTrackerService(sessions repository.SessionRepo, groupStats GroupStatService, logger *log.Logger) TrackerService {
	return &trackerService{sessions: sessions, groupStats: groupStats, logger: logger}
}

func (t *trackerService) Start(ctx context.Context, userID, group string) (*domain.TimeSession, error) {
	_, err := t.sessions.FindOpenByUser(ctx, userID)
	if err == nil {
		return nil, ErrSessionActive
	}
	if !errors.Is(err, repository.ErrNotFound) {
		return nil, fmt.Errorf("checking for open session: %w", err)
	}

	s := &domain.TimeSession{
		ID:        uuid.New().String(),
		UserID:    userID,
		StartTime: time.Now().UTC(),
		Group:     domain.NormalizeGroup(group),
	}
	if err := t.sessions.Create(ctx, s); err != nil {
		// The session never reached the store, so nothing to roll back
		// beyond reporting failure; the caller must not treat tracking
		// as started.
		t.logger.Error("starting session failed", "user", userID, "err", err)
		return nil, fmt.Errorf("starting session: %w", err)
	}
	return s, nil
}

func (t *trackerService) Stop(ctx context.Context, userID string) (*domain.TimeSession, error) {
	s, err := t.sessions.FindOpenByUser(ctx, userID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrNoActiveSession
		}
		return nil, fmt.Errorf("finding open session: %w", err)
	}

	s.Stop(time.Now().UTC())
	if err := t.sessions.Update(ctx, s); err != nil {
		t.logger.Error("stopping session failed", "session", s.ID, "err", err)
		return nil, fmt.Errorf("stopping session: %w", err)
	}

	if _, err := t.groupStats.Recompute(ctx, userID); err != nil {
		// The session itself was saved; stale stats refresh on the next
		// recompute.
		t.logger.Warn("group stat refresh failed", "user", userID, "err", err)
	}
	return s, nil
}

func (t *trackerService) Active(ctx context.Context, userID string) (*domain.TimeSession, error) {
	s, err := t.sessions.FindOpenByUser(ctx, userID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrNoActiveSession
		}
		return nil, fmt.Errorf("finding open session: %w", err)
	}
	return s, nil
}
