package service

import (
	"context"
	"fmt"

	"github.com/alexanderramin/trackr/internal/domain"
	"github.com/alexanderramin/trackr/internal/repository"
	"github.com/charmbracelet/log"
)

type sessionService struct {
	sessions   repository.SessionRepo
	groupStats GroupStatService
	logger     *log.Logger
}

func NewSessionService(sessions repository.SessionRepo, groupStats GroupStatService, logger *log.Logger) SessionService {
	return &sessionService{sessions: sessions, groupStats: groupStats, logger: logger}
}

func (s *sessionService) History(ctx context.Context, userID string) ([]*domain.TimeSession, error) {
	return s.sessions.ListByUser(ctx, userID)
}

func (s *sessionService) Get(ctx context.Context, id string) (*domain.TimeSession, error) {
	return s.sessions.GetByID(ctx, id)
}

func (s *sessionService) Update(ctx context.Context, session *domain.TimeSession) error {
	session.Group = domain.NormalizeGroup(session.Group)
	session.RecomputeDuration()

	if err := s.sessions.Update(ctx, session); err != nil {
		s.logger.Error("saving session edit failed", "session", session.ID, "err", err)
		return fmt.Errorf("saving session: %w", err)
	}

	if _, err := s.groupStats.Recompute(ctx, session.UserID); err != nil {
		s.logger.Warn("group stat refresh failed", "user", session.UserID, "err", err)
	}
	return nil
}

func (s *sessionService) Delete(ctx context.Context, userID, id string) error {
	if err := s.sessions.Delete(ctx, id); err != nil {
		s.logger.Error("deleting session failed", "session", id, "err", err)
		return err
	}

	if _, err := s.groupStats.Recompute(ctx, userID); err != nil {
		s.logger.Warn("group stat refresh failed", "user", userID, "err", err)
	}
	return nil
}
