package service

import (
	"context"
	"sync"
	"time"

	"github.com/alexanderramin/trackr/internal/db"
	"github.com/alexanderramin/trackr/internal/domain"
	"github.com/alexanderramin/trackr/internal/repository"
	"github.com/charmbracelet/log"
	"github.com/google/uuid"
)

type groupStatService struct {
	groupStats repository.GroupStatRepo
	uow        db.UnitOfWork
	logger     *log.Logger

	// Interleaved recomputes for the same user can lose updates, so they
	// are serialized per user.
	mu    sync.Mutex
	locks map[string]*sync.Mutex
}

func NewGroupStatService(groupStats repository.GroupStatRepo, uow db.UnitOfWork, logger *log.Logger) GroupStatService {
	return &groupStatService{
		groupStats: groupStats,
		uow:        uow,
		logger:     logger,
		locks:      make(map[string]*sync.Mutex),
	}
}

func (g *groupStatService) userLock(userID string) *sync.Mutex {
	g.mu.Lock()
	defer g.mu.Unlock()
	l, ok := g.locks[userID]
	if !ok {
		l = &sync.Mutex{}
		g.locks[userID] = l
	}
	return l
}

type groupAggregate struct {
	count int
	total int
}

// Recompute is a full recompute-and-diff, not an incremental update:
// scan all completed, duration-positive sessions, derive per-group
// aggregates, and write only the rows that changed or disappeared.
// Running it twice with no intervening session changes writes nothing
// the second time.
func (g *groupStatService) Recompute(ctx context.Context, userID string) (RecomputeResult, error) {
	lock := g.userLock(userID)
	lock.Lock()
	defer lock.Unlock()

	var result RecomputeResult
	err := g.uow.WithinTx(ctx, func(ctx context.Context, tx db.DBTX) error {
		txSessions := repository.NewSQLiteSessionRepo(tx)
		txStats := repository.NewSQLiteGroupStatRepo(tx)

		sessions, err := txSessions.ListByUser(ctx, userID)
		if err != nil {
			return err
		}

		desired := make(map[string]groupAggregate)
		for _, s := range sessions {
			if s.Duration == nil || *s.Duration == 0 {
				continue
			}
			name := domain.NormalizeGroup(s.Group)
			if name == "" {
				continue
			}
			agg := desired[name]
			agg.count++
			agg.total += *s.Duration
			desired[name] = agg
		}

		stored, err := txStats.ListByUser(ctx, userID)
		if err != nil {
			return err
		}
		existing := make(map[string]*domain.GroupStat, len(stored))
		for _, st := range stored {
			existing[st.GroupName] = st
		}

		now := time.Now().UTC()
		var upserts []*domain.GroupStat
		for name, agg := range desired {
			prev, ok := existing[name]
			if ok && prev.SessionCount == agg.count && prev.TotalDuration == agg.total {
				continue
			}
			id := uuid.New().String()
			if ok {
				id = prev.ID
			}
			upserts = append(upserts, &domain.GroupStat{
				ID:            id,
				UserID:        userID,
				GroupName:     name,
				SessionCount:  agg.count,
				TotalDuration: agg.total,
				LastUpdated:   now,
			})
		}

		var removed []string
		for name := range existing {
			if _, ok := desired[name]; !ok {
				removed = append(removed, name)
			}
		}

		if err := txStats.UpsertBatch(ctx, upserts); err != nil {
			return err
		}
		if err := txStats.DeleteBatch(ctx, userID, removed); err != nil {
			return err
		}

		result = RecomputeResult{Upserted: len(upserts), Deleted: len(removed)}
		return nil
	})
	if err != nil {
		g.logger.Error("recomputing group stats failed", "user", userID, "err", err)
		return RecomputeResult{}, err
	}
	return result, nil
}

func (g *groupStatService) List(ctx context.Context, userID string) ([]*domain.GroupStat, error) {
	return g.groupStats.ListByUser(ctx, userID)
}
