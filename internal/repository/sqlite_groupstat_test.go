package repository

import (
	"context"
	"testing"
	"time"

	"github.com/alexanderramin/trackr/internal/domain"
	"github.com/alexanderramin/trackr/internal/testutil"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func groupStatTestSetup(t *testing.T) (*SQLiteGroupStatRepo, string) {
	t.Helper()
	db := testutil.NewTestDB(t)
	userID := testutil.SeedUser(t, db, "tester@example.com")
	return NewSQLiteGroupStatRepo(db), userID
}

func newStat(userID, group string, count, total int) *domain.GroupStat {
	return &domain.GroupStat{
		ID:            uuid.New().String(),
		UserID:        userID,
		GroupName:     group,
		SessionCount:  count,
		TotalDuration: total,
		LastUpdated:   time.Date(2024, 6, 15, 12, 0, 0, 0, time.UTC),
	}
}

func TestGroupStatRepo_UpsertAndList(t *testing.T) {
	repo, userID := groupStatTestSetup(t)
	ctx := context.Background()

	stats := []*domain.GroupStat{
		newStat(userID, "reading", 2, 3600),
		newStat(userID, "writing", 1, 7200),
	}
	require.NoError(t, repo.UpsertBatch(ctx, stats))

	listed, err := repo.ListByUser(ctx, userID)
	require.NoError(t, err)
	require.Len(t, listed, 2)
	// Ordered by total duration descending.
	assert.Equal(t, "writing", listed[0].GroupName)
	assert.Equal(t, 7200, listed[0].TotalDuration)
	assert.Equal(t, "reading", listed[1].GroupName)
	assert.Equal(t, 2, listed[1].SessionCount)
}

func TestGroupStatRepo_UpsertUpdatesExisting(t *testing.T) {
	repo, userID := groupStatTestSetup(t)
	ctx := context.Background()

	first := newStat(userID, "reading", 1, 1800)
	require.NoError(t, repo.UpsertBatch(ctx, []*domain.GroupStat{first}))

	second := newStat(userID, "reading", 3, 5400)
	second.ID = first.ID
	require.NoError(t, repo.UpsertBatch(ctx, []*domain.GroupStat{second}))

	listed, err := repo.ListByUser(ctx, userID)
	require.NoError(t, err)
	require.Len(t, listed, 1)
	assert.Equal(t, 3, listed[0].SessionCount)
	assert.Equal(t, 5400, listed[0].TotalDuration)
}

func TestGroupStatRepo_DeleteBatch(t *testing.T) {
	repo, userID := groupStatTestSetup(t)
	ctx := context.Background()

	stats := []*domain.GroupStat{
		newStat(userID, "reading", 1, 3600),
		newStat(userID, "writing", 1, 1800),
		newStat(userID, "math", 1, 900),
	}
	require.NoError(t, repo.UpsertBatch(ctx, stats))
	require.NoError(t, repo.DeleteBatch(ctx, userID, []string{"reading", "math"}))

	listed, err := repo.ListByUser(ctx, userID)
	require.NoError(t, err)
	require.Len(t, listed, 1)
	assert.Equal(t, "writing", listed[0].GroupName)
}

func TestGroupStatRepo_DeleteBatch_EmptyNoOp(t *testing.T) {
	repo, userID := groupStatTestSetup(t)
	ctx := context.Background()

	require.NoError(t, repo.UpsertBatch(ctx, []*domain.GroupStat{newStat(userID, "reading", 1, 3600)}))
	require.NoError(t, repo.DeleteBatch(ctx, userID, nil))

	listed, err := repo.ListByUser(ctx, userID)
	require.NoError(t, err)
	assert.Len(t, listed, 1)
}

func TestGroupStatRepo_ListScopedToUser(t *testing.T) {
	db := testutil.NewTestDB(t)
	repo := NewSQLiteGroupStatRepo(db)
	ctx := context.Background()

	alice := testutil.SeedUser(t, db, "alice@example.com")
	bob := testutil.SeedUser(t, db, "bob@example.com")
	require.NoError(t, repo.UpsertBatch(ctx, []*domain.GroupStat{newStat(alice, "reading", 1, 3600)}))
	require.NoError(t, repo.UpsertBatch(ctx, []*domain.GroupStat{newStat(bob, "reading", 2, 7200)}))

	listed, err := repo.ListByUser(ctx, alice)
	require.NoError(t, err)
	require.Len(t, listed, 1)
	assert.Equal(t, alice, listed[0].UserID)
	assert.Equal(t, 3600, listed[0].TotalDuration)
}
