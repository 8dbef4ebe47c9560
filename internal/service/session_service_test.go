package service

import (
	"context"
	"testing"
	"time"

	"github.com/alexanderramin/trackr/internal/repository"
	"github.com/alexanderramin/trackr/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSessions_HistoryNewestFirst(t *testing.T) {
	stack := newServiceStack(t)
	ctx := context.Background()

	base := time.Date(2024, 6, 10, 9, 0, 0, 0, time.UTC)
	older := testutil.SeedSession(t, stack.db, stack.userID, testutil.WithStart(base))
	newer := testutil.SeedSession(t, stack.db, stack.userID, testutil.WithStart(base.Add(3*time.Hour)))

	history, err := stack.sessionSvc.History(ctx, stack.userID)
	require.NoError(t, err)
	require.Len(t, history, 2)
	assert.Equal(t, newer.ID, history[0].ID)
	assert.Equal(t, older.ID, history[1].ID)
}

func TestSessions_UpdateRederivesDuration(t *testing.T) {
	stack := newServiceStack(t)
	ctx := context.Background()

	seeded := testutil.SeedSession(t, stack.db, stack.userID,
		testutil.WithGroup("reading"), testutil.WithDuration(time.Hour))

	edited, err := stack.sessionSvc.Get(ctx, seeded.ID)
	require.NoError(t, err)
	// Push the end an hour later; the stored duration must follow the
	// times, not the stale value.
	later := edited.EndTime.Add(time.Hour)
	edited.EndTime = &later
	require.NoError(t, stack.sessionSvc.Update(ctx, edited))

	fetched, err := stack.sessionSvc.Get(ctx, seeded.ID)
	require.NoError(t, err)
	require.NotNil(t, fetched.Duration)
	assert.Equal(t, 7200, *fetched.Duration)
}

func TestSessions_UpdateNormalizesGroupAndRefreshesStats(t *testing.T) {
	stack := newServiceStack(t)
	ctx := context.Background()

	seeded := testutil.SeedSession(t, stack.db, stack.userID,
		testutil.WithGroup("reading"), testutil.WithDuration(time.Hour))
	_, err := stack.groupStats.Recompute(ctx, stack.userID)
	require.NoError(t, err)

	edited, err := stack.sessionSvc.Get(ctx, seeded.ID)
	require.NoError(t, err)
	edited.Group = "  math  "
	require.NoError(t, stack.sessionSvc.Update(ctx, edited))

	fetched, err := stack.sessionSvc.Get(ctx, seeded.ID)
	require.NoError(t, err)
	assert.Equal(t, "math", fetched.Group)

	listed, err := stack.groupStats.List(ctx, stack.userID)
	require.NoError(t, err)
	require.Len(t, listed, 1)
	assert.Equal(t, "math", listed[0].GroupName)
}

func TestSessions_DeleteRemovesSession(t *testing.T) {
	stack := newServiceStack(t)
	ctx := context.Background()

	seeded := testutil.SeedSession(t, stack.db, stack.userID)
	require.NoError(t, stack.sessionSvc.Delete(ctx, stack.userID, seeded.ID))

	_, err := stack.sessionSvc.Get(ctx, seeded.ID)
	assert.ErrorIs(t, err, repository.ErrNotFound)
}

func TestSessions_DeleteNonexistentErrs(t *testing.T) {
	stack := newServiceStack(t)
	ctx := context.Background()

	err := stack.sessionSvc.Delete(ctx, stack.userID, "no-such-id")
	assert.Error(t, err)
	assert.ErrorIs(t, err, repository.ErrNotFound)
}
