package repository

import (
	"context"
	"testing"
	"time"

	"github.com/alexanderramin/trackr/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sessionTestSetup(t *testing.T) (*SQLiteSessionRepo, string) {
	t.Helper()
	db := testutil.NewTestDB(t)
	userID := testutil.SeedUser(t, db, "tester@example.com")
	return NewSQLiteSessionRepo(db), userID
}

func TestSessionRepo_CreateAndGetByID(t *testing.T) {
	repo, userID := sessionTestSetup(t)
	ctx := context.Background()

	sess := testutil.NewTestSession(userID, testutil.WithGroup("reading"))
	require.NoError(t, repo.Create(ctx, sess))

	fetched, err := repo.GetByID(ctx, sess.ID)
	require.NoError(t, err)
	assert.Equal(t, sess.ID, fetched.ID)
	assert.Equal(t, userID, fetched.UserID)
	assert.Equal(t, "reading", fetched.Group)
	assert.True(t, sess.StartTime.Equal(fetched.StartTime))
	require.NotNil(t, fetched.EndTime)
	assert.True(t, sess.EndTime.Equal(*fetched.EndTime))
	require.NotNil(t, fetched.Duration)
	assert.Equal(t, 3600, *fetched.Duration)
}

func TestSessionRepo_OpenSessionRoundTrip(t *testing.T) {
	repo, userID := sessionTestSetup(t)
	ctx := context.Background()

	sess := testutil.NewTestSession(userID, testutil.Open())
	require.NoError(t, repo.Create(ctx, sess))

	fetched, err := repo.GetByID(ctx, sess.ID)
	require.NoError(t, err)
	assert.Nil(t, fetched.EndTime)
	assert.Nil(t, fetched.Duration)
	assert.True(t, fetched.Active())
}

func TestSessionRepo_GetByID_NotFound(t *testing.T) {
	repo, _ := sessionTestSetup(t)
	ctx := context.Background()

	_, err := repo.GetByID(ctx, "nonexistent")
	assert.Error(t, err)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestSessionRepo_ListByUser_NewestFirst(t *testing.T) {
	repo, userID := sessionTestSetup(t)
	ctx := context.Background()

	base := time.Date(2024, 6, 10, 9, 0, 0, 0, time.UTC)
	older := testutil.NewTestSession(userID, testutil.WithStart(base))
	newer := testutil.NewTestSession(userID, testutil.WithStart(base.Add(3*time.Hour)))
	require.NoError(t, repo.Create(ctx, older))
	require.NoError(t, repo.Create(ctx, newer))

	list, err := repo.ListByUser(ctx, userID)
	require.NoError(t, err)
	require.Len(t, list, 2)
	assert.Equal(t, newer.ID, list[0].ID)
	assert.Equal(t, older.ID, list[1].ID)
}

func TestSessionRepo_ListByUser_ScopedToOwner(t *testing.T) {
	db := testutil.NewTestDB(t)
	repo := NewSQLiteSessionRepo(db)
	ctx := context.Background()

	alice := testutil.SeedUser(t, db, "alice@example.com")
	bob := testutil.SeedUser(t, db, "bob@example.com")
	testutil.SeedSession(t, db, alice)
	testutil.SeedSession(t, db, bob)

	list, err := repo.ListByUser(ctx, alice)
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.Equal(t, alice, list[0].UserID)
}

func TestSessionRepo_FindOpenByUser(t *testing.T) {
	repo, userID := sessionTestSetup(t)
	ctx := context.Background()

	_, err := repo.FindOpenByUser(ctx, userID)
	assert.ErrorIs(t, err, ErrNotFound)

	completed := testutil.NewTestSession(userID)
	open := testutil.NewTestSession(userID, testutil.Open())
	require.NoError(t, repo.Create(ctx, completed))
	require.NoError(t, repo.Create(ctx, open))

	found, err := repo.FindOpenByUser(ctx, userID)
	require.NoError(t, err)
	assert.Equal(t, open.ID, found.ID)
}

func TestSessionRepo_Update(t *testing.T) {
	repo, userID := sessionTestSetup(t)
	ctx := context.Background()

	sess := testutil.NewTestSession(userID)
	require.NoError(t, repo.Create(ctx, sess))

	sess.Group = "writing"
	sess.StartTime = sess.StartTime.Add(-30 * time.Minute)
	sess.RecomputeDuration()
	require.NoError(t, repo.Update(ctx, sess))

	fetched, err := repo.GetByID(ctx, sess.ID)
	require.NoError(t, err)
	assert.Equal(t, "writing", fetched.Group)
	require.NotNil(t, fetched.Duration)
	assert.Equal(t, 5400, *fetched.Duration)
}

func TestSessionRepo_Update_NotFound(t *testing.T) {
	repo, userID := sessionTestSetup(t)
	ctx := context.Background()

	sess := testutil.NewTestSession(userID)
	err := repo.Update(ctx, sess)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestSessionRepo_Delete(t *testing.T) {
	repo, userID := sessionTestSetup(t)
	ctx := context.Background()

	sess := testutil.NewTestSession(userID)
	require.NoError(t, repo.Create(ctx, sess))
	require.NoError(t, repo.Delete(ctx, sess.ID))

	_, err := repo.GetByID(ctx, sess.ID)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestSessionRepo_Delete_NonexistentErrs(t *testing.T) {
	repo, _ := sessionTestSetup(t)
	ctx := context.Background()

	err := repo.Delete(ctx, "no-such-session")
	assert.Error(t, err)
	assert.ErrorIs(t, err, ErrNotFound)
}
