package storage

import (
	"context"
	"database/sql"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func openTestDB(t *testing.T) *sql.DB {
	t.Helper()
	db, err := Open(context.Background(), filepath.Join(t.TempDir(), "test.db"))
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })
	return db
}

func TestTaskRepoLifecycle(t *testing.T) {
	db := openTestDB(t)
	ctx := context.Background()
	repo := NewTaskRepo(db)

	id, err := repo.Insert(ctx, TodoInsert{UserID: "u1", Task: "study sqlite", Difficulty: 20, XP: 20})
	require.NoError(t, err)

	got, err := repo.Get(ctx, id)
	require.NoError(t, err)
	require.NotNil(t, got)
	require.Equal(t, "study sqlite", got.Task)
	require.Equal(t, 20, got.XP)
	require.False(t, got.Completed)

	missing, err := repo.Get(ctx, id+1)
	require.NoError(t, err)
	require.Nil(t, missing)
}

func TestTaskRepoMarkCompletedIsOneWay(t *testing.T) {
	db := openTestDB(t)
	ctx := context.Background()
	repo := NewTaskRepo(db)

	id, err := repo.Insert(ctx, TodoInsert{UserID: "u1", Task: "once", Difficulty: 10, XP: 10})
	require.NoError(t, err)

	require.NoError(t, repo.MarkCompleted(ctx, id, "u1"))

	// Second attempt finds no row with completed = 0.
	err = repo.MarkCompleted(ctx, id, "u1")
	require.ErrorIs(t, err, ErrNotFound)

	// Wrong owner never matches.
	id2, err := repo.Insert(ctx, TodoInsert{UserID: "u1", Task: "guarded", Difficulty: 10, XP: 10})
	require.NoError(t, err)
	err = repo.MarkCompleted(ctx, id2, "u2")
	require.ErrorIs(t, err, ErrNotFound)
}

func TestTaskRepoDelete(t *testing.T) {
	db := openTestDB(t)
	ctx := context.Background()
	repo := NewTaskRepo(db)

	id, err := repo.Insert(ctx, TodoInsert{UserID: "u1", Task: "doomed", Difficulty: 10, XP: 10})
	require.NoError(t, err)

	require.NoError(t, repo.Delete(ctx, id, "u1"))
	require.ErrorIs(t, repo.Delete(ctx, id, "u1"), ErrNotFound)

	todos, err := repo.ListByOwner(ctx, "u1")
	require.NoError(t, err)
	require.Empty(t, todos)
}

func TestTaskRepoListByOwnerScoped(t *testing.T) {
	db := openTestDB(t)
	ctx := context.Background()
	repo := NewTaskRepo(db)

	_, err := repo.Insert(ctx, TodoInsert{UserID: "u1", Task: "mine", Difficulty: 10, XP: 10})
	require.NoError(t, err)
	_, err = repo.Insert(ctx, TodoInsert{UserID: "u2", Task: "theirs", Difficulty: 10, XP: 10})
	require.NoError(t, err)

	todos, err := repo.ListByOwner(ctx, "u1")
	require.NoError(t, err)
	require.Len(t, todos, 1)
	require.Equal(t, "mine", todos[0].Task)
}

func TestProfileRepoRoundTrip(t *testing.T) {
	db := openTestDB(t)
	ctx := context.Background()
	repo := NewProfileRepo(db)

	p := &Profile{ID: "u1", Username: "BraveFox", Exp: 40, Level: 2}
	require.NoError(t, repo.Insert(ctx, p))

	got, err := repo.Get(ctx, "u1")
	require.NoError(t, err)
	require.Equal(t, p, got)

	byName, err := repo.GetByUsername(ctx, "BraveFox")
	require.NoError(t, err)
	require.Equal(t, "u1", byName.ID)

	none, err := repo.GetByUsername(ctx, "CalmOtter")
	require.NoError(t, err)
	require.Nil(t, none)

	p.Exp = 70
	require.NoError(t, repo.Update(ctx, p))
	got, err = repo.Get(ctx, "u1")
	require.NoError(t, err)
	require.Equal(t, 70, got.Exp)

	require.ErrorIs(t, repo.Update(ctx, &Profile{ID: "ghost", Level: 1}), ErrNotFound)
}

func TestProfileRepoTop(t *testing.T) {
	db := openTestDB(t)
	ctx := context.Background()
	repo := NewProfileRepo(db)

	for _, p := range []Profile{
		{ID: "a", Username: "A", Exp: 50, Level: 2},
		{ID: "b", Username: "B", Exp: 10, Level: 3},
		{ID: "c", Username: "C", Exp: 80, Level: 2},
		{ID: "d", Username: "D", Exp: 80, Level: 2},
	} {
		p := p
		require.NoError(t, repo.Insert(ctx, &p))
	}

	top, err := repo.Top(ctx, 3)
	require.NoError(t, err)
	require.Len(t, top, 3)
	require.Equal(t, "B", top[0].Username)
	// Exp tie between C and D resolved by username, deterministically.
	require.Equal(t, "C", top[1].Username)
	require.Equal(t, "D", top[2].Username)
}

func TestUserRepoRoundTrip(t *testing.T) {
	db := openTestDB(t)
	ctx := context.Background()
	repo := NewUserRepo(db)

	u, err := repo.GetByEmail(ctx, "nobody@example.com")
	require.NoError(t, err)
	require.Nil(t, u)

	in := &User{ID: "u1", Email: "player@example.com", PasswordHash: "x", CreatedAt: time.Now().UTC().Truncate(time.Second)}
	require.NoError(t, repo.Insert(ctx, in))

	got, err := repo.Get(ctx, "u1")
	require.NoError(t, err)
	require.NotNil(t, got)
	require.Equal(t, in.Email, got.Email)

	byEmail, err := repo.GetByEmail(ctx, "player@example.com")
	require.NoError(t, err)
	require.Equal(t, "u1", byEmail.ID)
}
