package user_test

import (
	"context"
	"database/sql"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/km-arc/go-beans/framework/database"
	"github.com/km-arc/go-beans/internal/user"
)

func openDB(t *testing.T) *sql.DB {
	t.Helper()
	db, err := database.Open(context.Background(), database.DriverName, database.MemoryDSN("users-"+uuid.NewString()))
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })
	return db
}

func newRepo(t *testing.T) *user.SQLRepository {
	t.Helper()
	repo := user.NewRepository(openDB(t))
	require.NoError(t, repo.EnsureSchema(context.Background()))
	return repo
}

func TestRepository_EnsureSchemaIsIdempotent(t *testing.T) {
	repo := newRepo(t)
	require.NoError(t, repo.EnsureSchema(context.Background()))
}

func TestRepository_SaveReturnsLogin(t *testing.T) {
	ctx := context.Background()
	repo := newRepo(t)

	login, err := repo.Save(ctx, user.User{Login: "jlong", Firstname: "Josh", Lastname: "Long"})
	require.NoError(t, err)
	assert.Equal(t, "jlong", login)

	n, err := repo.Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, n)
}

func TestRepository_SaveDuplicateLoginFails(t *testing.T) {
	ctx := context.Background()
	repo := newRepo(t)

	_, err := repo.Save(ctx, user.User{Login: "jlong"})
	require.NoError(t, err)
	_, err = repo.Save(ctx, user.User{Login: "jlong"})
	assert.Error(t, err)
}

func TestRepository_FindAll(t *testing.T) {
	ctx := context.Background()
	repo := newRepo(t)

	all, err := repo.FindAll(ctx)
	require.NoError(t, err)
	assert.NotNil(t, all)
	assert.Empty(t, all)

	for _, u := range user.Fixtures {
		_, err := repo.Save(ctx, u)
		require.NoError(t, err)
	}
	all, err = repo.FindAll(ctx)
	require.NoError(t, err)
	assert.ElementsMatch(t, user.Fixtures, all)
}

func TestRepository_FindOne(t *testing.T) {
	ctx := context.Background()
	repo := newRepo(t)
	_, err := repo.Save(ctx, user.User{Login: "bclozel", Firstname: "Brian", Lastname: "Clozel"})
	require.NoError(t, err)

	u, err := repo.FindOne(ctx, "bclozel")
	require.NoError(t, err)
	assert.Equal(t, "Brian", u.Firstname)

	_, err = repo.FindOne(ctx, "nobody")
	assert.ErrorIs(t, err, user.ErrNotFound)
}

func TestRepository_DeleteAll(t *testing.T) {
	ctx := context.Background()
	repo := newRepo(t)
	_, err := repo.Save(ctx, user.User{Login: "a"})
	require.NoError(t, err)

	require.NoError(t, repo.DeleteAll(ctx))

	n, err := repo.Count(ctx)
	require.NoError(t, err)
	assert.Zero(t, n)
}

func TestRepository_WithoutSchemaFails(t *testing.T) {
	repo := user.NewRepository(openDB(t))
	_, err := repo.FindAll(context.Background())
	assert.Error(t, err)
}
