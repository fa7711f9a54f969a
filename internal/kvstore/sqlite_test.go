package kvstore

import (
	"context"
	"database/sql"
	"errors"
	"testing"

	"github.com/pressly/goose/v3"
	"github.com/stretchr/testify/require"
)

func setupSQLite(t *testing.T) *SQLiteStore {
	t.Helper()
	ctx := context.Background()
	s, err := Open(ctx, "file:"+t.Name()+"?mode=memory&cache=shared")
	require.NoError(t, err)
	t.Cleanup(func() { _ = s.Close() })
	return s
}

func TestSQLiteStore_GetMissingKey(t *testing.T) {
	s := setupSQLite(t)
	ctx := context.Background()

	_, err := s.Get(ctx, "missing")
	require.ErrorIs(t, err, ErrNotFound)
}

func TestSQLiteStore_SetGetRoundTrip(t *testing.T) {
	s := setupSQLite(t)
	ctx := context.Background()

	require.NoError(t, s.Set(ctx, "k", "v1"))

	got, err := s.Get(ctx, "k")
	require.NoError(t, err)
	require.Equal(t, "v1", got)

	// upsert overwrites
	require.NoError(t, s.Set(ctx, "k", "v2"))
	got, err = s.Get(ctx, "k")
	require.NoError(t, err)
	require.Equal(t, "v2", got)
}

func TestSQLiteStore_RemoveIsIdempotent(t *testing.T) {
	s := setupSQLite(t)
	ctx := context.Background()

	require.NoError(t, s.Set(ctx, "k", "v"))
	require.NoError(t, s.Remove(ctx, "k"))

	_, err := s.Get(ctx, "k")
	require.ErrorIs(t, err, ErrNotFound)

	// removing an absent key must still succeed
	require.NoError(t, s.Remove(ctx, "k"))
}

func TestOpen_MigrationFailure(t *testing.T) {
	orig := gooseUpContext
	t.Cleanup(func() { gooseUpContext = orig })

	wantErr := errors.New("boom")
	gooseUpContext = func(ctx context.Context, db *sql.DB, dir string, opts ...goose.OptionsFunc) error {
		return wantErr
	}

	_, err := Open(context.Background(), "file:migfail?mode=memory&cache=shared")
	require.ErrorIs(t, err, wantErr)
}

func TestSQLiteStore_KeysAreIndependent(t *testing.T) {
	s := setupSQLite(t)
	ctx := context.Background()

	require.NoError(t, s.Set(ctx, "session:user", `{"id":"1"}`))
	require.NoError(t, s.Set(ctx, "prefs:mode", "dark"))

	require.NoError(t, s.Remove(ctx, "session:user"))

	got, err := s.Get(ctx, "prefs:mode")
	require.NoError(t, err)
	require.Equal(t, "dark", got)

	_, err = s.Get(ctx, "session:user")
	require.True(t, errors.Is(err, ErrNotFound))
}
