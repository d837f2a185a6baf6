package tokenstore

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func openTestSQLite(t *testing.T) *SQLite {
	t.Helper()
	ctx := context.Background()
	dsn := filepath.Join(t.TempDir(), "state.db")
	s, err := OpenSQLite(ctx, dsn)
	require.NoError(t, err)
	t.Cleanup(func() { require.NoError(t, s.Close()) })
	return s
}

func TestSQLite_GetEmpty(t *testing.T) {
	s := openTestSQLite(t)

	got, err := s.Get(context.Background())
	require.NoError(t, err)
	require.Empty(t, got)
}

func TestSQLite_SetGet(t *testing.T) {
	ctx := context.Background()
	s := openTestSQLite(t)

	require.NoError(t, s.Set(ctx, "tok-1"))

	got, err := s.Get(ctx)
	require.NoError(t, err)
	require.Equal(t, "tok-1", got)
}

func TestSQLite_SetOverwrites(t *testing.T) {
	ctx := context.Background()
	s := openTestSQLite(t)

	require.NoError(t, s.Set(ctx, "old"))
	require.NoError(t, s.Set(ctx, "new"))

	got, err := s.Get(ctx)
	require.NoError(t, err)
	require.Equal(t, "new", got)
}

func TestSQLite_Clear(t *testing.T) {
	ctx := context.Background()
	s := openTestSQLite(t)

	require.NoError(t, s.Set(ctx, "tok"))
	require.NoError(t, s.Clear(ctx))

	got, err := s.Get(ctx)
	require.NoError(t, err)
	require.Empty(t, got)
}

func TestSQLite_SurvivesReopen(t *testing.T) {
	ctx := context.Background()
	dsn := filepath.Join(t.TempDir(), "state.db")

	s, err := OpenSQLite(ctx, dsn)
	require.NoError(t, err)
	require.NoError(t, s.Set(ctx, "tok"))
	require.NoError(t, s.Close())

	s, err = OpenSQLite(ctx, dsn)
	require.NoError(t, err)
	defer s.Close()

	got, err := s.Get(ctx)
	require.NoError(t, err)
	require.Equal(t, "tok", got)
}
