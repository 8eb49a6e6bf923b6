package store

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/felixgeelhaar/coffman/internal/report"
	"github.com/felixgeelhaar/coffman/internal/taskgraph"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	s, err := Open(filepath.Join(t.TempDir(), "state", "coffman.db"))
	require.NoError(t, err)
	t.Cleanup(func() { s.Close() })
	return s
}

func run(id, fingerprint string, at time.Time, order ...taskgraph.TaskID) *report.Report {
	return report.FromOrder(id, id+".yaml", "graph-"+id, fingerprint, order, at)
}

func TestSaveAndLookup(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()
	base := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)

	require.NoError(t, s.Save(ctx, run("a", "fp1", base, 1, 3, 2)))
	require.NoError(t, s.Save(ctx, run("b", "fp1", base.Add(time.Minute), 3, 1, 2)))
	require.NoError(t, s.Save(ctx, run("c", "fp2", base, 7)))

	got, err := s.Lookup(ctx, "fp1")
	require.NoError(t, err)
	assert.Equal(t, "b", got.RunID)
	assert.Equal(t, []taskgraph.TaskID{3, 1, 2}, got.Order)
	assert.Equal(t, 3, got.Tasks)
	assert.Equal(t, "graph-b", got.Name)
	assert.True(t, got.Cached)
	assert.True(t, base.Add(time.Minute).Equal(got.CreatedAt))
}

func TestLookup_NotFound(t *testing.T) {
	s := openTestStore(t)

	_, err := s.Lookup(context.Background(), "missing")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestSave_DuplicateRunID(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()
	r := run("a", "fp", time.Now(), 1)

	require.NoError(t, s.Save(ctx, r))
	assert.Error(t, s.Save(ctx, r))
}

func TestList(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()
	base := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)

	for i, id := range []string{"a", "b", "c"} {
		require.NoError(t, s.Save(ctx, run(id, "fp-"+id, base.Add(time.Duration(i)*time.Second), 1)))
	}

	all, err := s.List(ctx, 0)
	require.NoError(t, err)
	require.Len(t, all, 3)
	assert.Equal(t, "c", all[0].RunID)
	assert.Equal(t, "a", all[2].RunID)
	assert.False(t, all[0].Cached)

	limited, err := s.List(ctx, 2)
	require.NoError(t, err)
	require.Len(t, limited, 2)
	assert.Equal(t, "b", limited[1].RunID)
}

func TestList_EmptyOrder(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()

	require.NoError(t, s.Save(ctx, run("empty", "fp", time.Now())))

	all, err := s.List(ctx, 10)
	require.NoError(t, err)
	require.Len(t, all, 1)
	assert.Empty(t, all[0].Order)
}

func TestOpen_Reopen(t *testing.T) {
	path := filepath.Join(t.TempDir(), "coffman.db")
	ctx := context.Background()

	s, err := Open(path)
	require.NoError(t, err)
	require.NoError(t, s.Save(ctx, run("a", "fp", time.Now(), 2, 1)))
	require.NoError(t, s.Close())

	s, err = Open(path)
	require.NoError(t, err)
	defer s.Close()

	got, err := s.Lookup(ctx, "fp")
	require.NoError(t, err)
	assert.Equal(t, []taskgraph.TaskID{2, 1}, got.Order)
}

func TestClear(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()

	require.NoError(t, s.Save(ctx, run("a", "fp1", time.Now(), 1)))
	require.NoError(t, s.Save(ctx, run("b", "fp2", time.Now(), 1)))

	n, err := s.Clear(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(2), n)

	all, err := s.List(ctx, 0)
	require.NoError(t, err)
	assert.Empty(t, all)

	_, err = s.Lookup(ctx, "fp1")
	assert.ErrorIs(t, err, ErrNotFound)
}
