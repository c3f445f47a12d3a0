package storage

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type doc struct {
	Name  string `json:"name"`
	Count int    `json:"count"`
}

func TestFileStore_RoundTrip(t *testing.T) {
	s, err := NewFileStore(t.TempDir())
	require.NoError(t, err)
	ctx := context.Background()

	want := doc{Name: "chairs", Count: 5}
	require.NoError(t, s.Put(ctx, "test", want))

	var got doc
	require.NoError(t, s.Get(ctx, "test", &got))
	assert.Equal(t, want, got)
}

func TestFileStore_MissingSlot(t *testing.T) {
	s, err := NewFileStore(t.TempDir())
	require.NoError(t, err)

	var got doc
	err = s.Get(context.Background(), "nope", &got)
	require.ErrorIs(t, err, ErrSlotNotFound)
}

func TestFileStore_CorruptSlotReadsAsAbsent(t *testing.T) {
	dir := t.TempDir()
	s, err := NewFileStore(dir)
	require.NoError(t, err)

	require.NoError(t, os.WriteFile(filepath.Join(dir, "bad.json"), []byte("{not json"), 0o644))

	var got doc
	err = s.Get(context.Background(), "bad", &got)
	require.ErrorIs(t, err, ErrSlotNotFound)
}

func TestFileStore_OverwriteReplacesDocument(t *testing.T) {
	s, err := NewFileStore(t.TempDir())
	require.NoError(t, err)
	ctx := context.Background()

	require.NoError(t, s.Put(ctx, "test", doc{Name: "old", Count: 1}))
	require.NoError(t, s.Put(ctx, "test", doc{Name: "new", Count: 2}))

	var got doc
	require.NoError(t, s.Get(ctx, "test", &got))
	assert.Equal(t, doc{Name: "new", Count: 2}, got)
}

func TestFileStore_DeleteIsIdempotent(t *testing.T) {
	s, err := NewFileStore(t.TempDir())
	require.NoError(t, err)
	ctx := context.Background()

	require.NoError(t, s.Put(ctx, "test", doc{Name: "x"}))
	require.NoError(t, s.Delete(ctx, "test"))
	require.NoError(t, s.Delete(ctx, "test"))

	var got doc
	require.ErrorIs(t, s.Get(ctx, "test", &got), ErrSlotNotFound)
}

func TestMemStore_RoundTrip(t *testing.T) {
	s := NewMemStore()
	ctx := context.Background()

	want := doc{Name: "vip", Count: 3}
	require.NoError(t, s.Put(ctx, "test", want))

	var got doc
	require.NoError(t, s.Get(ctx, "test", &got))
	assert.Equal(t, want, got)

	require.NoError(t, s.Delete(ctx, "test"))
	require.ErrorIs(t, s.Get(ctx, "test", &got), ErrSlotNotFound)
}
