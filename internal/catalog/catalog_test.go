package catalog

import (
	"context"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/abdalahsamh/New-cashir/internal/storage"
)

func d(v string) decimal.Decimal {
	return decimal.RequireFromString(v)
}

func TestInitialize_SeedsDefaults(t *testing.T) {
	store := storage.NewMemStore()
	c := New(store)
	ctx := context.Background()

	entries, err := c.Initialize(ctx)
	require.NoError(t, err)
	require.Len(t, entries, len(defaultNames))
	for _, e := range entries {
		assert.True(t, e.Price.IsZero(), "default %q should have price 0", e.Name)
	}

	// Seeding must persist: a second Catalog over the same store sees it.
	again, err := New(store).List(ctx)
	require.NoError(t, err)
	require.Len(t, again, len(entries))
	for i, e := range entries {
		assert.Equal(t, e.Name, again[i].Name)
		assert.True(t, e.Price.Equal(again[i].Price), "price of %q", e.Name)
	}
}

func TestInitialize_KeepsPersistedCatalog(t *testing.T) {
	store := storage.NewMemStore()
	c := New(store)
	ctx := context.Background()

	_, err := c.Initialize(ctx)
	require.NoError(t, err)
	require.NoError(t, c.SetPrice(ctx, "قص شعر", d("50")))

	entries, err := c.Initialize(ctx)
	require.NoError(t, err)
	assert.True(t, d("50").Equal(priceOf(t, entries, "قص شعر")))
}

func TestSetPrice(t *testing.T) {
	ctx := context.Background()

	t.Run("overwrites price", func(t *testing.T) {
		c := New(storage.NewMemStore())
		require.NoError(t, c.SetPrice(ctx, "صبغة", d("100")))

		entries, err := c.List(ctx)
		require.NoError(t, err)
		assert.True(t, d("100").Equal(priceOf(t, entries, "صبغة")))
	})

	t.Run("negative price stored as zero", func(t *testing.T) {
		c := New(storage.NewMemStore())
		require.NoError(t, c.SetPrice(ctx, "صبغة", d("-5")))

		entries, err := c.List(ctx)
		require.NoError(t, err)
		assert.True(t, priceOf(t, entries, "صبغة").IsZero())
	})

	t.Run("absent name is a no-op", func(t *testing.T) {
		c := New(storage.NewMemStore())
		require.NoError(t, c.SetPrice(ctx, "غير موجود", d("10")))

		entries, err := c.List(ctx)
		require.NoError(t, err)
		assert.Len(t, entries, len(defaultNames))
	})
}

func TestAdd(t *testing.T) {
	ctx := context.Background()

	t.Run("appends custom service with price zero", func(t *testing.T) {
		c := New(storage.NewMemStore())
		require.NoError(t, c.Add(ctx, "  حلاقة منزلية  "))

		entries, err := c.List(ctx)
		require.NoError(t, err)
		last := entries[len(entries)-1]
		assert.Equal(t, "حلاقة منزلية", last.Name)
		assert.True(t, last.Price.IsZero())
	})

	t.Run("duplicate name", func(t *testing.T) {
		c := New(storage.NewMemStore())
		require.NoError(t, c.Add(ctx, "حلاقة منزلية"))
		require.ErrorIs(t, c.Add(ctx, "حلاقة منزلية"), ErrDuplicateService)
	})

	t.Run("default name counts as duplicate", func(t *testing.T) {
		c := New(storage.NewMemStore())
		require.ErrorIs(t, c.Add(ctx, "قص شعر"), ErrDuplicateService)
	})

	t.Run("empty name", func(t *testing.T) {
		c := New(storage.NewMemStore())
		require.ErrorIs(t, c.Add(ctx, "   "), ErrDuplicateService)
	})
}

func TestRemove(t *testing.T) {
	ctx := context.Background()

	t.Run("default service is protected", func(t *testing.T) {
		c := New(storage.NewMemStore())
		require.ErrorIs(t, c.Remove(ctx, "قص شعر"), ErrProtectedService)
	})

	t.Run("custom service is removed", func(t *testing.T) {
		c := New(storage.NewMemStore())
		require.NoError(t, c.Add(ctx, "حلاقة منزلية"))
		require.NoError(t, c.Remove(ctx, "حلاقة منزلية"))

		entries, err := c.List(ctx)
		require.NoError(t, err)
		for _, e := range entries {
			assert.NotEqual(t, "حلاقة منزلية", e.Name)
		}
	})

	t.Run("unknown name", func(t *testing.T) {
		c := New(storage.NewMemStore())
		require.ErrorIs(t, c.Remove(ctx, "غير موجود"), ErrNotFound)
	})
}

func TestList_CorruptSlotFallsBackToDefaults(t *testing.T) {
	store := storage.NewMemStore()
	ctx := context.Background()
	require.NoError(t, store.Put(ctx, "services", "not an array"))

	entries, err := New(store).List(ctx)
	require.NoError(t, err)
	assert.Len(t, entries, len(defaultNames))
}

func priceOf(t *testing.T, entries []Entry, name string) decimal.Decimal {
	t.Helper()
	for _, e := range entries {
		if e.Name == name {
			return e.Price
		}
	}
	t.Fatalf("service %q not found", name)
	return decimal.Zero
}
