package sqlite

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/rbpata/sweetshop/internal/shop/store"
	"github.com/rbpata/sweetshop/pkg/shopsdk"

	"github.com/stretchr/testify/require"
)

func newTestStore(t *testing.T) *Store {
	t.Helper()

	s, err := NewStore(filepath.Join(t.TempDir(), "shop.db"))
	require.NoError(t, err)
	t.Cleanup(func() { _ = s.Close() })

	require.NoError(t, s.ApplyMigrations())
	return s
}

func TestCredentials(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	creds := newTestStore(t).Credentials()

	t.Run("empty slot", func(t *testing.T) {
		_, err := creds.GetToken(ctx)
		require.ErrorIs(t, err, store.ErrNotFound)
	})

	t.Run("set and get", func(t *testing.T) {
		require.NoError(t, creds.SetToken(ctx, "tok-1"))

		token, err := creds.GetToken(ctx)
		require.NoError(t, err)
		require.Equal(t, "tok-1", token)
	})

	t.Run("set replaces", func(t *testing.T) {
		require.NoError(t, creds.SetToken(ctx, "tok-2"))

		token, err := creds.GetToken(ctx)
		require.NoError(t, err)
		require.Equal(t, "tok-2", token)
	})

	t.Run("clear is idempotent", func(t *testing.T) {
		require.NoError(t, creds.Clear(ctx))
		require.NoError(t, creds.Clear(ctx))

		_, err := creds.GetToken(ctx)
		require.ErrorIs(t, err, store.ErrNotFound)
	})
}

func TestSweetsCache(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	cache := newTestStore(t).SweetsCache()

	snapshot := []shopsdk.Sweet{
		{ID: 1, Name: "Fudge", Category: "Chocolate", Price: 3.5, Quantity: 10},
		{ID: 2, Name: "Sherbet", Category: "Fizzy", Price: 1.25, Quantity: 0},
	}

	t.Run("empty cache", func(t *testing.T) {
		_, _, err := cache.List(ctx)
		require.ErrorIs(t, err, store.ErrNotFound)
	})

	t.Run("replace and list", func(t *testing.T) {
		refreshedAt := time.Date(2025, 8, 1, 10, 0, 0, 0, time.UTC)
		require.NoError(t, cache.ReplaceAll(ctx, snapshot, refreshedAt))

		sweets, stamp, err := cache.List(ctx)
		require.NoError(t, err)
		require.Equal(t, snapshot, sweets)
		require.Equal(t, refreshedAt, stamp)
	})

	t.Run("replace swaps the whole snapshot", func(t *testing.T) {
		next := []shopsdk.Sweet{{ID: 3, Name: "Nougat", Category: "Chewy", Price: 2, Quantity: 4}}
		require.NoError(t, cache.ReplaceAll(ctx, next, time.Now()))

		sweets, _, err := cache.List(ctx)
		require.NoError(t, err)
		require.Equal(t, next, sweets)
	})

	t.Run("clear", func(t *testing.T) {
		require.NoError(t, cache.Clear(ctx))

		_, _, err := cache.List(ctx)
		require.ErrorIs(t, err, store.ErrNotFound)
	})
}
