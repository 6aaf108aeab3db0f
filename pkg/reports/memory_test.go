package reports_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/liekit/pkg/reports"
)

func TestMemoryStore(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	now := time.Now()

	t.Run("save and get", func(t *testing.T) {
		t.Parallel()
		s := reports.NewMemoryStore()
		require.NoError(t, s.Save(ctx, verdict("a", "h1", now)))

		got, err := s.Get(ctx, "a")
		require.NoError(t, err)
		assert.Equal(t, "h1", got.Hash)

		_, err = s.Get(ctx, "missing")
		assert.ErrorIs(t, err, reports.ErrNotFound)
	})

	t.Run("duplicate id is a no-op", func(t *testing.T) {
		t.Parallel()
		s := reports.NewMemoryStore()
		require.NoError(t, s.Save(ctx, verdict("a", "h1", now)))
		require.NoError(t, s.Save(ctx, verdict("a", "h2", now)))

		got, err := s.Get(ctx, "a")
		require.NoError(t, err)
		assert.Equal(t, "h1", got.Hash)
		assert.Equal(t, 1, s.Len())
	})

	t.Run("latest by hash keeps the newest", func(t *testing.T) {
		t.Parallel()
		s := reports.NewMemoryStore()
		require.NoError(t, s.Save(ctx, verdict("new", "h", now)))
		require.NoError(t, s.Save(ctx, verdict("old", "h", now.Add(-time.Hour))))

		got, err := s.LatestByHash(ctx, "h")
		require.NoError(t, err)
		assert.Equal(t, "new", got.ID)

		_, err = s.LatestByHash(ctx, "other")
		assert.True(t, reports.IsNotFound(err))
	})

	t.Run("rejects verdict without id or hash", func(t *testing.T) {
		t.Parallel()
		s := reports.NewMemoryStore()
		assert.ErrorIs(t, s.Save(ctx, verdict("", "h", now)), reports.ErrInvalidReport)
		assert.ErrorIs(t, s.Save(ctx, verdict("a", "", now)), reports.ErrInvalidReport)
	})
}
