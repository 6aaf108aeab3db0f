package async_test

import (
	"context"
	"errors"
	"fmt"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/liekit/pkg/async"
)

func TestAsync(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	fs := async.Async(ctx, 42, func(_ context.Context, n int) (string, error) {
		time.Sleep(20 * time.Millisecond)
		return fmt.Sprintf("Number: %d", n), nil
	})
	fb := async.Async(ctx, "test", func(_ context.Context, s string) (bool, error) {
		return s != "", nil
	})

	s, err := fs.Await()
	require.NoError(t, err)
	assert.Equal(t, "Number: 42", s)

	b, err := fb.Await()
	require.NoError(t, err)
	assert.True(t, b)
}

func TestAsync_ErrorPropagation(t *testing.T) {
	t.Parallel()

	want := errors.New("exchange failed")
	f := async.Async(context.Background(), 0, func(context.Context, int) (int, error) {
		return 0, want
	})
	_, err := f.Await()
	assert.ErrorIs(t, err, want)
}

func TestAsync_CanceledBeforeStart(t *testing.T) {
	t.Parallel()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	var called atomic.Bool
	f := async.Async(ctx, 0, func(context.Context, int) (int, error) {
		called.Store(true)
		return 1, nil
	})
	_, err := f.Await()
	assert.ErrorIs(t, err, context.Canceled)
	assert.False(t, called.Load())
}

func TestAsync_RecoversPanic(t *testing.T) {
	t.Parallel()

	f := async.Async(context.Background(), 0, func(context.Context, int) (int, error) {
		panic("boom")
	})
	_, err := f.Await()
	require.ErrorIs(t, err, async.ErrPanic)
	assert.Contains(t, err.Error(), "boom")
}

func TestIsComplete(t *testing.T) {
	t.Parallel()

	release := make(chan struct{})
	f := async.Async(context.Background(), 0, func(context.Context, int) (int, error) {
		<-release
		return 1, nil
	})
	assert.False(t, f.IsComplete())
	close(release)
	_, _ = f.Await()
	assert.True(t, f.IsComplete())
}

func TestAwaitWithTimeout(t *testing.T) {
	t.Parallel()

	slow := async.Async(context.Background(), 0, func(context.Context, int) (int, error) {
		time.Sleep(200 * time.Millisecond)
		return 1, nil
	})
	_, err := slow.AwaitWithTimeout(10 * time.Millisecond)
	assert.ErrorIs(t, err, async.ErrTimeout)

	fast := async.Async(context.Background(), 0, func(context.Context, int) (int, error) {
		return 7, nil
	})
	v, err := fast.AwaitWithTimeout(time.Second)
	require.NoError(t, err)
	assert.Equal(t, 7, v)
}

func TestAwaitContext(t *testing.T) {
	t.Parallel()

	block := make(chan struct{})
	defer close(block)
	f := async.Async(context.Background(), 0, func(context.Context, int) (int, error) {
		<-block
		return 1, nil
	})

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err := f.AwaitContext(ctx)
	assert.ErrorIs(t, err, context.Canceled)

	dctx, dcancel := context.WithTimeout(context.Background(), 5*time.Millisecond)
	defer dcancel()
	_, err = f.AwaitContext(dctx)
	assert.ErrorIs(t, err, async.ErrTimeout)
}

func TestBounded(t *testing.T) {
	t.Parallel()

	t.Run("returns result in time", func(t *testing.T) {
		t.Parallel()
		v, err := async.Bounded(context.Background(), time.Second, func(context.Context) (string, error) {
			return "ok", nil
		})
		require.NoError(t, err)
		assert.Equal(t, "ok", v)
	})

	t.Run("abandons a call that ignores its context", func(t *testing.T) {
		t.Parallel()
		start := time.Now()
		_, err := async.Bounded(context.Background(), 20*time.Millisecond, func(context.Context) (string, error) {
			time.Sleep(300 * time.Millisecond)
			return "late", nil
		})
		assert.ErrorIs(t, err, async.ErrTimeout)
		assert.Less(t, time.Since(start), 250*time.Millisecond)
	})

	t.Run("maps deadline seen by the call to timeout", func(t *testing.T) {
		t.Parallel()
		_, err := async.Bounded(context.Background(), 10*time.Millisecond, func(ctx context.Context) (string, error) {
			<-ctx.Done()
			return "", ctx.Err()
		})
		assert.ErrorIs(t, err, async.ErrTimeout)
	})

	t.Run("no bound without timeout", func(t *testing.T) {
		t.Parallel()
		v, err := async.Bounded(context.Background(), 0, func(ctx context.Context) (int, error) {
			_, ok := ctx.Deadline()
			assert.False(t, ok)
			return 3, nil
		})
		require.NoError(t, err)
		assert.Equal(t, 3, v)
	})

	t.Run("parent cancellation is not a timeout", func(t *testing.T) {
		t.Parallel()
		ctx, cancel := context.WithCancel(context.Background())
		cancel()
		_, err := async.Bounded(ctx, time.Second, func(ctx context.Context) (int, error) {
			return 0, nil
		})
		assert.ErrorIs(t, err, context.Canceled)
		assert.NotErrorIs(t, err, async.ErrTimeout)
	})
}
