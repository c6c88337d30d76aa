package dispatch

import (
	"context"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"golang.org/x/sync/errgroup"

	"github.com/beacon-telemetry/beacon-go-sdk/internal/empty"
	"github.com/beacon-telemetry/beacon-go-sdk/internal/xtest"
)

func TestQueueSerializesTasksInSubmissionOrder(t *testing.T) {
	ctx := xtest.Context(t)
	q := New(ctx)
	defer func() { _ = q.Close(ctx, nil) }()

	const tasks = 100

	var (
		order   []int
		running atomic.Int32
	)
	for i := 0; i < tasks; i++ {
		i := i
		q.Submit("test", func(context.Context) {
			require.Equal(t, int32(1), running.Add(1))
			order = append(order, i)
			running.Add(-1)
		})
	}

	done := make(empty.Chan)
	q.Submit("last", func(context.Context) {
		close(done)
	})
	xtest.WaitChannelClosed(t, done)
	require.Len(t, order, tasks)
	for i, v := range order {
		require.Equal(t, i, v)
	}
}

func TestQueueSubmitWait(t *testing.T) {
	t.Run("WaitsForTasksAhead", func(t *testing.T) {
		ctx := xtest.Context(t)
		q := New(ctx)
		defer func() { _ = q.Close(ctx, nil) }()

		var first atomic.Bool
		q.Submit("ahead", func(context.Context) {
			time.Sleep(time.Millisecond)
			first.Store(true)
		})

		var second bool
		require.NoError(t, q.SubmitWait(ctx, "test", func(context.Context) {
			second = true
		}))
		require.True(t, first.Load())
		require.True(t, second)
	})

	t.Run("ContextDone", func(t *testing.T) {
		ctx := xtest.Context(t)
		q := New(ctx)
		defer func() { _ = q.Close(ctx, nil) }()

		release := make(empty.Chan)
		q.Submit("blocker", func(context.Context) {
			<-release
		})

		waitCtx, cancel := context.WithCancel(ctx)
		cancel()
		err := q.SubmitWait(waitCtx, "test", func(context.Context) {})
		require.ErrorIs(t, err, context.Canceled)

		close(release)
	})
}

func TestQueueClose(t *testing.T) {
	t.Run("DrainsQueuedTasks", func(t *testing.T) {
		ctx := xtest.Context(t)
		q := New(ctx)

		var ran atomic.Int32
		for i := 0; i < 10; i++ {
			q.Submit("test", func(context.Context) {
				ran.Add(1)
			})
		}

		require.NoError(t, q.Close(ctx, nil))
		require.Equal(t, int32(10), ran.Load())
	})

	t.Run("SubmitAfterCloseIsNoOp", func(t *testing.T) {
		ctx := xtest.Context(t)
		q := New(ctx)
		require.NoError(t, q.Close(ctx, nil))

		q.Submit("test", func(context.Context) {
			t.Fatal("task ran after close")
		})
		time.Sleep(time.Second / 100)
	})

	t.Run("SubmitWaitAfterClose", func(t *testing.T) {
		ctx := xtest.Context(t)
		q := New(ctx)
		require.NoError(t, q.Close(ctx, nil))

		err := q.SubmitWait(ctx, "test", func(context.Context) {})
		require.ErrorIs(t, err, ErrAlreadyClosed)
	})

	t.Run("DoubleClose", func(t *testing.T) {
		ctx := xtest.Context(t)
		q := New(ctx)
		require.NoError(t, q.Close(ctx, nil))
		require.ErrorIs(t, q.Close(ctx, nil), ErrAlreadyClosed)
	})

	t.Run("CloseReason", func(t *testing.T) {
		ctx := xtest.Context(t)
		q := New(ctx)
		require.NoError(t, q.Close(ctx, nil))
		require.Error(t, q.CloseReason())
	})
}

func TestQueueConcurrentSubmitters(t *testing.T) {
	xtest.TestManyTimes(t, func(t testing.TB) {
		ctx := xtest.Context(t)
		q := New(ctx)
		defer func() { _ = q.Close(ctx, nil) }()

		const (
			submitters        = 4
			tasksPerSubmitter = 20
		)

		var (
			running atomic.Int32
			overlap atomic.Bool
			total   atomic.Int32
		)
		g, _ := errgroup.WithContext(ctx)
		for s := 0; s < submitters; s++ {
			g.Go(func() error {
				for i := 0; i < tasksPerSubmitter; i++ {
					q.Submit("test", func(context.Context) {
						if running.Add(1) > 1 {
							overlap.Store(true)
						}
						total.Add(1)
						running.Add(-1)
					})
				}

				return nil
			})
		}
		require.NoError(t, g.Wait())

		xtest.SpinWaitCondition(t, func() bool {
			return total.Load() == int32(submitters*tasksPerSubmitter)
		})
		require.False(t, overlap.Load())
	})
}
