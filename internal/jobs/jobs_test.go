package jobs

import (
	"context"
	"errors"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestPoolRunsTasksAndDrainsOnShutdown(t *testing.T) {
	pool := NewPool(zap.NewNop(), 2, 10)
	pool.Run()

	var ran atomic.Int32
	for i := 0; i < 5; i++ {
		require.NoError(t, pool.Submit("count", func(ctx context.Context) error {
			ran.Add(1)
			return nil
		}))
	}

	ctx, cancel := context.WithTimeout(context.Background(), time.Second)
	defer cancel()
	require.NoError(t, pool.Shutdown(ctx))
	assert.Equal(t, int32(5), ran.Load())

	assert.ErrorIs(t, pool.Submit("late", func(context.Context) error { return nil }), ErrClosed)
}

func TestPoolSurvivesPanicsAndErrors(t *testing.T) {
	pool := NewPool(zap.NewNop(), 1, 10)
	pool.Run()

	var ran atomic.Int32
	require.NoError(t, pool.Submit("panic", func(context.Context) error { panic("boom") }))
	require.NoError(t, pool.Submit("fail", func(context.Context) error { return errors.New("nope") }))
	require.NoError(t, pool.Submit("ok", func(context.Context) error {
		ran.Add(1)
		return nil
	}))

	ctx, cancel := context.WithTimeout(context.Background(), time.Second)
	defer cancel()
	require.NoError(t, pool.Shutdown(ctx))
	assert.Equal(t, int32(1), ran.Load())
}

func TestPoolQueueFull(t *testing.T) {
	// not running: nothing drains the queue
	pool := NewPool(zap.NewNop(), 1, 1)

	require.NoError(t, pool.Submit("first", func(context.Context) error { return nil }))
	assert.ErrorIs(t, pool.Submit("second", func(context.Context) error { return nil }), ErrQueueFull)
}

func TestPoolShutdownTimeoutCancelsTasks(t *testing.T) {
	pool := NewPool(zap.NewNop(), 1, 1)
	pool.Run()

	started := make(chan struct{})
	cancelled := make(chan struct{})
	require.NoError(t, pool.Submit("slow", func(ctx context.Context) error {
		close(started)
		<-ctx.Done()
		close(cancelled)
		return ctx.Err()
	}))
	<-started

	ctx, cancel := context.WithTimeout(context.Background(), 20*time.Millisecond)
	defer cancel()
	assert.ErrorIs(t, pool.Shutdown(ctx), context.DeadlineExceeded)

	select {
	case <-cancelled:
	case <-time.After(time.Second):
		t.Fatal("task context was not cancelled")
	}
}

func TestNextRun(t *testing.T) {
	loc := time.UTC
	tests := []struct {
		name string
		now  time.Time
		want time.Time
	}{
		{"before hour", time.Date(2024, 5, 1, 7, 30, 0, 0, loc), time.Date(2024, 5, 1, 8, 0, 0, 0, loc)},
		{"exactly at hour", time.Date(2024, 5, 1, 8, 0, 0, 0, loc), time.Date(2024, 5, 2, 8, 0, 0, 0, loc)},
		{"after hour", time.Date(2024, 5, 1, 9, 0, 0, 0, loc), time.Date(2024, 5, 2, 8, 0, 0, 0, loc)},
		{"end of month", time.Date(2024, 5, 31, 23, 0, 0, 0, loc), time.Date(2024, 6, 1, 8, 0, 0, 0, loc)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, NextRun(tt.now, 8))
		})
	}
}

type fakeSender struct {
	mu    sync.Mutex
	calls int
	err   error
}

func (f *fakeSender) SendDueReminders(ctx context.Context) (int, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.calls++
	if _, ok := ctx.Deadline(); !ok {
		return 0, errors.New("scan ran without a deadline")
	}
	return 1, f.err
}

func TestSchedulerRunOnceAndStop(t *testing.T) {
	sender := &fakeSender{}
	s := NewScheduler(sender, 8, time.Second, zap.NewNop())

	s.RunOnce()
	sender.err = errors.New("smtp down")
	s.RunOnce()
	assert.Equal(t, 2, sender.calls)

	s.Start()
	ctx, cancel := context.WithTimeout(context.Background(), time.Second)
	defer cancel()
	require.NoError(t, s.Stop(ctx))
	require.NoError(t, s.Stop(ctx))
}
