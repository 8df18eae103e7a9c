package scheduler

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRun_InvalidInterval(t *testing.T) {
	called := false
	err := Run(context.Background(), 0, func(context.Context) { called = true })
	assert.ErrorIs(t, err, ErrInvalidInterval)
	assert.False(t, called)

	err = Run(context.Background(), -time.Second, func(context.Context) { called = true })
	assert.ErrorIs(t, err, ErrInvalidInterval)
	assert.False(t, called)
}

// TestRun_ImmediateThenInterval tests the first call happens at once and later calls are spaced by the interval
func TestRun_ImmediateThenInterval(t *testing.T) {
	const interval = 30 * time.Millisecond
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	var starts []time.Time
	begin := time.Now()
	err := Run(ctx, interval, func(context.Context) {
		starts = append(starts, time.Now())
		if len(starts) == 4 {
			cancel()
		}
	})
	assert.ErrorIs(t, err, context.Canceled)

	require.Len(t, starts, 4)
	assert.Less(t, starts[0].Sub(begin), interval, "first invocation should not wait for the interval")
	for i := 1; i < len(starts); i++ {
		assert.GreaterOrEqual(t, starts[i].Sub(starts[i-1]), interval)
	}
}

// TestRun_SlowActionDelaysNextTick tests that an overrunning action is not followed by a burst of catch-up runs
func TestRun_SlowActionDelaysNextTick(t *testing.T) {
	const (
		interval = 10 * time.Millisecond
		work     = 35 * time.Millisecond
	)
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	var starts []time.Time
	err := Run(ctx, interval, func(context.Context) {
		starts = append(starts, time.Now())
		if len(starts) == 3 {
			cancel()
			return
		}
		time.Sleep(work)
	})
	assert.ErrorIs(t, err, context.Canceled)

	require.Len(t, starts, 3)
	for i := 1; i < len(starts); i++ {
		assert.GreaterOrEqual(t, starts[i].Sub(starts[i-1]), work)
	}
}

func TestRun_NeverOverlaps(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	var (
		mu      sync.Mutex
		running int
		maxSeen int
		calls   int
	)
	err := Run(ctx, time.Millisecond, func(context.Context) {
		mu.Lock()
		running++
		if running > maxSeen {
			maxSeen = running
		}
		calls++
		done := calls == 5
		mu.Unlock()

		time.Sleep(3 * time.Millisecond)

		mu.Lock()
		running--
		mu.Unlock()
		if done {
			cancel()
		}
	})
	assert.ErrorIs(t, err, context.Canceled)
	assert.Equal(t, 1, maxSeen)
	assert.Equal(t, 5, calls)
}

func TestRun_StopsOnCancel(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())

	calls := make(chan struct{}, 10)
	done := make(chan error, 1)
	go func() {
		done <- Run(ctx, time.Hour, func(context.Context) { calls <- struct{}{} })
	}()

	select {
	case <-calls:
	case <-time.After(time.Second):
		t.Fatal("first invocation did not happen")
	}
	cancel()

	select {
	case err := <-done:
		assert.ErrorIs(t, err, context.Canceled)
	case <-time.After(time.Second):
		t.Fatal("Run did not return after cancel")
	}
	assert.Len(t, calls, 0)
}

func TestRun_PassesContext(t *testing.T) {
	type key struct{}
	ctx, cancel := context.WithCancel(context.WithValue(context.Background(), key{}, "poller"))
	defer cancel()

	var got any
	_ = Run(ctx, time.Hour, func(c context.Context) {
		got = c.Value(key{})
		cancel()
	})
	assert.Equal(t, "poller", got)
}
