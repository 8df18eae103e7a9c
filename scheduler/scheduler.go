// Package scheduler runs an action immediately and then on a fixed interval.
package scheduler

import (
	"context"
	"errors"
	"time"
)

// ErrInvalidInterval is returned for a non-positive interval
var ErrInvalidInterval = errors.New("interval must be positive")

// Run invokes action once right away, then again every interval measured from
// the start of the previous invocation. An invocation that overruns the
// interval delays the next one instead of queuing extra runs, so invocations
// never overlap. Run blocks until ctx is cancelled and returns ctx.Err().
func Run(ctx context.Context, interval time.Duration, action func(context.Context)) error {
	if interval <= 0 {
		return ErrInvalidInterval
	}

	t := time.NewTimer(0)
	defer t.Stop()
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-t.C:
			start := time.Now()
			action(ctx)
			if err := ctx.Err(); err != nil {
				return err
			}
			t.Reset(time.Until(start.Add(interval)))
		}
	}
}
