// Package latency models the artificial waits that stand in for network
// round-trips in the client. A wait is an explicit, context-aware operation:
// callers suspend only at the call site and may cancel it through ctx.
package latency

import (
	"context"
	"time"
)

// DefaultDelay is the artificial latency applied to sign-in, sign-up,
// refresh and post operations.
const DefaultDelay = time.Second

// Simulator performs one artificial wait.
type Simulator interface {
	// Wait blocks until the delay elapses or ctx is done, whichever comes
	// first. It returns ctx.Err() in the latter case.
	Wait(ctx context.Context) error
}

type fixed struct {
	d time.Duration
}

// Fixed returns a Simulator that always waits d. Non-positive durations
// return immediately.
func Fixed(d time.Duration) Simulator {
	return fixed{d: d}
}

// None returns a Simulator without delay. It still reports a cancelled ctx.
func None() Simulator {
	return fixed{}
}

func (f fixed) Wait(ctx context.Context) error {
	if f.d <= 0 {
		return ctx.Err()
	}

	t := time.NewTimer(f.d)
	defer t.Stop()

	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-t.C:
		return nil
	}
}

// Result carries the outcome of an asynchronous operation.
type Result[T any] struct {
	Value T
	Err   error
}

// Async runs fn on its own goroutine and delivers exactly one Result on the
// returned channel, which is closed afterwards.
func Async[T any](ctx context.Context, fn func(ctx context.Context) (T, error)) <-chan Result[T] {
	ch := make(chan Result[T], 1)
	go func() {
		defer close(ch)
		v, err := fn(ctx)
		ch <- Result[T]{Value: v, Err: err}
	}()
	return ch
}
