// Package lazy provides a single-flight async slot and a cooperative
// cancellation heartbeat for long-running evaluation work.
package lazy

import (
	"context"
	"sync"
	"sync/atomic"
)

// Init starts a computation in the background exactly once and exposes its
// result without blocking. Closing the slot cancels the computation if it
// has not finished; a result that was already produced stays readable.
type Init[T any] struct {
	result    atomic.Pointer[T]
	cancel    context.CancelFunc
	done      chan struct{}
	closeOnce sync.Once
}

// Start launches compute on its own goroutine. The context passed to
// compute is cancelled by Close.
func Start[T any](ctx context.Context, compute func(ctx context.Context) (T, error)) *Init[T] {
	ctx, cancel := context.WithCancel(ctx)
	l := &Init[T]{
		cancel: cancel,
		done:   make(chan struct{}),
	}
	go func() {
		defer close(l.done)
		defer cancel()
		v, err := compute(ctx)
		if err != nil {
			return
		}
		l.result.Store(&v)
	}()
	return l
}

// Get returns the computed value if it is ready. It never blocks.
func (l *Init[T]) Get() (T, bool) {
	if p := l.result.Load(); p != nil {
		return *p, true
	}
	var zero T
	return zero, false
}

// Done is closed when the computation goroutine has exited, whether it
// produced a value or not.
func (l *Init[T]) Done() <-chan struct{} {
	return l.done
}

// Close cancels the computation. It is safe to call more than once and
// safe to call after the computation finished.
func (l *Init[T]) Close() {
	l.closeOnce.Do(l.cancel)
}
