// Package limiter bounds how many goroutines may concurrently block
// inside chanx.Select when a caller fans out a single select-driven
// worker across a large, dynamic set of channels (a "selector pool").
//
// This is not part of the channel core's own synchronization protocol
// — the spec's wakeup token is deliberately a bespoke counting
// semaphore private to one select call (spec.md §3, §9), and reusing
// a shared library semaphore there would violate that. Limiter instead
// bounds a layer above Select, so it is free to reach for the real
// ecosystem semaphore rather than reimplement one: golang.org/x/sync's
// weighted semaphore is exactly shaped for "cap concurrent access to a
// resource, block the caller until a slot frees up."
package limiter

import (
	"context"

	"golang.org/x/sync/semaphore"
)

// Pool bounds concurrent execution of worker functions to at most n
// at a time.
type Pool struct {
	sem *semaphore.Weighted
}

// New returns a Pool allowing at most n concurrent workers. n must be
// positive.
func New(n int64) *Pool {
	return &Pool{sem: semaphore.NewWeighted(n)}
}

// Go blocks until a slot is available (or ctx is done), then runs fn
// in a new goroutine, releasing the slot when fn returns. Go returns
// ctx.Err() without running fn if the context is done before a slot
// frees up.
func (p *Pool) Go(ctx context.Context, fn func(context.Context)) error {
	if err := p.sem.Acquire(ctx, 1); err != nil {
		return err
	}
	go func() {
		defer p.sem.Release(1)
		fn(ctx)
	}()
	return nil
}

// TryGo attempts to acquire a slot without blocking. It reports
// whether fn was started.
func (p *Pool) TryGo(fn func()) bool {
	if !p.sem.TryAcquire(1) {
		return false
	}
	go func() {
		defer p.sem.Release(1)
		fn()
	}()
	return true
}
