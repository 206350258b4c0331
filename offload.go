package svcfault

import "context"

// Offload runs fn on its own goroutine and waits for its result or for
// ctx to be done, whichever comes first. Deadline expiry and
// cancellation both surface as a KindTimeout failure, so a boundary
// handler waiting on Offload always answers instead of hanging.
//
// fn should honor ctx in its own blocking operations; the result channel
// is buffered so an abandoned worker can still finish and exit.
func Offload[T any](ctx context.Context, fn func() (T, error)) (T, error) {
	type outcome struct {
		value T
		err   error
	}
	done := make(chan outcome, 1)
	go func() {
		value, err := fn()
		done <- outcome{value: value, err: err}
	}()

	select {
	case out := <-done:
		return out.value, out.err
	case <-ctx.Done():
		var zero T
		return zero, Timeout(ctx.Err())
	}
}

// Pool bounds how many offloaded calls may run at once, keeping the
// boundary handler responsive when heavy dependent work piles up.
type Pool struct {
	slots chan struct{}
}

// NewPool creates a pool allowing up to size concurrent calls. A size
// below 1 is treated as 1.
func NewPool(size int) *Pool {
	if size < 1 {
		size = 1
	}
	return &Pool{slots: make(chan struct{}, size)}
}

// Run waits for a pool slot within ctx's patience, then behaves like
// Offload. Waiting out ctx while the pool is busy surfaces as a
// KindTimeout failure. The slot is held until fn itself returns, even
// when the caller has already been answered.
func Run[T any](p *Pool, ctx context.Context, fn func() (T, error)) (T, error) {
	select {
	case p.slots <- struct{}{}:
		return Offload(ctx, func() (T, error) {
			defer func() { <-p.slots }()
			return fn()
		})
	case <-ctx.Done():
		var zero T
		return zero, Timeout(ctx.Err())
	}
}

// TryRun is Run without the wait: when no slot is free it refuses
// immediately with a KindUnavailable failure.
func TryRun[T any](p *Pool, ctx context.Context, fn func() (T, error)) (T, error) {
	select {
	case p.slots <- struct{}{}:
		return Offload(ctx, func() (T, error) {
			defer func() { <-p.slots }()
			return fn()
		})
	default:
		var zero T
		return zero, New(KindUnavailable)
	}
}
