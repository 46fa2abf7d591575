package workpool

import (
	"context"
	"fmt"
)

// Pool bounds the number of CPU-heavy tasks (vectorization, clustering)
// running at once so request goroutines stay responsive. Callers block until
// their task finishes or their context is cancelled; the task itself always
// runs to completion once started.
type Pool struct {
	sem chan struct{}
}

// New creates a pool allowing up to size concurrent tasks.
func New(size int) *Pool {
	if size < 1 {
		size = 1
	}
	return &Pool{sem: make(chan struct{}, size)}
}

// Submit acquires a slot, runs fn on a worker goroutine and waits for it.
// If ctx is cancelled while waiting for a slot or for the result, Submit
// returns ctx.Err(); a task already started is not interrupted. A panicking
// task is recovered on the worker goroutine and reported as an error.
func (p *Pool) Submit(ctx context.Context, fn func() error) error {
	select {
	case p.sem <- struct{}{}:
	case <-ctx.Done():
		return ctx.Err()
	}

	done := make(chan error, 1)
	go func() {
		defer func() { <-p.sem }()
		defer func() {
			if r := recover(); r != nil {
				done <- fmt.Errorf("task panicked: %v", r)
			}
		}()
		done <- fn()
	}()

	select {
	case err := <-done:
		return err
	case <-ctx.Done():
		return ctx.Err()
	}
}
