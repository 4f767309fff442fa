package cql

import "context"

// Future is the pending result of an asynchronous execution.
type Future struct {
	done   chan struct{}
	result *ResultSet
	err    error
}

// Go runs fn in a new goroutine and returns a Future resolved with its result.
func Go(ctx context.Context, fn func(ctx context.Context) (*ResultSet, error)) *Future {
	f := &Future{done: make(chan struct{})}
	go func() {
		defer close(f.done)
		f.result, f.err = fn(ctx)
	}()

	return f
}

// Resolved returns a Future that is already complete.
func Resolved(result *ResultSet, err error) *Future {
	f := &Future{done: make(chan struct{}), result: result, err: err}
	close(f.done)

	return f
}

// Done returns a channel closed when the execution completes.
func (f *Future) Done() <-chan struct{} {
	return f.done
}

// Get waits for the execution to complete and returns its result.
//
// If ctx ends first, Get returns ctx.Err(); the execution itself is not
// cancelled and Get may be called again.
func (f *Future) Get(ctx context.Context) (*ResultSet, error) {
	select {
	case <-f.done:
		return f.result, f.err
	case <-ctx.Done():
		return nil, ctx.Err()
	}
}
