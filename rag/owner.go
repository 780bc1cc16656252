// SPDX-License-Identifier: MIT

package rag

import (
	"context"
	"sync"
)

type task struct {
	fn     func(*Graph) error
	result chan error
}

// Owner confines a Graph to one goroutine and runs submitted closures on it
// one at a time, in the order they are accepted.
type Owner struct {
	tasks     chan task
	done      chan struct{}
	closeOnce sync.Once
}

// NewOwner starts the owning goroutine for g. The caller must stop using g
// directly and call Close when done.
func NewOwner(g *Graph) *Owner {
	o := &Owner{
		tasks: make(chan task),
		done:  make(chan struct{}),
	}
	go o.loop(g)

	return o
}

func (o *Owner) loop(g *Graph) {
	for {
		select {
		case t := <-o.tasks:
			t.result <- t.fn(g)
		case <-o.done:
			return
		}
	}
}

// Do runs fn on the owned graph and returns its error.
//
// ctx bounds only the wait for the owner to pick the closure up. Once fn has
// started it runs to completion and Do waits for it.
//
// Errors:
//   - ctx.Err() if ctx ends before fn is scheduled.
//   - ErrOwnerClosed if Close was called first.
func (o *Owner) Do(ctx context.Context, fn func(*Graph) error) error {
	t := task{fn: fn, result: make(chan error, 1)}
	select {
	case <-o.done:
		return ErrOwnerClosed
	default:
	}
	select {
	case o.tasks <- t:
	case <-ctx.Done():
		return ctx.Err()
	case <-o.done:
		return ErrOwnerClosed
	}

	return <-t.result
}

// Close stops the owning goroutine after the closure in progress, if any.
// It is safe to call more than once.
func (o *Owner) Close() {
	o.closeOnce.Do(func() { close(o.done) })
}
