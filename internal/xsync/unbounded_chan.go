package xsync

import (
	"context"
	"sync"

	"github.com/beacon-telemetry/beacon-go-sdk/internal/empty"
	"github.com/beacon-telemetry/beacon-go-sdk/internal/xerrors"
)

// UnboundedChan is a FIFO channel without capacity limit: Send never
// blocks. Values are received in send order across all senders.
type UnboundedChan[T any] struct {
	m      sync.Mutex
	items  []T
	notify empty.Chan
	closed bool
}

func NewUnboundedChan[T any]() *UnboundedChan[T] {
	return &UnboundedChan[T]{
		notify: make(empty.Chan, 1),
	}
}

// Send enqueues v. Sends after Close are discarded.
func (c *UnboundedChan[T]) Send(v T) {
	c.m.Lock()
	if c.closed {
		c.m.Unlock()

		return
	}
	c.items = append(c.items, v)
	c.m.Unlock()

	c.wake()
}

// Receive returns the next value in FIFO order. It blocks until a value
// is available, the channel is closed and drained (ok == false), or ctx
// is done.
func (c *UnboundedChan[T]) Receive(ctx context.Context) (_ T, ok bool, _ error) {
	var zero T
	for {
		c.m.Lock()
		if len(c.items) > 0 {
			v := c.items[0]
			c.items = c.items[1:]
			c.m.Unlock()

			return v, true, nil
		}
		closed := c.closed
		c.m.Unlock()

		if closed {
			return zero, false, nil
		}

		select {
		case <-c.notify:
		case <-ctx.Done():
			return zero, false, xerrors.WithStackTrace(ctx.Err())
		}
	}
}

// Close stops accepting sends. Values already queued remain receivable.
func (c *UnboundedChan[T]) Close() {
	c.m.Lock()
	c.closed = true
	c.m.Unlock()

	c.wake()
}

func (c *UnboundedChan[T]) wake() {
	select {
	case c.notify <- empty.Struct{}:
	default:
	}
}
