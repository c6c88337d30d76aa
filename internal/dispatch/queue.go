package dispatch

import (
	"context"
	"errors"
	"runtime/pprof"
	"sync"

	"github.com/beacon-telemetry/beacon-go-sdk/internal/empty"
	"github.com/beacon-telemetry/beacon-go-sdk/internal/xerrors"
	"github.com/beacon-telemetry/beacon-go-sdk/internal/xsync"
)

var (
	ErrAlreadyClosed       = xerrors.Wrap(errors.New("beacon: dispatch queue already closed"))
	errClosedWithNilReason = xerrors.Wrap(errors.New("beacon: dispatch queue closed with nil reason"))
)

type Task func(ctx context.Context)

// Queue executes submitted tasks strictly one at a time, in submission
// order, on a single consumer goroutine. This total order is the only
// mutual exclusion the metric state machines rely on: every mutation of
// metric state must happen inside a queued task.
//
// A Queue must not be copied after first use.
type Queue struct {
	ctx      context.Context
	onceInit sync.Once

	tasks   *xsync.UnboundedChan[queueTask]
	drained empty.Chan

	m           xsync.Mutex
	closed      bool
	stop        context.CancelFunc
	closeReason error
}

func New(parent context.Context) *Queue {
	q := &Queue{}
	q.ctx, q.stop = context.WithCancel(parent)

	return q
}

// Submit enqueues a task and returns immediately. Tasks submitted after
// Close are silently discarded.
func (q *Queue) Submit(name string, task Task) {
	q.init()

	q.m.WithLock(func() {
		if q.closed {
			return
		}

		q.tasks.Send(queueTask{
			name: name,
			run:  task,
		})
	})
}

// SubmitWait enqueues a task and blocks until the task (and every task
// queued ahead of it) has completed, or ctx is done.
func (q *Queue) SubmitWait(ctx context.Context, name string, task Task) error {
	q.init()

	var (
		done      = make(empty.Chan)
		submitted bool
	)
	q.m.WithLock(func() {
		if q.closed {
			return
		}

		submitted = true
		q.tasks.Send(queueTask{
			name: name,
			run: func(taskCtx context.Context) {
				defer close(done)

				task(taskCtx)
			},
		})
	})
	if !submitted {
		return xerrors.WithStackTrace(ErrAlreadyClosed)
	}

	select {
	case <-done:
		return nil
	case <-ctx.Done():
		return xerrors.WithStackTrace(ctx.Err())
	}
}

// Close stops accepting tasks, waits until already queued tasks drain,
// then cancels the task context.
func (q *Queue) Close(ctx context.Context, reason error) error {
	q.init()

	var resErr error
	q.m.WithLock(func() {
		if q.closed {
			resErr = xerrors.WithStackTrace(ErrAlreadyClosed)

			return
		}

		q.closed = true
		q.tasks.Close()

		q.closeReason = reason
		if q.closeReason == nil {
			q.closeReason = errClosedWithNilReason
		}
	})
	if resErr != nil {
		return resErr
	}

	select {
	case <-q.drained:
		q.stop()

		return nil
	case <-ctx.Done():
		return xerrors.WithStackTrace(ctx.Err())
	}
}

func (q *Queue) CloseReason() error {
	q.m.Lock()
	defer q.m.Unlock()

	return q.closeReason
}

func (q *Queue) init() {
	q.onceInit.Do(func() {
		if q.ctx == nil {
			q.ctx, q.stop = context.WithCancel(context.Background())
		}
		q.tasks = xsync.NewUnboundedChan[queueTask]()
		q.drained = make(empty.Chan)
		go q.runLoop()
	})
}

func (q *Queue) runLoop() {
	defer close(q.drained)

	for {
		task, ok, err := q.tasks.Receive(q.ctx)
		if err != nil || !ok {
			return
		}

		pprof.Do(q.ctx, pprof.Labels("dispatch", task.name), task.run)
	}
}

type queueTask struct {
	name string
	run  Task
}
