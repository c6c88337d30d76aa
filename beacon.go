// Package beacon is a client-side telemetry collection SDK. Call sites
// record values through metric types; the SDK converts and persists
// them for later upload.
//
// Every mutation of metric state runs as a task on a single serialized
// dispatch queue owned by the Client. Recording calls are
// fire-and-forget: they capture their timestamps synchronously, submit
// a task and return immediately.
package beacon

import (
	"context"
	"sync/atomic"

	"github.com/google/uuid"
	"github.com/jonboulle/clockwork"

	"github.com/beacon-telemetry/beacon-go-sdk/internal/dispatch"
	"github.com/beacon-telemetry/beacon-go-sdk/internal/storage"
	"github.com/beacon-telemetry/beacon-go-sdk/log"
	"github.com/beacon-telemetry/beacon-go-sdk/metrics"
	"github.com/beacon-telemetry/beacon-go-sdk/timeunit"
	"github.com/beacon-telemetry/beacon-go-sdk/trace"
)

// Client owns the recording infrastructure: the dispatch queue, the
// metric store, the clock and the collection-enabled flag shared by
// every metric it creates.
type Client struct {
	queue  *dispatch.Queue
	store  *storage.Store
	clock  clockwork.Clock
	logger log.Logger
	trace  trace.Metrics

	sessionID uuid.UUID
	enabled   atomic.Bool
}

func New(ctx context.Context, opts ...Option) *Client {
	c := &Client{
		clock:     clockwork.NewRealClock(),
		logger:    log.Nop{},
		sessionID: uuid.New(),
	}
	c.enabled.Store(true)
	for _, opt := range opts {
		if opt != nil {
			opt(c)
		}
	}
	if c.store == nil {
		c.store = storage.New()
	}
	c.queue = dispatch.New(ctx)

	c.logger.Log(
		log.WithLevel(log.WithNames(ctx, "beacon"), log.INFO),
		"client started",
		log.Stringer("session", c.sessionID),
		log.Bool("collection_enabled", c.enabled.Load()),
	)

	return c
}

// Timespan creates a duration metric recording through this client. The
// unit is fixed for the life of the metric.
func (c *Client) Timespan(meta metrics.CommonMetadata, unit timeunit.Unit) *metrics.Timespan {
	return metrics.NewTimespan(metrics.Env{
		Queue:   c.queue,
		Store:   c.store,
		Clock:   c.clock,
		Trace:   c.trace,
		Enabled: c.CollectionEnabled,
	}, meta, unit)
}

func (c *Client) CollectionEnabled() bool {
	return c.enabled.Load()
}

// SetCollectionEnabled toggles recording. The change is dispatched, so
// it is ordered against recordings submitted before the call: they
// still observe the previous setting.
func (c *Client) SetCollectionEnabled(on bool) {
	c.queue.Submit("collection.set_enabled", func(context.Context) {
		c.enabled.Store(on)
	})
}

// SessionID identifies this client instance in logs and traces.
func (c *Client) SessionID() uuid.UUID {
	return c.sessionID
}

// Close drains the dispatch queue and stops the client.
func (c *Client) Close(ctx context.Context) error {
	var onDone func(trace.MetricsDispatcherCloseDoneInfo)
	if onClose := c.trace.OnDispatcherClose; onClose != nil {
		onDone = onClose(trace.MetricsDispatcherCloseStartInfo{})
	}

	err := c.queue.Close(ctx, nil)
	if onDone != nil {
		onDone(trace.MetricsDispatcherCloseDoneInfo{Error: err})
	}

	c.logger.Log(
		log.WithLevel(log.WithNames(ctx, "beacon"), log.INFO),
		"client closed",
		log.Stringer("session", c.sessionID),
		log.NamedError("reason", err),
	)

	return err
}
