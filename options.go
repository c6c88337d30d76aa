package beacon

import (
	"github.com/jonboulle/clockwork"

	"github.com/beacon-telemetry/beacon-go-sdk/internal/storage"
	"github.com/beacon-telemetry/beacon-go-sdk/log"
	"github.com/beacon-telemetry/beacon-go-sdk/metrics"
	"github.com/beacon-telemetry/beacon-go-sdk/timeunit"
	"github.com/beacon-telemetry/beacon-go-sdk/trace"
)

type Option func(c *Client)

// WithLogger wires recording events into l, gated by details.
func WithLogger(l log.Logger, details trace.Detailer) Option {
	return func(c *Client) {
		c.logger = l
		c.trace = c.trace.Compose(log.Metrics(l, details))
	}
}

// WithTrace adds external trace hooks to every metric of the client.
func WithTrace(t trace.Metrics) Option {
	return func(c *Client) {
		c.trace = c.trace.Compose(t)
	}
}

// WithStore substitutes the metric store, so tests can inspect raw
// records or seed pre-existing ones.
func WithStore(store *storage.Store) Option {
	return func(c *Client) {
		c.store = store
	}
}

// WithClock substitutes the clock metrics capture timestamps from.
func WithClock(clock clockwork.Clock) Option {
	return func(c *Client) {
		c.clock = clock
	}
}

// WithCollectionEnabled sets the initial collection-enabled flag.
func WithCollectionEnabled(on bool) Option {
	return func(c *Client) {
		c.enabled.Store(on)
	}
}

// Shortcuts, so most callers only import the root package.
type (
	CommonMetadata = metrics.CommonMetadata
	TimeUnit       = timeunit.Unit
)

const (
	Nanosecond  = timeunit.Nanosecond
	Microsecond = timeunit.Microsecond
	Millisecond = timeunit.Millisecond
	Second      = timeunit.Second
	Minute      = timeunit.Minute
	Hour        = timeunit.Hour
	Day         = timeunit.Day
)
