// Package metrics implements the recordable metric types of the SDK.
//
// Metric state is mutated only from tasks executed on the dispatch
// queue: a single consumer runs every mutation in submission order,
// which is the only mutual exclusion the types below rely on.
package metrics

import (
	"errors"

	"github.com/jonboulle/clockwork"

	"github.com/beacon-telemetry/beacon-go-sdk/internal/dispatch"
	"github.com/beacon-telemetry/beacon-go-sdk/internal/storage"
	"github.com/beacon-telemetry/beacon-go-sdk/internal/xerrors"
	"github.com/beacon-telemetry/beacon-go-sdk/trace"
)

// Non-fatal recording conditions. Mutating operations are fire-and-forget,
// so these are never returned to the caller: they surface through trace
// hooks (trace.Metrics DoneInfo.Error) and logs only.
var (
	ErrAlreadyRunning  = xerrors.Wrap(errors.New("beacon: timespan already running"))
	ErrNotRunning      = xerrors.Wrap(errors.New("beacon: timespan not running"))
	ErrNegativeElapsed = xerrors.Wrap(errors.New("beacon: negative timespan elapsed"))
	ErrAlreadyRecorded = xerrors.Wrap(errors.New("beacon: timespan value already recorded"))

	// ErrNoValue is returned by test readback when nothing valid is stored.
	ErrNoValue = xerrors.Wrap(errors.New("beacon: no value recorded"))
)

// CommonMetadata identifies one metric and names the pings it records
// into. It is fixed at metric definition time.
type CommonMetadata struct {
	Category string
	Name     string
	Pings    []string
	Disabled bool
}

// Identity returns the storage identity of the metric.
func (m CommonMetadata) Identity() string {
	if m.Category == "" {
		return m.Name
	}

	return m.Category + "." + m.Name
}

// Env carries the collaborators a metric records through. Dependencies
// are passed in explicitly so tests can substitute in-memory fakes.
type Env struct {
	Queue *dispatch.Queue
	Store *storage.Store
	Clock clockwork.Clock
	Trace trace.Metrics

	// Enabled reports the collection-enabled flag. When it returns
	// false every mutating operation short-circuits silently.
	Enabled func() bool
}

func (e Env) withDefaults() Env {
	if e.Clock == nil {
		e.Clock = clockwork.NewRealClock()
	}
	if e.Enabled == nil {
		e.Enabled = func() bool { return true }
	}

	return e
}
