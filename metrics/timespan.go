package metrics

import (
	"context"
	"time"

	"github.com/beacon-telemetry/beacon-go-sdk/internal/xerrors"
	"github.com/beacon-telemetry/beacon-go-sdk/timeunit"
	"github.com/beacon-telemetry/beacon-go-sdk/trace"
)

// Timespan measures how long an operation takes. Start and Stop capture
// their timestamp synchronously, at the moment of the call, so queueing
// latency never leaks into the measured duration; the state transition
// itself runs later, as a dispatch task.
//
// The first stopped value wins per destination: once a record is
// persisted for a ping, later values are discarded, not merged.
type Timespan struct {
	meta CommonMetadata
	unit timeunit.Unit
	env  Env

	// startTime is process-local and never persisted. Zero means Idle.
	// It is read and written only from dispatch tasks.
	startTime time.Time
}

func NewTimespan(env Env, meta CommonMetadata, unit timeunit.Unit) *Timespan {
	return &Timespan{
		meta: meta,
		unit: unit,
		env:  env.withDefaults(),
	}
}

// Start marks the beginning of the measured operation. If the timespan
// is already running the original start time is preserved and an
// "already running" condition is reported.
func (t *Timespan) Start() {
	start := t.env.Clock.Now()
	onDone := t.traceStart()

	t.env.Queue.Submit("timespan.start", func(context.Context) {
		var err error
		defer func() { onDone(err) }()

		if !t.shouldRecord() {
			return
		}

		if !t.startTime.IsZero() {
			err = ErrAlreadyRunning

			return
		}

		t.startTime = start
	})
}

// Stop marks the end of the measured operation and persists the elapsed
// time into every ping of the metric, keeping any value recorded
// earlier. Stopping an idle timespan reports a "not running" condition
// and records nothing.
func (t *Timespan) Stop() {
	stop := t.env.Clock.Now()
	onDone := t.traceStop()

	t.env.Queue.Submit("timespan.stop", func(context.Context) {
		var (
			elapsed time.Duration
			err     error
		)
		defer func() { onDone(elapsed, err) }()

		if !t.shouldRecord() {
			// A span crossing a disabled period must never be recorded.
			t.startTime = time.Time{}

			return
		}

		if t.startTime.IsZero() {
			err = ErrNotRunning

			return
		}

		elapsed = stop.Sub(t.startTime)
		t.startTime = time.Time{}

		if elapsed < 0 {
			err = ErrNegativeElapsed

			return
		}

		err = t.record(elapsed)
	})
}

// Cancel abandons a running measurement. It never reports a condition,
// whatever the current state.
func (t *Timespan) Cancel() {
	onDone := t.traceCancel()

	t.env.Queue.Submit("timespan.cancel", func(context.Context) {
		t.startTime = time.Time{}
		onDone()
	})
}

// record persists elapsed under every ping of the metric, first value
// wins. The merge function passed to the store is pure: it decides the
// new stored value from the current one, nothing else.
func (t *Timespan) record(elapsed time.Duration) error {
	fresh := durationRecord{
		Unit:   t.unit,
		Millis: elapsed.Milliseconds(),
	}

	var conflict bool
	for _, ping := range t.meta.Pings {
		t.env.Store.Transform(t.meta.Identity(), ping, func(cur interface{}, ok bool) interface{} {
			if ok {
				if _, valid := validateRecord(cur); valid {
					conflict = true

					return cur
				}
			}
			// Absent or malformed: overwrite with the fresh record.
			return fresh
		})
	}
	if conflict {
		return ErrAlreadyRecorded
	}

	return nil
}

// TestGetValue reads back the recorded payload, converted to the
// metric's unit, for the given ping (the metric's first ping when
// empty). It waits until every task submitted ahead of it has run and
// never mutates metric state. Intended for tests.
func (t *Timespan) TestGetValue(ctx context.Context, ping string) (value int64, err error) {
	if ping == "" {
		if len(t.meta.Pings) == 0 {
			return 0, xerrors.WithStackTrace(ErrNoValue)
		}
		ping = t.meta.Pings[0]
	}

	onDone := t.traceGet(ctx, ping)
	defer func() { onDone(value, err) }()

	var (
		raw    interface{}
		stored bool
	)
	if err = t.env.Queue.SubmitWait(ctx, "timespan.get", func(context.Context) {
		raw, stored = t.env.Store.Get(ping, t.meta.Identity())
	}); err != nil {
		return 0, err
	}

	if !stored {
		return 0, xerrors.WithStackTrace(ErrNoValue)
	}
	rec, valid := validateRecord(raw)
	if !valid {
		// Malformed stored values read back as absent.
		return 0, xerrors.WithStackTrace(ErrNoValue)
	}

	return payload(rec), nil
}

func (t *Timespan) shouldRecord() bool {
	return !t.meta.Disabled && t.env.Enabled()
}

func (t *Timespan) traceStart() func(error) {
	var onDone func(trace.MetricsTimespanStartDoneInfo)
	if onStart := t.env.Trace.OnTimespanStart; onStart != nil {
		onDone = onStart(trace.MetricsTimespanStartStartInfo{
			Metric: t.meta.Identity(),
		})
	}

	return func(err error) {
		if onDone != nil {
			onDone(trace.MetricsTimespanStartDoneInfo{Error: err})
		}
	}
}

func (t *Timespan) traceStop() func(time.Duration, error) {
	var onDone func(trace.MetricsTimespanStopDoneInfo)
	if onStart := t.env.Trace.OnTimespanStop; onStart != nil {
		onDone = onStart(trace.MetricsTimespanStopStartInfo{
			Metric: t.meta.Identity(),
		})
	}

	return func(elapsed time.Duration, err error) {
		if onDone != nil {
			onDone(trace.MetricsTimespanStopDoneInfo{
				Elapsed: elapsed,
				Error:   err,
			})
		}
	}
}

func (t *Timespan) traceCancel() func() {
	var onDone func(trace.MetricsTimespanCancelDoneInfo)
	if onStart := t.env.Trace.OnTimespanCancel; onStart != nil {
		onDone = onStart(trace.MetricsTimespanCancelStartInfo{
			Metric: t.meta.Identity(),
		})
	}

	return func() {
		if onDone != nil {
			onDone(trace.MetricsTimespanCancelDoneInfo{})
		}
	}
}

func (t *Timespan) traceGet(ctx context.Context, ping string) func(int64, error) {
	tr := t.env.Trace.Compose(trace.ContextMetrics(ctx))

	var onDone func(trace.MetricsTimespanGetDoneInfo)
	if onStart := tr.OnTimespanGet; onStart != nil {
		onDone = onStart(trace.MetricsTimespanGetStartInfo{
			Metric: t.meta.Identity(),
			Ping:   ping,
		})
	}

	return func(value int64, err error) {
		if onDone != nil {
			onDone(trace.MetricsTimespanGetDoneInfo{
				Value: value,
				Error: err,
			})
		}
	}
}
