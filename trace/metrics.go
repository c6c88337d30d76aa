package trace

import (
	"time"
)

type (
	// Metrics specifies trace hooks for recording operations of metric
	// types. Every mutating operation reports in two phases: the start
	// hook fires when the operation is submitted, the returned done
	// hook fires when the queued task has run. DoneInfo.Error carries
	// the non-fatal condition of the operation, if any.
	Metrics struct {
		OnTimespanStart  func(MetricsTimespanStartStartInfo) func(MetricsTimespanStartDoneInfo)
		OnTimespanStop   func(MetricsTimespanStopStartInfo) func(MetricsTimespanStopDoneInfo)
		OnTimespanCancel func(MetricsTimespanCancelStartInfo) func(MetricsTimespanCancelDoneInfo)
		OnTimespanGet    func(MetricsTimespanGetStartInfo) func(MetricsTimespanGetDoneInfo)

		OnDispatcherClose func(MetricsDispatcherCloseStartInfo) func(MetricsDispatcherCloseDoneInfo)
	}

	MetricsTimespanStartStartInfo struct {
		Metric string
	}
	MetricsTimespanStartDoneInfo struct {
		Error error
	}

	MetricsTimespanStopStartInfo struct {
		Metric string
	}
	MetricsTimespanStopDoneInfo struct {
		Elapsed time.Duration
		Error   error
	}

	MetricsTimespanCancelStartInfo struct {
		Metric string
	}
	MetricsTimespanCancelDoneInfo struct{}

	MetricsTimespanGetStartInfo struct {
		Metric string
		Ping   string
	}
	MetricsTimespanGetDoneInfo struct {
		Value int64
		Error error
	}

	MetricsDispatcherCloseStartInfo struct{}
	MetricsDispatcherCloseDoneInfo  struct {
		Error error
	}
)

// Compose returns a new Metrics which has all of the events of t and x.
// For each event the t hook fires first, then the x hook; done hooks
// fire in the same order.
func (t Metrics) Compose(x Metrics) (ret Metrics) {
	ret.OnTimespanStart = composeHook(t.OnTimespanStart, x.OnTimespanStart)
	ret.OnTimespanStop = composeHook(t.OnTimespanStop, x.OnTimespanStop)
	ret.OnTimespanCancel = composeHook(t.OnTimespanCancel, x.OnTimespanCancel)
	ret.OnTimespanGet = composeHook(t.OnTimespanGet, x.OnTimespanGet)
	ret.OnDispatcherClose = composeHook(t.OnDispatcherClose, x.OnDispatcherClose)

	return ret
}

func composeHook[Start, Done any](a, b func(Start) func(Done)) func(Start) func(Done) {
	switch {
	case a == nil:
		return b
	case b == nil:
		return a
	default:
		return func(info Start) func(Done) {
			doneA := a(info)
			doneB := b(info)
			switch {
			case doneA == nil:
				return doneB
			case doneB == nil:
				return doneA
			default:
				return func(info Done) {
					doneA(info)
					doneB(info)
				}
			}
		}
	}
}
