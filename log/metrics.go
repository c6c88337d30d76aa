package log

import (
	"context"
	"time"

	"github.com/beacon-telemetry/beacon-go-sdk/trace"
)

// Metrics returns trace.Metrics with logging events from details
func Metrics(l Logger, d trace.Detailer) (t trace.Metrics) {
	t.OnTimespanStart = func(
		info trace.MetricsTimespanStartStartInfo,
	) func(
		trace.MetricsTimespanStartDoneInfo,
	) {
		if d.Details()&trace.MetricsTimespanEvents == 0 {
			return nil
		}
		ctx := with(context.Background(), TRACE, "metrics", "timespan")
		metric := info.Metric
		l.Log(ctx, "start",
			String("metric", metric),
		)
		start := time.Now()

		return func(info trace.MetricsTimespanStartDoneInfo) {
			if info.Error == nil {
				l.Log(ctx, "started",
					String("metric", metric),
					latency(start),
				)
			} else {
				l.Log(WithLevel(ctx, WARN), "start discarded",
					Error(info.Error),
					String("metric", metric),
					latency(start),
				)
			}
		}
	}
	t.OnTimespanStop = func(
		info trace.MetricsTimespanStopStartInfo,
	) func(
		trace.MetricsTimespanStopDoneInfo,
	) {
		if d.Details()&trace.MetricsTimespanEvents == 0 {
			return nil
		}
		ctx := with(context.Background(), TRACE, "metrics", "timespan")
		metric := info.Metric
		l.Log(ctx, "stop",
			String("metric", metric),
		)
		start := time.Now()

		return func(info trace.MetricsTimespanStopDoneInfo) {
			if info.Error == nil {
				l.Log(ctx, "stopped",
					String("metric", metric),
					Duration("elapsed", info.Elapsed),
					latency(start),
				)
			} else {
				l.Log(WithLevel(ctx, WARN), "stop discarded",
					Error(info.Error),
					String("metric", metric),
					latency(start),
				)
			}
		}
	}
	t.OnTimespanCancel = func(
		info trace.MetricsTimespanCancelStartInfo,
	) func(
		trace.MetricsTimespanCancelDoneInfo,
	) {
		if d.Details()&trace.MetricsTimespanEvents == 0 {
			return nil
		}
		ctx := with(context.Background(), TRACE, "metrics", "timespan")
		metric := info.Metric
		l.Log(ctx, "cancel",
			String("metric", metric),
		)

		return func(trace.MetricsTimespanCancelDoneInfo) {
			l.Log(ctx, "cancelled",
				String("metric", metric),
			)
		}
	}
	t.OnTimespanGet = func(
		info trace.MetricsTimespanGetStartInfo,
	) func(
		trace.MetricsTimespanGetDoneInfo,
	) {
		if d.Details()&trace.MetricsReadEvents == 0 {
			return nil
		}
		ctx := with(context.Background(), TRACE, "metrics", "timespan")
		metric := info.Metric
		ping := info.Ping
		start := time.Now()

		return func(info trace.MetricsTimespanGetDoneInfo) {
			if info.Error == nil {
				l.Log(ctx, "get",
					String("metric", metric),
					String("ping", ping),
					Int64("value", info.Value),
					latency(start),
				)
			} else {
				l.Log(WithLevel(ctx, DEBUG), "get failed",
					Error(info.Error),
					String("metric", metric),
					String("ping", ping),
					latency(start),
				)
			}
		}
	}
	t.OnDispatcherClose = func(
		trace.MetricsDispatcherCloseStartInfo,
	) func(
		trace.MetricsDispatcherCloseDoneInfo,
	) {
		if d.Details()&trace.MetricsDispatcherEvents == 0 {
			return nil
		}
		ctx := with(context.Background(), DEBUG, "metrics", "dispatcher")
		l.Log(ctx, "close")
		start := time.Now()

		return func(info trace.MetricsDispatcherCloseDoneInfo) {
			if info.Error == nil {
				l.Log(ctx, "closed",
					latency(start),
				)
			} else {
				l.Log(WithLevel(ctx, WARN), "close failed",
					Error(info.Error),
					latency(start),
				)
			}
		}
	}

	return t
}
