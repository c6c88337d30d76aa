package trace

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestMetricsCompose(t *testing.T) {
	var order []string
	a := Metrics{
		OnTimespanStart: func(MetricsTimespanStartStartInfo) func(MetricsTimespanStartDoneInfo) {
			order = append(order, "a.start")

			return func(MetricsTimespanStartDoneInfo) {
				order = append(order, "a.done")
			}
		},
	}
	b := Metrics{
		OnTimespanStart: func(MetricsTimespanStartStartInfo) func(MetricsTimespanStartDoneInfo) {
			order = append(order, "b.start")

			return func(MetricsTimespanStartDoneInfo) {
				order = append(order, "b.done")
			}
		},
	}

	done := a.Compose(b).OnTimespanStart(MetricsTimespanStartStartInfo{Metric: "c.m"})
	done(MetricsTimespanStartDoneInfo{Error: errors.New("already running")})

	require.Equal(t, []string{"a.start", "b.start", "a.done", "b.done"}, order)
}

func TestMetricsComposeDispatcherClose(t *testing.T) {
	var order []string
	a := Metrics{
		OnDispatcherClose: func(MetricsDispatcherCloseStartInfo) func(MetricsDispatcherCloseDoneInfo) {
			order = append(order, "a.close")

			return func(MetricsDispatcherCloseDoneInfo) {
				order = append(order, "a.closed")
			}
		},
	}
	b := Metrics{
		OnDispatcherClose: func(MetricsDispatcherCloseStartInfo) func(MetricsDispatcherCloseDoneInfo) {
			order = append(order, "b.close")

			return func(MetricsDispatcherCloseDoneInfo) {
				order = append(order, "b.closed")
			}
		},
	}

	done := a.Compose(b).OnDispatcherClose(MetricsDispatcherCloseStartInfo{})
	done(MetricsDispatcherCloseDoneInfo{Error: errors.New("already closed")})

	require.Equal(t, []string{"a.close", "b.close", "a.closed", "b.closed"}, order)
}

func TestMetricsComposeNilHooks(t *testing.T) {
	var called bool
	a := Metrics{}
	b := Metrics{
		OnTimespanCancel: func(MetricsTimespanCancelStartInfo) func(MetricsTimespanCancelDoneInfo) {
			called = true

			return nil
		},
	}

	composed := a.Compose(b)
	require.Nil(t, composed.OnTimespanStop)
	done := composed.OnTimespanCancel(MetricsTimespanCancelStartInfo{Metric: "c.m"})
	require.Nil(t, done)
	require.True(t, called)
}

func TestContextMetrics(t *testing.T) {
	ctx := context.Background()
	require.Nil(t, ContextMetrics(ctx).OnTimespanGet)

	var calls int
	ctx = WithMetrics(ctx, Metrics{
		OnTimespanGet: func(MetricsTimespanGetStartInfo) func(MetricsTimespanGetDoneInfo) {
			calls++

			return nil
		},
	})
	ContextMetrics(ctx).OnTimespanGet(MetricsTimespanGetStartInfo{})
	require.Equal(t, 1, calls)
}
