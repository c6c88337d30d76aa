package trace

import "context"

type metricsTraceContextKey struct{}

// WithMetrics returns context which has associated Metrics with it.
func WithMetrics(ctx context.Context, t Metrics) context.Context {
	return context.WithValue(ctx,
		metricsTraceContextKey{},
		ContextMetrics(ctx).Compose(t),
	)
}

// ContextMetrics returns Metrics associated with ctx.
// If there is no Metrics associated with ctx then zero value
// of Metrics is returned.
func ContextMetrics(ctx context.Context) Metrics {
	t, _ := ctx.Value(metricsTraceContextKey{}).(Metrics)

	return t
}
