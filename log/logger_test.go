package log

import (
	"bytes"
	"context"
	"errors"
	"testing"
	"time"

	"github.com/jonboulle/clockwork"
	"github.com/stretchr/testify/require"
)

func TestDefaultLoggerFormat(t *testing.T) {
	clock := clockwork.NewFakeClockAt(time.Date(2024, 3, 5, 12, 0, 0, 0, time.UTC))
	buf := &bytes.Buffer{}
	l := Default(buf, WithMinLevel(TRACE), WithClock(clock))

	l.Log(with(context.Background(), INFO, "metrics", "timespan"), "started",
		String("metric", "browser.startup"),
	)

	require.Equal(t,
		"2024-03-05 12:00:00.000 INFO 'metrics.timespan' => started {\"metric\":\"browser.startup\"}\n",
		buf.String(),
	)
}

func TestDefaultLoggerMinLevel(t *testing.T) {
	buf := &bytes.Buffer{}
	l := Default(buf, WithMinLevel(WARN))

	l.Log(WithLevel(context.Background(), INFO), "dropped")
	require.Zero(t, buf.Len())

	l.Log(WithLevel(context.Background(), ERROR), "kept", Error(errors.New("boom")))
	require.Contains(t, buf.String(), "ERROR")
	require.Contains(t, buf.String(), `"error":"boom"`)
}

func TestWithNamesDoesNotMutateParent(t *testing.T) {
	ctx := WithNames(context.Background(), "a")
	child1 := WithNames(ctx, "b")
	child2 := WithNames(ctx, "c")

	require.Equal(t, []string{"a", "b"}, NamesFromContext(child1))
	require.Equal(t, []string{"a", "c"}, NamesFromContext(child2))
	require.Equal(t, []string{"a"}, NamesFromContext(ctx))
}
