package xtest

import (
	"context"
	"runtime/pprof"
	"testing"
	"time"
)

const commonWaitTimeout = time.Second

func Context(t testing.TB) context.Context {
	ctx, cancel := context.WithCancel(context.Background())
	ctx = pprof.WithLabels(ctx, pprof.Labels("test", t.Name()))
	pprof.SetGoroutineLabels(ctx)

	t.Cleanup(func() {
		pprof.SetGoroutineLabels(ctx)
		cancel()
	})

	return ctx
}

func ContextWithCommonTimeout(ctx context.Context, t testing.TB) context.Context {
	if ctx.Done() == nil {
		t.Fatal("Use context with timeout only with context, cancelled on finish test, for example xtest.Context")
	}

	ctx, ctxCancel := context.WithTimeout(ctx, commonWaitTimeout)
	_ = ctxCancel // it is ok to leak the cancel for a short time: the parent context cancels it

	return ctx
}
