package xtest

import (
	"sync"
	"testing"
	"time"
)

type TestFunc func(t testing.TB)

// TestManyTimes runs test in a loop for about a second, to shake out
// timing-dependent failures. The test runs at least once.
func TestManyTimes(t testing.TB, test TestFunc) {
	t.Helper()

	const testTimeout = time.Second

	start := time.Now()
	for {
		// run test, then check timeout for guarantee run test least once
		runTest(t, test)

		if time.Since(start) > testTimeout {
			return
		}
	}
}

func runTest(t testing.TB, test TestFunc) {
	t.Helper()

	tw := &testWrapper{
		TB: t,
	}

	defer tw.doCleanup()

	test(tw)
}

// testWrapper scopes Cleanup callbacks to one loop iteration instead of
// the whole test.
type testWrapper struct {
	testing.TB

	m       sync.Mutex
	cleanup []func()
}

func (tw *testWrapper) Cleanup(f func()) {
	tw.Helper()

	tw.m.Lock()
	defer tw.m.Unlock()

	tw.cleanup = append(tw.cleanup, f)
}

func (tw *testWrapper) doCleanup() {
	tw.Helper()

	tw.m.Lock()
	defer tw.m.Unlock()

	for i := len(tw.cleanup) - 1; i >= 0; i-- {
		tw.cleanup[i]()
	}
	tw.cleanup = nil
}
