package xtest

import (
	"testing"
	"time"
)

// WaitChannelClosed waits while the channel closes or a timeout fires.
func WaitChannelClosed(t testing.TB, ch <-chan struct{}) {
	t.Helper()

	select {
	case <-time.After(commonWaitTimeout):
		t.Fatal("timeout while waiting for the channel close")
	case <-ch:
		// pass
	}
}

// SpinWaitCondition waits while cond returns true or a timeout fires.
// cond must be thread-safe against whatever mutates its inputs.
func SpinWaitCondition(t testing.TB, cond func() bool) {
	t.Helper()

	start := time.Now()
	for !cond() {
		if time.Since(start) > commonWaitTimeout {
			t.Fatal("timeout while waiting for the condition")
		}
		time.Sleep(time.Millisecond)
	}
}
