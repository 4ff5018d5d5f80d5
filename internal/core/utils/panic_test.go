package utils

import (
	"context"
	"testing"
)

func TestFunc_CatchPanicWithCancel(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())

	func() {
		defer CatchPanicWithCancel(cancel)
		panic("boom")
	}()

	select {
	case <-ctx.Done():
	default:
		t.Error("CatchPanicWithCancel did not cancel the context")
	}
}
