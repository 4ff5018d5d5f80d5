package utils

import (
	"context"
	"testing"
	"time"
)

func TestFunc_Sleep_CancelledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	start := time.Now()
	err := Sleep(ctx, 10*time.Second)
	if err == nil {
		t.Error("Sleep returned nil on a cancelled context")
	}
	if time.Since(start) > time.Second {
		t.Error("Sleep blocked despite the cancelled context")
	}
}

func TestFunc_Sleep_Elapses(t *testing.T) {
	if err := Sleep(context.Background(), time.Millisecond); err != nil {
		t.Errorf("Sleep returned %v; want nil", err)
	}
}
