package history

import (
	"context"
	"io"
	"log/slog"
	"path/filepath"
	"testing"
)

func testRecorder(t *testing.T) *Recorder {
	t.Helper()
	path := filepath.Join(t.TempDir(), "history.db")
	return New(path, slog.New(slog.NewTextHandler(io.Discard, nil)))
}

func TestFunc_RecordAndRecent(t *testing.T) {
	r := testRecorder(t)
	ctx := context.Background()

	entries := []Entry{
		{Timestamp: 100, RunID: "run-1", Iface: "lte", State: "1", Outcome: "ok"},
		{Timestamp: 200, RunID: "run-2", Iface: "lte", State: "0", Outcome: "ok"},
		{Timestamp: 300, RunID: "run-3", Iface: "wan", State: "1", Outcome: "commit failed"},
	}
	for _, e := range entries {
		if err := r.Record(ctx, e); err != nil {
			t.Fatalf("Record failed: %v", err)
		}
	}

	got, err := r.Recent(ctx, 2)
	if err != nil {
		t.Fatalf("Recent failed: %v", err)
	}
	if len(got) != 2 {
		t.Fatalf("Recent returned %d rows; want 2", len(got))
	}
	// newest first
	if got[0].RunID != "run-3" || got[1].RunID != "run-2" {
		t.Errorf("order = %s, %s; want run-3, run-2", got[0].RunID, got[1].RunID)
	}
	if got[0].Outcome != "commit failed" {
		t.Errorf("outcome = %q; want %q", got[0].Outcome, "commit failed")
	}
}

func TestFunc_Recent_Empty(t *testing.T) {
	r := testRecorder(t)

	got, err := r.Recent(context.Background(), 10)
	if err != nil {
		t.Fatalf("Recent failed: %v", err)
	}
	if len(got) != 0 {
		t.Errorf("Recent returned %d rows on a fresh db; want 0", len(got))
	}
}
