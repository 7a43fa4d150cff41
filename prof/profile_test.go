package prof

import (
	"strings"
	"testing"
	"time"
)

func TestTrackAndReport(t *testing.T) {
	SnapshotAndReset()
	Track(time.Now().Add(-time.Millisecond), "phase one")
	Track(time.Now(), "phase two")

	var sb strings.Builder
	Report(&sb)
	out := sb.String()
	if !strings.Contains(out, "Timings:") {
		t.Fatalf("report missing header: %q", out)
	}
	if !strings.Contains(out, "phase one") || !strings.Contains(out, "phase two") {
		t.Fatalf("report missing entries: %q", out)
	}

	if entries := SnapshotAndReset(); len(entries) != 0 {
		t.Fatalf("report did not clear entries: %d left", len(entries))
	}
	sb.Reset()
	Report(&sb)
	if sb.Len() != 0 {
		t.Fatalf("empty report produced output: %q", sb.String())
	}
}
