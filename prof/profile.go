// Package prof is a minimal timing tracker for the verification commands:
// each phase logs its duration with Track, and mains print the snapshot at
// the end of the run.
package prof

import (
	"fmt"
	"io"
	"sync"
	"time"
)

// Entry represents a single timing measurement.
type Entry struct {
	Label string
	Dur   time.Duration
}

var (
	mu     sync.Mutex
	record []Entry
)

// Track logs the duration since start with the given name.
func Track(start time.Time, name string) {
	elapsed := time.Since(start)
	mu.Lock()
	record = append(record, Entry{Label: name, Dur: elapsed})
	mu.Unlock()
}

// SnapshotAndReset returns the collected timing entries and clears them.
func SnapshotAndReset() []Entry {
	mu.Lock()
	defer mu.Unlock()
	out := make([]Entry, len(record))
	copy(out, record)
	record = nil
	return out
}

// Report writes the collected timings to w and clears them.
func Report(w io.Writer) {
	entries := SnapshotAndReset()
	if len(entries) == 0 {
		return
	}
	fmt.Fprintln(w, "Timings:")
	for _, e := range entries {
		fmt.Fprintf(w, "  %-28s %12s\n", e.Label, e.Dur.Round(time.Microsecond))
	}
}
