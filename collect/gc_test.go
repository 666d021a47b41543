package collect

import (
	"runtime"
	"runtime/debug"
	"testing"
	"time"

	"github.com/vitalsign/vitalsign/vitals"
)

func gcStats(numGC int64, pauses ...time.Duration) *debug.GCStats {
	// Pause history is most-recent-first, matching debug.ReadGCStats.
	stats := &debug.GCStats{NumGC: numGC}
	end := time.Date(2026, 5, 1, 12, 0, 0, 0, time.UTC)
	for i, p := range pauses {
		stats.Pause = append(stats.Pause, p)
		stats.PauseEnd = append(stats.PauseEnd, end.Add(-time.Duration(i)*time.Second))
	}
	return stats
}

func TestGCWatcher_FirstPollDeliversHistory(t *testing.T) {
	var w gcWatcher

	events := w.ingest(gcStats(3, 3*time.Millisecond, 2*time.Millisecond, 1*time.Millisecond), 0)
	if len(events) != 3 {
		t.Fatalf("len(events) = %d, want 3", len(events))
	}

	// Oldest first.
	if events[0].DurationMS != 1 || events[2].DurationMS != 3 {
		t.Errorf("durations = %v, %v, %v, want 1, 2, 3",
			events[0].DurationMS, events[1].DurationMS, events[2].DurationMS)
	}
	if !events[0].Timestamp.Before(events[2].Timestamp) {
		t.Error("events are not in chronological order")
	}
	for _, e := range events {
		if e.Kind != vitals.GCKindAutomatic {
			t.Errorf("Kind = %v, want automatic", e.Kind)
		}
	}
}

func TestGCWatcher_OnlyNewCycles(t *testing.T) {
	var w gcWatcher

	w.ingest(gcStats(2, time.Millisecond, time.Millisecond), 0)
	events := w.ingest(gcStats(3, 5*time.Millisecond, time.Millisecond, time.Millisecond), 0)

	if len(events) != 1 {
		t.Fatalf("len(events) = %d, want 1", len(events))
	}
	if events[0].DurationMS != 5 {
		t.Errorf("DurationMS = %v, want 5", events[0].DurationMS)
	}
}

func TestGCWatcher_NoNewCycles(t *testing.T) {
	var w gcWatcher

	w.ingest(gcStats(2, time.Millisecond, time.Millisecond), 0)
	events := w.ingest(gcStats(2, time.Millisecond, time.Millisecond), 0)

	if len(events) != 0 {
		t.Errorf("len(events) = %d, want 0", len(events))
	}
}

func TestGCWatcher_ForcedClassification(t *testing.T) {
	var w gcWatcher
	w.ingest(gcStats(1, time.Millisecond), 0)

	forced := w.ingest(gcStats(2, time.Millisecond, time.Millisecond), 1)
	if forced[0].Kind != vitals.GCKindForced {
		t.Errorf("Kind = %v, want forced", forced[0].Kind)
	}

	// Mixed polls cannot attribute individual cycles.
	mixed := w.ingest(gcStats(5, time.Millisecond, time.Millisecond, time.Millisecond), 2)
	for _, e := range mixed {
		if e.Kind != vitals.GCKindUnknown {
			t.Errorf("Kind = %v, want unknown", e.Kind)
		}
	}
}

func TestGCWatcher_BurstBeyondBuffer(t *testing.T) {
	var w gcWatcher

	// Five cycles completed but only two pauses retained.
	events := w.ingest(gcStats(5, 2*time.Millisecond, 1*time.Millisecond), 0)
	if len(events) != 2 {
		t.Errorf("len(events) = %d, want 2", len(events))
	}
}

func TestGCWatcher_LivePoll(t *testing.T) {
	var w gcWatcher
	runtime.GC()

	events := w.poll()
	if len(events) == 0 {
		t.Fatal("no events after an explicit collection")
	}
	for _, e := range events {
		if e.DurationMS < 0 {
			t.Errorf("negative pause: %v", e.DurationMS)
		}
		if e.Timestamp.IsZero() {
			t.Error("zero timestamp on live event")
		}
	}
}
