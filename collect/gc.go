package collect

import (
	"runtime"
	"runtime/debug"

	"github.com/vitalsign/vitalsign/vitals"
)

// gcWatcher turns the runtime's buffered pause history into an append-only
// event sequence. The runtime keeps the most recent pauses, so cycles that
// completed before the collector attached are still delivered once, on the
// first poll.
type gcWatcher struct {
	lastNumGC  int64
	lastForced uint32
}

func (w *gcWatcher) poll() []vitals.GCEvent {
	var stats debug.GCStats
	debug.ReadGCStats(&stats)

	var mem runtime.MemStats
	runtime.ReadMemStats(&mem)

	return w.ingest(&stats, mem.NumForcedGC)
}

// ingest returns the cycles completed since the previous call, oldest
// first. forced is the cumulative forced-cycle count at observation time.
func (w *gcWatcher) ingest(stats *debug.GCStats, forced uint32) []vitals.GCEvent {
	newCycles := stats.NumGC - w.lastNumGC
	forcedDelta := forced - w.lastForced
	w.lastNumGC = stats.NumGC
	w.lastForced = forced

	if newCycles <= 0 {
		return nil
	}

	// The runtime buffers a bounded pause history; a burst larger than the
	// buffer loses its oldest cycles.
	n := int(newCycles)
	if n > len(stats.Pause) {
		n = len(stats.Pause)
	}
	if n > len(stats.PauseEnd) {
		n = len(stats.PauseEnd)
	}

	// Cycle kinds are classified per poll: the runtime reports forced
	// cycles only as a cumulative count, so a poll that saw both forced
	// and automatic cycles cannot attribute them individually.
	kind := vitals.GCKindAutomatic
	switch {
	case forcedDelta == 0:
	case int64(forcedDelta) >= newCycles:
		kind = vitals.GCKindForced
	default:
		kind = vitals.GCKindUnknown
	}

	events := make([]vitals.GCEvent, 0, n)
	for i := n - 1; i >= 0; i-- {
		events = append(events, vitals.GCEvent{
			Kind:       kind,
			DurationMS: float64(stats.Pause[i].Nanoseconds()) / 1e6,
			Timestamp:  stats.PauseEnd[i],
		})
	}
	return events
}
