package vitals

import (
	"encoding/json"
	"reflect"
	"testing"
	"time"
)

func seededState() *State {
	ts := time.Date(2026, 3, 14, 9, 26, 53, 0, time.UTC)
	s := NewState()
	s.HTTP = HTTPAggregate{Total: 3, Errors: 1, Durations: []float64{12.5, 1500, 3}}
	s.GC = []GCEvent{{Kind: GCKindAutomatic, DurationMS: 4.2, Timestamp: ts}}
	s.EventLoop = []EventLoopSample{{MeanMS: 1.5, MaxMS: 9, MinMS: 0.2, P50MS: 1, P99MS: 8, Timestamp: ts}}
	s.Process = []ProcessSnapshot{{
		Memory:          ProcessMemory{Resident: 1048576, HeapTotal: 2048, HeapUsed: 1024, Stack: 512, OffHeap: 100},
		CPUUserMicros:   2_500_000,
		CPUSystemMicros: 400_000,
		Timestamp:       ts,
	}}
	s.Host = []HostSnapshot{{
		Load1: 0.5, Load5: 0.4, Load15: 0.3,
		FreeBytes: 1073741824, TotalBytes: 4 * 1073741824,
		UptimeSec: 86400, Cores: 8, Timestamp: ts,
	}}
	s.Handles = []HandleSample{{Count: 12, Timestamp: ts}}
	s.Faults = FaultCounts{UncaughtPanics: 1}
	s.Usage.PageViews = 2
	s.Usage.CustomEvents.Inc("search")
	return s
}

func TestNewReport_Humanizes(t *testing.T) {
	rep := NewReport(seededState())

	wantDur := []string{"12.50 ms", "1.50 s", "3.00 ms"}
	if !reflect.DeepEqual(rep.Metrics.HTTP.Durations, wantDur) {
		t.Errorf("HTTP.Durations = %v, want %v", rep.Metrics.HTTP.Durations, wantDur)
	}
	if rep.Metrics.GC[0].Kind != "automatic" || rep.Metrics.GC[0].Duration != "4.20 ms" {
		t.Errorf("GC[0] = %+v", rep.Metrics.GC[0])
	}
	if rep.Metrics.Process[0].Memory.Resident != "1.00 MB" {
		t.Errorf("Resident = %q, want %q", rep.Metrics.Process[0].Memory.Resident, "1.00 MB")
	}
	if rep.Metrics.Process[0].CPUUser != "2.50 s" {
		t.Errorf("CPUUser = %q, want %q", rep.Metrics.Process[0].CPUUser, "2.50 s")
	}
	if rep.Metrics.Host[0].Load != "0.50, 0.40, 0.30" {
		t.Errorf("Load = %q", rep.Metrics.Host[0].Load)
	}
	if rep.Metrics.Host[0].Total != "4.00 GB" {
		t.Errorf("Total = %q, want %q", rep.Metrics.Host[0].Total, "4.00 GB")
	}
	if rep.Metrics.Host[0].Uptime != "86400 s" {
		t.Errorf("Uptime = %q, want %q", rep.Metrics.Host[0].Uptime, "86400 s")
	}
	if rep.Summary.Faults.Status != StatusFaults {
		t.Errorf("Faults.Status = %q, want %q", rep.Summary.Faults.Status, StatusFaults)
	}
	if rep.Summary.Usage.Status != StatusActivity {
		t.Errorf("Usage.Status = %q, want %q", rep.Summary.Usage.Status, StatusActivity)
	}
}

func TestNewReport_DoesNotMutateState(t *testing.T) {
	s := seededState()
	before := s.Clone()

	_ = NewReport(s)

	if !reflect.DeepEqual(s, before) {
		t.Error("NewReport mutated the state")
	}
}

func TestNewReport_Idempotent(t *testing.T) {
	s := seededState()
	a := NewReport(s)
	b := NewReport(s)
	if !reflect.DeepEqual(a, b) {
		t.Error("two reports over the same state differ")
	}
}

func TestReport_JSONShape(t *testing.T) {
	data, err := json.Marshal(NewReport(seededState()))
	if err != nil {
		t.Fatalf("Marshal() error = %v", err)
	}

	var top map[string]json.RawMessage
	if err := json.Unmarshal(data, &top); err != nil {
		t.Fatalf("Unmarshal() error = %v", err)
	}
	if len(top) != 2 {
		t.Errorf("report has %d top-level fields, want 2", len(top))
	}
	for _, field := range []string{"metrics", "summary"} {
		if _, ok := top[field]; !ok {
			t.Errorf("missing top-level field %q", field)
		}
	}
}
