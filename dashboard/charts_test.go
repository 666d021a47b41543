package dashboard

import (
	"bytes"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/vitalsign/vitalsign/vitals"
)

func seededState() *vitals.State {
	now := time.Date(2026, 3, 14, 9, 26, 53, 0, time.UTC)

	s := vitals.NewState()
	s.HTTP.Total = 3
	s.HTTP.Errors = 1
	s.HTTP.Durations = []float64{12.5, 80.1, 43.9}
	s.GC = []vitals.GCEvent{
		{Kind: vitals.GCKindAutomatic, DurationMS: 1.2, Timestamp: now},
		{Kind: vitals.GCKindForced, DurationMS: 4.8, Timestamp: now.Add(time.Second)},
	}
	s.EventLoop = []vitals.EventLoopSample{
		{MeanMS: 0.4, MaxMS: 2.0, MinMS: 0.1, P50MS: 0.3, P99MS: 1.9, Timestamp: now},
	}
	s.Process = []vitals.ProcessSnapshot{
		{
			Memory:    vitals.ProcessMemory{Resident: 64 << 20, HeapTotal: 32 << 20, HeapUsed: 20 << 20, Stack: 1 << 20, OffHeap: 2 << 20},
			Timestamp: now,
		},
	}
	s.Host = []vitals.HostSnapshot{
		{Load1: 0.42, Load5: 0.3, Load15: 0.2, FreeBytes: 1 << 30, TotalBytes: 4 << 30, UptimeSec: 3600, Cores: 8, Timestamp: now},
	}
	return s
}

func TestRender(t *testing.T) {
	var buf bytes.Buffer
	if err := Render(seededState(), &buf); err != nil {
		t.Fatalf("Render() error = %v", err)
	}

	html := buf.String()
	if html == "" {
		t.Fatal("Render() produced empty output")
	}
	for _, want := range []string{"Request durations", "GC pauses", "Scheduling lag", "Process memory", "Host load (1m)"} {
		if !strings.Contains(html, want) {
			t.Errorf("output missing chart title %q", want)
		}
	}
}

func TestRender_EmptyState(t *testing.T) {
	var buf bytes.Buffer
	if err := Render(vitals.NewState(), &buf); err != nil {
		t.Fatalf("Render() on empty state error = %v", err)
	}
	if buf.Len() == 0 {
		t.Fatal("Render() produced empty output")
	}
}

type fixedSnapshotter struct {
	state *vitals.State
}

func (f fixedSnapshotter) Snapshot() *vitals.State { return f.state }

func TestHandler(t *testing.T) {
	handler := Handler(fixedSnapshotter{state: seededState()})

	req := httptest.NewRequest("GET", "/dashboard", nil)
	rec := httptest.NewRecorder()
	handler(rec, req)

	if rec.Code != 200 {
		t.Fatalf("status = %d, want 200", rec.Code)
	}
	if got := rec.Header().Get("Content-Type"); !strings.HasPrefix(got, "text/html") {
		t.Errorf("content type = %q, want text/html", got)
	}
	if !strings.Contains(rec.Body.String(), "vitalsign") {
		t.Error("page title missing from response")
	}
}
