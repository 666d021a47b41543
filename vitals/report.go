package vitals

// Report is the snapshot returned to callers. Its two top-level field names
// are a stable contract for downstream consumers.
type Report struct {
	Metrics Metrics `json:"metrics"`
	Summary Summary `json:"summary"`
}

// Metrics mirrors State with presentation-only transforms applied:
// durations, byte counts, load averages and uptimes are rendered as
// humanized strings; counts stay numeric.
type Metrics struct {
	HTTP      HTTPMetrics     `json:"http"`
	GC        []GCEventView   `json:"gc"`
	EventLoop []EventLoopView `json:"eventLoop"`
	Process   []ProcessView   `json:"process"`
	Host      []HostView      `json:"host"`
	Handles   []HandleSample  `json:"handles"`
	Faults    FaultCounts     `json:"faults"`
	Usage     UsageView       `json:"usage"`
}

// HTTPMetrics is the humanized view of HTTPAggregate.
type HTTPMetrics struct {
	Total     uint64   `json:"total"`
	Errors    uint64   `json:"errors"`
	Durations []string `json:"durations"`
}

// GCEventView is the humanized view of a GCEvent.
type GCEventView struct {
	Kind      string `json:"kind"`
	Duration  string `json:"duration"`
	Timestamp string `json:"timestamp"`
}

// EventLoopView is the humanized view of an EventLoopSample.
type EventLoopView struct {
	Mean      string `json:"mean"`
	Max       string `json:"max"`
	Min       string `json:"min"`
	P50       string `json:"p50"`
	P99       string `json:"p99"`
	Timestamp string `json:"timestamp"`
}

// MemoryView is the humanized view of a ProcessMemory breakdown.
type MemoryView struct {
	Resident  string `json:"resident"`
	HeapTotal string `json:"heapTotal"`
	HeapUsed  string `json:"heapUsed"`
	Stack     string `json:"stack"`
	OffHeap   string `json:"offHeap"`
}

// ProcessView is the humanized view of a ProcessSnapshot. CPU times are
// cumulative since process start.
type ProcessView struct {
	Memory    MemoryView `json:"memory"`
	CPUUser   string     `json:"cpuUser"`
	CPUSystem string     `json:"cpuSystem"`
	Timestamp string     `json:"timestamp"`
}

// HostView is the humanized view of a HostSnapshot.
type HostView struct {
	Load      string `json:"load"`
	Free      string `json:"free"`
	Total     string `json:"total"`
	Uptime    string `json:"uptime"`
	Cores     int    `json:"cores"`
	Timestamp string `json:"timestamp"`
}

// UsageView is the humanized view of UsageMetrics.
type UsageView struct {
	ActiveUsers      int64       `json:"activeUsers"`
	SessionDurations []string    `json:"sessionDurations"`
	PageViews        uint64      `json:"pageViews"`
	CustomEvents     EventCounts `json:"customEvents"`
}

// NewReport builds the caller-facing snapshot from a State. The State is
// only read, never mutated; callers that hold a live State should pass a
// Clone so later mutation cannot race with report construction.
func NewReport(s *State) Report {
	return Report{
		Metrics: formatMetrics(s),
		Summary: Summarize(s),
	}
}

func formatMetrics(s *State) Metrics {
	m := Metrics{
		HTTP: HTTPMetrics{
			Total:     s.HTTP.Total,
			Errors:    s.HTTP.Errors,
			Durations: formatDurations(s.HTTP.Durations),
		},
		Handles: append([]HandleSample(nil), s.Handles...),
		Faults:  s.Faults,
		Usage: UsageView{
			ActiveUsers:      s.Usage.ActiveUsers,
			SessionDurations: formatDurations(s.Usage.SessionDurations),
			PageViews:        s.Usage.PageViews,
			CustomEvents:     s.Usage.CustomEvents.Clone(),
		},
	}

	m.GC = make([]GCEventView, len(s.GC))
	for i, e := range s.GC {
		m.GC[i] = GCEventView{
			Kind:      e.Kind.String(),
			Duration:  FormatMS(e.DurationMS),
			Timestamp: e.Timestamp.UTC().Format(timeLayout),
		}
	}

	m.EventLoop = make([]EventLoopView, len(s.EventLoop))
	for i, sample := range s.EventLoop {
		m.EventLoop[i] = EventLoopView{
			Mean:      FormatMS(sample.MeanMS),
			Max:       FormatMS(sample.MaxMS),
			Min:       FormatMS(sample.MinMS),
			P50:       FormatMS(sample.P50MS),
			P99:       FormatMS(sample.P99MS),
			Timestamp: sample.Timestamp.UTC().Format(timeLayout),
		}
	}

	m.Process = make([]ProcessView, len(s.Process))
	for i, p := range s.Process {
		m.Process[i] = ProcessView{
			Memory: MemoryView{
				Resident:  FormatBytes(p.Memory.Resident),
				HeapTotal: FormatBytes(p.Memory.HeapTotal),
				HeapUsed:  FormatBytes(p.Memory.HeapUsed),
				Stack:     FormatBytes(p.Memory.Stack),
				OffHeap:   FormatBytes(p.Memory.OffHeap),
			},
			CPUUser:   FormatMS(float64(p.CPUUserMicros) / 1000),
			CPUSystem: FormatMS(float64(p.CPUSystemMicros) / 1000),
			Timestamp: p.Timestamp.UTC().Format(timeLayout),
		}
	}

	m.Host = make([]HostView, len(s.Host))
	for i, h := range s.Host {
		m.Host[i] = HostView{
			Load:      FormatLoad(h.Load1, h.Load5, h.Load15),
			Free:      FormatBytes(h.FreeBytes),
			Total:     FormatBytes(h.TotalBytes),
			Uptime:    FormatUptime(h.UptimeSec),
			Cores:     h.Cores,
			Timestamp: h.Timestamp.UTC().Format(timeLayout),
		}
	}

	return m
}

const timeLayout = "2006-01-02T15:04:05.000Z07:00"

func formatDurations(ms []float64) []string {
	out := make([]string, len(ms))
	for i, v := range ms {
		out[i] = FormatMS(v)
	}
	return out
}
