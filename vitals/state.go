package vitals

import (
	"bytes"
	"encoding/json"
	"time"
)

// HTTPAggregate accumulates request outcomes observed by the timing hook.
// Durations are appended in completion order, which under concurrent
// requests is not necessarily arrival order.
type HTTPAggregate struct {
	Total     uint64    `json:"total"`
	Errors    uint64    `json:"errors"`
	Durations []float64 `json:"durations"` // milliseconds
}

// GCEvent records one garbage-collection pause reported by the runtime.
type GCEvent struct {
	Kind       GCKind    `json:"kind"`
	DurationMS float64   `json:"durationMs"`
	Timestamp  time.Time `json:"timestamp"`
}

// EventLoopSample is one windowed rollup of scheduler wake-up delay.
// Percentiles default to 0 when the window held no probes.
type EventLoopSample struct {
	MeanMS    float64   `json:"meanMs"`
	MaxMS     float64   `json:"maxMs"`
	MinMS     float64   `json:"minMs"`
	P50MS     float64   `json:"p50Ms"`
	P99MS     float64   `json:"p99Ms"`
	Timestamp time.Time `json:"timestamp"`
}

// ProcessMemory breaks down the process memory footprint. Resident comes
// from the OS; the remaining fields come from the Go runtime.
type ProcessMemory struct {
	Resident  uint64 `json:"resident"`
	HeapTotal uint64 `json:"heapTotal"`
	HeapUsed  uint64 `json:"heapUsed"`
	Stack     uint64 `json:"stack"`
	OffHeap   uint64 `json:"offHeap"`
}

// ProcessSnapshot is one periodic observation of process memory and
// cumulative CPU time. CPU counters are monotonically non-decreasing.
type ProcessSnapshot struct {
	Memory          ProcessMemory `json:"memory"`
	CPUUserMicros   uint64        `json:"cpuUserMicros"`
	CPUSystemMicros uint64        `json:"cpuSystemMicros"`
	Timestamp       time.Time     `json:"timestamp"`
}

// HostSnapshot is one periodic observation of host-level telemetry.
type HostSnapshot struct {
	Load1      float64   `json:"load1"`
	Load5      float64   `json:"load5"`
	Load15     float64   `json:"load15"`
	FreeBytes  uint64    `json:"freeBytes"`
	TotalBytes uint64    `json:"totalBytes"`
	UptimeSec  uint64    `json:"uptimeSec"`
	Cores      int       `json:"cores"`
	Timestamp  time.Time `json:"timestamp"`
}

// HandleSample is one periodic count of open descriptors. Environments
// without descriptor introspection report 0.
type HandleSample struct {
	Count     int       `json:"count"`
	Timestamp time.Time `json:"timestamp"`
}

// FaultCounts tracks application faults observed by the instrumentation.
// Both counters only ever increase during the process lifetime.
type FaultCounts struct {
	UncaughtPanics  uint64 `json:"uncaughtPanics"`
	UnhandledErrors uint64 `json:"unhandledErrors"`
}

// UsageMetrics holds application-reported usage counters. ActiveUsers and
// SessionDurations have no internal producer; the embedding application
// populates them.
type UsageMetrics struct {
	ActiveUsers      int64       `json:"activeUsers"`
	SessionDurations []float64   `json:"sessionDurations"` // milliseconds
	PageViews        uint64      `json:"pageViews"`
	CustomEvents     EventCounts `json:"customEvents"`
}

// EventCounts is a name-to-count mapping that preserves first-seen order.
type EventCounts struct {
	order  []string
	counts map[string]uint64
}

// Inc increments the count for name, creating it at zero on first sight.
func (e *EventCounts) Inc(name string) {
	if e.counts == nil {
		e.counts = make(map[string]uint64)
	}
	if _, ok := e.counts[name]; !ok {
		e.order = append(e.order, name)
	}
	e.counts[name]++
}

// Get returns the count for name, or 0 if it was never recorded.
func (e EventCounts) Get(name string) uint64 {
	return e.counts[name]
}

// Names returns the recorded event names in first-seen order.
func (e EventCounts) Names() []string {
	names := make([]string, len(e.order))
	copy(names, e.order)
	return names
}

// Len returns the number of distinct event names.
func (e EventCounts) Len() int {
	return len(e.order)
}

// Clone returns an independent copy.
func (e EventCounts) Clone() EventCounts {
	out := EventCounts{}
	if len(e.order) > 0 {
		out.order = make([]string, len(e.order))
		copy(out.order, e.order)
		out.counts = make(map[string]uint64, len(e.counts))
		for k, v := range e.counts {
			out.counts[k] = v
		}
	}
	return out
}

// MarshalJSON renders the mapping as a JSON object in first-seen order.
func (e EventCounts) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, name := range e.order {
		if i > 0 {
			buf.WriteByte(',')
		}
		key, err := json.Marshal(name)
		if err != nil {
			return nil, err
		}
		buf.Write(key)
		buf.WriteByte(':')
		val, err := json.Marshal(e.counts[name])
		if err != nil {
			return nil, err
		}
		buf.Write(val)
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}

// UnmarshalJSON restores the mapping. Object key order is taken as
// first-seen order.
func (e *EventCounts) UnmarshalJSON(data []byte) error {
	dec := json.NewDecoder(bytes.NewReader(data))
	tok, err := dec.Token()
	if err != nil {
		return err
	}
	if tok != json.Delim('{') {
		return &json.UnmarshalTypeError{Value: "non-object", Type: nil}
	}
	*e = EventCounts{}
	for dec.More() {
		keyTok, err := dec.Token()
		if err != nil {
			return err
		}
		name, _ := keyTok.(string)
		var count uint64
		if err := dec.Decode(&count); err != nil {
			return err
		}
		if e.counts == nil {
			e.counts = make(map[string]uint64)
		}
		if _, ok := e.counts[name]; !ok {
			e.order = append(e.order, name)
		}
		e.counts[name] = count
	}
	_, err = dec.Token() // closing brace
	return err
}

// State is the shared measurement record every event source writes into and
// the summarizer reads from. One instance per collector; the collector owns
// it exclusively and guards all access.
type State struct {
	HTTP      HTTPAggregate     `json:"http"`
	GC        []GCEvent         `json:"gc"`
	EventLoop []EventLoopSample `json:"eventLoop"`
	Process   []ProcessSnapshot `json:"process"`
	Host      []HostSnapshot    `json:"host"`
	Handles   []HandleSample    `json:"handles"`
	Faults    FaultCounts       `json:"faults"`
	Usage     UsageMetrics      `json:"usage"`
}

// NewState returns an empty State.
func NewState() *State {
	return &State{}
}

// Clone returns a deep, independent copy. Subsequent mutation of the
// original never affects the copy, and vice versa.
func (s *State) Clone() *State {
	out := &State{
		HTTP:   s.HTTP,
		Faults: s.Faults,
		Usage: UsageMetrics{
			ActiveUsers:  s.Usage.ActiveUsers,
			PageViews:    s.Usage.PageViews,
			CustomEvents: s.Usage.CustomEvents.Clone(),
		},
	}
	out.HTTP.Durations = append([]float64(nil), s.HTTP.Durations...)
	out.GC = append([]GCEvent(nil), s.GC...)
	out.EventLoop = append([]EventLoopSample(nil), s.EventLoop...)
	out.Process = append([]ProcessSnapshot(nil), s.Process...)
	out.Host = append([]HostSnapshot(nil), s.Host...)
	out.Handles = append([]HandleSample(nil), s.Handles...)
	out.Usage.SessionDurations = append([]float64(nil), s.Usage.SessionDurations...)
	return out
}
