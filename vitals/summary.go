package vitals

// Classification thresholds. A family is flagged only when its aggregate is
// strictly beyond the threshold.
const (
	maxErrorRatePct  = 5.0
	maxAvgDurationMS = 500.0
	maxAvgGCPauseMS  = 50.0
	maxLoopMeanMS    = 50.0
	maxResourcePct   = 80.0
	maxHandleCount   = 1000
	microsPerSecond  = 1e6
)

// Status labels. These are a stable contract for downstream consumers.
const (
	StatusHTTPOK        = "OK"
	StatusHTTPAttention = "Needs attention"
	StatusGCOK          = "GC OK"
	StatusGCSlow        = "GC is slow"
	StatusLoopOK        = "Loop OK"
	StatusLoopLag       = "Event-loop lag"
	StatusResourcesOK   = "Resources OK"
	StatusResourcesHigh = "High resource use"
	StatusLoadOK        = "Load OK"
	StatusLoadExceeds   = "Load exceeds cores"
	StatusHandlesOK     = "Handles OK"
	StatusHandlesMany   = "Too many handles"
	StatusNoFaults      = "No runtime faults"
	StatusFaults        = "Runtime faults detected"
	StatusNoActivity    = "No user activity"
	StatusActivity      = "User activity detected"
)

// HTTPSummary classifies request health from error rate and mean duration.
type HTTPSummary struct {
	ErrorRate   string `json:"errorRate"`
	AvgDuration string `json:"avgDuration"`
	Status      string `json:"status"`
}

// GCSummary classifies collector health from the lifetime average pause.
type GCSummary struct {
	AvgPause string `json:"avgPause"`
	Status   string `json:"status"`
}

// EventLoopSummary classifies scheduler health from the most recent window.
type EventLoopSummary struct {
	Mean   string `json:"mean"`
	Status string `json:"status"`
}

// ResourceSummary classifies process resource pressure.
type ResourceSummary struct {
	Memory string `json:"memory"`
	CPU    string `json:"cpu"`
	Status string `json:"status"`
}

// LoadSummary compares the 1-minute load average against the core count.
type LoadSummary struct {
	Load1  float64 `json:"load1"`
	Cores  int     `json:"cores"`
	Status string  `json:"status"`
}

// HandleSummary classifies the most recent open-handle count.
type HandleSummary struct {
	Count  int    `json:"count"`
	Status string `json:"status"`
}

// FaultSummary reports the combined fault count.
type FaultSummary struct {
	Total  uint64 `json:"total"`
	Status string `json:"status"`
}

// UsageSummary reports recorded page views.
type UsageSummary struct {
	PageViews uint64 `json:"pageViews"`
	Status    string `json:"status"`
}

// Summary is the threshold-classified health report derived from a State.
type Summary struct {
	HTTP      HTTPSummary      `json:"http"`
	GC        GCSummary        `json:"gc"`
	EventLoop EventLoopSummary `json:"eventLoop"`
	Resources ResourceSummary  `json:"resources"`
	Load      LoadSummary      `json:"load"`
	Handles   HandleSummary    `json:"handles"`
	Faults    FaultSummary     `json:"faults"`
	Usage     UsageSummary     `json:"usage"`
}

// Summarize reduces a State into a Summary. It is a pure function: no side
// effects, no mutation of s. Empty sequences yield zero-valued figures and
// the healthy label; every denominator is guarded.
func Summarize(s *State) Summary {
	return Summary{
		HTTP:      summarizeHTTP(s.HTTP),
		GC:        summarizeGC(s.GC),
		EventLoop: summarizeEventLoop(s.EventLoop),
		Resources: summarizeResources(s.Process, s.Host),
		Load:      summarizeLoad(s.Host),
		Handles:   summarizeHandles(s.Handles),
		Faults:    summarizeFaults(s.Faults),
		Usage:     summarizeUsage(s.Usage),
	}
}

func summarizeHTTP(h HTTPAggregate) HTTPSummary {
	var rate float64
	if h.Total > 0 {
		rate = float64(h.Errors) / float64(h.Total) * 100
	}
	avg := mean(h.Durations)

	status := StatusHTTPOK
	if rate > maxErrorRatePct || avg > maxAvgDurationMS {
		status = StatusHTTPAttention
	}
	return HTTPSummary{
		ErrorRate:   FormatPercent(rate),
		AvgDuration: FormatMS(avg),
		Status:      status,
	}
}

func summarizeGC(events []GCEvent) GCSummary {
	var avg float64
	if len(events) > 0 {
		var sum float64
		for _, e := range events {
			sum += e.DurationMS
		}
		avg = sum / float64(len(events))
	}

	status := StatusGCOK
	if avg > maxAvgGCPauseMS {
		status = StatusGCSlow
	}
	return GCSummary{AvgPause: FormatMS(avg), Status: status}
}

func summarizeEventLoop(samples []EventLoopSample) EventLoopSummary {
	var meanMS float64
	if len(samples) > 0 {
		meanMS = samples[len(samples)-1].MeanMS
	}

	status := StatusLoopOK
	if meanMS > maxLoopMeanMS {
		status = StatusLoopLag
	}
	return EventLoopSummary{Mean: FormatMS(meanMS), Status: status}
}

func summarizeResources(procs []ProcessSnapshot, hosts []HostSnapshot) ResourceSummary {
	var memPct, cpuPct float64

	if len(procs) > 0 {
		proc := procs[len(procs)-1]
		if len(hosts) > 0 {
			host := hosts[len(hosts)-1]
			if host.TotalBytes > 0 {
				memPct = float64(proc.Memory.Resident) / float64(host.TotalBytes) * 100
			}
			if host.Cores > 0 {
				cpuPct = float64(proc.CPUUserMicros+proc.CPUSystemMicros) /
					microsPerSecond / float64(host.Cores) * 100
			}
		}
	}

	status := StatusResourcesOK
	if memPct > maxResourcePct || cpuPct > maxResourcePct {
		status = StatusResourcesHigh
	}
	return ResourceSummary{
		Memory: FormatPercent(memPct),
		CPU:    FormatPercent(cpuPct),
		Status: status,
	}
}

func summarizeLoad(hosts []HostSnapshot) LoadSummary {
	var load1 float64
	var cores int
	if len(hosts) > 0 {
		host := hosts[len(hosts)-1]
		load1 = host.Load1
		cores = host.Cores
	}

	status := StatusLoadOK
	if load1 > float64(cores) {
		status = StatusLoadExceeds
	}
	return LoadSummary{Load1: load1, Cores: cores, Status: status}
}

func summarizeHandles(samples []HandleSample) HandleSummary {
	var count int
	if len(samples) > 0 {
		count = samples[len(samples)-1].Count
	}

	status := StatusHandlesOK
	if count > maxHandleCount {
		status = StatusHandlesMany
	}
	return HandleSummary{Count: count, Status: status}
}

func summarizeFaults(f FaultCounts) FaultSummary {
	total := f.UncaughtPanics + f.UnhandledErrors
	status := StatusNoFaults
	if total > 0 {
		status = StatusFaults
	}
	return FaultSummary{Total: total, Status: status}
}

func summarizeUsage(u UsageMetrics) UsageSummary {
	status := StatusNoActivity
	if u.PageViews > 0 {
		status = StatusActivity
	}
	return UsageSummary{PageViews: u.PageViews, Status: status}
}

func mean(values []float64) float64 {
	if len(values) == 0 {
		return 0
	}
	var sum float64
	for _, v := range values {
		sum += v
	}
	return sum / float64(len(values))
}
