package vitals

import (
	"testing"
	"time"
)

func benchState(n int) *State {
	s := NewState()
	now := time.Now()
	for i := 0; i < n; i++ {
		s.HTTP.Total++
		s.HTTP.Durations = append(s.HTTP.Durations, float64(i%400))
		s.GC = append(s.GC, GCEvent{Kind: GCKindAutomatic, DurationMS: float64(i % 30), Timestamp: now})
	}
	s.EventLoop = []EventLoopSample{{MeanMS: 2, Timestamp: now}}
	s.Process = []ProcessSnapshot{{Memory: ProcessMemory{Resident: 1 << 26}, Timestamp: now}}
	s.Host = []HostSnapshot{{TotalBytes: 1 << 33, Cores: 8, Timestamp: now}}
	return s
}

func BenchmarkSummarize(b *testing.B) {
	s := benchState(10000)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = Summarize(s)
	}
}

func BenchmarkClone(b *testing.B) {
	s := benchState(10000)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = s.Clone()
	}
}
