package collect

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/vitalsign/vitalsign/vitals"
)

// lagProbe measures scheduler saturation: it repeatedly asks to be woken
// after a fixed interval and records how late the wake-up arrives. Probes
// accumulate until the next rollup drains and resets the window, so each
// EventLoopSample reflects only recent scheduler health rather than a
// lifetime average that would go numb to regressions.
type lagProbe struct {
	interval time.Duration

	mu      sync.Mutex
	samples []float64 // milliseconds
}

func newLagProbe(interval time.Duration) *lagProbe {
	return &lagProbe{interval: interval}
}

func (p *lagProbe) run(ctx context.Context) error {
	timer := time.NewTimer(p.interval)
	defer timer.Stop()

	for {
		before := time.Now()
		select {
		case <-ctx.Done():
			return nil
		case <-timer.C:
			lag := time.Since(before) - p.interval
			if lag < 0 {
				lag = 0
			}
			p.record(float64(lag.Microseconds()) / 1000)
			timer.Reset(p.interval)
		}
	}
}

func (p *lagProbe) record(ms float64) {
	p.mu.Lock()
	p.samples = append(p.samples, ms)
	p.mu.Unlock()
}

// rollup drains the current window and reduces it to one sample.
func (p *lagProbe) rollup(now time.Time) vitals.EventLoopSample {
	p.mu.Lock()
	samples := p.samples
	p.samples = nil
	p.mu.Unlock()

	return reduceWindow(samples, now)
}

// reduceWindow computes the window aggregate. An empty window yields an
// all-zero sample; missing percentiles never fail.
func reduceWindow(samples []float64, now time.Time) vitals.EventLoopSample {
	out := vitals.EventLoopSample{Timestamp: now}
	if len(samples) == 0 {
		return out
	}

	sort.Float64s(samples)

	var sum float64
	for _, v := range samples {
		sum += v
	}
	out.MeanMS = sum / float64(len(samples))
	out.MinMS = samples[0]
	out.MaxMS = samples[len(samples)-1]
	out.P50MS = quantile(samples, 0.50)
	out.P99MS = quantile(samples, 0.99)
	return out
}

// quantile uses nearest-rank lookup over a sorted window.
func quantile(sorted []float64, q float64) float64 {
	if len(sorted) == 0 {
		return 0
	}
	idx := int(q*float64(len(sorted)-1) + 0.5)
	if idx >= len(sorted) {
		idx = len(sorted) - 1
	}
	return sorted[idx]
}
