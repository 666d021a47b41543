package collect

import (
	"context"
	"log/slog"
	"os"
	"sync"
	"time"

	"github.com/shirou/gopsutil/v3/process"
	"golang.org/x/sync/errgroup"

	"github.com/vitalsign/vitalsign/vitals"
)

// PageViewTag is the event tag that increments the page-view counter.
// Any other non-empty tag increments a custom event counter instead.
const PageViewTag = "pageView"

// Hook receives a copy of every observation as it is recorded. Hooks run
// outside the state lock and must be safe for concurrent use.
type Hook interface {
	ObserveRequest(status int, duration time.Duration)
	ObserveGC(event vitals.GCEvent)
	ObserveLoopLag(sample vitals.EventLoopSample)
}

// Config configures a Collector.
type Config struct {
	// SamplingInterval is the period of the event-loop rollup and the
	// process/host sampler. Default: 60 seconds.
	SamplingInterval time.Duration

	// LagProbeInterval is the sleep period of the scheduler lag probe.
	// Default: 100 milliseconds.
	LagProbeInterval time.Duration

	// GCPollInterval is the period of the GC history poll.
	// Default: 1 second.
	GCPollInterval time.Duration

	// Logger receives degradation notices. Default: slog.Default().
	Logger *slog.Logger

	// Hooks are notified of every observation.
	Hooks []Hook
}

// Validate checks the configuration. Zero intervals are allowed and take
// their defaults; negative intervals are rejected.
func (c *Config) Validate() error {
	if c.SamplingInterval < 0 || c.LagProbeInterval < 0 || c.GCPollInterval < 0 {
		return ErrInvalidInterval
	}
	return nil
}

func (c *Config) withDefaults() Config {
	out := *c
	if out.SamplingInterval == 0 {
		out.SamplingInterval = 60 * time.Second
	}
	if out.LagProbeInterval == 0 {
		out.LagProbeInterval = 100 * time.Millisecond
	}
	if out.GCPollInterval == 0 {
		out.GCPollInterval = time.Second
	}
	if out.Logger == nil {
		out.Logger = slog.Default()
	}
	return out
}

// Collector owns one vitals.State and the event sources that feed it.
type Collector struct {
	cfg   Config
	log   *slog.Logger
	hooks []Hook
	proc  *process.Process

	mu    sync.RWMutex
	state *vitals.State

	probe *lagProbe
	gcw   gcWatcher

	startOnce sync.Once
	stopOnce  sync.Once
	cancel    context.CancelFunc
	group     *errgroup.Group
}

// New creates a Collector and takes the initial process/host sample. The
// samplers do not run until Start is called.
func New(cfg Config) (*Collector, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	cfg = cfg.withDefaults()

	c := &Collector{
		cfg:   cfg,
		log:   cfg.Logger,
		hooks: cfg.Hooks,
		state: vitals.NewState(),
		probe: newLagProbe(cfg.LagProbeInterval),
	}

	proc, err := process.NewProcess(int32(os.Getpid()))
	if err != nil {
		// Process introspection is best-effort; the snapshots fall back
		// to runtime-only figures.
		c.log.Warn("process introspection unavailable", "error", err)
	} else {
		c.proc = proc
	}

	c.sampleSystem(time.Now())
	return c, nil
}

// Attach creates a Collector and starts its samplers.
func Attach(cfg Config) (*Collector, error) {
	c, err := New(cfg)
	if err != nil {
		return nil, err
	}
	c.Start()
	return c, nil
}

// Start launches the lag probe, the GC poll, and the periodic sampler.
// Calling Start more than once has no further effect.
func (c *Collector) Start() {
	c.startOnce.Do(func() {
		ctx, cancel := context.WithCancel(context.Background())
		c.cancel = cancel

		g, gctx := errgroup.WithContext(ctx)
		c.group = g
		g.Go(func() error { return c.runSampler(gctx) })
		g.Go(func() error { return c.probe.run(gctx) })
		g.Go(func() error { return c.runGCPoll(gctx) })
	})
}

// Shutdown stops all samplers and waits for them to exit, or for ctx to be
// done. The collected state stays readable after shutdown.
func (c *Collector) Shutdown(ctx context.Context) error {
	if c.cancel == nil {
		return nil
	}
	c.stopOnce.Do(c.cancel)

	done := make(chan error, 1)
	go func() { done <- c.group.Wait() }()

	select {
	case err := <-done:
		return err
	case <-ctx.Done():
		return ctx.Err()
	}
}

// GetMetrics returns the current snapshot and summary. A non-empty
// eventTag records a usage event before the snapshot is taken: PageViewTag
// increments the page-view counter, anything else a custom event counter.
// An empty tag is a pure read.
func (c *Collector) GetMetrics(eventTag string) vitals.Report {
	c.mu.Lock()
	c.recordEventLocked(eventTag)
	snap := c.state.Clone()
	c.mu.Unlock()

	return vitals.NewReport(snap)
}

// Snapshot returns a deep copy of the raw state without formatting and
// without side effects.
func (c *Collector) Snapshot() *vitals.State {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.state.Clone()
}

func (c *Collector) runSampler(ctx context.Context) error {
	ticker := time.NewTicker(c.cfg.SamplingInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return nil
		case now := <-ticker.C:
			sample := c.probe.rollup(now)
			c.mu.Lock()
			c.state.EventLoop = append(c.state.EventLoop, sample)
			c.mu.Unlock()
			for _, h := range c.hooks {
				h.ObserveLoopLag(sample)
			}

			c.sampleSystem(now)
		}
	}
}

func (c *Collector) runGCPoll(ctx context.Context) error {
	ticker := time.NewTicker(c.cfg.GCPollInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return nil
		case <-ticker.C:
			events := c.gcw.poll()
			if len(events) == 0 {
				continue
			}
			c.mu.Lock()
			c.state.GC = append(c.state.GC, events...)
			c.mu.Unlock()
			for _, h := range c.hooks {
				for _, e := range events {
					h.ObserveGC(e)
				}
			}
		}
	}
}

func (c *Collector) observeRequest(status int, duration time.Duration) {
	ms := float64(duration.Microseconds()) / 1000

	c.mu.Lock()
	c.state.HTTP.Total++
	if status >= 400 {
		c.state.HTTP.Errors++
	}
	c.state.HTTP.Durations = append(c.state.HTTP.Durations, ms)
	c.mu.Unlock()

	for _, h := range c.hooks {
		h.ObserveRequest(status, duration)
	}
}

func (c *Collector) recordEventLocked(tag string) {
	switch tag {
	case "":
	case PageViewTag:
		c.state.Usage.PageViews++
	default:
		c.state.Usage.CustomEvents.Inc(tag)
	}
}
