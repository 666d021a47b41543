package collect

import "time"

// RecordEvent records a usage event without producing a snapshot. The
// PageViewTag increments the page-view counter; any other non-empty tag
// increments its custom event counter, created at zero on first sight with
// first-seen order preserved. An empty tag is a no-op.
func (c *Collector) RecordEvent(tag string) {
	if tag == "" {
		return
	}
	c.mu.Lock()
	c.recordEventLocked(tag)
	c.mu.Unlock()
}

// SetActiveUsers sets the active-user gauge. The collector never drives
// this value itself; the embedding application owns it.
func (c *Collector) SetActiveUsers(n int64) {
	c.mu.Lock()
	c.state.Usage.ActiveUsers = n
	c.mu.Unlock()
}

// AddSessionDuration appends a completed session's duration.
func (c *Collector) AddSessionDuration(d time.Duration) {
	ms := float64(d.Microseconds()) / 1000
	c.mu.Lock()
	c.state.Usage.SessionDurations = append(c.state.Usage.SessionDurations, ms)
	c.mu.Unlock()
}
