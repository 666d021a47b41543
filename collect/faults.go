package collect

// CapturePanic counts a panic that escaped all application-level handling
// and re-raises it unchanged, so the process's own crash path is never
// altered. Defer it at the top of a goroutine or request handler:
//
//	go func() {
//		defer c.CapturePanic()
//		work()
//	}()
func (c *Collector) CapturePanic() {
	if v := recover(); v != nil {
		c.countPanic()
		panic(v)
	}
}

func (c *Collector) countPanic() {
	c.mu.Lock()
	c.state.Faults.UncaughtPanics++
	c.mu.Unlock()
}

// RecordAsyncError counts a background error that no handler consumed.
// A nil error is ignored. The error is only counted, never acted on.
func (c *Collector) RecordAsyncError(err error) {
	if err == nil {
		return
	}
	c.mu.Lock()
	c.state.Faults.UnhandledErrors++
	c.mu.Unlock()
}
