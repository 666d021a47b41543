package collect

import (
	"runtime"
	"time"

	"github.com/shirou/gopsutil/v3/cpu"
	"github.com/shirou/gopsutil/v3/host"
	"github.com/shirou/gopsutil/v3/load"
	"github.com/shirou/gopsutil/v3/mem"

	"github.com/vitalsign/vitalsign/vitals"
)

// sampleSystem takes a process snapshot, a host snapshot, and a handle
// sample back to back and appends all three under one lock hold, so the
// three sequences stay time-correlated by proximity.
func (c *Collector) sampleSystem(now time.Time) {
	proc := c.processSnapshot(now)
	hostSnap := c.hostSnapshot(now)
	handles := c.handleSample(now)

	c.mu.Lock()
	c.state.Process = append(c.state.Process, proc)
	c.state.Host = append(c.state.Host, hostSnap)
	c.state.Handles = append(c.state.Handles, handles)
	c.mu.Unlock()
}

func (c *Collector) processSnapshot(now time.Time) vitals.ProcessSnapshot {
	var stats runtime.MemStats
	runtime.ReadMemStats(&stats)

	snap := vitals.ProcessSnapshot{Timestamp: now}
	snap.Memory.HeapTotal = stats.HeapSys
	snap.Memory.HeapUsed = stats.HeapAlloc
	snap.Memory.Stack = stats.StackSys
	if stats.Sys > stats.HeapSys+stats.StackSys {
		snap.Memory.OffHeap = stats.Sys - stats.HeapSys - stats.StackSys
	}

	if c.proc == nil {
		return snap
	}
	if mi, err := c.proc.MemoryInfo(); err == nil {
		snap.Memory.Resident = mi.RSS
	} else {
		c.log.Debug("resident memory unavailable", "error", err)
	}
	if times, err := c.proc.Times(); err == nil {
		snap.CPUUserMicros = uint64(times.User * 1e6)
		snap.CPUSystemMicros = uint64(times.System * 1e6)
	} else {
		c.log.Debug("cpu times unavailable", "error", err)
	}
	return snap
}

func (c *Collector) hostSnapshot(now time.Time) vitals.HostSnapshot {
	snap := vitals.HostSnapshot{Timestamp: now}

	if avg, err := load.Avg(); err == nil {
		snap.Load1 = avg.Load1
		snap.Load5 = avg.Load5
		snap.Load15 = avg.Load15
	} else {
		c.log.Debug("load averages unavailable", "error", err)
	}
	if vm, err := mem.VirtualMemory(); err == nil {
		snap.FreeBytes = vm.Free
		snap.TotalBytes = vm.Total
	} else {
		c.log.Debug("host memory unavailable", "error", err)
	}
	if up, err := host.Uptime(); err == nil {
		snap.UptimeSec = up
	} else {
		c.log.Debug("host uptime unavailable", "error", err)
	}
	if n, err := cpu.Counts(true); err == nil {
		snap.Cores = n
	} else {
		c.log.Debug("core count unavailable", "error", err)
	}
	return snap
}

// handleSample counts open descriptors. Unsupported platforms yield 0.
func (c *Collector) handleSample(now time.Time) vitals.HandleSample {
	sample := vitals.HandleSample{Timestamp: now}
	if c.proc == nil {
		return sample
	}
	if n, err := c.proc.NumFDs(); err == nil && n > 0 {
		sample.Count = int(n)
	}
	return sample
}
