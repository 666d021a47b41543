// Package collect instruments the running process and feeds a vitals.State.
//
// A Collector is an explicitly owned aggregator: Attach (or New followed by
// Start) launches the periodic samplers, and Shutdown stops every goroutine
// and releases every timer, so multiple independent collectors can coexist
// and be disposed of in isolation.
//
// Event sources write into the shared state independently: the request
// timing middleware on request completion, the GC watcher and lag probe on
// their own cadence, the system sampler on the configured interval, and the
// fault and usage recorders whenever the application calls them. A snapshot
// read happens under the same lock as every mutation, so it always observes
// a fully formed state.
//
// Instrumentation degrades rather than fails: hosts without descriptor
// introspection report zero handles, and any unavailable process or host
// reading leaves its fields zeroed. Nothing in this package ever alters the
// behavior of the embedding application; a counted panic is always
// re-raised.
//
// Measurement sequences grow without bound for the life of the collector.
// Long-running processes that read snapshots frequently should account for
// that when sizing the process.
package collect
