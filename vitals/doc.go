// Package vitals defines the measurement state model for in-process health
// instrumentation, together with the two read views derived from it: a
// humanized snapshot of the raw measurement log and a threshold-classified
// health summary.
//
// The package is pure data and pure functions. It performs no sampling, no
// locking, and no I/O; the live collector in package collect owns a State
// and mutates it, then hands independent deep copies to Summarize and
// NewReport. Mutating a State after cloning never affects a previously
// produced snapshot.
//
// # State
//
// State holds one append-only sequence per metric family (request durations,
// GC pauses, event-loop lag samples, process and host snapshots, handle
// counts) plus monotonic fault counters and application-reported usage
// counters. Sequences grow without bound for the life of the process; this
// is a documented limitation, not a feature.
//
// # Summaries
//
// Summarize reduces a State to one status label per family using fixed
// thresholds. Empty sequences always yield zero-valued figures and the
// healthy label; every rate computation guards its denominator.
package vitals
