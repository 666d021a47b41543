package vitals

// GCKind classifies a garbage-collection cycle. It is a closed set: values
// the runtime may report in the future map to GCKindUnknown rather than
// leaking through as raw integers.
type GCKind int

const (
	// GCKindUnknown marks a cycle whose trigger could not be classified.
	GCKindUnknown GCKind = iota
	// GCKindAutomatic marks a cycle started by the runtime's pacer.
	GCKindAutomatic
	// GCKindForced marks a cycle started explicitly (runtime.GC and friends).
	GCKindForced
)

// String returns the label used in humanized snapshots.
func (k GCKind) String() string {
	switch k {
	case GCKindAutomatic:
		return "automatic"
	case GCKindForced:
		return "forced"
	default:
		return "unknown"
	}
}
