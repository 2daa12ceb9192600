// Allocation accounting: an opt-in per-kind counter, switched on by
// EnableAllocTracking. The quest command does not read QUEST_CLONE_DEBUG
// and does not call EnableAllocTracking, so it never counts. Kept as
// explicit package-level state rather than hidden inside constructors,
// per spec.md §9 "Global state" — the counters are lazily initialized and
// never torn down, matching the id counter and interning tables above.
package object

import "sync/atomic"

var allocTrackingEnabled bool

// EnableAllocTracking turns on per-kind allocation counting; a repeat call
// is a no-op since the flag is only ever turned on, never off, for the
// life of the process.
func EnableAllocTracking() { allocTrackingEnabled = true }

// AllocTrackingEnabled reports whether counters are being kept.
func AllocTrackingEnabled() bool { return allocTrackingEnabled }

var allocCounters = map[string]*int64{}

// trackAlloc increments the live-allocation counter for kind, if enabled.
// Called from each shared-heap value constructor.
func trackAlloc(kind string) {
	if !allocTrackingEnabled {
		return
	}
	c, ok := allocCounters[kind]
	if !ok {
		c = new(int64)
		allocCounters[kind] = c
	}
	atomic.AddInt64(c, 1)
}

// AllocCounts returns a snapshot of the per-kind allocation counts
// gathered so far. The quest command does not print it on exit.
func AllocCounts() map[string]int64 {
	out := make(map[string]int64, len(allocCounters))
	for k, c := range allocCounters {
		out[k] = atomic.LoadInt64(c)
	}
	return out
}
