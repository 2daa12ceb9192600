// Package object implements Quest's value kernel: the tagged sum of
// primitive and composite value kinds, with their construction, display,
// identity, truthiness, and equality/ordering rules.
//
// The per-kind shape (Cls()/Str()/Rep()/Equals/Copy) follows the teacher's
// runtime value package; the monotonic identity counter and interning
// tables are explicit package-level state rather than hidden inside
// constructors, since Quest values expose a stable identity across the
// whole process.
package object

import "sync/atomic"

// Value is implemented by every Quest value kind.
type Value interface {
	// Cls is the value's class/kind name ("Int", "Array", ...).
	Cls() string
	// Str is the display form (no quotes for strings).
	Str() string
	// Rep is the reproducible form (strings quoted, bytes as b"...").
	Rep() string
	// Id is the value's process-wide monotonic identity.
	Id() int64
	// Truthy implements spec.md §3's truthiness table.
	Truthy() bool
}

var idCounter int64

// NextID hands out the next monotonic identity. Exported so every value
// constructor in this package (and only this package) draws from the same
// counter; nothing outside allocates ids directly.
func NextID() int64 {
	return atomic.AddInt64(&idCounter, 1)
}

// Doc is implemented by values that carry an optional docstring
// (Fun, UserFun, Module, Type, Trait).
type Doc interface {
	Doc() string
}
