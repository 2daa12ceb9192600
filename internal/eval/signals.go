// Control-flow signals: break/continue/return ride Go's own error return
// channel as unexported sentinel types (never surfaced to scripts), kept
// distinct from *object.Exception so try/catch only ever intercepts real
// exceptions and lets loop/function control signals pass through — while
// `ensure` still runs regardless of which of the two produced the error,
// since ensure is reached by ordinary sequential code in evalTry, not a
// Go defer.
//
// sys.exit is handled differently: it panics with ExitSignal, recovered
// only at the single outermost entry point (cmd/quest's run command / the
// REPL loop), deliberately bypassing every pending `ensure` block — a Go
// panic unwinds straight past the sequential ensure-call in evalTry,
// which is exactly the resolved Open Question that sys.exit skips
// ensure (see DESIGN.md).
package eval

import "github.com/questlang/quest/internal/object"

type breakSignal struct{}

func (breakSignal) Error() string { return "break outside a loop" }

type continueSignal struct{}

func (continueSignal) Error() string { return "continue outside a loop" }

type returnSignal struct{ Value object.Value }

func (returnSignal) Error() string { return "return outside a function" }

// ExitSignal is panicked by sys.exit(code); only the top-level entry
// point should recover it.
type ExitSignal struct{ Code int }

func (ExitSignal) Error() string { return "sys.exit" }

func isControlSignal(err error) bool {
	switch err.(type) {
	case breakSignal, continueSignal, returnSignal:
		return true
	}
	return false
}
