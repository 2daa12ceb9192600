// Scope is Quest's lexical environment: a linked list of frames (a map of
// local bindings plus a parent pointer) rather than a single mutable
// frame stack. A UserFun captures the Scope active at its definition site
// as its Closure; if frames were popped/mutated in place after capture
// (as a literal stack would require), every existing closure would see
// its captured frame corrupted once the stack unwound past it. The
// linked-list shape keeps each previously-captured frame immutable to
// everyone except code that still holds a direct reference to it, which
// is exactly the semantics function closures need.
//
// Grounded on the teacher's internal/interp/runtime/environment.go
// (NewEnclosedEnvironment(parent) / Get walks parent chain / Set updates
// the defining frame or falls back to defining locally), adapted from
// the teacher's case-insensitive ident.Map lookup to a plain
// case-sensitive map[string]Value since Quest identifiers are
// case-sensitive (SPEC_FULL.md).
package eval

import (
	"fmt"
	"os"

	"github.com/questlang/quest/internal/errors"
	"github.com/questlang/quest/internal/object"
)

// sharedState is process-wide state shared by every Scope descending
// from one root (loaded modules, import-cycle guard, search paths, argv).
type sharedState struct {
	moduleCache map[string]*object.Module
	inProgress  map[string]bool
	searchPaths []string
	argv        []string
	scriptPath  string
	trace       bool
	// callTrace is the live user-function call stack, printed frame by
	// frame as `--trace` pushes and pops it; backed by internal/errors'
	// StackTrace rather than a bespoke slice. Uncaught-exception output
	// does not include it.
	callTrace errors.StackTrace
	// excStack is the stack of exceptions currently being handled by an
	// enclosing catch clause, innermost last; bare `raise` re-raises
	// excStack's top.
	excStack []*object.Exception
}

// Scope is one lexical frame plus a pointer to its enclosing frame.
type Scope struct {
	vars   map[string]object.Value
	parent *Scope
	shared *sharedState
}

// NewRootScope creates the outermost Scope for one running program (the
// main script or REPL session), wired with its own shared module cache.
// A loaded module's scope comes from NewChildRoot instead, which shares
// that cache.
func NewRootScope(scriptPath string, argv []string, searchPaths []string) *Scope {
	return &Scope{
		vars: map[string]object.Value{},
		shared: &sharedState{
			moduleCache: map[string]*object.Module{},
			inProgress:  map[string]bool{},
			searchPaths: searchPaths,
			argv:        argv,
			scriptPath:  scriptPath,
			trace:       false,
		},
	}
}

// Child returns a new Scope enclosed by s, sharing s's process-wide state.
func (s *Scope) Child() *Scope {
	return &Scope{vars: map[string]object.Value{}, parent: s, shared: s.shared}
}

// Get looks up name in s or any enclosing scope.
func (s *Scope) Get(name string) (object.Value, bool) {
	for sc := s; sc != nil; sc = sc.parent {
		if v, ok := sc.vars[name]; ok {
			return v, true
		}
	}
	return nil, false
}

// Define binds name in s's own frame only, per `let`'s shadow-the-
// enclosing-binding semantics.
func (s *Scope) Define(name string, v object.Value) {
	s.vars[name] = v
}

// Set assigns to the frame that already binds name, walking outward; if
// no enclosing frame binds it, it is defined in s's own frame (matching
// assignment-creates-a-global/implicit-binding semantics at the point an
// identifier is first assigned without `let`).
func (s *Scope) Set(name string, v object.Value) {
	for sc := s; sc != nil; sc = sc.parent {
		if _, ok := sc.vars[name]; ok {
			sc.vars[name] = v
			return
		}
	}
	s.vars[name] = v
}

// ToFlatMap returns s's own local bindings (not the parent chain), used
// by the module loader to turn a freshly evaluated module's top-level
// scope into that module's Members map.
func (s *Scope) ToFlatMap() map[string]object.Value {
	out := make(map[string]object.Value, len(s.vars))
	for k, v := range s.vars {
		out[k] = v
	}
	return out
}

func (s *Scope) ScriptPath() string    { return s.shared.scriptPath }
func (s *Scope) Argv() []string        { return s.shared.argv }
func (s *Scope) SearchPaths() []string { return s.shared.searchPaths }
func (s *Scope) Tracing() bool         { return s.shared.trace }
func (s *Scope) SetTracing(on bool)    { s.shared.trace = on }

// PushCall records fn's entry onto the shared call trace and, when
// tracing is enabled, prints it indented by the current call depth;
// callers must invoke the returned func on every exit path (normal
// return, propagated error, or panic recovery) to keep the trace
// balanced. Grounded on the teacher's stack_trace.go shape, repurposed
// from a static post-hoc trace representation into Quest's live
// `--trace` execution log.
func (s *Scope) PushCall(name string) func() {
	frame := errors.NewStackFrame(name, s.shared.scriptPath, nil)
	s.shared.callTrace = append(s.shared.callTrace, frame)
	if s.shared.trace {
		depth := s.shared.callTrace.Depth()
		fmt.Fprintf(os.Stderr, "%*s> %s\n", (depth-1)*2, "", frame.String())
	}
	return func() {
		if s.shared.trace {
			depth := s.shared.callTrace.Depth()
			fmt.Fprintf(os.Stderr, "%*s< %s\n", (depth-1)*2, "", s.shared.callTrace.Top().FunctionName)
		}
		s.shared.callTrace = s.shared.callTrace[:len(s.shared.callTrace)-1]
	}
}

// CallTrace returns the live call stack, oldest frame first.
func (s *Scope) CallTrace() errors.StackTrace { return s.shared.callTrace }

// CachedModule looks up a previously loaded module by canonical path in
// the shared, process-wide module cache.
func (s *Scope) CachedModule(canonicalPath string) (*object.Module, bool) {
	m, ok := s.shared.moduleCache[canonicalPath]
	return m, ok
}

// CacheModule records m as the loaded module for canonicalPath, shared by
// every Scope descending from the same root.
func (s *Scope) CacheModule(canonicalPath string, m *object.Module) {
	s.shared.moduleCache[canonicalPath] = m
}

// BeginLoad marks canonicalPath as having a load in progress, returning
// false if it was already in progress (an import cycle).
func (s *Scope) BeginLoad(canonicalPath string) bool {
	if s.shared.inProgress[canonicalPath] {
		return false
	}
	s.shared.inProgress[canonicalPath] = true
	return true
}

// EndLoad clears the in-progress marker for canonicalPath.
func (s *Scope) EndLoad(canonicalPath string) {
	delete(s.shared.inProgress, canonicalPath)
}

// PushHandledException records exc as the innermost exception currently
// being handled, for a bare `raise` inside its catch body to re-raise.
func (s *Scope) PushHandledException(exc *object.Exception) {
	s.shared.excStack = append(s.shared.excStack, exc)
}

// PopHandledException removes the innermost handled exception once its
// catch body has finished running.
func (s *Scope) PopHandledException() {
	n := len(s.shared.excStack)
	if n > 0 {
		s.shared.excStack = s.shared.excStack[:n-1]
	}
}

// CurrentHandledException returns the exception a bare `raise` should
// re-raise, or nil if none is being handled.
func (s *Scope) CurrentHandledException() *object.Exception {
	n := len(s.shared.excStack)
	if n == 0 {
		return nil
	}
	return s.shared.excStack[n-1]
}

// NewChildRoot builds a fresh root-like Scope (no parent frame, so a
// loaded module's top-level bindings don't leak into the loader's caller)
// that shares this Scope's module cache, in-progress set and search
// paths, per spec.md §4.2's "shared by reference across child scopes
// created during module load".
func (s *Scope) NewChildRoot(scriptPath string) *Scope {
	return &Scope{
		vars: map[string]object.Value{},
		shared: &sharedState{
			moduleCache: s.shared.moduleCache,
			inProgress:  s.shared.inProgress,
			searchPaths: s.shared.searchPaths,
			argv:        s.shared.argv,
			scriptPath:  scriptPath,
			trace:       s.shared.trace,
		},
	}
}
