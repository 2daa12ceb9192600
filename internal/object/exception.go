package object

import (
	"fmt"
	"strings"
)

// Kind is one of the closed set of exception kinds, or Custom for a
// user-named open variant.
type Kind string

const (
	Err        Kind = "Err"
	ValueErr   Kind = "ValueErr"
	TypeErr    Kind = "TypeErr"
	IndexErr   Kind = "IndexErr"
	KeyErr     Kind = "KeyErr"
	ArgErr     Kind = "ArgErr"
	AttrErr    Kind = "AttrErr"
	NameErr    Kind = "NameErr"
	RuntimeErr Kind = "RuntimeErr"
	IOErr      Kind = "IOErr"
	ImportErr  Kind = "ImportErr"
	SyntaxErr  Kind = "SyntaxErr"
)

var builtinKinds = map[Kind]bool{
	Err: true, ValueErr: true, TypeErr: true, IndexErr: true, KeyErr: true,
	ArgErr: true, AttrErr: true, NameErr: true, RuntimeErr: true, IOErr: true,
	ImportErr: true, SyntaxErr: true,
}

// IsBuiltinKind reports whether name is one of the fixed kinds (as opposed
// to a Custom(name) kind).
func IsBuiltinKind(name string) bool { return builtinKinds[Kind(name)] }

// StackFrame is one entry of an Exception's unwind trace.
type StackFrame struct {
	Desc string
	Line int
	File string
}

func (f StackFrame) String() string {
	if f.File == "" {
		return f.Desc
	}
	return fmt.Sprintf("%s (%s:%d)", f.Desc, f.File, f.Line)
}

// Exception is the Exception value kind: kind + message + optional
// line/file + stack frames + optional cause.
type Exception struct {
	id      int64
	KindTag Kind
	Custom  string // non-empty iff KindTag names a user-declared custom kind
	Message string
	Line    int
	File    string
	Stack   []StackFrame
	Cause   *Exception
}

// NewException constructs an Exception value, assigning it a fresh identity.
func NewException(kind Kind, custom, message string) *Exception {
	trackAlloc("Exception")
	return &Exception{id: NextID(), KindTag: kind, Custom: custom, Message: message}
}

func (e *Exception) Cls() string { return "Exception" }

// KindName is the textual kind, e.g. "TypeErr" or a custom name.
func (e *Exception) KindName() string {
	if e.Custom != "" {
		return e.Custom
	}
	return string(e.KindTag)
}

func (e *Exception) Str() string { return fmt.Sprintf("%s: %s", e.KindName(), e.Message) }
func (e *Exception) Rep() string { return fmt.Sprintf("%s(%q)", e.KindName(), e.Message) }
func (e *Exception) Id() int64   { return e.id }
func (e *Exception) Truthy() bool { return true }

// IsSubtypeOf implements the two-level subtype rule: every kind is a
// subtype of itself and of the root kind Err; custom kinds match only by
// exact name (and are always subtypes of Err).
func (e *Exception) IsSubtypeOf(name string) bool {
	if name == string(Err) {
		return true
	}
	if e.Custom != "" {
		return e.Custom == name
	}
	return string(e.KindTag) == name
}

// Error implements the Go error interface so Exception can be threaded
// through ordinary Go error returns inside the evaluator.
func (e *Exception) Error() string { return Encode(e) }

// Encode renders an Exception as the "<Kind>: <msg>" payload string used to
// thread errors through the evaluator's (Value, error) return channel.
func Encode(e *Exception) string {
	return fmt.Sprintf("%s: %s", e.KindName(), e.Message)
}

// Decode parses an Encode-d payload string back into an Exception. Used at
// catch sites that only received a plain Go error (e.g. from a standard
// library wrapper) rather than a threaded *Exception.
func Decode(s string) *Exception {
	parts := strings.SplitN(s, ": ", 2)
	msg := s
	kindName := string(RuntimeErr)
	if len(parts) == 2 {
		kindName, msg = parts[0], parts[1]
	}
	if IsBuiltinKind(kindName) {
		return NewException(Kind(kindName), "", msg)
	}
	return NewException(Err, kindName, msg)
}

// AsException recovers a threaded *Exception from a Go error value,
// decoding a plain error's message if it isn't already one.
func AsException(err error) *Exception {
	if err == nil {
		return nil
	}
	if exc, ok := err.(*Exception); ok {
		return exc
	}
	return Decode(err.Error())
}

// Raise is a convenience constructor returning a *Exception as a Go error,
// for use at call sites like `return nil, object.Raise(object.TypeErr, "...")`.
func Raise(kind Kind, format string, args ...interface{}) error {
	return NewException(kind, "", fmt.Sprintf(format, args...))
}

// RaiseCustom raises a user-named exception kind not in the fixed set.
func RaiseCustom(name string, format string, args ...interface{}) error {
	return NewException(Err, name, fmt.Sprintf(format, args...))
}

// PushFrame records one more unwind frame as the exception propagates
// through an evaluator stack frame.
func (e *Exception) PushFrame(desc string, line int, file string) {
	e.Stack = append(e.Stack, StackFrame{Desc: desc, Line: line, File: file})
}

// FormatUncaught renders the "<Kind>: <message>" + stack trace + causal
// chain text printed for an exception that escapes to the top level.
func (e *Exception) FormatUncaught() string {
	var b strings.Builder
	fmt.Fprintf(&b, "%s: %s\n", e.KindName(), e.Message)
	for i := len(e.Stack) - 1; i >= 0; i-- {
		fmt.Fprintf(&b, "  at %s\n", e.Stack[i])
	}
	if e.Cause != nil {
		b.WriteString("Caused by:\n")
		b.WriteString(e.Cause.FormatUncaught())
	}
	return b.String()
}

func (e *Exception) GetField(name string) (Value, bool) {
	switch name {
	case "message":
		return NewStr(e.Message), true
	case "line":
		return NewInt(int64(e.Line)), true
	case "file":
		return NewStr(e.File), true
	case "cause":
		if e.Cause == nil {
			return Nil{}, true
		}
		return e.Cause, true
	}
	return nil, false
}

func (e *Exception) SetField(name string, val Value) error {
	return Raise(AttrErr, "Exception fields are read-only: %s", name)
}
