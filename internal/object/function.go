package object

import "github.com/questlang/quest/internal/ast"

// BuiltinFn is a Go-implemented function body, invoked by a Fun value.
// scope is an opaque interface{} handle (internal/eval.Scope) threaded
// through without the object package depending on internal/eval.
type BuiltinFn func(args []Value, scope interface{}) (Value, error)

// Fun is a named built-in function handle (carrying name + parent module
// + doc); built-in functions are value-kind methods and standard-module
// entries alike.
type Fun struct {
	id     int64
	Name   string
	Module string
	DocStr string
	Body   BuiltinFn
}

func NewFun(name, module, doc string, body BuiltinFn) *Fun {
	trackAlloc("Fun")
	return &Fun{id: NextID(), Name: name, Module: module, DocStr: doc, Body: body}
}

func (f *Fun) Cls() string  { return "Fun" }
func (f *Fun) Id() int64    { return f.id }
func (f *Fun) Truthy() bool { return true }
func (f *Fun) Doc() string  { return f.DocStr }

func (f *Fun) Str() string {
	if f.Module != "" {
		return "<built-in fun " + f.Module + "." + f.Name + ">"
	}
	return "<built-in fun " + f.Name + ">"
}
func (f *Fun) Rep() string { return f.Str() }

func (f *Fun) Call(args []Value, scope interface{}) (Value, error) {
	return f.Body(args, scope)
}

// UserFun is a user-defined function: parameter names, default-value
// expressions, captured scope, body node, doc. Scope is stored as
// interface{} (internal/eval.Scope) to avoid an import cycle between
// object and eval.
type UserFun struct {
	id       int64
	Name     string
	Params   []ast.Param
	Body     []ast.Statement
	Closure  interface{}
	DocStr   string
	BoundSelf Value // non-nil for a bound instance method
}

func NewUserFun(name string, params []ast.Param, body []ast.Statement, closure interface{}) *UserFun {
	trackAlloc("UserFun")
	return &UserFun{id: NextID(), Name: name, Params: params, Body: body, Closure: closure}
}

func (f *UserFun) Cls() string  { return "UserFun" }
func (f *UserFun) Id() int64    { return f.id }
func (f *UserFun) Truthy() bool { return true }
func (f *UserFun) Doc() string  { return f.DocStr }

func (f *UserFun) Str() string {
	if f.Name != "" {
		return "<fun " + f.Name + ">"
	}
	return "<anonymous fun>"
}
func (f *UserFun) Rep() string { return f.Str() }

// Bind returns a copy of f bound to self, for instance-method dispatch.
func (f *UserFun) Bind(self Value) *UserFun {
	bound := *f
	bound.id = NextID()
	bound.BoundSelf = self
	return &bound
}

func (f *UserFun) Arity() (min, max int) {
	max = len(f.Params)
	for _, p := range f.Params {
		if p.Default == nil {
			min++
		}
	}
	return min, max
}
