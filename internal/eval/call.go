// Function application: evalCall resolves a CallExpression's callee
// (built-in Fun, UserFun, bound method via a DotExpression callee, or a
// Type identifier naming struct construction per ast.CallExpression's doc
// comment) and applyFunction runs a UserFun body against a fresh child of
// its captured closure scope. callUserFn is the object.CallUserFn
// implementation threaded into object.CallMethod so higher-order methods
// (Array.map, ...) can invoke a callback without object importing eval.
package eval

import (
	"github.com/questlang/quest/internal/ast"
	"github.com/questlang/quest/internal/object"
)

// callUserFn satisfies object.CallUserFn; scopeIface is always the *Scope
// the calling CallMethod invocation was given.
func callUserFn(fn object.Value, args []object.Value, scopeIface interface{}) (object.Value, error) {
	scope, _ := scopeIface.(*Scope)
	if scope == nil {
		return nil, object.Raise(object.RuntimeErr, "internal error: missing scope in callback")
	}
	return applyFunction(fn, args, scope)
}

func evalArgs(exprs []ast.Expression, scope *Scope) ([]object.Value, error) {
	out := make([]object.Value, len(exprs))
	for i, e := range exprs {
		v, err := Eval(e, scope)
		if err != nil {
			return nil, err
		}
		out[i] = v
	}
	return out, nil
}

func evalCall(n *ast.CallExpression, scope *Scope) (object.Value, error) {
	if dot, ok := n.Callee.(*ast.DotExpression); ok {
		if err := rejectNamedArgs(n.ArgNames); err != nil {
			return nil, err
		}
		target, err := Eval(dot.Target, scope)
		if err != nil {
			return nil, err
		}
		args, err := evalArgs(n.Args, scope)
		if err != nil {
			return nil, err
		}
		return object.CallMethod(target, dot.Name, args, callUserFn, scope)
	}

	if ident, ok := n.Callee.(*ast.Identifier); ok {
		if object.IsBuiltinKind(ident.Name) || ident.Name == "Custom" {
			if err := rejectNamedArgs(n.ArgNames); err != nil {
				return nil, err
			}
			args, err := evalArgs(n.Args, scope)
			if err != nil {
				return nil, err
			}
			return constructException(ident.Name, args)
		}
		if v, found := scope.Get(ident.Name); found {
			if typ, ok := v.(*object.Type); ok {
				args, err := evalArgs(n.Args, scope)
				if err != nil {
					return nil, err
				}
				return constructStruct(typ, args, n.ArgNames, scope)
			}
		}
	}

	if err := rejectNamedArgs(n.ArgNames); err != nil {
		return nil, err
	}
	callee, err := Eval(n.Callee, scope)
	if err != nil {
		return nil, err
	}
	args, err := evalArgs(n.Args, scope)
	if err != nil {
		return nil, err
	}
	return applyFunction(callee, args, scope)
}

// rejectNamedArgs reports an ArgErr if any call argument used the `name:
// value` form; only struct construction supports named arguments.
func rejectNamedArgs(names []string) error {
	for _, name := range names {
		if name != "" {
			return object.Raise(object.ArgErr, "named arguments are only supported for struct construction, got %q", name)
		}
	}
	return nil
}

// applyFunction invokes fn (a *object.Fun or *object.UserFun) with args in
// the dynamic context of scope.
func applyFunction(fn object.Value, args []object.Value, scope *Scope) (object.Value, error) {
	switch f := fn.(type) {
	case *object.Fun:
		return f.Call(args, scope)
	case *object.UserFun:
		return applyUserFun(f, args)
	}
	return nil, object.Raise(object.TypeErr, "%s is not callable", fn.Cls())
}

func applyUserFun(f *object.UserFun, args []object.Value) (object.Value, error) {
	min, max := f.Arity()
	if len(args) < min || len(args) > max {
		return nil, object.Raise(object.ArgErr, "%s expects between %d and %d argument(s), got %d", funcLabel(f.Name), min, max, len(args))
	}
	closure, _ := f.Closure.(*Scope)
	if closure == nil {
		return nil, object.Raise(object.RuntimeErr, "internal error: function has no captured scope")
	}
	popCall := closure.PushCall(funcLabel(f.Name))
	defer popCall()
	call := closure.Child()
	if f.BoundSelf != nil {
		call.Define("self", f.BoundSelf)
	}
	for i, p := range f.Params {
		if i < len(args) {
			call.Define(p.Name, args[i])
			continue
		}
		if p.Default == nil {
			return nil, object.Raise(object.ArgErr, "missing argument %q for %s", p.Name, funcLabel(f.Name))
		}
		dv, err := Eval(p.Default, call)
		if err != nil {
			return nil, err
		}
		call.Define(p.Name, dv)
	}
	result, err := evalStatements(f.Body, call)
	if err != nil {
		if rs, ok := err.(returnSignal); ok {
			return rs.Value, nil
		}
		return nil, err
	}
	return result, nil
}

func funcLabel(name string) string {
	if name == "" {
		return "<anonymous fun>"
	}
	return name
}
