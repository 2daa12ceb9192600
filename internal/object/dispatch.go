// Method dispatch: object.CallMethod is the single entry point the
// evaluator calls for every `target.method(args...)` expression. Universal
// object methods (cls/str/_rep/_doc/_id) are handled here uniformly; each
// value kind's own method table lives in the methods_*.go files beside it.
//
// CallUserFn breaks what would otherwise be an object<->eval import cycle:
// higher-order methods (Array.map, Array.filter, ...) need to invoke a
// UserFun/Fun callback, but only internal/eval knows how to run a function
// body against a Scope. eval.New wires CallUserFn once at start-up; the
// per-kind method tables that run callbacks (Str, Array, Dict, Struct,
// Type, Module, Fun, UserFun) receive it as a parameter rather than
// calling a package-level variable directly, so the dependency is explicit
// at each call site. Grounded on the teacher's interp/evaluator callback
// segregation in exception_manager.go, adapted from an interface to a
// plain function value since Quest's dispatch has a single callback shape.
package object

// CallUserFn invokes fn (a *Fun or *UserFun) with args, in the dynamic
// context represented by scope (an internal/eval.Scope, passed opaquely).
type CallUserFn func(fn Value, args []Value, scope interface{}) (Value, error)

// WrongArgc reports a builtin/method call with the wrong argument count.
func WrongArgc(who string, want, got int) error {
	return Raise(ArgErr, "%s expects %d argument(s), got %d", who, want, got)
}

// CallMethod looks up and invokes method name on target with args. call is
// used to invoke any UserFun/Fun value produced along the way (e.g. a
// higher-order method's callback argument); scope is threaded through
// opaquely to call.
func CallMethod(target Value, name string, args []Value, call CallUserFn, scope interface{}) (Value, error) {
	switch name {
	case "cls":
		if len(args) != 0 {
			return nil, WrongArgc("cls", 0, len(args))
		}
		return NewStr(target.Cls()), nil
	case "str":
		if len(args) != 0 {
			return nil, WrongArgc("str", 0, len(args))
		}
		return NewStr(target.Str()), nil
	case "_rep":
		if len(args) != 0 {
			return nil, WrongArgc("_rep", 0, len(args))
		}
		return NewStr(target.Rep()), nil
	case "_id":
		if len(args) != 0 {
			return nil, WrongArgc("_id", 0, len(args))
		}
		return NewInt(target.Id()), nil
	case "_doc":
		if len(args) != 0 {
			return nil, WrongArgc("_doc", 0, len(args))
		}
		if d, ok := target.(Doc); ok {
			return NewStr(d.Doc()), nil
		}
		return NewStr(""), nil
	}

	switch t := target.(type) {
	case *Int:
		return callIntMethod(t, name, args)
	case *Float:
		return callFloatMethod(t, name, args)
	case *Decimal:
		return callDecimalMethod(t, name, args)
	case *BigInt:
		return callBigIntMethod(t, name, args)
	case *Str:
		return callStrMethod(t, name, args, call, scope)
	case *Bytes:
		return callBytesMethod(t, name, args)
	case *Array:
		return callArrayMethod(t, name, args, call, scope)
	case *Dict:
		return callDictMethod(t, name, args, call, scope)
	case *QSet:
		return callSetMethod(t, name, args)
	case *NDArray:
		return callNDArrayMethod(t, name, args)
	case *Struct:
		return callStructMethod(t, name, args, call, scope)
	case *Type:
		return callTypeMethod(t, name, args, call, scope)
	case *Trait:
		return callTraitMethod(t, name, args)
	case *Exception:
		return callExceptionMethod(t, name, args)
	case *Module:
		return callModuleMethod(t, name, args, call, scope)
	case *Kind:
		return callKindMethod(t, name, args)
	case *Fun:
		return callFunMethod(t, name, args, call, scope)
	case *UserFun:
		return callUserFunMethod(t, name, args, call, scope)
	case *StubOpaque:
		return nil, Raise(RuntimeErr, "%s.%s is not implemented in this build", t.Kind, name)
	}

	return nil, Raise(AttrErr, "%s has no method %q", target.Cls(), name)
}
