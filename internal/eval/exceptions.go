// Exception construction and try/catch/ensure control flow, per spec.md
// §4.5. constructException backs the `ValueErr("msg")`/`Custom("Name",
// "msg")` call forms evalCall routes here instead of struct construction.
// evalTry matches catch clauses by object.Exception.IsSubtypeOf and always
// runs its ensure block before the result (success, catch result, or
// propagating exception) continues outward, including when the body or a
// catch clause itself raises, per "ensure always runs on exit". Grounded
// on the teacher's interp/evaluator exception_manager.go try/catch/finally
// walk, reshaped from the teacher's panic/recover-based unwind into plain
// sequential Go error returns since Quest's control-flow signals already
// ride the (Value, error) channel rather than Go panics (ExitSignal is the
// sole deliberate exception to that rule; see signals.go).
package eval

import (
	"github.com/questlang/quest/internal/ast"
	"github.com/questlang/quest/internal/object"
)

// constructException implements the `<Kind>(msg[, cause])` and
// `Custom(name, msg[, cause])` construction forms.
func constructException(name string, args []object.Value) (object.Value, error) {
	if name == "Custom" {
		if len(args) < 2 || len(args) > 3 {
			return nil, object.Raise(object.ArgErr, "Custom expects (name, message[, cause]), got %d argument(s)", len(args))
		}
		custom, ok := args[0].(*object.Str)
		if !ok {
			return nil, object.Raise(object.TypeErr, "Custom's name argument must be a Str")
		}
		msg, ok := args[1].(*object.Str)
		if !ok {
			return nil, object.Raise(object.TypeErr, "Custom's message argument must be a Str")
		}
		exc := object.NewException(object.Err, custom.Val(), msg.Val())
		if len(args) == 3 {
			cause, ok := args[2].(*object.Exception)
			if !ok {
				return nil, object.Raise(object.TypeErr, "Custom's cause argument must be an Exception")
			}
			exc.Cause = cause
		}
		return exc, nil
	}

	if len(args) < 1 || len(args) > 2 {
		return nil, object.Raise(object.ArgErr, "%s expects (message[, cause]), got %d argument(s)", name, len(args))
	}
	msg, ok := args[0].(*object.Str)
	if !ok {
		return nil, object.Raise(object.TypeErr, "%s's message argument must be a Str", name)
	}
	exc := object.NewException(object.Kind(name), "", msg.Val())
	if len(args) == 2 {
		cause, ok := args[1].(*object.Exception)
		if !ok {
			return nil, object.Raise(object.TypeErr, "%s's cause argument must be an Exception", name)
		}
		exc.Cause = cause
	}
	return exc, nil
}

// evalTry runs the body, dispatches a raised exception to the first
// matching catch clause (in source order), and unconditionally runs the
// ensure block before propagating whatever the body/catch produced.
func evalTry(n *ast.TryStatement, scope *Scope) (object.Value, error) {
	result, bodyErr := evalBlock(n.Body, scope)

	if bodyErr == nil {
		return finishTry(result, nil, n.Ensure, scope)
	}
	if isControlSignal(bodyErr) {
		return finishTry(nil, bodyErr, n.Ensure, scope)
	}

	exc := object.AsException(bodyErr)
	for _, c := range n.Catches {
		if c.Kind != "" && !exc.IsSubtypeOf(c.Kind) {
			continue
		}
		catchScope := scope.Child()
		if c.Binding != "" {
			catchScope.Define(c.Binding, exc)
		}
		catchScope.PushHandledException(exc)
		catchResult, catchErr := evalStatements(c.Body, catchScope)
		catchScope.PopHandledException()
		return finishTry(catchResult, catchErr, n.Ensure, scope)
	}
	return finishTry(nil, exc, n.Ensure, scope)
}

// finishTry runs the ensure block (if present) and then returns whichever
// of (result, err) the ensure block didn't itself override by raising.
func finishTry(result object.Value, err error, ensure []ast.Statement, scope *Scope) (object.Value, error) {
	if ensure == nil {
		return result, err
	}
	if _, ensureErr := evalBlock(ensure, scope); ensureErr != nil {
		return nil, ensureErr
	}
	return result, err
}

// evalRaise implements `raise expr` and bare `raise` (re-raise of the
// innermost exception currently being handled).
func evalRaise(n *ast.RaiseStatement, scope *Scope) (object.Value, error) {
	if n.Value == nil {
		exc := scope.CurrentHandledException()
		if exc == nil {
			return nil, object.Raise(object.RuntimeErr, "raise with no active exception to re-raise")
		}
		return nil, exc
	}
	v, err := Eval(n.Value, scope)
	if err != nil {
		return nil, err
	}
	exc, ok := v.(*object.Exception)
	if !ok {
		return nil, object.Raise(object.TypeErr, "raise expects an Exception value, got %s", v.Cls())
	}
	return nil, exc
}
