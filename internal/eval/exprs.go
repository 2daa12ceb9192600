// Operator evaluation: evalPrefix/evalInfix/evalLogical implement Quest's
// "operators are sugar for method calls" design note (spec.md §4.1) by
// mapping each operator token to a method name and dispatching through
// object.CallMethod, the same entry point a written-out method call uses.
// evalAssign/evalDot/evalIndex cover the remaining lvalue-producing
// expression forms. Grounded on the teacher's interp/evaluator infix/prefix
// dispatch (operator switch delegating to runtime.Value arithmetic
// methods), reshaped from a closed Go-side switch on value kind into a
// method-name lookup. `+ - * /` look up methods named by the symbol itself,
// which only the built-in method tables define; a user type's declared
// methods have identifier names, so it cannot supply those four operators.
package eval

import (
	"github.com/questlang/quest/internal/ast"
	"github.com/questlang/quest/internal/object"
)

// infixMethod maps a symbolic infix operator to the method name
// CallMethod looks up for it; "??" is handled separately since it is a
// control-flow form (lazy right-hand side), not a method call.
var infixMethod = map[string]string{
	"+":  "+",
	"-":  "-",
	"*":  "*",
	"/":  "/",
	"%":  "mod",
	"^":  "pow",
	"==": "eq",
	"!=": "neq",
	"<":  "lt",
	">":  "gt",
	"<=": "lte",
	">=": "gte",
}

func evalPrefix(n *ast.PrefixExpression, scope *Scope) (object.Value, error) {
	right, err := Eval(n.Right, scope)
	if err != nil {
		return nil, err
	}
	switch n.Operator {
	case "-":
		return object.CallMethod(right, "neg", nil, callUserFn, scope)
	case "not", "!":
		return object.NewBool(!right.Truthy()), nil
	}
	return nil, object.Raise(object.RuntimeErr, "unsupported prefix operator %q", n.Operator)
}

func evalInfix(n *ast.InfixExpression, scope *Scope) (object.Value, error) {
	if n.Operator == "??" {
		left, err := Eval(n.Left, scope)
		if err != nil {
			return nil, err
		}
		if _, isNil := left.(object.Nil); isNil {
			return Eval(n.Right, scope)
		}
		return left, nil
	}

	left, err := Eval(n.Left, scope)
	if err != nil {
		return nil, err
	}
	right, err := Eval(n.Right, scope)
	if err != nil {
		return nil, err
	}
	method, ok := infixMethod[n.Operator]
	if !ok {
		return nil, object.Raise(object.RuntimeErr, "unsupported infix operator %q", n.Operator)
	}
	return object.CallMethod(left, method, []object.Value{right}, callUserFn, scope)
}

func evalLogical(n *ast.LogicalExpression, scope *Scope) (object.Value, error) {
	left, err := Eval(n.Left, scope)
	if err != nil {
		return nil, err
	}
	switch n.Operator {
	case "and":
		if !left.Truthy() {
			return left, nil
		}
		return Eval(n.Right, scope)
	case "or":
		if left.Truthy() {
			return left, nil
		}
		return Eval(n.Right, scope)
	}
	return nil, object.Raise(object.RuntimeErr, "unsupported logical operator %q", n.Operator)
}

func evalDot(n *ast.DotExpression, scope *Scope) (object.Value, error) {
	target, err := Eval(n.Target, scope)
	if err != nil {
		return nil, err
	}
	if f, ok := target.(object.Fielded); ok {
		if v, ok := f.GetField(n.Name); ok {
			return v, nil
		}
	}
	return object.CallMethod(target, n.Name, nil, callUserFn, scope)
}

func evalIndex(n *ast.IndexExpression, scope *Scope) (object.Value, error) {
	target, err := Eval(n.Target, scope)
	if err != nil {
		return nil, err
	}
	idx, err := Eval(n.Index, scope)
	if err != nil {
		return nil, err
	}
	ix, ok := target.(object.Indexable)
	if !ok {
		return nil, object.Raise(object.TypeErr, "%s is not indexable", target.Cls())
	}
	return ix.GetIndex(idx)
}

func evalAssign(n *ast.AssignExpression, scope *Scope) (object.Value, error) {
	value, err := Eval(n.Value, scope)
	if err != nil {
		return nil, err
	}
	switch target := n.Target.(type) {
	case *ast.Identifier:
		scope.Set(target.Name, value)
		return value, nil
	case *ast.IndexExpression:
		recv, err := Eval(target.Target, scope)
		if err != nil {
			return nil, err
		}
		idx, err := Eval(target.Index, scope)
		if err != nil {
			return nil, err
		}
		ix, ok := recv.(object.Indexable)
		if !ok {
			return nil, object.Raise(object.TypeErr, "%s does not support index assignment", recv.Cls())
		}
		if err := ix.SetIndex(idx, value); err != nil {
			return nil, err
		}
		return value, nil
	case *ast.DotExpression:
		recv, err := Eval(target.Target, scope)
		if err != nil {
			return nil, err
		}
		f, ok := recv.(object.Fielded)
		if !ok {
			return nil, object.Raise(object.TypeErr, "%s has no assignable fields", recv.Cls())
		}
		if err := f.SetField(target.Name, value); err != nil {
			return nil, err
		}
		return value, nil
	}
	return nil, object.Raise(object.RuntimeErr, "invalid assignment target %T", n.Target)
}
