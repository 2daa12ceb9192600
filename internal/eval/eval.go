// Package eval implements Quest's tree-walking evaluator: Eval walks an
// internal/ast tree against a Scope and produces an object.Value, using
// Go's own error return channel for both real exceptions
// (*object.Exception) and the internal break/continue/return control
// signals defined in signals.go.
package eval

import (
	"github.com/questlang/quest/internal/ast"
	"github.com/questlang/quest/internal/object"
	"github.com/questlang/quest/internal/object/modules"
)

// New builds a fresh root Scope with every standard module, the
// exception-kind identifiers, and `sys` bound, ready to evaluate a
// top-level program.
func New(scriptPath string, argv []string, searchPaths []string) *Scope {
	root := NewRootScope(scriptPath, argv, searchPaths)
	bindExceptionKinds(root)
	bindBuiltinKinds(root)
	for name, mod := range modules.Builtins() {
		root.Define(name, mod)
	}
	root.Define("sys", newSysModule(root))
	return root
}

// builtinKindNames lists the built-in value kinds that expose static
// constructors (Array.new, Decimal.zero, ...) per spec.md §4.4.
var builtinKindNames = []string{"Array", "Decimal", "BigInt", "Dict", "Set"}

// bindBuiltinKinds pre-binds each built-in kind name to an object.Kind
// namespace value, so `Array.new(3)` resolves through the same
// DotExpression-callee/CallMethod path as any other static method call.
func bindBuiltinKinds(scope *Scope) {
	for _, name := range builtinKindNames {
		scope.Define(name, object.NewKind(name))
	}
}

var exceptionKindNames = []string{
	"Err", "ValueErr", "TypeErr", "IndexErr", "KeyErr", "ArgErr",
	"AttrErr", "NameErr", "RuntimeErr", "IOErr", "ImportErr", "SyntaxErr",
}

// bindExceptionKinds pre-binds each closed exception kind as a
// lightweight *object.Type carrying only its name, so `e.type == ValueErr`
// reads as an ordinary identifier comparison in script code.
func bindExceptionKinds(scope *Scope) {
	for _, name := range exceptionKindNames {
		scope.Define(name, object.NewType(name))
	}
}

// Eval dispatches on the dynamic type of node.
func Eval(node ast.Node, scope *Scope) (object.Value, error) {
	switch n := node.(type) {
	case *ast.Program:
		return evalStatements(n.Statements, scope)

	// Statements
	case *ast.LetStatement:
		v, err := Eval(n.Value, scope)
		if err != nil {
			return nil, err
		}
		scope.Define(n.Name, v)
		return object.NilValue, nil
	case *ast.ExpressionStatement:
		return Eval(n.Expr, scope)
	case *ast.ReturnStatement:
		var v object.Value = object.NilValue
		if n.Value != nil {
			rv, err := Eval(n.Value, scope)
			if err != nil {
				return nil, err
			}
			v = rv
		}
		return nil, returnSignal{Value: v}
	case *ast.BreakStatement:
		return nil, breakSignal{}
	case *ast.ContinueStatement:
		return nil, continueSignal{}
	case *ast.WhileStatement:
		return evalWhile(n, scope)
	case *ast.ForStatement:
		return evalFor(n, scope)
	case *ast.TryStatement:
		return evalTry(n, scope)
	case *ast.RaiseStatement:
		return evalRaise(n, scope)
	case *ast.TypeDecl:
		return evalTypeDecl(n, scope)
	case *ast.TraitDecl:
		return evalTraitDecl(n, scope)

	// Expressions
	case *ast.Identifier:
		if v, ok := scope.Get(n.Name); ok {
			return v, nil
		}
		return nil, object.Raise(object.NameErr, "undefined name %q", n.Name)
	case *ast.IntLiteral:
		if n.BigInt {
			bi, err := object.BigIntFromString(n.Raw, 0)
			if err != nil {
				return nil, err
			}
			return bi, nil
		}
		return object.NewInt(n.Value), nil
	case *ast.FloatLiteral:
		return object.NewFloat(n.Value), nil
	case *ast.StringLiteral:
		return object.NewStr(n.Value), nil
	case *ast.BoolLiteral:
		return object.NewBool(n.Value), nil
	case *ast.NilLiteral:
		return object.NilValue, nil
	case *ast.ArrayLiteral:
		items := make([]object.Value, len(n.Elements))
		for i, e := range n.Elements {
			v, err := Eval(e, scope)
			if err != nil {
				return nil, err
			}
			items[i] = v
		}
		return object.NewArray(items), nil
	case *ast.DictLiteral:
		d := object.NewDict()
		for _, entry := range n.Entries {
			k, err := Eval(entry.Key, scope)
			if err != nil {
				return nil, err
			}
			ks, ok := k.(*object.Str)
			if !ok {
				return nil, object.Raise(object.TypeErr, "dict literal keys must be Str, got %s", k.Cls())
			}
			v, err := Eval(entry.Value, scope)
			if err != nil {
				return nil, err
			}
			d.Set(ks.Val(), v)
		}
		return d, nil
	case *ast.FunctionLiteral:
		fn := object.NewUserFun(n.Name, n.Params, n.Body, scope)
		if n.Name != "" {
			scope.Define(n.Name, fn)
		}
		return fn, nil
	case *ast.CallExpression:
		return evalCall(n, scope)
	case *ast.IndexExpression:
		return evalIndex(n, scope)
	case *ast.DotExpression:
		return evalDot(n, scope)
	case *ast.PrefixExpression:
		return evalPrefix(n, scope)
	case *ast.InfixExpression:
		return evalInfix(n, scope)
	case *ast.LogicalExpression:
		return evalLogical(n, scope)
	case *ast.IfExpression:
		return evalIf(n, scope)
	case *ast.AssignExpression:
		return evalAssign(n, scope)
	}
	return nil, object.Raise(object.RuntimeErr, "eval: unhandled node type %T", node)
}

// evalStatements runs stmts in scope, returning the value of the last
// statement (Quest's implicit-last-value rule) or Nil if the block is
// empty. An expression or a try statement yields its value; let, type,
// trait and loop statements yield Nil.
func evalStatements(stmts []ast.Statement, scope *Scope) (object.Value, error) {
	var result object.Value = object.NilValue
	for _, stmt := range stmts {
		v, err := Eval(stmt, scope)
		if err != nil {
			return nil, err
		}
		result = v
	}
	return result, nil
}

// evalBlock runs a nested block (loop body, if branch, function body) in
// its own child scope.
func evalBlock(stmts []ast.Statement, parent *Scope) (object.Value, error) {
	return evalStatements(stmts, parent.Child())
}

func evalWhile(n *ast.WhileStatement, scope *Scope) (object.Value, error) {
	for {
		cond, err := Eval(n.Condition, scope)
		if err != nil {
			return nil, err
		}
		if !cond.Truthy() {
			return object.NilValue, nil
		}
		_, err = evalBlock(n.Body, scope)
		if err != nil {
			switch err.(type) {
			case breakSignal:
				return object.NilValue, nil
			case continueSignal:
				continue
			default:
				return nil, err
			}
		}
	}
}

func evalFor(n *ast.ForStatement, scope *Scope) (object.Value, error) {
	iterVal, err := Eval(n.Iterable, scope)
	if err != nil {
		return nil, err
	}
	iterable, ok := iterVal.(object.Iterable)
	if !ok {
		return nil, object.Raise(object.TypeErr, "%s is not iterable", iterVal.Cls())
	}
	it := iterable.Iterate()
	for {
		v, hasNext := it.Next()
		if !hasNext {
			return object.NilValue, nil
		}
		child := scope.Child()
		child.Define(n.Name, v)
		_, err := evalStatements(n.Body, child)
		if err != nil {
			switch err.(type) {
			case breakSignal:
				return object.NilValue, nil
			case continueSignal:
				continue
			default:
				return nil, err
			}
		}
	}
}

func evalIf(n *ast.IfExpression, scope *Scope) (object.Value, error) {
	cond, err := Eval(n.Condition, scope)
	if err != nil {
		return nil, err
	}
	if cond.Truthy() {
		return evalBlock(n.Consequence, scope)
	}
	if n.Alternative != nil {
		return evalBlock(n.Alternative, scope)
	}
	return object.NilValue, nil
}
