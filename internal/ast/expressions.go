package ast

import (
	"bytes"
	"fmt"

	"github.com/questlang/quest/internal/token"
)

type BaseExpr struct {
	TokPos token.Position
}

func (b BaseExpr) Pos() token.Position { return b.TokPos }
func (BaseExpr) expressionNode()       {}

// Identifier is a bare name reference.
type Identifier struct {
	BaseExpr
	Name string
}

func (i *Identifier) String() string { return i.Name }

// IntLiteral is an integer literal, already parsed to int64 (or marked BigInt).
type IntLiteral struct {
	BaseExpr
	Value  int64
	BigInt bool
	Raw    string
}

func (l *IntLiteral) String() string { return l.Raw }

// FloatLiteral is a floating-point literal.
type FloatLiteral struct {
	BaseExpr
	Value float64
	Raw   string
}

func (l *FloatLiteral) String() string { return l.Raw }

// StringLiteral is a double-quoted string literal, already escape-decoded.
type StringLiteral struct {
	BaseExpr
	Value string
}

func (l *StringLiteral) String() string { return fmt.Sprintf("%q", l.Value) }

// BoolLiteral is `true` or `false`.
type BoolLiteral struct {
	BaseExpr
	Value bool
}

func (l *BoolLiteral) String() string {
	if l.Value {
		return "true"
	}
	return "false"
}

// NilLiteral is the `nil` literal.
type NilLiteral struct{ BaseExpr }

func (l *NilLiteral) String() string { return "nil" }

// ArrayLiteral is `[e1, e2, ...]`.
type ArrayLiteral struct {
	BaseExpr
	Elements []Expression
}

func (l *ArrayLiteral) String() string { return "[" + joinExprs(l.Elements, ", ") + "]" }

// DictEntry is one `key: value` pair in a DictLiteral.
type DictEntry struct {
	Key   Expression
	Value Expression
}

// DictLiteral is `{k1: v1, k2: v2}`.
type DictLiteral struct {
	BaseExpr
	Entries []DictEntry
}

func (l *DictLiteral) String() string {
	var buf bytes.Buffer
	buf.WriteString("{")
	for i, e := range l.Entries {
		if i > 0 {
			buf.WriteString(", ")
		}
		buf.WriteString(e.Key.String())
		buf.WriteString(": ")
		buf.WriteString(e.Value.String())
	}
	buf.WriteString("}")
	return buf.String()
}

// Param is a function parameter with an optional default-value expression.
type Param struct {
	Name    string
	Default Expression // nil if no default
}

// FunctionLiteral is `fun (params) stmts end`.
type FunctionLiteral struct {
	BaseExpr
	Name   string // non-empty when declared as `fun name(...) ... end`
	Params []Param
	Body   []Statement
}

func (l *FunctionLiteral) String() string {
	names := make([]string, len(l.Params))
	for i, p := range l.Params {
		names[i] = p.Name
	}
	return "fun(" + joinStrings(names, ", ") + ") ... end"
}

func joinStrings(ss []string, sep string) string {
	out := ""
	for i, s := range ss {
		if i > 0 {
			out += sep
		}
		out += s
	}
	return out
}

// CallExpression is `callee(args...)`. Each argument may be positional or
// named (`callee(x: 1, y: 2)`); ArgNames is parallel to Args, holding the
// parameter/field name for a named argument or "" for a positional one.
// Named arguments are only meaningful for struct construction (spec.md
// §4.4 rule 1); ordinary function calls reject a non-empty name.
type CallExpression struct {
	BaseExpr
	Callee   Expression
	Args     []Expression
	ArgNames []string
}

func (c *CallExpression) String() string {
	parts := make([]string, len(c.Args))
	for i, a := range c.Args {
		if i < len(c.ArgNames) && c.ArgNames[i] != "" {
			parts[i] = c.ArgNames[i] + ": " + a.String()
		} else {
			parts[i] = a.String()
		}
	}
	return c.Callee.String() + "(" + joinStrings(parts, ", ") + ")"
}

// IndexExpression is `target[index]`.
type IndexExpression struct {
	BaseExpr
	Target Expression
	Index  Expression
}

func (e *IndexExpression) String() string {
	return e.Target.String() + "[" + e.Index.String() + "]"
}

// DotExpression is `target.Name`, either a field access or (when followed by
// a CallExpression as its Callee) a method call.
type DotExpression struct {
	BaseExpr
	Target Expression
	Name   string
}

func (e *DotExpression) String() string { return e.Target.String() + "." + e.Name }

// PrefixExpression is a unary operator applied to Right, e.g. `-x`, `not x`.
type PrefixExpression struct {
	BaseExpr
	Operator string
	Right    Expression
}

func (e *PrefixExpression) String() string { return "(" + e.Operator + e.Right.String() + ")" }

// InfixExpression is a binary operator applied to Left and Right.
type InfixExpression struct {
	BaseExpr
	Left     Expression
	Operator string
	Right    Expression
}

func (e *InfixExpression) String() string {
	return "(" + e.Left.String() + " " + e.Operator + " " + e.Right.String() + ")"
}

// LogicalExpression is a short-circuiting `and` / `or` operator,
// kept distinct from InfixExpression so the evaluator need not special-case
// operator strings for laziness.
type LogicalExpression struct {
	BaseExpr
	Left     Expression
	Operator string // "and" | "or"
	Right    Expression
}

func (e *LogicalExpression) String() string {
	return "(" + e.Left.String() + " " + e.Operator + " " + e.Right.String() + ")"
}

// IfExpression allows `if`/`elif`/`else` to be used as an expression whose
// value is the last expression of the taken branch.
type IfExpression struct {
	BaseExpr
	Condition   Expression
	Consequence []Statement
	Alternative []Statement // nil if no else/elif matched
}

func (e *IfExpression) String() string { return "if " + e.Condition.String() + " ... end" }

// AssignExpression is `target = value`; `=` is the only assignment operator.
type AssignExpression struct {
	BaseExpr
	Target   Expression
	Operator string // always "="
	Value    Expression
}

func (e *AssignExpression) String() string {
	return e.Target.String() + " " + e.Operator + " " + e.Value.String()
}

// Struct construction (`Point(1, 2)`) is parsed as an ordinary
// CallExpression whose Callee is an Identifier; the evaluator resolves it
// against the type registry when the identifier names a declared Type
// rather than a function, so no dedicated AST node is needed.
