package ast

import (
	"bytes"

	"github.com/questlang/quest/internal/token"
)

type BaseStmt struct {
	TokPos token.Position
}

func (b BaseStmt) Pos() token.Position { return b.TokPos }
func (BaseStmt) statementNode()        {}

// LetStatement is `let name = value`.
type LetStatement struct {
	BaseStmt
	Name  string
	Value Expression
}

func (s *LetStatement) String() string { return "let " + s.Name + " = " + s.Value.String() }

// ExpressionStatement wraps an expression evaluated for its side effect or
// as the implicit return value of a block.
type ExpressionStatement struct {
	BaseStmt
	Expr Expression
}

func (s *ExpressionStatement) String() string { return s.Expr.String() }

// ReturnStatement is `return` or `return expr`.
type ReturnStatement struct {
	BaseStmt
	Value Expression // nil for bare `return`
}

func (s *ReturnStatement) String() string {
	if s.Value == nil {
		return "return"
	}
	return "return " + s.Value.String()
}

// BreakStatement is `break`.
type BreakStatement struct{ BaseStmt }

func (s *BreakStatement) String() string { return "break" }

// ContinueStatement is `continue`.
type ContinueStatement struct{ BaseStmt }

func (s *ContinueStatement) String() string { return "continue" }

// WhileStatement is `while cond stmts end`.
type WhileStatement struct {
	BaseStmt
	Condition Expression
	Body      []Statement
}

func (s *WhileStatement) String() string { return "while " + s.Condition.String() + " ... end" }

// ForStatement is `for name in iterable stmts end`.
type ForStatement struct {
	BaseStmt
	Name     string
	Iterable Expression
	Body     []Statement
}

func (s *ForStatement) String() string {
	return "for " + s.Name + " in " + s.Iterable.String() + " ... end"
}

// CatchClause is one `catch Kind as binding { ... }` (Kind == "" means bare catch).
type CatchClause struct {
	Kind    string
	Binding string
	Body    []Statement
}

// TryStatement is `try { ... } catch ... { ... } ensure { ... }`.
type TryStatement struct {
	BaseStmt
	Body    []Statement
	Catches []CatchClause
	Ensure  []Statement // nil if no ensure clause
}

func (s *TryStatement) String() string {
	var buf bytes.Buffer
	buf.WriteString("try { ... }")
	for _, c := range s.Catches {
		buf.WriteString(" catch ")
		if c.Kind != "" {
			buf.WriteString(c.Kind + " ")
		}
		buf.WriteString("as " + c.Binding + " { ... }")
	}
	if s.Ensure != nil {
		buf.WriteString(" ensure { ... }")
	}
	return buf.String()
}

// RaiseStatement is `raise expr` or bare `raise` (re-raise).
type RaiseStatement struct {
	BaseStmt
	Value Expression // nil for bare re-raise
}

func (s *RaiseStatement) String() string {
	if s.Value == nil {
		return "raise"
	}
	return "raise " + s.Value.String()
}

// FieldDecl is one field in a type declaration: `Int: x` with optional flags.
type FieldDecl struct {
	Name     string
	TypeTag  string // "" if untyped
	Optional bool
	Default  Expression // nil if none
	Private  bool
}

// MethodDecl is an instance or static method defined inside a type/trait body.
type MethodDecl struct {
	Name   string
	Fn     *FunctionLiteral
	Static bool
}

// TypeDecl is `type Name { fields... } methods...`.
type TypeDecl struct {
	BaseStmt
	Name    string
	Fields  []FieldDecl
	Methods []MethodDecl
	Traits  []string // claimed trait names
}

func (s *TypeDecl) String() string { return "type " + s.Name + " { ... }" }

// MethodSig is a required method signature inside a trait declaration.
type MethodSig struct {
	Name  string
	Arity int
}

// TraitDecl is `trait Name { method sigs... }`.
type TraitDecl struct {
	BaseStmt
	Name    string
	Methods []MethodSig
}

func (s *TraitDecl) String() string { return "trait " + s.Name + " { ... }" }
