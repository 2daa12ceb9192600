// Package ast defines the parse-tree node types produced by internal/parser
// and consumed by internal/eval.
package ast

import (
	"bytes"
	"strings"

	"github.com/questlang/quest/internal/token"
)

// Node is implemented by every AST node.
type Node interface {
	Pos() token.Position
	String() string
}

// Statement is a top-level or block-level node that is executed for effect.
type Statement interface {
	Node
	statementNode()
}

// Expression is a node that evaluates to a value.
type Expression interface {
	Node
	expressionNode()
}

// Program is the root node: a sequence of top-level statements.
type Program struct {
	Statements []Statement
}

func (p *Program) Pos() token.Position {
	if len(p.Statements) > 0 {
		return p.Statements[0].Pos()
	}
	return token.Position{}
}

func (p *Program) String() string {
	var buf bytes.Buffer
	for _, s := range p.Statements {
		buf.WriteString(s.String())
		buf.WriteString("\n")
	}
	return buf.String()
}

func joinExprs(exprs []Expression, sep string) string {
	parts := make([]string, len(exprs))
	for i, e := range exprs {
		parts[i] = e.String()
	}
	return strings.Join(parts, sep)
}

func joinStmts(stmts []Statement, sep string) string {
	parts := make([]string, len(stmts))
	for i, s := range stmts {
		parts[i] = s.String()
	}
	return strings.Join(parts, sep)
}
