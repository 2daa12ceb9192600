// Package parser implements a Pratt (operator-precedence) parser that turns
// a token.Token stream from internal/lexer into an internal/ast.Program.
//
// The parser is structured the way the teacher structures its own Pratt
// parser (a prefix-parse-function table keyed by token.Type, an infix-parse-
// function table with per-operator precedence, a New(lexer) *Parser /
// ParseProgram() *ast.Program / Errors() []string surface) but the grammar
// itself — the rules, not the parsing technique — is Quest's own.
package parser

import (
	"fmt"

	"github.com/questlang/quest/internal/ast"
	"github.com/questlang/quest/internal/errors"
	"github.com/questlang/quest/internal/lexer"
	"github.com/questlang/quest/internal/token"
)

const (
	_ int = iota
	LOWEST
	ASSIGNMENT  // =
	LOGICAL_OR  // or
	LOGICAL_AND // and
	EQUALITY    // == !=
	COMPARISON  // < > <= >=
	NULLCOALESCE
	SUM      // + -
	PRODUCT  // * / %
	POWER    // ^
	PREFIX   // -x, not x
	CALL     // f(x)
	INDEXDOT // a[i], a.b
)

var precedences = map[token.Type]int{
	token.OR:            LOGICAL_OR,
	token.AND:           LOGICAL_AND,
	token.EQ:            EQUALITY,
	token.NEQ:           EQUALITY,
	token.LT:            COMPARISON,
	token.GT:            COMPARISON,
	token.LE:            COMPARISON,
	token.GE:            COMPARISON,
	token.QUESTIONQUEST: NULLCOALESCE,
	token.PLUS:          SUM,
	token.MINUS:         SUM,
	token.STAR:          PRODUCT,
	token.SLASH:         PRODUCT,
	token.PERCENT:       PRODUCT,
	token.CARET:         POWER,
	token.LPAREN:        CALL,
	token.LBRACKET:      INDEXDOT,
	token.DOT:           INDEXDOT,
}

type (
	prefixParseFn func() ast.Expression
	infixParseFn  func(ast.Expression) ast.Expression
)

// parseErr pairs a message with the source position it was raised at.
type parseErr struct {
	msg string
	pos token.Position
}

// Parser holds parse state: the lexer, current/peek tokens, and the
// prefix/infix parse-function tables.
type Parser struct {
	l      *lexer.Lexer
	errs   []parseErr
	source string
	file   string

	cur  token.Token
	peek token.Token

	prefixFns map[token.Type]prefixParseFn
	infixFns  map[token.Type]infixParseFn
}

// New creates a Parser reading tokens from l.
func New(l *lexer.Lexer, source, file string) *Parser {
	p := &Parser{l: l, source: source, file: file}
	p.prefixFns = map[token.Type]prefixParseFn{
		token.IDENT:    p.parseIdentifier,
		token.INT:      p.parseIntLiteral,
		token.FLOAT:    p.parseFloatLiteral,
		token.STRING:   p.parseStringLiteral,
		token.TRUE:     p.parseBoolLiteral,
		token.FALSE:    p.parseBoolLiteral,
		token.NIL:      p.parseNilLiteral,
		token.LPAREN:   p.parseGroupedExpression,
		token.LBRACKET: p.parseArrayLiteral,
		token.LBRACE:   p.parseDictLiteral,
		token.MINUS:    p.parsePrefixExpression,
		token.BANG:     p.parsePrefixExpression,
		token.NOT:      p.parsePrefixExpression,
		token.FUN:      p.parseFunctionLiteral,
		token.IF:       p.parseIfExpression,
	}
	p.infixFns = map[token.Type]infixParseFn{
		token.PLUS:          p.parseInfixExpression,
		token.MINUS:         p.parseInfixExpression,
		token.STAR:          p.parseInfixExpression,
		token.SLASH:         p.parseInfixExpression,
		token.PERCENT:       p.parseInfixExpression,
		token.CARET:         p.parseInfixExpression,
		token.EQ:            p.parseInfixExpression,
		token.NEQ:            p.parseInfixExpression,
		token.LT:            p.parseInfixExpression,
		token.GT:            p.parseInfixExpression,
		token.LE:            p.parseInfixExpression,
		token.GE:            p.parseInfixExpression,
		token.QUESTIONQUEST: p.parseInfixExpression,
		token.AND:           p.parseLogicalExpression,
		token.OR:            p.parseLogicalExpression,
		token.LPAREN:        p.parseCallExpression,
		token.LBRACKET:      p.parseIndexExpression,
		token.DOT:           p.parseDotExpression,
	}

	p.next()
	p.next()
	return p
}

// Errors returns accumulated parse error messages; each ends with the
// " at LINE:COLUMN" position it was raised at.
func (p *Parser) Errors() []string {
	out := make([]string, len(p.errs))
	for i, e := range p.errs {
		out[i] = e.msg
	}
	return out
}

// CompilerErrors converts accumulated parser errors into formatted
// internal/errors.CompilerError values, ready for terminal display.
func (p *Parser) CompilerErrors() []*errors.CompilerError {
	out := make([]*errors.CompilerError, 0, len(p.errs))
	for _, e := range p.errs {
		out = append(out, errors.NewCompilerError(e.pos, e.msg, p.source, p.file))
	}
	return out
}

func (p *Parser) next() {
	p.cur = p.peek
	p.peek = p.l.NextToken()
}

func (p *Parser) curIs(t token.Type) bool  { return p.cur.Type == t }
func (p *Parser) peekIs(t token.Type) bool { return p.peek.Type == t }

func (p *Parser) expectPeek(t token.Type) bool {
	if p.peekIs(t) {
		p.next()
		return true
	}
	p.peekError(t)
	return false
}

func (p *Parser) peekError(t token.Type) {
	msg := fmt.Sprintf("expected next token to be %s, got %s (%q) at %s", t, p.peek.Type, p.peek.Literal, p.peek.Pos)
	p.errs = append(p.errs, parseErr{msg: msg, pos: p.peek.Pos})
}

func (p *Parser) errorf(format string, args ...interface{}) {
	msg := fmt.Sprintf(format, args...) + fmt.Sprintf(" at %s", p.cur.Pos)
	p.errs = append(p.errs, parseErr{msg: msg, pos: p.cur.Pos})
}

func (p *Parser) peekPrecedence() int {
	if pr, ok := precedences[p.peek.Type]; ok {
		return pr
	}
	return LOWEST
}

func (p *Parser) curPrecedence() int {
	if pr, ok := precedences[p.cur.Type]; ok {
		return pr
	}
	return LOWEST
}

// skipStatementSeparators consumes any run of `;`. Newlines are treated as
// whitespace by the lexer, so statement boundaries are purely
// `;`-or-next-statement-keyword driven; both forms are accepted.
func (p *Parser) skipStatementSeparators() {
	for p.curIs(token.SEMI) {
		p.next()
	}
}

// ParseProgram parses the whole token stream into a Program.
func (p *Parser) ParseProgram() *ast.Program {
	prog := &ast.Program{}
	p.skipStatementSeparators()
	for !p.curIs(token.EOF) {
		stmt := p.parseStatement()
		if stmt != nil {
			prog.Statements = append(prog.Statements, stmt)
		}
		p.next()
		p.skipStatementSeparators()
	}
	return prog
}

// parseBlock parses statements until one of the given terminator token
// types is seen (without consuming the terminator).
func (p *Parser) parseBlock(terminators ...token.Type) []ast.Statement {
	var stmts []ast.Statement
	p.skipStatementSeparators()
	for !p.curIs(token.EOF) && !p.curInSet(terminators) {
		stmt := p.parseStatement()
		if stmt != nil {
			stmts = append(stmts, stmt)
		}
		p.next()
		p.skipStatementSeparators()
	}
	return stmts
}

func (p *Parser) curInSet(types []token.Type) bool {
	for _, t := range types {
		if p.cur.Type == t {
			return true
		}
	}
	return false
}
