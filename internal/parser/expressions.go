package parser

import (
	"strconv"
	"strings"

	"github.com/questlang/quest/internal/ast"
	"github.com/questlang/quest/internal/token"
)

func (p *Parser) parseExpression(precedence int) ast.Expression {
	prefix, ok := p.prefixFns[p.cur.Type]
	if !ok {
		p.errorf("no prefix parse function for %s", p.cur.Type)
		return nil
	}
	left := prefix()

	for !p.peekIs(token.SEMI) && precedence < p.peekPrecedence() {
		infix, ok := p.infixFns[p.peek.Type]
		if !ok {
			return left
		}
		p.next()
		left = infix(left)
	}

	// Assignment binds looser than everything else and is right-associative;
	// handled here rather than via the precedence table because only a
	// narrow set of left-hand shapes (identifier, index, dot) are valid.
	if precedence < ASSIGNMENT && isAssignOp(p.peek.Type) && isLValue(left) {
		op := p.peek
		p.next()
		p.next()
		value := p.parseExpression(ASSIGNMENT - 1)
		return &ast.AssignExpression{BaseExpr: ast.BaseExpr{TokPos: left.Pos()}, Target: left, Operator: op.Literal, Value: value}
	}

	return left
}

func isAssignOp(t token.Type) bool {
	return t == token.ASSIGN
}

func isLValue(e ast.Expression) bool {
	switch e.(type) {
	case *ast.Identifier, *ast.IndexExpression, *ast.DotExpression:
		return true
	default:
		return false
	}
}

func (p *Parser) parseIdentifier() ast.Expression {
	return &ast.Identifier{BaseExpr: ast.BaseExpr{TokPos: p.cur.Pos}, Name: p.cur.Literal}
}

func (p *Parser) parseIntLiteral() ast.Expression {
	pos := p.cur.Pos
	raw := p.cur.Literal
	lit := strings.ReplaceAll(raw, "_", "")
	bigint := strings.HasSuffix(lit, "n")
	if bigint {
		lit = strings.TrimSuffix(lit, "n")
	}
	var v int64
	var err error
	switch {
	case strings.HasPrefix(lit, "0x") || strings.HasPrefix(lit, "0X"):
		v, err = strconv.ParseInt(lit[2:], 16, 64)
	case strings.HasPrefix(lit, "0b") || strings.HasPrefix(lit, "0B"):
		v, err = strconv.ParseInt(lit[2:], 2, 64)
	case strings.HasPrefix(lit, "0o") || strings.HasPrefix(lit, "0O"):
		v, err = strconv.ParseInt(lit[2:], 8, 64)
	default:
		v, err = strconv.ParseInt(lit, 10, 64)
	}
	if err != nil {
		p.errorf("could not parse %q as integer", raw)
		return nil
	}
	return &ast.IntLiteral{BaseExpr: ast.BaseExpr{TokPos: pos}, Value: v, BigInt: bigint, Raw: raw}
}

func (p *Parser) parseFloatLiteral() ast.Expression {
	pos := p.cur.Pos
	raw := p.cur.Literal
	lit := strings.ReplaceAll(raw, "_", "")
	v, err := strconv.ParseFloat(lit, 64)
	if err != nil {
		p.errorf("could not parse %q as float", raw)
		return nil
	}
	return &ast.FloatLiteral{BaseExpr: ast.BaseExpr{TokPos: pos}, Value: v, Raw: raw}
}

func (p *Parser) parseStringLiteral() ast.Expression {
	return &ast.StringLiteral{BaseExpr: ast.BaseExpr{TokPos: p.cur.Pos}, Value: p.cur.Literal}
}

func (p *Parser) parseBoolLiteral() ast.Expression {
	return &ast.BoolLiteral{BaseExpr: ast.BaseExpr{TokPos: p.cur.Pos}, Value: p.cur.Type == token.TRUE}
}

func (p *Parser) parseNilLiteral() ast.Expression {
	return &ast.NilLiteral{BaseExpr: ast.BaseExpr{TokPos: p.cur.Pos}}
}

func (p *Parser) parseGroupedExpression() ast.Expression {
	p.next()
	exp := p.parseExpression(LOWEST)
	if !p.expectPeek(token.RPAREN) {
		return nil
	}
	return exp
}

func (p *Parser) parseArrayLiteral() ast.Expression {
	lit := &ast.ArrayLiteral{BaseExpr: ast.BaseExpr{TokPos: p.cur.Pos}}
	lit.Elements = p.parseExpressionList(token.RBRACKET)
	return lit
}

func (p *Parser) parseExpressionList(end token.Type) []ast.Expression {
	var list []ast.Expression
	if p.peekIs(end) {
		p.next()
		return list
	}
	p.next()
	list = append(list, p.parseExpression(LOWEST))
	for p.peekIs(token.COMMA) {
		p.next()
		p.next()
		list = append(list, p.parseExpression(LOWEST))
	}
	if !p.expectPeek(end) {
		return nil
	}
	return list
}

func (p *Parser) parseDictLiteral() ast.Expression {
	lit := &ast.DictLiteral{BaseExpr: ast.BaseExpr{TokPos: p.cur.Pos}}
	for !p.peekIs(token.RBRACE) {
		p.next()
		key := p.parseExpression(LOWEST)
		if !p.expectPeek(token.COLON) {
			return nil
		}
		p.next()
		val := p.parseExpression(LOWEST)
		lit.Entries = append(lit.Entries, ast.DictEntry{Key: key, Value: val})
		if p.peekIs(token.COMMA) {
			p.next()
		} else {
			break
		}
	}
	if !p.expectPeek(token.RBRACE) {
		return nil
	}
	return lit
}

func (p *Parser) parsePrefixExpression() ast.Expression {
	pos := p.cur.Pos
	op := p.cur.Literal
	p.next()
	right := p.parseExpression(PREFIX)
	return &ast.PrefixExpression{BaseExpr: ast.BaseExpr{TokPos: pos}, Operator: op, Right: right}
}

func (p *Parser) parseInfixExpression(left ast.Expression) ast.Expression {
	expr := &ast.InfixExpression{BaseExpr: ast.BaseExpr{TokPos: left.Pos()}, Left: left, Operator: p.cur.Literal}
	prec := p.curPrecedence()
	p.next()
	expr.Right = p.parseExpression(prec)
	return expr
}

func (p *Parser) parseLogicalExpression(left ast.Expression) ast.Expression {
	expr := &ast.LogicalExpression{BaseExpr: ast.BaseExpr{TokPos: left.Pos()}, Left: left, Operator: p.cur.Literal}
	prec := p.curPrecedence()
	p.next()
	expr.Right = p.parseExpression(prec)
	return expr
}

func (p *Parser) parseCallExpression(callee ast.Expression) ast.Expression {
	call := &ast.CallExpression{BaseExpr: ast.BaseExpr{TokPos: callee.Pos()}, Callee: callee}
	call.Args, call.ArgNames = p.parseCallArguments()
	return call
}

// parseCallArguments parses a parenthesized argument list where any
// argument may be written `name: expr` instead of plain `expr` (struct
// construction's named-argument form, spec.md §4.4 rule 1). A name is
// only recognized when the current token is an identifier immediately
// followed by a colon; anything else parses as an ordinary positional
// expression.
func (p *Parser) parseCallArguments() ([]ast.Expression, []string) {
	var args []ast.Expression
	var names []string
	if p.peekIs(token.RPAREN) {
		p.next()
		return args, names
	}
	p.next()
	name, arg := p.parseCallArgument()
	args = append(args, arg)
	names = append(names, name)
	for p.peekIs(token.COMMA) {
		p.next()
		p.next()
		name, arg := p.parseCallArgument()
		args = append(args, arg)
		names = append(names, name)
	}
	if !p.expectPeek(token.RPAREN) {
		return nil, nil
	}
	return args, names
}

func (p *Parser) parseCallArgument() (string, ast.Expression) {
	if p.cur.Type == token.IDENT && p.peekIs(token.COLON) {
		name := p.cur.Literal
		p.next() // consume the name, land on ':'
		p.next() // consume ':', land on the value's first token
		return name, p.parseExpression(LOWEST)
	}
	return "", p.parseExpression(LOWEST)
}

func (p *Parser) parseIndexExpression(left ast.Expression) ast.Expression {
	pos := left.Pos()
	p.next()
	idx := p.parseExpression(LOWEST)
	if !p.expectPeek(token.RBRACKET) {
		return nil
	}
	return &ast.IndexExpression{BaseExpr: ast.BaseExpr{TokPos: pos}, Target: left, Index: idx}
}

// parseDotExpression parses `target.name`. name may be an ordinary
// identifier or a reserved word used as a method/field name (`e.type`,
// `mod.static`, ...) — keywords are only reserved at statement/expression
// position, not after a dot, the same convention the teacher's lexer uses
// for its own property-access parsing.
func (p *Parser) parseDotExpression(left ast.Expression) ast.Expression {
	pos := left.Pos()
	if !p.peekIs(token.IDENT) && !p.peek.Type.IsKeyword() {
		p.peekError(token.IDENT)
		return nil
	}
	p.next()
	return &ast.DotExpression{BaseExpr: ast.BaseExpr{TokPos: pos}, Target: left, Name: p.cur.Literal}
}

func (p *Parser) parseFunctionLiteral() ast.Expression {
	lit := &ast.FunctionLiteral{BaseExpr: ast.BaseExpr{TokPos: p.cur.Pos}}
	if !p.expectPeek(token.LPAREN) {
		return nil
	}
	lit.Params = p.parseParamList()
	p.next() // move onto first body token
	lit.Body = p.parseBlock(token.END)
	// cur is now END
	return lit
}

func (p *Parser) parseParamList() []ast.Param {
	var params []ast.Param
	if p.peekIs(token.RPAREN) {
		p.next()
		return params
	}
	p.next()
	params = append(params, p.parseOneParam())
	for p.peekIs(token.COMMA) {
		p.next()
		p.next()
		params = append(params, p.parseOneParam())
	}
	p.expectPeek(token.RPAREN)
	return params
}

func (p *Parser) parseOneParam() ast.Param {
	param := ast.Param{Name: p.cur.Literal}
	if p.peekIs(token.ASSIGN) {
		p.next()
		p.next()
		param.Default = p.parseExpression(LOWEST)
	}
	return param
}

func (p *Parser) parseIfExpression() ast.Expression {
	expr := &ast.IfExpression{BaseExpr: ast.BaseExpr{TokPos: p.cur.Pos}}
	p.next()
	expr.Condition = p.parseExpression(LOWEST)
	p.next()
	expr.Consequence = p.parseBlock(token.ELIF, token.ELSE, token.END)
	switch p.cur.Type {
	case token.ELIF:
		expr.Alternative = []ast.Statement{&ast.ExpressionStatement{Expr: p.parseIfExpression()}}
		// parseIfExpression for elif leaves cur on END of the nested if;
		// that END also terminates this outer if, so nothing further to consume.
		return expr
	case token.ELSE:
		p.next()
		expr.Alternative = p.parseBlock(token.END)
	}
	// cur is END
	return expr
}
