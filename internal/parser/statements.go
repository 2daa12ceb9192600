package parser

import (
	"strconv"

	"github.com/questlang/quest/internal/ast"
	"github.com/questlang/quest/internal/token"
)

func (p *Parser) parseStatement() ast.Statement {
	switch p.cur.Type {
	case token.LET:
		return p.parseLetStatement()
	case token.RETURN:
		return p.parseReturnStatement()
	case token.BREAK:
		return &ast.BreakStatement{}
	case token.CONTINUE:
		return &ast.ContinueStatement{}
	case token.WHILE:
		return p.parseWhileStatement()
	case token.FOR:
		return p.parseForStatement()
	case token.TRY:
		return p.parseTryStatement()
	case token.RAISE:
		return p.parseRaiseStatement()
	case token.TYPE:
		return p.parseTypeDecl()
	case token.TRAIT:
		return p.parseTraitDecl()
	default:
		return p.parseExpressionStatement()
	}
}

func (p *Parser) parseLetStatement() ast.Statement {
	stmt := &ast.LetStatement{BaseStmt: ast.BaseStmt{TokPos: p.cur.Pos}}
	if !p.expectPeek(token.IDENT) {
		return nil
	}
	stmt.Name = p.cur.Literal
	if !p.expectPeek(token.ASSIGN) {
		return nil
	}
	p.next()
	stmt.Value = p.parseExpression(LOWEST)
	return stmt
}

func (p *Parser) parseReturnStatement() ast.Statement {
	stmt := &ast.ReturnStatement{BaseStmt: ast.BaseStmt{TokPos: p.cur.Pos}}
	if p.peekIs(token.SEMI) || p.peekIs(token.EOF) || p.peekIs(token.END) {
		return stmt
	}
	p.next()
	stmt.Value = p.parseExpression(LOWEST)
	return stmt
}

func (p *Parser) parseExpressionStatement() ast.Statement {
	stmt := &ast.ExpressionStatement{BaseStmt: ast.BaseStmt{TokPos: p.cur.Pos}}
	stmt.Expr = p.parseExpression(LOWEST)
	return stmt
}

func (p *Parser) parseWhileStatement() ast.Statement {
	stmt := &ast.WhileStatement{BaseStmt: ast.BaseStmt{TokPos: p.cur.Pos}}
	p.next()
	stmt.Condition = p.parseExpression(LOWEST)
	p.next()
	stmt.Body = p.parseBlock(token.END)
	return stmt
}

func (p *Parser) parseForStatement() ast.Statement {
	stmt := &ast.ForStatement{BaseStmt: ast.BaseStmt{TokPos: p.cur.Pos}}
	if !p.expectPeek(token.IDENT) {
		return nil
	}
	stmt.Name = p.cur.Literal
	if !p.expectPeek(token.IN) {
		return nil
	}
	p.next()
	stmt.Iterable = p.parseExpression(LOWEST)
	p.next()
	stmt.Body = p.parseBlock(token.END)
	return stmt
}

func (p *Parser) parseTryStatement() ast.Statement {
	stmt := &ast.TryStatement{BaseStmt: ast.BaseStmt{TokPos: p.cur.Pos}}
	if !p.expectPeek(token.LBRACE) {
		return nil
	}
	p.next()
	stmt.Body = p.parseBlock(token.RBRACE)
	// cur is RBRACE

	for p.peekIs(token.CATCH) {
		p.next() // cur = CATCH
		clause := ast.CatchClause{}
		if p.peekIs(token.IDENT) {
			p.next()
			clause.Kind = p.cur.Literal
		}
		if !p.expectPeek(token.AS) {
			return nil
		}
		if !p.expectPeek(token.IDENT) {
			return nil
		}
		clause.Binding = p.cur.Literal
		if !p.expectPeek(token.LBRACE) {
			return nil
		}
		p.next()
		clause.Body = p.parseBlock(token.RBRACE)
		stmt.Catches = append(stmt.Catches, clause)
	}

	if p.peekIs(token.ENSURE) {
		p.next()
		if !p.expectPeek(token.LBRACE) {
			return nil
		}
		p.next()
		stmt.Ensure = p.parseBlock(token.RBRACE)
	}

	return stmt
}

func (p *Parser) parseRaiseStatement() ast.Statement {
	stmt := &ast.RaiseStatement{BaseStmt: ast.BaseStmt{TokPos: p.cur.Pos}}
	if p.peekIs(token.SEMI) || p.peekIs(token.EOF) || p.peekIs(token.END) || p.peekIs(token.RBRACE) {
		return stmt
	}
	p.next()
	stmt.Value = p.parseExpression(LOWEST)
	return stmt
}

func (p *Parser) parseTypeDecl() ast.Statement {
	stmt := &ast.TypeDecl{BaseStmt: ast.BaseStmt{TokPos: p.cur.Pos}}
	if !p.expectPeek(token.IDENT) {
		return nil
	}
	stmt.Name = p.cur.Literal
	if !p.expectPeek(token.LBRACE) {
		return nil
	}
	for !p.peekIs(token.RBRACE) {
		p.next()
		field := ast.FieldDecl{}
		// "TypeTag: name" field syntax, e.g. `Int: x`.
		field.TypeTag = p.cur.Literal
		if !p.expectPeek(token.COLON) {
			return nil
		}
		if !p.expectPeek(token.IDENT) {
			return nil
		}
		field.Name = p.cur.Literal
		if p.peekIs(token.QUESTION) {
			p.next()
			field.Optional = true
		}
		if p.peekIs(token.ASSIGN) {
			p.next()
			p.next()
			field.Default = p.parseExpression(LOWEST)
		}
		stmt.Fields = append(stmt.Fields, field)
		if p.peekIs(token.COMMA) {
			p.next()
		} else {
			break
		}
	}
	if !p.expectPeek(token.RBRACE) {
		return nil
	}

	for p.peekIs(token.IMPL) || p.peekIs(token.FUN) || p.peekIs(token.STATIC) {
		if p.peekIs(token.IMPL) {
			p.next()
			if !p.expectPeek(token.IDENT) {
				return nil
			}
			stmt.Traits = append(stmt.Traits, p.cur.Literal)
			continue
		}
		static := false
		if p.peekIs(token.STATIC) {
			p.next()
			static = true
		}
		if !p.expectPeek(token.FUN) {
			return nil
		}
		method := p.parseNamedMethod(static)
		stmt.Methods = append(stmt.Methods, method)
	}

	return stmt
}

func (p *Parser) parseNamedMethod(static bool) ast.MethodDecl {
	if !p.expectPeek(token.IDENT) {
		return ast.MethodDecl{}
	}
	name := p.cur.Literal
	fn := &ast.FunctionLiteral{Name: name}
	if !p.expectPeek(token.LPAREN) {
		return ast.MethodDecl{Name: name, Fn: fn, Static: static}
	}
	fn.Params = p.parseParamList()
	p.next()
	fn.Body = p.parseBlock(token.END)
	return ast.MethodDecl{Name: name, Fn: fn, Static: static}
}

func (p *Parser) parseTraitDecl() ast.Statement {
	stmt := &ast.TraitDecl{BaseStmt: ast.BaseStmt{TokPos: p.cur.Pos}}
	if !p.expectPeek(token.IDENT) {
		return nil
	}
	stmt.Name = p.cur.Literal
	if !p.expectPeek(token.LBRACE) {
		return nil
	}
	for !p.peekIs(token.RBRACE) {
		p.next()
		sig := ast.MethodSig{Name: p.cur.Literal}
		if !p.expectPeek(token.LPAREN) {
			return nil
		}
		if !p.expectPeek(token.INT) {
			return nil
		}
		arity, _ := strconv.Atoi(p.cur.Literal)
		sig.Arity = arity
		if !p.expectPeek(token.RPAREN) {
			return nil
		}
		stmt.Methods = append(stmt.Methods, sig)
		if p.peekIs(token.COMMA) {
			p.next()
		} else {
			break
		}
	}
	if !p.expectPeek(token.RBRACE) {
		return nil
	}
	return stmt
}
