package parser

import (
	"ember/internal/ast"
	"ember/internal/token"
)

// parseCodeBlock parses `{ stmt... }`. Whether the final statement acts as
// the block's yield value is decided during HIR lowering, not here.
func (p *Parser) parseCodeBlock() ast.CodeBlockID {
	start := p.expect(token.LBrace)
	var stmts []ast.StmtID
	for !p.check(token.RBrace) && !p.atEOF() {
		stmts = append(stmts, p.parseStmt())
	}
	end := p.expect(token.RBrace)
	return p.b.NewCodeBlock(ast.CodeBlock{Span: start.Span.Cover(end.Span), Stmts: stmts})
}

func (p *Parser) parseStmt() ast.StmtID {
	switch p.cur().Kind {
	case token.KwLet, token.KwVar:
		return p.parseBindStmt()
	}
	// A labeled while (`outer: while ...`) is the one place the grammar
	// needs a token of lookahead beyond the next token.
	if p.check(token.Ident) && p.peekAt(1).Kind == token.Colon && p.peekAt(2).Kind == token.KwWhile {
		labelTok := p.advance()
		p.advance() // ':'
		expr := p.parseWhileLabeled(labelTok.Text, true)
		span := labelTok.Span.Cover(p.b.Expr(expr).Span)
		hasSemi := false
		if semi, ok := p.match(token.Semicolon); ok {
			hasSemi = true
			span = span.Cover(semi.Span)
		}
		return p.b.NewStmt(ast.Stmt{Span: span, Kind: ast.StmtExpr, Expr: expr, HasSemicolon: hasSemi})
	}
	return p.parseExprStmt()
}

// parseBindStmt parses `let`/`var` name (: type)? = expr (;)?.
func (p *Parser) parseBindStmt() ast.StmtID {
	start := p.advance()
	mutable := start.Kind == token.KwVar
	name := p.expect(token.Ident)
	ty := ast.NoTypeExprID
	if _, ok := p.match(token.Colon); ok {
		ty = p.parseType()
	}
	p.expect(token.Eq)
	val := p.parseExpr()
	span := start.Span.Cover(p.b.Expr(val).Span)
	if semi, ok := p.match(token.Semicolon); ok {
		span = span.Cover(semi.Span)
	}
	return p.b.NewStmt(ast.Stmt{
		Span: span, Kind: ast.StmtBind,
		Name: name.Text, NameSpan: name.Span, Type: ty, Mutable: mutable, BindVal: val,
	})
}

func (p *Parser) parseExprStmt() ast.StmtID {
	expr := p.parseExpr()
	span := p.b.Expr(expr).Span
	hasSemi := false
	if semi, ok := p.match(token.Semicolon); ok {
		hasSemi = true
		span = span.Cover(semi.Span)
	}
	return p.b.NewStmt(ast.Stmt{Span: span, Kind: ast.StmtExpr, Expr: expr, HasSemicolon: hasSemi})
}
