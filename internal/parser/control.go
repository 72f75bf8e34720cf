package parser

import (
	"ember/internal/ast"
	"ember/internal/token"
)

// parseIf parses `if cond { ... } (else (if ... | { ... }))?`, building the
// ElseChain recursively for `else if`.
func (p *Parser) parseIf() ast.ExprID {
	start := p.expect(token.KwIf)
	cond := p.parseExpr()
	then := p.parseCodeBlock()
	end := p.b.CodeBlock(then).Span

	elseKind := ast.ElseNone
	var elseBody ast.CodeBlockID
	var elseIf ast.ExprID
	if _, ok := p.match(token.KwElse); ok {
		if p.check(token.KwIf) {
			elseKind = ast.ElseChain
			elseIf = p.parseIf()
			end = p.b.Expr(elseIf).Span
		} else {
			elseKind = ast.ElseBlock
			elseBody = p.parseCodeBlock()
			end = p.b.CodeBlock(elseBody).Span
		}
	}
	return p.b.NewExpr(ast.Expr{
		Span: start.Span.Cover(end), Kind: ast.ExprIf,
		Cond: cond, Then: then, ElseKind: elseKind, ElseBody: elseBody, ElseIf: elseIf,
	})
}

// parseWhile parses an unlabeled `while`; labeled loops are recognized one
// token earlier, in parseStmt, which calls parseWhileLabeled directly.
func (p *Parser) parseWhile() ast.ExprID {
	return p.parseWhileLabeled("", false)
}

func (p *Parser) parseWhileLabeled(label string, hasLabel bool) ast.ExprID {
	start := p.expect(token.KwWhile)
	cond := p.parseExpr()
	body := p.parseCodeBlock()
	end := p.b.CodeBlock(body).Span
	return p.b.NewExpr(ast.Expr{
		Span: start.Span.Cover(end), Kind: ast.ExprWhile,
		Label: label, HasLabel: hasLabel, WhileCond: cond, Body: body,
	})
}
