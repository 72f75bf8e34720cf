package parser

import (
	"ember/internal/ast"
	"ember/internal/token"
)

// parseType parses a type annotation: a bare name or a parenthesized tuple.
// An empty `()` is the unit type.
func (p *Parser) parseType() ast.TypeExprID {
	start := p.cur().Span
	if _, ok := p.match(token.LParen); ok {
		if rp, ok := p.match(token.RParen); ok {
			return p.b.UnitType(start.Cover(rp.Span))
		}
		var items []ast.TypeExprID
		items = append(items, p.parseType())
		for {
			if _, ok := p.match(token.Comma); !ok {
				break
			}
			items = append(items, p.parseType())
		}
		rp := p.expect(token.RParen)
		return p.b.NewType(ast.TypeExpr{Span: start.Cover(rp.Span), Kind: ast.TypeTuple, Items: items})
	}

	name := p.expect(token.Ident)
	return p.b.NamedType(name.Text, name.Span)
}
