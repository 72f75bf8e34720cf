package parser

import (
	"ember/internal/ast"
	"ember/internal/token"
)

// parseVisibility consumes a leading visibility keyword, defaulting to
// Internal (the language's implicit default) when none is written.
func (p *Parser) parseVisibility() ast.Visibility {
	switch p.cur().Kind {
	case token.KwPublic:
		p.advance()
		return ast.Public
	case token.KwInternal:
		p.advance()
		return ast.Internal
	case token.KwFileprivate:
		p.advance()
		return ast.FilePrivate
	case token.KwPrivate:
		p.advance()
		return ast.Private
	case token.KwLocal:
		p.advance()
		return ast.Local
	default:
		return ast.Internal
	}
}
