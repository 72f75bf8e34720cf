// Package parser is a compact recursive-descent parser over internal/token,
// producing an internal/ast tree through ast.Builder. Like internal/lexer, it
// is an external collaborator the core semantic pipeline does not itself
// define, supplied so cmd/emberc can compile real source files.
package parser

import (
	"fmt"

	"ember/internal/ast"
	"ember/internal/diag"
	"ember/internal/source"
	"ember/internal/token"
)

// Parser consumes a token stream for a single file and builds its AST.
type Parser struct {
	toks []token.Token
	pos  int

	b        *ast.Builder
	reporter diag.Reporter
	fileID   source.FileID
}

func New(fileID source.FileID, toks []token.Token, b *ast.Builder, reporter diag.Reporter) *Parser {
	return &Parser{toks: toks, b: b, reporter: reporter, fileID: fileID}
}

// ParseFile parses an entire translation unit: a flat sequence of items.
func (p *Parser) ParseFile() ast.File {
	start := p.cur().Span
	var items []ast.ItemID
	for !p.atEOF() {
		id, ok := p.parseItem()
		if !ok {
			p.advance()
			continue
		}
		items = append(items, id)
	}
	end := p.toks[len(p.toks)-1].Span
	return ast.File{Source: p.fileID, Span: start.Cover(end), Items: items}
}

func (p *Parser) cur() token.Token {
	if p.pos >= len(p.toks) {
		return p.toks[len(p.toks)-1]
	}
	return p.toks[p.pos]
}

func (p *Parser) peekAt(n int) token.Token {
	i := p.pos + n
	if i >= len(p.toks) {
		return p.toks[len(p.toks)-1]
	}
	return p.toks[i]
}

func (p *Parser) atEOF() bool { return p.cur().Kind == token.EOF }

func (p *Parser) advance() token.Token {
	t := p.cur()
	if !p.atEOF() {
		p.pos++
	}
	return t
}

func (p *Parser) check(k token.Kind) bool { return p.cur().Kind == k }

func (p *Parser) match(k token.Kind) (token.Token, bool) {
	if p.check(k) {
		return p.advance(), true
	}
	return token.Token{}, false
}

// expect consumes a token of kind k, reporting a syntax error and returning
// the current token unconsumed if the kind does not match.
func (p *Parser) expect(k token.Kind) token.Token {
	if t, ok := p.match(k); ok {
		return t
	}
	t := p.cur()
	p.errorf(t.Span, "expected %s, found %s", k, t.Kind)
	return t
}

func (p *Parser) errorf(span source.Span, format string, args ...any) {
	if p.reporter != nil {
		p.reporter.Report(diag.ESyntaxError, diag.SevError, span, fmt.Sprintf(format, args...), nil)
	}
}
