// Package lexer tokenizes source text into the stream internal/parser
// consumes. It is an external collaborator to the core semantic pipeline
// (which starts from an already-built AST), provided here so the CLI can
// compile real source files end to end.
package lexer

import (
	"ember/internal/diag"
	"ember/internal/source"
	"ember/internal/token"
)

// Lexer produces tokens one at a time from a single file's content.
type Lexer struct {
	c        *cursor
	reporter diag.Reporter
}

func New(file *source.File, reporter diag.Reporter) *Lexer {
	return &Lexer{c: newCursor(file.Content, file.Base), reporter: reporter}
}

// Tokenize drains the lexer into a slice, always ending with an EOF token.
func (l *Lexer) Tokenize() []token.Token {
	var toks []token.Token
	for {
		t := l.Next()
		toks = append(toks, t)
		if t.Kind == token.EOF {
			return toks
		}
	}
}

func (l *Lexer) Next() token.Token {
	l.skipTrivia()
	if l.c.eof() {
		p := l.c.pos()
		return token.Token{Kind: token.EOF, Span: source.Span{Lo: p, Hi: p}}
	}

	if b := l.c.peek(); b == '"' {
		return l.scanString(false)
	}

	if l.c.startsWith("raw\"") || l.c.startsWith(`raw"""`) {
		start := l.c.pos()
		l.c.advance()
		l.c.advance()
		l.c.advance()
		str := l.scanString(true)
		str.Span.Lo = start
		return str
	}

	b := l.c.peek()
	switch {
	case isIdentStart(b):
		return l.scanIdent()
	case isDigit(b):
		return l.scanNumber()
	default:
		return l.scanOperator()
	}
}

func (l *Lexer) skipTrivia() {
	for !l.c.eof() {
		b := l.c.peek()
		switch {
		case b == ' ' || b == '\t' || b == '\r' || b == '\n':
			l.c.advance()
		case b == '/' && l.c.peekAt(1) == '/':
			for !l.c.eof() && l.c.peek() != '\n' {
				l.c.advance()
			}
		case b == '/' && l.c.peekAt(1) == '*':
			l.c.advance()
			l.c.advance()
			depth := 1
			for !l.c.eof() && depth > 0 {
				if l.c.startsWith("/*") {
					depth++
					l.c.advance()
					l.c.advance()
				} else if l.c.startsWith("*/") {
					depth--
					l.c.advance()
					l.c.advance()
				} else {
					l.c.advance()
				}
			}
		default:
			return
		}
	}
}

func (l *Lexer) reportIllegal(span source.Span, msg string) {
	if l.reporter != nil {
		l.reporter.Report(diag.EIllegalChar, diag.SevError, span, msg, nil)
	}
}

func isIdentStart(b byte) bool {
	return b == '_' || (b >= 'a' && b <= 'z') || (b >= 'A' && b <= 'Z')
}

func isIdentCont(b byte) bool { return isIdentStart(b) || isDigit(b) }

func isDigit(b byte) bool { return b >= '0' && b <= '9' }
