package lexer

import (
	"testing"

	"ember/internal/diag"
	"ember/internal/source"
	"ember/internal/token"
)

func tokenize(t *testing.T, src string) []token.Token {
	t.Helper()
	fs := source.NewFileSet()
	id := fs.Add("test.ember", []byte(src), 0)
	file := fs.Get(id)
	bag := diag.NewBag(16)
	toks := New(file, diag.BagReporter{Bag: bag}).Tokenize()
	if bag.HasErrors() {
		t.Fatalf("unexpected lex errors: %v", bag.Items())
	}
	return toks
}

func kinds(toks []token.Token) []token.Kind {
	out := make([]token.Kind, len(toks))
	for i, tok := range toks {
		out[i] = tok.Kind
	}
	return out
}

func TestLexerArithmeticExpression(t *testing.T) {
	toks := tokenize(t, "1 + 2 * 3")
	got := kinds(toks)
	want := []token.Kind{token.IntLit, token.Plus, token.IntLit, token.Star, token.IntLit, token.EOF}
	if len(got) != len(want) {
		t.Fatalf("got %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("token %d: got %v, want %v", i, got[i], want[i])
		}
	}
}

func TestLexerKeywordsAndIdent(t *testing.T) {
	toks := tokenize(t, "func abs(x: int) -> int { return x; }")
	got := kinds(toks)
	want := []token.Kind{
		token.KwFunc, token.Ident, token.LParen, token.Ident, token.Colon, token.Ident,
		token.RParen, token.Arrow, token.Ident, token.LBrace, token.KwReturn, token.Ident,
		token.Semicolon, token.RBrace, token.EOF,
	}
	if len(got) != len(want) {
		t.Fatalf("got %d tokens, want %d: %v", len(got), len(want), got)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("token %d: got %v, want %v", i, got[i], want[i])
		}
	}
}

func TestLexerStringLiteral(t *testing.T) {
	toks := tokenize(t, `"hello\nworld"`)
	if len(toks) != 2 || toks[0].Kind != token.StringLit {
		t.Fatalf("got %v", toks)
	}
	if toks[0].Text != `hello\nworld` {
		t.Fatalf("got body %q", toks[0].Text)
	}
}

func TestLexerRawString(t *testing.T) {
	toks := tokenize(t, `raw"a\b"`)
	if len(toks) != 2 || toks[0].Kind != token.StringLit || !toks[0].StringRaw {
		t.Fatalf("got %v", toks)
	}
	if toks[0].Text != `a\b` {
		t.Fatalf("got body %q", toks[0].Text)
	}
}

func TestLexerMultiLineString(t *testing.T) {
	toks := tokenize(t, "\"\"\"\n  hi\n  \"\"\"")
	if len(toks) != 2 || toks[0].Kind != token.StringLit || !toks[0].StringMultiLine {
		t.Fatalf("got %v", toks)
	}
}

func TestLexerNumberLiterals(t *testing.T) {
	toks := tokenize(t, "1_000 0x1F 3.14 1e10")
	if len(toks) != 5 {
		t.Fatalf("got %v", toks)
	}
	if toks[0].Kind != token.IntLit || toks[0].Text != "1_000" {
		t.Fatalf("got %v", toks[0])
	}
	if toks[1].Kind != token.IntLit || toks[1].Text != "0x1F" {
		t.Fatalf("got %v", toks[1])
	}
	if toks[2].Kind != token.FloatLit || toks[2].Text != "3.14" {
		t.Fatalf("got %v", toks[2])
	}
	if toks[3].Kind != token.FloatLit || toks[3].Text != "1e10" {
		t.Fatalf("got %v", toks[3])
	}
}

func TestLexerComments(t *testing.T) {
	toks := tokenize(t, "1 // line comment\n+ /* block */ 2")
	got := kinds(toks)
	want := []token.Kind{token.IntLit, token.Plus, token.IntLit, token.EOF}
	if len(got) != len(want) {
		t.Fatalf("got %v", got)
	}
}

func TestLexerIllegalCharacterReported(t *testing.T) {
	fs := source.NewFileSet()
	id := fs.Add("test.ember", []byte("1 $ 2"), 0)
	file := fs.Get(id)
	bag := diag.NewBag(16)
	New(file, diag.BagReporter{Bag: bag}).Tokenize()
	if !bag.HasErrors() {
		t.Fatal("expected an illegal-character diagnostic")
	}
}
