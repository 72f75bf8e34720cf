package parser

import (
	"ember/internal/ast"
	"ember/internal/source"
	"ember/internal/token"
)

// parseItem parses one top-level declaration. ok is false (with a diagnostic
// already reported) when the current token can't start an item, so the
// caller can skip it and keep parsing the rest of the file.
func (p *Parser) parseItem() (ast.ItemID, bool) {
	start := p.cur().Span
	vis := p.parseVisibility()
	switch p.cur().Kind {
	case token.KwFunc:
		return p.parseFuncItem(start, vis), true
	case token.KwStruct:
		return p.parseStructItem(start, vis), true
	case token.KwImport:
		return p.parseImportItem(start, vis), true
	case token.KwLet, token.KwVar:
		return p.parseGlobalItem(start, vis), true
	case token.KwType:
		return p.parseTypeAliasItem(start, vis), true
	default:
		t := p.cur()
		p.errorf(t.Span, "expected item, found %s", t.Kind)
		return ast.NoItemID, false
	}
}

func (p *Parser) parseFuncItem(start source.Span, vis ast.Visibility) ast.ItemID {
	p.expect(token.KwFunc)
	name := p.expect(token.Ident)
	p.expect(token.LParen)
	var params []ast.Param
	if !p.check(token.RParen) {
		params = append(params, p.parseParam())
		for {
			if _, ok := p.match(token.Comma); !ok {
				break
			}
			if p.check(token.RParen) {
				break
			}
			params = append(params, p.parseParam())
		}
	}
	p.expect(token.RParen)
	retType := ast.NoTypeExprID
	if _, ok := p.match(token.Arrow); ok {
		retType = p.parseType()
	}
	body := p.parseCodeBlock()
	end := p.b.CodeBlock(body).Span
	return p.b.NewItem(ast.Item{
		Span: start.Cover(end), Kind: ast.ItemFunc, Name: name.Text, NameSpan: name.Span, Visibility: vis,
		Params: params, ReturnType: retType, Body: body,
	})
}

func (p *Parser) parseParam() ast.Param {
	name := p.expect(token.Ident)
	p.expect(token.Colon)
	ty := p.parseType()
	return ast.Param{Name: name.Text, NameSpan: name.Span, Type: ty}
}

func (p *Parser) parseStructItem(start source.Span, vis ast.Visibility) ast.ItemID {
	p.expect(token.KwStruct)
	name := p.expect(token.Ident)
	p.expect(token.LBrace)
	var fields []ast.FieldDecl
	for !p.check(token.RBrace) && !p.atEOF() {
		fvis := p.parseVisibility()
		fname := p.expect(token.Ident)
		p.expect(token.Colon)
		fty := p.parseType()
		fields = append(fields, ast.FieldDecl{Name: fname.Text, NameSpan: fname.Span, Type: fty, Visibility: fvis})
		if _, ok := p.match(token.Comma); !ok {
			break
		}
	}
	end := p.expect(token.RBrace)
	return p.b.NewItem(ast.Item{
		Span: start.Cover(end.Span), Kind: ast.ItemStructDef, Name: name.Text, NameSpan: name.Span, Visibility: vis,
		Fields: fields,
	})
}

// parseImportItem parses `import a.b.c;`, `import a.b.{x, y};`, and
// `import a.b.x as y;` (an alias is only meaningful with exactly one
// explicit symbol; see Store.mergeImport).
func (p *Parser) parseImportItem(start source.Span, vis ast.Visibility) ast.ItemID {
	p.expect(token.KwImport)
	first := p.expect(token.Ident)
	segments := []string{first.Text}
	lastSpan := first.Span
	for {
		if _, ok := p.match(token.Dot); !ok {
			break
		}
		if p.check(token.LBrace) {
			break
		}
		seg := p.expect(token.Ident)
		segments = append(segments, seg.Text)
		lastSpan = seg.Span
	}
	var symbols []string
	if _, ok := p.match(token.LBrace); ok {
		symbols = append(symbols, p.expect(token.Ident).Text)
		for {
			if _, ok := p.match(token.Comma); !ok {
				break
			}
			if p.check(token.RBrace) {
				break
			}
			symbols = append(symbols, p.expect(token.Ident).Text)
		}
		rb := p.expect(token.RBrace)
		lastSpan = rb.Span
	}
	alias := ""
	nameSpan := lastSpan
	if _, ok := p.match(token.KwAs); ok {
		a := p.expect(token.Ident)
		alias = a.Text
		nameSpan = a.Span
	}
	name := segments[len(segments)-1]
	if alias != "" {
		name = alias
	}
	end := nameSpan
	if semi, ok := p.match(token.Semicolon); ok {
		end = semi.Span
	}
	return p.b.NewItem(ast.Item{
		Span: start.Cover(end), Kind: ast.ItemImport, Name: name, NameSpan: nameSpan, Visibility: vis,
		ImportPath: segments, ImportSymbols: symbols, ImportAlias: alias,
	})
}

// parseGlobalItem parses `let name (: type)? = expr;` (always a Constant,
// always requires the initializer) and `var name (: type)? (= expr)?;` (a
// Global, whose default may be absent -- lowering then checks E0601).
func (p *Parser) parseGlobalItem(start source.Span, vis ast.Visibility) ast.ItemID {
	kw := p.advance()
	mutable := kw.Kind == token.KwVar
	name := p.expect(token.Ident)
	ty := ast.NoTypeExprID
	if _, ok := p.match(token.Colon); ok {
		ty = p.parseType()
	}
	def := ast.NoExprID
	if _, ok := p.match(token.Eq); ok {
		def = p.parseExpr()
	} else if !mutable {
		p.errorf(name.Span, "let %s requires an initializer", name.Text)
	}
	end := name.Span
	if def.IsValid() {
		end = p.b.Expr(def).Span
	} else if ty.IsValid() {
		end = p.b.Type(ty).Span
	}
	if semi, ok := p.match(token.Semicolon); ok {
		end = semi.Span
	}
	return p.b.NewItem(ast.Item{
		Span: start.Cover(end), Kind: ast.ItemGlobal, Name: name.Text, NameSpan: name.Span, Visibility: vis,
		GlobalType: ty, GlobalDefault: def, GlobalMutable: mutable,
	})
}

func (p *Parser) parseTypeAliasItem(start source.Span, vis ast.Visibility) ast.ItemID {
	p.expect(token.KwType)
	name := p.expect(token.Ident)
	p.expect(token.Eq)
	target := p.parseType()
	end := p.b.Type(target).Span
	if semi, ok := p.match(token.Semicolon); ok {
		end = semi.Span
	}
	return p.b.NewItem(ast.Item{
		Span: start.Cover(end), Kind: ast.ItemTypeAlias, Name: name.Text, NameSpan: name.Span, Visibility: vis,
		AliasTarget: target,
	})
}
