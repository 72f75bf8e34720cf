package parser

import (
	"strconv"

	"ember/internal/ast"
	"ember/internal/token"
)

// binPrec gives each binary operator's precedence level (higher binds
// tighter). Operators absent from the table are not binary operators.
var binPrec = map[token.Kind]int{
	token.PipePipe: 1,
	token.AmpAmp:   2,
	token.EqEq:     3, token.Neq: 3,
	token.Lt: 4, token.Leq: 4, token.Gt: 4, token.Geq: 4,
	token.Pipe: 5,
	token.Caret: 6,
	token.Amp:   7,
	token.Shl:   8, token.Shr: 8,
	token.Plus: 9, token.Minus: 9,
	token.Star: 10, token.Slash: 10, token.Percent: 10,
}

var binOpFor = map[token.Kind]ast.BinaryOp{
	token.PipePipe: ast.OpOr,
	token.AmpAmp:   ast.OpAnd,
	token.EqEq:     ast.OpEq,
	token.Neq:      ast.OpNeq,
	token.Lt:       ast.OpLt,
	token.Leq:      ast.OpLeq,
	token.Gt:       ast.OpGt,
	token.Geq:      ast.OpGeq,
	token.Pipe:     ast.OpBitOr,
	token.Caret:    ast.OpBitXor,
	token.Amp:      ast.OpBitAnd,
	token.Shl:      ast.OpShl,
	token.Shr:      ast.OpShr,
	token.Plus:     ast.OpAdd,
	token.Minus:    ast.OpSub,
	token.Star:     ast.OpMul,
	token.Slash:    ast.OpDiv,
	token.Percent:  ast.OpRem,
}

// parseExpr parses a full expression, including `if`/`while` as expressions.
func (p *Parser) parseExpr() ast.ExprID {
	return p.parseAssign()
}

// parseAssign handles `=`, the lowest-precedence (right-associative)
// operator, which is not a BinaryOp but its own Expr kind.
func (p *Parser) parseAssign() ast.ExprID {
	lhs := p.parseBinary(0)
	if _, ok := p.match(token.Eq); ok {
		rhs := p.parseAssign()
		lhsSpan := p.b.Expr(lhs).Span
		rhsSpan := p.b.Expr(rhs).Span
		return p.b.NewExpr(ast.Expr{
			Span: lhsSpan.Cover(rhsSpan), Kind: ast.ExprAssign, Base: lhs, Value: rhs,
		})
	}
	return lhs
}

func (p *Parser) parseBinary(minPrec int) ast.ExprID {
	lhs := p.parseUnary()
	for {
		prec, isBin := binPrec[p.cur().Kind]
		if !isBin || prec < minPrec {
			return lhs
		}
		opTok := p.advance()
		rhs := p.parseBinary(prec + 1)
		lhsSpan := p.b.Expr(lhs).Span
		rhsSpan := p.b.Expr(rhs).Span
		lhs = p.b.NewExpr(ast.Expr{
			Span: lhsSpan.Cover(rhsSpan), Kind: ast.ExprBinary,
			BinOp: binOpFor[opTok.Kind], Lhs: lhs, Rhs: rhs,
		})
	}
}

func (p *Parser) parseUnary() ast.ExprID {
	start := p.cur()
	var op ast.UnaryOp
	switch start.Kind {
	case token.Bang:
		op = ast.OpNot
	case token.Tilde:
		op = ast.OpBitNot
	case token.Minus:
		op = ast.OpNegate
	default:
		return p.parsePostfix()
	}
	p.advance()
	operand := p.parseUnary()
	span := start.Span.Cover(p.b.Expr(operand).Span)
	return p.b.NewExpr(ast.Expr{Span: span, Kind: ast.ExprUnary, UnOp: op, Operand: operand})
}

func (p *Parser) parsePostfix() ast.ExprID {
	expr := p.parsePrimary()
	for {
		switch p.cur().Kind {
		case token.Dot:
			p.advance()
			if p.check(token.IntLit) {
				idxTok := p.advance()
				idx, _ := strconv.Atoi(idxTok.Text)
				span := p.b.Expr(expr).Span.Cover(idxTok.Span)
				expr = p.b.NewExpr(ast.Expr{Span: span, Kind: ast.ExprTupleMember, Base: expr, Index: idx})
				continue
			}
			nameTok := p.expect(token.Ident)
			span := p.b.Expr(expr).Span.Cover(nameTok.Span)
			expr = p.b.NewExpr(ast.Expr{Span: span, Kind: ast.ExprMember, Base: expr, Name: nameTok.Text})
		case token.LParen:
			p.advance()
			var args []ast.ExprID
			if !p.check(token.RParen) {
				args = append(args, p.parseExpr())
				for {
					if _, ok := p.match(token.Comma); !ok {
						break
					}
					args = append(args, p.parseExpr())
				}
			}
			rp := p.expect(token.RParen)
			span := p.b.Expr(expr).Span.Cover(rp.Span)
			expr = p.b.NewExpr(ast.Expr{Span: span, Kind: ast.ExprCall, Callee: expr, Args: args})
		default:
			return expr
		}
	}
}

func (p *Parser) parsePrimary() ast.ExprID {
	t := p.cur()
	switch t.Kind {
	case token.IntLit:
		p.advance()
		return p.b.NewExpr(ast.Expr{Span: t.Span, Kind: ast.ExprIntLit, NumberText: t.Text})
	case token.FloatLit:
		p.advance()
		return p.b.NewExpr(ast.Expr{Span: t.Span, Kind: ast.ExprFloatLit, NumberText: t.Text})
	case token.StringLit:
		p.advance()
		kind := ast.StringSingleLine
		if t.StringMultiLine {
			kind = ast.StringMultiLine
		}
		return p.b.NewExpr(ast.Expr{
			Span: t.Span, Kind: ast.ExprStringLit,
			StringRaw: t.StringRaw, StringKind: kind, StringBody: t.Text,
		})
	case token.KwTrue, token.KwFalse:
		p.advance()
		return p.b.NewExpr(ast.Expr{Span: t.Span, Kind: ast.ExprBoolLit, BoolValue: t.Kind == token.KwTrue})
	case token.Ident:
		p.advance()
		return p.b.NewExpr(ast.Expr{Span: t.Span, Kind: ast.ExprPath, PathSegments: []string{t.Text}})
	case token.LParen:
		return p.parseTupleOrParen()
	case token.KwReturn:
		return p.parseReturn()
	case token.KwIf:
		return p.parseIf()
	case token.KwWhile:
		return p.parseWhile()
	case token.KwBreak:
		return p.parseBreakContinue(ast.ExprBreak)
	case token.KwContinue:
		return p.parseBreakContinue(ast.ExprContinue)
	default:
		p.advance()
		p.errorf(t.Span, "unexpected token %s in expression", t.Kind)
		return p.b.NewExpr(ast.Expr{Span: t.Span, Kind: ast.ExprTuple})
	}
}

// parseTupleOrParen parses `(expr)` as a parenthesized expression and
// `(e1, e2, ...)` / `()` as a tuple literal.
func (p *Parser) parseTupleOrParen() ast.ExprID {
	start := p.expect(token.LParen)
	if rp, ok := p.match(token.RParen); ok {
		return p.b.NewExpr(ast.Expr{Span: start.Span.Cover(rp.Span), Kind: ast.ExprTuple})
	}
	first := p.parseExpr()
	if _, ok := p.match(token.Comma); !ok {
		rp := p.expect(token.RParen)
		e := *p.b.Expr(first)
		e.Span = start.Span.Cover(rp.Span)
		return p.b.NewExpr(e)
	}
	items := []ast.ExprID{first}
	if !p.check(token.RParen) {
		items = append(items, p.parseExpr())
		for {
			if _, ok := p.match(token.Comma); !ok {
				break
			}
			if p.check(token.RParen) {
				break
			}
			items = append(items, p.parseExpr())
		}
	}
	rp := p.expect(token.RParen)
	return p.b.NewExpr(ast.Expr{Span: start.Span.Cover(rp.Span), Kind: ast.ExprTuple, TupleItems: items})
}

func (p *Parser) parseReturn() ast.ExprID {
	start := p.expect(token.KwReturn)
	if p.atExprBoundary() {
		return p.b.NewExpr(ast.Expr{Span: start.Span, Kind: ast.ExprReturn, Value: ast.NoExprID})
	}
	val := p.parseExpr()
	span := start.Span.Cover(p.b.Expr(val).Span)
	return p.b.NewExpr(ast.Expr{Span: span, Kind: ast.ExprReturn, Value: val})
}

func (p *Parser) parseBreakContinue(kind ast.ExprKind) ast.ExprID {
	start := p.advance()
	label := ""
	hasLabel := false
	if t, ok := p.match(token.Ident); ok {
		label = t.Text
		hasLabel = true
	}
	return p.b.NewExpr(ast.Expr{Span: start.Span, Kind: kind, TargetLabel: label, HasTarget: hasLabel})
}

// atExprBoundary reports whether the current token can't start an
// expression, used to detect a bare `return;`/`return }`.
func (p *Parser) atExprBoundary() bool {
	switch p.cur().Kind {
	case token.Semicolon, token.RBrace, token.EOF, token.Comma, token.RParen:
		return true
	default:
		return false
	}
}
