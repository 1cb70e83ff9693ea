package surface

import (
	"github.com/akhsm/refinery/token"
)

func binOpOf(tt token.TokenType) BinOp {
	switch tt {
	case token.Iff:
		return Iff
	case token.FatArrow:
		return Imp
	case token.LogicalOr:
		return OrOp
	case token.LogicalAnd:
		return AndOp
	case token.LogicalEquals:
		return Eq
	case token.GreaterThan:
		return Gt
	case token.GreaterThanEquals:
		return Ge
	case token.LessThan:
		return Lt
	case token.LessThanEquals:
		return Le
	case token.Plus:
		return Add
	case token.Minus:
		return Sub
	case token.Times:
		return Mul
	}
	return Mod
}

func (p *parser) parseExpr() Expr {
	return p.parseBinaryExpr(token.MinPrec)
}

// parseBinaryExpr is a precedence climber over the eight expression
// levels. Left-associative levels fold into a left-leaning tree by
// staying in the loop; non-associative levels accept exactly one
// application, so a second operator at the same level is rejected.
func (p *parser) parseBinaryExpr(minPrec int) Expr {
	x := p.parsePrimaryExpr()
	for p.tok.IsBinaryOp() && p.tok.Prec() >= minPrec {
		op := p.tok
		p.next()
		rhs := p.parseBinaryExpr(op.Prec() + 1)
		x = BinaryExpr{Op: binOpOf(op.Type), Left: x, Right: rhs, span: x.Span().Add(rhs.Span())}
		if !op.IsLeftAssoc() && p.tok.IsBinaryOp() && p.tok.Prec() == op.Prec() {
			p.unexpected()
		}
	}
	return x
}

func (p *parser) parsePrimaryExpr() Expr {
	switch p.tok.Type {
	case token.If:
		return p.parseIfExpr()
	case token.Number, token.Bool:
		return p.parseLit()
	case token.LeftParen:
		// Parentheses re-enter the full expression grammar.
		p.next()
		x := p.parseExpr()
		p.expect(token.RightParen)
		return x
	case token.Ident:
		name := p.parseIdent()
		switch p.tok.Type {
		case token.Period:
			p.next()
			field := p.parseIdent()
			return Dot{Var: name, Field: field, span: name.span.Add(field.span)}
		case token.LeftParen:
			p.next()
			args := parseSep(p, token.Comma, token.RightParen, p.parseExpr)
			rpar := p.expect(token.RightParen)
			return App{Fn: name, Args: args, span: name.span.Add(rpar.Span)}
		}
		return name
	}
	p.unexpected()
	panic("unreachable")
}

func (p *parser) parseIfExpr() Expr {
	ifTok := p.expect(token.If)
	cond := p.parseExpr()
	p.expect(token.LeftBrace)
	then := p.parseExpr()
	p.expect(token.RightBrace)
	p.expect(token.Else)
	p.expect(token.LeftBrace)
	els := p.parseExpr()
	rbrace := p.expect(token.RightBrace)
	return IfExpr{Cond: cond, Then: then, Else: els, span: ifTok.Span.Add(rbrace.Span)}
}
