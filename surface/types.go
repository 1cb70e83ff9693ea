package surface

import (
	"github.com/akhsm/refinery/token"
)

// parseTy dispatches on the current token; every overlapping form is
// resolved by peeking at most two tokens ahead, never by backtracking.
func (p *parser) parseTy() Ty {
	switch p.tok.Type {
	case token.LeftParen:
		lpar := p.tok
		p.next()
		elems := parseSep(p, token.Comma, token.RightParen, p.parseTy)
		rpar := p.expect(token.RightParen)
		if len(elems) == 1 {
			return elems[0]
		}
		return TupleTy{Elems: elems, span: lpar.Span.Add(rpar.Span)}
	case token.And:
		start := p.tok
		p.next()
		mut := p.got(token.Mut)
		elem := p.parseTy()
		return RefTy{Mut: mut, Elem: elem, span: start.Span.Add(elem.Span())}
	case token.LeftBrace:
		lbrace := p.tok
		p.next()
		ty := p.parseTy()
		p.expect(token.Colon)
		pred := p.parseExpr()
		rbrace := p.expect(token.RightBrace)
		return ConstrTy{Ty: ty, Pred: pred, span: lbrace.Span.Add(rbrace.Span)}
	case token.LeftBracket:
		return p.parseBracketTy()
	case token.Ident:
		path := p.parsePath()
		switch p.tok.Type {
		case token.LeftBrace:
			return p.parseExistsTail(path)
		case token.LeftBracket:
			ix := p.parseIndices()
			return IndexedTy{Path: path, Indices: ix, span: path.span.Add(ix.span)}
		}
		return path
	}
	p.unexpected()
	panic("unreachable")
}

// parseBracketTy parses `[T; _]` (array) or `[T]` (slice). The array
// length position only admits the placeholder identifier.
func (p *parser) parseBracketTy() Ty {
	lbracket := p.expect(token.LeftBracket)
	elem := p.parseTy()
	if p.got(token.Semicolon) {
		if p.tok.Type != token.Ident {
			p.unexpected()
		}
		if p.tok.Data != "_" {
			p.bail(&ArrayLenError{Name: p.tok.Data, Span: p.tok.Span})
		}
		length := p.parseIdent()
		rbracket := p.expect(token.RightBracket)
		return ArrayTy{Elem: elem, Len: length, span: lbracket.Span.Add(rbracket.Span)}
	}
	rbracket := p.expect(token.RightBracket)
	return SliceTy{Elem: elem, span: lbracket.Span.Add(rbracket.Span)}
}

// parseExistsTail finishes `path { bind : pred }` after the path has
// been consumed.
func (p *parser) parseExistsTail(path Path) Ty {
	p.expect(token.LeftBrace)
	bind := p.parseIdent()
	p.expect(token.Colon)
	pred := p.parseExpr()
	rbrace := p.expect(token.RightBrace)
	return ExistsTy{Path: path, Bind: bind, Pred: pred, span: path.span.Add(rbrace.Span)}
}

func (p *parser) parsePath() Path {
	name := p.parseIdent()
	if p.tok.Type != token.LessThan {
		return Path{Name: name, span: name.span}
	}
	p.next()
	args := parseSep(p, token.Comma, token.GreaterThan, p.parseTy)
	gt := p.expect(token.GreaterThan)
	return Path{Name: name, Args: args, span: name.span.Add(gt.Span)}
}

func (p *parser) parseIndices() Indices {
	lbracket := p.expect(token.LeftBracket)
	args := parseSep(p, token.Comma, token.RightBracket, p.parseRefineArg)
	rbracket := p.expect(token.RightBracket)
	return Indices{Args: args, span: lbracket.Span.Add(rbracket.Span)}
}

func (p *parser) parseRefineArg() RefineArg {
	switch p.tok.Type {
	case token.At:
		at := p.tok
		p.next()
		name := p.parseIdent()
		return Bind{Name: name, span: at.Span.Add(name.span)}
	case token.Or:
		pipe := p.tok
		p.next()
		params := parseSep(p, token.Comma, token.Or, p.parseIdent)
		p.expect(token.Or)
		body := p.parseExpr()
		return Abs{Params: params, Body: body, span: pipe.Span.Add(body.Span())}
	}
	return ExprArg{X: p.parseExpr()}
}

func (p *parser) parseSort() Sort {
	if p.tok.Type == token.LeftParen {
		lpar := p.tok
		p.next()
		inputs := parseSep(p, token.Comma, token.RightParen, p.parseIdent)
		p.expect(token.RightParen)
		p.expect(token.RightArrow)
		output := p.parseIdent()
		return FuncSort{Inputs: inputs, Output: output, span: lpar.Span.Add(output.span)}
	}
	return BaseSort{Name: p.parseIdent()}
}

func (p *parser) parseRefineParam() RefineParam {
	name, sort := parseBind(p, token.Colon, p.parseIdent, p.parseSort)
	return RefineParam{Name: name, Sort: sort, span: name.span.Add(sort.Span())}
}

// parseArg parses one signature parameter. The four named forms share
// the `ident ":"` prefix and are told apart by the token (or two)
// following it:
//
//	x : &strg T      strong reference
//	x : T[i, ...]    indexed alias
//	x : T{pred}      constraint, x itself is the binder
//	x : T ...        plain annotated type
//
// Anything not starting with `ident ":"` is an unnamed plain type.
func (p *parser) parseArg() Arg {
	if p.tok.Type != token.Ident || p.peek().Type != token.Colon {
		ty := p.parseTy()
		return TyArg{Ty: ty, span: ty.Span()}
	}
	name := p.parseIdent()
	p.expect(token.Colon)
	switch {
	case p.tok.Type == token.And && p.peek().Type == token.Strg:
		p.next()
		p.next()
		ty := p.parseTy()
		return StrgRefArg{Name: name, Ty: ty, span: name.span.Add(ty.Span())}
	case p.tok.Type == token.Ident:
		path := p.parsePath()
		switch p.tok.Type {
		case token.LeftBracket:
			ix := p.parseIndices()
			return AliasArg{Name: name, Path: path, Indices: ix, span: name.span.Add(ix.span)}
		case token.LeftBrace:
			if p.peek().Type == token.Ident && p.peek2().Type == token.Colon {
				ty := p.parseExistsTail(path)
				return TyArg{Name: &name, Ty: ty, span: name.span.Add(ty.Span())}
			}
			p.next()
			pred := p.parseExpr()
			rbrace := p.expect(token.RightBrace)
			return ConstrArg{Name: name, Path: path, Pred: pred, span: name.span.Add(rbrace.Span)}
		}
		return TyArg{Name: &name, Ty: path, span: name.span.Add(path.span)}
	}
	ty := p.parseTy()
	return TyArg{Name: &name, Ty: ty, span: name.span.Add(ty.Span())}
}
