package surface

import (
	"github.com/akhsm/refinery/token"
)

// Alias = "type" Ident [ "(" Ident,* ")" ] "=" Ty
func (p *parser) parseAlias() Alias {
	typeTok := p.expect(token.Type)
	name := p.parseIdent()
	var params []Ident
	if p.got(token.LeftParen) {
		params = parseSep(p, token.Comma, token.RightParen, p.parseIdent)
		p.expect(token.RightParen)
	}
	p.expect(token.Equals)
	defn := p.parseTy()
	return Alias{Name: name, Params: params, Defn: defn, span: typeTok.Span.Add(defn.Span())}
}

// RefinedBy = RefineParam,*
func (p *parser) parseRefinedBy() RefinedBy {
	start := p.tok
	params := parseSep(p, token.Comma, token.EOF, p.parseRefineParam)
	span := token.Span{Start: start.Span.Start, End: start.Span.Start}
	if n := len(params); n > 0 {
		span = params[0].span.Add(params[n-1].span)
	}
	return RefinedBy{Params: params, span: span}
}

// UifDef = "fn" Ident "(" Ident,* ")" "->" Ident
func (p *parser) parseUifDef() UifDef {
	fnTok := p.expect(token.Fn)
	name := p.parseIdent()
	p.expect(token.LeftParen)
	inputs := parseSep(p, token.Comma, token.RightParen, p.parseIdent)
	p.expect(token.RightParen)
	p.expect(token.RightArrow)
	output := p.parseIdent()
	return UifDef{Name: name, Inputs: inputs, Output: output, span: fnTok.Span.Add(output.span)}
}

// Qualifier = Ident "(" RefineParam,* ")" "{" Expr "}"
func (p *parser) parseQualifier() Qualifier {
	name := p.parseIdent()
	p.expect(token.LeftParen)
	params := parseSep(p, token.Comma, token.RightParen, p.parseRefineParam)
	p.expect(token.RightParen)
	p.expect(token.LeftBrace)
	body := p.parseExpr()
	rbrace := p.expect(token.RightBrace)
	return Qualifier{Name: name, Params: params, Body: body, span: name.span.Add(rbrace.Span)}
}

// FnSig = "fn" [ "<" RefineParam,* ">" ] "(" Arg,* ")"
//         [ "->" Ty ] [ "requires" Expr ] [ "ensures" TyBind,* ]
//
// Generics, return type, requires and ensures are each independently
// optional.
func (p *parser) parseFnSig() FnSig {
	fnTok := p.expect(token.Fn)
	end := fnTok.Span
	var generics []RefineParam
	if p.got(token.LessThan) {
		generics = parseSep(p, token.Comma, token.GreaterThan, p.parseRefineParam)
		p.expect(token.GreaterThan)
	}
	p.expect(token.LeftParen)
	args := parseSep(p, token.Comma, token.RightParen, p.parseArg)
	end = p.expect(token.RightParen).Span
	var ret Ty
	if p.got(token.RightArrow) {
		ret = p.parseTy()
		end = ret.Span()
	}
	var requires Expr
	if p.got(token.Requires) {
		requires = p.parseExpr()
		end = requires.Span()
	}
	var ensures []TyBind
	if p.got(token.Ensures) {
		ensures = parseSep(p, token.Comma, token.EOF, p.parseTyBind)
		if n := len(ensures); n > 0 {
			end = ensures[n-1].span
		}
	}
	return FnSig{
		Generics: generics,
		Args:     args,
		Ret:      ret,
		Requires: requires,
		Ensures:  ensures,
		span:     fnTok.Span.Add(end),
	}
}

func (p *parser) parseTyBind() TyBind {
	name, ty := parseBind(p, token.Colon, p.parseIdent, p.parseTy)
	return TyBind{Name: name, Ty: ty, span: name.span.Add(ty.Span())}
}

// Variant = [ Fields "->" ] VariantRet
// Fields  = "(" Ty,* ")" | "{" Ty,* "}"
//
// Both field spellings are accepted and produce the same node.
func (p *parser) parseVariant() VariantDef {
	start := p.tok
	var fields []Ty
	switch p.tok.Type {
	case token.LeftParen:
		p.next()
		fields = parseSep(p, token.Comma, token.RightParen, p.parseTy)
		p.expect(token.RightParen)
		p.expect(token.RightArrow)
	case token.LeftBrace:
		p.next()
		fields = parseSep(p, token.Comma, token.RightBrace, p.parseTy)
		p.expect(token.RightBrace)
		p.expect(token.RightArrow)
	}
	ret := p.parseVariantRet()
	return VariantDef{Fields: fields, Ret: ret, span: start.Span.Add(ret.span)}
}

// parseVariantRet parses `Path [ Indices ]`; an omitted index list is
// empty, with a zero-width span after the path.
func (p *parser) parseVariantRet() VariantRet {
	path := p.parsePath()
	var ix Indices
	if p.tok.Type == token.LeftBracket {
		ix = p.parseIndices()
	} else {
		ix = Indices{span: token.Span{Start: path.span.End, End: path.span.End}}
	}
	return VariantRet{Path: path, Indices: ix, span: path.span.Add(ix.span)}
}
