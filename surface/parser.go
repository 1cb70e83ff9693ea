package surface

import (
	"strconv"

	"github.com/akhsm/refinery/token"
)

// TokenStream feeds tokens to the parser. After the input is exhausted
// it must keep returning an EOF token.
type TokenStream interface {
	Next() token.Token
}

type sliceStream struct {
	toks []token.Token
	eof  token.Token
}

func (s *sliceStream) Next() token.Token {
	if len(s.toks) == 0 {
		return s.eof
	}
	tok := s.toks[0]
	s.toks = s.toks[1:]
	if tok.Type == token.EOF {
		s.eof = tok
		s.toks = nil
		return tok
	}
	s.eof = token.Token{Type: token.EOF, Span: token.Span{Start: tok.Span.End, End: tok.Span.End}}
	return tok
}

// Tokens adapts an already-materialized token sequence to a TokenStream,
// synthesizing a trailing EOF if the sequence lacks one.
func Tokens(toks []token.Token) TokenStream {
	return &sliceStream{toks: toks}
}

type parser struct {
	s   TokenStream
	tok token.Token
	buf []token.Token
}

func newParser(s TokenStream) *parser {
	p := &parser{s: s}
	p.next()
	return p
}

func (p *parser) next() {
	if len(p.buf) > 0 {
		p.tok = p.buf[0]
		p.buf = p.buf[1:]
		return
	}
	p.tok = p.s.Next()
}

func (p *parser) peek() token.Token {
	if len(p.buf) == 0 {
		p.buf = append(p.buf, p.s.Next())
	}
	return p.buf[0]
}

func (p *parser) peek2() token.Token {
	for len(p.buf) < 2 {
		p.buf = append(p.buf, p.s.Next())
	}
	return p.buf[1]
}

// bailout wraps a parse error for the panic-based abort; entry points
// recover it and hand the error to the caller.
type bailout struct {
	err error
}

func (p *parser) bail(err error) {
	panic(bailout{err})
}

func (p *parser) unexpected() {
	p.bail(&UnexpectedTokenError{Tok: p.tok})
}

// expect consumes and returns a token of the given type, aborting the
// parse otherwise.
func (p *parser) expect(tt token.TokenType) token.Token {
	if p.tok.Type != tt {
		p.unexpected()
	}
	tok := p.tok
	p.next()
	return tok
}

// got consumes the current token if it has the given type.
func (p *parser) got(tt token.TokenType) bool {
	if p.tok.Type != tt {
		return false
	}
	p.next()
	return true
}

func (p *parser) parseIdent() Ident {
	tok := p.expect(token.Ident)
	return Ident{Name: tok.Data, span: tok.Span}
}

func (p *parser) parseLit() Lit {
	tok := p.tok
	switch tok.Type {
	case token.Number:
		n, err := strconv.ParseInt(tok.Data, 10, 64)
		if err != nil {
			p.unexpected()
		}
		p.next()
		return Lit{Kind: LitInt, Symbol: tok.Data, Int: n, span: tok.Span}
	case token.Bool:
		p.next()
		return Lit{Kind: LitBool, Symbol: tok.Data, Bool: tok.Data == "true", span: tok.Span}
	}
	p.unexpected()
	panic("unreachable")
}

// eof requires the whole input to have been consumed by the entry
// production.
func (p *parser) eof() {
	if p.tok.Type != token.EOF {
		p.unexpected()
	}
}

func catch(err *error) {
	if e := recover(); e != nil {
		b, ok := e.(bailout)
		if !ok {
			panic(e)
		}
		*err = b.err
	}
}

// ParseExpr parses a bare refinement expression.
func ParseExpr(s TokenStream) (x Expr, err error) {
	defer catch(&err)
	p := newParser(s)
	x = p.parseExpr()
	p.eof()
	return x, nil
}

// ParseTypeAlias parses `type Name(params) = Ty`; the parameter list may
// be omitted.
func ParseTypeAlias(s TokenStream) (a Alias, err error) {
	defer catch(&err)
	p := newParser(s)
	a = p.parseAlias()
	p.eof()
	return a, nil
}

// ParseRefinedBy parses the bare parameter list of a refined-by clause.
func ParseRefinedBy(s TokenStream) (r RefinedBy, err error) {
	defer catch(&err)
	p := newParser(s)
	r = p.parseRefinedBy()
	p.eof()
	return r, nil
}

// ParseUif parses an uninterpreted function declaration,
// `fn name(in1, ..., inN) -> out`.
func ParseUif(s TokenStream) (u UifDef, err error) {
	defer catch(&err)
	p := newParser(s)
	u = p.parseUifDef()
	p.eof()
	return u, nil
}

// ParseQualifier parses a qualifier, `name(params) { expr }`.
func ParseQualifier(s TokenStream) (q Qualifier, err error) {
	defer catch(&err)
	p := newParser(s)
	q = p.parseQualifier()
	p.eof()
	return q, nil
}

// ParseFnSig parses a refined function signature.
func ParseFnSig(s TokenStream) (sig FnSig, err error) {
	defer catch(&err)
	p := newParser(s)
	sig = p.parseFnSig()
	p.eof()
	return sig, nil
}

// ParseVariant parses one constructor definition of a refined ADT.
func ParseVariant(s TokenStream) (v VariantDef, err error) {
	defer catch(&err)
	p := newParser(s)
	v = p.parseVariant()
	p.eof()
	return v, nil
}
