package surface_test

// A minimal tokenizer so the tests can be written against surface
// strings instead of hand-built token slices. The library itself never
// scans characters; it only consumes tokens.

import (
	"testing"
	"unicode"
	"unicode/utf8"

	"github.com/akhsm/refinery/surface"
	"github.com/akhsm/refinery/token"
	"github.com/smasher164/xid"
)

func lex(t *testing.T, src string) surface.TokenStream {
	t.Helper()
	return surface.Tokens(lexTokens(t, src))
}

func lexTokens(t *testing.T, src string) []token.Token {
	t.Helper()
	var toks []token.Token
	rs := []rune(src)
	off, line, col := 0, 1, 1
	pos := func() token.Pos { return token.Pos{Offset: off, Line: line, Column: col} }
	advance := func(r rune) {
		off += utf8.RuneLen(r)
		if r == '\n' {
			line++
			col = 1
		} else {
			col++
		}
	}
	isIdentStart := func(r rune) bool { return r == '_' || xid.Start(r) }
	isIdentCont := func(r rune) bool { return r == '_' || xid.Continue(r) }

	for i := 0; i < len(rs); {
		r := rs[i]
		if unicode.IsSpace(r) {
			advance(r)
			i++
			continue
		}
		start := pos()
		switch {
		case isIdentStart(r):
			j := i
			for j < len(rs) && isIdentCont(rs[j]) {
				advance(rs[j])
				j++
			}
			data := string(rs[i:j])
			i = j
			switch {
			case data == "true" || data == "false":
				toks = append(toks, token.Token{Type: token.Bool, Span: token.Span{Start: start, End: pos()}, Data: data})
			default:
				tt, ok := token.Keywords[data]
				if !ok {
					tt = token.Ident
				}
				toks = append(toks, token.Token{Type: tt, Span: token.Span{Start: start, End: pos()}, Data: data})
			}
		case r >= '0' && r <= '9':
			j := i
			for j < len(rs) && rs[j] >= '0' && rs[j] <= '9' {
				advance(rs[j])
				j++
			}
			toks = append(toks, token.Token{Type: token.Number, Span: token.Span{Start: start, End: pos()}, Data: string(rs[i:j])})
			i = j
		case r == '<' && i+2 < len(rs) && rs[i+1] == '=' && rs[i+2] == '>':
			advance(rs[i])
			advance(rs[i+1])
			advance(rs[i+2])
			i += 3
			toks = append(toks, token.Token{Type: token.Iff, Span: token.Span{Start: start, End: pos()}})
		default:
			if i+1 < len(rs) {
				if tt, ok := token.DoubleCharTokens[[2]rune{r, rs[i+1]}]; ok {
					advance(rs[i])
					advance(rs[i+1])
					i += 2
					toks = append(toks, token.Token{Type: tt, Span: token.Span{Start: start, End: pos()}})
					continue
				}
			}
			tt, ok := token.SingleCharTokens[r]
			if !ok {
				t.Fatalf("cannot tokenize %q at offset %d", r, off)
			}
			advance(r)
			i++
			toks = append(toks, token.Token{Type: tt, Span: token.Span{Start: start, End: pos()}})
		}
	}
	toks = append(toks, token.Token{Type: token.EOF, Span: token.Span{Start: pos(), End: pos()}})
	return toks
}
