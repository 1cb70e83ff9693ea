package surface

import (
	"github.com/akhsm/refinery/token"
)

// parseSep parses a possibly empty list of items separated by sep and
// terminated by until. A trailing separator is allowed; a leading or
// doubled separator is not, because parseItem sees the stray separator
// and rejects it. The terminator is left unconsumed.
func parseSep[T any](p *parser, sep, until token.TokenType, parseItem func() T) []T {
	var items []T
	for p.tok.Type != until && p.tok.Type != token.EOF {
		items = append(items, parseItem())
		if p.tok.Type != sep {
			break
		}
		p.next()
	}
	return items
}

// parseBind parses an `A sep B` binding pair.
func parseBind[A, B any](p *parser, sep token.TokenType, parseA func() A, parseB func() B) (A, B) {
	a := parseA()
	p.expect(sep)
	b := parseB()
	return a, b
}
