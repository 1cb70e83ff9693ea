// Package token defines the lexical vocabulary of the refinement
// annotation language and the source positions the parser attaches to
// every node. Tokens are produced by an external lexer; the parser only
// consumes them.
package token

import (
	"fmt"

	"golang.org/x/exp/maps"
	"golang.org/x/exp/slices"
)

type TokenType int

const (
	EOF TokenType = iota

	Plus
	Minus
	Times
	Remainder

	And // &
	Or  // |
	At
	Equals
	Colon
	Comma
	Semicolon
	Period
	RightArrow

	LogicalAnd
	LogicalOr
	LogicalEquals
	LessThan
	LessThanEquals
	GreaterThan
	GreaterThanEquals
	FatArrow
	Iff

	LeftParen
	RightParen
	LeftBrace
	RightBrace
	LeftBracket
	RightBracket

	Fn
	Type
	Mut
	Strg
	Ref
	Requires
	Ensures
	If
	Else
	Where
	Ignore
	Assume
	Check

	Ident
	Number
	Bool
	Illegal
)

var tokenNames = map[TokenType]string{
	EOF:               "EOF",
	Plus:              "+",
	Minus:             "-",
	Times:             "*",
	Remainder:         "%",
	And:               "&",
	Or:                "|",
	At:                "@",
	Equals:            "=",
	Colon:             ":",
	Comma:             ",",
	Semicolon:         ";",
	Period:            ".",
	RightArrow:        "->",
	LogicalAnd:        "&&",
	LogicalOr:         "||",
	LogicalEquals:     "==",
	LessThan:          "<",
	LessThanEquals:    "<=",
	GreaterThan:       ">",
	GreaterThanEquals: ">=",
	FatArrow:          "=>",
	Iff:               "<=>",
	LeftParen:         "(",
	RightParen:        ")",
	LeftBrace:         "{",
	RightBrace:        "}",
	LeftBracket:       "[",
	RightBracket:      "]",
	Fn:                "fn",
	Type:              "type",
	Mut:               "mut",
	Strg:              "strg",
	Ref:               "ref",
	Requires:          "requires",
	Ensures:           "ensures",
	If:                "if",
	Else:              "else",
	Where:             "where",
	Ignore:            "ignore",
	Assume:            "assume",
	Check:             "check",
	Ident:             "Ident",
	Number:            "Number",
	Bool:              "Bool",
	Illegal:           "Illegal",
}

func (tt TokenType) String() string {
	if name, ok := tokenNames[tt]; ok {
		return name
	}
	return fmt.Sprintf("TokenType(%d)", int(tt))
}

var SingleCharTokens = map[rune]TokenType{
	'+': Plus,
	'-': Minus,
	'*': Times,
	'%': Remainder,
	'&': And,
	'|': Or,
	'@': At,
	'=': Equals,
	':': Colon,
	',': Comma,
	';': Semicolon,
	'.': Period,
	'<': LessThan,
	'>': GreaterThan,
	'(': LeftParen,
	')': RightParen,
	'{': LeftBrace,
	'}': RightBrace,
	'[': LeftBracket,
	']': RightBracket,
}

var DoubleCharTokens = map[[2]rune]TokenType{
	{'-', '>'}: RightArrow,
	{'&', '&'}: LogicalAnd,
	{'|', '|'}: LogicalOr,
	{'=', '='}: LogicalEquals,
	{'<', '='}: LessThanEquals,
	{'>', '='}: GreaterThanEquals,
	{'=', '>'}: FatArrow,
}

var Keywords = map[string]TokenType{
	"fn":       Fn,
	"type":     Type,
	"mut":      Mut,
	"strg":     Strg,
	"ref":      Ref,
	"requires": Requires,
	"ensures":  Ensures,
	"if":       If,
	"else":     Else,
	"where":    Where,
	"ignore":   Ignore,
	"assume":   Assume,
	"check":    Check,
}

// KeywordNames returns the keyword spellings in sorted order.
func KeywordNames() []string {
	names := maps.Keys(Keywords)
	slices.Sort(names)
	return names
}

type Pos struct {
	Offset int
	Line   int
	Column int
}

func (p Pos) Min(other Pos) Pos {
	if p.Column == 0 {
		return other
	}
	if other.Column == 0 {
		return p
	}
	if p.Offset < other.Offset {
		return p
	}
	return other
}

func (p Pos) Max(other Pos) Pos {
	if p.Column == 0 {
		return other
	}
	if other.Column == 0 {
		return p
	}
	if p.Offset > other.Offset {
		return p
	}
	return other
}

// Span covers a half-open byte range: Start is the position of the first
// character and End the position immediately after the last one.
type Span struct {
	Start Pos
	End   Pos
}

func (span Span) Add(other Span) Span {
	return Span{span.Start.Min(other.Start), span.End.Max(other.End)}
}

func (s Span) String() string {
	if s.Start == s.End {
		return fmt.Sprintf("%d:%d", s.Start.Line, s.Start.Column)
	}
	if s.Start.Line == s.End.Line {
		return fmt.Sprintf("%d:%d-%d", s.Start.Line, s.Start.Column, s.End.Column)
	}
	return fmt.Sprintf("%d:%d-%d:%d", s.Start.Line, s.Start.Column, s.End.Line, s.End.Column)
}

type Token struct {
	Type TokenType
	Span Span
	Data string
}

func (t Token) String() string {
	if t.Data == "" {
		return fmt.Sprintf("%s:%s", t.Span, t.Type)
	}
	return fmt.Sprintf("%s:%s %q", t.Span, t.Type, t.Data)
}

func (a Token) Eq(b Token) bool {
	return a.Type == b.Type && a.Data == b.Data
}

func (a Token) ExactEq(b Token) bool {
	return a.Type == b.Type && a.Span == b.Span && a.Data == b.Data
}

var relational = []TokenType{LogicalEquals, LessThan, LessThanEquals, GreaterThan, GreaterThanEquals}

func (t Token) IsBinaryOp() bool {
	switch t.Type {
	case Iff, FatArrow, LogicalOr, LogicalAnd, Plus, Minus, Times, Remainder:
		return true
	}
	return slices.Contains(relational, t.Type)
}

const MinPrec = 1

// Prec is the binding level of a binary operator, tightest last.
func (t Token) Prec() int {
	switch t.Type {
	case Iff:
		return 1
	case FatArrow:
		return 2
	case LogicalOr:
		return 3
	case LogicalAnd:
		return 4
	case Times, Remainder:
		return 7
	case Plus, Minus:
		return 6
	}
	if slices.Contains(relational, t.Type) {
		return 5
	}
	return 0
}

// IsLeftAssoc reports whether an operator may chain with itself at the
// same level. Iff and the relational operators are non-associative.
func (t Token) IsLeftAssoc() bool {
	switch t.Type {
	case FatArrow, LogicalOr, LogicalAnd, Plus, Minus, Times, Remainder:
		return true
	}
	return false
}
