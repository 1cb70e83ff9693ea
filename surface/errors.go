package surface

import (
	"fmt"

	"github.com/akhsm/refinery/token"
)

// UnexpectedTokenError reports the first token that matches no
// alternative of the production being parsed. Parsing aborts at the
// first failure; there is no recovery.
type UnexpectedTokenError struct {
	Tok token.Token
}

func (e *UnexpectedTokenError) Error() string {
	return fmt.Sprintf("unexpected token %s", e.Tok)
}

// ArrayLenError reports an array length that is not the placeholder
// identifier `_`. Symbolic lengths are not part of the grammar and are
// rejected rather than silently accepted.
type ArrayLenError struct {
	Name string
	Span token.Span
}

func (e *ArrayLenError) Error() string {
	return fmt.Sprintf("%s: invalid array length %q, expected _", e.Span, e.Name)
}
