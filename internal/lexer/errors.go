package lexer

import (
	"fmt"

	"calc/internal/source"
)

// InvalidCharError reports a byte outside the expression alphabet.
// Span.Start is the byte offset of the offending character.
type InvalidCharError struct {
	Char byte
	Span source.Span
}

func (e *InvalidCharError) Error() string {
	return fmt.Sprintf("invalid character %q at offset %d", e.Char, e.Span.Start)
}
