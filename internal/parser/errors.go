package parser

import (
	"fmt"

	"calc/internal/token"
)

// SyntaxErrorKind tags the two ways a parse can fail.
type SyntaxErrorKind uint8

const (
	// UnexpectedToken means the lookahead could not start or continue the
	// grammar production being parsed.
	UnexpectedToken SyntaxErrorKind = iota
	// MissingRightParen means a '(' group was never closed.
	MissingRightParen
)

func (k SyntaxErrorKind) String() string {
	switch k {
	case UnexpectedToken:
		return "unexpected token"
	case MissingRightParen:
		return "missing right parenthesis"
	}
	return "unknown"
}

// SyntaxError reports the first grammar fault with the offending token.
type SyntaxError struct {
	Kind  SyntaxErrorKind
	Token token.Token
}

func (e *SyntaxError) Error() string {
	if e.Token.Kind == token.EOF {
		return fmt.Sprintf("%s: end of input", e.Kind)
	}
	return fmt.Sprintf("%s: %q", e.Kind, e.Token.Text)
}
