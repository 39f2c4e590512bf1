package token

import (
	"calc/internal/source"
)

// Token represents a single expression token with its location.
// Tokens are produced once by the lexer and never mutated. Text holds the
// exact lexeme: the full digit run for Number (leading zeros preserved),
// the operator or parenthesis character otherwise, and "" for EOF.
type Token struct {
	Kind Kind
	Span source.Span
	Text string
}

// IsNumber reports whether the token is an integer literal.
func (t Token) IsNumber() bool { return t.Kind == Number }

// IsOperator reports whether the token is one of the four arithmetic
// operators. Only these kinds may appear as a binary node operator.
func (t Token) IsOperator() bool {
	switch t.Kind {
	case Plus, Minus, Star, Slash:
		return true
	default:
		return false
	}
}

// IsParen reports whether the token is a parenthesis.
func (t Token) IsParen() bool {
	return t.Kind == LParen || t.Kind == RParen
}
