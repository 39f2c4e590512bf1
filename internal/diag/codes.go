package diag

import (
	"fmt"
)

// Code identifies a diagnostic within a numbered space: 1xxx lexical,
// 2xxx syntax, 3xxx evaluation.
type Code uint16

const (
	// UnknownCode is the zero value fallback.
	UnknownCode Code = 0

	// Lexical
	LexInfo        Code = 1000
	LexInvalidChar Code = 1001

	// Syntax
	SynInfo             Code = 2000
	SynUnexpectedToken  Code = 2001
	SynUnclosedParen    Code = 2002
	SynTrailingToken    Code = 2003
	SynExpectExpression Code = 2004

	// Evaluation
	EvalInfo           Code = 3000
	EvalDivisionByZero Code = 3001
	EvalIntOverflow    Code = 3002
)

var codeDescription = map[Code]string{
	UnknownCode: "unknown diagnostic",

	LexInfo:        "lexical note",
	LexInvalidChar: "invalid character in expression",

	SynInfo:             "syntax note",
	SynUnexpectedToken:  "unexpected token",
	SynUnclosedParen:    "missing right parenthesis",
	SynTrailingToken:    "trailing token after expression",
	SynExpectExpression: "expected expression",

	EvalInfo:           "evaluation note",
	EvalDivisionByZero: "division by zero",
	EvalIntOverflow:    "integer overflow",
}

// ID returns the short stable identifier, e.g. "SYN2002".
func (c Code) ID() string {
	switch ic := int(c); {
	case ic >= 1000 && ic < 2000:
		return fmt.Sprintf("LEX%04d", ic)
	case ic >= 2000 && ic < 3000:
		return fmt.Sprintf("SYN%04d", ic)
	case ic >= 3000 && ic < 4000:
		return fmt.Sprintf("EVAL%04d", ic)
	}
	return "E0000"
}

// Title returns the human-readable description of the code.
func (c Code) Title() string {
	desc, ok := codeDescription[c]
	if !ok {
		return codeDescription[UnknownCode]
	}
	return desc
}

func (c Code) String() string {
	return fmt.Sprintf("[%s]: %s", c.ID(), c.Title())
}
