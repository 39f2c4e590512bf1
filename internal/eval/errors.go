package eval

import (
	"calc/internal/source"
)

// ArithmeticErrorKind tags the evaluation faults.
type ArithmeticErrorKind uint8

const (
	// DivisionByZero means the right operand of '/' evaluated to 0.
	DivisionByZero ArithmeticErrorKind = iota
	// Overflow means a literal or an intermediate result does not fit int64.
	Overflow
)

func (k ArithmeticErrorKind) String() string {
	switch k {
	case DivisionByZero:
		return "division by zero"
	case Overflow:
		return "integer overflow"
	}
	return "unknown"
}

// ArithmeticError reports a fault during tree evaluation, located at the
// node that produced it.
type ArithmeticError struct {
	Kind ArithmeticErrorKind
	Span source.Span
}

func (e *ArithmeticError) Error() string {
	return e.Kind.String()
}
