// Package eval walks a parsed expression tree and produces its int64 value.
//
// The fold is pure: no state outside the tree, left operand evaluated before
// the right. Arithmetic is fixed at 64-bit signed with one uniform policy:
// any operation or literal that does not fit int64 is a fatal Overflow
// fault, never a silent wraparound or saturation.
package eval

import (
	"errors"
	"fmt"
	"strconv"

	"calc/internal/ast"
	"calc/internal/diag"
	"calc/internal/token"
)

type Options struct {
	Reporter diag.Reporter
}

// Evaluate computes the value of the expression tree. The first fault stops
// the evaluation and is returned as *ArithmeticError.
func Evaluate(expr ast.Expr, opts Options) (int64, error) {
	switch node := expr.(type) {
	case *ast.Literal:
		return evalLiteral(node, opts)
	case *ast.Binary:
		return evalBinary(node, opts)
	default:
		// the Expr set is closed; a third variant is a bug, not an input fault
		panic(fmt.Sprintf("eval: unknown expression node %T", expr))
	}
}

func evalLiteral(node *ast.Literal, opts Options) (int64, error) {
	v, err := strconv.ParseInt(node.Value.Text, 10, 64)
	if err != nil {
		var numErr *strconv.NumError
		if errors.As(err, &numErr) && errors.Is(numErr.Err, strconv.ErrRange) {
			return 0, fault(opts, Overflow, node, "integer literal does not fit 64 bits")
		}
		// the lexer only emits digit runs, so anything else is a bug
		panic(fmt.Sprintf("eval: malformed number literal %q", node.Value.Text))
	}
	return v, nil
}

func evalBinary(node *ast.Binary, opts Options) (int64, error) {
	left, err := Evaluate(node.Left, opts)
	if err != nil {
		return 0, err
	}
	right, err := Evaluate(node.Right, opts)
	if err != nil {
		return 0, err
	}

	switch node.Op.Kind {
	case token.Plus:
		res, ok := addInt64Checked(left, right)
		if !ok {
			return 0, fault(opts, Overflow, node, "integer overflow in addition")
		}
		return res, nil
	case token.Minus:
		res, ok := subInt64Checked(left, right)
		if !ok {
			return 0, fault(opts, Overflow, node, "integer overflow in subtraction")
		}
		return res, nil
	case token.Star:
		res, ok := mulInt64Checked(left, right)
		if !ok {
			return 0, fault(opts, Overflow, node, "integer overflow in multiplication")
		}
		return res, nil
	case token.Slash:
		if right == 0 {
			return 0, fault(opts, DivisionByZero, node, "division by zero")
		}
		if left == minInt64 && right == -1 {
			return 0, fault(opts, Overflow, node, "integer overflow in division")
		}
		// Go's integer division truncates toward zero, as required
		return left / right, nil
	default:
		panic(fmt.Sprintf("eval: operator token %s in binary node", node.Op.Kind))
	}
}

func fault(opts Options, kind ArithmeticErrorKind, node ast.Expr, msg string) error {
	if opts.Reporter != nil {
		code := diag.EvalDivisionByZero
		if kind == Overflow {
			code = diag.EvalIntOverflow
		}
		opts.Reporter.Report(code, diag.SevError, node.Span(), msg, nil)
	}
	return &ArithmeticError{Kind: kind, Span: node.Span()}
}
