package driver

import (
	"calc/internal/diag"
	"calc/internal/eval"
)

// EvalResult is the full pipeline outcome. Value is meaningful only when
// Err is nil.
type EvalResult struct {
	*ParseResult
	Value int64
}

// EvalFile runs text → tokens → tree → value over one expression file.
func EvalFile(path string, maxDiagnostics int) (*EvalResult, error) {
	parsed, err := ParseFile(path, maxDiagnostics)
	if err != nil {
		return nil, err
	}
	return evaluate(parsed), nil
}

// EvalSource runs the full pipeline over an in-memory expression.
func EvalSource(name, src string, maxDiagnostics int) *EvalResult {
	return evaluate(ParseSource(name, src, maxDiagnostics))
}

// evaluate folds a completed parse. Each stage runs to completion before
// the next starts; the first fault of any stage aborts the pipeline and is
// never reinterpreted by a later stage.
func evaluate(parsed *ParseResult) *EvalResult {
	result := &EvalResult{ParseResult: parsed}
	if parsed.Err != nil {
		return result
	}

	opts := eval.Options{Reporter: diag.BagReporter{Bag: parsed.Bag}}
	value, err := eval.Evaluate(parsed.Expr, opts)
	result.Value = value
	result.Err = err
	return result
}
