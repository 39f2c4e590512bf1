package driver

import (
	"calc/internal/ast"
	"calc/internal/diag"
	"calc/internal/parser"
)

// ParseResult extends the scan result with the expression tree. On a fault
// in either stage Expr is nil and Err holds the first typed error.
type ParseResult struct {
	*TokenizeResult
	Expr ast.Expr
}

// ParseFile loads, tokenizes, and parses one expression file.
func ParseFile(path string, maxDiagnostics int) (*ParseResult, error) {
	tokenized, err := TokenizeFile(path, maxDiagnostics)
	if err != nil {
		return nil, err
	}
	return parse(tokenized), nil
}

// ParseSource tokenizes and parses an in-memory expression.
func ParseSource(name, src string, maxDiagnostics int) *ParseResult {
	return parse(TokenizeSource(name, src, maxDiagnostics))
}

// parse runs the parser over a completed scan. The scanner always finishes
// before the parser starts; a lexical fault short-circuits the parse.
func parse(tokenized *TokenizeResult) *ParseResult {
	result := &ParseResult{TokenizeResult: tokenized}
	if tokenized.Err != nil {
		return result
	}

	opts := parser.Options{Reporter: diag.BagReporter{Bag: tokenized.Bag}}
	expr, err := parser.ParseExpression(tokenized.Tokens, opts)
	result.Expr = expr
	result.Err = err
	return result
}
