package diagfmt

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"calc/internal/ast"
	"calc/internal/source"
)

// FormatExprPretty writes the expression tree as an indented outline:
//
//	Binary "*" (span: 0:0-17)
//	├─ Binary "+" (span: 0:0-8)
//	│  ├─ Literal "3"
//	│  └─ Literal "5"
//	└─ ...
func FormatExprPretty(w io.Writer, expr ast.Expr, fs *source.FileSet) error {
	writeExprNode(w, expr, fs, "", "")
	return nil
}

func writeExprNode(w io.Writer, expr ast.Expr, fs *source.FileSet, prefix, childPrefix string) {
	switch node := expr.(type) {
	case *ast.Literal:
		fmt.Fprintf(w, "%sLiteral %q\n", prefix, node.Value.Text)
	case *ast.Binary:
		fmt.Fprintf(w, "%sBinary %q (span: %s)\n", prefix, node.Op.Text, node.Span())
		writeExprNode(w, node.Left, fs, childPrefix+"├─ ", childPrefix+"│  ")
		writeExprNode(w, node.Right, fs, childPrefix+"└─ ", childPrefix+"   ")
	}
}

// ExprOutput is the JSON shape of one expression node.
type ExprOutput struct {
	Node  string      `json:"node"`
	Value string      `json:"value,omitempty"`
	Op    string      `json:"op,omitempty"`
	Span  source.Span `json:"span"`
	Left  *ExprOutput `json:"left,omitempty"`
	Right *ExprOutput `json:"right,omitempty"`
}

// FormatExprJSON writes the expression tree as nested JSON objects.
func FormatExprJSON(w io.Writer, expr ast.Expr) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(exprToOutput(expr))
}

func exprToOutput(expr ast.Expr) *ExprOutput {
	switch node := expr.(type) {
	case *ast.Literal:
		return &ExprOutput{
			Node:  "Literal",
			Value: node.Value.Text,
			Span:  node.Span(),
		}
	case *ast.Binary:
		return &ExprOutput{
			Node:  "Binary",
			Op:    node.Op.Text,
			Span:  node.Span(),
			Left:  exprToOutput(node.Left),
			Right: exprToOutput(node.Right),
		}
	}
	return nil
}

// ExprString renders the tree on one line with explicit grouping, mainly
// for tests and REPL echo: ((3 + 5) * (2 - 1)).
func ExprString(expr ast.Expr) string {
	var sb strings.Builder
	writeExprInline(&sb, expr)
	return sb.String()
}

func writeExprInline(sb *strings.Builder, expr ast.Expr) {
	switch node := expr.(type) {
	case *ast.Literal:
		sb.WriteString(node.Value.Text)
	case *ast.Binary:
		sb.WriteByte('(')
		writeExprInline(sb, node.Left)
		sb.WriteByte(' ')
		sb.WriteString(node.Op.Text)
		sb.WriteByte(' ')
		writeExprInline(sb, node.Right)
		sb.WriteByte(')')
	}
}
