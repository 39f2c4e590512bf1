package diagfmt_test

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"

	"calc/internal/diag"
	"calc/internal/diagfmt"
	"calc/internal/driver"
	"calc/internal/source"
)

func TestExprString(t *testing.T) {
	tests := []struct {
		input string
		want  string
	}{
		{"42", "42"},
		{"1 + 2", "(1 + 2)"},
		{"2 + 3 * 4", "(2 + (3 * 4))"},
		{"10 - 2 - 3", "((10 - 2) - 3)"},
		{"(3 + 5) * (2 - 1)", "((3 + 5) * (2 - 1))"},
	}
	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			res := driver.ParseSource("test.calc", tt.input, 8)
			if res.Err != nil {
				t.Fatalf("parse failed: %v", res.Err)
			}
			if got := diagfmt.ExprString(res.Expr); got != tt.want {
				t.Errorf("ExprString = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestFormatTokensPretty(t *testing.T) {
	res := driver.TokenizeSource("test.calc", "1 + 2", 8)
	if res.Err != nil {
		t.Fatalf("tokenize failed: %v", res.Err)
	}

	var buf bytes.Buffer
	if err := diagfmt.FormatTokensPretty(&buf, res.Tokens, res.FileSet); err != nil {
		t.Fatal(err)
	}

	lines := strings.Split(strings.TrimRight(buf.String(), "\n"), "\n")
	if len(lines) != 4 {
		t.Fatalf("got %d lines, want 4:\n%s", len(lines), buf.String())
	}
	for i, want := range []string{"Number", "Plus", "Number", "EOF"} {
		if !strings.Contains(lines[i], want) {
			t.Errorf("line %d = %q, want it to name %s", i+1, lines[i], want)
		}
	}
	if !strings.Contains(lines[0], `"1"`) {
		t.Errorf("first line should quote the lexeme: %q", lines[0])
	}
}

func TestFormatTokensJSON(t *testing.T) {
	res := driver.TokenizeSource("test.calc", "(7)", 8)
	if res.Err != nil {
		t.Fatalf("tokenize failed: %v", res.Err)
	}

	var buf bytes.Buffer
	if err := diagfmt.FormatTokensJSON(&buf, res.Tokens); err != nil {
		t.Fatal(err)
	}

	var decoded []diagfmt.TokenOutput
	if err := json.Unmarshal(buf.Bytes(), &decoded); err != nil {
		t.Fatalf("output is not valid JSON: %v", err)
	}

	var kinds []string
	for _, out := range decoded {
		kinds = append(kinds, out.Kind)
	}
	want := []string{"LParen", "Number", "RParen", "EOF"}
	if diff := cmp.Diff(want, kinds); diff != "" {
		t.Errorf("kind sequence mismatch (-want +got):\n%s", diff)
	}
}

func TestFormatExprJSON(t *testing.T) {
	res := driver.ParseSource("test.calc", "2 + 3 * 4", 8)
	if res.Err != nil {
		t.Fatalf("parse failed: %v", res.Err)
	}

	var buf bytes.Buffer
	if err := diagfmt.FormatExprJSON(&buf, res.Expr); err != nil {
		t.Fatal(err)
	}

	var root diagfmt.ExprOutput
	if err := json.Unmarshal(buf.Bytes(), &root); err != nil {
		t.Fatalf("output is not valid JSON: %v", err)
	}

	if root.Node != "Binary" || root.Op != "+" {
		t.Fatalf("root = %s %q, want Binary \"+\"", root.Node, root.Op)
	}
	if root.Left == nil || root.Left.Value != "2" {
		t.Errorf("left child should be the literal 2, got %+v", root.Left)
	}
	if root.Right == nil || root.Right.Op != "*" {
		t.Errorf("right child should be the '*' subtree, got %+v", root.Right)
	}
}

func TestFormatExprPretty(t *testing.T) {
	res := driver.ParseSource("test.calc", "1 + 2", 8)
	if res.Err != nil {
		t.Fatalf("parse failed: %v", res.Err)
	}

	var buf bytes.Buffer
	if err := diagfmt.FormatExprPretty(&buf, res.Expr, res.FileSet); err != nil {
		t.Fatal(err)
	}

	got := buf.String()
	for _, want := range []string{`Binary "+"`, `├─ Literal "1"`, `└─ Literal "2"`} {
		if !strings.Contains(got, want) {
			t.Errorf("output missing %q:\n%s", want, got)
		}
	}
}

func TestPretty(t *testing.T) {
	res := driver.EvalSource("bad.calc", "1 / 0", 8)
	if res.Err == nil {
		t.Fatal("division by zero should fault")
	}
	res.Bag.Sort()

	var buf bytes.Buffer
	diagfmt.Pretty(&buf, res.Bag, res.FileSet, diagfmt.PrettyOpts{Color: false, Context: 1})

	got := buf.String()
	if !strings.HasPrefix(got, "bad.calc:1:1: ERROR EVAL3001: division by zero") {
		t.Errorf("unexpected header:\n%s", got)
	}
	// the excerpt shows the line and an underline over the faulting span
	if !strings.Contains(got, "  1 / 0\n") {
		t.Errorf("excerpt missing source line:\n%s", got)
	}
	if !strings.Contains(got, "^") {
		t.Errorf("excerpt missing caret:\n%s", got)
	}
}

func TestPrettyNotes(t *testing.T) {
	fs := source.NewFileSet()
	id := fs.AddVirtual("note.calc", []byte("1 + 2"))

	bag := diag.NewBag(4)
	bag.Add(diag.Diagnostic{
		Severity: diag.SevWarning,
		Code:     diag.SynInfo,
		Message:  "just a remark",
		Primary:  source.Span{File: id, Start: 0, End: 1},
		Notes:    []diag.Note{{Span: source.Span{File: id, Start: 4, End: 5}, Msg: "related here"}},
	})

	var buf bytes.Buffer
	diagfmt.Pretty(&buf, bag, fs, diagfmt.PrettyOpts{})

	got := buf.String()
	if !strings.Contains(got, "WARNING SYN2000") {
		t.Errorf("missing severity/code: %s", got)
	}
	if !strings.Contains(got, "note: note.calc:1:5: related here") {
		t.Errorf("missing note line: %s", got)
	}
}
