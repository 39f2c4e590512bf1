package lexer_test

import (
	"errors"
	"fmt"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"

	"calc/internal/lexer"
	"calc/internal/source"
	"calc/internal/token"
)

// testReporter collects every fault reported by the lexer.
type testReporter struct {
	kinds []string
	spans []source.Span
	msgs  []string
}

func (r *testReporter) Report(kind string, span source.Span, msg string) {
	r.kinds = append(r.kinds, kind)
	r.spans = append(r.spans, span)
	r.msgs = append(r.msgs, msg)
}

// makeTestFile builds a virtual file for a test expression.
func makeTestFile(input string) (*source.FileSet, *source.File) {
	fs := source.NewFileSet()
	fileID := fs.AddVirtual("test.calc", []byte(input))
	return fs, fs.Get(fileID)
}

// tokenizeAll runs the batch scan and fails the test on a lexical fault.
func tokenizeAll(t *testing.T, input string) []token.Token {
	t.Helper()
	_, file := makeTestFile(input)
	tokens, err := lexer.Tokenize(file, lexer.Options{})
	if err != nil {
		t.Fatalf("Tokenize(%q) failed: %v", input, err)
	}
	return tokens
}

// expectTokens checks the significant token kinds for an input.
func expectTokens(t *testing.T, input string, expected []token.Kind) {
	t.Helper()
	tokens := tokenizeAll(t, input)

	// drop the trailing EOF from the comparison
	if len(tokens) > 0 && tokens[len(tokens)-1].Kind == token.EOF {
		tokens = tokens[:len(tokens)-1]
	}

	if len(tokens) != len(expected) {
		t.Fatalf("Expected %d tokens, got %d\nInput: %q\nTokens: %v",
			len(expected), len(tokens), input, tokensToString(tokens))
	}

	for i, tok := range tokens {
		if tok.Kind != expected[i] {
			t.Errorf("Token %d: expected %v, got %v (text: %q)",
				i, expected[i], tok.Kind, tok.Text)
		}
	}
}

func tokensToString(tokens []token.Token) string {
	parts := make([]string, len(tokens))
	for i, tok := range tokens {
		parts[i] = fmt.Sprintf("%v(%q)", tok.Kind, tok.Text)
	}
	return "[" + strings.Join(parts, ", ") + "]"
}

func TestNumbers(t *testing.T) {
	tests := []struct {
		input string
		text  string
	}{
		{"0", "0"},
		{"7", "7"},
		{"42", "42"},
		{"1234567890", "1234567890"},
		{"007", "007"}, // leading zeros preserved verbatim
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			tokens := tokenizeAll(t, tt.input)
			if len(tokens) != 2 {
				t.Fatalf("expected Number+EOF, got %v", tokensToString(tokens))
			}
			if tokens[0].Kind != token.Number || tokens[0].Text != tt.text {
				t.Errorf("expected Number %q, got %v %q", tt.text, tokens[0].Kind, tokens[0].Text)
			}
		})
	}
}

func TestMaximalDigitRun(t *testing.T) {
	// adjacent digits always form one token, never two
	tokens := tokenizeAll(t, "123456")
	if len(tokens) != 2 || tokens[0].Text != "123456" {
		t.Fatalf("expected one Number token, got %v", tokensToString(tokens))
	}
}

func TestOperatorsAndParens(t *testing.T) {
	tests := []struct {
		input string
		kind  token.Kind
	}{
		{"+", token.Plus},
		{"-", token.Minus},
		{"*", token.Star},
		{"/", token.Slash},
		{"(", token.LParen},
		{")", token.RParen},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			tokens := tokenizeAll(t, tt.input)
			if len(tokens) != 2 {
				t.Fatalf("expected one token + EOF, got %v", tokensToString(tokens))
			}
			if tokens[0].Kind != tt.kind || tokens[0].Text != tt.input {
				t.Errorf("expected %v %q, got %v %q", tt.kind, tt.input, tokens[0].Kind, tokens[0].Text)
			}
		})
	}
}

func TestTokenOrderMatchesSource(t *testing.T) {
	expectTokens(t, "(3 + 5) * (2 - 1)", []token.Kind{
		token.LParen, token.Number, token.Plus, token.Number, token.RParen,
		token.Star,
		token.LParen, token.Number, token.Minus, token.Number, token.RParen,
	})
}

func TestEOFSentinel(t *testing.T) {
	tests := []string{"", "   ", "1", "1 + 2"}
	for _, input := range tests {
		t.Run(fmt.Sprintf("%q", input), func(t *testing.T) {
			tokens := tokenizeAll(t, input)
			if len(tokens) == 0 {
				t.Fatal("token sequence must never be empty")
			}
			last := tokens[len(tokens)-1]
			if last.Kind != token.EOF || last.Text != "" {
				t.Fatalf("last token must be EOF with no payload, got %v %q", last.Kind, last.Text)
			}
			for _, tok := range tokens[:len(tokens)-1] {
				if tok.Kind == token.EOF {
					t.Fatal("EOF must appear exactly once, as the final element")
				}
			}
		})
	}
}

func TestWhitespaceInsignificant(t *testing.T) {
	// token sequences must be identical apart from spans
	stripSpans := func(tokens []token.Token) []token.Token {
		out := make([]token.Token, len(tokens))
		for i, tok := range tokens {
			tok.Span = source.Span{}
			out[i] = tok
		}
		return out
	}

	compact := stripSpans(tokenizeAll(t, "1+1"))
	spaced := stripSpans(tokenizeAll(t, "1 + 1"))
	tabbed := stripSpans(tokenizeAll(t, "\t1\n+\n1\n"))

	if diff := cmp.Diff(compact, spaced); diff != "" {
		t.Errorf("token mismatch between \"1+1\" and \"1 + 1\" (-want +got):\n%s", diff)
	}
	if diff := cmp.Diff(compact, tabbed); diff != "" {
		t.Errorf("token mismatch between \"1+1\" and tabbed variant (-want +got):\n%s", diff)
	}
}

func TestInvalidCharacter(t *testing.T) {
	tests := []struct {
		input  string
		char   byte
		offset uint32
	}{
		{"3 & 4", '&', 2},
		{"x", 'x', 0},
		{"1 + 2;", ';', 5},
		{"12.5", '.', 2}, // no floating point: the dot itself is the fault
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			_, file := makeTestFile(tt.input)
			reporter := &testReporter{}
			tokens, err := lexer.Tokenize(file, lexer.Options{Reporter: reporter})
			if err == nil {
				t.Fatalf("Tokenize(%q) should fail", tt.input)
			}
			if tokens != nil {
				t.Errorf("no partial tokens expected on fault, got %v", tokensToString(tokens))
			}

			var charErr *lexer.InvalidCharError
			if !errors.As(err, &charErr) {
				t.Fatalf("expected *InvalidCharError, got %T", err)
			}
			if charErr.Char != tt.char {
				t.Errorf("expected offending char %q, got %q", tt.char, charErr.Char)
			}
			if charErr.Span.Start != tt.offset {
				t.Errorf("expected offset %d, got %d", tt.offset, charErr.Span.Start)
			}

			if len(reporter.kinds) != 1 || reporter.kinds[0] != "InvalidChar" {
				t.Errorf("expected one InvalidChar report, got %v", reporter.kinds)
			}
		})
	}
}

func TestSpansCoverLexemes(t *testing.T) {
	_, file := makeTestFile("10 + 234")
	tokens, err := lexer.Tokenize(file, lexer.Options{})
	if err != nil {
		t.Fatal(err)
	}
	for _, tok := range tokens {
		if tok.Kind == token.EOF {
			continue
		}
		got := string(file.Content[tok.Span.Start:tok.Span.End])
		if got != tok.Text {
			t.Errorf("span/text mismatch for %v: span covers %q, text is %q", tok.Kind, got, tok.Text)
		}
	}
}
