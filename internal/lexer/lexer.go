package lexer

import (
	"calc/internal/source"
	"calc/internal/token"
)

// Lexer turns a file's bytes into expression tokens in a single forward pass.
type Lexer struct {
	file   *source.File
	cursor Cursor
	opts   Options
}

func New(file *source.File, opts Options) *Lexer {
	return &Lexer{
		file:   file,
		cursor: NewCursor(file),
		opts:   opts,
	}
}

// Tokenize runs the lexer to completion and returns the token sequence in
// source order, terminated by exactly one EOF token. Scanning stops at the
// first byte outside the alphabet and returns *InvalidCharError; no partial
// token slice is returned.
func Tokenize(file *source.File, opts Options) ([]token.Token, error) {
	lx := New(file, opts)
	var tokens []token.Token
	for {
		tok := lx.Next()
		if tok.Kind == token.Invalid {
			return nil, &InvalidCharError{Char: tok.Text[0], Span: tok.Span}
		}
		tokens = append(tokens, tok)
		if tok.Kind == token.EOF {
			return tokens, nil
		}
	}
}

// Next returns the next significant token. Whitespace is skipped, never
// emitted. After the last input byte Next always returns EOF.
func (lx *Lexer) Next() token.Token {
	lx.skipWhitespace()

	if lx.cursor.EOF() {
		return token.Token{
			Kind: token.EOF,
			Span: lx.EmptySpan(),
			Text: "",
		}
	}

	if isDec(lx.cursor.Peek()) {
		return lx.scanNumber()
	}
	return lx.scanOperatorOrParen()
}

func (lx *Lexer) skipWhitespace() {
	for {
		switch lx.cursor.Peek() {
		case ' ', '\t', '\n', '\r':
			lx.cursor.Bump()
		default:
			return
		}
	}
}

// EmptySpan is a zero-length span at the current offset.
func (lx *Lexer) EmptySpan() source.Span {
	return source.Span{File: lx.file.ID, Start: lx.cursor.Off, End: lx.cursor.Off}
}

func isDec(b byte) bool { return b >= '0' && b <= '9' }
