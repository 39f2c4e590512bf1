package lexer

import (
	"calc/internal/token"
)

// scanNumber consumes a maximal run of ASCII digits and emits one Number
// token whose text is the exact digit run. Leading zeros are preserved
// verbatim; numeric interpretation happens in the evaluator, not here.
func (lx *Lexer) scanNumber() token.Token {
	start := lx.cursor.Mark()

	for isDec(lx.cursor.Peek()) {
		lx.cursor.Bump()
	}

	sp := lx.cursor.SpanFrom(start)
	return token.Token{Kind: token.Number, Span: sp, Text: string(lx.file.Content[sp.Start:sp.End])}
}
