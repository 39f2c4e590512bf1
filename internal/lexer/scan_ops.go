package lexer

import (
	"fmt"

	"calc/internal/token"
)

// scanOperatorOrParen emits a single-character operator or parenthesis
// token. Any byte outside the alphabet is a fatal lexical fault: an Invalid
// token is returned and the fault reported.
func (lx *Lexer) scanOperatorOrParen() token.Token {
	start := lx.cursor.Mark()
	b := lx.cursor.Bump()

	emit := func(k token.Kind) token.Token {
		sp := lx.cursor.SpanFrom(start)
		return token.Token{
			Kind: k,
			Span: sp,
			Text: string(lx.file.Content[sp.Start:sp.End]),
		}
	}

	switch b {
	case '+':
		return emit(token.Plus)
	case '-':
		return emit(token.Minus)
	case '*':
		return emit(token.Star)
	case '/':
		return emit(token.Slash)
	case '(':
		return emit(token.LParen)
	case ')':
		return emit(token.RParen)
	default:
		sp := lx.cursor.SpanFrom(start)
		lx.report("InvalidChar", sp, fmt.Sprintf("invalid character %q", b))
		return token.Token{Kind: token.Invalid, Span: sp, Text: string(b)}
	}
}
