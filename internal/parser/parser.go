package parser

import (
	"calc/internal/ast"
	"calc/internal/diag"
	"calc/internal/source"
	"calc/internal/token"
)

type Options struct {
	Reporter diag.Reporter
}

// Parser holds the cursor state for one token sequence: the slice produced
// by the lexer plus an index into it. Stepping past the last element yields
// a synthetic EOF, mirroring the lexer's sentinel, so no production ever
// bounds-checks the input.
type Parser struct {
	tokens   []token.Token
	pos      int
	opts     Options
	lastSpan source.Span // span of the last consumed token, for diagnostics
}

// ParseExpression consumes the whole token sequence and returns the root of
// the expression tree. Every significant token must be part of the parsed
// expression: a leftover token before EOF is a fault. The first fault stops
// the parse and is returned as *SyntaxError.
func ParseExpression(tokens []token.Token, opts Options) (ast.Expr, error) {
	p := Parser{
		tokens: tokens,
		pos:    0,
		opts:   opts,
	}

	expr, err := p.parseExpression()
	if err != nil {
		return nil, err
	}

	// a completed top-level expression must be followed by EOF
	if !p.at(token.EOF) {
		return nil, p.fail(UnexpectedToken, diag.SynTrailingToken,
			"trailing token after expression: "+quoteToken(p.peek()))
	}
	p.advance() // consume EOF; the sequence is fully traversed

	return expr, nil
}

// peek returns the lookahead token without consuming it.
func (p *Parser) peek() token.Token {
	if p.pos < len(p.tokens) {
		return p.tokens[p.pos]
	}
	// past the end: synthesize the sentinel at the last known position
	return token.Token{Kind: token.EOF, Span: source.Span{
		File:  p.lastSpan.File,
		Start: p.lastSpan.End,
		End:   p.lastSpan.End,
	}}
}

func (p *Parser) at(k token.Kind) bool {
	return p.peek().Kind == k
}

// advance consumes the lookahead token and updates lastSpan.
func (p *Parser) advance() token.Token {
	tok := p.peek()
	if p.pos < len(p.tokens) {
		p.pos++
	}
	if tok.Kind != token.EOF {
		p.lastSpan = tok.Span
	}
	return tok
}

// match consumes the lookahead only if it has the given kind.
func (p *Parser) match(k token.Kind) bool {
	if p.at(k) {
		p.advance()
		return true
	}
	return false
}

// fail reports the fault at the lookahead token and returns it as an error.
func (p *Parser) fail(kind SyntaxErrorKind, code diag.Code, msg string) error {
	tok := p.peek()
	if p.opts.Reporter != nil {
		p.opts.Reporter.Report(code, diag.SevError, p.diagnosticSpan(), msg, nil)
	}
	return &SyntaxError{Kind: kind, Token: tok}
}

// diagnosticSpan picks the best span for a fault: the lookahead's span, or
// the position right after the last consumed token when the lookahead is a
// zero-width EOF.
func (p *Parser) diagnosticSpan() source.Span {
	peek := p.peek()
	if peek.Kind == token.EOF && peek.Span.Empty() && p.lastSpan.End > 0 {
		return source.Span{
			File:  p.lastSpan.File,
			Start: p.lastSpan.End,
			End:   p.lastSpan.End,
		}
	}
	return peek.Span
}

func quoteToken(tok token.Token) string {
	if tok.Kind == token.EOF {
		return "end of input"
	}
	return "\"" + tok.Text + "\""
}
