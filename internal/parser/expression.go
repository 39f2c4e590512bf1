package parser

import (
	"calc/internal/ast"
	"calc/internal/diag"
	"calc/internal/token"
)

// The grammar, lowest to highest binding:
//
//	expression := term { ('+' | '-') term }
//	term       := factor { ('*' | '/') factor }
//	factor     := '(' expression ')' | NUMBER
//
// Precedence and associativity live entirely in this call nesting; there is
// no operator table. Each level folds its operands left to right, so
// `a - b - c` parses as `(a - b) - c`.

func (p *Parser) parseExpression() (ast.Expr, error) {
	left, err := p.parseTerm()
	if err != nil {
		return nil, err
	}

	for p.at(token.Plus) || p.at(token.Minus) {
		op := p.advance()
		right, err := p.parseTerm()
		if err != nil {
			return nil, err
		}
		left = &ast.Binary{Left: left, Right: right, Op: op}
	}

	return left, nil
}

func (p *Parser) parseTerm() (ast.Expr, error) {
	left, err := p.parseFactor()
	if err != nil {
		return nil, err
	}

	for p.at(token.Star) || p.at(token.Slash) {
		op := p.advance()
		right, err := p.parseFactor()
		if err != nil {
			return nil, err
		}
		left = &ast.Binary{Left: left, Right: right, Op: op}
	}

	return left, nil
}

func (p *Parser) parseFactor() (ast.Expr, error) {
	switch {
	case p.match(token.LParen):
		expr, err := p.parseExpression()
		if err != nil {
			return nil, err
		}
		if !p.match(token.RParen) {
			return nil, p.fail(MissingRightParen, diag.SynUnclosedParen,
				"missing right parenthesis, got "+quoteToken(p.peek()))
		}
		return expr, nil

	case p.at(token.Number):
		return &ast.Literal{Value: p.advance()}, nil

	default:
		return nil, p.fail(UnexpectedToken, diag.SynExpectExpression,
			"expected number or '(', got "+quoteToken(p.peek()))
	}
}
