package ast

import (
	"calc/internal/source"
	"calc/internal/token"
)

// Expr is the closed set of expression tree nodes: Literal and Binary.
// A parsed tree is strict (every node owned by exactly one parent) and
// read-only after the parse; evaluating it any number of times yields the
// same value.
type Expr interface {
	Span() source.Span
	exprNode()
}

// Literal holds a single Number token and represents one integer constant.
type Literal struct {
	Value token.Token
}

func (l *Literal) Span() source.Span { return l.Value.Span }
func (*Literal) exprNode()           {}

// Binary applies Op to the values of its two subtrees. Op is always one of
// Plus, Minus, Star or Slash; no other kind appears here.
type Binary struct {
	Left  Expr
	Right Expr
	Op    token.Token
}

func (b *Binary) Span() source.Span {
	return b.Left.Span().Cover(b.Right.Span())
}
func (*Binary) exprNode() {}
