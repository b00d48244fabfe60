package lox

import (
	"fmt"
	"strings"
)

// Expr is the closed set of expression nodes. Consumers dispatch with a
// type switch over the concrete pointer types below.
type Expr interface {
	isExpr()
	fmt.Stringer
}

func parenthesize(name string, exprs ...Expr) string {
	var sb strings.Builder
	sb.WriteByte('(')
	sb.WriteString(name)
	for _, expr := range exprs {
		sb.WriteByte(' ')
		sb.WriteString(expr.String())
	}
	sb.WriteByte(')')

	return sb.String()
}

type Assign struct {
	name  Token
	value Expr
}

func (*Assign) isExpr() {}
func (a Assign) String() string {
	return parenthesize("assign "+a.name.lexeme, a.value)
}

type Binary struct {
	lhs Expr
	op  Token
	rhs Expr
}

func (*Binary) isExpr() {}
func (b Binary) String() string {
	return parenthesize(b.op.lexeme, b.lhs, b.rhs)
}

type Ternary struct {
	token       Token
	condition   Expr
	trueBranch  Expr
	falseBranch Expr
}

func (*Ternary) isExpr() {}
func (t Ternary) String() string {
	return parenthesize("?:", t.condition, t.trueBranch, t.falseBranch)
}

type Grouping struct {
	expression Expr
}

func (*Grouping) isExpr() {}
func (g Grouping) String() string {
	return parenthesize("group", g.expression)
}

type Literal struct {
	value any // float64, string, bool, or nil
}

func (*Literal) isExpr() {}
func (l Literal) String() string {
	switch v := l.value.(type) {
	case string:
		return v
	case float64, bool, nil:
		return Stringify(v)
	default:
		msg := fmt.Sprintf("Incompatible type: %T", v)
		panic(msg)
	}
}

type Unary struct {
	op  Token
	rhs Expr
}

func (*Unary) isExpr() {}
func (u Unary) String() string {
	return parenthesize(u.op.lexeme, u.rhs)
}

type Variable struct {
	name Token
}

func (*Variable) isExpr() {}
func (v Variable) String() string {
	return v.name.lexeme
}
