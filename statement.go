package lox

import (
	"fmt"
	"strings"
)

type Stmt interface {
	isStmt()
	fmt.Stringer
}

type VarDecl struct {
	name Token
	expr Expr // nil when there is no initializer
}

func (*VarDecl) isStmt() {}
func (d VarDecl) String() string {
	if d.expr == nil {
		return "(var " + d.name.lexeme + ")"
	}
	return "(var " + d.name.lexeme + " " + d.expr.String() + ")"
}

type ExprStmt struct {
	expr Expr
}

func (*ExprStmt) isStmt() {}
func (e ExprStmt) String() string {
	return "(; " + e.expr.String() + ")"
}

type PrintStmt struct {
	expr Expr
}

func (*PrintStmt) isStmt() {}
func (p PrintStmt) String() string {
	return "(print " + p.expr.String() + ")"
}

type Block struct {
	stmts []Stmt
}

func (*Block) isStmt() {}
func (b Block) String() string {
	var sb strings.Builder

	sb.WriteString("(block")
	for _, stmt := range b.stmts {
		sb.WriteByte(' ')
		sb.WriteString(stmt.String())
	}
	sb.WriteByte(')')

	return sb.String()
}
