package common

import "fmt"

type AstOpKind uint8

const (
	AOP_ADD AstOpKind = iota
	AOP_SUB
	AOP_MUL
	AOP_DIV

	AOP_AND
	AOP_OR

	AOP_NOT
)

var opKindToString = [...]string{
	AOP_ADD: "+",
	AOP_SUB: "-",
	AOP_MUL: "*",
	AOP_DIV: "/",
	AOP_AND: "&&",
	AOP_OR:  "||",
	AOP_NOT: "!",
}

func (op AstOpKind) String() string {
	if int(op) < len(opKindToString) {
		return opKindToString[op]
	}

	return fmt.Sprintf("AstOpKind(%d)", op)
}

/* -------------------------------------------------------------------------- */

type AstBinaryOp struct {
	AstExprBase

	OpKind   AstOpKind
	Lhs, Rhs AstExpr
}

type AstUnaryOp struct {
	AstExprBase

	OpKind  AstOpKind
	Operand AstExpr
}

/* -------------------------------------------------------------------------- */

type AstVar struct {
	AstExprBase

	Name   string
	Symbol *Symbol
}

func (v *AstVar) GetName() string {
	return v.Name
}

func (v *AstVar) Bind(sym *Symbol) {
	v.Symbol = sym
}

type AstArrayVar struct {
	AstExprBase

	Name   string
	Index  AstExpr
	Symbol *Symbol
}

func (av *AstArrayVar) GetName() string {
	return av.Name
}

func (av *AstArrayVar) Bind(sym *Symbol) {
	av.Symbol = sym
}

/* -------------------------------------------------------------------------- */

type AstIntLit struct {
	AstExprBase

	Value int64
}

type AstCharLit struct {
	AstExprBase

	Value rune
}

type AstBoolLit struct {
	AstExprBase

	Value bool
}
