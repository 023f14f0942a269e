package common

import (
	"decafc/report"
)

type AstNode interface {
	GetSpan() *report.TextSpan
}

type AstBase struct {
	Span *report.TextSpan
}

func (ab *AstBase) GetSpan() *report.TextSpan {
	return ab.Span
}

/* -------------------------------------------------------------------------- */

// AstStmt is closed: only the statement nodes of this package implement it.
type AstStmt interface {
	AstNode

	stmtNode()
}

type AstStmtBase struct {
	Span *report.TextSpan
}

func (as *AstStmtBase) GetSpan() *report.TextSpan {
	return as.Span
}

func (*AstStmtBase) stmtNode() {}

/* -------------------------------------------------------------------------- */

// AstExpr is closed: only the expression nodes of this package implement it.
type AstExpr interface {
	AstNode

	exprNode()
}

type AstExprBase struct {
	Span *report.TextSpan
}

func (ae *AstExprBase) GetSpan() *report.TextSpan {
	return ae.Span
}

func (*AstExprBase) exprNode() {}

// AstLocation is an assignable expression: a plain or indexed variable.
type AstLocation interface {
	AstExpr

	GetName() string
	Bind(sym *Symbol)
}
