package common

type AstBlock struct {
	AstBase

	Locals []*AstVarDecl
	Stmts  []AstStmt
}

type AstVarDecl struct {
	AstBase

	Symbol *Symbol
}

/* -------------------------------------------------------------------------- */

type AstAssign struct {
	AstStmtBase

	Target AstLocation
	Value  AstExpr
}

type AstIf struct {
	AstStmtBase

	Cond AstExpr
	Then *AstBlock
}

type AstIfElse struct {
	AstStmtBase

	Cond AstExpr
	Then *AstBlock
	Else *AstBlock
}

type AstReturn struct {
	AstStmtBase

	Value AstExpr
}
