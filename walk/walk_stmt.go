package walk

import (
	"decafc/common"
	"decafc/dtypes"
	"decafc/report"
)

func (w *Walker) walkStmt(stmt common.AstStmt) {
	switch v := stmt.(type) {
	case *common.AstAssign:
		w.walkAssign(v)
	case *common.AstIf:
		w.walkExpr(v.Cond)
		w.walkBlock(v.Then)
	case *common.AstIfElse:
		w.walkExpr(v.Cond)
		w.walkBlock(v.Then)
		w.walkBlock(v.Else)
	case *common.AstReturn:
		w.walkExpr(v.Value)
	default:
		panic("unknown statement node")
	}
}

func (w *Walker) walkAssign(assign *common.AstAssign) {
	w.walkIndex(assign.Target)
	w.walkExpr(assign.Value)

	name := assign.Target.GetName()

	sym, ok := w.lookup(name)
	if !ok {
		w.error(report.DK_UNDECLARED, assign.Target.GetSpan(), "variable '%s' not declared", name)
		return
	}

	assign.Target.Bind(sym)

	// The only assignment type rule: a char literal never goes into an int.
	if _, isChar := assign.Value.(*common.AstCharLit); isChar && sym.Type == dtypes.TYP_INT {
		w.error(report.DK_TYPE_MISMATCH, assign.Value.GetSpan(), "cannot assign a char value to an integer variable '%s'", name)
	}
}
