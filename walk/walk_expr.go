package walk

import (
	"decafc/common"
)

// walkExpr binds variable references to their declarations where one is
// already visible. Reads of undeclared names are not diagnosed.
func (w *Walker) walkExpr(expr common.AstExpr) {
	switch v := expr.(type) {
	case *common.AstBinaryOp:
		w.walkExpr(v.Lhs)
		w.walkExpr(v.Rhs)
	case *common.AstUnaryOp:
		w.walkExpr(v.Operand)
	case *common.AstVar:
		w.bindIfDeclared(v)
	case *common.AstArrayVar:
		w.walkExpr(v.Index)
		w.bindIfDeclared(v)
	case *common.AstIntLit, *common.AstCharLit, *common.AstBoolLit:
	default:
		panic("unknown expression node")
	}
}

// walkIndex visits the index of an indexed assignment target.
func (w *Walker) walkIndex(loc common.AstLocation) {
	if av, ok := loc.(*common.AstArrayVar); ok {
		w.walkExpr(av.Index)
	}
}

func (w *Walker) bindIfDeclared(loc common.AstLocation) {
	if sym, ok := w.lookup(loc.GetName()); ok {
		loc.Bind(sym)
	}
}
