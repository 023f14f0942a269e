package util

import (
	"decafc/common"
	"fmt"
	"io"
	"strconv"
)

// DumpAST writes the tree as nested tuples, one per node:
//
//	(program A nil (method void m () (block () ())))
func DumpAST(w io.Writer, node common.AstNode) {
	switch v := node.(type) {
	case *common.AstProgram:
		fmt.Fprintf(w, "(program %s ", v.Name)
		if v.Field != nil {
			DumpAST(w, v.Field)
		} else {
			fmt.Fprint(w, "nil")
		}
		fmt.Fprint(w, " ")
		DumpAST(w, v.Method)
		fmt.Fprint(w, ")")
	case *common.AstFieldDecl:
		fmt.Fprintf(w, "(field %s %s)", v.Symbol.Type, v.Symbol.Name)
	case *common.AstMethodDecl:
		fmt.Fprintf(w, "(method %s %s (", v.ReturnType, v.Name)
		for i, param := range v.Params {
			if i > 0 {
				fmt.Fprint(w, " ")
			}
			DumpAST(w, param)
		}
		fmt.Fprint(w, ") ")
		DumpAST(w, v.Body)
		fmt.Fprint(w, ")")
	case *common.AstParam:
		fmt.Fprintf(w, "(param %s %s)", v.Symbol.Type, v.Symbol.Name)
	case *common.AstBlock:
		fmt.Fprint(w, "(block (")
		for i, local := range v.Locals {
			if i > 0 {
				fmt.Fprint(w, " ")
			}
			DumpAST(w, local)
		}
		fmt.Fprint(w, ") (")
		for i, stmt := range v.Stmts {
			if i > 0 {
				fmt.Fprint(w, " ")
			}
			DumpAST(w, stmt)
		}
		fmt.Fprint(w, "))")
	case *common.AstVarDecl:
		fmt.Fprintf(w, "(var_decl %s %s)", v.Symbol.Type, v.Symbol.Name)
	case *common.AstAssign:
		dumpTuple(w, "assign", v.Target, v.Value)
	case *common.AstIf:
		dumpTuple(w, "if", v.Cond, v.Then)
	case *common.AstIfElse:
		dumpTuple(w, "if_else", v.Cond, v.Then, v.Else)
	case *common.AstReturn:
		dumpTuple(w, "return", v.Value)
	case *common.AstBinaryOp:
		fmt.Fprintf(w, "(binop %s ", v.OpKind)
		DumpAST(w, v.Lhs)
		fmt.Fprint(w, " ")
		DumpAST(w, v.Rhs)
		fmt.Fprint(w, ")")
	case *common.AstUnaryOp:
		fmt.Fprintf(w, "(unop %s ", v.OpKind)
		DumpAST(w, v.Operand)
		fmt.Fprint(w, ")")
	case *common.AstVar:
		fmt.Fprintf(w, "(var %s)", v.Name)
	case *common.AstArrayVar:
		fmt.Fprintf(w, "(array_var %s ", v.Name)
		DumpAST(w, v.Index)
		fmt.Fprint(w, ")")
	case *common.AstIntLit:
		fmt.Fprint(w, v.Value)
	case *common.AstCharLit:
		fmt.Fprint(w, strconv.QuoteRune(v.Value))
	case *common.AstBoolLit:
		fmt.Fprint(w, v.Value)
	default:
		panic(fmt.Sprintf("unknown AST node: %T", node))
	}
}

func dumpTuple(w io.Writer, tag string, children ...common.AstNode) {
	fmt.Fprintf(w, "(%s", tag)
	for _, child := range children {
		fmt.Fprint(w, " ")
		DumpAST(w, child)
	}
	fmt.Fprint(w, ")")
}
