package util

import (
	"decafc/common"
	"fmt"
)

// Tree is a generic rendering of an AST node used for JSON and YAML output.
type Tree map[string]any

func ToTree(node common.AstNode) Tree {
	switch v := node.(type) {
	case *common.AstProgram:
		t := Tree{"kind": "program", "name": v.Name, "method": ToTree(v.Method)}
		if v.Field != nil {
			t["field"] = ToTree(v.Field)
		}
		return withLine(t, node)
	case *common.AstFieldDecl:
		return withLine(symbolTree("field", v.Symbol), node)
	case *common.AstMethodDecl:
		params := []Tree{}
		for _, param := range v.Params {
			params = append(params, ToTree(param))
		}
		return withLine(Tree{
			"kind":        "method",
			"name":        v.Name,
			"return_type": v.ReturnType.String(),
			"params":      params,
			"body":        ToTree(v.Body),
		}, node)
	case *common.AstParam:
		return withLine(symbolTree("param", v.Symbol), node)
	case *common.AstBlock:
		locals := []Tree{}
		for _, local := range v.Locals {
			locals = append(locals, ToTree(local))
		}
		stmts := []Tree{}
		for _, stmt := range v.Stmts {
			stmts = append(stmts, ToTree(stmt))
		}
		return withLine(Tree{"kind": "block", "locals": locals, "statements": stmts}, node)
	case *common.AstVarDecl:
		return withLine(symbolTree("var_decl", v.Symbol), node)
	case *common.AstAssign:
		return withLine(Tree{"kind": "assign", "target": ToTree(v.Target), "value": ToTree(v.Value)}, node)
	case *common.AstIf:
		return withLine(Tree{"kind": "if", "cond": ToTree(v.Cond), "then": ToTree(v.Then)}, node)
	case *common.AstIfElse:
		return withLine(Tree{
			"kind": "if_else",
			"cond": ToTree(v.Cond),
			"then": ToTree(v.Then),
			"else": ToTree(v.Else),
		}, node)
	case *common.AstReturn:
		return withLine(Tree{"kind": "return", "value": ToTree(v.Value)}, node)
	case *common.AstBinaryOp:
		return withLine(Tree{
			"kind": "binop",
			"op":   v.OpKind.String(),
			"lhs":  ToTree(v.Lhs),
			"rhs":  ToTree(v.Rhs),
		}, node)
	case *common.AstUnaryOp:
		return withLine(Tree{"kind": "unop", "op": v.OpKind.String(), "operand": ToTree(v.Operand)}, node)
	case *common.AstVar:
		return withLine(Tree{"kind": "var", "name": v.Name}, node)
	case *common.AstArrayVar:
		return withLine(Tree{"kind": "array_var", "name": v.Name, "index": ToTree(v.Index)}, node)
	case *common.AstIntLit:
		return withLine(Tree{"kind": "int", "value": v.Value}, node)
	case *common.AstCharLit:
		return withLine(Tree{"kind": "char", "value": string(v.Value)}, node)
	case *common.AstBoolLit:
		return withLine(Tree{"kind": "bool", "value": v.Value}, node)
	default:
		panic(fmt.Sprintf("unknown AST node: %T", node))
	}
}

func symbolTree(kind string, sym *common.Symbol) Tree {
	return Tree{"kind": kind, "type": sym.Type.String(), "name": sym.Name}
}

func withLine(t Tree, node common.AstNode) Tree {
	if span := node.GetSpan(); span != nil {
		t["line"] = span.StartLine
	}

	return t
}
