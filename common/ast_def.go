package common

import (
	"decafc/dtypes"
)

// AstProgram is the root of a compilation unit. The grammar admits a single
// optional field and exactly one method per class.
type AstProgram struct {
	AstBase

	Name   string
	Field  *AstFieldDecl
	Method *AstMethodDecl
}

type AstFieldDecl struct {
	AstBase

	Symbol *Symbol
}

type AstMethodDecl struct {
	AstBase

	Name       string
	ReturnType dtypes.Type
	Params     []*AstParam
	Body       *AstBlock
}

type AstParam struct {
	AstBase

	Symbol *Symbol
}
