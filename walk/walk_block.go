package walk

import "decafc/common"

// Blocks open no scope: their locals land in the unit-wide table.
func (w *Walker) walkBlock(block *common.AstBlock) {
	for _, local := range block.Locals {
		w.declare(local.Symbol)
	}

	for _, stmt := range block.Stmts {
		w.walkStmt(stmt)
	}
}
