package walk

import (
	"decafc/common"
	"decafc/report"
	"fmt"
)

// Walker runs the semantic checks over a parsed program. Every finding is an
// advisory diagnostic: the walk always visits the whole tree.
type Walker struct {
	unit *common.Unit
	log  *report.Log

	symbols *common.SymbolTable
}

/* -------------------------------------------------------------------------- */

func NewWalker(unit *common.Unit, log *report.Log) *Walker {
	return &Walker{
		unit: unit,
		log:  log,
	}
}

// WalkProgram analyzes prog against a fresh symbol table and returns it.
func (w *Walker) WalkProgram(prog *common.AstProgram) *common.SymbolTable {
	w.symbols = common.NewSymbolTable()

	if prog.Field != nil {
		w.declare(prog.Field.Symbol)
	}

	if prog.Method != nil {
		w.walkMethodDecl(prog.Method)
	}

	return w.symbols
}

/* -------------------------------------------------------------------------- */

func (w *Walker) declare(sym *common.Symbol) {
	if _, ok := w.symbols.Declare(sym); !ok {
		w.error(report.DK_REDECLARATION, sym.Span, "variable '%s' already declared", sym.Name)
	}
}

func (w *Walker) lookup(name string) (*common.Symbol, bool) {
	return w.symbols.Lookup(name)
}

/* -------------------------------------------------------------------------- */

func (w *Walker) error(kind report.DiagKind, span *report.TextSpan, format string, a ...any) {
	w.log.Report(&report.Diagnostic{
		Kind:    kind,
		Message: fmt.Sprintf(format, a...),
		Info: &report.SourceInfo{
			UnitName:    w.unit.Name,
			DisplayPath: w.unit.DisplayPath,
			Span:        span,
		},
	})
}
