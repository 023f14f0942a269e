package cmd

import (
	"decafc/common"
	"decafc/config"
	"decafc/report"
	"decafc/syntax"
	"decafc/walk"
	"io"
	"log/slog"
)

type Compiler struct {
	cfg    *config.Config
	rep    report.Reporter
	logger *slog.Logger
}

// NewCompiler accepts nil for any argument: nil cfg means defaults, nil rep
// only collects diagnostics, nil logger discards log records.
func NewCompiler(cfg *config.Config, rep report.Reporter, logger *slog.Logger) *Compiler {
	if cfg == nil {
		cfg = config.Default()
	}

	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}

	return &Compiler{cfg: cfg, rep: rep, logger: logger}
}

// Result is the outcome of compiling one unit. Program is nil whenever a
// syntax error was reported; Symbols is set whenever analysis ran, which
// includes an aborted parse that got past the class name. Diagnostics are in
// source order.
type Result struct {
	Unit        *common.Unit
	Program     *common.AstProgram
	Symbols     *common.SymbolTable
	Diagnostics []*report.Diagnostic
}

func (r *Result) OK() bool {
	return len(r.Diagnostics) == 0
}

func (r *Result) Count(kind report.DiagKind) (n int) {
	for _, d := range r.Diagnostics {
		if d.Kind == kind {
			n++
		}
	}

	return
}

/* -------------------------------------------------------------------------- */

func (c *Compiler) CompileFile(srcPath string) (*Result, error) {
	unit, err := common.LoadUnit(srcPath)
	if err != nil {
		return nil, err
	}

	return c.compileUnit(unit), nil
}

func (c *Compiler) CompileSource(displayPath, src string) *Result {
	return c.compileUnit(common.NewUnit(displayPath, src))
}

// Tokens scans src on its own, for token dumps.
func (c *Compiler) Tokens(displayPath, src string) ([]*syntax.Token, []*report.Diagnostic) {
	unit := common.NewUnit(displayPath, src)
	log := report.NewLog(c.rep)

	toks := syntax.Tokenize(unit, log)

	c.unitLogger(unit).Debug("scanned", "phase", "scan", "tokens", len(toks), "diagnostics", len(log.Diagnostics()))
	return toks, log.Diagnostics()
}

// compileUnit parses then analyzes. The two passes find diagnostics in
// different orders, so they are collected first and handed to the reporter
// in source order, the order in which a single reducing pass meets them.
func (c *Compiler) compileUnit(unit *common.Unit) *Result {
	logger := c.unitLogger(unit)
	log := report.NewLog(nil)

	p := syntax.NewParser(unit, syntax.NewLexer(unit, log), log)
	prog, aborted := p.ParsePartial()

	logger.Debug("parsed", "phase", "syntax", "class", unit.Name, "aborted", aborted)

	// Even an aborted parse leaves the declarations and statements finished
	// before the error; they are checked, but no program is handed out.
	if prog != nil {
		w := walk.NewWalker(unit, log)
		unit.Symbols = w.WalkProgram(prog)

		logger.Debug("analyzed", "phase", "semantic", "symbols", unit.Symbols.Len(), "partial", aborted)

		if !aborted && !log.Has(report.DK_SYNTAX) {
			unit.Program = prog
		}
	}

	log.SortByPosition()

	semantic := 0
	for _, d := range log.Diagnostics() {
		if d.Kind.IsSemantic() {
			semantic++
		}

		if c.rep != nil {
			c.rep.ReportDiagnostic(d)
		}
	}

	if !log.NoErrors() {
		logger.Info("compilation reported diagnostics",
			"count", len(log.Diagnostics()),
			"semantic", semantic,
			"syntax", len(log.Diagnostics())-semantic,
		)
	}

	return &Result{
		Unit:        unit,
		Program:     unit.Program,
		Symbols:     unit.Symbols,
		Diagnostics: log.Diagnostics(),
	}
}

func (c *Compiler) unitLogger(unit *common.Unit) *slog.Logger {
	return c.logger.With("unit", unit.ID.String(), "path", unit.DisplayPath)
}
