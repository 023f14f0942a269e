package report

import (
	"cmp"
	"math"
	"slices"
)

type Reporter interface {
	ReportDiagnostic(d *Diagnostic)
}

/* -------------------------------------------------------------------------- */

// Log collects the diagnostics of one compilation unit in discovery order and
// forwards each to an optional Reporter as it arrives.
type Log struct {
	rep   Reporter
	diags []*Diagnostic
}

func NewLog(rep Reporter) *Log {
	return &Log{rep: rep}
}

func (l *Log) Report(d *Diagnostic) {
	l.diags = append(l.diags, d)

	if l.rep != nil {
		l.rep.ReportDiagnostic(d)
	}
}

// SortByPosition orders the collected diagnostics by where they start in the
// source. Equal positions keep discovery order; diagnostics without a span
// go last.
func (l *Log) SortByPosition() {
	slices.SortStableFunc(l.diags, func(a, b *Diagnostic) int {
		al, ac := a.position()
		bl, bc := b.position()

		if al != bl {
			return cmp.Compare(al, bl)
		}

		return cmp.Compare(ac, bc)
	})
}

func (l *Log) Diagnostics() []*Diagnostic {
	return l.diags
}

func (l *Log) Count(kind DiagKind) (n int) {
	for _, d := range l.diags {
		if d.Kind == kind {
			n++
		}
	}

	return
}

func (l *Log) Has(kind DiagKind) bool {
	return l.Count(kind) > 0
}

func (l *Log) NoErrors() bool {
	return len(l.diags) == 0
}

/* -------------------------------------------------------------------------- */

// thrown wraps a diagnostic travelling up the stack on the fatal channel.
type thrown struct {
	diag *Diagnostic
}

func Throw(d *Diagnostic) {
	panic(thrown{diag: d})
}

// Catch must be deferred directly. It records a thrown diagnostic and lets
// every other panic continue.
func (l *Log) Catch() {
	if x := recover(); x != nil {
		if t, ok := x.(thrown); ok {
			l.Report(t.diag)
		} else {
			panic(x)
		}
	}
}

// Try runs f and returns the diagnostic it threw, if any, without reporting it.
func Try(f func()) (diag *Diagnostic) {
	defer func() {
		if x := recover(); x != nil {
			if t, ok := x.(thrown); ok {
				diag = t.diag
			} else {
				panic(x)
			}
		}
	}()

	f()
	return nil
}

func (d *Diagnostic) position() (line, col int) {
	if d.Info == nil || d.Info.Span == nil {
		return math.MaxInt, math.MaxInt
	}

	return d.Info.Span.StartLine, d.Info.Span.StartCol
}
