package report

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func syntaxDiag(line int, msg string) *Diagnostic {
	return &Diagnostic{
		Kind:    DK_SYNTAX,
		Message: msg,
		Info: &SourceInfo{
			UnitName:    "A",
			DisplayPath: "a.decaf",
			Span:        &TextSpan{StartLine: line, EndLine: line},
		},
	}
}

type recorder struct {
	diags []*Diagnostic
}

func (r *recorder) ReportDiagnostic(d *Diagnostic) {
	r.diags = append(r.diags, d)
}

/* -------------------------------------------------------------------------- */

func TestLog_ForwardsInOrder(t *testing.T) {
	rec := &recorder{}
	log := NewLog(rec)

	log.Report(syntaxDiag(1, "first"))
	log.Report(&Diagnostic{Kind: DK_UNDECLARED, Message: "second"})

	assert.Equal(t, log.Diagnostics(), rec.diags)
	assert.Equal(t, 1, log.Count(DK_SYNTAX))
	assert.True(t, log.Has(DK_UNDECLARED))
	assert.False(t, log.Has(DK_TYPE_MISMATCH))
	assert.False(t, log.NoErrors())
}

func TestLog_CatchRecordsThrown(t *testing.T) {
	log := NewLog(nil)

	func() {
		defer log.Catch()
		Throw(syntaxDiag(3, "boom"))
	}()

	require.Len(t, log.Diagnostics(), 1)
	assert.Equal(t, "boom", log.Diagnostics()[0].Message)
}

func TestLog_CatchRepanicsForeignValues(t *testing.T) {
	log := NewLog(nil)

	assert.PanicsWithValue(t, "not a diagnostic", func() {
		defer log.Catch()
		panic("not a diagnostic")
	})
	assert.True(t, log.NoErrors())
}

func TestTry(t *testing.T) {
	d := syntaxDiag(2, "caught")

	assert.Same(t, d, Try(func() { Throw(d) }))
	assert.Nil(t, Try(func() {}))
	assert.Panics(t, func() { Try(func() { panic(42) }) })
}

func TestDiagnosticDump(t *testing.T) {
	d := syntaxDiag(7, "syntax error at ';'")
	assert.Equal(t, "[A] a.decaf:7: SyntaxError: syntax error at ';'", d.Error())
	assert.Equal(t, 7, d.Line())

	d.Info.UnitName = ""
	assert.Equal(t, "a.decaf:7: SyntaxError: syntax error at ';'", d.Error())

	bare := &Diagnostic{Kind: DK_REDECLARATION, Message: "variable 'x' already declared"}
	assert.Equal(t, "Redeclaration: variable 'x' already declared", bare.Error())
	assert.Zero(t, bare.Line())
}

func TestDiagKind(t *testing.T) {
	assert.Equal(t, "UndeclaredVariable", DK_UNDECLARED.String())
	assert.Equal(t, "UnrecognizedCharacter", DK_UNRECOGNIZED_CHAR.String())
	assert.True(t, DK_TYPE_MISMATCH.IsSemantic())
	assert.False(t, DK_SYNTAX.IsSemantic())
}

func TestSpanOver(t *testing.T) {
	a := &TextSpan{StartLine: 1, StartCol: 2, EndLine: 1, EndCol: 4}
	b := &TextSpan{StartLine: 3, StartCol: 0, EndLine: 3, EndCol: 5}

	assert.Equal(t, &TextSpan{StartLine: 1, StartCol: 2, EndLine: 3, EndCol: 5}, SpanOver(a, b))
	assert.Same(t, a, SpanOver(a, nil))
	assert.Same(t, b, SpanOver(nil, b))
}

func TestDisplayReporter(t *testing.T) {
	warn := &Diagnostic{Kind: DK_UNRECOGNIZED_CHAR, Message: "illegal character '@'"}
	fail := syntaxDiag(1, "syntax error at 'x'")

	tests := []struct {
		name  string
		level LogLevel
		want  string
	}{
		{
			name:  "all",
			level: LOG_LEVEL_ALL,
			want:  "warning: UnrecognizedCharacter: illegal character '@'\nerror: [A] a.decaf:1: SyntaxError: syntax error at 'x'\n",
		},
		{
			name:  "errors only",
			level: LOG_LEVEL_ERROR,
			want:  "error: [A] a.decaf:1: SyntaxError: syntax error at 'x'\n",
		},
		{
			name:  "silent",
			level: LOG_LEVEL_SILENT,
			want:  "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			buf := &bytes.Buffer{}
			dr := &DisplayReporter{Out: buf, Level: tt.level}

			dr.ReportDiagnostic(warn)
			dr.ReportDiagnostic(fail)

			assert.Equal(t, tt.want, buf.String())
		})
	}
}

func TestDisplayReporter_Color(t *testing.T) {
	buf := &bytes.Buffer{}
	dr := &DisplayReporter{Out: buf, Level: LOG_LEVEL_ALL, Color: true}

	dr.ReportDiagnostic(syntaxDiag(1, "oops"))
	assert.Contains(t, buf.String(), "\x1b[")
}

func TestLog_SortByPosition(t *testing.T) {
	at := func(kind DiagKind, line, col int, msg string) *Diagnostic {
		return &Diagnostic{
			Kind:    kind,
			Message: msg,
			Info:    &SourceInfo{Span: &TextSpan{StartLine: line, StartCol: col, EndLine: line, EndCol: col}},
		}
	}

	log := NewLog(nil)
	log.Report(at(DK_SYNTAX, 3, 1, "syntax"))
	log.Report(&Diagnostic{Kind: DK_SYNTAX, Message: "no span"})
	log.Report(at(DK_REDECLARATION, 1, 9, "redeclared"))
	log.Report(at(DK_UNDECLARED, 2, 5, "first at 2:5"))
	log.Report(at(DK_TYPE_MISMATCH, 2, 5, "second at 2:5"))
	log.Report(at(DK_UNDECLARED, 1, 2, "undeclared"))

	log.SortByPosition()

	got := []string{}
	for _, d := range log.Diagnostics() {
		got = append(got, d.Message)
	}
	assert.Equal(t, []string{
		"undeclared",
		"redeclared",
		"first at 2:5",
		"second at 2:5",
		"syntax",
		"no span",
	}, got)
}
