package report

import (
	"fmt"
	"io"
	"strings"
)

type TextSpan struct {
	StartLine, StartCol int
	EndLine, EndCol     int
}

type SourceInfo struct {
	UnitName    string
	DisplayPath string
	Span        *TextSpan
}

func SpanOver(start, end *TextSpan) *TextSpan {
	if start == nil {
		return end
	} else if end == nil {
		return start
	}

	return &TextSpan{
		StartLine: start.StartLine,
		StartCol:  start.StartCol,
		EndLine:   end.EndLine,
		EndCol:    end.EndCol,
	}
}

/* -------------------------------------------------------------------------- */

type DiagKind uint8

const (
	DK_SYNTAX DiagKind = iota
	DK_UNRECOGNIZED_CHAR
	DK_REDECLARATION
	DK_UNDECLARED
	DK_TYPE_MISMATCH
)

var diagKindNames = [...]string{
	DK_SYNTAX:            "SyntaxError",
	DK_UNRECOGNIZED_CHAR: "UnrecognizedCharacter",
	DK_REDECLARATION:     "Redeclaration",
	DK_UNDECLARED:        "UndeclaredVariable",
	DK_TYPE_MISMATCH:     "TypeMismatch",
}

func (dk DiagKind) String() string {
	if int(dk) < len(diagKindNames) {
		return diagKindNames[dk]
	}

	return fmt.Sprintf("DiagKind(%d)", dk)
}

// IsSemantic reports whether the kind belongs to the non-fatal channel filled
// by the analyzer.
func (dk DiagKind) IsSemantic() bool {
	return dk == DK_REDECLARATION || dk == DK_UNDECLARED || dk == DK_TYPE_MISMATCH
}

/* -------------------------------------------------------------------------- */

type Diagnostic struct {
	Kind    DiagKind
	Message string
	Info    *SourceInfo
}

func (d *Diagnostic) Line() int {
	if d.Info == nil || d.Info.Span == nil {
		return 0
	}

	return d.Info.Span.StartLine
}

func (d *Diagnostic) Error() string {
	b := strings.Builder{}
	d.Dump(&b)
	return b.String()
}

func (d *Diagnostic) Dump(w io.Writer) {
	if d.Info == nil {
		fmt.Fprintf(w, "%s: %s", d.Kind, d.Message)
		return
	}

	if d.Info.UnitName != "" {
		fmt.Fprintf(w, "[%s] ", d.Info.UnitName)
	}

	fmt.Fprintf(w, "%s:%d: %s: %s", d.Info.DisplayPath, d.Line(), d.Kind, d.Message)
}
