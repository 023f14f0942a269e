package report

import (
	"fmt"
	"io"

	"github.com/fatih/color"
)

type LogLevel uint8

const (
	LOG_LEVEL_SILENT LogLevel = iota
	LOG_LEVEL_ERROR
	LOG_LEVEL_WARN
	LOG_LEVEL_ALL
)

type DisplayReporter struct {
	Out   io.Writer
	Level LogLevel
	Color bool
}

func (dr *DisplayReporter) ReportDiagnostic(d *Diagnostic) {
	// Unrecognized characters are skipped by the scanner and count as warnings.
	if d.Kind == DK_UNRECOGNIZED_CHAR {
		if dr.Level < LOG_LEVEL_WARN {
			return
		}

		fmt.Fprint(dr.Out, dr.paint(color.FgYellow, "warning: "))
	} else {
		if dr.Level < LOG_LEVEL_ERROR {
			return
		}

		fmt.Fprint(dr.Out, dr.paint(color.FgRed, "error: "))
	}

	d.Dump(dr.Out)
	fmt.Fprint(dr.Out, "\n")
}

func (dr *DisplayReporter) paint(attr color.Attribute, s string) string {
	c := color.New(attr, color.Bold)
	if dr.Color {
		c.EnableColor()
	} else {
		c.DisableColor()
	}

	return c.Sprint(s)
}
