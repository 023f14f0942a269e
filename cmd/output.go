package cmd

import (
	"decafc/common"
	"decafc/util"
	"encoding/json"
	"fmt"
	"io"

	"github.com/davecgh/go-spew/spew"
	"github.com/olekukonko/tablewriter"
	"gopkg.in/yaml.v3"
)

func writeProgram(out io.Writer, prog *common.AstProgram, format string) error {
	switch format {
	case "json":
		data, err := json.MarshalIndent(util.ToTree(prog), "", "  ")
		if err != nil {
			return fmt.Errorf("encode AST: %w", err)
		}
		fmt.Fprintf(out, "%s\n", data)
	case "yaml":
		data, err := yaml.Marshal(util.ToTree(prog))
		if err != nil {
			return fmt.Errorf("encode AST: %w", err)
		}
		fmt.Fprint(out, string(data))
	case "debug":
		cfg := spew.ConfigState{Indent: "  ", DisablePointerAddresses: true, SortKeys: true}
		cfg.Fdump(out, prog)
	default:
		fmt.Fprintln(out, util.ASTString(prog))
	}

	return nil
}

func writeSymbols(out io.Writer, symbols *common.SymbolTable) {
	table := tablewriter.NewWriter(out)
	table.SetHeader([]string{"Name", "Type", "Kind", "Line"})

	for _, sym := range symbols.Entries() {
		line := ""
		if sym.Span != nil {
			line = fmt.Sprint(sym.Span.StartLine)
		}

		table.Append([]string{sym.Name, sym.Type.String(), sym.Kind.String(), line})
	}

	table.Render()
}
