package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newCheckCmd(opts *rootOptions) *cobra.Command {
	var showSymbols bool

	checkCmd := &cobra.Command{
		Use:   "check <file>...",
		Short: "Report syntax and semantic diagnostics",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()

			c, cfg, err := opts.newCompiler(out)
			if err != nil {
				return err
			}

			failed := false
			for _, path := range args {
				res, err := c.CompileFile(path)
				if err != nil {
					return err
				}

				if (showSymbols || cfg.Output.ShowSymbols) && res.Symbols != nil {
					fmt.Fprintf(out, "symbol table of %s:\n", path)
					writeSymbols(out, res.Symbols)
				}

				if res.OK() {
					fmt.Fprintf(out, "%s: ok\n", path)
				} else {
					fmt.Fprintf(out, "%s: %d diagnostic(s)\n", path, len(res.Diagnostics))
					failed = true
				}
			}

			if failed {
				return ErrDiagnostics
			}

			return nil
		},
	}

	checkCmd.Flags().BoolVarP(&showSymbols, "symbols", "s", false, "print the symbol table")

	return checkCmd
}
