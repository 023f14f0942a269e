package cmd

import (
	"os"

	"github.com/spf13/cobra"
)

func newTokensCmd(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "tokens <file>",
		Short: "Print the token stream of a source file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()

			c, _, err := opts.newCompiler(out)
			if err != nil {
				return err
			}

			src, err := os.ReadFile(args[0])
			if err != nil {
				return err
			}

			toks, diags := c.Tokens(args[0], string(src))
			for _, tok := range toks {
				tok.Dump(out)
			}

			if len(diags) > 0 {
				return ErrDiagnostics
			}

			return nil
		},
	}
}
