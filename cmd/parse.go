package cmd

import (
	"decafc/config"
	"fmt"

	"github.com/spf13/cobra"
)

func newParseCmd(opts *rootOptions) *cobra.Command {
	var format string

	parseCmd := &cobra.Command{
		Use:   "parse <file>",
		Short: "Parse and check a source file, then print its syntax tree",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()

			c, cfg, err := opts.newCompiler(out)
			if err != nil {
				return err
			}

			if format == "" {
				format = cfg.Output.Format
			} else if err := config.CheckFormat(format); err != nil {
				return fmt.Errorf("--format %w", err)
			}

			res, err := c.CompileFile(args[0])
			if err != nil {
				return err
			}

			if res.Program != nil {
				if err := writeProgram(out, res.Program, format); err != nil {
					return err
				}
			}

			if !res.OK() {
				return ErrDiagnostics
			}

			return nil
		},
	}

	parseCmd.Flags().StringVarP(&format, "format", "f", "", "text, json, yaml or debug")

	return parseCmd
}
