package cmd

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/peterh/liner"
	"github.com/spf13/cobra"
)

const (
	replPrompt     = "decaf> "
	replContPrompt = "  ...> "
)

func newReplCmd(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "repl",
		Short: "Read classes interactively and print their syntax trees",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()

			c, cfg, err := opts.newCompiler(out)
			if err != nil {
				return err
			}

			line := liner.NewLiner()
			defer line.Close()
			line.SetCtrlCAborts(true)

			fmt.Fprintln(out, "Enter a class; an empty line submits an unbalanced one. Ctrl-D exits.")
			return runRepl(line, c, out, cfg.Output.Format)
		},
	}
}

// prompter is the part of *liner.State the loop needs.
type prompter interface {
	Prompt(prompt string) (string, error)
	AppendHistory(item string)
}

// runRepl gathers lines until the braces balance (or an empty line forces
// it) and compiles the buffered text as one unit.
func runRepl(in prompter, c *Compiler, out io.Writer, format string) error {
	var buf strings.Builder
	depth, opened := 0, false

	for {
		prompt := replPrompt
		if buf.Len() > 0 {
			prompt = replContPrompt
		}

		input, err := in.Prompt(prompt)
		if errors.Is(err, liner.ErrPromptAborted) {
			buf.Reset()
			depth, opened = 0, false
			continue
		} else if errors.Is(err, io.EOF) {
			return nil
		} else if err != nil {
			return err
		}

		blank := strings.TrimSpace(input) == ""
		if blank && buf.Len() == 0 {
			continue
		}

		if !blank {
			in.AppendHistory(input)
			buf.WriteString(input)
			buf.WriteByte('\n')

			depth += strings.Count(input, "{") - strings.Count(input, "}")
			opened = opened || strings.Contains(input, "{")
		}

		if !blank && (!opened || depth > 0) {
			continue
		}

		res := c.CompileSource("<repl>", buf.String())
		if res.Program != nil {
			if err := writeProgram(out, res.Program, format); err != nil {
				return err
			}
		}

		buf.Reset()
		depth, opened = 0, false
	}
}
