package cmd

import (
	"decafc/config"
	"decafc/report"
	"errors"
	"io"
	"log/slog"
	"os"

	"github.com/mattn/go-colorable"
	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"
)

// ErrDiagnostics is returned by commands whose input produced diagnostics.
// They have already been printed.
var ErrDiagnostics = errors.New("compilation reported diagnostics")

type rootOptions struct {
	cfgFile string
	verbose bool
	color   string
}

func Execute() error {
	return NewRootCmd().Execute()
}

func NewRootCmd() *cobra.Command {
	opts := &rootOptions{}

	rootCmd := &cobra.Command{
		Use:   "decafc",
		Short: "Front end for a small class-based imperative language",
		Long: `decafc parses a single-class source file, checks its declarations
and assignments, and prints the syntax tree or the diagnostics found.`,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	rootCmd.PersistentFlags().StringVar(&opts.cfgFile, "config", "", "config file (.toml, .yaml)")
	rootCmd.PersistentFlags().BoolVarP(&opts.verbose, "verbose", "v", false, "debug logging")
	rootCmd.PersistentFlags().StringVar(&opts.color, "color", "", "auto, always or never")

	rootCmd.AddCommand(
		newTokensCmd(opts),
		newParseCmd(opts),
		newCheckCmd(opts),
		newReplCmd(opts),
		newVersionCmd(),
	)

	return rootCmd
}

/* -------------------------------------------------------------------------- */

func (opts *rootOptions) loadConfig() (*config.Config, error) {
	cfg := config.Default()
	if opts.cfgFile != "" {
		var err error
		if cfg, err = config.Load(opts.cfgFile); err != nil {
			return nil, err
		}
	}

	if opts.verbose {
		cfg.Log.Level = "debug"
	}

	if opts.color != "" {
		cfg.Output.Color = opts.color
	}

	return cfg, cfg.Validate()
}

// newCompiler wires a compiler whose diagnostics go to out and whose logs go
// to stderr.
func (opts *rootOptions) newCompiler(out io.Writer) (*Compiler, *config.Config, error) {
	cfg, err := opts.loadConfig()
	if err != nil {
		return nil, nil, err
	}

	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: cfg.SlogLevel()}))

	rep := &report.DisplayReporter{
		Out:   terminalWriter(out),
		Level: report.LOG_LEVEL_ALL,
		Color: useColor(cfg, out),
	}

	return NewCompiler(cfg, rep, logger), cfg, nil
}

func useColor(cfg *config.Config, out io.Writer) bool {
	switch cfg.Output.Color {
	case "always":
		return true
	case "never":
		return false
	}

	f, ok := out.(*os.File)
	return ok && (isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd()))
}

// terminalWriter translates ANSI escapes on consoles that need it.
func terminalWriter(out io.Writer) io.Writer {
	if f, ok := out.(*os.File); ok {
		return colorable.NewColorable(f)
	}

	return out
}
