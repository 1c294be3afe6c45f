package main

import (
	"fmt"
	"io"
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/wordhunt/internal/config"
	"github.com/katalvlaran/wordhunt/internal/logging"
)

// app carries state shared by all subcommands.
type app struct {
	cfgPath  string
	logLevel string

	cfg    *config.Config
	logger *slog.Logger

	in     io.Reader
	out    io.Writer
	errOut io.Writer
}

func newRootCmd(in io.Reader, out, errOut io.Writer) *cobra.Command {
	a := &app{in: in, out: out, errOut: errOut}

	root := &cobra.Command{
		Use:   "wordhunt",
		Short: "Find every word on a word-hunt letter board",
		Long: `wordhunt searches a square letter board for every dictionary word that can be
traced through horizontally, vertically or diagonally adjacent cells without
reusing a cell, and can replay the words as pointer gestures.`,
		SilenceUsage:      true,
		PersistentPreRunE: a.setup,
	}
	root.SetIn(in)
	root.SetOut(out)
	root.SetErr(errOut)
	root.PersistentFlags().StringVar(&a.cfgPath, "config", "", "path to YAML config (default $WORDHUNT_CONFIG or ./wordhunt.yaml)")
	root.PersistentFlags().StringVar(&a.logLevel, "log-level", "", "override log level: debug, info, warn, error")

	root.AddCommand(newSolveCmd(a), newPlayCmd(a))

	return root
}

// setup loads configuration and builds the logger before any subcommand runs.
func (a *app) setup(cmd *cobra.Command, _ []string) error {
	cfg, err := config.Load(a.cfgPath)
	if err != nil {
		return err
	}
	if a.logLevel != "" {
		cfg.Log.Level = a.logLevel
		if err := cfg.Validate(); err != nil {
			return fmt.Errorf("--log-level: %w", err)
		}
	}
	a.cfg = cfg
	a.logger = logging.New(cfg.Log, a.errOut)
	cmd.SetContext(logging.WithLogger(cmd.Context(), a.logger))

	return nil
}
