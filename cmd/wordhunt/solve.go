package main

import (
	"encoding/json"
	"fmt"
	"log/slog"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/wordhunt/grid"
	"github.com/katalvlaran/wordhunt/internal/config"
	"github.com/katalvlaran/wordhunt/solver"
	"github.com/katalvlaran/wordhunt/wordsource"
)

// defaultSide is the board size prompted for when --board is not given.
const defaultSide = 4

// solveFlags are the board and solver overrides shared by solve and play.
type solveFlags struct {
	board    string
	dict     string
	min      int
	sort     string
	top      int
	parallel int
}

func (f *solveFlags) register(cmd *cobra.Command) {
	fl := cmd.Flags()
	fl.StringVarP(&f.board, "board", "b", "", "board rows separated by commas, e.g. CATS,AREA,TOPS,SETS (prompted when empty)")
	fl.StringVar(&f.dict, "dict", "", "word list file, one word per line")
	fl.IntVar(&f.min, "min", 0, "minimum word length")
	fl.StringVar(&f.sort, "sort", "", "result order: length or alpha")
	fl.IntVar(&f.top, "top", 0, "number of words to list (0 lists all)")
	fl.IntVar(&f.parallel, "parallel", 0, "goroutines used for the search")
}

// apply copies changed flags onto cfg and revalidates it.
func (f *solveFlags) apply(cmd *cobra.Command, cfg *config.Config) error {
	fl := cmd.Flags()
	if fl.Changed("dict") {
		cfg.Dictionary.Path = f.dict
	}
	if fl.Changed("min") {
		cfg.Solver.MinWordLength = f.min
	}
	if fl.Changed("sort") {
		cfg.Solver.Sort = f.sort
	}
	if fl.Changed("top") {
		cfg.Solver.ShowTopN = f.top
	}
	if fl.Changed("parallel") {
		cfg.Solver.Parallelism = f.parallel
	}

	return cfg.Validate()
}

func newSolveCmd(a *app) *cobra.Command {
	var (
		flags  solveFlags
		format string
	)
	cmd := &cobra.Command{
		Use:   "solve",
		Short: "List every word on the board",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			b, res, err := a.solve(cmd, &flags)
			if err != nil {
				return err
			}
			switch format {
			case "json":
				enc := json.NewEncoder(a.out)
				enc.SetIndent("", "  ")
				return enc.Encode(res)
			case "yaml":
				enc := yaml.NewEncoder(a.out)
				defer enc.Close()
				return enc.Encode(res)
			default:
				fmt.Fprintln(a.out, renderBoard(b))
				printWords(a.out, res, a.cfg.Solver.ShowTopN)
				return nil
			}
		},
	}
	flags.register(cmd)
	cmd.Flags().StringVarP(&format, "format", "o", "text", "output format: text, json or yaml")

	return cmd
}

// solve resolves the board, loads the dictionary and runs the pipeline.
func (a *app) solve(cmd *cobra.Command, flags *solveFlags) (*grid.Board, *solver.Result, error) {
	if err := flags.apply(cmd, a.cfg); err != nil {
		return nil, nil, err
	}

	var (
		b   *grid.Board
		err error
	)
	if flags.board != "" {
		b, err = grid.ParseList(flags.board)
	} else {
		b, err = readBoard(a.in, a.out, defaultSide)
	}
	if err != nil {
		return nil, nil, err
	}

	sc := a.cfg.Solver
	words, err := wordsource.Load(a.cfg.Dictionary.Path, sc.MinWordLength)
	if err != nil {
		return nil, nil, err
	}
	a.logger.Info("dictionary loaded", slog.String("path", a.cfg.Dictionary.Path), slog.Int("words", len(words)))

	res, err := solver.SolveWords(cmd.Context(), words, b, solver.Config{
		MinWordLength: sc.MinWordLength,
		SortByLength:  sc.SortByLength(),
		Parallelism:   sc.Parallelism,
	})
	if err != nil {
		return nil, nil, err
	}

	return b, res, nil
}
