package main

import (
	"fmt"
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/wordhunt/internal/config"
	"github.com/katalvlaran/wordhunt/replay"
)

func newPlayCmd(a *app) *cobra.Command {
	var (
		flags       solveFlags
		topLeft     string
		bottomRight string
		device      string
	)
	cmd := &cobra.Command{
		Use:   "play",
		Short: "Solve the board and replay the words as pointer gestures",
		Long: `play solves the board, then replays every word as a press, a smooth drag
through the word's cells and a release. With --device recorder (the default)
gestures are only logged at debug level; --device system moves the real mouse
and needs a binary built with -tags robotgo. Press Ctrl-C to stop immediately.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			tl, err := parsePoint(topLeft)
			if err != nil {
				return fmt.Errorf("--top-left: %w", err)
			}
			br, err := parsePoint(bottomRight)
			if err != nil {
				return fmt.Errorf("--bottom-right: %w", err)
			}

			ptr, err := newPointer(device, tl, a)
			if err != nil {
				return fmt.Errorf("--device: %w", err)
			}

			b, res, err := a.solve(cmd, &flags)
			if err != nil {
				return err
			}
			fmt.Fprintln(a.out, renderBoard(b))
			printWords(a.out, res, a.cfg.Solver.ShowTopN)
			if len(res.Words) == 0 {
				return nil
			}

			p := &replay.Player{
				Pointer: ptr,
				Timing:  timingFrom(a.cfg.Replay),
				Calibration: replay.Calibration{
					TopLeft:     tl,
					BottomRight: br,
					Side:        b.Side(),
				},
				Logger: a.logger.With(slog.String("run_id", res.RunID)),
			}
			played, err := p.Play(cmd.Context(), res.Words)
			switch {
			case err != nil && cmd.Context().Err() != nil:
				fmt.Fprintf(a.out, "Stopped by user after %d words.\n", played)
				return nil
			case err != nil:
				return err
			}
			fmt.Fprintf(a.out, "Finished! Played %d words.\n", played)

			return nil
		},
	}
	flags.register(cmd)
	cmd.Flags().StringVar(&topLeft, "top-left", "", "screen center of the top-left cell as x,y")
	cmd.Flags().StringVar(&bottomRight, "bottom-right", "", "screen center of the bottom-right cell as x,y")
	cmd.Flags().StringVar(&device, "device", deviceRecorder, "pointer device: recorder or system")
	_ = cmd.MarkFlagRequired("top-left")
	_ = cmd.MarkFlagRequired("bottom-right")

	return cmd
}

// Pointer devices selectable with --device.
const (
	deviceRecorder = "recorder"
	deviceSystem   = "system"
)

// newPointer builds the replay device named by name.
func newPointer(name string, start replay.Point, a *app) (replay.Pointer, error) {
	switch name {
	case deviceRecorder:
		return replay.NewRecorder(start, a.logger), nil
	case deviceSystem:
		return replay.NewSystem()
	default:
		return nil, fmt.Errorf("unknown device %q (want %s or %s)", name, deviceRecorder, deviceSystem)
	}
}

func timingFrom(c config.ReplayConfig) replay.Timing {
	t := replay.DefaultTiming()
	t.MoveToCell = c.MoveToCellDelay
	t.PressDown = c.PressDownDelay
	t.BetweenCells = c.BetweenCellsDelay
	t.BeforeRelease = c.BeforeReleaseDelay
	t.BetweenWords = c.BetweenWordsDelay
	t.SmoothMove = c.SmoothMoveDuration
	t.Startup = c.StartupDelay
	t.FocusClick = !c.NoFocusClick

	return t
}
