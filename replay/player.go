package replay

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/katalvlaran/wordhunt/search"
)

// Player replays discovered words as pointer gestures.
type Player struct {
	Pointer     Pointer
	Timing      Timing
	Calibration Calibration

	// Logger receives one record per word; nil uses slog.Default().
	Logger *slog.Logger

	// Sleep pauses for d or until ctx is done; nil uses a timer.
	Sleep func(ctx context.Context, d time.Duration) error
}

// Play replays words in order and returns how many were fully played.
// It stops at the first pointer error or when ctx is cancelled, releasing
// the button if it is held. Every path is checked against the calibration
// before any pointer action happens.
func (p *Player) Play(ctx context.Context, words []search.Discovery) (int, error) {
	// 1. Validate
	if p.Pointer == nil {
		return 0, ErrPointerNil
	}
	if err := p.Calibration.Validate(); err != nil {
		return 0, err
	}
	strokes := make([][]Point, len(words))
	for i, w := range words {
		pts, err := p.Calibration.Locate(w.Path)
		if err != nil {
			return 0, fmt.Errorf("%w: word %q", err, w.Word)
		}
		strokes[i] = pts
	}
	log := p.logger()

	// 2. Countdown and focus
	log.Info("replay starting", slog.Int("words", len(words)), slog.Duration("startup", p.Timing.Startup))
	if err := p.sleep(ctx, p.Timing.Startup); err != nil {
		return 0, err
	}
	if p.Timing.FocusClick {
		if err := p.focus(ctx); err != nil {
			return 0, err
		}
	}

	// 3. Words
	played := 0
	for i, w := range words {
		if err := ctx.Err(); err != nil {
			return played, err
		}
		log.Debug("playing word", slog.String("word", w.Word), slog.Int("letters", len(w.Path)))
		if err := p.stroke(ctx, strokes[i]); err != nil {
			log.Warn("replay stopped", slog.String("word", w.Word), slog.Int("played", played), slog.Any("error", err))
			return played, err
		}
		played++
		if err := p.sleep(ctx, p.Timing.BetweenWords); err != nil {
			return played, err
		}
	}
	log.Info("replay finished", slog.Int("played", played))

	return played, nil
}

// focus clicks the center of the calibrated region.
func (p *Player) focus(ctx context.Context) error {
	if err := p.Pointer.MoveTo(p.Calibration.Center()); err != nil {
		return fmt.Errorf("replay: focus move: %w", err)
	}
	if err := p.sleep(ctx, p.Timing.FocusSettle); err != nil {
		return err
	}
	if err := p.Pointer.Press(); err != nil {
		return fmt.Errorf("replay: focus press: %w", err)
	}
	if err := p.Pointer.Release(); err != nil {
		return fmt.Errorf("replay: focus release: %w", err)
	}

	return p.sleep(ctx, p.Timing.FocusAfterClick)
}

// stroke presses on pts[0], drags through the remaining points and
// releases. If anything fails while pressed, the button is released before
// the error is returned.
func (p *Player) stroke(ctx context.Context, pts []Point) (err error) {
	if len(pts) == 0 {
		return nil
	}
	if err = p.Pointer.MoveTo(pts[0]); err != nil {
		return fmt.Errorf("replay: move: %w", err)
	}
	if err = p.sleep(ctx, p.Timing.MoveToCell); err != nil {
		return err
	}
	if err = p.Pointer.Press(); err != nil {
		return fmt.Errorf("replay: press: %w", err)
	}
	held := true // cleared once the final release has been attempted
	defer func() {
		if err != nil && held {
			if rerr := p.Pointer.Release(); rerr != nil {
				err = errors.Join(err, fmt.Errorf("replay: release: %w", rerr))
			}
		}
	}()

	if err = p.sleep(ctx, p.Timing.PressDown); err != nil {
		return err
	}
	for _, pt := range pts[1:] {
		if err = p.smoothMove(ctx, pt); err != nil {
			return err
		}
		if err = p.sleep(ctx, p.Timing.BetweenCells); err != nil {
			return err
		}
	}
	if err = p.sleep(ctx, p.Timing.BeforeRelease); err != nil {
		return err
	}
	held = false
	if rerr := p.Pointer.Release(); rerr != nil {
		return fmt.Errorf("replay: release: %w", rerr)
	}

	return nil
}

func (p *Player) smoothMove(ctx context.Context, to Point) error {
	pts := SmoothPath(p.Pointer.Position(), to, p.Timing.SmoothMove)
	step := p.Timing.SmoothMove / time.Duration(len(pts)-1)
	for _, pt := range pts {
		if err := p.Pointer.MoveTo(pt); err != nil {
			return fmt.Errorf("replay: move: %w", err)
		}
		if err := p.sleep(ctx, step); err != nil {
			return err
		}
	}

	return nil
}

func (p *Player) sleep(ctx context.Context, d time.Duration) error {
	if p.Sleep != nil {
		return p.Sleep(ctx, d)
	}

	return Sleep(ctx, d)
}

func (p *Player) logger() *slog.Logger {
	if p.Logger != nil {
		return p.Logger
	}

	return slog.Default()
}

// Sleep waits for d or until ctx is done, returning ctx.Err() in the latter
// case. A non-positive d only checks the context.
func Sleep(ctx context.Context, d time.Duration) error {
	if d <= 0 {
		return ctx.Err()
	}
	t := time.NewTimer(d)
	defer t.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-t.C:
		return nil
	}
}
