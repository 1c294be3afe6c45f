package replay

import (
	"errors"
	"fmt"
	"time"
)

// SmoothStepsPerSecond is the interpolation rate of smooth pointer moves.
const SmoothStepsPerSecond = 60

var (
	// ErrPointerNil is returned when a Player has no Pointer.
	ErrPointerNil = errors.New("replay: pointer is nil")
	// ErrInvalidCalibration indicates a calibration with side < 1.
	ErrInvalidCalibration = errors.New("replay: calibration side must be >= 1")
	// ErrPathOutOfRange indicates a path cell outside the calibrated board.
	ErrPathOutOfRange = errors.New("replay: path cell outside calibrated board")
	// ErrNoSystemPointer indicates a build without the robotgo tag.
	ErrNoSystemPointer = errors.New("replay: system pointer not built in (use -tags robotgo)")
)

// Point is a screen position.
type Point struct {
	X, Y float64
}

// String formats p with integer precision.
func (p Point) String() string {
	return fmt.Sprintf("(%.0f,%.0f)", p.X, p.Y)
}

// Pointer is a device that can be moved, pressed and released.
type Pointer interface {
	Position() Point
	MoveTo(p Point) error
	Press() error
	Release() error
}

// Calibration locates a square board on screen by the centers of its
// top-left and bottom-right cells.
type Calibration struct {
	TopLeft     Point
	BottomRight Point
	Side        int
}

// Timing holds the pauses between pointer actions.
type Timing struct {
	MoveToCell    time.Duration // after moving to the first cell
	PressDown     time.Duration // after pressing
	BetweenCells  time.Duration // after reaching each following cell
	BeforeRelease time.Duration // before releasing
	BetweenWords  time.Duration // after releasing
	SmoothMove    time.Duration // duration of one cell-to-cell move
	Startup       time.Duration // countdown before the first action

	FocusClick      bool          // click the board center once before playing
	FocusSettle     time.Duration // between focus move and click
	FocusAfterClick time.Duration // after the focus click
}

// DefaultTiming returns the pacing that works for touch-mirrored game
// windows: short holds, 30ms smooth moves, a three-second countdown.
func DefaultTiming() Timing {
	return Timing{
		MoveToCell:      20 * time.Millisecond,
		PressDown:       20 * time.Millisecond,
		BetweenCells:    10 * time.Millisecond,
		BeforeRelease:   20 * time.Millisecond,
		BetweenWords:    50 * time.Millisecond,
		SmoothMove:      30 * time.Millisecond,
		Startup:         3 * time.Second,
		FocusClick:      true,
		FocusSettle:     100 * time.Millisecond,
		FocusAfterClick: 300 * time.Millisecond,
	}
}
