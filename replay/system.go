//go:build robotgo

package replay

import (
	"fmt"
	"math"

	"github.com/go-vgo/robotgo"
)

// SystemAvailable reports whether this build can drive the OS pointer.
const SystemAvailable = true

// System drives the operating system's mouse through robotgo.
// Positions are rounded to whole screen pixels.
type System struct{}

// NewSystem returns a Pointer bound to the OS mouse.
func NewSystem() (Pointer, error) {
	return System{}, nil
}

// Position returns the current mouse location.
func (System) Position() Point {
	x, y := robotgo.Location()
	return Point{X: float64(x), Y: float64(y)}
}

// MoveTo moves the mouse to p.
func (System) MoveTo(p Point) error {
	robotgo.Move(int(math.Round(p.X)), int(math.Round(p.Y)))
	return nil
}

// Press holds the left button down.
func (System) Press() error {
	if err := robotgo.Toggle("left"); err != nil {
		return fmt.Errorf("replay: system press: %w", err)
	}

	return nil
}

// Release lets the left button up.
func (System) Release() error {
	if err := robotgo.Toggle("left", "up"); err != nil {
		return fmt.Errorf("replay: system release: %w", err)
	}

	return nil
}
