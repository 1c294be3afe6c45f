package replay

import (
	"time"

	"github.com/katalvlaran/wordhunt/grid"
)

// Validate reports whether c describes at least one cell.
func (c Calibration) Validate() error {
	if c.Side < 1 {
		return ErrInvalidCalibration
	}

	return nil
}

// CellCenters returns the screen center of every cell, indexed [row][col].
// Centers are spaced evenly between TopLeft and BottomRight; a 1×1 board
// maps its only cell to TopLeft.
func (c Calibration) CellCenters() [][]Point {
	var dx, dy float64
	if c.Side > 1 {
		dx = (c.BottomRight.X - c.TopLeft.X) / float64(c.Side-1)
		dy = (c.BottomRight.Y - c.TopLeft.Y) / float64(c.Side-1)
	}
	out := make([][]Point, c.Side)
	for r := range out {
		out[r] = make([]Point, c.Side)
		for col := range out[r] {
			out[r][col] = Point{
				X: c.TopLeft.X + float64(col)*dx,
				Y: c.TopLeft.Y + float64(r)*dy,
			}
		}
	}

	return out
}

// Center returns the midpoint between the two calibrated corner centers.
func (c Calibration) Center() Point {
	return Point{
		X: (c.TopLeft.X + c.BottomRight.X) / 2,
		Y: (c.TopLeft.Y + c.BottomRight.Y) / 2,
	}
}

// Locate maps a path to screen positions.
// Returns ErrPathOutOfRange if any cell lies outside the calibrated board.
func (c Calibration) Locate(path []grid.Coord) ([]Point, error) {
	centers := c.CellCenters()
	out := make([]Point, len(path))
	for i, rc := range path {
		if rc.Row < 0 || rc.Row >= c.Side || rc.Col < 0 || rc.Col >= c.Side {
			return nil, ErrPathOutOfRange
		}
		out[i] = centers[rc.Row][rc.Col]
	}

	return out, nil
}

// SmoothPath interpolates from → to with smooth-step easing t²(3-2t).
// It returns steps+1 points, where steps = duration × SmoothStepsPerSecond
// (at least 1); the first point is from and the last is to.
func SmoothPath(from, to Point, duration time.Duration) []Point {
	steps := smoothSteps(duration)
	out := make([]Point, steps+1)
	for i := 0; i <= steps; i++ {
		t := float64(i) / float64(steps)
		t = t * t * (3 - 2*t)
		out[i] = Point{
			X: from.X + (to.X-from.X)*t,
			Y: from.Y + (to.Y-from.Y)*t,
		}
	}

	return out
}

func smoothSteps(d time.Duration) int {
	steps := int(d.Seconds() * SmoothStepsPerSecond)
	if steps < 1 {
		return 1
	}

	return steps
}
