package main

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/katalvlaran/wordhunt/curate"
	"github.com/katalvlaran/wordhunt/grid"
	"github.com/katalvlaran/wordhunt/replay"
	"github.com/katalvlaran/wordhunt/solver"
)

var (
	cellStyle  = lipgloss.NewStyle().Bold(true).Width(3).Align(lipgloss.Center)
	boardStyle = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).Padding(0, 1)
	titleStyle = lipgloss.NewStyle().Bold(true)
)

// errNoBoard is returned when input ends before the board is complete.
var errNoBoard = errors.New("board input ended early")

// readBoard prompts for side rows of side letters each, re-prompting on
// malformed rows.
func readBoard(r io.Reader, w io.Writer, side int) (*grid.Board, error) {
	sc := bufio.NewScanner(r)
	fmt.Fprintf(w, "Enter the %dx%d board letters row by row (e.g. %s)\n", side, side, strings.Repeat("A", side))
	rows := make([]string, 0, side)
	for len(rows) < side {
		fmt.Fprintf(w, "Row %d: ", len(rows)+1)
		if !sc.Scan() {
			if err := sc.Err(); err != nil {
				return nil, fmt.Errorf("read board: %w", err)
			}
			return nil, errNoBoard
		}
		row := strings.ToUpper(strings.TrimSpace(sc.Text()))
		if len(row) != side || !isLetters(row) {
			fmt.Fprintf(w, "Please enter exactly %d letters\n", side)
			continue
		}
		rows = append(rows, row)
	}

	return grid.Parse(rows...)
}

func isLetters(s string) bool {
	for i := 0; i < len(s); i++ {
		if s[i] < 'A' || s[i] > 'Z' {
			return false
		}
	}

	return true
}

// renderBoard draws the board as a bordered letter grid.
func renderBoard(b *grid.Board) string {
	lines := make([]string, 0, b.Side())
	for _, row := range b.Rows() {
		cells := make([]string, len(row))
		for i := 0; i < len(row); i++ {
			cells[i] = cellStyle.Render(row[i : i+1])
		}
		lines = append(lines, lipgloss.JoinHorizontal(lipgloss.Top, cells...))
	}

	return boardStyle.Render(lipgloss.JoinVertical(lipgloss.Left, lines...))
}

// printWords writes the found-words summary and the first n words.
func printWords(w io.Writer, res *solver.Result, n int) {
	if len(res.Words) == 0 {
		fmt.Fprintln(w, "No words found! Check the board input.")
		return
	}
	shown := curate.Top(res.Words, n)
	fmt.Fprintln(w, titleStyle.Render(fmt.Sprintf("Found %d words", len(res.Words))))
	if len(shown) < len(res.Words) {
		fmt.Fprintf(w, "Top %d words:\n", len(shown))
	}
	for _, d := range shown {
		fmt.Fprintf(w, "  %s (%d letters)\n", d.Word, len(d.Word))
	}
}

// parsePoint parses "x,y" into a screen point.
func parsePoint(s string) (replay.Point, error) {
	xs, ys, ok := strings.Cut(s, ",")
	if !ok {
		return replay.Point{}, fmt.Errorf("point %q: want x,y", s)
	}
	x, err := strconv.ParseFloat(strings.TrimSpace(xs), 64)
	if err != nil {
		return replay.Point{}, fmt.Errorf("point %q: %w", s, err)
	}
	y, err := strconv.ParseFloat(strings.TrimSpace(ys), 64)
	if err != nil {
		return replay.Point{}, fmt.Errorf("point %q: %w", s, err)
	}

	return replay.Point{X: x, Y: y}, nil
}
