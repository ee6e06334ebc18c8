// Package viewtest provides an in-memory Screen for tests.
package viewtest

import (
	"strings"

	"github.com/charmbracelet/x/ansi"
)

// Screen is a character grid that interprets Screen calls the way a terminal would.
// Styling escape sequences are stripped.
type Screen struct {
	width, height int
	cells         [][]rune
	col, row      int
	savedCol      int
	savedRow      int
	Flushes       int
}

func NewScreen(width, height int) *Screen {
	s := &Screen{width: width, height: height}
	s.ClearScreen()
	return s
}

func (s *Screen) Size() (int, int) {
	return s.width, s.height
}

func (s *Screen) MoveTo(col, row int) {
	s.col, s.row = col, row
}

func (s *Screen) ClearLine() {
	if !s.inBounds() {
		return
	}
	for c := s.col; c < s.width; c++ {
		s.cells[s.row][c] = ' '
	}
}

func (s *Screen) ClearScreen() {
	s.cells = make([][]rune, s.height)
	for r := range s.cells {
		s.cells[r] = []rune(strings.Repeat(" ", s.width))
	}
}

func (s *Screen) SaveCursor() {
	s.savedCol, s.savedRow = s.col, s.row
}

func (s *Screen) RestoreCursor() {
	s.col, s.row = s.savedCol, s.savedRow
}

func (s *Screen) Print(text string) {
	for _, r := range ansi.Strip(text) {
		if s.inBounds() {
			s.cells[s.row][s.col] = r
		}
		s.col++
	}
}

func (s *Screen) Flush() error {
	s.Flushes++
	return nil
}

// Cursor returns the current cursor cell.
func (s *Screen) Cursor() (col, row int) {
	return s.col, s.row
}

// Line returns row with trailing spaces removed.
func (s *Screen) Line(row int) string {
	return strings.TrimRight(string(s.cells[row]), " ")
}

// Region returns the cells [from, to) of row with trailing spaces removed.
func (s *Screen) Region(row, from, to int) string {
	to = min(to, s.width)
	if from >= to {
		return ""
	}
	return strings.TrimRight(string(s.cells[row][from:to]), " ")
}

func (s *Screen) inBounds() bool {
	return s.row >= 0 && s.row < s.height && s.col >= 0 && s.col < s.width
}
