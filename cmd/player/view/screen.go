package view

import (
	"bytes"
	"io"

	"github.com/charmbracelet/x/ansi"
)

// Screen is the terminal drawing capability the renderer draws through.
// Coordinates are 0-indexed cells.
type Screen interface {
	Size() (width, height int)
	MoveTo(col, row int)
	ClearLine() // from the cursor to the end of the line
	ClearScreen()
	SaveCursor()
	RestoreCursor()
	Print(text string)
	Flush() error
}

// SizeFunc reports the terminal size.
type SizeFunc func() (width, height int, err error)

// ANSIScreen batches escape sequences in memory and writes them on Flush.
type ANSIScreen struct {
	out  io.Writer
	size SizeFunc
	buf  bytes.Buffer
}

func NewANSIScreen(out io.Writer, size SizeFunc) *ANSIScreen {
	return &ANSIScreen{out: out, size: size}
}

// Size falls back to 80x24 when the terminal cannot tell.
func (s *ANSIScreen) Size() (int, int) {
	width, height, err := s.size()
	if err != nil || width <= 0 || height <= 0 {
		return 80, 24
	}
	return width, height
}

func (s *ANSIScreen) MoveTo(col, row int) {
	s.buf.WriteString(ansi.CursorPosition(col+1, row+1))
}

func (s *ANSIScreen) ClearLine() {
	s.buf.WriteString(ansi.EraseLineRight)
}

func (s *ANSIScreen) ClearScreen() {
	s.buf.WriteString(ansi.EraseEntireScreen)
}

func (s *ANSIScreen) SaveCursor() {
	s.buf.WriteString(ansi.SaveCursor)
}

func (s *ANSIScreen) RestoreCursor() {
	s.buf.WriteString(ansi.RestoreCursor)
}

func (s *ANSIScreen) Print(text string) {
	s.buf.WriteString(text)
}

// Flush writes everything queued since the last flush in one write.
func (s *ANSIScreen) Flush() error {
	if s.buf.Len() == 0 {
		return nil
	}
	_, err := s.out.Write(s.buf.Bytes())
	s.buf.Reset()
	return err
}
