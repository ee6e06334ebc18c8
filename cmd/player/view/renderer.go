// Package view draws the player into fixed terminal regions.
package view

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/gigurra/tunes/cmd/player/catalog"
)

// Screen layout, in cells.
const (
	HeaderOffset = 2 // header row + rule row above the first track
	footerRows   = 2 // now playing + status/volume
	nameCol      = 3
	timeCol      = 40
	dividerCol   = 89
	queueCol     = 91
	meterWidth   = 11
	meterCells   = 10
)

var (
	headerStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("4"))
	nowPlayingStyle = lipgloss.NewStyle().Bold(true)
	statusStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("214"))
	meterStyle      = lipgloss.NewStyle().Foreground(lipgloss.Color("42"))
)

// Frame is everything needed for a full redraw.
type Frame struct {
	Catalog    *catalog.Catalog
	Queue      []string
	NowPlaying string
	Status     string
	Volume     float64
	Selected   int
}

// Renderer redraws one region at a time. Every region is drawn between a
// cursor save and restore, so the selection cursor never moves as a side effect.
type Renderer struct {
	screen Screen
	offset int // catalog index shown on the first list row
}

func NewRenderer(screen Screen) *Renderer {
	return &Renderer{screen: screen}
}

// All clears the screen and draws every region.
func (r *Renderer) All(f Frame) {
	r.screen.ClearScreen()
	r.scrollTo(f.Selected)
	r.Header()
	r.Catalog(f.Catalog)
	r.Queue(f.Queue)
	r.NowPlaying(f.NowPlaying)
	r.Status(f.Status)
	r.Volume(f.Volume)
	r.Select(f.Catalog, f.Selected)
}

func (r *Renderer) Header() {
	width, _ := r.screen.Size()
	r.screen.SaveCursor()
	defer r.screen.RestoreCursor()

	r.screen.MoveTo(0, 0)
	r.screen.Print(headerStyle.Render("#"))
	r.screen.MoveTo(nameCol, 0)
	r.screen.Print(headerStyle.Render("Name"))
	r.screen.MoveTo(timeCol, 0)
	r.screen.Print(headerStyle.Render("Time"))
	if r.hasQueuePanel() {
		r.screen.MoveTo(queueCol, 0)
		r.screen.Print(headerStyle.Render("Queue"))
	}
	r.screen.MoveTo(0, 1)
	r.screen.Print(headerStyle.Render(strings.Repeat("─", width)))
}

// Catalog draws the visible slice of the track list.
func (r *Renderer) Catalog(cat *catalog.Catalog) {
	width, _ := r.screen.Size()
	panel := r.hasQueuePanel()
	lineWidth := width - 1
	if panel {
		lineWidth = dividerCol
	}

	r.screen.SaveCursor()
	defer r.screen.RestoreCursor()

	for i := 0; i < r.listRows(); i++ {
		idx := r.offset + i
		r.screen.MoveTo(0, HeaderOffset+i)
		if track, ok := cat.At(idx); ok {
			r.screen.Print(catalogLine(idx, track, lineWidth))
		} else {
			r.screen.Print(strings.Repeat(" ", lineWidth))
		}
		if panel {
			r.screen.Print(headerStyle.Render("│"))
		}
	}
}

func catalogLine(idx int, track catalog.Track, width int) string {
	line := Fit(strconv.Itoa(idx), nameCol) +
		Fit(track.Name, timeCol-nameCol-1) + " " +
		track.FormatDuration()
	return Fit(line, width)
}

// Queue redraws the whole queue panel. Every panel row is cleared first so a
// shrinking queue leaves nothing stale behind.
func (r *Renderer) Queue(names []string) {
	if !r.hasQueuePanel() {
		return
	}
	width, _ := r.screen.Size()
	rows := r.listRows()

	r.screen.SaveCursor()
	defer r.screen.RestoreCursor()

	for i := 0; i < rows; i++ {
		r.screen.MoveTo(queueCol, HeaderOffset+i)
		r.screen.ClearLine()

		var text string
		switch {
		case len(names) > rows && i == rows-1:
			text = fmt.Sprintf("… +%d more", len(names)-i)
		case i < len(names):
			text = names[i]
		default:
			continue
		}
		r.screen.Print(TruncateWithEllipsis(text, width-queueCol))
	}
}

// NowPlaying rewrites the second-to-last row. An empty name leaves it blank.
func (r *Renderer) NowPlaying(name string) {
	width, height := r.screen.Size()
	r.screen.SaveCursor()
	defer r.screen.RestoreCursor()

	r.screen.MoveTo(0, height-2)
	r.screen.ClearLine()
	if name != "" {
		r.screen.Print(nowPlayingStyle.Render(TruncateWithEllipsis("Now playing: "+name, width)))
	}
}

// Status writes a message on the last row, left of the volume meter.
func (r *Renderer) Status(msg string) {
	width, height := r.screen.Size()
	r.screen.SaveCursor()
	defer r.screen.RestoreCursor()

	r.screen.MoveTo(0, height-1)
	r.screen.Print(statusStyle.Render(Fit(msg, width-meterWidth)))
}

// Volume draws the meter in the strip at the right end of the last row.
func (r *Renderer) Volume(v float64) {
	width, height := r.screen.Size()
	col := width - meterWidth

	r.screen.SaveCursor()
	defer r.screen.RestoreCursor()

	r.screen.MoveTo(col, height-1)
	r.screen.Print(strings.Repeat(" ", meterWidth))
	if cells := MeterCells(v); cells > 0 {
		r.screen.MoveTo(col+1, height-1)
		r.screen.Print(meterStyle.Render(strings.Repeat("█", cells)))
	}
}

// Select puts the terminal cursor on the selected track, scrolling the list
// when the selection left the visible rows.
func (r *Renderer) Select(cat *catalog.Catalog, selected int) {
	if r.scrollTo(selected) {
		r.Catalog(cat)
	}
	r.screen.MoveTo(0, HeaderOffset+selected-r.offset)
}

// Flush sends all queued drawing to the terminal.
func (r *Renderer) Flush() error {
	return r.screen.Flush()
}

// MeterCells is the number of filled meter blocks for volume v.
func MeterCells(v float64) int {
	cells := int(math.Round(v * meterCells))
	return min(max(cells, 0), meterCells)
}

func (r *Renderer) scrollTo(selected int) bool {
	rows := r.listRows()
	offset := r.offset
	if selected < offset {
		offset = selected
	}
	if selected >= offset+rows {
		offset = selected - rows + 1
	}
	offset = max(offset, 0)

	changed := offset != r.offset
	r.offset = offset
	return changed
}

func (r *Renderer) listRows() int {
	_, height := r.screen.Size()
	return max(height-HeaderOffset-footerRows, 1)
}

func (r *Renderer) hasQueuePanel() bool {
	width, _ := r.screen.Size()
	return width > queueCol
}
