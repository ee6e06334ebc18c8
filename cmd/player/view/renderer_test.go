package view

import (
	"fmt"
	"strings"
	"testing"
	"time"

	"github.com/gigurra/tunes/cmd/player/catalog"
	"github.com/gigurra/tunes/cmd/player/view/viewtest"
)

func testCatalog() *catalog.Catalog {
	return catalog.New(
		catalog.Track{Name: "intro", Duration: 10 * time.Second, DurationKnown: true},
		catalog.Track{Name: "verse", Duration: 30 * time.Second, DurationKnown: true},
		catalog.Track{Name: "mystery"},
	)
}

func TestAll_DrawsEveryRegion(t *testing.T) {
	screen := viewtest.NewScreen(120, 12)
	r := NewRenderer(screen)

	r.All(Frame{
		Catalog:    testCatalog(),
		Queue:      []string{"verse"},
		NowPlaying: "verse",
		Status:     "ready",
		Volume:     1.0,
		Selected:   1,
	})

	checks := []struct {
		name     string
		got      string
		expected string
	}{
		{"index header", screen.Region(0, 0, 1), "#"},
		{"name header", screen.Region(0, nameCol, nameCol+4), "Name"},
		{"time header", screen.Region(0, timeCol, timeCol+4), "Time"},
		{"queue header", screen.Region(0, queueCol, queueCol+5), "Queue"},
		{"rule", screen.Line(1), strings.Repeat("─", 120)},
		{"first index", screen.Region(2, 0, nameCol), "0"},
		{"first name", screen.Region(2, nameCol, timeCol), "intro"},
		{"first time", screen.Region(2, timeCol, dividerCol), "10.0s"},
		{"divider", screen.Region(2, dividerCol, dividerCol+1), "│"},
		{"second name", screen.Region(3, nameCol, timeCol), "verse"},
		{"unknown time", screen.Region(4, timeCol, dividerCol), "?"},
		{"empty list row", screen.Region(5, 0, dividerCol), ""},
		{"queue entry", screen.Region(2, queueCol, 120), "verse"},
		{"now playing", screen.Line(10), "Now playing: verse"},
		{"status", screen.Region(11, 0, 120-meterWidth), "ready"},
		{"meter", screen.Region(11, 120-meterWidth, 120), " " + strings.Repeat("█", 10)},
	}

	for _, c := range checks {
		if c.got != c.expected {
			t.Errorf("%s = %q, want %q", c.name, c.got, c.expected)
		}
	}

	if col, row := screen.Cursor(); col != 0 || row != HeaderOffset+1 {
		t.Errorf("Cursor() = (%d, %d), want (0, %d)", col, row, HeaderOffset+1)
	}
}

func TestAll_NarrowTerminalHasNoQueuePanel(t *testing.T) {
	screen := viewtest.NewScreen(80, 12)
	r := NewRenderer(screen)

	r.All(Frame{Catalog: testCatalog(), Queue: []string{"verse"}, Volume: 0.5})

	if strings.Contains(screen.Line(0), "Queue") {
		t.Errorf("header = %q, want no Queue label", screen.Line(0))
	}
	if strings.Contains(screen.Line(2), "│") || strings.Contains(screen.Line(2), "verse") {
		t.Errorf("row 2 = %q, want no queue panel", screen.Line(2))
	}
	if got := screen.Region(11, 80-meterWidth, 80); got != " █████" {
		t.Errorf("meter = %q, want five cells", got)
	}
}

func TestQueue_ShrinkClearsStaleRows(t *testing.T) {
	screen := viewtest.NewScreen(120, 12)
	r := NewRenderer(screen)

	r.Queue([]string{"a very long first entry", "second", "third"})
	r.Queue([]string{"one"})

	if got := screen.Region(2, queueCol, 120); got != "one" {
		t.Errorf("row 2 = %q, want %q", got, "one")
	}
	for row := 3; row < 5; row++ {
		if got := screen.Region(row, queueCol, 120); got != "" {
			t.Errorf("row %d = %q, want empty", row, got)
		}
	}

	r.Queue(nil)
	if got := screen.Region(2, queueCol, 120); got != "" {
		t.Errorf("row 2 after clear = %q, want empty", got)
	}
}

func TestQueue_Overflow(t *testing.T) {
	screen := viewtest.NewScreen(120, 12) // 8 list rows
	r := NewRenderer(screen)

	names := make([]string, 10)
	for i := range names {
		names[i] = fmt.Sprintf("track-%d", i)
	}
	r.Queue(names)

	if got := screen.Region(8, queueCol, 120); got != "track-6" {
		t.Errorf("row 8 = %q, want track-6", got)
	}
	if got := screen.Region(9, queueCol, 120); got != "… +3 more" {
		t.Errorf("row 9 = %q, want overflow marker", got)
	}
}

func TestRegions_PreserveCursor(t *testing.T) {
	screen := viewtest.NewScreen(120, 12)
	r := NewRenderer(screen)
	screen.MoveTo(0, 5)

	r.Header()
	r.Catalog(testCatalog())
	r.Queue([]string{"intro", "verse"})
	r.NowPlaying("intro")
	r.Status("hello")
	r.Volume(0.3)

	if col, row := screen.Cursor(); col != 0 || row != 5 {
		t.Errorf("Cursor() = (%d, %d), want (0, 5)", col, row)
	}
}

func TestNowPlaying_Blank(t *testing.T) {
	screen := viewtest.NewScreen(120, 12)
	r := NewRenderer(screen)

	r.NowPlaying("a rather long title")
	r.NowPlaying("")

	if got := screen.Line(10); got != "" {
		t.Errorf("now playing row = %q, want empty", got)
	}
}

func TestStatus_DoesNotTouchMeter(t *testing.T) {
	screen := viewtest.NewScreen(120, 12)
	r := NewRenderer(screen)

	r.Volume(1.0)
	r.Status(strings.Repeat("x", 200))

	if got := screen.Region(11, 120-meterWidth+1, 120); got != strings.Repeat("█", 10) {
		t.Errorf("meter = %q, want ten cells", got)
	}
	if got := screen.Region(11, 0, 120-meterWidth); !strings.HasSuffix(got, "…") {
		t.Errorf("status = %q, want truncated with ellipsis", got)
	}
}

func TestVolume_RedrawShrinks(t *testing.T) {
	screen := viewtest.NewScreen(120, 12)
	r := NewRenderer(screen)

	r.Volume(1.0)
	r.Volume(0.2)
	if got := screen.Region(11, 120-meterWidth, 120); got != " ██" {
		t.Errorf("meter = %q, want two cells", got)
	}

	r.Volume(0)
	if got := screen.Region(11, 120-meterWidth, 120); got != "" {
		t.Errorf("meter = %q, want empty", got)
	}
}

func TestMeterCells(t *testing.T) {
	tests := []struct {
		volume   float64
		expected int
	}{
		{0, 0},
		{0.04, 0},
		{0.05, 1},
		{0.5, 5},
		{0.55, 6},
		{1.0, 10},
		{1.5, 10},
		{-0.2, 0},
	}

	for _, tt := range tests {
		if got := MeterCells(tt.volume); got != tt.expected {
			t.Errorf("MeterCells(%v) = %d, want %d", tt.volume, got, tt.expected)
		}
	}
}

func TestSelect_ScrollsLongCatalog(t *testing.T) {
	tracks := make([]catalog.Track, 20)
	for i := range tracks {
		tracks[i] = catalog.Track{Name: fmt.Sprintf("song-%02d", i)}
	}
	cat := catalog.New(tracks...)

	screen := viewtest.NewScreen(120, 12) // 8 list rows
	r := NewRenderer(screen)
	r.All(Frame{Catalog: cat})

	r.Select(cat, 12)
	if got := screen.Region(2, 0, nameCol); got != "5" {
		t.Errorf("first visible index = %q, want 5", got)
	}
	if got := screen.Region(9, nameCol, timeCol); got != "song-12" {
		t.Errorf("last visible name = %q, want song-12", got)
	}
	if _, row := screen.Cursor(); row != 9 {
		t.Errorf("cursor row = %d, want 9", row)
	}

	r.Select(cat, 3)
	if got := screen.Region(2, nameCol, timeCol); got != "song-03" {
		t.Errorf("first visible name = %q, want song-03", got)
	}
	if _, row := screen.Cursor(); row != HeaderOffset {
		t.Errorf("cursor row = %d, want %d", row, HeaderOffset)
	}
}

func TestFit(t *testing.T) {
	tests := []struct {
		input    string
		width    int
		expected string
	}{
		{"abc", 5, "abc  "},
		{"abcdef", 4, "abc…"},
		{"abc", 0, ""},
		{"日本語", 4, "日… "},
	}

	for _, tt := range tests {
		if got := Fit(tt.input, tt.width); got != tt.expected {
			t.Errorf("Fit(%q, %d) = %q, want %q", tt.input, tt.width, got, tt.expected)
		}
	}
}
