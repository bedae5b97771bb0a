package render

import (
	"github.com/gdamore/tcell/v2"
	"github.com/mattn/go-runewidth"

	"github.com/SkwalExe/tui-markup/pkg/generator"
	"github.com/SkwalExe/tui-markup/pkg/style"
)

// TcellStyle converts s for tcell screens. Unset colors stay
// tcell.ColorDefault; Hidden has no tcell attribute and is dropped.
func TcellStyle(s style.Style) tcell.Style {
	ts := tcell.StyleDefault.
		Foreground(tcellColor(s.Fg)).
		Background(tcellColor(s.Bg))
	m := s.Modifiers
	if m.Has(style.Bold) {
		ts = ts.Bold(true)
	}
	if m.Has(style.Dim) {
		ts = ts.Dim(true)
	}
	if m.Has(style.Italic) {
		ts = ts.Italic(true)
	}
	if m.Has(style.Underlined) {
		ts = ts.Underline(true)
	}
	if m.Has(style.SlowBlink) || m.Has(style.RapidBlink) {
		ts = ts.Blink(true)
	}
	if m.Has(style.Reversed) {
		ts = ts.Reverse(true)
	}
	if m.Has(style.CrossedOut) {
		ts = ts.StrikeThrough(true)
	}
	return ts
}

func tcellColor(c style.Color) tcell.Color {
	switch c.Kind {
	case style.ColorNamed, style.ColorIndexed:
		return tcell.PaletteColor(int(c.Index))
	case style.ColorRGB:
		return tcell.NewRGBColor(int32(c.R), int32(c.G), int32(c.B))
	default:
		return tcell.ColorDefault
	}
}

// Cell is one rune of a span ready for tcell.Screen.SetContent
type Cell struct {
	X, Y  int
	Rune  rune
	Style tcell.Style
}

// Cells lays spans out from the origin, one line per row. Wide runes advance
// by their display width.
func Cells(spans []generator.StyledSpan) []Cell {
	var cells []Cell
	for y, line := range generator.Lines(spans) {
		x := 0
		for _, span := range line {
			ts := TcellStyle(span.Style)
			for _, r := range span.Text {
				cells = append(cells, Cell{X: x, Y: y, Rune: r, Style: ts})
				x += max(runewidth.RuneWidth(r), 1)
			}
		}
	}
	return cells
}

// Draw puts spans on screen with their top-left corner at (x, y)
func Draw(screen tcell.Screen, x, y int, spans []generator.StyledSpan) {
	for _, c := range Cells(spans) {
		screen.SetContent(x+c.X, y+c.Y, c.Rune, nil, c.Style)
	}
}
