package render

import (
	"io"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"

	"github.com/SkwalExe/tui-markup/pkg/generator"
	"github.com/SkwalExe/tui-markup/pkg/style"
)

// Renderer turns spans into ANSI text through lipgloss
type Renderer struct {
	lg *lipgloss.Renderer
}

// NewRenderer creates a renderer for w using a fixed color profile
func NewRenderer(w io.Writer, profile termenv.Profile) *Renderer {
	lg := lipgloss.NewRenderer(w)
	lg.SetColorProfile(profile)
	return &Renderer{lg: lg}
}

// Lipgloss exposes the underlying renderer
func (r *Renderer) Lipgloss() *lipgloss.Renderer {
	return r.lg
}

// LipglossStyle converts s. lipgloss has no hidden attribute, so Hidden is
// dropped; both blink speeds map to blink.
func (r *Renderer) LipglossStyle(s style.Style) lipgloss.Style {
	ls := r.lg.NewStyle().TabWidth(lipgloss.NoTabConversion)
	if s.Fg.IsSet() {
		ls = ls.Foreground(lipglossColor(s.Fg))
	}
	if s.Bg.IsSet() {
		ls = ls.Background(lipglossColor(s.Bg))
	}
	m := s.Modifiers
	if m.Has(style.Bold) {
		ls = ls.Bold(true)
	}
	if m.Has(style.Dim) {
		ls = ls.Faint(true)
	}
	if m.Has(style.Italic) {
		ls = ls.Italic(true)
	}
	if m.Has(style.Underlined) {
		ls = ls.Underline(true)
	}
	if m.Has(style.SlowBlink) || m.Has(style.RapidBlink) {
		ls = ls.Blink(true)
	}
	if m.Has(style.Reversed) {
		ls = ls.Reverse(true)
	}
	if m.Has(style.CrossedOut) {
		ls = ls.Strikethrough(true)
	}
	return ls
}

func lipglossColor(c style.Color) lipgloss.Color {
	switch c.Kind {
	case style.ColorNamed, style.ColorIndexed:
		return lipgloss.Color(strconv.Itoa(int(c.Index)))
	default:
		return lipgloss.Color(c.String())
	}
}

// Render styles every span. Output is produced line by line so lipgloss never
// pads lines to a common width.
func (r *Renderer) Render(spans []generator.StyledSpan) string {
	lines := generator.Lines(spans)
	out := make([]string, len(lines))
	for i, line := range lines {
		var b strings.Builder
		for _, span := range line {
			if span.Style.IsZero() {
				b.WriteString(span.Text)
				continue
			}
			b.WriteString(r.LipglossStyle(span.Style).Render(span.Text))
		}
		out[i] = b.String()
	}
	return strings.Join(out, "\n")
}
