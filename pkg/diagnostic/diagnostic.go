package diagnostic

import (
	"fmt"
	"strconv"
	"strings"
	"unicode/utf8"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-runewidth"

	"github.com/SkwalExe/tui-markup/pkg/errors"
	"github.com/SkwalExe/tui-markup/pkg/item"
)

// Reporter renders generation errors against the markup they came from
type Reporter struct {
	header   lipgloss.Style
	location lipgloss.Style
	gutter   lipgloss.Style
	caret    lipgloss.Style
}

// NewReporter creates a reporter styling its output with r
func NewReporter(r *lipgloss.Renderer) *Reporter {
	return &Reporter{
		header:   r.NewStyle().Foreground(lipgloss.Color("9")).Bold(true),
		location: r.NewStyle().Foreground(lipgloss.Color("12")),
		gutter:   r.NewStyle().Foreground(lipgloss.Color("8")),
		caret:    r.NewStyle().Foreground(lipgloss.Color("9")).Bold(true),
	}
}

// Report formats err against src:
//
//	error[INVALID_TAG]: invalid tag "qwerty"
//	 --> input.tm:1:2
//	  |
//	1 | <qwerty one>
//	  |  ^^^^^^
func (r *Reporter) Report(src string, err *errors.GenError) string {
	span := err.Span
	lineText, col := locate(src, span)

	lineNo := strconv.Itoa(span.Pos.Line)
	pad := strings.Repeat(" ", len(lineNo))

	width := runewidth.StringWidth(span.Fragment)
	if width == 0 {
		width = 1
	}
	indent := strings.Repeat(" ", runewidth.StringWidth(lineText[:col]))

	var b strings.Builder
	fmt.Fprintf(&b, "%s: %s %q\n",
		r.header.Render("error["+string(err.Code())+"]"), err.Kind(), span.Fragment)
	fmt.Fprintf(&b, "%s%s %s\n", pad, r.gutter.Render("-->"), r.location.Render(span.Pos.String()))
	fmt.Fprintf(&b, "%s %s\n", pad, r.gutter.Render("|"))
	fmt.Fprintf(&b, "%s %s %s\n", r.gutter.Render(lineNo), r.gutter.Render("|"), lineText)
	fmt.Fprintf(&b, "%s %s %s%s", pad, r.gutter.Render("|"), indent, r.caret.Render(strings.Repeat("^", width)))
	return b.String()
}

// locate returns the source line holding span and the byte column of the span
// within it. Spans built without an offset fall back to line/column.
func locate(src string, span item.TaggedSpan) (string, int) {
	offset := span.Pos.Offset
	if offset <= 0 || offset > len(src) {
		offset = offsetOf(src, span.Pos.Line, span.Pos.Column)
	}
	start := strings.LastIndexByte(src[:offset], '\n') + 1
	end := strings.IndexByte(src[offset:], '\n')
	if end < 0 {
		end = len(src)
	} else {
		end += offset
	}
	return src[start:end], offset - start
}

// offsetOf converts a 1-based line and rune column into a byte offset,
// clamped to the source.
func offsetOf(src string, line, column int) int {
	offset := 0
	for l := 1; l < line; l++ {
		next := strings.IndexByte(src[offset:], '\n')
		if next < 0 {
			return len(src)
		}
		offset += next + 1
	}
	for c := 1; c < column && offset < len(src) && src[offset] != '\n'; c++ {
		_, size := utf8.DecodeRuneInString(src[offset:])
		offset += size
	}
	return offset
}
