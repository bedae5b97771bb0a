// Package render turns styled spans into something a terminal or another
// program can consume.
//
// Terminal output goes through lipgloss, which degrades colors to whatever the
// renderer's termenv profile supports (and drops them entirely for
// termenv.Ascii). TcellStyle and Cells serve tcell based UIs. JSON and YAML
// emit a stable SpanDoc list for tooling.
//
// The format is chosen with ParseFormat and, for "auto", DetectFormat, which
// honors NO_COLOR and falls back to plain text when the output is not a
// terminal.
package render
