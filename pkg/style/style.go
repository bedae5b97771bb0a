package style

import "strings"

// Style is the accumulated look of a piece of text. Unset colors mean "inherit".
// Style values are comparable with ==.
type Style struct {
	Fg        Color
	Bg        Color
	Modifiers Modifier
}

// Foreground returns a copy with the foreground replaced
func (s Style) Foreground(c Color) Style {
	s.Fg = c
	return s
}

// Background returns a copy with the background replaced
func (s Style) Background(c Color) Style {
	s.Bg = c
	return s
}

// Add returns a copy with m added to the modifier set
func (s Style) Add(m Modifier) Style {
	s.Modifiers = s.Modifiers.With(m)
	return s
}

// Patch applies every field o sets on top of s. Colors o leaves unset keep the
// value from s; modifiers are added.
func (s Style) Patch(o Style) Style {
	if o.Fg.IsSet() {
		s.Fg = o.Fg
	}
	if o.Bg.IsSet() {
		s.Bg = o.Bg
	}
	s.Modifiers = s.Modifiers.With(o.Modifiers)
	return s
}

// IsZero reports whether nothing is set
func (s Style) IsZero() bool {
	return s == Style{}
}

// String is meant for logs and test failures, e.g. "fg=green bg=blue mod=bold".
func (s Style) String() string {
	var parts []string
	if s.Fg.IsSet() {
		parts = append(parts, "fg="+s.Fg.String())
	}
	if s.Bg.IsSet() {
		parts = append(parts, "bg="+s.Bg.String())
	}
	if s.Modifiers != NoModifier {
		parts = append(parts, "mod="+s.Modifiers.String())
	}
	if len(parts) == 0 {
		return "default"
	}
	return strings.Join(parts, " ")
}
