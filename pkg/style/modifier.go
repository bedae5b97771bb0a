package style

import "strings"

// Modifier is a set of text attributes.
type Modifier uint16

const (
	Bold Modifier = 1 << iota
	Dim
	Italic
	Underlined
	SlowBlink
	RapidBlink
	Reversed
	Hidden
	CrossedOut

	NoModifier Modifier = 0
)

// ModifierInfo describes how a single modifier is spelled in tags
type ModifierInfo struct {
	Modifier Modifier
	Code     string
	Name     string
}

var modifierTable = []ModifierInfo{
	{Bold, "b", "bold"},
	{Dim, "d", "dim"},
	{Italic, "i", "italic"},
	{Underlined, "u", "underlined"},
	{SlowBlink, "sb", "slow-blink"},
	{RapidBlink, "rb", "rapid-blink"},
	{Reversed, "r", "reversed"},
	{Hidden, "h", "hidden"},
	{CrossedOut, "s", "crossed-out"},
}

// AllModifiers returns every modifier with its code and name, in bit order
func AllModifiers() []ModifierInfo {
	out := make([]ModifierInfo, len(modifierTable))
	copy(out, modifierTable)
	return out
}

// ModifierByCode resolves a short alias such as "b" or "sb".
func ModifierByCode(code string) (Modifier, bool) {
	for _, info := range modifierTable {
		if info.Code == code {
			return info.Modifier, true
		}
	}
	return NoModifier, false
}

// ParseModifier accepts either a short code or a full name ("italic",
// "crossed-out"). Names are matched case-insensitively.
func ParseModifier(s string) (Modifier, bool) {
	if m, ok := ModifierByCode(s); ok {
		return m, true
	}
	lower := strings.ToLower(strings.ReplaceAll(s, "_", "-"))
	for _, info := range modifierTable {
		if info.Name == lower {
			return info.Modifier, true
		}
	}
	return NoModifier, false
}

// Has reports whether every modifier in o is present
func (m Modifier) Has(o Modifier) bool {
	return m&o == o
}

// With returns the union of both sets
func (m Modifier) With(o Modifier) Modifier {
	return m | o
}

// Names lists the full names of the modifiers in the set, in bit order
func (m Modifier) Names() []string {
	var names []string
	for _, info := range modifierTable {
		if m.Has(info.Modifier) {
			names = append(names, info.Name)
		}
	}
	return names
}

func (m Modifier) String() string {
	if m == NoModifier {
		return "none"
	}
	return strings.Join(m.Names(), "|")
}
