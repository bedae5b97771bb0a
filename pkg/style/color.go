package style

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/lucasb-eyer/go-colorful"
)

// ColorKind tells how a Color is encoded. The zero kind means the color is unset
// and the field is inherited.
type ColorKind uint8

const (
	ColorUnset ColorKind = iota
	ColorNamed
	ColorIndexed
	ColorRGB
)

// Color is a terminal color. The zero value is "unset".
type Color struct {
	Kind    ColorKind
	Index   uint8
	R, G, B uint8
}

// colorNames holds the 16 ANSI names in palette order
var colorNames = [...]string{
	"black", "red", "green", "yellow", "blue", "magenta", "cyan", "gray",
	"darkgray", "lightred", "lightgreen", "lightyellow", "lightblue", "lightmagenta", "lightcyan", "white",
}

// Named palette colors
var (
	Black        = Named(0)
	Red          = Named(1)
	Green        = Named(2)
	Yellow       = Named(3)
	Blue         = Named(4)
	Magenta      = Named(5)
	Cyan         = Named(6)
	Gray         = Named(7)
	DarkGray     = Named(8)
	LightRed     = Named(9)
	LightGreen   = Named(10)
	LightYellow  = Named(11)
	LightBlue    = Named(12)
	LightMagenta = Named(13)
	LightCyan    = Named(14)
	White        = Named(15)
)

// Named returns one of the 16 ANSI colors. Indexes above 15 wrap.
func Named(index uint8) Color {
	return Color{Kind: ColorNamed, Index: index % uint8(len(colorNames))}
}

// Indexed returns a 256-color palette entry
func Indexed(index uint8) Color {
	return Color{Kind: ColorIndexed, Index: index}
}

// RGB returns a true color
func RGB(r, g, b uint8) Color {
	return Color{Kind: ColorRGB, R: r, G: g, B: b}
}

// IsSet reports whether the color overrides an inherited one
func (c Color) IsSet() bool {
	return c.Kind != ColorUnset
}

// String returns the canonical spelling accepted by ParseColor
func (c Color) String() string {
	switch c.Kind {
	case ColorNamed:
		return colorNames[c.Index]
	case ColorIndexed:
		return strconv.Itoa(int(c.Index))
	case ColorRGB:
		return fmt.Sprintf("#%02x%02x%02x", c.R, c.G, c.B)
	default:
		return ""
	}
}

// ColorNames lists the bare color names in palette order
func ColorNames() []string {
	names := make([]string, len(colorNames))
	copy(names, colorNames[:])
	return names
}

// LookupColorName resolves one of the 16 names. Matching ignores case and any
// '-' or '_' so "light-red" and "LightRed" both work.
func LookupColorName(name string) (Color, bool) {
	normalized := strings.ToLower(strings.NewReplacer("-", "", "_", "").Replace(name))
	for i, n := range colorNames {
		if n == normalized {
			return Named(uint8(i)), true
		}
	}
	return Color{}, false
}

// ParseHex parses "#rrggbb" or "#rgb"
func ParseHex(s string) (Color, bool) {
	if !strings.HasPrefix(s, "#") || (len(s) != 7 && len(s) != 4) {
		return Color{}, false
	}
	c, err := colorful.Hex(s)
	if err != nil {
		return Color{}, false
	}
	r, g, b := c.RGB255()
	return RGB(r, g, b), true
}

// ParseColor accepts a color name, a hex triplet or a palette index 0-255.
func ParseColor(s string) (Color, bool) {
	if c, ok := LookupColorName(s); ok {
		return c, true
	}
	if c, ok := ParseHex(s); ok {
		return c, true
	}
	if s == "" {
		return Color{}, false
	}
	n, err := strconv.ParseUint(s, 10, 8)
	if err != nil {
		return Color{}, false
	}
	return Indexed(uint8(n)), true
}
