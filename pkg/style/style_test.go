// pkg/style/style_test.go
// TEST TYPE: Unit Test
// DEPENDENCIES: None
// PURPOSE: Test color and modifier parsing and style merging

package style_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/SkwalExe/tui-markup/pkg/style"
)

func TestLookupColorName(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  style.Color
		found bool
	}{
		{name: "lowercase", input: "green", want: style.Green, found: true},
		{name: "mixed_case", input: "LightRed", want: style.LightRed, found: true},
		{name: "dashed", input: "light-blue", want: style.LightBlue, found: true},
		{name: "underscored", input: "dark_gray", want: style.DarkGray, found: true},
		{name: "unknown", input: "qwerty", found: false},
		{name: "empty", input: "", found: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := style.LookupColorName(tt.input)
			assert.Equal(t, tt.found, ok)
			if tt.found {
				assert.Equal(t, tt.want, got)
			}
		})
	}
}

func TestColorNamesRoundTrip(t *testing.T) {
	names := style.ColorNames()
	require.Len(t, names, 16)
	for i, name := range names {
		c, ok := style.LookupColorName(name)
		require.True(t, ok, name)
		assert.Equal(t, style.Named(uint8(i)), c)
		assert.Equal(t, name, c.String())
	}
}

func TestParseColor(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  style.Color
		ok    bool
	}{
		{name: "name", input: "blue", want: style.Blue, ok: true},
		{name: "hex_long", input: "#ff8000", want: style.RGB(0xff, 0x80, 0x00), ok: true},
		{name: "hex_short", input: "#f80", want: style.RGB(0xff, 0x88, 0x00), ok: true},
		{name: "index", input: "208", want: style.Indexed(208), ok: true},
		{name: "index_zero", input: "0", want: style.Indexed(0), ok: true},
		{name: "index_overflow", input: "256", ok: false},
		{name: "bad_hex", input: "#zzzzzz", ok: false},
		{name: "hex_wrong_length", input: "#ff80", ok: false},
		{name: "empty", input: "", ok: false},
		{name: "negative", input: "-1", ok: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := style.ParseColor(tt.input)
			assert.Equal(t, tt.ok, ok)
			if tt.ok {
				assert.Equal(t, tt.want, got)
			}
		})
	}
}

func TestColorString(t *testing.T) {
	assert.Equal(t, "", style.Color{}.String())
	assert.Equal(t, "magenta", style.Magenta.String())
	assert.Equal(t, "42", style.Indexed(42).String())
	assert.Equal(t, "#0a0b0c", style.RGB(10, 11, 12).String())
	assert.False(t, style.Color{}.IsSet())
	assert.True(t, style.Black.IsSet(), "black is a color, not unset")
}

func TestParseModifier(t *testing.T) {
	for _, info := range style.AllModifiers() {
		t.Run(info.Name, func(t *testing.T) {
			byCode, ok := style.ParseModifier(info.Code)
			require.True(t, ok)
			assert.Equal(t, info.Modifier, byCode)

			byName, ok := style.ParseModifier(info.Name)
			require.True(t, ok)
			assert.Equal(t, info.Modifier, byName)

			alias, ok := style.ModifierByCode(info.Code)
			require.True(t, ok)
			assert.Equal(t, info.Modifier, alias)
		})
	}

	_, ok := style.ParseModifier("blink")
	assert.False(t, ok)
	_, ok = style.ModifierByCode("bold")
	assert.False(t, ok, "full names are not bare aliases")

	m, ok := style.ParseModifier("Crossed_Out")
	require.True(t, ok)
	assert.Equal(t, style.CrossedOut, m)
}

func TestModifierSet(t *testing.T) {
	m := style.Bold.With(style.Italic)
	assert.True(t, m.Has(style.Bold))
	assert.True(t, m.Has(style.Bold|style.Italic))
	assert.False(t, m.Has(style.Dim))
	assert.Equal(t, m, m.With(style.Bold), "adding twice is a no-op")
	assert.Equal(t, []string{"bold", "italic"}, m.Names())
	assert.Equal(t, "bold|italic", m.String())
	assert.Equal(t, "none", style.NoModifier.String())
}

func TestMerge(t *testing.T) {
	base := style.Style{Fg: style.Red, Bg: style.Black, Modifiers: style.Dim}

	tests := []struct {
		name   string
		effect style.Effect
		want   style.Style
	}{
		{
			name:   "foreground_overwrites",
			effect: style.SetForeground(style.Green),
			want:   style.Style{Fg: style.Green, Bg: style.Black, Modifiers: style.Dim},
		},
		{
			name:   "background_overwrites",
			effect: style.SetBackground(style.Blue),
			want:   style.Style{Fg: style.Red, Bg: style.Blue, Modifiers: style.Dim},
		},
		{
			name:   "modifier_unions",
			effect: style.AddModifier(style.Bold),
			want:   style.Style{Fg: style.Red, Bg: style.Black, Modifiers: style.Dim | style.Bold},
		},
		{
			name:   "replace_patches_set_fields",
			effect: style.Replace(style.Style{Bg: style.White, Modifiers: style.Underlined}),
			want:   style.Style{Fg: style.Red, Bg: style.White, Modifiers: style.Dim | style.Underlined},
		},
		{
			name:   "none_is_identity",
			effect: style.Effect{},
			want:   base,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, style.Merge(base, tt.effect))
		})
	}
}

func TestFold(t *testing.T) {
	t.Run("last_writer_wins", func(t *testing.T) {
		got := style.Fold(style.Style{}, style.SetBackground(style.Blue), style.SetBackground(style.Red))
		assert.Equal(t, style.Style{Bg: style.Red}, got)
	})

	t.Run("repeat_is_idempotent", func(t *testing.T) {
		once := style.Fold(style.Style{}, style.AddModifier(style.Bold), style.SetForeground(style.Green))
		twice := style.Fold(style.Style{},
			style.AddModifier(style.Bold), style.AddModifier(style.Bold),
			style.SetForeground(style.Green), style.SetForeground(style.Green))
		assert.Equal(t, once, twice)
	})

	t.Run("replace_from_empty_is_verbatim", func(t *testing.T) {
		custom := style.Style{Fg: style.Blue, Bg: style.Green, Modifiers: style.Bold}
		assert.Equal(t, custom, style.Fold(style.Style{}, style.Replace(custom)))
	})
}

func TestStyleString(t *testing.T) {
	assert.Equal(t, "default", style.Style{}.String())
	assert.True(t, style.Style{}.IsZero())
	s := style.Style{Fg: style.Green, Bg: style.Indexed(17), Modifiers: style.Bold}
	assert.Equal(t, "fg=green bg=17 mod=bold", s.String())
	assert.False(t, s.IsZero())
}
