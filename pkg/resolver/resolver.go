package resolver

import (
	"strings"

	"github.com/SkwalExe/tui-markup/pkg/errors"
	"github.com/SkwalExe/tui-markup/pkg/item"
	"github.com/SkwalExe/tui-markup/pkg/style"
)

// Resolver turns a single tag into a style effect.
type Resolver interface {
	Resolve(tag string) (style.Effect, bool)
}

// Func is a caller-supplied capability mapping a tag to a complete Style.
// A matched Style replaces the effect of the tag rather than being decoded
// field by field.
type Func func(tag string) (style.Style, bool)

// Resolve implements Resolver. A nil Func matches nothing.
func (f Func) Resolve(tag string) (style.Effect, bool) {
	if f == nil {
		return style.Effect{}, false
	}
	s, ok := f(tag)
	if !ok {
		return style.Effect{}, false
	}
	return style.Replace(s), true
}

// None never matches. It is the default custom capability.
var None Resolver = Func(func(string) (style.Style, bool) { return style.Style{}, false })

// Map is a custom capability backed by a fixed table
type Map map[string]style.Style

// Resolve implements Resolver
func (m Map) Resolve(tag string) (style.Effect, bool) {
	s, ok := m[tag]
	if !ok {
		return style.Effect{}, false
	}
	return style.Replace(s), true
}

// Chain tries each resolver in order and returns the first match.
type Chain []Resolver

// Resolve implements Resolver
func (c Chain) Resolve(tag string) (style.Effect, bool) {
	for _, r := range c {
		if r == nil {
			continue
		}
		if e, ok := r.Resolve(tag); ok {
			return e, true
		}
	}
	return style.Effect{}, false
}

// New layers the built-in grammar in front of custom. Built-in forms always
// win, so a custom tag named like a color or a modifier alias is never
// reached. A prefixed tag whose value does not parse, like fg:mauve, still
// falls through to custom.
func New(custom Resolver) Resolver {
	if custom == nil {
		custom = None
	}
	return Chain{Builtin{}, custom}
}

// Builtin implements the fixed tag grammar:
//
//	fg:<color>   foreground
//	bg:<color>   background
//	mod:<code>   modifier by code or name
//	<code>       modifier alias (b, d, i, u, sb, rb, r, h, s)
//	<color>      foreground, by name or #hex
type Builtin struct{}

// Resolve implements Resolver
func (Builtin) Resolve(tag string) (style.Effect, bool) {
	if v, ok := strings.CutPrefix(tag, "fg:"); ok {
		if c, ok := style.ParseColor(v); ok {
			return style.SetForeground(c), true
		}
		return style.Effect{}, false
	}
	if v, ok := strings.CutPrefix(tag, "bg:"); ok {
		if c, ok := style.ParseColor(v); ok {
			return style.SetBackground(c), true
		}
		return style.Effect{}, false
	}
	if v, ok := strings.CutPrefix(tag, "mod:"); ok {
		if m, ok := style.ParseModifier(v); ok {
			return style.AddModifier(m), true
		}
		return style.Effect{}, false
	}
	if m, ok := style.ModifierByCode(tag); ok {
		return style.AddModifier(m), true
	}
	if c, ok := style.LookupColorName(tag); ok {
		return style.SetForeground(c), true
	}
	if c, ok := style.ParseHex(tag); ok {
		return style.SetForeground(c), true
	}
	return style.Effect{}, false
}

// Resolve resolves one tagged span against r, failing with an InvalidTag
// GenError that carries the span untouched.
func Resolve(tag item.TaggedSpan, r Resolver) (style.Effect, error) {
	if e, ok := r.Resolve(tag.Fragment); ok {
		return e, nil
	}
	return style.Effect{}, errors.NewGenError(tag, errors.InvalidTag)
}
