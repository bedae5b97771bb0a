package config

import (
	"fmt"
	"sort"

	"go.uber.org/multierr"

	"github.com/SkwalExe/tui-markup/pkg/errors"
	"github.com/SkwalExe/tui-markup/pkg/resolver"
	"github.com/SkwalExe/tui-markup/pkg/style"
)

// Color modes for output.color
const (
	ColorAuto   = "auto"
	ColorAlways = "always"
	ColorNever  = "never"
)

// Config is the complete tuimarkup configuration
type Config struct {
	Output OutputConfig      `koanf:"output" toml:"output"`
	Tags   map[string]TagDef `koanf:"tags" toml:"tags,omitempty"`
}

// OutputConfig controls how rendered markup is written
type OutputConfig struct {
	Format string `koanf:"format" toml:"format"`
	Color  string `koanf:"color" toml:"color"`
}

// TagDef defines a custom tag. Empty fields leave the inherited value alone.
type TagDef struct {
	Fg        string   `koanf:"fg" toml:"fg,omitempty"`
	Bg        string   `koanf:"bg" toml:"bg,omitempty"`
	Modifiers []string `koanf:"modifiers" toml:"modifiers,omitempty"`
}

// Style converts the definition, rejecting unknown colors and modifiers
func (d TagDef) Style() (style.Style, error) {
	var s style.Style
	if d.Fg != "" {
		c, ok := style.ParseColor(d.Fg)
		if !ok {
			return style.Style{}, fmt.Errorf("unknown foreground color %q", d.Fg)
		}
		s.Fg = c
	}
	if d.Bg != "" {
		c, ok := style.ParseColor(d.Bg)
		if !ok {
			return style.Style{}, fmt.Errorf("unknown background color %q", d.Bg)
		}
		s.Bg = c
	}
	for _, name := range d.Modifiers {
		m, ok := style.ParseModifier(name)
		if !ok {
			return style.Style{}, fmt.Errorf("unknown modifier %q", name)
		}
		s.Modifiers = s.Modifiers.With(m)
	}
	return s, nil
}

// Resolver builds the custom tag table. Every invalid definition is reported,
// not only the first one.
func (c *Config) Resolver() (resolver.Map, error) {
	names := make([]string, 0, len(c.Tags))
	for name := range c.Tags {
		names = append(names, name)
	}
	sort.Strings(names)

	table := make(resolver.Map, len(names))
	var errs error
	for _, name := range names {
		s, err := c.Tags[name].Style()
		if err != nil {
			errs = multierr.Append(errs, fmt.Errorf("tag %q: %w", name, err))
			continue
		}
		table[name] = s
	}
	if errs != nil {
		return nil, errors.Wrap(errs, errors.ErrConfigInvalid, "invalid custom tags").
			WithDetail("count", len(multierr.Errors(errs)))
	}
	return table, nil
}

// Validate checks the output section
func (c *Config) Validate() error {
	switch c.Output.Color {
	case ColorAuto, ColorAlways, ColorNever:
	default:
		return errors.Newf(errors.ErrConfigInvalid, "output.color must be auto, always or never, got %q", c.Output.Color).
			WithDetail("key", "output.color")
	}
	return nil
}
