package generator

import (
	"fmt"
	"strings"

	"github.com/rs/zerolog"

	"github.com/SkwalExe/tui-markup/pkg/item"
	"github.com/SkwalExe/tui-markup/pkg/resolver"
	"github.com/SkwalExe/tui-markup/pkg/style"
)

// StyledSpan is a piece of text with its fully resolved style
type StyledSpan struct {
	Text  string
	Style style.Style
}

// Span is shorthand for building a StyledSpan
func Span(text string, s style.Style) StyledSpan {
	return StyledSpan{Text: text, Style: s}
}

// Generator flattens item trees into styled spans. It holds configuration only
// and is safe for concurrent use.
type Generator struct {
	resolver resolver.Resolver
	logger   zerolog.Logger
}

// Option configures a Generator
type Option func(*Generator)

// WithCustom sets the capability consulted for tags the built-in grammar
// does not know.
func WithCustom(custom resolver.Resolver) Option {
	return func(g *Generator) {
		g.resolver = resolver.New(custom)
	}
}

// WithLogger sets the logger tag resolution is traced to. The default
// discards everything.
func WithLogger(logger zerolog.Logger) Option {
	return func(g *Generator) {
		g.logger = logger
	}
}

// New creates a generator. Without WithCustom only built-in tags resolve.
func New(opts ...Option) *Generator {
	g := &Generator{
		resolver: resolver.New(resolver.None),
		logger:   zerolog.Nop(),
	}
	for _, opt := range opts {
		opt(g)
	}
	return g
}

// Default returns a generator that knows only the built-in tags
func Default() *Generator {
	return New()
}

// Item flattens node. inherited is the style of the enclosing element and may
// be nil at the root. The first tag that fails to resolve, scanning an
// element's own tags before its children, aborts the call with a
// *errors.GenError and no spans. A nil node, or a nil *item.Element, yields
// no spans.
func (g *Generator) Item(node item.Item, inherited *style.Style) ([]StyledSpan, error) {
	var base style.Style
	if inherited != nil {
		base = *inherited
	}
	spans, err := g.walk(node, base, nil)
	if err != nil {
		return nil, err
	}
	return spans, nil
}

// Generate flattens a sequence of top-level items, as produced by the parser
func (g *Generator) Generate(items []item.Item) ([]StyledSpan, error) {
	var spans []StyledSpan
	for _, it := range items {
		var err error
		spans, err = g.walk(it, style.Style{}, spans)
		if err != nil {
			return nil, err
		}
	}
	return spans, nil
}

func (g *Generator) walk(node item.Item, inherited style.Style, out []StyledSpan) ([]StyledSpan, error) {
	switch n := node.(type) {
	case nil:
		return out, nil
	case item.PlainText:
		return append(out, StyledSpan{Text: string(n), Style: inherited}), nil
	case *item.Element:
		if n == nil {
			return out, nil
		}
		effective, err := g.apply(n.Tags, inherited)
		if err != nil {
			return nil, err
		}
		for _, child := range n.Children {
			out, err = g.walk(child, effective, out)
			if err != nil {
				return nil, err
			}
		}
		return out, nil
	default:
		panic(fmt.Sprintf("generator: unexpected item type %T", node))
	}
}

// apply folds tags left to right starting from inherited
func (g *Generator) apply(tags []item.TaggedSpan, inherited style.Style) (style.Style, error) {
	current := inherited
	for _, tag := range tags {
		effect, err := resolver.Resolve(tag, g.resolver)
		if err != nil {
			g.logger.Trace().
				Str("tag", tag.Fragment).
				Stringer("pos", tag.Pos).
				Msg("Tag did not resolve")
			return style.Style{}, err
		}
		current = style.Merge(current, effect)
		g.logger.Trace().
			Str("tag", tag.Fragment).
			Stringer("style", current).
			Msg("Tag resolved")
	}
	return current, nil
}

// Lines splits spans at newlines. Empty fragments are dropped, but a line
// with no text is kept as an empty slice.
func Lines(spans []StyledSpan) [][]StyledSpan {
	lines := [][]StyledSpan{nil}
	for _, span := range spans {
		parts := strings.Split(span.Text, "\n")
		for i, part := range parts {
			if i > 0 {
				lines = append(lines, nil)
			}
			if part == "" {
				continue
			}
			last := len(lines) - 1
			lines[last] = append(lines[last], StyledSpan{Text: part, Style: span.Style})
		}
	}
	return lines
}

// Plain concatenates the text of spans, dropping all styling
func Plain(spans []StyledSpan) string {
	var b strings.Builder
	for _, span := range spans {
		b.WriteString(span.Text)
	}
	return b.String()
}
