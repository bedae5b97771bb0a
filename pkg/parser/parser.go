package parser

import (
	stderrors "errors"
	"strings"
	"unicode/utf8"

	"github.com/alecthomas/participle/v2"
	"github.com/alecthomas/participle/v2/lexer"

	"github.com/SkwalExe/tui-markup/pkg/errors"
	"github.com/SkwalExe/tui-markup/pkg/item"
)

// document is the participle grammar for markup.
type document struct {
	Nodes []*node `parser:"@@*"`
}

type node struct {
	Text    *string  `parser:"  @(Text | Escape)"`
	Element *element `parser:"| @@"`
}

type element struct {
	Pos   lexer.Position
	Open  string  `parser:"@Open"`
	Nodes []*node `parser:"@@*"`
	Close string  `parser:"@Close"`
}

// markupLexer tokenizes "<tags content>" markup. Open carries the whole tag
// list including the leading '<' and at most one separating space, so each
// tag's position can be derived from the token position.
var markupLexer = lexer.MustStateful(lexer.Rules{
	"Root": {
		{Name: "Escape", Pattern: `\\[\\<>]`},
		{Name: "Open", Pattern: `<[^\s<>\\]+ ?`, Action: lexer.Push("Element")},
		{Name: "Text", Pattern: `(?:[^\\<>]|\\[^\\<>]|\\$)+`},
	},
	"Element": {
		{Name: "Close", Pattern: `>`, Action: lexer.Pop()},
		lexer.Include("Root"),
	},
})

// markupParser is the participle parser for markup documents
var markupParser = participle.MustBuild[document](
	participle.Lexer(markupLexer),
	participle.Map(unescape, "Escape"),
)

func unescape(token lexer.Token) (lexer.Token, error) {
	token.Value = token.Value[1:]
	return token, nil
}

// Parse parses markup into top-level items. filename is only used in
// positions and may be empty.
func Parse(filename, src string) ([]item.Item, error) {
	doc, err := markupParser.ParseString(filename, src)
	if err != nil {
		return nil, wrapParseError(filename, err)
	}
	return convertNodes(doc.Nodes), nil
}

// MustParse is Parse for fixed markup in tests and examples
func MustParse(src string) []item.Item {
	items, err := Parse("", src)
	if err != nil {
		panic(err)
	}
	return items
}

func wrapParseError(filename string, err error) error {
	wrapped := errors.Wrap(err, errors.ErrParse, "invalid markup").
		WithDetail("file", filename)
	var perr participle.Error
	if stderrors.As(err, &perr) {
		pos := perr.Position()
		wrapped = wrapped.
			WithDetail("line", pos.Line).
			WithDetail("column", pos.Column).
			WithDetail("offset", pos.Offset)
	}
	return wrapped
}

// convertNodes maps grammar nodes to items, merging runs of text and escapes
// into a single PlainText.
func convertNodes(nodes []*node) []item.Item {
	var (
		items []item.Item
		text  strings.Builder
	)
	flush := func() {
		if text.Len() > 0 {
			items = append(items, item.PlainText(text.String()))
			text.Reset()
		}
	}
	for _, n := range nodes {
		if n.Text != nil {
			text.WriteString(*n.Text)
			continue
		}
		flush()
		items = append(items, convertElement(n.Element))
	}
	flush()
	return items
}

func convertElement(e *element) *item.Element {
	return &item.Element{
		Tags:     splitTags(e.Open, e.Pos),
		Children: convertNodes(e.Nodes),
	}
}

// splitTags cuts "<a,b " into spans positioned at the first byte of each tag
func splitTags(open string, pos lexer.Position) []item.TaggedSpan {
	list := strings.TrimSuffix(strings.TrimPrefix(open, "<"), " ")
	parts := strings.Split(list, ",")
	spans := make([]item.TaggedSpan, 0, len(parts))
	byteOffset := 1
	runeOffset := 1
	for _, part := range parts {
		spans = append(spans, item.TaggedSpan{
			Fragment: part,
			Pos: item.Position{
				Filename: pos.Filename,
				Offset:   pos.Offset + byteOffset,
				Line:     pos.Line,
				Column:   pos.Column + runeOffset,
			},
		})
		byteOffset += len(part) + 1
		runeOffset += utf8.RuneCountInString(part) + 1
	}
	return spans
}
