package item

import "fmt"

// Position locates a tag in the markup it was parsed from.
// Line and Column are 1-based; Offset is a byte offset into the source.
type Position struct {
	Filename string
	Offset   int
	Line     int
	Column   int
}

// String renders the position as file:line:col, omitting an empty filename
func (p Position) String() string {
	if p.Filename == "" {
		return fmt.Sprintf("%d:%d", p.Line, p.Column)
	}
	return fmt.Sprintf("%s:%d:%d", p.Filename, p.Line, p.Column)
}

// TaggedSpan is a tag's literal text plus where it came from.
type TaggedSpan struct {
	Fragment string
	Pos      Position
}

// NewSpan creates a span on the given line with no further position data.
func NewSpan(fragment string, line int) TaggedSpan {
	return TaggedSpan{Fragment: fragment, Pos: Position{Line: line, Column: 1}}
}

// Item is a node of the tree produced by the markup parser.
// It is either PlainText or *Element.
type Item interface {
	isItem()
}

// PlainText is a leaf holding literal text.
type PlainText string

// Element applies its tags, in order, to every child.
type Element struct {
	Tags     []TaggedSpan
	Children []Item
}

func (PlainText) isItem() {}
func (*Element) isItem()  {}

// Text returns a PlainText item
func Text(s string) Item {
	return PlainText(s)
}

// Elem builds an element whose tags are all reported on line 1.
func Elem(tags []string, children ...Item) Item {
	spans := make([]TaggedSpan, len(tags))
	for i, t := range tags {
		spans[i] = NewSpan(t, 1)
	}
	return &Element{Tags: spans, Children: children}
}
