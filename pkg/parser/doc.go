// Package parser reads tui markup into an item tree.
//
// Markup is plain text with elements of the form
//
//	<tag1,tag2 content>
//
// The tag list is separated from the content by a single space, which is not
// part of the content. Content may contain further elements. A literal '<', '>'
// or '\' is written as "\<", "\>" or "\\"; any other backslash, including one
// ending the input, is kept as is.
//
// Every tag keeps the exact position of its first byte so that an invalid tag
// can be pointed at in the original source.
package parser
