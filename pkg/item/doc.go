// Package item defines the tree of tagged text the markup parser produces.
//
// The tree is read-only for everything downstream of the parser. An Element owns
// its children; there are no back references, so a tree is always finite and
// acyclic.
//
//	<bg:blue one <green two>>
//
// parses to
//
//	&Element{Tags: [bg:blue], Children: [PlainText("one "), &Element{Tags: [green], Children: [PlainText("two")]}]}
package item
