// Package generator walks an item tree and flattens it into styled spans.
//
// Each element folds its tags, left to right, into the style inherited from its
// parent; the result is what its children inherit. Leaves become spans carrying
// the style in effect at that point:
//
//	g := generator.Default()
//	spans, err := g.Item(item.Elem([]string{"bg:blue"},
//		item.Text("one "),
//		item.Elem([]string{"green"}, item.Text("two")),
//	), nil)
//	// spans: ("one ", bg=blue), ("two", fg=green bg=blue)
//
// Generation is fail-fast: the first unresolvable tag in depth-first order,
// own tags before children, is returned as an *errors.GenError and no spans
// are produced.
package generator
