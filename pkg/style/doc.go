// Package style holds the terminal style values the generator produces and the
// rules for combining them.
//
// A Style is a foreground Color, a background Color and a Modifier set. The zero
// Color means "inherit", so the zero Style is the default look of a terminal.
//
// Tags resolve to an Effect; Merge folds an Effect into an accumulated Style:
//
//	s := style.Fold(style.Style{},
//		style.SetBackground(style.Blue),
//		style.SetForeground(style.Green),
//		style.AddModifier(style.Bold),
//	)
//	// s == style.Style{Fg: style.Green, Bg: style.Blue, Modifiers: style.Bold}
//
// Folding is strictly left to right: later effects win for the same field and
// adding a modifier twice is the same as adding it once.
package style
