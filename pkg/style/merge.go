package style

// EffectKind identifies what a resolved tag does to a style
type EffectKind uint8

const (
	EffectNone EffectKind = iota
	EffectForeground
	EffectBackground
	EffectModifier
	EffectReplace
)

// Effect is the contribution of a single resolved tag.
type Effect struct {
	Kind     EffectKind
	Color    Color
	Modifier Modifier
	Style    Style
}

// SetForeground overwrites the foreground color
func SetForeground(c Color) Effect {
	return Effect{Kind: EffectForeground, Color: c}
}

// SetBackground overwrites the background color
func SetBackground(c Color) Effect {
	return Effect{Kind: EffectBackground, Color: c}
}

// AddModifier adds m to the modifier set
func AddModifier(m Modifier) Effect {
	return Effect{Kind: EffectModifier, Modifier: m}
}

// Replace applies a complete style, as returned by a custom resolver
func Replace(s Style) Effect {
	return Effect{Kind: EffectReplace, Style: s}
}

// Merge folds a single effect into base. Color overwrites always win, modifier
// additions are idempotent and a replacement patches every field it sets.
func Merge(base Style, e Effect) Style {
	switch e.Kind {
	case EffectForeground:
		return base.Foreground(e.Color)
	case EffectBackground:
		return base.Background(e.Color)
	case EffectModifier:
		return base.Add(e.Modifier)
	case EffectReplace:
		return base.Patch(e.Style)
	default:
		return base
	}
}

// Fold merges effects left to right
func Fold(base Style, effects ...Effect) Style {
	for _, e := range effects {
		base = Merge(base, e)
	}
	return base
}
