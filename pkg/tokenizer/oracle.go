package tokenizer

// BreakOracle answers word- or line-break placement questions about a run.
// Implementations must be safe for concurrent use if they are shared between
// tokenizers on different goroutines.
type BreakOracle interface {
	// BreakInBetween reports whether there is a break between the last rune of
	// before and the first rune of after.
	BreakInBetween(before, after []rune) bool
	// Next returns the smallest break position greater than pos, or len(text).
	// more is set when the search ran into the end of text.
	Next(text []rune, pos int) (next int, more bool)
	// Prev returns the largest break position less than pos, or 0. more is set
	// when the search ran into the start of text.
	Prev(text []rune, pos int) (prev int, more bool)
}

// CaseConverter maps the case of a span in place, one rune for one rune.
type CaseConverter interface {
	// ToTitle title-cases the leading rune of span when isWordStart is set.
	ToTitle(span []rune, isWordStart bool)
	ToUpper(span []rune)
	ToLower(span []rune)
}
