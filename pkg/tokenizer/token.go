package tokenizer

// Token is the result of one scan step.
type Token struct {
	// Text views the scratch buffer and is only valid until the next scan call.
	Text []rune
	// WordLen is the number of characters written to Text.
	WordLen int
	// ContentLen is the number of characters consumed from the run. It exceeds
	// WordLen when whitespace was collapsed.
	ContentLen int
	// IsWhitespace marks whitespace tokens.
	IsWhitespace bool
	// Continues is set when the break oracle's search reached the edge of the
	// run, so the word may carry on into an adjacent run.
	Continues bool
}

// String copies the token text.
func (t Token) String() string {
	return string(t.Text)
}
