package tokenizer

import "unicode"

const (
	nbsp = '\u00a0'
	// maxUnibyte is the largest code point that does not set the multibyte flag.
	maxUnibyte = 127
	// textGrowStep is how much a scanning loop grows the buffer when it fills up.
	textGrowStep = 1000
)

// charClass is the dispatch class of the first character of a token.
type charClass int

const (
	classText charClass = iota
	classSpace
	classTabOrNewline
	numClasses
)

// isSpace reports collapsible whitespace. The no-break space is a word
// character here; wide scans turn it into a plain space while copying.
func isSpace(r rune) bool {
	return r != nbsp && unicode.IsSpace(r)
}

func isTabOrNewline(r rune) bool {
	return r == '\t' || r == '\n'
}

func classify(r rune) charClass {
	switch {
	case isTabOrNewline(r):
		return classTabOrNewline
	case isSpace(r):
		return classSpace
	default:
		return classText
	}
}
