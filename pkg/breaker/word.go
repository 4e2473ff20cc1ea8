package breaker

import (
	"unicode/utf8"

	"github.com/rivo/uniseg"
)

// Word finds UAX #29 word boundaries, with whitespace always split from what
// it touches. It holds no state and may be shared.
type Word struct {
	windowed
}

// NewWord returns a word break oracle.
func NewWord() *Word {
	return &Word{windowed{segment: wordBoundaries}}
}

func wordBoundaries(text []rune) []int {
	bounds := []int{0}
	rest := string(text)
	state := -1
	pos := 0

	var word string
	for len(rest) > 0 {
		word, rest, state = uniseg.FirstWordInString(rest, state)
		pos += utf8.RuneCountInString(word)
		bounds = append(bounds, pos)
	}
	return splitSpaceRuns(text, bounds)
}
