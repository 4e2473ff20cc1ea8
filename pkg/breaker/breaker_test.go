package breaker

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWordBoundaries(t *testing.T) {
	tests := []struct {
		input string
		want  []int
	}{
		{"", []int{0}},
		{"Œnce xy\tzy ", []int{0, 4, 5, 7, 8, 10, 11}},
		{"hello, world", []int{0, 5, 6, 7, 12}},
		{"can't stop", []int{0, 5, 6, 10}},
	}

	for _, tt := range tests {
		got := wordBoundaries([]rune(tt.input))
		assert.Equal(t, tt.want, got, "wordBoundaries(%q)", tt.input)
	}
}

func TestLineBoundaries_SplitsSpace(t *testing.T) {
	tests := []struct {
		input string
		want  []int
	}{
		{"once upon a time", []int{0, 4, 5, 9, 10, 11, 12, 16}},
		// No break opportunity before the full stop, yet the space still
		// stands alone.
		{"Œ see .NET", []int{0, 1, 2, 5, 6, 10}},
	}

	for _, tt := range tests {
		got := lineBoundaries([]rune(tt.input))
		assert.Equal(t, tt.want, got, "lineBoundaries(%q)", tt.input)
	}
}

func TestWordBoundaries_SpaceBeforeMark(t *testing.T) {
	got := wordBoundaries([]rune(" \u0301a"))
	assert.Equal(t, []int{0, 1, 2, 3}, got)
}

func TestSplitSpaceRuns(t *testing.T) {
	text := []rune("ab  c\u00a0 d")
	got := splitSpaceRuns(text, []int{0, 4, 8})
	// The no-break space stays with its word.
	assert.Equal(t, []int{0, 2, 4, 6, 7, 8}, got)

	assert.Equal(t, []int{0}, splitSpaceRuns(nil, []int{0}))
}

func TestWord_BreakInBetween(t *testing.T) {
	w := NewWord()

	tests := []struct {
		before, after string
		want          bool
	}{
		{"x", "y\tzy ", false},
		{"e", " xy", true},
		{"Œ", "nce", false},
		{"", "abc", true},
		{"abc", "", true},
		{"7", "8", false},
	}

	for _, tt := range tests {
		got := w.BreakInBetween([]rune(tt.before), []rune(tt.after))
		assert.Equal(t, tt.want, got, "BreakInBetween(%q, %q)", tt.before, tt.after)
	}
}

func TestWord_NextPrev(t *testing.T) {
	w := NewWord()
	text := []rune("Œnce xy\tzy ")

	next, more := w.Next(text, 1)
	assert.Equal(t, 4, next)
	assert.False(t, more)

	next, more = w.Next(text, 10)
	assert.Equal(t, 11, next)
	assert.True(t, more)

	prev, more := w.Prev(text, 9)
	assert.Equal(t, 8, prev)
	assert.False(t, more)

	prev, more = w.Prev(text, 3)
	assert.Equal(t, 0, prev)
	assert.True(t, more)
}

// The windowed search must agree with segmenting the whole text at once.
func TestWindowed_MatchesFullSegmentation(t *testing.T) {
	text := []rune(strings.Repeat("Grüße aus Köln, 42.5 km — フジテレビの音楽番組 ", 12))

	oracles := map[string]struct {
		oracle Oracle
		full   segmentFunc
	}{
		"word": {NewWord(), wordBoundaries},
		"line": {NewLine(), lineBoundaries},
	}

	for name, o := range oracles {
		bounds := o.full(text)
		for pos := 0; pos < len(text); pos++ {
			want := nextIn(bounds, pos)
			got, _ := o.oracle.Next(text, pos)
			require.Equal(t, want, got, "%s Next(%d)", name, pos)
		}
		for pos := 1; pos <= len(text); pos++ {
			want := prevIn(bounds, pos)
			got, _ := o.oracle.Prev(text, pos)
			require.Equal(t, want, got, "%s Prev(%d)", name, pos)
		}
	}
}

func nextIn(bounds []int, pos int) int {
	for _, b := range bounds {
		if b > pos {
			return b
		}
	}
	return bounds[len(bounds)-1]
}

func prevIn(bounds []int, pos int) int {
	best := 0
	for _, b := range bounds {
		if b < pos {
			best = b
		}
	}
	return best
}
