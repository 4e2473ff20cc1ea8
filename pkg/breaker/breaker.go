// Package breaker provides word and line break oracles for the tokenizer.
//
// Word boundaries follow UAX #29 (via uniseg), line break opportunities follow
// UAX #14 (via the go-text segmenter), and Compound refines either of them with
// a dictionary of word components.
package breaker

import "unicode"

const (
	// contextRunes is how much text on each side of a position is enough for
	// the Unicode rules to decide a boundary there.
	contextRunes = 8
	// initialSpan is the first window size used to look for a boundary.
	initialSpan = 64
)

// segmentFunc returns every boundary of text treated as a standalone string,
// in increasing order, including 0 and len(text).
type segmentFunc func(text []rune) []int

// windowed turns a segmentFunc into an oracle that only segments a window of
// text around the position it is asked about.
type windowed struct {
	segment segmentFunc
}

// BreakInBetween reports whether there is a boundary between before and after.
func (w windowed) BreakInBetween(before, after []rune) bool {
	if len(before) == 0 || len(after) == 0 {
		return true
	}
	if len(before) > contextRunes {
		before = before[len(before)-contextRunes:]
	}
	if len(after) > contextRunes {
		after = after[:contextRunes]
	}

	joined := make([]rune, 0, len(before)+len(after))
	joined = append(joined, before...)
	joined = append(joined, after...)
	for _, b := range w.segment(joined) {
		if b == len(before) {
			return true
		}
	}
	return false
}

// Next returns the smallest boundary after pos.
func (w windowed) Next(text []rune, pos int) (int, bool) {
	n := len(text)
	if pos >= n {
		return n, true
	}

	lo := max(0, pos-contextRunes)
	for span := initialSpan; ; span *= 2 {
		hi := min(n, pos+span)
		for _, b := range w.segment(text[lo:hi]) {
			abs := lo + b
			if abs <= pos {
				continue
			}
			if hi == n || abs <= hi-contextRunes {
				return abs, abs == n
			}
			break
		}
		if hi == n {
			return n, true
		}
	}
}

// Prev returns the largest boundary before pos.
func (w windowed) Prev(text []rune, pos int) (int, bool) {
	if pos <= 0 {
		return 0, true
	}
	if pos > len(text) {
		pos = len(text)
	}

	hi := min(len(text), pos+contextRunes)
	for span := initialSpan; ; span *= 2 {
		lo := max(0, pos-span)
		found := -1
		for _, b := range w.segment(text[lo:hi]) {
			abs := lo + b
			if abs >= pos {
				break
			}
			if lo == 0 || abs >= lo+contextRunes {
				found = abs
			}
		}
		if found >= 0 {
			return found, found == 0
		}
		if lo == 0 {
			return 0, true
		}
	}
}

// splitSpaceRuns adds a boundary wherever text switches between whitespace
// and anything else, so every whitespace run is a segment of its own and never
// ends up inside a word token.
func splitSpaceRuns(text []rune, bounds []int) []int {
	out := make([]int, 0, len(bounds)*2)
	next := 0
	for i := 0; i <= len(text); i++ {
		onBound := next < len(bounds) && bounds[next] == i
		if onBound {
			next++
		}
		if onBound || (i > 0 && i < len(text) && isSpace(text[i-1]) != isSpace(text[i])) {
			out = append(out, i)
		}
	}
	return out
}

func isSpace(r rune) bool {
	return r != '\u00a0' && unicode.IsSpace(r)
}
