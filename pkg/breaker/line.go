package breaker

import (
	"github.com/go-text/typesetting/segmenter"
)

// Line finds UAX #14 line break opportunities. Whitespace inside a line
// segment is split off into segments of its own, so words end before the
// space that follows them.
type Line struct {
	windowed
}

// NewLine returns a line break oracle. Each query segments its own window, so
// a Line may be shared between goroutines.
func NewLine() *Line {
	return &Line{windowed{segment: lineBoundaries}}
}

func lineBoundaries(text []rune) []int {
	var seg segmenter.Segmenter
	seg.Init(text)

	bounds := []int{0}
	iter := seg.LineIterator()
	for iter.Next() {
		line := iter.Line()
		bounds = append(bounds, line.Offset+len(line.Text))
	}
	return splitSpaceRuns(text, bounds)
}
