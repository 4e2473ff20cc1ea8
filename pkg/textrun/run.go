// Package textrun holds immutable runs of text in either a narrow (one byte per
// character, Latin-1) or a wide (one rune per character) representation.
package textrun

import (
	"golang.org/x/text/unicode/norm"
)

// MaxNarrow is the largest code point a narrow run can store.
const MaxNarrow = 0xFF

// Run is an immutable sequence of characters. Exactly one of narrow or wide is
// used, depending on IsWide.
type Run struct {
	narrow []byte
	wide   []rune
	isWide bool
}

// New stores s narrow when every code point fits in a byte, wide otherwise.
func New(s string) *Run {
	runes := []rune(s)
	for _, r := range runes {
		if r > MaxNarrow {
			return &Run{wide: runes, isWide: true}
		}
	}
	narrow := make([]byte, len(runes))
	for i, r := range runes {
		narrow[i] = byte(r)
	}
	return &Run{narrow: narrow}
}

// NewNormalized applies the given normalization form before storing s.
func NewNormalized(s string, form norm.Form) *Run {
	return New(form.String(s))
}

// NewNarrow wraps Latin-1 bytes. The slice must not be modified afterwards.
func NewNarrow(b []byte) *Run {
	return &Run{narrow: b}
}

// NewWide wraps runes. The slice must not be modified afterwards.
func NewWide(r []rune) *Run {
	return &Run{wide: r, isWide: true}
}

// Len returns the number of characters in the run.
func (r *Run) Len() int {
	if r.isWide {
		return len(r.wide)
	}
	return len(r.narrow)
}

// CharAt returns the character at offset i.
func (r *Run) CharAt(i int) rune {
	if r.isWide {
		return r.wide[i]
	}
	return rune(r.narrow[i])
}

// IsWide reports whether the run is stored one rune per character.
func (r *Run) IsWide() bool {
	return r.isWide
}

// Narrow returns the backing bytes of a narrow run, nil for a wide run.
func (r *Run) Narrow() []byte {
	return r.narrow
}

// Wide returns the backing runes of a wide run, nil for a narrow run.
func (r *Run) Wide() []rune {
	return r.wide
}

// Runes returns the run as runes, copying when the run is narrow.
func (r *Run) Runes() []rune {
	if r.isWide {
		return r.wide
	}
	out := make([]rune, len(r.narrow))
	for i, b := range r.narrow {
		out[i] = rune(b)
	}
	return out
}

// String returns the run's text.
func (r *Run) String() string {
	return string(r.Runes())
}
