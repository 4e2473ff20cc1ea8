package tokenizer

import "errors"

// AutoBufferSize is the number of runes a Buffer holds before it needs the heap.
const AutoBufferSize = 100

// growSlack is added on top of a GrowBy request that doubling cannot satisfy.
const growSlack = 100

// ErrBufferExhausted is returned when a Buffer would have to grow past its ceiling.
var ErrBufferExhausted = errors.New("tokenizer: scratch buffer exhausted")

// Buffer is the working area for the token being assembled. It starts on an
// inline array and moves to a heap slice once it outgrows it; heap == nil means
// the inline array backs the buffer.
//
// Forward scans fill it from the head, backward scans from the tail, so growth
// keeps existing content at whichever end the caller is filling from.
type Buffer struct {
	auto    [AutoBufferSize]rune
	heap    []rune
	maxSize int
}

// NewBuffer returns an empty buffer. maxSize caps its capacity; 0 means no cap.
func NewBuffer(maxSize int) *Buffer {
	return &Buffer{maxSize: maxSize}
}

// Runes returns the whole backing storage. The slice is invalidated by growth.
func (b *Buffer) Runes() []rune {
	if b.heap == nil {
		return b.auto[:]
	}
	return b.heap
}

// Len returns the buffer capacity in runes.
func (b *Buffer) Len() int {
	if b.heap == nil {
		return AutoBufferSize
	}
	return len(b.heap)
}

// Set writes r at index i.
func (b *Buffer) Set(i int, r rune) {
	b.Runes()[i] = r
}

// Head returns the first n runes.
func (b *Buffer) Head(n int) []rune {
	return b.Runes()[:n]
}

// Tail returns the last n runes.
func (b *Buffer) Tail(n int) []rune {
	rs := b.Runes()
	return rs[len(rs)-n:]
}

// GrowBy grows the buffer so it holds at least atLeast more runes. It doubles
// the capacity, or adds atLeast plus some slack when doubling is not enough.
func (b *Buffer) GrowBy(atLeast int, preserveHead bool) error {
	cur := b.Len()
	need := cur + atLeast
	size := cur * 2
	if size < need {
		size = need + growSlack
	}
	if b.maxSize > 0 && size > b.maxSize && need <= b.maxSize {
		size = b.maxSize
	}
	return b.GrowTo(size, preserveHead)
}

// GrowTo grows the buffer to hold at least size runes. Existing content is
// copied to the start of the new storage when preserveHead is set and to its
// end otherwise.
func (b *Buffer) GrowTo(size int, preserveHead bool) error {
	cur := b.Len()
	if size <= cur {
		return nil
	}
	if b.maxSize > 0 && size > b.maxSize {
		return ErrBufferExhausted
	}

	grown := make([]rune, size)
	if preserveHead {
		copy(grown, b.Runes())
	} else {
		copy(grown[size-cur:], b.Runes())
	}
	b.heap = grown
	return nil
}
