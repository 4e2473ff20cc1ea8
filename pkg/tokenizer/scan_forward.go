package tokenizer

// scanResult is what a scanning routine reports back to the Tokenizer.
// Forward routines return the offset just past the token; backward routines
// return one below the first character they consumed.
type scanResult struct {
	offset     int
	wordLen    int
	whitespace bool
	continues  bool
}

// scanFunc is one scanning strategy of the dispatch table.
type scanFunc func(t *Tokenizer, forLineBreak bool) scanResult

// scanNormalWhiteSpaceF collapses a whitespace run into a single space.
func (t *Tokenizer) scanNormalWhiteSpaceF(bool) scanResult {
	n := t.run.Len()
	off := t.offset
	for off < n && isSpace(t.run.CharAt(off)) {
		off++
	}

	t.buf.Set(0, ' ')
	return scanResult{offset: off, wordLen: 1, whitespace: true}
}

// scanNormalAsciiTextF copies a narrow run up to the next whitespace.
func (t *Tokenizer) scanNormalAsciiTextF(bool) scanResult {
	text := t.run.Narrow()
	off := t.offset
	w := 0
	for ; off < len(text); off++ {
		ch := rune(text[off])
		if isSpace(ch) {
			break
		}
		if w == t.buf.Len() {
			if err := t.buf.GrowBy(textGrowStep, true); err != nil {
				// Out of room: keep what we have.
				break
			}
		}
		t.buf.Set(w, ch)
		w++
	}

	return scanResult{offset: off, wordLen: w}
}

// scanNormalUnicodeTextF lets the break oracle decide where a wide word ends.
func (t *Tokenizer) scanNormalUnicodeTextF(forLineBreak bool) scanResult {
	text := t.run.Wide()
	off := t.offset

	first := text[off]
	off++
	t.buf.Set(0, first)
	t.noteChar(first)

	// Only consult the oracle when there is something after the first char.
	numChars := 1
	continues := false
	if off < len(text) {
		oracle := t.oracle(forLineBreak)
		if !oracle.BreakInBetween(t.buf.Head(1), text[off:]) {
			next, more := oracle.Next(text, off)
			continues = more
			next = clamp(next, off, len(text))
			numChars = next - off + 1

			if err := t.buf.GrowTo(numChars, true); err != nil {
				numChars = t.buf.Len()
			}
			for i := 1; i < numChars; i++ {
				ch := text[off+i-1]
				if ch == nbsp {
					ch = ' '
				}
				t.noteChar(ch)
				t.buf.Set(i, ch)
			}
		}
	}

	return scanResult{offset: off + numChars - 1, wordLen: numChars, continues: continues}
}

// scanPreWrapWhiteSpaceF collapses a run of spaces into a single space,
// stopping at tab, newline or text.
func (t *Tokenizer) scanPreWrapWhiteSpaceF(bool) scanResult {
	n := t.run.Len()
	off := t.offset
	for off < n {
		ch := t.run.CharAt(off)
		if !isSpace(ch) || isTabOrNewline(ch) {
			break
		}
		off++
	}

	t.buf.Set(0, ' ')
	return scanResult{offset: off, wordLen: 1, whitespace: true}
}

// scanPreDataF copies a wide run verbatim up to the next tab or newline.
func (t *Tokenizer) scanPreDataF(bool) scanResult {
	n := t.run.Len()
	off := t.offset
	w := 0
	for ; off < n; off++ {
		ch := t.run.CharAt(off)
		if isTabOrNewline(ch) {
			break
		}
		t.noteChar(ch)
		if w == t.buf.Len() {
			if err := t.buf.GrowBy(textGrowStep, true); err != nil {
				break
			}
		}
		t.buf.Set(w, ch)
		w++
	}

	return scanResult{offset: off, wordLen: w}
}

// scanPreAsciiDataF is scanPreDataF over narrow storage. It leaves the
// multibyte flag alone.
func (t *Tokenizer) scanPreAsciiDataF(bool) scanResult {
	text := t.run.Narrow()
	off := t.offset
	w := 0
	for ; off < len(text); off++ {
		ch := rune(text[off])
		if isTabOrNewline(ch) {
			break
		}
		if w == t.buf.Len() {
			if err := t.buf.GrowBy(textGrowStep, true); err != nil {
				break
			}
		}
		t.buf.Set(w, ch)
		w++
	}

	return scanResult{offset: off, wordLen: w}
}

// scanSingleCharF emits a tab or newline as its own token.
func (t *Tokenizer) scanSingleCharF(bool) scanResult {
	t.buf.Set(0, t.run.CharAt(t.offset))
	return scanResult{offset: t.offset + 1, wordLen: 1, whitespace: true}
}

func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
