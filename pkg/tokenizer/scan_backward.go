package tokenizer

// Backward routines fill the buffer from its end and return an offset one
// below the first character they consumed. PrevWord adds the 1 back.

// tailIndex is the buffer index of the w-th rune written from the end.
func (t *Tokenizer) tailIndex(w int) int {
	return t.buf.Len() - 1 - w
}

func (t *Tokenizer) scanNormalWhiteSpaceB(bool) scanResult {
	off := t.offset - 1
	for off >= 0 && isSpace(t.run.CharAt(off)) {
		off--
	}

	t.buf.Set(t.tailIndex(0), ' ')
	return scanResult{offset: off, wordLen: 1, whitespace: true}
}

func (t *Tokenizer) scanNormalAsciiTextB(bool) scanResult {
	text := t.run.Narrow()
	off := t.offset - 1
	w := 0
	for ; off >= 0; off-- {
		ch := rune(text[off])
		if isSpace(ch) {
			break
		}
		if w == t.buf.Len() {
			if err := t.buf.GrowBy(textGrowStep, false); err != nil {
				break
			}
		}
		t.buf.Set(t.tailIndex(w), ch)
		w++
	}

	return scanResult{offset: off, wordLen: w}
}

func (t *Tokenizer) scanNormalUnicodeTextB(forLineBreak bool) scanResult {
	text := t.run.Wide()
	off := t.offset - 1

	first := text[off]
	t.buf.Set(t.tailIndex(0), first)
	t.noteChar(first)

	numChars := 1
	continues := false
	if off > 0 {
		oracle := t.oracle(forLineBreak)
		if !oracle.BreakInBetween(text[:off], t.buf.Tail(1)) {
			prev, more := oracle.Prev(text, off)
			continues = more
			prev = clamp(prev, 0, off)
			numChars = off - prev + 1

			if err := t.buf.GrowTo(numChars, false); err != nil {
				numChars = t.buf.Len()
			}
			for i := 1; i < numChars; i++ {
				ch := text[off-i]
				if ch == nbsp {
					ch = ' '
				}
				t.noteChar(ch)
				t.buf.Set(t.tailIndex(i), ch)
			}
		}
	}

	return scanResult{offset: off - numChars, wordLen: numChars, continues: continues}
}

func (t *Tokenizer) scanPreWrapWhiteSpaceB(bool) scanResult {
	off := t.offset - 1
	for off >= 0 {
		ch := t.run.CharAt(off)
		if !isSpace(ch) || isTabOrNewline(ch) {
			break
		}
		off--
	}

	t.buf.Set(t.tailIndex(0), ' ')
	return scanResult{offset: off, wordLen: 1, whitespace: true}
}

// scanPreDataB serves both encodings, so it also flags multibyte characters
// read from narrow runs.
func (t *Tokenizer) scanPreDataB(bool) scanResult {
	off := t.offset - 1
	w := 0
	for ; off >= 0; off-- {
		ch := t.run.CharAt(off)
		if isTabOrNewline(ch) {
			break
		}
		if w == t.buf.Len() {
			if err := t.buf.GrowBy(textGrowStep, false); err != nil {
				break
			}
		}
		t.noteChar(ch)
		t.buf.Set(t.tailIndex(w), ch)
		w++
	}

	return scanResult{offset: off, wordLen: w}
}

func (t *Tokenizer) scanSingleCharB(bool) scanResult {
	off := t.offset - 1
	t.buf.Set(t.tailIndex(0), t.run.CharAt(off))
	return scanResult{offset: off - 1, wordLen: 1, whitespace: true}
}
