// Package tokenizer splits text runs into words and whitespace, scanning in
// either direction and applying case transforms to the words it produces.
package tokenizer

import (
	"log/slog"

	"github.com/kerem-kaynak/text-transformer/pkg/textrun"
)

// Tokenizer is a cursor over a text run. It is not safe for concurrent use;
// the oracles and case converter it is given may be shared.
type Tokenizer struct {
	word   BreakOracle
	line   BreakOracle
	conv   CaseConverter
	logger *slog.Logger

	buf Buffer

	run          *textrun.Run
	offset       int
	mode         Mode
	transform    Transform
	hasMultibyte bool
}

// Option configures a Tokenizer.
type Option func(*Tokenizer)

// WithLogger sets the logger used for diagnostics.
func WithLogger(l *slog.Logger) Option {
	return func(t *Tokenizer) {
		if l != nil {
			t.logger = l
		}
	}
}

// WithMaxBufferSize caps the scratch buffer. Tokens that do not fit are
// truncated.
func WithMaxBufferSize(n int) Option {
	return func(t *Tokenizer) {
		t.buf.maxSize = n
	}
}

// New creates a Tokenizer. word answers word-break queries and line answers
// line-break queries; a nil line oracle falls back to word. conv may be nil
// when no case transform is ever requested.
func New(word, line BreakOracle, conv CaseConverter, opts ...Option) *Tokenizer {
	if line == nil {
		line = word
	}
	t := &Tokenizer{
		word:   word,
		line:   line,
		conv:   conv,
		logger: slog.Default(),
	}
	for _, opt := range opts {
		opt(t)
	}
	return t
}

// Init binds the tokenizer to run and resets its state. A nil run behaves as
// an empty one. An out of range startingOffset is clamped and logged; an
// unknown mode means ModeNormal.
func (t *Tokenizer) Init(run *textrun.Run, startingOffset int, mode Mode, transform Transform) {
	t.run = run

	n := 0
	if run != nil {
		n = run.Len()
	}
	if startingOffset < 0 || startingOffset > n {
		t.logger.Warn("bad starting offset",
			slog.Int("offset", startingOffset),
			slog.Int("length", n))
		startingOffset = clamp(startingOffset, 0, n)
	}
	t.offset = startingOffset

	if !mode.valid() {
		mode = ModeNormal
	}
	t.mode = mode
	t.transform = transform
	t.hasMultibyte = false
}

// NextWord scans the token after the cursor and moves the cursor past it. It
// returns false when the cursor is at the end of the run. inWord tells
// Capitalize that the token continues a word; forLineBreak selects the line
// oracle instead of the word oracle.
func (t *Tokenizer) NextWord(inWord, forLineBreak bool) (Token, bool) {
	if t.run == nil || t.offset >= t.run.Len() {
		return Token{}, false
	}

	scan := lookupScan(forward, t.mode, t.run.IsWide(), t.run.CharAt(t.offset))
	res := scan(t, forLineBreak)

	text := t.buf.Head(res.wordLen)
	if !res.whitespace {
		t.applyTransform(text, inWord)
	}

	tok := Token{
		Text:         text,
		WordLen:      res.wordLen,
		ContentLen:   res.offset - t.offset,
		IsWhitespace: res.whitespace,
		Continues:    res.continues,
	}
	t.offset = res.offset
	return tok, true
}

// PrevWord scans the token before the cursor and moves the cursor to its
// start. It returns false when the cursor is at the start of the run.
func (t *Tokenizer) PrevWord(inWord, forLineBreak bool) (Token, bool) {
	if t.run == nil || t.offset <= 0 {
		return Token{}, false
	}

	scan := lookupScan(backward, t.mode, t.run.IsWide(), t.run.CharAt(t.offset-1))
	res := scan(t, forLineBreak)

	// Backward routines always stop one short.
	start := res.offset + 1

	text := t.buf.Tail(res.wordLen)
	if !res.whitespace {
		t.applyTransform(text, inWord)
	}

	tok := Token{
		Text:         text,
		WordLen:      res.wordLen,
		ContentLen:   t.offset - start,
		IsWhitespace: res.whitespace,
		Continues:    res.continues,
	}
	t.offset = start
	return tok, true
}

// Offset returns the cursor position.
func (t *Tokenizer) Offset() int {
	return t.offset
}

// Mode returns the active whitespace mode.
func (t *Tokenizer) Mode() Mode {
	return t.mode
}

// Transform returns the active case transform.
func (t *Tokenizer) Transform() Transform {
	return t.transform
}

// HasMultibyte reports whether any character above U+007F has been copied
// since the last Init.
func (t *Tokenizer) HasMultibyte() bool {
	return t.hasMultibyte
}

func (t *Tokenizer) oracle(forLineBreak bool) BreakOracle {
	if forLineBreak {
		return t.line
	}
	return t.word
}

func (t *Tokenizer) noteChar(r rune) {
	if r > maxUnibyte {
		t.hasMultibyte = true
	}
}

func (t *Tokenizer) applyTransform(span []rune, inWord bool) {
	if t.conv == nil || len(span) == 0 {
		return
	}
	switch t.transform {
	case TransformCapitalize:
		t.conv.ToTitle(span, !inWord)
	case TransformLowercase:
		t.conv.ToLower(span)
	case TransformUppercase:
		t.conv.ToUpper(span)
	}
}
