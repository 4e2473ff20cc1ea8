package tokenizer

import (
	"bytes"
	"log/slog"
	"slices"
	"strings"
	"testing"
	"unicode"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/text/language"

	"github.com/kerem-kaynak/text-transformer/pkg/breaker"
	"github.com/kerem-kaynak/text-transformer/pkg/casemap"
	"github.com/kerem-kaynak/text-transformer/pkg/textrun"
)

func newTestTokenizer(opts ...Option) *Tokenizer {
	return New(breaker.NewWord(), breaker.NewLine(), casemap.New(language.Und), opts...)
}

// scanAll drives the tokenizer to the end of the run in one direction and
// returns the word lengths and token texts it produced.
func scanAll(tok *Tokenizer, backward, forLineBreak bool) ([]int, []string) {
	var lens []int
	var texts []string
	for {
		var tk Token
		var ok bool
		if backward {
			tk, ok = tok.PrevWord(false, forLineBreak)
		} else {
			tk, ok = tok.NextWord(false, forLineBreak)
		}
		if !ok {
			return lens, texts
		}
		lens = append(lens, tk.WordLen)
		texts = append(texts, tk.String())
	}
}

func reversed(s []int) []int {
	out := slices.Clone(s)
	slices.Reverse(out)
	return out
}

var selfTestVectors = []struct {
	name    string
	input   string
	normal  []int
	pre     []int
	preWrap []int
}{
	{
		name:    "ascii",
		input:   "once upon\ta short time",
		normal:  []int{4, 1, 4, 1, 1, 1, 5, 1, 4},
		pre:     []int{9, 1, 12},
		preWrap: []int{4, 1, 4, 1, 1, 1, 5, 1, 4},
	},
	{
		name:    "latin1",
		input:   "önce ûpon\tã shórt tîme ",
		normal:  []int{4, 1, 4, 1, 1, 1, 5, 1, 4, 1},
		pre:     []int{9, 1, 13},
		preWrap: []int{4, 1, 4, 1, 1, 1, 5, 1, 4, 1},
	},
	{
		name:    "wide",
		input:   "Œnce xy\tzy ",
		normal:  []int{4, 1, 2, 1, 2, 1},
		pre:     []int{7, 1, 3},
		preWrap: []int{4, 1, 2, 1, 2, 1},
	},
}

func TestTokenizer_SelfTestVectors(t *testing.T) {
	runs := map[string]func(string) *textrun.Run{
		"auto": textrun.New,
		"wide": func(s string) *textrun.Run { return textrun.NewWide([]rune(s)) },
	}

	for _, v := range selfTestVectors {
		modes := []struct {
			mode Mode
			want []int
		}{
			{ModeNormal, v.normal},
			{ModePreformatted, v.pre},
			{ModePreWrap, v.preWrap},
		}
		for runName, newRun := range runs {
			for _, m := range modes {
				for _, forLineBreak := range []bool{false, true} {
					run := newRun(v.input)
					tok := newTestTokenizer()

					tok.Init(run, 0, m.mode, TransformNone)
					got, _ := scanAll(tok, false, forLineBreak)
					assert.Equal(t, m.want, got, "%s/%s/%s line=%v forward", v.name, runName, m.mode, forLineBreak)

					tok.Init(run, run.Len(), m.mode, TransformNone)
					got, _ = scanAll(tok, true, forLineBreak)
					assert.Equal(t, reversed(m.want), got, "%s/%s/%s line=%v backward", v.name, runName, m.mode, forLineBreak)
				}
			}
		}
	}
}

func TestTokenizer_TokenTexts(t *testing.T) {
	tok := newTestTokenizer()
	run := textrun.New("Œnce xy\tzy ")

	tok.Init(run, 0, ModeNormal, TransformNone)
	_, texts := scanAll(tok, false, false)
	assert.Equal(t, []string{"Œnce", " ", "xy", " ", "zy", " "}, texts)

	tok.Init(run, 0, ModePreformatted, TransformNone)
	_, texts = scanAll(tok, false, false)
	assert.Equal(t, []string{"Œnce xy", "\t", "zy "}, texts)

	tok.Init(run, run.Len(), ModePreformatted, TransformNone)
	_, texts = scanAll(tok, true, false)
	assert.Equal(t, []string{"zy ", "\t", "Œnce xy"}, texts)
}

// Every character of the run is consumed exactly once, in either direction.
func TestTokenizer_Coverage(t *testing.T) {
	inputs := []string{
		"once upon\ta short time",
		"  leading and   trailing  ",
		"Grüße aus Köln, 42.5 km\n\nfertig",
		"フジテレビの音楽番組 と　ニュース",
		"a\u00a0b\u00a0\u00a0c",
		"",
	}

	tok := newTestTokenizer()
	for _, in := range inputs {
		run := textrun.New(in)
		for _, mode := range []Mode{ModeNormal, ModePreformatted, ModePreWrap} {
			tok.Init(run, 0, mode, TransformNone)
			pos := 0
			for {
				tk, ok := tok.NextWord(false, false)
				if !ok {
					break
				}
				require.Positive(t, tk.ContentLen, "%q/%s at %d", in, mode, pos)
				pos += tk.ContentLen
				require.Equal(t, pos, tok.Offset())
			}
			assert.Equal(t, run.Len(), pos, "%q/%s forward", in, mode)

			tok.Init(run, run.Len(), mode, TransformNone)
			pos = run.Len()
			for {
				tk, ok := tok.PrevWord(false, false)
				if !ok {
					break
				}
				require.Positive(t, tk.ContentLen, "%q/%s at %d", in, mode, pos)
				pos -= tk.ContentLen
				require.Equal(t, pos, tok.Offset())
			}
			assert.Equal(t, 0, pos, "%q/%s backward", in, mode)
		}
	}
}

// Scanning backward yields the forward tokens in reverse order.
func TestTokenizer_DirectionalSymmetry(t *testing.T) {
	inputs := []string{
		"once upon\ta short time",
		"Grüße aus Köln, 42.5 km",
		"The quick (“brown”) fox can't jump 32.3 feet, right?",
		"フジテレビの音楽番組",
		"Œnce  xy\t\tzy \n",
		" \u0301é.Œ.\n",
		"Œ see .NET",
	}

	tok := newTestTokenizer()
	for _, in := range inputs {
		for _, wide := range []bool{false, true} {
			run := textrun.New(in)
			if wide {
				run = textrun.NewWide([]rune(in))
			}
			for _, mode := range []Mode{ModeNormal, ModePreformatted, ModePreWrap} {
				for _, forLineBreak := range []bool{false, true} {
					tok.Init(run, 0, mode, TransformNone)
					fwdLens, fwdTexts := scanAll(tok, false, forLineBreak)

					tok.Init(run, run.Len(), mode, TransformNone)
					backLens, backTexts := scanAll(tok, true, forLineBreak)

					slices.Reverse(backTexts)
					assert.Equal(t, fwdLens, reversed(backLens), "%q wide=%v %s line=%v", in, wide, mode, forLineBreak)
					assert.Equal(t, fwdTexts, backTexts, "%q wide=%v %s line=%v", in, wide, mode, forLineBreak)
				}
			}
		}
	}
}

func TestTokenizer_WhitespaceCollapse(t *testing.T) {
	tok := newTestTokenizer()
	run := textrun.New("a \t\n  b")

	tok.Init(run, 1, ModeNormal, TransformNone)
	tk, ok := tok.NextWord(false, false)
	require.True(t, ok)
	assert.True(t, tk.IsWhitespace)
	assert.Equal(t, " ", tk.String())
	assert.Equal(t, 1, tk.WordLen)
	assert.Equal(t, 5, tk.ContentLen)
	assert.Equal(t, 6, tok.Offset())

	tok.Init(run, 6, ModeNormal, TransformNone)
	tk, ok = tok.PrevWord(false, false)
	require.True(t, ok)
	assert.Equal(t, " ", tk.String())
	assert.Equal(t, 5, tk.ContentLen)
	assert.Equal(t, 1, tok.Offset())

	// Pre-wrap collapses spaces but gives tab and newline their own tokens.
	tok.Init(textrun.New("a  \tb"), 1, ModePreWrap, TransformNone)
	tk, _ = tok.NextWord(false, false)
	assert.Equal(t, " ", tk.String())
	assert.Equal(t, 1, tk.WordLen)
	assert.Equal(t, 2, tk.ContentLen)
	tk, _ = tok.NextWord(false, false)
	assert.Equal(t, "\t", tk.String())
	assert.True(t, tk.IsWhitespace)

	tok.Init(textrun.New("a  \tb"), 3, ModePreWrap, TransformNone)
	tk, _ = tok.PrevWord(false, false)
	assert.Equal(t, " ", tk.String())
	assert.Equal(t, 2, tk.ContentLen)
	assert.Equal(t, 1, tok.Offset())
}

func TestTokenizer_PreWrapCollapsesSpaceRuns(t *testing.T) {
	tok := newTestTokenizer()
	for _, run := range []*textrun.Run{
		textrun.New("a     b"),
		textrun.NewWide([]rune("a     b")),
	} {
		for _, forLineBreak := range []bool{false, true} {
			tok.Init(run, 0, ModePreWrap, TransformNone)
			lens, texts := scanAll(tok, false, forLineBreak)
			assert.Equal(t, []int{1, 1, 1}, lens, "wide=%v line=%v", run.IsWide(), forLineBreak)
			assert.Equal(t, []string{"a", " ", "b"}, texts)

			tok.Init(run, run.Len(), ModePreWrap, TransformNone)
			lens, _ = scanAll(tok, true, forLineBreak)
			assert.Equal(t, []int{1, 1, 1}, lens, "wide=%v line=%v backward", run.IsWide(), forLineBreak)
		}
	}
}

// Word tokens never carry whitespace, even where the line rules forbid a
// break before punctuation that follows a space.
func TestTokenizer_WordsExcludeWhitespace(t *testing.T) {
	inputs := []string{
		"Œ see .NET",
		"Œ costs .5 now",
		"Œ (yes) !",
		" \u0301é.Œ.\n",
	}

	tok := newTestTokenizer()
	for _, in := range inputs {
		run := textrun.NewWide([]rune(in))
		for _, forLineBreak := range []bool{false, true} {
			for _, backward := range []bool{false, true} {
				start := 0
				if backward {
					start = run.Len()
				}
				tok.Init(run, start, ModeNormal, TransformNone)
				_, texts := scanAll(tok, backward, forLineBreak)
				for _, text := range texts {
					if text == " " {
						continue
					}
					assert.False(t, strings.ContainsFunc(text, unicode.IsSpace),
						"%q line=%v backward=%v: token %q", in, forLineBreak, backward, text)
				}
			}
		}
	}

	tok.Init(textrun.NewWide([]rune("Œ see .NET")), 0, ModeNormal, TransformNone)
	_, texts := scanAll(tok, false, true)
	assert.Equal(t, []string{"Œ", " ", "see", " ", ".NET"}, texts)
}

func TestTokenizer_NoBreakSpace(t *testing.T) {
	tok := newTestTokenizer()

	// Narrow runs split on whitespace only, and the no-break space is not
	// whitespace.
	tok.Init(textrun.New("a\u00a0b c"), 0, ModeNormal, TransformNone)
	tk, _ := tok.NextWord(false, false)
	assert.Equal(t, "a\u00a0b", tk.String())

	// The line oracle glues across it, and wide scans copy it as a plain space.
	tok.Init(textrun.NewWide([]rune("x\u00a0y z")), 0, ModeNormal, TransformNone)
	tk, _ = tok.NextWord(false, true)
	assert.Equal(t, "x y", tk.String())
	assert.Equal(t, 3, tk.ContentLen)

	tok.Init(textrun.NewWide([]rune("x\u00a0y z")), 0, ModePreformatted, TransformNone)
	tk, _ = tok.NextWord(false, true)
	assert.Equal(t, "x\u00a0y z", tk.String(), "preformatted copies verbatim")
}

func TestTokenizer_EmptyAndBoundaries(t *testing.T) {
	tok := newTestTokenizer()

	_, ok := tok.NextWord(false, false)
	assert.False(t, ok, "unbound tokenizer")

	tok.Init(textrun.New(""), 0, ModeNormal, TransformNone)
	_, ok = tok.NextWord(false, false)
	assert.False(t, ok)
	_, ok = tok.PrevWord(false, false)
	assert.False(t, ok)

	tok.Init(textrun.New("abc"), 3, ModeNormal, TransformNone)
	_, ok = tok.NextWord(false, false)
	assert.False(t, ok)
	assert.Equal(t, 3, tok.Offset())

	tok.Init(textrun.New("abc"), 0, ModeNormal, TransformNone)
	_, ok = tok.PrevWord(false, false)
	assert.False(t, ok)
	assert.Equal(t, 0, tok.Offset())
}

func TestTokenizer_InitNilRun(t *testing.T) {
	tok := newTestTokenizer(WithLogger(slog.New(slog.NewTextHandler(&bytes.Buffer{}, nil))))

	tok.Init(textrun.New("abc"), 2, ModeNormal, TransformNone)
	require.NotPanics(t, func() { tok.Init(nil, 5, ModePreWrap, TransformNone) })
	assert.Equal(t, 0, tok.Offset())
	assert.Equal(t, ModePreWrap, tok.Mode())

	_, ok := tok.NextWord(false, false)
	assert.False(t, ok)
	_, ok = tok.PrevWord(false, false)
	assert.False(t, ok)
}

func TestTokenizer_InitClampsOffset(t *testing.T) {
	var logs bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&logs, nil))
	tok := newTestTokenizer(WithLogger(logger))

	run := textrun.New("abc def")
	tok.Init(run, 42, ModeNormal, TransformNone)
	assert.Equal(t, run.Len(), tok.Offset())
	assert.Contains(t, logs.String(), "bad starting offset")
	assert.Contains(t, logs.String(), "offset=42")

	logs.Reset()
	tok.Init(run, -3, ModeNormal, TransformNone)
	assert.Equal(t, 0, tok.Offset())
	assert.Contains(t, logs.String(), "offset=-3")

	logs.Reset()
	tok.Init(run, 4, ModeNormal, TransformNone)
	assert.Equal(t, 4, tok.Offset())
	assert.Empty(t, logs.String())
}

func TestTokenizer_InitResetsState(t *testing.T) {
	tok := newTestTokenizer()

	tok.Init(textrun.New("Œnce"), 0, ModePreWrap, TransformUppercase)
	tok.NextWord(false, false)
	require.True(t, tok.HasMultibyte())

	tok.Init(textrun.New("once"), 0, Mode(99), TransformLowercase)
	assert.False(t, tok.HasMultibyte())
	assert.Equal(t, ModeNormal, tok.Mode())
	assert.Equal(t, TransformLowercase, tok.Transform())
}

func TestTokenizer_MultibyteFlag(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		mode     Mode
		backward bool
		want     bool
	}{
		{"ascii", "once upon", ModeNormal, false, false},
		{"wide word", "Œnce", ModeNormal, false, true},
		{"wide word backward", "Œnce", ModeNormal, true, true},
		// Narrow scans copy bytes without looking at them, except the
		// backward preformatted scan, which is shared with wide runs.
		{"latin1 forward", "önce ûpon", ModeNormal, false, false},
		{"latin1 pre forward", "önce ûpon", ModePreformatted, false, false},
		{"latin1 pre backward", "önce ûpon", ModePreformatted, true, true},
		{"wide pre forward", "Œnce", ModePreformatted, false, true},
	}

	for _, tt := range tests {
		tok := newTestTokenizer()
		run := textrun.New(tt.input)
		start := 0
		if tt.backward {
			start = run.Len()
		}
		tok.Init(run, start, tt.mode, TransformNone)
		scanAll(tok, tt.backward, false)
		if tok.HasMultibyte() != tt.want {
			t.Errorf("%s: HasMultibyte() = %v, want %v", tt.name, tok.HasMultibyte(), tt.want)
		}
	}
}

func TestTokenizer_Continues(t *testing.T) {
	tok := newTestTokenizer()

	tok.Init(textrun.NewWide([]rune("once")), 0, ModeNormal, TransformNone)
	tk, _ := tok.NextWord(false, false)
	assert.True(t, tk.Continues, "word touching the end of the run")

	tok.Init(textrun.NewWide([]rune("once upon")), 0, ModeNormal, TransformNone)
	tk, _ = tok.NextWord(false, false)
	assert.False(t, tk.Continues)

	tok.Init(textrun.NewWide([]rune("once upon")), 4, ModeNormal, TransformNone)
	tk, _ = tok.PrevWord(false, false)
	assert.Equal(t, "once", tk.String())
	assert.True(t, tk.Continues, "word touching the start of the run")
}

func TestTokenizer_LongTokens(t *testing.T) {
	long := strings.Repeat("a", 250)
	input := "x " + long + " y"

	for _, wide := range []bool{false, true} {
		run := textrun.New(input)
		if wide {
			run = textrun.NewWide([]rune(input))
		}
		tok := newTestTokenizer()

		tok.Init(run, 0, ModeNormal, TransformNone)
		lens, texts := scanAll(tok, false, false)
		assert.Equal(t, []int{1, 1, 250, 1, 1}, lens, "wide=%v forward", wide)
		assert.Equal(t, long, texts[2])

		tok.Init(run, run.Len(), ModeNormal, TransformNone)
		lens, texts = scanAll(tok, true, false)
		assert.Equal(t, []int{1, 1, 250, 1, 1}, lens, "wide=%v backward", wide)
		assert.Equal(t, long, texts[2])

		tok.Init(run, 0, ModePreformatted, TransformNone)
		lens, _ = scanAll(tok, false, false)
		assert.Equal(t, []int{len(input)}, lens)

		tok.Init(run, run.Len(), ModePreformatted, TransformNone)
		lens, _ = scanAll(tok, true, false)
		assert.Equal(t, []int{len(input)}, lens)
	}
}

func TestTokenizer_TruncatesAtBufferCeiling(t *testing.T) {
	input := strings.Repeat("a", 250)

	for _, wide := range []bool{false, true} {
		run := textrun.New(input)
		if wide {
			run = textrun.NewWide([]rune(input))
		}
		tok := newTestTokenizer(WithMaxBufferSize(AutoBufferSize))

		tok.Init(run, 0, ModeNormal, TransformNone)
		lens, _ := scanAll(tok, false, false)
		assert.Equal(t, []int{100, 100, 50}, lens, "wide=%v forward", wide)

		tok.Init(run, run.Len(), ModeNormal, TransformNone)
		lens, _ = scanAll(tok, true, false)
		assert.Equal(t, []int{100, 100, 50}, lens, "wide=%v backward", wide)
	}
}

func TestTokenizer_CaseTransforms(t *testing.T) {
	tests := []struct {
		transform Transform
		want      []string
	}{
		{TransformNone, []string{"once", " ", "upon", " ", "a", " ", "TIME"}},
		{TransformUppercase, []string{"ONCE", " ", "UPON", " ", "A", " ", "TIME"}},
		{TransformLowercase, []string{"once", " ", "upon", " ", "a", " ", "time"}},
		{TransformCapitalize, []string{"Once", " ", "Upon", " ", "A", " ", "TIME"}},
	}

	input := "once upon a TIME"
	for _, tt := range tests {
		for _, run := range []*textrun.Run{textrun.New(input), textrun.NewWide([]rune(input))} {
			tok := newTestTokenizer()

			tok.Init(run, 0, ModeNormal, tt.transform)
			_, texts := scanAll(tok, false, false)
			assert.Equal(t, tt.want, texts, "%s forward", tt.transform)

			tok.Init(run, run.Len(), ModeNormal, tt.transform)
			_, texts = scanAll(tok, true, false)
			slices.Reverse(texts)
			assert.Equal(t, tt.want, texts, "%s backward", tt.transform)
		}
	}
}

func TestTokenizer_CapitalizeInWord(t *testing.T) {
	tok := newTestTokenizer()
	tok.Init(textrun.New("upon"), 0, ModeNormal, TransformCapitalize)

	tk, ok := tok.NextWord(true, false)
	require.True(t, ok)
	assert.Equal(t, "upon", tk.String(), "continuation of a word keeps its case")
}

func TestTokenizer_CompoundOracle(t *testing.T) {
	dict, err := breaker.NewDictionaryFromWords("brand", "schutz", "konzept")
	require.NoError(t, err)
	defer dict.Close()

	word := breaker.NewCompound(breaker.NewWord(), dict)
	tok := New(word, nil, nil)
	run := textrun.NewWide([]rune("Brandschutzkonzept ok"))

	tok.Init(run, 0, ModeNormal, TransformNone)
	_, texts := scanAll(tok, false, false)
	assert.Equal(t, []string{"Brand", "schutz", "konzept", " ", "ok"}, texts)

	tok.Init(run, run.Len(), ModeNormal, TransformNone)
	_, texts = scanAll(tok, true, false)
	assert.Equal(t, []string{"ok", " ", "konzept", "schutz", "Brand"}, texts)
}

func TestParseMode(t *testing.T) {
	tests := []struct {
		input    string
		expected Mode
	}{
		{"normal", ModeNormal},
		{"pre", ModePreformatted},
		{"Preformatted", ModePreformatted},
		{" pre-wrap ", ModePreWrap},
		{"nowrap", ModeNormal},
		{"", ModeNormal},
	}

	for _, tt := range tests {
		if got := ParseMode(tt.input); got != tt.expected {
			t.Errorf("ParseMode(%q) = %v, want %v", tt.input, got, tt.expected)
		}
	}
}

func TestParseTransform(t *testing.T) {
	tests := []struct {
		input    string
		expected Transform
	}{
		{"capitalize", TransformCapitalize},
		{"UPPERCASE", TransformUppercase},
		{"lower", TransformLowercase},
		{"none", TransformNone},
		{"full-width", TransformNone},
	}

	for _, tt := range tests {
		if got := ParseTransform(tt.input); got != tt.expected {
			t.Errorf("ParseTransform(%q) = %v, want %v", tt.input, got, tt.expected)
		}
	}
}
