// Package analysis turns text into index terms. It walks the text with the
// tokenizer, keeps the word tokens, splits compounds and normalizes the parts.
package analysis

import (
	"log/slog"
	"strings"
	"unicode"

	"github.com/kerem-kaynak/text-transformer/pkg/breaker"
	"github.com/kerem-kaynak/text-transformer/pkg/textrun"
	"github.com/kerem-kaynak/text-transformer/pkg/tokenizer"
)

// Analyzer extracts deduplicated terms from text. It is safe for concurrent
// use; every call scans with its own tokenizer.
type Analyzer struct {
	word       tokenizer.BreakOracle
	compound   *breaker.Compound
	normalizer *Normalizer
	logger     *slog.Logger
}

// Option configures an Analyzer.
type Option func(*Analyzer)

// WithCompounds splits words into the dictionary components they are made
// of. Each component is emitted as a term of its own.
func WithCompounds(dict *breaker.Dictionary, cache bool) Option {
	return func(a *Analyzer) {
		if cache {
			a.compound = breaker.NewCompound(a.word, dict)
		} else {
			a.compound = breaker.NewCompoundNoCache(a.word, dict)
		}
	}
}

// WithLogger sets the logger handed to the tokenizer.
func WithLogger(l *slog.Logger) Option {
	return func(a *Analyzer) {
		if l != nil {
			a.logger = l
		}
	}
}

// New creates an analyzer that normalizes terms with n.
func New(n *Normalizer, opts ...Option) *Analyzer {
	a := &Analyzer{
		word:       breaker.NewWord(),
		normalizer: n,
		logger:     slog.Default(),
	}
	for _, opt := range opts {
		opt(a)
	}
	return a
}

// Terms returns the lowercase form of every word in text followed by its
// normalized components, each term once, in order of first appearance.
func (a *Analyzer) Terms(text string) []string {
	tok := tokenizer.New(a.word, nil, nil, tokenizer.WithLogger(a.logger))
	tok.Init(textrun.NewWide([]rune(text)), 0, tokenizer.ModeNormal, tokenizer.TransformNone)

	seen := make(map[string]struct{})
	var terms []string
	add := func(term string) {
		if term == "" {
			return
		}
		if _, ok := seen[term]; !ok {
			seen[term] = struct{}{}
			terms = append(terms, term)
		}
	}

	for {
		tk, ok := tok.NextWord(false, false)
		if !ok {
			break
		}
		if tk.IsWhitespace || !isWord(tk.Text) {
			continue
		}

		add(strings.ToLower(tk.String()))
		for _, part := range a.parts(tk.Text) {
			add(a.normalizer.Normalize(part))
		}
	}
	return terms
}

// parts splits word at its compound joints, or returns it whole.
func (a *Analyzer) parts(word []rune) []string {
	if a.compound == nil {
		return []string{string(word)}
	}
	splits := a.compound.Split(word)
	parts := make([]string, 0, len(splits)+1)
	start := 0
	for _, s := range splits {
		parts = append(parts, string(word[start:s]))
		start = s
	}
	return append(parts, string(word[start:]))
}

// CacheSize returns the number of cached compound splits.
func (a *Analyzer) CacheSize() int {
	if a.compound == nil {
		return 0
	}
	return a.compound.CacheSize()
}

// isWord reports whether a token holds at least one letter or digit.
func isWord(text []rune) bool {
	for _, r := range text {
		if unicode.IsLetter(r) || unicode.IsDigit(r) {
			return true
		}
	}
	return false
}
