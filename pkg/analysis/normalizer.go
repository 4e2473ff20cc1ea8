package analysis

import (
	"fmt"
	"strings"
	"unicode"

	"github.com/kljensen/snowball"
	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// Step is one stage of a normalization pipeline.
type Step func(string) string

// Normalizer folds a word into its index form by running it through a
// pipeline of steps.
type Normalizer struct {
	steps []Step
}

// NewNormalizer returns the default folding pipeline followed by a Snowball
// stemmer for stemLanguage. An empty stemLanguage disables stemming.
func NewNormalizer(stemLanguage string) (*Normalizer, error) {
	steps := []Step{StripDiacritics, Lowercase, FoldCharacters}
	if stemLanguage != "" {
		stem, err := Stemmer(stemLanguage)
		if err != nil {
			return nil, err
		}
		steps = append(steps, stem)
	}
	return &Normalizer{steps: steps}, nil
}

// NewNormalizerWithSteps creates a normalizer with a custom pipeline.
func NewNormalizerWithSteps(steps ...Step) *Normalizer {
	return &Normalizer{steps: steps}
}

// Normalize applies all steps in order.
func (n *Normalizer) Normalize(s string) string {
	for _, step := range n.steps {
		s = step(s)
	}
	return s
}

var droppable = runes.Predicate(func(r rune) bool {
	return unicode.IsControl(r) || unicode.Is(unicode.Mn, r)
})

// StripDiacritics applies NFKD and drops control characters and nonspacing
// marks: ä becomes a, ﬁ becomes fi.
func StripDiacritics(s string) string {
	// Chained transformers keep state, so each call builds its own.
	t := transform.Chain(norm.NFKD, runes.Remove(droppable))
	out, _, err := transform.String(t, s)
	if err != nil {
		return s
	}
	return out
}

// Lowercase converts to lower case.
func Lowercase(s string) string {
	return strings.ToLower(s)
}

// characterFolds maps what NFKD leaves alone: typographic quotes, the ae and
// oe ligatures and the eszett.
var characterFolds = strings.NewReplacer(
	"\u201E", `"`, "\u201C", `"`, "\u201D", `"`, "\u00AB", `"`, "\u00BB", `"`,
	"\u2018", "'", "\u2019", "'", "\u201A", "'", "\u2039", "'", "\u203A", "'",
	"æ", "ae", "Æ", "ae", "œ", "oe", "Œ", "oe",
	"ß", "ss", "ẞ", "ss",
)

// FoldCharacters rewrites quotes to ASCII and expands ligatures and ß.
func FoldCharacters(s string) string {
	return characterFolds.Replace(s)
}

// Stemmer returns a Snowball stemming step for language, e.g. "german" or
// "english". Stop words are stemmed too.
func Stemmer(language string) (Step, error) {
	if _, err := snowball.Stem("test", language, true); err != nil {
		return nil, fmt.Errorf("stemmer: %w", err)
	}
	return func(s string) string {
		stemmed, err := snowball.Stem(s, language, true)
		if err != nil {
			return s
		}
		return stemmed
	}, nil
}
