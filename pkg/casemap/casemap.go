// Package casemap converts the case of rune spans in place, tailored to a
// language, without ever changing the number of runes.
package casemap

import (
	"unicode"
	"unicode/utf8"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// Mapper maps case for one language. It keeps no state between calls, so a
// single Mapper can serve any number of tokenizers.
type Mapper struct {
	tag language.Tag
}

// New returns a Mapper for tag. language.Und gives the default Unicode mappings.
func New(tag language.Tag) *Mapper {
	return &Mapper{tag: tag}
}

// Parse returns a Mapper for a BCP 47 language name such as "tr" or "de-CH".
// An empty name means language.Und.
func Parse(name string) (*Mapper, error) {
	if name == "" {
		return New(language.Und), nil
	}
	tag, err := language.Parse(name)
	if err != nil {
		return nil, err
	}
	return New(tag), nil
}

// Language returns the language the mapper is tailored to.
func (m *Mapper) Language() language.Tag {
	return m.tag
}

// ToTitle title-cases the first rune of span when isWordStart is set and
// leaves span untouched otherwise.
func (m *Mapper) ToTitle(span []rune, isWordStart bool) {
	if !isWordStart || len(span) == 0 {
		return
	}
	span[0] = mapRune(cases.Title(m.tag), span[0], unicode.ToTitle)
}

// ToUpper upper-cases every rune of span.
func (m *Mapper) ToUpper(span []rune) {
	m.mapSpan(cases.Upper(m.tag), span, unicode.ToUpper)
}

// ToLower lower-cases every rune of span.
func (m *Mapper) ToLower(span []rune) {
	m.mapSpan(cases.Lower(m.tag), span, unicode.ToLower)
}

func (m *Mapper) mapSpan(c cases.Caser, span []rune, simple func(rune) rune) {
	for i, r := range span {
		if r < utf8.RuneSelf && m.tag == language.Und {
			span[i] = simple(r)
			continue
		}
		span[i] = mapRune(c, r, simple)
	}
}

// mapRune applies the language mapping when it yields exactly one rune and
// falls back to the simple Unicode mapping for expansions like ß → SS.
func mapRune(c cases.Caser, r rune, simple func(rune) rune) rune {
	out := c.String(string(r))
	mapped, size := utf8.DecodeRuneInString(out)
	if size == len(out) && mapped != utf8.RuneError {
		return mapped
	}
	return simple(r)
}
