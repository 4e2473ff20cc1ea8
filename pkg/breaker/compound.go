package breaker

import (
	"strings"
	"unicode"
	"unicode/utf8"

	lru "github.com/hashicorp/golang-lru/v2"
)

// CacheSize is the maximum number of entries in the compound split cache.
// At ~100 bytes per entry, 100k entries uses approximately 10MB of memory.
const CacheSize = 100_000

const (
	// minComponent is the shortest component a word may be split into.
	minComponent = 2
	// maxCompound is the longest word Compound will try to split.
	maxCompound = 128
)

// Oracle is the break oracle contract Compound builds on. Word and Line
// satisfy it, and so does Compound itself.
type Oracle interface {
	BreakInBetween(before, after []rune) bool
	Next(text []rune, pos int) (int, bool)
	Prev(text []rune, pos int) (int, bool)
}

// Compound adds breaks inside the words found by a base oracle wherever the
// word is a concatenation of dictionary components, e.g. "brandschutzkonzept"
// breaks into "brand", "schutz" and "konzept". Words that do not decompose
// completely are left whole.
type Compound struct {
	base  Oracle
	dict  *Dictionary
	cache *lru.Cache[string, []int]
}

// NewCompound creates a compound oracle with its LRU split cache enabled.
func NewCompound(base Oracle, dict *Dictionary) *Compound {
	cache, _ := lru.New[string, []int](CacheSize)
	return &Compound{base: base, dict: dict, cache: cache}
}

// NewCompoundNoCache creates a compound oracle without caching.
// Use this when memory is constrained or words are rarely repeated.
func NewCompoundNoCache(base Oracle, dict *Dictionary) *Compound {
	return &Compound{base: base, dict: dict}
}

// BreakInBetween reports a break where the base oracle has one or where the
// junction falls between two components of the surrounding word.
func (c *Compound) BreakInBetween(before, after []rune) bool {
	if c.base.BreakInBetween(before, after) {
		return true
	}

	cutBefore := len(before) > maxCompound
	if cutBefore {
		before = before[len(before)-maxCompound:]
	}
	cutAfter := len(after) > maxCompound
	if cutAfter {
		after = after[:maxCompound]
	}

	joined := make([]rune, 0, len(before)+len(after))
	joined = append(joined, before...)
	joined = append(joined, after...)
	pos := len(before)

	start, _ := c.base.Prev(joined, pos)
	end, _ := c.base.Next(joined, pos)
	if (cutBefore && start == 0) || (cutAfter && end == len(joined)) {
		// The word runs past what we can see, so it is too long to split.
		return false
	}
	for _, s := range c.Split(joined[start:end]) {
		if start+s == pos {
			return true
		}
	}
	return false
}

// Next returns the next component or word boundary after pos.
func (c *Compound) Next(text []rune, pos int) (int, bool) {
	next, more := c.base.Next(text, pos)

	start := pos
	if !c.baseBreakAt(text, pos) {
		start, _ = c.base.Prev(text, pos)
	}
	for _, s := range c.Split(text[start:next]) {
		if start+s > pos {
			return start + s, false
		}
	}
	return next, more
}

// Prev returns the previous component or word boundary before pos.
func (c *Compound) Prev(text []rune, pos int) (int, bool) {
	if pos > len(text) {
		pos = len(text)
	}
	prev, more := c.base.Prev(text, pos)

	end := pos
	if !c.baseBreakAt(text, pos) {
		end, _ = c.base.Next(text, pos)
	}
	splits := c.Split(text[prev:end])
	for i := len(splits) - 1; i >= 0; i-- {
		if prev+splits[i] < pos {
			return prev + splits[i], false
		}
	}
	return prev, more
}

func (c *Compound) baseBreakAt(text []rune, pos int) bool {
	if pos <= 0 || pos >= len(text) {
		return true
	}
	return c.base.BreakInBetween(text[:pos], text[pos:])
}

// Split returns the offsets inside word at which its components meet, or nil
// when word does not decompose.
func (c *Compound) Split(word []rune) []int {
	if len(word) < 2*minComponent || len(word) > maxCompound || !isLetters(word) {
		return nil
	}
	key := strings.ToLower(string(word))
	if utf8.RuneCountInString(key) != len(word) {
		// Offsets into the lowered key would not line up with word.
		return nil
	}

	if c.cache == nil {
		return c.splitUncached(key)
	}
	if splits, ok := c.cache.Get(key); ok {
		return splits
	}
	splits := c.splitUncached(key)
	c.cache.Add(key, splits)
	return splits
}

// splitUncached splits greedily from the left, longest component first.
func (c *Compound) splitUncached(word string) []int {
	runes := []rune(word)
	var splits []int

	for at := 0; at < len(runes); {
		found := false
		for length := len(runes) - at; length >= minComponent; length-- {
			if c.isComponent(string(runes[at : at+length])) {
				at += length
				found = true
				break
			}
		}
		if !found {
			return nil
		}
		if at < len(runes) {
			splits = append(splits, at)
		}
	}
	return splits
}

// isComponent checks the dictionary directly and with umlauts folded.
func (c *Compound) isComponent(s string) bool {
	if c.dict.Contains(s) {
		return true
	}
	folded := foldUmlauts(s)
	return folded != s && c.dict.Contains(folded)
}

// umlautFolder maps ä→a, ö→o, ü→u, ß→ss for dictionary lookups only.
var umlautFolder = strings.NewReplacer(
	"ä", "a", "Ä", "a",
	"ö", "o", "Ö", "o",
	"ü", "u", "Ü", "u",
	"ß", "ss",
)

func foldUmlauts(s string) string {
	return umlautFolder.Replace(s)
}

func isLetters(word []rune) bool {
	for _, r := range word {
		if !unicode.IsLetter(r) && !unicode.IsMark(r) {
			return false
		}
	}
	return true
}

// ClearCache empties the split cache.
func (c *Compound) ClearCache() {
	if c.cache != nil {
		c.cache.Purge()
	}
}

// CacheSize returns the number of cached splits (0 if caching is disabled).
func (c *Compound) CacheSize() int {
	if c.cache == nil {
		return 0
	}
	return c.cache.Len()
}

// CacheEnabled returns true if caching is enabled.
func (c *Compound) CacheEnabled() bool {
	return c.cache != nil
}
