package breaker

import (
	"bufio"
	"bytes"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"sync"

	"github.com/blevesearch/vellum"
)

// Dictionary is a set of word components stored in an FST. A file-backed
// dictionary keeps its word list in a text file and caches the FST next to it.
type Dictionary struct {
	mu      sync.RWMutex
	fst     *vellum.FST
	words   map[string]struct{} // source of truth for modifications
	txtPath string
	fstPath string
}

// NewDictionary loads a word list (one word per line, '#' comments) and opens
// the FST cached beside it, building it when missing.
func NewDictionary(txtPath string) (*Dictionary, error) {
	d := &Dictionary{
		words:   make(map[string]struct{}),
		txtPath: txtPath,
		fstPath: strings.TrimSuffix(txtPath, ".txt") + ".fst",
	}

	f, err := os.Open(txtPath)
	if err != nil {
		return nil, fmt.Errorf("open dictionary: %w", err)
	}
	defer f.Close()
	if err := d.readWords(f); err != nil {
		return nil, fmt.Errorf("read dictionary: %w", err)
	}

	if fst, err := vellum.Open(d.fstPath); err == nil {
		d.fst = fst
		return d, nil
	}
	if err := d.rebuild(false); err != nil {
		return nil, err
	}
	return d, nil
}

// NewDictionaryFromWords builds an in-memory dictionary. Changes to it are
// never persisted.
func NewDictionaryFromWords(words ...string) (*Dictionary, error) {
	d := &Dictionary{words: make(map[string]struct{}, len(words))}
	for _, w := range words {
		if w = strings.TrimSpace(w); w != "" {
			d.words[strings.ToLower(w)] = struct{}{}
		}
	}
	if err := d.rebuild(false); err != nil {
		return nil, err
	}
	return d, nil
}

func (d *Dictionary) readWords(r io.Reader) error {
	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		word := strings.TrimSpace(scanner.Text())
		if word == "" || strings.HasPrefix(word, "#") {
			continue
		}
		d.words[strings.ToLower(word)] = struct{}{}
	}
	return scanner.Err()
}

// Contains reports whether word is in the dictionary, ignoring case.
func (d *Dictionary) Contains(word string) bool {
	key := []byte(strings.ToLower(word))

	d.mu.RLock()
	defer d.mu.RUnlock()

	if d.fst == nil {
		return false
	}
	_, exists, _ := d.fst.Get(key)
	return exists
}

// AddWord adds a word and rebuilds the FST.
func (d *Dictionary) AddWord(word string) error {
	d.mu.Lock()
	defer d.mu.Unlock()

	d.words[strings.ToLower(word)] = struct{}{}
	return d.rebuild(true)
}

// RemoveWord removes a word and rebuilds the FST.
func (d *Dictionary) RemoveWord(word string) error {
	d.mu.Lock()
	defer d.mu.Unlock()

	delete(d.words, strings.ToLower(word))
	return d.rebuild(true)
}

// Rebuild rebuilds the FST from the word set and persists file-backed
// dictionaries.
func (d *Dictionary) Rebuild() error {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.rebuild(true)
}

// rebuild expects d.mu to be held, or d not yet shared. saveList rewrites
// the word list of a file-backed dictionary as well.
func (d *Dictionary) rebuild(saveList bool) error {
	sorted := d.sortedWords()

	var buf bytes.Buffer
	builder, err := vellum.New(&buf, nil)
	if err != nil {
		return fmt.Errorf("create fst builder: %w", err)
	}
	for _, word := range sorted {
		if err := builder.Insert([]byte(word), 0); err != nil {
			builder.Close()
			return fmt.Errorf("insert %q: %w", word, err)
		}
	}
	if err := builder.Close(); err != nil {
		return fmt.Errorf("finish fst: %w", err)
	}

	if d.fstPath != "" {
		if err := writeFileAtomic(d.fstPath, buf.Bytes()); err != nil {
			return fmt.Errorf("write fst: %w", err)
		}
	}

	fst, err := vellum.Load(buf.Bytes())
	if err != nil {
		return fmt.Errorf("load fst: %w", err)
	}
	if d.fst != nil {
		d.fst.Close()
	}
	d.fst = fst

	if saveList && d.txtPath != "" {
		return d.saveWords(sorted)
	}
	return nil
}

func (d *Dictionary) saveWords(sorted []string) error {
	f, err := os.Create(d.txtPath)
	if err != nil {
		return fmt.Errorf("save dictionary: %w", err)
	}
	defer f.Close()

	w := bufio.NewWriter(f)
	for _, word := range sorted {
		if _, err := w.WriteString(word + "\n"); err != nil {
			return fmt.Errorf("save dictionary: %w", err)
		}
	}
	return w.Flush()
}

// writeFileAtomic replaces path through a rename, so an FST that is still
// mapped from the old file stays readable.
func writeFileAtomic(path string, data []byte) error {
	tmp, err := os.CreateTemp(filepath.Dir(path), filepath.Base(path)+".*")
	if err != nil {
		return err
	}
	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(tmp.Name())
		return err
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmp.Name())
		return err
	}
	return os.Rename(tmp.Name(), path)
}

func (d *Dictionary) sortedWords() []string {
	sorted := make([]string, 0, len(d.words))
	for word := range d.words {
		sorted = append(sorted, word)
	}
	sort.Strings(sorted)
	return sorted
}

// Close releases the FST.
func (d *Dictionary) Close() error {
	d.mu.Lock()
	defer d.mu.Unlock()

	if d.fst == nil {
		return nil
	}
	err := d.fst.Close()
	d.fst = nil
	return err
}

// WordCount returns the number of words in the dictionary.
func (d *Dictionary) WordCount() int {
	d.mu.RLock()
	defer d.mu.RUnlock()
	return len(d.words)
}
