package catalog

import (
	_ "embed"
	"encoding/json"
	"fmt"
	"os"
	"sort"
)

//go:embed words.json
var embeddedWords []byte

// Catalog is the read-only word list the whole application works from.
type Catalog struct {
	words []Word
	byID  map[int]Word
}

// New builds a Catalog from a word list, validating each record.
func New(words []Word) (*Catalog, error) {
	byID := make(map[int]Word, len(words))
	for _, w := range words {
		if w.English == "" {
			return nil, fmt.Errorf("word %d: empty english term", w.ID)
		}
		if !w.Difficulty.Valid() {
			return nil, fmt.Errorf("word %d (%s): unknown difficulty %q", w.ID, w.English, w.Difficulty)
		}
		if _, dup := byID[w.ID]; dup {
			return nil, fmt.Errorf("duplicate word id %d", w.ID)
		}
		byID[w.ID] = w
	}
	return &Catalog{words: words, byID: byID}, nil
}

// Load parses a Catalog from JSON word-list data.
func Load(data []byte) (*Catalog, error) {
	var words []Word
	if err := json.Unmarshal(data, &words); err != nil {
		return nil, fmt.Errorf("parse word list: %w", err)
	}
	return New(words)
}

// LoadFile loads a Catalog from a word-list file on disk.
func LoadFile(path string) (*Catalog, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read word list: %w", err)
	}
	return Load(data)
}

// Default returns the Catalog built from the embedded word list.
func Default() (*Catalog, error) {
	return Load(embeddedWords)
}

// All returns every word in catalog order. Callers must not modify the
// returned slice.
func (c *Catalog) All() []Word {
	return c.words
}

// Len returns the number of words in the catalog.
func (c *Catalog) Len() int {
	return len(c.words)
}

// ByID looks up a word by id.
func (c *Catalog) ByID(id int) (Word, bool) {
	w, ok := c.byID[id]
	return w, ok
}

// ByUnit returns all words in the given unit.
func (c *Catalog) ByUnit(u Unit) []Word {
	var out []Word
	for _, w := range c.words {
		if w.Unit == u {
			out = append(out, w)
		}
	}
	return out
}

// Units returns the distinct units present in the catalog, ascending.
func (c *Catalog) Units() []Unit {
	seen := make(map[Unit]bool)
	var units []Unit
	for _, w := range c.words {
		if !seen[w.Unit] {
			seen[w.Unit] = true
			units = append(units, w.Unit)
		}
	}
	sort.Slice(units, func(i, j int) bool { return units[i] < units[j] })
	return units
}

// Categories returns the distinct categories present in the catalog,
// sorted alphabetically.
func (c *Catalog) Categories() []string {
	seen := make(map[string]bool)
	var cats []string
	for _, w := range c.words {
		if !seen[w.Category] {
			seen[w.Category] = true
			cats = append(cats, w.Category)
		}
	}
	sort.Strings(cats)
	return cats
}
