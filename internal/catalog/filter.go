package catalog

import "strings"

// Search returns the words whose english term, chinese translation or
// phonetic transcription contains the term. Matching is case-insensitive
// on the english side; an empty term matches everything.
func (c *Catalog) Search(term string) []Word {
	return Match(c.words, term)
}

// Match is Search over an arbitrary word slice.
func Match(words []Word, term string) []Word {
	term = strings.ToLower(strings.TrimSpace(term))
	if term == "" {
		return words
	}
	var out []Word
	for _, w := range words {
		if strings.Contains(strings.ToLower(w.English), term) ||
			strings.Contains(w.Chinese, term) ||
			strings.Contains(w.Phonetic, term) {
			out = append(out, w)
		}
	}
	return out
}

// FilterOpts narrows a word list. Zero values mean "no constraint":
// a nil Unit matches every unit, an empty Category or Difficulty matches
// every category or difficulty.
type FilterOpts struct {
	Unit       *Unit
	Category   string
	Difficulty Difficulty
}

// Filter returns the words matching every set constraint in opts.
func (c *Catalog) Filter(opts FilterOpts) []Word {
	var out []Word
	for _, w := range c.words {
		if opts.Unit != nil && w.Unit != *opts.Unit {
			continue
		}
		if opts.Category != "" && w.Category != opts.Category {
			continue
		}
		if opts.Difficulty != "" && w.Difficulty != opts.Difficulty {
			continue
		}
		out = append(out, w)
	}
	return out
}
