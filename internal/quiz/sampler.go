package quiz

import (
	"math/rand"
	"time"

	"github.com/abhisek/lexio/internal/catalog"
)

// distractorCount is the number of wrong options shown next to the
// correct answer in a choice question.
const distractorCount = 3

// Sampler draws question sequences and option sets from the catalog.
// The random source is injected so tests can seed it.
type Sampler struct {
	rng *rand.Rand
}

// NewSampler creates a Sampler backed by rng. A nil rng gets a
// time-seeded source.
func NewSampler(rng *rand.Rand) *Sampler {
	if rng == nil {
		rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	return &Sampler{rng: rng}
}

// CandidatePool filters the catalog down to the words covered by r.
// The mastered and favorite sets come from the progress store.
func CandidatePool(r Range, cat *catalog.Catalog, mastered, favorite map[int]bool) []catalog.Word {
	switch r.Kind {
	case RangeMastered:
		return filterByIDs(cat.All(), mastered)
	case RangeFavorite:
		return filterByIDs(cat.All(), favorite)
	case RangeUnit:
		return cat.ByUnit(r.Unit)
	default:
		return cat.All()
	}
}

func filterByIDs(words []catalog.Word, ids map[int]bool) []catalog.Word {
	var out []catalog.Word
	for _, w := range words {
		if ids[w.ID] {
			out = append(out, w)
		}
	}
	return out
}

// Shuffle returns a uniformly shuffled copy of words. The input is never
// modified.
func (s *Sampler) Shuffle(words []catalog.Word) []catalog.Word {
	shuffled := make([]catalog.Word, len(words))
	copy(shuffled, words)
	for i := len(shuffled) - 1; i > 0; i-- {
		j := s.rng.Intn(i + 1)
		shuffled[i], shuffled[j] = shuffled[j], shuffled[i]
	}
	return shuffled
}

// Draw selects n distinct words from pool, uniformly at random. It fails
// with InsufficientPoolError when the pool is too small.
func (s *Sampler) Draw(pool []catalog.Word, n int) ([]catalog.Word, error) {
	if len(pool) < n {
		return nil, &InsufficientPoolError{Have: len(pool), Need: n}
	}
	return s.Shuffle(pool)[:n], nil
}

// Distractors picks up to three words from the catalog to serve as wrong
// options for correct. A short catalog yields fewer distractors; that is
// not an error.
func (s *Sampler) Distractors(correct catalog.Word, cat *catalog.Catalog) []catalog.Word {
	others := make([]catalog.Word, 0, cat.Len())
	for _, w := range cat.All() {
		if w.ID != correct.ID {
			others = append(others, w)
		}
	}
	shuffled := s.Shuffle(others)
	if len(shuffled) > distractorCount {
		shuffled = shuffled[:distractorCount]
	}
	return shuffled
}

// OptionSet builds the options for a choice question: the correct word
// plus its distractors, shuffled so the correct answer's position is
// uniform. The result holds at most four words, pairwise distinct by id,
// with correct appearing exactly once. Option sets are rebuilt each time
// a question is displayed; their order is not reproducible.
func (s *Sampler) OptionSet(correct catalog.Word, cat *catalog.Catalog) []catalog.Word {
	options := append([]catalog.Word{correct}, s.Distractors(correct, cat)...)
	return s.Shuffle(options)
}
