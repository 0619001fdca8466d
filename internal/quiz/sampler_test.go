package quiz

import (
	"errors"
	"fmt"
	"math/rand"
	"testing"

	"github.com/abhisek/lexio/internal/catalog"
)

func wordList(n int) []catalog.Word {
	words := make([]catalog.Word, n)
	for i := range words {
		words[i] = catalog.Word{
			ID:         i + 1,
			English:    fmt.Sprintf("word%d", i+1),
			Chinese:    fmt.Sprintf("词%d", i+1),
			Unit:       catalog.Unit(i%3 + 1),
			Difficulty: catalog.DifficultyEasy,
		}
	}
	return words
}

func testCatalog(t *testing.T, n int) *catalog.Catalog {
	t.Helper()
	c, err := catalog.New(wordList(n))
	if err != nil {
		t.Fatal(err)
	}
	return c
}

func seededSampler(seed int64) *Sampler {
	return NewSampler(rand.New(rand.NewSource(seed)))
}

func TestDraw_DistinctMembers(t *testing.T) {
	pool := wordList(20)
	s := seededSampler(1)

	got, err := s.Draw(pool, 10)
	if err != nil {
		t.Fatalf("draw: %v", err)
	}
	if len(got) != 10 {
		t.Fatalf("drew %d words, want 10", len(got))
	}

	inPool := make(map[int]bool, len(pool))
	for _, w := range pool {
		inPool[w.ID] = true
	}
	seen := make(map[int]bool)
	for _, w := range got {
		if seen[w.ID] {
			t.Errorf("word %d drawn twice", w.ID)
		}
		seen[w.ID] = true
		if !inPool[w.ID] {
			t.Errorf("word %d not in pool", w.ID)
		}
	}
}

func TestDraw_InsufficientPool(t *testing.T) {
	pool := wordList(5)
	s := seededSampler(1)

	_, err := s.Draw(pool, 10)
	var poolErr *InsufficientPoolError
	if !errors.As(err, &poolErr) {
		t.Fatalf("err = %v, want InsufficientPoolError", err)
	}
	if poolErr.Have != 5 || poolErr.Need != 10 {
		t.Errorf("Have/Need = %d/%d, want 5/10", poolErr.Have, poolErr.Need)
	}
}

func TestShuffle_DoesNotModifyInput(t *testing.T) {
	pool := wordList(10)
	first := pool[0].ID
	s := seededSampler(42)

	shuffled := s.Shuffle(pool)
	if pool[0].ID != first {
		t.Error("input slice was modified")
	}
	if len(shuffled) != len(pool) {
		t.Fatalf("shuffle changed length: %d", len(shuffled))
	}
}

// Position frequency over many trials should be roughly uniform: with 6
// words and 6000 trials each word lands in slot 0 about 1000 times.
func TestDraw_UniformPositions(t *testing.T) {
	pool := wordList(6)
	s := seededSampler(7)

	const trials = 6000
	firstSlot := make(map[int]int)
	for i := 0; i < trials; i++ {
		got, err := s.Draw(pool, len(pool))
		if err != nil {
			t.Fatal(err)
		}
		firstSlot[got[0].ID]++
	}

	expected := trials / len(pool)
	for id, count := range firstSlot {
		if count < expected*7/10 || count > expected*13/10 {
			t.Errorf("word %d in first slot %d times, expected around %d", id, count, expected)
		}
	}
}

func TestDistractors_ExcludeCorrectWord(t *testing.T) {
	cat := testCatalog(t, 20)
	s := seededSampler(3)
	correct := cat.All()[0]

	got := s.Distractors(correct, cat)
	if len(got) != 3 {
		t.Fatalf("got %d distractors, want 3", len(got))
	}
	for _, w := range got {
		if w.ID == correct.ID {
			t.Error("correct word appeared as a distractor")
		}
	}
}

func TestDistractors_SmallCatalogDegrades(t *testing.T) {
	cat := testCatalog(t, 3)
	s := seededSampler(3)
	correct := cat.All()[0]

	got := s.Distractors(correct, cat)
	if len(got) != 2 {
		t.Errorf("got %d distractors from a 3-word catalog, want 2", len(got))
	}
}

func TestOptionSet_CorrectExactlyOnce(t *testing.T) {
	cat := testCatalog(t, 20)
	s := seededSampler(9)
	correct := cat.All()[4]

	for trial := 0; trial < 200; trial++ {
		options := s.OptionSet(correct, cat)
		if len(options) != 4 {
			t.Fatalf("option set has %d entries, want 4", len(options))
		}
		seen := make(map[int]bool)
		correctCount := 0
		for _, w := range options {
			if seen[w.ID] {
				t.Fatalf("duplicate option id %d", w.ID)
			}
			seen[w.ID] = true
			if w.ID == correct.ID {
				correctCount++
			}
		}
		if correctCount != 1 {
			t.Fatalf("correct word appears %d times, want exactly 1", correctCount)
		}
	}
}

func TestOptionSet_CorrectPositionUniform(t *testing.T) {
	cat := testCatalog(t, 20)
	s := seededSampler(11)
	correct := cat.All()[0]

	const trials = 4000
	positions := make([]int, 4)
	for i := 0; i < trials; i++ {
		options := s.OptionSet(correct, cat)
		for pos, w := range options {
			if w.ID == correct.ID {
				positions[pos]++
			}
		}
	}

	expected := trials / 4
	for pos, count := range positions {
		if count < expected*7/10 || count > expected*13/10 {
			t.Errorf("correct word at position %d %d times, expected around %d", pos, count, expected)
		}
	}
}

func TestCandidatePool_Ranges(t *testing.T) {
	cat := testCatalog(t, 9) // units cycle 1,2,3
	mastered := map[int]bool{1: true, 4: true}
	favorite := map[int]bool{2: true}

	tests := []struct {
		name string
		r    Range
		want int
	}{
		{"all", Range{Kind: RangeAll}, 9},
		{"mastered", Range{Kind: RangeMastered}, 2},
		{"favorite", Range{Kind: RangeFavorite}, 1},
		{"unit 2", UnitRange(2), 3},
		{"empty unit", UnitRange(14), 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := CandidatePool(tt.r, cat, mastered, favorite)
			if len(got) != tt.want {
				t.Errorf("pool size = %d, want %d", len(got), tt.want)
			}
		})
	}
}
