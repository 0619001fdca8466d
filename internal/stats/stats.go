// Package stats derives the numbers shown on the progress report:
// overview counts, per-unit and per-category progress, and recent quiz
// scores. Everything here is a pure function over catalog and progress
// data; nothing is cached.
package stats

import (
	"math"

	"github.com/abhisek/lexio/internal/catalog"
	"github.com/abhisek/lexio/internal/progress"
)

// Overview summarizes overall learning state.
type Overview struct {
	TotalWords      int
	Mastered        int
	Favorites       int
	TodayLearned    int
	Remaining       int
	MasteredPercent int
}

// BuildOverview computes the headline numbers.
func BuildOverview(cat *catalog.Catalog, mastered, favorite map[int]bool, todayLearned int) Overview {
	total := cat.Len()
	percent := 0
	if total > 0 {
		percent = int(math.Round(float64(len(mastered)) / float64(total) * 100))
	}
	return Overview{
		TotalWords:      total,
		Mastered:        len(mastered),
		Favorites:       len(favorite),
		TodayLearned:    todayLearned,
		Remaining:       total - len(mastered),
		MasteredPercent: percent,
	}
}

// UnitStat is mastery progress within one unit.
type UnitStat struct {
	Unit     catalog.Unit
	Total    int
	Mastered int
	Percent  float64
}

// UnitProgress computes per-unit mastery, in unit order.
func UnitProgress(cat *catalog.Catalog, mastered map[int]bool) []UnitStat {
	var out []UnitStat
	for _, u := range cat.Units() {
		words := cat.ByUnit(u)
		st := UnitStat{Unit: u, Total: len(words)}
		for _, w := range words {
			if mastered[w.ID] {
				st.Mastered++
			}
		}
		if st.Total > 0 {
			st.Percent = float64(st.Mastered) / float64(st.Total) * 100
		}
		out = append(out, st)
	}
	return out
}

// CategoryStat is total vs mastered counts for one category.
type CategoryStat struct {
	Category string
	Total    int
	Mastered int
}

// CategoryBreakdown computes per-category counts, alphabetically.
func CategoryBreakdown(cat *catalog.Catalog, mastered map[int]bool) []CategoryStat {
	byName := make(map[string]*CategoryStat)
	for _, w := range cat.All() {
		st, ok := byName[w.Category]
		if !ok {
			st = &CategoryStat{Category: w.Category}
			byName[w.Category] = st
		}
		st.Total++
		if mastered[w.ID] {
			st.Mastered++
		}
	}

	var out []CategoryStat
	for _, name := range cat.Categories() {
		out = append(out, *byName[name])
	}
	return out
}

// RecentScores returns the score percents of the last n test results,
// oldest first.
func RecentScores(results []progress.TestResult, n int) []int {
	if len(results) > n {
		results = results[len(results)-n:]
	}
	scores := make([]int, len(results))
	for i, r := range results {
		scores[i] = r.Score
	}
	return scores
}
