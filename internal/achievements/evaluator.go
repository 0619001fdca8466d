// Package achievements evaluates the learner's achievement badges.
// Every predicate is pure and recomputed on demand; nothing caches an
// unlocked flag, so progress changes are reflected on the next
// evaluation without any invalidation step.
package achievements

import (
	"time"

	"github.com/abhisek/lexio/internal/catalog"
	"github.com/abhisek/lexio/internal/progress"
)

// Achievement describes one badge.
type Achievement struct {
	ID          string
	Title       string
	Description string
}

// Status pairs an achievement with its current unlocked state.
type Status struct {
	Achievement
	Unlocked bool
}

// Snapshot is the progress data a single evaluation reads. Callers build
// it from the progress store; the evaluator itself never touches storage.
type Snapshot struct {
	MasteredIDs   map[int]bool
	FavoriteIDs   map[int]bool
	TodayLearned  int
	TodayMastered int
	Results       []progress.TestResult
	VisitDays     map[string]bool
}

type definition struct {
	Achievement
	unlocked func(snap Snapshot, cat *catalog.Catalog, today time.Time) bool
}

var definitions = []definition{
	{
		Achievement{ID: "first_word", Title: "First Word", Description: "Master your first word"},
		func(s Snapshot, _ *catalog.Catalog, _ time.Time) bool { return len(s.MasteredIDs) >= 1 },
	},
	{
		Achievement{ID: "ten_words", Title: "Getting Started", Description: "Master 10 words"},
		func(s Snapshot, _ *catalog.Catalog, _ time.Time) bool { return len(s.MasteredIDs) >= 10 },
	},
	{
		Achievement{ID: "fifty_words", Title: "Dedicated Learner", Description: "Master 50 words"},
		func(s Snapshot, _ *catalog.Catalog, _ time.Time) bool { return len(s.MasteredIDs) >= 50 },
	},
	{
		Achievement{ID: "hundred_words", Title: "Vocabulary Master", Description: "Master 100 words"},
		func(s Snapshot, _ *catalog.Catalog, _ time.Time) bool { return len(s.MasteredIDs) >= 100 },
	},
	{
		Achievement{ID: "first_test", Title: "First Test", Description: "Complete your first quiz"},
		func(s Snapshot, _ *catalog.Catalog, _ time.Time) bool { return len(s.Results) >= 1 },
	},
	{
		Achievement{ID: "perfect_score", Title: "Perfect Score", Description: "Score 100% on a quiz"},
		func(s Snapshot, _ *catalog.Catalog, _ time.Time) bool {
			for _, r := range s.Results {
				if r.Score == 100 {
					return true
				}
			}
			return false
		},
	},
	{
		Achievement{ID: "favorite_collector", Title: "Collector", Description: "Favorite 20 words"},
		func(s Snapshot, _ *catalog.Catalog, _ time.Time) bool { return len(s.FavoriteIDs) >= 20 },
	},
	{
		Achievement{ID: "daily_learner", Title: "Daily Learner", Description: "Learn 10 words in one day"},
		func(s Snapshot, _ *catalog.Catalog, _ time.Time) bool { return s.TodayLearned >= 10 },
	},
	{
		Achievement{ID: "consistent_learner", Title: "Consistency", Description: "Study 7 days in a row"},
		func(s Snapshot, _ *catalog.Catalog, today time.Time) bool {
			return ConsecutiveDays(s.VisitDays, today) >= 7
		},
	},
	{
		Achievement{ID: "unit_master", Title: "Unit Expert", Description: "Master every word in a unit"},
		func(s Snapshot, cat *catalog.Catalog, _ time.Time) bool {
			return unitComplete(cat, s.MasteredIDs)
		},
	},
	{
		Achievement{ID: "speed_learner", Title: "Fast Track", Description: "Master 20 words in one day"},
		func(s Snapshot, _ *catalog.Catalog, _ time.Time) bool { return s.TodayMastered >= 20 },
	},
	{
		Achievement{ID: "test_regular", Title: "Quiz Regular", Description: "Complete 10 quizzes"},
		func(s Snapshot, _ *catalog.Catalog, _ time.Time) bool { return len(s.Results) >= 10 },
	},
}

// All returns the full achievement list in display order.
func All() []Achievement {
	out := make([]Achievement, len(definitions))
	for i, d := range definitions {
		out[i] = d.Achievement
	}
	return out
}

// Evaluate computes the unlocked state of every achievement from snap.
func Evaluate(snap Snapshot, cat *catalog.Catalog, today time.Time) []Status {
	out := make([]Status, len(definitions))
	for i, d := range definitions {
		out[i] = Status{
			Achievement: d.Achievement,
			Unlocked:    d.unlocked(snap, cat, today),
		}
	}
	return out
}

// unitComplete reports whether some non-empty unit has every word
// mastered.
func unitComplete(cat *catalog.Catalog, mastered map[int]bool) bool {
	for _, u := range cat.Units() {
		words := cat.ByUnit(u)
		if len(words) == 0 {
			continue
		}
		done := true
		for _, w := range words {
			if !mastered[w.ID] {
				done = false
				break
			}
		}
		if done {
			return true
		}
	}
	return false
}
