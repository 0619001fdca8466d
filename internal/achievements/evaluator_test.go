package achievements

import (
	"testing"
	"time"

	"github.com/abhisek/lexio/internal/catalog"
	"github.com/abhisek/lexio/internal/progress"
)

func testCatalog(t *testing.T) *catalog.Catalog {
	t.Helper()
	c, err := catalog.New([]catalog.Word{
		{ID: 1, English: "apple", Unit: 1, Difficulty: catalog.DifficultyEasy},
		{ID: 2, English: "bread", Unit: 1, Difficulty: catalog.DifficultyEasy},
		{ID: 3, English: "tiger", Unit: 2, Difficulty: catalog.DifficultyEasy},
	})
	if err != nil {
		t.Fatal(err)
	}
	return c
}

func statusByID(statuses []Status, id string) (Status, bool) {
	for _, st := range statuses {
		if st.ID == id {
			return st, true
		}
	}
	return Status{}, false
}

func TestFirstWord_FlipsWithoutReset(t *testing.T) {
	cat := testCatalog(t)
	now := time.Now()

	snap := Snapshot{MasteredIDs: map[int]bool{}}
	st, ok := statusByID(Evaluate(snap, cat, now), "first_word")
	if !ok {
		t.Fatal("first_word achievement missing")
	}
	if st.Unlocked {
		t.Error("first_word unlocked with no mastered words")
	}

	// Same evaluator, grown snapshot: unlocks with no reset call.
	snap.MasteredIDs[1] = true
	st, _ = statusByID(Evaluate(snap, cat, now), "first_word")
	if !st.Unlocked {
		t.Error("first_word still locked after mastering a word")
	}
}

func TestThresholdPredicates(t *testing.T) {
	cat := testCatalog(t)
	now := time.Now()

	mastered := make(map[int]bool)
	for i := 1; i <= 10; i++ {
		mastered[i] = true
	}
	favorites := make(map[int]bool)
	for i := 1; i <= 20; i++ {
		favorites[i] = true
	}
	results := make([]progress.TestResult, 10)

	snap := Snapshot{
		MasteredIDs:   mastered,
		FavoriteIDs:   favorites,
		TodayLearned:  10,
		TodayMastered: 20,
		Results:       results,
	}
	statuses := Evaluate(snap, cat, now)

	wantUnlocked := map[string]bool{
		"first_word":         true,
		"ten_words":          true,
		"fifty_words":        false,
		"hundred_words":      false,
		"first_test":         true,
		"test_regular":       true,
		"favorite_collector": true,
		"daily_learner":      true,
		"speed_learner":      true,
	}
	for id, want := range wantUnlocked {
		st, ok := statusByID(statuses, id)
		if !ok {
			t.Errorf("achievement %s missing", id)
			continue
		}
		if st.Unlocked != want {
			t.Errorf("%s unlocked = %v, want %v", id, st.Unlocked, want)
		}
	}
}

func TestPerfectScore(t *testing.T) {
	cat := testCatalog(t)
	now := time.Now()

	snap := Snapshot{Results: []progress.TestResult{{Score: 90}, {Score: 80}}}
	st, _ := statusByID(Evaluate(snap, cat, now), "perfect_score")
	if st.Unlocked {
		t.Error("perfect_score unlocked without a 100")
	}

	snap.Results = append(snap.Results, progress.TestResult{Score: 100})
	st, _ = statusByID(Evaluate(snap, cat, now), "perfect_score")
	if !st.Unlocked {
		t.Error("perfect_score locked despite a 100")
	}
}

func TestUnitMaster(t *testing.T) {
	cat := testCatalog(t)
	now := time.Now()

	// Unit 1 has words 1 and 2; mastering only one is not enough.
	snap := Snapshot{MasteredIDs: map[int]bool{1: true}}
	st, _ := statusByID(Evaluate(snap, cat, now), "unit_master")
	if st.Unlocked {
		t.Error("unit_master unlocked with a partial unit")
	}

	snap.MasteredIDs[2] = true
	st, _ = statusByID(Evaluate(snap, cat, now), "unit_master")
	if !st.Unlocked {
		t.Error("unit_master locked with unit 1 fully mastered")
	}
}

func TestConsecutiveDays(t *testing.T) {
	today := time.Date(2026, 3, 10, 12, 0, 0, 0, time.Local)
	stamp := func(daysAgo int) string {
		return today.AddDate(0, 0, -daysAgo).Format("2006-01-02")
	}

	tests := []struct {
		name string
		days map[string]bool
		want int
	}{
		{"no history", map[string]bool{}, 1},
		{"today only", map[string]bool{stamp(0): true}, 1},
		{"three in a row", map[string]bool{stamp(0): true, stamp(1): true, stamp(2): true}, 3},
		{"gap stops the count", map[string]bool{stamp(0): true, stamp(1): true, stamp(3): true}, 2},
		{"week streak", map[string]bool{
			stamp(0): true, stamp(1): true, stamp(2): true, stamp(3): true,
			stamp(4): true, stamp(5): true, stamp(6): true,
		}, 7},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ConsecutiveDays(tt.days, today)
			if got != tt.want {
				t.Errorf("ConsecutiveDays = %d, want %d", got, tt.want)
			}
		})
	}
}

func TestConsistentLearner(t *testing.T) {
	cat := testCatalog(t)
	today := time.Date(2026, 3, 10, 12, 0, 0, 0, time.Local)

	days := make(map[string]bool)
	for i := 1; i < 7; i++ {
		days[today.AddDate(0, 0, -i).Format("2006-01-02")] = true
	}

	st, _ := statusByID(Evaluate(Snapshot{VisitDays: days}, cat, today), "consistent_learner")
	if !st.Unlocked {
		t.Error("consistent_learner locked with a 7-day streak (6 prior days + today)")
	}
}
