package progress

import (
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	s, err := Open(filepath.Join(t.TempDir(), "test.db"))
	require.NoError(t, err, "open test store")
	t.Cleanup(func() { s.Close() })
	return s
}

func TestPragmasApplied(t *testing.T) {
	s := openTestStore(t)

	tests := []struct {
		pragma string
		want   string
	}{
		{"journal_mode", "wal"},
		{"foreign_keys", "1"},
		{"synchronous", "1"}, // NORMAL = 1
	}

	for _, tt := range tests {
		var got string
		err := s.DB().QueryRow("PRAGMA " + tt.pragma).Scan(&got)
		require.NoError(t, err, "PRAGMA %s", tt.pragma)
		assert.Equal(t, tt.want, got, "PRAGMA %s", tt.pragma)
	}
}

func TestToggleMastered(t *testing.T) {
	s := openTestStore(t)

	on, err := s.ToggleMastered(7)
	require.NoError(t, err)
	assert.True(t, on, "first toggle should flag the word")

	ids, err := s.MasteredIDs()
	require.NoError(t, err)
	assert.True(t, ids[7])

	// Mastering also lands in today's mastered set.
	n, err := s.TodayMasteredCount()
	require.NoError(t, err)
	assert.Equal(t, 1, n)

	off, err := s.ToggleMastered(7)
	require.NoError(t, err)
	assert.False(t, off, "second toggle should clear the flag")

	ids, err = s.MasteredIDs()
	require.NoError(t, err)
	assert.Empty(t, ids)
}

func TestToggleFavoriteAndClear(t *testing.T) {
	s := openTestStore(t)

	for _, id := range []int{1, 2, 3} {
		on, err := s.ToggleFavorite(id)
		require.NoError(t, err)
		assert.True(t, on)
	}

	ids, err := s.FavoriteIDs()
	require.NoError(t, err)
	assert.Len(t, ids, 3)

	require.NoError(t, s.ClearFavorites())

	ids, err = s.FavoriteIDs()
	require.NoError(t, err)
	assert.Empty(t, ids)
}

func TestMarkLearned_DedupesWithinDay(t *testing.T) {
	s := openTestStore(t)

	require.NoError(t, s.MarkLearned(5))
	require.NoError(t, s.MarkLearned(5))
	require.NoError(t, s.MarkLearned(6))

	n, err := s.TodayLearnedCount()
	require.NoError(t, err)
	assert.Equal(t, 2, n)
}

func TestDailyLearnedCounts(t *testing.T) {
	s := openTestStore(t)

	require.NoError(t, s.MarkLearned(1))
	require.NoError(t, s.MarkLearned(2))

	counts, err := s.DailyLearnedCounts(7)
	require.NoError(t, err)
	require.Len(t, counts, 7)

	// Oldest first; today is the last entry.
	assert.Equal(t, 2, counts[6].Count)
	for i := 0; i < 6; i++ {
		assert.Equal(t, 0, counts[i].Count, "day %d should be empty", i)
	}
}

func TestRecordVisit_Idempotent(t *testing.T) {
	s := openTestStore(t)

	require.NoError(t, s.RecordVisit())
	require.NoError(t, s.RecordVisit())

	days, err := s.VisitDays()
	require.NoError(t, err)
	assert.Len(t, days, 1)
	assert.True(t, days[time.Now().Format("2006-01-02")])
}

func TestAppendResultAndHistory(t *testing.T) {
	s := openTestStore(t)

	first := TestResult{
		Date:    time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC),
		Type:    "choice",
		Score:   80,
		Correct: 8,
		Wrong:   2,
		Total:   10,
	}
	second := TestResult{
		Date:    time.Date(2026, 3, 2, 9, 30, 0, 0, time.UTC),
		Type:    "spell",
		Score:   100,
		Correct: 5,
		Wrong:   0,
		Total:   5,
	}

	require.NoError(t, s.AppendResult("session-a", first))
	require.NoError(t, s.AppendResult("session-b", second))

	history, err := s.History()
	require.NoError(t, err)
	require.Len(t, history, 2)

	// Append order preserved.
	assert.Equal(t, first, history[0])
	assert.Equal(t, second, history[1])
	assert.Equal(t, history[0].Correct+history[0].Wrong, history[0].Total)
}

func TestReset(t *testing.T) {
	s := openTestStore(t)

	_, err := s.ToggleMastered(1)
	require.NoError(t, err)
	_, err = s.ToggleFavorite(2)
	require.NoError(t, err)
	require.NoError(t, s.AppendResult("x", TestResult{Date: time.Now(), Type: "choice", Score: 50, Correct: 1, Wrong: 1, Total: 2}))

	require.NoError(t, s.Reset())

	ids, err := s.MasteredIDs()
	require.NoError(t, err)
	assert.Empty(t, ids)

	history, err := s.History()
	require.NoError(t, err)
	assert.Empty(t, history)
}
