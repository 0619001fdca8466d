package progress

import (
	"fmt"
	"time"
)

// MasteredIDs returns the set of word ids flagged as mastered.
func (s *Store) MasteredIDs() (map[int]bool, error) {
	return s.idSet("mastered_words")
}

// FavoriteIDs returns the set of word ids flagged as favorite.
func (s *Store) FavoriteIDs() (map[int]bool, error) {
	return s.idSet("favorite_words")
}

func (s *Store) idSet(table string) (map[int]bool, error) {
	rows, err := s.db.Query("SELECT word_id FROM " + table)
	if err != nil {
		return nil, fmt.Errorf("query %s: %w", table, err)
	}
	defer rows.Close()

	ids := make(map[int]bool)
	for rows.Next() {
		var id int
		if err := rows.Scan(&id); err != nil {
			return nil, err
		}
		ids[id] = true
	}
	return ids, rows.Err()
}

// ToggleMastered flips the mastered flag for a word and returns the new
// state. Newly mastered words are also recorded in today's mastered set.
func (s *Store) ToggleMastered(wordID int) (bool, error) {
	on, err := s.toggle("mastered_words", wordID)
	if err != nil || !on {
		return on, err
	}
	_, err = s.db.Exec(
		"INSERT OR IGNORE INTO daily_mastered (day, word_id) VALUES (?, ?)",
		dayStamp(time.Now()), wordID,
	)
	return true, err
}

// ToggleFavorite flips the favorite flag for a word and returns the new
// state.
func (s *Store) ToggleFavorite(wordID int) (bool, error) {
	return s.toggle("favorite_words", wordID)
}

func (s *Store) toggle(table string, wordID int) (bool, error) {
	res, err := s.db.Exec("DELETE FROM "+table+" WHERE word_id = ?", wordID)
	if err != nil {
		return false, err
	}
	deleted, err := res.RowsAffected()
	if err != nil {
		return false, err
	}
	if deleted > 0 {
		return false, nil
	}
	_, err = s.db.Exec("INSERT INTO "+table+" (word_id) VALUES (?)", wordID)
	return true, err
}

// ClearFavorites removes every favorite flag.
func (s *Store) ClearFavorites() error {
	_, err := s.db.Exec("DELETE FROM favorite_words")
	return err
}

// MarkLearned adds a word to today's learned set. Re-learning the same
// word on the same day is a no-op.
func (s *Store) MarkLearned(wordID int) error {
	_, err := s.db.Exec(
		"INSERT OR IGNORE INTO daily_learned (day, word_id) VALUES (?, ?)",
		dayStamp(time.Now()), wordID,
	)
	return err
}

// TodayLearnedCount returns the number of words learned today. Daily
// sets are keyed by calendar day, so the count naturally resets at
// midnight.
func (s *Store) TodayLearnedCount() (int, error) {
	return s.dayCount("daily_learned", time.Now())
}

// TodayMasteredCount returns the number of words first mastered today.
func (s *Store) TodayMasteredCount() (int, error) {
	return s.dayCount("daily_mastered", time.Now())
}

func (s *Store) dayCount(table string, day time.Time) (int, error) {
	var n int
	err := s.db.QueryRow(
		"SELECT COUNT(*) FROM "+table+" WHERE day = ?", dayStamp(day),
	).Scan(&n)
	return n, err
}

// DayCount is the number of words learned on one calendar day.
type DayCount struct {
	Day   time.Time
	Count int
}

// DailyLearnedCounts returns learned-word counts for the last n days,
// oldest first, with zero entries for days without activity.
func (s *Store) DailyLearnedCounts(n int) ([]DayCount, error) {
	today := time.Now()
	counts := make([]DayCount, 0, n)
	for i := n - 1; i >= 0; i-- {
		day := today.AddDate(0, 0, -i)
		c, err := s.dayCount("daily_learned", day)
		if err != nil {
			return nil, err
		}
		counts = append(counts, DayCount{Day: day, Count: c})
	}
	return counts, nil
}

// RecordVisit adds today to the visit history. Repeated visits on the
// same day are a no-op.
func (s *Store) RecordVisit() error {
	_, err := s.db.Exec(
		"INSERT OR IGNORE INTO visit_days (day) VALUES (?)",
		dayStamp(time.Now()),
	)
	return err
}

// VisitDays returns the set of calendar days on which the app was used,
// keyed by day stamp (YYYY-MM-DD).
func (s *Store) VisitDays() (map[string]bool, error) {
	rows, err := s.db.Query("SELECT day FROM visit_days")
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	days := make(map[string]bool)
	for rows.Next() {
		var day string
		if err := rows.Scan(&day); err != nil {
			return nil, err
		}
		days[day] = true
	}
	return days, rows.Err()
}

// AppendResult adds a test result to the history log. The append is a
// single statement; a failure leaves the log untouched and the caller's
// session intact, so the append may be retried.
func (s *Store) AppendResult(sessionID string, r TestResult) error {
	_, err := s.db.Exec(
		`INSERT INTO test_results (session_id, date, type, score, correct, wrong, total)
		 VALUES (?, ?, ?, ?, ?, ?, ?)`,
		sessionID, r.Date.Format(time.RFC3339), r.Type, r.Score, r.Correct, r.Wrong, r.Total,
	)
	if err != nil {
		return fmt.Errorf("append result: %w", err)
	}
	return nil
}

// History returns all test results in append order.
func (s *Store) History() ([]TestResult, error) {
	rows, err := s.db.Query(
		"SELECT date, type, score, correct, wrong, total FROM test_results ORDER BY id",
	)
	if err != nil {
		return nil, fmt.Errorf("query history: %w", err)
	}
	defer rows.Close()

	var results []TestResult
	for rows.Next() {
		var r TestResult
		var date string
		if err := rows.Scan(&date, &r.Type, &r.Score, &r.Correct, &r.Wrong, &r.Total); err != nil {
			return nil, err
		}
		r.Date, err = time.Parse(time.RFC3339, date)
		if err != nil {
			return nil, fmt.Errorf("parse result date %q: %w", date, err)
		}
		results = append(results, r)
	}
	return results, rows.Err()
}

// Reset deletes all persisted progress. Used by the reset command.
func (s *Store) Reset() error {
	tables := []string{
		"mastered_words", "favorite_words", "daily_learned",
		"daily_mastered", "visit_days", "test_results",
	}
	tx, err := s.db.Begin()
	if err != nil {
		return err
	}
	for _, table := range tables {
		if _, err := tx.Exec("DELETE FROM " + table); err != nil {
			tx.Rollback()
			return fmt.Errorf("reset %s: %w", table, err)
		}
	}
	return tx.Commit()
}
