package progress

import "time"

// TestResult is one completed quiz run, appended to the history log.
// The stored shape is stable: date (ISO-8601), type ("choice"|"spell"),
// score percent, correct/wrong/total counts.
type TestResult struct {
	Date    time.Time `json:"date"`
	Type    string    `json:"type"`
	Score   int       `json:"score"`
	Correct int       `json:"correct"`
	Wrong   int       `json:"wrong"`
	Total   int       `json:"total"`
}
