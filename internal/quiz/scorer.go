package quiz

import (
	"math"
	"time"

	"github.com/abhisek/lexio/internal/progress"
)

// Band is the advisory performance tier for a score. Bands drive the
// message shown on the results screen and are never stored.
type Band string

const (
	BandExcellent Band = "excellent"
	BandGood      Band = "good"
	BandFair      Band = "fair"
	BandNeedsWork Band = "needs-improvement"
)

// Message returns the encouragement text for the band.
func (b Band) Message() string {
	switch b {
	case BandExcellent:
		return "Outstanding! You really know these words!"
	case BandGood:
		return "Nice score, keep it up!"
	case BandFair:
		return "Getting there — a little more practice!"
	default:
		return "Don't give up, practice makes perfect!"
	}
}

// Outcome holds the counts derived from a completed session.
type Outcome struct {
	Correct int
	Wrong   int
	Percent int // round-half-up of Correct/Total*100
}

// Score tallies a completed session. It fails with
// ErrSessionNotComplete if questions remain, and is idempotent: scoring
// the same session twice yields identical outcomes.
func Score(s *Session) (Outcome, error) {
	if !s.IsComplete() {
		return Outcome{}, ErrSessionNotComplete
	}

	correct := 0
	for _, a := range s.Answers() {
		if a.Correct {
			correct++
		}
	}
	total := len(s.Answers())
	return Outcome{
		Correct: correct,
		Wrong:   total - correct,
		Percent: int(math.Round(float64(correct) / float64(total) * 100)),
	}, nil
}

// Classify maps a score percent to its band. Pure: same input, same band.
func Classify(percent int) Band {
	switch {
	case percent >= 90:
		return BandExcellent
	case percent >= 70:
		return BandGood
	case percent >= 60:
		return BandFair
	default:
		return BandNeedsWork
	}
}

// BuildResult assembles the persisted record for a completed session,
// stamped at the given time. The result is the only artifact that
// outlives the session.
func BuildResult(s *Session, o Outcome, at time.Time) progress.TestResult {
	return progress.TestResult{
		Date:    at,
		Type:    string(s.Mode()),
		Score:   o.Percent,
		Correct: o.Correct,
		Wrong:   o.Wrong,
		Total:   o.Correct + o.Wrong,
	}
}
