package quiz

import (
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/abhisek/lexio/internal/catalog"
)

// State is the lifecycle phase of a Session.
type State int

const (
	// StateConfiguring means Start has not succeeded yet.
	StateConfiguring State = iota
	// StateRunning means questions are being served.
	StateRunning
	// StateCompleted means every question has been answered and advanced
	// past. There is no way back; retakes construct a new Session.
	StateCompleted
)

// Answer records the learner's response to one question. Correct is
// derived by the session, never supplied by the caller.
type Answer struct {
	Word          catalog.Word
	SelectedIndex int    // choice mode: index into the shown option set
	RawInput      string // spell mode: the text as typed
	Correct       bool
}

// Session drives one quiz run from configuration through completion.
// It owns its question and answer sequences exclusively; it is not safe
// for concurrent use.
type Session struct {
	id        string
	mode      Mode
	questions []catalog.Word
	answers   []Answer
	current   int
	state     State
	startedAt time.Time
}

// NewSession creates a Session in the Configuring state.
func NewSession() *Session {
	return &Session{id: uuid.NewString()}
}

// ID returns the session's UUID.
func (s *Session) ID() string { return s.id }

// Mode returns the quiz mode. Meaningless before Start succeeds.
func (s *Session) Mode() Mode { return s.mode }

// State returns the current lifecycle phase.
func (s *Session) State() State { return s.state }

// Start validates cfg, draws the question sequence and moves the session
// to Running. On failure the session stays in Configuring with no
// questions populated, so the caller can reconfigure and try again.
func (s *Session) Start(cfg Config, cat *catalog.Catalog, mastered, favorite map[int]bool, sampler *Sampler) error {
	if s.state != StateConfiguring {
		return fmt.Errorf("session already started")
	}
	if cfg.QuestionCount < 1 {
		return ErrInvalidQuestionCount
	}

	pool := CandidatePool(cfg.Range, cat, mastered, favorite)
	questions, err := sampler.Draw(pool, cfg.QuestionCount)
	if err != nil {
		return err
	}

	s.mode = cfg.Mode
	s.questions = questions
	s.answers = s.answers[:0]
	s.current = 0
	s.state = StateRunning
	s.startedAt = time.Now()
	return nil
}

// Len returns the number of questions in the session.
func (s *Session) Len() int { return len(s.questions) }

// CurrentIndex returns the zero-based index of the current question.
func (s *Session) CurrentIndex() int { return s.current }

// CurrentQuestion returns the question awaiting an answer. It fails with
// ErrOutOfRange once the session has completed.
func (s *Session) CurrentQuestion() (catalog.Word, error) {
	if s.current >= len(s.questions) {
		return catalog.Word{}, ErrOutOfRange
	}
	return s.questions[s.current], nil
}

// answered reports whether the current question already has an answer.
func (s *Session) answered() bool {
	return len(s.answers) > s.current
}

// SubmitChoice records the answer for a choice question. options must be
// the option set that was shown for the current question; correctness is
// derived by comparing the selected entry's id with the current word.
// Exactly one submission is accepted per question.
func (s *Session) SubmitChoice(selected int, options []catalog.Word) error {
	q, err := s.CurrentQuestion()
	if err != nil {
		return err
	}
	if s.mode != ModeChoice {
		return ErrWrongMode
	}
	if s.answered() {
		return ErrDuplicateAnswer
	}
	if selected < 0 || selected >= len(options) {
		return fmt.Errorf("option index %d out of range [0,%d)", selected, len(options))
	}

	s.answers = append(s.answers, Answer{
		Word:          q,
		SelectedIndex: selected,
		Correct:       options[selected].ID == q.ID,
	})
	return nil
}

// SubmitSpell records the answer for a spelling question. Input is
// normalized by trimming whitespace and lowercasing before comparison;
// internal punctuation and diacritics are left alone.
func (s *Session) SubmitSpell(raw string) error {
	q, err := s.CurrentQuestion()
	if err != nil {
		return err
	}
	if s.mode != ModeSpell {
		return ErrWrongMode
	}
	if s.answered() {
		return ErrDuplicateAnswer
	}

	normalized := normalizeSpelling(raw)
	s.answers = append(s.answers, Answer{
		Word:     q,
		RawInput: raw,
		Correct:  normalized == normalizeSpelling(q.English),
	})
	return nil
}

// Advance moves to the next question, requiring the current one to be
// answered first. When the last question is advanced past, the session
// transitions to Completed.
func (s *Session) Advance() error {
	if s.state != StateRunning {
		return ErrOutOfRange
	}
	if !s.answered() {
		return ErrNotAnswered
	}
	s.current++
	if s.current == len(s.questions) {
		s.state = StateCompleted
	}
	return nil
}

// IsComplete reports whether every question has been answered and
// advanced past.
func (s *Session) IsComplete() bool {
	return s.state == StateCompleted
}

// Answers returns the recorded answers in question order.
func (s *Session) Answers() []Answer {
	return s.answers
}

// WrongAnswers returns the answers that were incorrect, in question
// order, for the results review list.
func (s *Session) WrongAnswers() []Answer {
	var wrong []Answer
	for _, a := range s.answers {
		if !a.Correct {
			wrong = append(wrong, a)
		}
	}
	return wrong
}

// ProgressFraction returns completion progress in [0,1] based on the
// answered-question count.
func (s *Session) ProgressFraction() float64 {
	if len(s.questions) == 0 {
		return 0
	}
	return float64(len(s.answers)) / float64(len(s.questions))
}

// StartedAt returns when Start succeeded.
func (s *Session) StartedAt() time.Time { return s.startedAt }

func normalizeSpelling(input string) string {
	return strings.ToLower(strings.TrimSpace(input))
}
