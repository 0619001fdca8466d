package quiz

import (
	"errors"
	"testing"

	"github.com/abhisek/lexio/internal/catalog"
)

func startedSession(t *testing.T, cat *catalog.Catalog, mode Mode, count int) (*Session, *Sampler) {
	t.Helper()
	s := NewSession()
	sampler := seededSampler(21)
	err := s.Start(Config{
		Range:         Range{Kind: RangeAll},
		Mode:          mode,
		QuestionCount: count,
	}, cat, nil, nil, sampler)
	if err != nil {
		t.Fatalf("start: %v", err)
	}
	return s, sampler
}

func TestStart_InsufficientPoolLeavesConfiguring(t *testing.T) {
	cat := testCatalog(t, 5)
	s := NewSession()

	err := s.Start(Config{Range: Range{Kind: RangeAll}, Mode: ModeChoice, QuestionCount: 10}, cat, nil, nil, seededSampler(1))

	var poolErr *InsufficientPoolError
	if !errors.As(err, &poolErr) {
		t.Fatalf("err = %v, want InsufficientPoolError", err)
	}
	if s.State() != StateConfiguring {
		t.Errorf("state = %v, want StateConfiguring", s.State())
	}
	if s.Len() != 0 {
		t.Errorf("questions populated after failed start: %d", s.Len())
	}
}

func TestStart_InvalidQuestionCount(t *testing.T) {
	cat := testCatalog(t, 5)
	s := NewSession()

	err := s.Start(Config{Range: Range{Kind: RangeAll}, Mode: ModeChoice, QuestionCount: 0}, cat, nil, nil, seededSampler(1))
	if !errors.Is(err, ErrInvalidQuestionCount) {
		t.Errorf("err = %v, want ErrInvalidQuestionCount", err)
	}
}

func TestStart_Twice(t *testing.T) {
	cat := testCatalog(t, 5)
	s, sampler := startedSession(t, cat, ModeChoice, 3)

	err := s.Start(DefaultConfig(), cat, nil, nil, sampler)
	if err == nil {
		t.Error("expected error starting an already-running session")
	}
}

// A full choice run: 20-word pool, 10 questions, answer+advance cycles.
func TestChoiceRun_CompletesWithTenAnswers(t *testing.T) {
	cat := testCatalog(t, 20)
	s, sampler := startedSession(t, cat, ModeChoice, 10)

	for !s.IsComplete() {
		q, err := s.CurrentQuestion()
		if err != nil {
			t.Fatalf("current question: %v", err)
		}
		options := sampler.OptionSet(q, cat)

		// Pick the correct option for even questions, a wrong one for odd.
		pick := -1
		for i, opt := range options {
			if (opt.ID == q.ID) == (s.CurrentIndex()%2 == 0) {
				pick = i
				break
			}
		}
		if err := s.SubmitChoice(pick, options); err != nil {
			t.Fatalf("submit: %v", err)
		}
		if err := s.Advance(); err != nil {
			t.Fatalf("advance: %v", err)
		}
	}

	if len(s.Answers()) != 10 {
		t.Errorf("answers = %d, want 10", len(s.Answers()))
	}
	o, err := Score(s)
	if err != nil {
		t.Fatalf("score: %v", err)
	}
	if o.Correct+o.Wrong != 10 {
		t.Errorf("total = %d, want 10", o.Correct+o.Wrong)
	}
	if o.Correct != 5 {
		t.Errorf("correct = %d, want 5", o.Correct)
	}
}

func TestSubmitChoice_DerivesCorrectness(t *testing.T) {
	cat := testCatalog(t, 10)
	s, sampler := startedSession(t, cat, ModeChoice, 2)

	q, _ := s.CurrentQuestion()
	options := sampler.OptionSet(q, cat)
	correctIdx := -1
	for i, opt := range options {
		if opt.ID == q.ID {
			correctIdx = i
		}
	}

	if err := s.SubmitChoice(correctIdx, options); err != nil {
		t.Fatal(err)
	}
	if !s.Answers()[0].Correct {
		t.Error("correct option recorded as wrong")
	}
}

func TestSubmitChoice_DuplicateRejected(t *testing.T) {
	cat := testCatalog(t, 10)
	s, sampler := startedSession(t, cat, ModeChoice, 2)

	q, _ := s.CurrentQuestion()
	options := sampler.OptionSet(q, cat)
	if err := s.SubmitChoice(0, options); err != nil {
		t.Fatal(err)
	}

	err := s.SubmitChoice(1, options)
	if !errors.Is(err, ErrDuplicateAnswer) {
		t.Errorf("err = %v, want ErrDuplicateAnswer", err)
	}
	if len(s.Answers()) != 1 {
		t.Errorf("answers = %d, want 1", len(s.Answers()))
	}
}

func TestSubmitChoice_WrongMode(t *testing.T) {
	cat := testCatalog(t, 10)
	s, _ := startedSession(t, cat, ModeSpell, 2)

	err := s.SubmitChoice(0, cat.All()[:4])
	if !errors.Is(err, ErrWrongMode) {
		t.Errorf("err = %v, want ErrWrongMode", err)
	}
}

func TestSubmitSpell_Normalization(t *testing.T) {
	tests := []struct {
		input string
		word  string
		want  bool
	}{
		{" Apple ", "apple", true},
		{"APPLE", "apple", true},
		{"apple", "apple", true},
		{"appel", "apple", false},
		{"", "apple", false},
		// Only trim + lowercase: internal punctuation is significant.
		{"dont", "don't", false},
	}

	for _, tt := range tests {
		c, err := catalog.New([]catalog.Word{
			{ID: 1, English: tt.word, Difficulty: catalog.DifficultyEasy},
		})
		if err != nil {
			t.Fatal(err)
		}
		s, _ := startedSession(t, c, ModeSpell, 1)
		if err := s.SubmitSpell(tt.input); err != nil {
			t.Fatalf("submit %q: %v", tt.input, err)
		}
		if got := s.Answers()[0].Correct; got != tt.want {
			t.Errorf("SubmitSpell(%q) vs %q: correct = %v, want %v", tt.input, tt.word, got, tt.want)
		}
	}
}

func TestAdvance_RequiresAnswer(t *testing.T) {
	cat := testCatalog(t, 10)
	s, _ := startedSession(t, cat, ModeSpell, 2)

	err := s.Advance()
	if !errors.Is(err, ErrNotAnswered) {
		t.Errorf("err = %v, want ErrNotAnswered", err)
	}
	if s.CurrentIndex() != 0 {
		t.Errorf("index moved to %d on failed advance", s.CurrentIndex())
	}
}

func TestCompletedSession_RejectsFurtherUse(t *testing.T) {
	cat := testCatalog(t, 10)
	s, _ := startedSession(t, cat, ModeSpell, 1)

	if err := s.SubmitSpell("whatever"); err != nil {
		t.Fatal(err)
	}
	if err := s.Advance(); err != nil {
		t.Fatal(err)
	}
	if !s.IsComplete() {
		t.Fatal("session should be complete")
	}

	if _, err := s.CurrentQuestion(); !errors.Is(err, ErrOutOfRange) {
		t.Errorf("CurrentQuestion err = %v, want ErrOutOfRange", err)
	}
	if err := s.SubmitSpell("again"); !errors.Is(err, ErrOutOfRange) {
		t.Errorf("SubmitSpell err = %v, want ErrOutOfRange", err)
	}
	if err := s.Advance(); !errors.Is(err, ErrOutOfRange) {
		t.Errorf("Advance err = %v, want ErrOutOfRange", err)
	}
}

func TestWrongAnswers_PreservesOrder(t *testing.T) {
	cat := testCatalog(t, 10)
	s, _ := startedSession(t, cat, ModeSpell, 3)

	inputs := []string{"wrong-one", "", "wrong-two"}
	for _, in := range inputs {
		if in == "" {
			q, _ := s.CurrentQuestion()
			in = q.English
		}
		if err := s.SubmitSpell(in); err != nil {
			t.Fatal(err)
		}
		if err := s.Advance(); err != nil {
			t.Fatal(err)
		}
	}

	wrong := s.WrongAnswers()
	if len(wrong) != 2 {
		t.Fatalf("wrong answers = %d, want 2", len(wrong))
	}
	if wrong[0].RawInput != "wrong-one" || wrong[1].RawInput != "wrong-two" {
		t.Errorf("wrong answers out of order: %q, %q", wrong[0].RawInput, wrong[1].RawInput)
	}
}

func TestProgressFraction(t *testing.T) {
	cat := testCatalog(t, 10)
	s, _ := startedSession(t, cat, ModeSpell, 4)

	if got := s.ProgressFraction(); got != 0 {
		t.Errorf("initial progress = %v, want 0", got)
	}

	if err := s.SubmitSpell("x"); err != nil {
		t.Fatal(err)
	}
	if got := s.ProgressFraction(); got != 0.25 {
		t.Errorf("progress after one answer = %v, want 0.25", got)
	}
}
