// Package quiz implements the running-quiz screen for both answer modes:
// picking a translation from four options, and typing the English word.
package quiz

import (
	"time"

	tea "charm.land/bubbletea/v2"

	"github.com/abhisek/lexio/internal/achievements"
	"github.com/abhisek/lexio/internal/catalog"
	"github.com/abhisek/lexio/internal/progress"
	quizcore "github.com/abhisek/lexio/internal/quiz"
	"github.com/abhisek/lexio/internal/router"
	"github.com/abhisek/lexio/internal/screen"
	"github.com/abhisek/lexio/internal/screens/results"
	"github.com/abhisek/lexio/internal/tts"
	"github.com/abhisek/lexio/internal/ui/components"
	"github.com/abhisek/lexio/internal/ui/layout"
)

// QuizScreen drives a started quiz session to completion.
type QuizScreen struct {
	session *quizcore.Session
	sampler *quizcore.Sampler
	cat     *catalog.Catalog
	store   *progress.Store
	speaker tts.Speaker

	// Choice mode state. Options are generated fresh for each question.
	options []catalog.Word
	mc      components.MultiChoice

	// Spell mode state.
	input components.TextInput

	showingFeedback bool
	lastCorrect     bool
	errMsg          string

	// Achievement state captured before the quiz, for the unlock diff
	// on the results screen.
	unlockedBefore map[string]bool
}

var _ screen.Screen = (*QuizScreen)(nil)
var _ screen.KeyHintProvider = (*QuizScreen)(nil)

// New wraps a started session in a screen.
func New(session *quizcore.Session, sampler *quizcore.Sampler, cat *catalog.Catalog, st *progress.Store, speaker tts.Speaker) *QuizScreen {
	q := &QuizScreen{
		session: session,
		sampler: sampler,
		cat:     cat,
		store:   st,
		speaker: speaker,
		input:   components.NewTextInput("Type the English word...", false, 40),
	}
	q.unlockedBefore = q.unlockedSet()
	q.prepareQuestion()
	return q
}

// unlockedSet evaluates achievements against current store state.
func (q *QuizScreen) unlockedSet() map[string]bool {
	out := map[string]bool{}
	snap, err := achievements.LoadSnapshot(q.store)
	if err != nil {
		return out
	}
	for _, st := range achievements.Evaluate(snap, q.cat, time.Now()) {
		if st.Unlocked {
			out[st.ID] = true
		}
	}
	return out
}

// prepareQuestion sets up per-question state for the current question.
func (q *QuizScreen) prepareQuestion() {
	word, err := q.session.CurrentQuestion()
	if err != nil {
		return
	}
	if q.session.Mode() == quizcore.ModeChoice {
		q.options = q.sampler.OptionSet(word, q.cat)
		labels := make([]string, len(q.options))
		correctIdx := 0
		for i, opt := range q.options {
			labels[i] = opt.Chinese
			if opt.ID == word.ID {
				correctIdx = i
			}
		}
		prompt := word.English
		if word.Phonetic != "" {
			prompt += "  " + word.Phonetic
		}
		q.mc = components.NewMultiChoice(prompt, labels, correctIdx)
	} else {
		q.input.Model.SetValue("")
	}
}

func (q *QuizScreen) Init() tea.Cmd {
	if q.session.Mode() == quizcore.ModeSpell {
		// Spelling questions are read aloud so the word can be typed
		// from hearing, not just from the translation.
		return tea.Batch(q.input.Init(), q.speakQuestion())
	}
	return nil
}

func (q *QuizScreen) Title() string {
	if q.session.Mode() == quizcore.ModeSpell {
		return "Spelling Quiz"
	}
	return "Choice Quiz"
}

func (q *QuizScreen) KeyHints() []layout.KeyHint {
	if q.showingFeedback {
		return []layout.KeyHint{
			{Key: "P", Description: "Pronounce"},
			{Key: "any key", Description: "Continue"},
		}
	}
	if q.session.Mode() == quizcore.ModeSpell {
		return []layout.KeyHint{
			{Key: "Enter", Description: "Submit"},
			{Key: "Esc", Description: "Quit quiz"},
		}
	}
	return []layout.KeyHint{
		{Key: "↑↓", Description: "Navigate"},
		{Key: "Enter", Description: "Submit"},
		{Key: "Esc", Description: "Quit quiz"},
	}
}

func (q *QuizScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case finishFailedMsg:
		q.errMsg = msg.err.Error()
		return q, nil

	case tea.KeyMsg:
		if q.showingFeedback {
			return q.handleFeedbackKey(msg)
		}
		return q.handleAnswerKey(msg)
	}

	if q.session.Mode() == quizcore.ModeSpell && !q.showingFeedback {
		var cmd tea.Cmd
		q.input, cmd = q.input.Update(msg)
		return q, cmd
	}
	return q, nil
}

func (q *QuizScreen) handleFeedbackKey(msg tea.KeyMsg) (screen.Screen, tea.Cmd) {
	if msg.String() == "p" {
		return q, q.speakCurrent()
	}

	q.showingFeedback = false
	if err := q.session.Advance(); err != nil {
		q.errMsg = err.Error()
		return q, nil
	}
	if q.session.IsComplete() {
		return q, q.finish()
	}
	q.prepareQuestion()
	if q.session.Mode() == quizcore.ModeSpell {
		return q, tea.Batch(q.input.Init(), q.speakQuestion())
	}
	return q, nil
}

func (q *QuizScreen) handleAnswerKey(msg tea.KeyMsg) (screen.Screen, tea.Cmd) {
	if q.session.Mode() == quizcore.ModeChoice {
		var cmd tea.Cmd
		q.mc, cmd = q.mc.Update(msg)
		if q.mc.Submitted {
			return q, q.submitChoice()
		}
		return q, cmd
	}

	if msg.String() == "enter" {
		return q, q.submitSpell()
	}
	var cmd tea.Cmd
	q.input, cmd = q.input.Update(msg)
	return q, cmd
}

func (q *QuizScreen) submitChoice() tea.Cmd {
	if err := q.session.SubmitChoice(q.mc.ChosenIndex, q.options); err != nil {
		q.errMsg = err.Error()
		return nil
	}
	return q.afterSubmit()
}

func (q *QuizScreen) submitSpell() tea.Cmd {
	if err := q.session.SubmitSpell(q.input.Value()); err != nil {
		q.errMsg = err.Error()
		return nil
	}
	return q.afterSubmit()
}

// afterSubmit records the answered word as learned and flips into the
// feedback view.
func (q *QuizScreen) afterSubmit() tea.Cmd {
	answers := q.session.Answers()
	last := answers[len(answers)-1]
	q.lastCorrect = last.Correct
	q.showingFeedback = true

	if err := q.store.MarkLearned(last.Word.ID); err != nil {
		q.errMsg = err.Error()
	}
	if q.session.Mode() == quizcore.ModeSpell {
		q.input.Submit(last.Correct)
	}
	return nil
}

// speakQuestion pronounces the word being asked.
func (q *QuizScreen) speakQuestion() tea.Cmd {
	if q.speaker == nil {
		return nil
	}
	word, err := q.session.CurrentQuestion()
	if err != nil {
		return nil
	}
	speaker := q.speaker
	return func() tea.Msg {
		_ = speaker.Speak(word.English)
		return spokenMsg{}
	}
}

// speakCurrent pronounces the word just answered.
func (q *QuizScreen) speakCurrent() tea.Cmd {
	if q.speaker == nil {
		return nil
	}
	answers := q.session.Answers()
	if len(answers) == 0 {
		return nil
	}
	word := answers[len(answers)-1].Word.English
	speaker := q.speaker
	return func() tea.Msg {
		_ = speaker.Speak(word)
		return spokenMsg{}
	}
}

// finish scores the session, persists the result, and swaps in the
// results screen.
func (q *QuizScreen) finish() tea.Cmd {
	return func() tea.Msg {
		outcome, err := quizcore.Score(q.session)
		if err != nil {
			return finishFailedMsg{err: err}
		}

		result := quizcore.BuildResult(q.session, outcome, time.Now())
		if err := q.store.AppendResult(q.session.ID(), result); err != nil {
			return finishFailedMsg{err: err}
		}
		if err := q.store.RecordVisit(); err != nil {
			return finishFailedMsg{err: err}
		}

		var newly []achievements.Achievement
		for _, st := range q.statusesNow() {
			if st.Unlocked && !q.unlockedBefore[st.ID] {
				newly = append(newly, st.Achievement)
			}
		}

		rs := results.New(q.session.Mode(), outcome, quizcore.Classify(outcome.Percent), q.session.WrongAnswers(), newly, q.speaker)
		return router.ReplaceScreenMsg{Screen: rs}
	}
}

func (q *QuizScreen) statusesNow() []achievements.Status {
	snap, err := achievements.LoadSnapshot(q.store)
	if err != nil {
		return nil
	}
	return achievements.Evaluate(snap, q.cat, time.Now())
}
