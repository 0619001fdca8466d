// Package quizsetup implements the pre-quiz configuration screen:
// picking the word range and the number of questions.
package quizsetup

import (
	"errors"
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/lexio/internal/catalog"
	"github.com/abhisek/lexio/internal/progress"
	"github.com/abhisek/lexio/internal/quiz"
	"github.com/abhisek/lexio/internal/router"
	"github.com/abhisek/lexio/internal/screen"
	quizscreen "github.com/abhisek/lexio/internal/screens/quiz"
	"github.com/abhisek/lexio/internal/tts"
	"github.com/abhisek/lexio/internal/ui/layout"
	"github.com/abhisek/lexio/internal/ui/theme"
)

type phase int

const (
	phaseRange phase = iota
	phaseCount
)

// rangeOption is one selectable row in the range list.
type rangeOption struct {
	label string
	rng   quiz.Range
}

// SetupScreen collects quiz configuration before starting a session.
type SetupScreen struct {
	mode    quiz.Mode
	cat     *catalog.Catalog
	store   *progress.Store
	speaker tts.Speaker

	phase       phase
	rangeOpts   []rangeOption
	rangeCursor int
	countCursor int
	errMsg      string
}

var _ screen.Screen = (*SetupScreen)(nil)
var _ screen.KeyHintProvider = (*SetupScreen)(nil)

// New creates a SetupScreen for the given quiz mode.
func New(mode quiz.Mode, cat *catalog.Catalog, st *progress.Store, speaker tts.Speaker) *SetupScreen {
	opts := []rangeOption{
		{label: "All words", rng: quiz.Range{Kind: quiz.RangeAll}},
		{label: "Mastered words", rng: quiz.Range{Kind: quiz.RangeMastered}},
		{label: "Favorite words", rng: quiz.Range{Kind: quiz.RangeFavorite}},
	}
	for _, u := range cat.Units() {
		opts = append(opts, rangeOption{label: u.Label(), rng: quiz.UnitRange(u)})
	}

	countCursor := 0
	for i, n := range quiz.QuestionCounts {
		if n == quiz.DefaultQuestionCount {
			countCursor = i
		}
	}

	return &SetupScreen{
		mode:        mode,
		cat:         cat,
		store:       st,
		speaker:     speaker,
		rangeOpts:   opts,
		countCursor: countCursor,
	}
}

func (s *SetupScreen) Init() tea.Cmd {
	return nil
}

func (s *SetupScreen) Title() string {
	if s.mode == quiz.ModeSpell {
		return "Spelling Quiz"
	}
	return "Choice Quiz"
}

func (s *SetupScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "↑↓", Description: "Navigate"},
		{Key: "Enter", Description: "Select"},
		{Key: "Esc", Description: "Back"},
	}
}

func (s *SetupScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	kmsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return s, nil
	}

	switch kmsg.String() {
	case "up", "k":
		s.moveCursor(-1)
	case "down", "j":
		s.moveCursor(1)
	case "enter":
		if s.phase == phaseRange {
			s.phase = phaseCount
			s.errMsg = ""
			return s, nil
		}
		return s, s.start()
	case "left", "h":
		if s.phase == phaseCount {
			s.phase = phaseRange
			s.errMsg = ""
		}
	}
	return s, nil
}

func (s *SetupScreen) moveCursor(delta int) {
	if s.phase == phaseRange {
		s.rangeCursor += delta
		if s.rangeCursor < 0 {
			s.rangeCursor = 0
		}
		if s.rangeCursor >= len(s.rangeOpts) {
			s.rangeCursor = len(s.rangeOpts) - 1
		}
		return
	}
	s.countCursor += delta
	if s.countCursor < 0 {
		s.countCursor = 0
	}
	if s.countCursor >= len(quiz.QuestionCounts) {
		s.countCursor = len(quiz.QuestionCounts) - 1
	}
}

// start builds the session and hands off to the quiz screen. The setup
// screen is replaced so finishing the quiz pops straight back home.
func (s *SetupScreen) start() tea.Cmd {
	mastered, err := s.store.MasteredIDs()
	if err != nil {
		s.errMsg = err.Error()
		return nil
	}
	favorite, err := s.store.FavoriteIDs()
	if err != nil {
		s.errMsg = err.Error()
		return nil
	}

	cfg := quiz.Config{
		Range:         s.rangeOpts[s.rangeCursor].rng,
		Mode:          s.mode,
		QuestionCount: quiz.QuestionCounts[s.countCursor],
	}

	sampler := quiz.NewSampler(nil)
	session := quiz.NewSession()
	if err := session.Start(cfg, s.cat, mastered, favorite, sampler); err != nil {
		var poolErr *quiz.InsufficientPoolError
		if errors.As(err, &poolErr) {
			s.errMsg = fmt.Sprintf("Not enough words: %v. Pick a wider range or fewer questions.", poolErr)
			s.phase = phaseRange
			return nil
		}
		s.errMsg = err.Error()
		return nil
	}

	qs := quizscreen.New(session, sampler, s.cat, s.store, s.speaker)
	return func() tea.Msg {
		return router.ReplaceScreenMsg{Screen: qs}
	}
}

func (s *SetupScreen) View(width, height int) string {
	var sb strings.Builder

	heading := lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Foreground(theme.Primary).
		Bold(true)

	sb.WriteString("\n")
	if s.phase == phaseRange {
		sb.WriteString(heading.Render("Which words?"))
	} else {
		sb.WriteString(heading.Render("How many questions?"))
	}
	sb.WriteString("\n\n")

	if s.phase == phaseRange {
		for i, opt := range s.rangeOpts {
			sb.WriteString(renderOption(opt.label, i == s.rangeCursor, width))
			sb.WriteString("\n")
		}
	} else {
		for i, n := range quiz.QuestionCounts {
			sb.WriteString(renderOption(fmt.Sprintf("%d questions", n), i == s.countCursor, width))
			sb.WriteString("\n")
		}
	}

	if s.errMsg != "" {
		sb.WriteString("\n")
		sb.WriteString(lipgloss.NewStyle().
			Width(width).
			Align(lipgloss.Center).
			Foreground(theme.Error).
			Render(s.errMsg))
	}

	return sb.String()
}

func renderOption(label string, selected bool, width int) string {
	line := "  " + label
	style := lipgloss.NewStyle().Foreground(theme.Text)
	if selected {
		line = "▸ " + label
		style = lipgloss.NewStyle().Foreground(theme.Primary).Bold(true)
	}
	return lipgloss.PlaceHorizontal(width, lipgloss.Center, style.Render(line))
}
