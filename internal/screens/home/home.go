package home

import (
	"context"
	"strings"
	"time"

	tea "charm.land/bubbletea/v2"

	"github.com/abhisek/lexio/internal/achievements"
	"github.com/abhisek/lexio/internal/catalog"
	"github.com/abhisek/lexio/internal/progress"
	"github.com/abhisek/lexio/internal/quiz"
	"github.com/abhisek/lexio/internal/router"
	"github.com/abhisek/lexio/internal/screen"
	"github.com/abhisek/lexio/internal/screens/browse"
	"github.com/abhisek/lexio/internal/screens/quizsetup"
	"github.com/abhisek/lexio/internal/screens/report"
	"github.com/abhisek/lexio/internal/selfupdate"
	"github.com/abhisek/lexio/internal/tts"
	"github.com/abhisek/lexio/internal/ui/components"
)

// updateCheckMsg carries the result of the background release check.
type updateCheckMsg struct {
	latest string
}

// HomeScreen is the main menu of the application.
type HomeScreen struct {
	cat     *catalog.Catalog
	store   *progress.Store
	speaker tts.Speaker
	version string

	menu          components.Menu
	menuLabels    []string
	masteredCount int
	todayLearned  int
	streak        int
	latestVersion string
}

var _ screen.Screen = (*HomeScreen)(nil)

// New creates a new HomeScreen.
func New(cat *catalog.Catalog, st *progress.Store, speaker tts.Speaker, version string) *HomeScreen {
	h := &HomeScreen{
		cat:     cat,
		store:   st,
		speaker: speaker,
		version: version,
	}
	h.refreshStats()

	h.menuLabels = []string{"BROWSE WORDS", "CHOICE QUIZ", "SPELLING QUIZ", "PROGRESS REPORT", "EXIT"}

	items := []components.MenuItem{
		{Label: h.menuLabels[0], Action: func() tea.Cmd {
			return func() tea.Msg {
				return router.PushScreenMsg{Screen: browse.New(cat, st, speaker)}
			}
		}},
		{Label: h.menuLabels[1], Action: func() tea.Cmd {
			return func() tea.Msg {
				return router.PushScreenMsg{Screen: quizsetup.New(quiz.ModeChoice, cat, st, speaker)}
			}
		}},
		{Label: h.menuLabels[2], Action: func() tea.Cmd {
			return func() tea.Msg {
				return router.PushScreenMsg{Screen: quizsetup.New(quiz.ModeSpell, cat, st, speaker)}
			}
		}},
		{Label: h.menuLabels[3], Action: func() tea.Cmd {
			return func() tea.Msg {
				return router.PushScreenMsg{Screen: report.New(cat, st)}
			}
		}},
		{Label: h.menuLabels[4], Action: func() tea.Cmd {
			return tea.Quit
		}},
	}
	h.menu = components.NewMenu(items)
	return h
}

// refreshStats reloads the dashboard numbers from the store.
func (h *HomeScreen) refreshStats() {
	if h.store == nil {
		return
	}
	if mastered, err := h.store.MasteredIDs(); err == nil {
		h.masteredCount = len(mastered)
	}
	if today, err := h.store.TodayLearnedCount(); err == nil {
		h.todayLearned = today
	}
	if days, err := h.store.VisitDays(); err == nil {
		h.streak = achievements.ConsecutiveDays(days, time.Now())
	}
}

func (h *HomeScreen) Init() tea.Cmd {
	if h.version == "" || h.version == "(devel)" {
		return nil
	}
	version := h.version
	return func() tea.Msg {
		checker := selfupdate.NewChecker()
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		result, err := checker.Check(ctx, &selfupdate.CheckInput{Version: version})
		if err != nil || !result.UpdateAvailable {
			return updateCheckMsg{}
		}
		return updateCheckMsg{latest: result.LatestVersion}
	}
}

func (h *HomeScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	if m, ok := msg.(updateCheckMsg); ok {
		h.latestVersion = m.latest
		return h, nil
	}

	// Quizzes and browsing change the numbers shown here, so reload
	// them whenever the user interacts with the menu again.
	if _, ok := msg.(tea.KeyMsg); ok {
		h.refreshStats()
	}

	var cmd tea.Cmd
	h.menu, cmd = h.menu.Update(msg)
	return h, cmd
}

func (h *HomeScreen) View(width, height int) string {
	// height is the content area; estimate full terminal height by
	// adding back header and footer
	termHeight := height + 8
	compact := termHeight < 30 || width < 100

	cw := contentWidth(width)

	var sections []string
	sections = append(sections, renderTitle(cw, compact))
	sections = append(sections, renderStatsBar(h.masteredCount, h.todayLearned, h.streak, cw, compact))

	if compact {
		sections = append(sections, renderMenuCompact(h.menuLabels, h.menu.Selected, cw))
	} else {
		sections = append(sections, renderMenu(h.menuLabels, h.menu.Selected, cw))
	}

	if h.latestVersion != "" {
		sections = append(sections, renderUpdateNote(h.latestVersion, cw))
	}

	content := strings.Join(sections, "\n\n")
	return renderFrame(content, width, height)
}

func (h *HomeScreen) Title() string {
	return "Home"
}
