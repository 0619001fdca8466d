// Package app wires the Bubble Tea program: root model, screen router,
// and the header/footer frame around the active screen.
package app

import (
	"fmt"
	"os"
	"time"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/lexio/internal/achievements"
	"github.com/abhisek/lexio/internal/catalog"
	"github.com/abhisek/lexio/internal/progress"
	"github.com/abhisek/lexio/internal/router"
	"github.com/abhisek/lexio/internal/screen"
	"github.com/abhisek/lexio/internal/screens/home"
	"github.com/abhisek/lexio/internal/screens/quizsetup"
	"github.com/abhisek/lexio/internal/screens/results"
	"github.com/abhisek/lexio/internal/tts"
	"github.com/abhisek/lexio/internal/ui/layout"
)

// Options carries the dependencies the UI needs.
type Options struct {
	Catalog *catalog.Catalog
	Store   *progress.Store
	Speaker tts.Speaker
	Version string
}

// AppModel is the root Bubble Tea model.
type AppModel struct {
	opts   Options
	router *router.Router
	width  int
	height int

	mastered int
	streak   int
}

// newAppModel creates a new AppModel with the home screen.
func newAppModel(opts Options) AppModel {
	m := AppModel{
		opts:   opts,
		router: router.New(home.New(opts.Catalog, opts.Store, opts.Speaker, opts.Version)),
	}
	m.refreshHeader()
	return m
}

// refreshHeader reloads the numbers shown in the header bar.
func (m *AppModel) refreshHeader() {
	if m.opts.Store == nil {
		return
	}
	if mastered, err := m.opts.Store.MasteredIDs(); err == nil {
		m.mastered = len(mastered)
	}
	if days, err := m.opts.Store.VisitDays(); err == nil {
		m.streak = achievements.ConsecutiveDays(days, time.Now())
	}
}

func (m AppModel) Init() tea.Cmd {
	if active := m.router.Active(); active != nil {
		return active.Init()
	}
	return nil
}

func (m AppModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case router.PopScreenMsg, router.ReplaceScreenMsg:
		// Screen transitions are when progress numbers change.
		m.refreshHeader()

	case results.RetakeMsg:
		m.refreshHeader()
		setup := quizsetup.New(msg.Mode, m.opts.Catalog, m.opts.Store, m.opts.Speaker)
		return m, m.router.Update(router.ReplaceScreenMsg{Screen: setup})

	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c":
			return m, tea.Quit
		case "esc":
			// Screens that use esc themselves (search, results) get it
			// first; the router pops only if the active screen did not
			// consume it.
			if m.router.Depth() > 1 && !m.activeHandlesEsc() {
				m.refreshHeader()
				return m, func() tea.Msg { return router.PopScreenMsg{} }
			}
		}
	}

	cmd := m.router.Update(msg)
	return m, cmd
}

// escConsumer is implemented by screens that handle esc themselves.
type escConsumer interface {
	ConsumesEsc() bool
}

func (m AppModel) activeHandlesEsc() bool {
	if c, ok := m.router.Active().(escConsumer); ok {
		return c.ConsumesEsc()
	}
	return false
}

func (m AppModel) View() tea.View {
	v := tea.NewView("")
	v.AltScreen = true

	if m.width == 0 || m.height == 0 {
		return v
	}

	if layout.IsTooSmall(m.width, m.height) {
		v.SetContent(layout.RenderMinSizeMessage(m.width, m.height))
		return v
	}

	active := m.router.Active()
	title := ""
	if active != nil {
		title = active.Title()
	}

	header := layout.RenderHeader(title, m.mastered, m.streak, m.width)

	footerHints := m.footerHints(active)
	footer := layout.RenderFooter(footerHints, m.width)

	headerHeight := lipgloss.Height(header)
	footerHeight := lipgloss.Height(footer)
	contentHeight := m.height - headerHeight - footerHeight
	if contentHeight < 0 {
		contentHeight = 0
	}

	content := m.router.View(m.width, contentHeight)
	frame := layout.RenderFrame(header, content, footer, m.width, m.height)

	v.SetContent(frame)
	return v
}

func (m AppModel) footerHints(active screen.Screen) []layout.KeyHint {
	if provider, ok := active.(screen.KeyHintProvider); ok {
		if hints := provider.KeyHints(); hints != nil {
			return hints
		}
	}
	if m.router.Depth() > 1 {
		return []layout.KeyHint{
			{Key: "Esc", Description: "Back"},
			{Key: "Ctrl+C", Description: "Quit"},
		}
	}
	return []layout.KeyHint{
		{Key: "↑↓", Description: "Navigate"},
		{Key: "Enter", Description: "Select"},
		{Key: "Ctrl+C", Description: "Quit"},
	}
}

// Run starts the Bubble Tea program.
func Run(opts Options) error {
	p := tea.NewProgram(newAppModel(opts))
	_, err := p.Run()
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error running program:", err)
		return err
	}
	return nil
}
