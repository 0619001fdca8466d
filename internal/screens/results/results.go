// Package results shows the score screen after a finished quiz.
package results

import (
	"fmt"
	"image/color"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/lexio/internal/achievements"
	"github.com/abhisek/lexio/internal/quiz"
	"github.com/abhisek/lexio/internal/router"
	"github.com/abhisek/lexio/internal/screen"
	"github.com/abhisek/lexio/internal/tts"
	"github.com/abhisek/lexio/internal/ui/layout"
	"github.com/abhisek/lexio/internal/ui/theme"
)

// ResultsScreen displays the outcome of a completed quiz.
type ResultsScreen struct {
	mode    quiz.Mode
	outcome quiz.Outcome
	band    quiz.Band
	wrong   []quiz.Answer
	newly   []achievements.Achievement
	speaker tts.Speaker

	// cursor walks the wrong-answer list so each word can be replayed.
	cursor int
}

var _ screen.Screen = (*ResultsScreen)(nil)
var _ screen.KeyHintProvider = (*ResultsScreen)(nil)

// RetakeMsg asks the app to start a fresh quiz setup in the same mode.
type RetakeMsg struct {
	Mode quiz.Mode
}

// New creates a ResultsScreen.
func New(mode quiz.Mode, outcome quiz.Outcome, band quiz.Band, wrong []quiz.Answer, newly []achievements.Achievement, speaker tts.Speaker) *ResultsScreen {
	return &ResultsScreen{
		mode:    mode,
		outcome: outcome,
		band:    band,
		wrong:   wrong,
		newly:   newly,
		speaker: speaker,
	}
}

func (r *ResultsScreen) Init() tea.Cmd {
	return nil
}

func (r *ResultsScreen) Title() string {
	return "Results"
}

func (r *ResultsScreen) KeyHints() []layout.KeyHint {
	hints := []layout.KeyHint{
		{Key: "R", Description: "Retake"},
		{Key: "Enter", Description: "Home"},
	}
	if len(r.wrong) > 0 {
		hints = append([]layout.KeyHint{
			{Key: "↑↓", Description: "Review"},
			{Key: "S", Description: "Speak"},
		}, hints...)
	}
	return hints
}

func (r *ResultsScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	kmsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return r, nil
	}

	switch kmsg.String() {
	case "enter", "esc":
		return r, func() tea.Msg { return router.PopScreenMsg{} }
	case "r":
		mode := r.mode
		return r, func() tea.Msg { return RetakeMsg{Mode: mode} }
	case "up", "k":
		if r.cursor > 0 {
			r.cursor--
		}
	case "down", "j":
		if r.cursor < len(r.wrong)-1 {
			r.cursor++
		}
	case "s", "p":
		return r, r.speakSelected()
	}
	return r, nil
}

func (r *ResultsScreen) speakSelected() tea.Cmd {
	if r.speaker == nil || len(r.wrong) == 0 {
		return nil
	}
	word := r.wrong[r.cursor].Word.English
	speaker := r.speaker
	return func() tea.Msg {
		_ = speaker.Speak(word)
		return nil
	}
}

func (r *ResultsScreen) View(width, height int) string {
	var sb strings.Builder

	sb.WriteString("\n")
	sb.WriteString(lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Foreground(bandColor(r.band)).
		Bold(true).
		Render(fmt.Sprintf("%d%%", r.outcome.Percent)))
	sb.WriteString("\n")

	sb.WriteString(lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Foreground(theme.Text).
		Render(r.band.Message()))
	sb.WriteString("\n\n")

	stats := fmt.Sprintf("Correct: %d      Wrong: %d      Total: %d",
		r.outcome.Correct, r.outcome.Wrong, r.outcome.Correct+r.outcome.Wrong)
	sb.WriteString(lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Foreground(theme.TextDim).
		Render(stats))
	sb.WriteString("\n")

	if len(r.newly) > 0 {
		sb.WriteString("\n")
		sb.WriteString(sectionHeading("Achievements unlocked", width))
		sb.WriteString("\n")
		for _, a := range r.newly {
			line := fmt.Sprintf("🏆 %s — %s", a.Title, a.Description)
			sb.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center,
				lipgloss.NewStyle().Foreground(theme.Accent).Render(line)))
			sb.WriteString("\n")
		}
	}

	if len(r.wrong) > 0 {
		sb.WriteString("\n")
		sb.WriteString(sectionHeading("Words to review", width))
		sb.WriteString("\n")
		for i, a := range r.wrong {
			prefix := "  "
			style := lipgloss.NewStyle().Foreground(theme.Text)
			if i == r.cursor {
				prefix = "▸ "
				style = lipgloss.NewStyle().Foreground(theme.Primary).Bold(true)
			}
			line := fmt.Sprintf("%s%-16s %s", prefix, a.Word.English, a.Word.Chinese)
			sb.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, style.Render(line)))
			sb.WriteString("\n")
		}
	}

	return sb.String()
}

func sectionHeading(text string, width int) string {
	divider := lipgloss.NewStyle().Foreground(theme.Border).Render(
		strings.Repeat("─", min(width-8, 50)))
	return lipgloss.PlaceHorizontal(width, lipgloss.Center,
		lipgloss.NewStyle().Foreground(theme.TextDim).Render(text)) +
		"\n" + lipgloss.PlaceHorizontal(width, lipgloss.Center, divider)
}

func bandColor(b quiz.Band) color.Color {
	switch b {
	case quiz.BandExcellent:
		return theme.Success
	case quiz.BandGood:
		return theme.Secondary
	case quiz.BandFair:
		return theme.Accent
	default:
		return theme.Error
	}
}

func min(a, b int) int {
	if a < b {
		return a
	}
	return b
}
