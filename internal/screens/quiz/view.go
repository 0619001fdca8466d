package quiz

import (
	"fmt"
	"strings"

	"charm.land/lipgloss/v2"

	quizcore "github.com/abhisek/lexio/internal/quiz"
	"github.com/abhisek/lexio/internal/ui/components"
	"github.com/abhisek/lexio/internal/ui/theme"
)

func (q *QuizScreen) View(width, height int) string {
	var sb strings.Builder

	sb.WriteString("\n")
	sb.WriteString(q.renderProgress(width))
	sb.WriteString("\n\n")

	if q.showingFeedback {
		sb.WriteString(q.renderFeedback(width))
	} else {
		sb.WriteString(q.renderQuestion(width))
	}

	if q.errMsg != "" {
		sb.WriteString("\n\n")
		sb.WriteString(lipgloss.NewStyle().
			Width(width).
			Align(lipgloss.Center).
			Foreground(theme.Error).
			Render(q.errMsg))
	}

	return sb.String()
}

func (q *QuizScreen) renderProgress(width int) string {
	label := fmt.Sprintf("Question %d of %d", q.session.CurrentIndex()+1, q.session.Len())
	if q.session.IsComplete() {
		label = "Done"
	}

	bar := components.NewProgressBar("", q.session.ProgressFraction(), false, width/2)

	block := lipgloss.NewStyle().Foreground(theme.TextDim).Render(label) + "\n" + bar.View()
	return lipgloss.PlaceHorizontal(width, lipgloss.Center,
		lipgloss.NewStyle().Align(lipgloss.Center).Render(block))
}

func (q *QuizScreen) renderQuestion(width int) string {
	word, err := q.session.CurrentQuestion()
	if err != nil {
		return ""
	}

	// Choice mode asks for the translation of an english word; the
	// spelling prompt goes the other way.
	if q.session.Mode() == quizcore.ModeChoice {
		return lipgloss.PlaceHorizontal(width, lipgloss.Center, q.mc.View())
	}

	var sb strings.Builder
	prompt := lipgloss.NewStyle().
		Foreground(theme.Text).
		Bold(true).
		Render(word.Chinese)
	sb.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, prompt))
	sb.WriteString("\n")

	if word.Phonetic != "" {
		sb.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center,
			lipgloss.NewStyle().Foreground(theme.TextDim).Render(word.Phonetic)))
		sb.WriteString("\n")
	}
	sb.WriteString("\n")
	sb.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, q.input.View()))
	return sb.String()
}

func (q *QuizScreen) renderFeedback(width int) string {
	answers := q.session.Answers()
	if len(answers) == 0 {
		return ""
	}
	last := answers[len(answers)-1]

	var sb strings.Builder

	// Choice mode: the option list stays visible with the correct and
	// chosen answers colored.
	if q.session.Mode() == quizcore.ModeChoice {
		sb.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, q.mc.View()))
		sb.WriteString("\n")
	}

	if q.lastCorrect {
		sb.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center,
			lipgloss.NewStyle().Foreground(theme.Success).Bold(true).Render("✓ Correct!")))
	} else {
		sb.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center,
			lipgloss.NewStyle().Foreground(theme.Error).Bold(true).Render("✗ Not quite")))
	}
	sb.WriteString("\n\n")

	answer := lipgloss.NewStyle().Foreground(theme.Primary).Bold(true).Render(last.Word.English)
	if last.Word.Phonetic != "" {
		answer += "  " + lipgloss.NewStyle().Foreground(theme.TextDim).Render(last.Word.Phonetic)
	}
	sb.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, answer))
	sb.WriteString("\n")
	sb.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center,
		lipgloss.NewStyle().Foreground(theme.Text).Render(last.Word.Chinese)))

	if !q.lastCorrect && last.RawInput != "" {
		sb.WriteString("\n\n")
		sb.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center,
			lipgloss.NewStyle().Foreground(theme.TextDim).Render(
				fmt.Sprintf("You typed: %s", last.RawInput))))
	}

	return sb.String()
}
