package browse

import (
	"fmt"
	"strings"

	"charm.land/lipgloss/v2"

	"github.com/abhisek/lexio/internal/catalog"
	"github.com/abhisek/lexio/internal/ui/components"
	"github.com/abhisek/lexio/internal/ui/theme"
)

// visibleRows returns how many list rows fit in the content area,
// leaving room for the status line, search bar and detail card.
func (b *BrowseScreen) visibleRows(height int) int {
	rows := height - 6
	if b.showDetail {
		rows -= 7
	}
	if rows < 3 {
		rows = 3
	}
	return rows
}

func (b *BrowseScreen) View(width, height int) string {
	var sb strings.Builder

	// Status line: active filter and word count.
	sb.WriteString(lipgloss.NewStyle().
		Foreground(theme.TextDim).
		Render("  " + b.statusLine()))
	sb.WriteString("\n")

	// Search bar.
	if b.searching || b.term != "" {
		sb.WriteString("  " + b.search.View())
	}
	sb.WriteString("\n")

	if b.confirmClear {
		sb.WriteString(lipgloss.NewStyle().
			Foreground(theme.Accent).
			Bold(true).
			Render("  Remove all favorites? Press Y to confirm."))
		sb.WriteString("\n")
	}
	sb.WriteString("\n")

	if len(b.words) == 0 {
		sb.WriteString(lipgloss.NewStyle().
			Foreground(theme.TextDim).
			Italic(true).
			Render("  No words match."))
		return sb.String()
	}

	rows := b.visibleRows(height)
	b.scrollTo(rows)

	end := b.offset + rows
	if end > len(b.words) {
		end = len(b.words)
	}

	for i := b.offset; i < end; i++ {
		sb.WriteString(b.renderRow(i, width))
		sb.WriteString("\n")
	}

	if end < len(b.words) {
		sb.WriteString(lipgloss.NewStyle().
			Foreground(theme.TextDim).
			Render(fmt.Sprintf("  … %d more", len(b.words)-end)))
		sb.WriteString("\n")
	}

	if b.showDetail {
		if w, ok := b.selectedWord(); ok {
			sb.WriteString("\n")
			sb.WriteString(b.renderDetail(w, width))
		}
	}

	if b.errMsg != "" {
		sb.WriteString("\n")
		sb.WriteString(lipgloss.NewStyle().
			Foreground(theme.Error).
			Render("  " + b.errMsg))
	}

	return sb.String()
}

// scrollTo keeps the cursor inside the visible window.
func (b *BrowseScreen) scrollTo(rows int) {
	if b.cursor < b.offset {
		b.offset = b.cursor
	}
	if b.cursor >= b.offset+rows {
		b.offset = b.cursor - rows + 1
	}
}

func (b *BrowseScreen) renderRow(i, width int) string {
	w := b.words[i]

	masteredMark := " "
	if b.mastered[w.ID] {
		masteredMark = "✓"
	}
	favoriteMark := " "
	if b.favorite[w.ID] {
		favoriteMark = "♥"
	}
	marks := masteredMark + favoriteMark

	prefix := "   "
	if i == b.cursor {
		prefix = " ▸ "
	}

	line := fmt.Sprintf("%s%-16s %-14s %s", prefix, w.English, w.Phonetic, marks)

	if i == b.cursor {
		return lipgloss.NewStyle().Foreground(theme.Primary).Bold(true).Render(line)
	}
	if b.mastered[w.ID] {
		return lipgloss.NewStyle().Foreground(theme.TextDim).Render(line)
	}
	return lipgloss.NewStyle().Foreground(theme.Text).Render(line)
}

// renderDetail shows the translation card for the selected word.
func (b *BrowseScreen) renderDetail(w catalog.Word, width int) string {
	title := lipgloss.NewStyle().Foreground(theme.Primary).Bold(true).Render(w.English)
	if w.Phonetic != "" {
		title += "  " + lipgloss.NewStyle().Foreground(theme.TextDim).Render(w.Phonetic)
	}

	lines := []string{
		title,
		lipgloss.NewStyle().Foreground(theme.Text).Bold(true).Render(w.Chinese),
		lipgloss.NewStyle().Foreground(theme.TextDim).Render(
			fmt.Sprintf("%s · %s · %s", w.Unit.Label(), w.Category, w.Difficulty)),
	}

	cw := width - 6
	if cw > 50 {
		cw = 50
	}
	card := components.Card(strings.Join(lines, "\n"), cw)

	return lipgloss.NewStyle().PaddingLeft(2).Render(card)
}
