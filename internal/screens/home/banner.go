package home

import (
	"fmt"
	"strings"

	"charm.land/lipgloss/v2"

	"github.com/abhisek/lexio/internal/ui/components"
	"github.com/abhisek/lexio/internal/ui/theme"
)

// Block-letter title shown on large terminals.
const titleFull = ` ██╗     ███████╗██╗  ██╗██╗ ██████╗
 ██║     ██╔════╝╚██╗██╔╝██║██╔═══██╗
 ██║     █████╗   ╚███╔╝ ██║██║   ██║
 ██║     ██╔══╝   ██╔██╗ ██║██║   ██║
 ███████╗███████╗██╔╝ ██╗██║╚██████╔╝
 ╚══════╝╚══════╝╚═╝  ╚═╝╚═╝ ╚═════╝`

const titleCompact = "L · E · X · I · O"

const tagline = "learn a little every day"

// contentWidth returns the uniform inner width used for all sections.
func contentWidth(frameWidth int) int {
	return components.ContentWidth(frameWidth)
}

// renderTitle returns the styled title block or compact fallback.
func renderTitle(cw int, compact bool) string {
	style := lipgloss.NewStyle().
		Foreground(theme.Primary).
		Bold(true)

	title := titleFull
	if compact {
		title = titleCompact
	}
	block := style.Render(title) + "\n" +
		lipgloss.NewStyle().Foreground(theme.TextDim).Italic(true).Render(tagline)

	return lipgloss.NewStyle().
		Width(cw).
		Align(lipgloss.Center).
		Render(block)
}

// renderStatsBar renders mastered / today / streak in a bordered box.
func renderStatsBar(mastered, todayLearned, streak, cw int, compact bool) string {
	masteredStyle := lipgloss.NewStyle().Foreground(theme.Success).Bold(true)
	todayStyle := lipgloss.NewStyle().Foreground(theme.Secondary).Bold(true)
	streakStyle := lipgloss.NewStyle().Foreground(theme.Accent).Bold(true)

	var stats string
	if compact {
		stats = fmt.Sprintf("%s %s %s",
			masteredStyle.Render(fmt.Sprintf("✓%d", mastered)),
			todayStyle.Render(fmt.Sprintf("+%d", todayLearned)),
			streakStyle.Render(fmt.Sprintf("★%d", streak)),
		)
	} else {
		stats = fmt.Sprintf("%s  %s  %s",
			masteredStyle.Render(fmt.Sprintf("✓ %d MASTERED", mastered)),
			todayStyle.Render(fmt.Sprintf("+ %d TODAY", todayLearned)),
			streakStyle.Render(fmt.Sprintf("★ %d DAY STREAK", streak)),
		)
	}

	return lipgloss.NewStyle().
		Border(lipgloss.DoubleBorder()).
		BorderForeground(theme.Secondary).
		Width(cw - 2).
		Align(lipgloss.Center).
		Padding(0, 1).
		Render(stats)
}

// buttonWidth is the fixed width for menu buttons.
const buttonWidth = 24

// renderMenu renders each menu item as a fixed-width button.
func renderMenu(items []string, selected int, cw int) string {
	var buttons []string
	for i, label := range items {
		buttons = append(buttons, components.MenuButton(label, i == selected, buttonWidth))
	}
	block := strings.Join(buttons, "\n")

	return lipgloss.NewStyle().
		Width(cw).
		Align(lipgloss.Center).
		Render(block)
}

// renderMenuCompact renders menu items as plain lines for small terminals.
func renderMenuCompact(items []string, selected int, cw int) string {
	var lines []string
	for i, label := range items {
		var line string
		if i == selected {
			line = lipgloss.NewStyle().
				Foreground(theme.BgDark).
				Background(theme.Accent).
				Bold(true).
				Render(" ▸ " + label + " ")
		} else {
			line = lipgloss.NewStyle().
				Foreground(theme.Text).
				Render("   " + label)
		}
		lines = append(lines, line)
	}
	block := strings.Join(lines, "\n")

	return lipgloss.NewStyle().
		Width(cw).
		Align(lipgloss.Center).
		Render(block)
}

// renderUpdateNote renders a dim one-line update notification.
func renderUpdateNote(latestVersion string, cw int) string {
	text := fmt.Sprintf("New version %s available", latestVersion)
	return lipgloss.NewStyle().
		Foreground(theme.TextDim).
		Width(cw).
		Align(lipgloss.Center).
		Render(text)
}

// renderFrame wraps content in a double-border frame, centered within
// the given dimensions.
func renderFrame(content string, width, height int) string {
	return components.Frame(content, width, height)
}
