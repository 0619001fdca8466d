// Package report implements the progress report screen: overall stats,
// per-unit and per-category progress, recent quiz scores, and the
// achievements list.
package report

import (
	"fmt"
	"strings"
	"time"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/lexio/internal/achievements"
	"github.com/abhisek/lexio/internal/catalog"
	"github.com/abhisek/lexio/internal/progress"
	"github.com/abhisek/lexio/internal/screen"
	"github.com/abhisek/lexio/internal/stats"
	"github.com/abhisek/lexio/internal/ui/components"
	"github.com/abhisek/lexio/internal/ui/layout"
	"github.com/abhisek/lexio/internal/ui/theme"
)

type tab int

const (
	tabStats tab = iota
	tabAchievements
)

// ReportScreen shows learning statistics and achievements.
type ReportScreen struct {
	overview   stats.Overview
	units      []stats.UnitStat
	categories []stats.CategoryStat
	daily      []progress.DayCount
	recent     []int
	statuses   []achievements.Status
	streak     int

	active tab
	errMsg string
}

var _ screen.Screen = (*ReportScreen)(nil)
var _ screen.KeyHintProvider = (*ReportScreen)(nil)

// New loads all report data up front; the screen itself is read-only.
func New(cat *catalog.Catalog, st *progress.Store) *ReportScreen {
	r := &ReportScreen{}

	mastered, err := st.MasteredIDs()
	if err != nil {
		r.errMsg = err.Error()
		return r
	}
	favorite, err := st.FavoriteIDs()
	if err != nil {
		r.errMsg = err.Error()
		return r
	}
	todayLearned, err := st.TodayLearnedCount()
	if err != nil {
		r.errMsg = err.Error()
		return r
	}
	history, err := st.History()
	if err != nil {
		r.errMsg = err.Error()
		return r
	}
	daily, err := st.DailyLearnedCounts(7)
	if err != nil {
		r.errMsg = err.Error()
		return r
	}
	days, err := st.VisitDays()
	if err != nil {
		r.errMsg = err.Error()
		return r
	}

	r.overview = stats.BuildOverview(cat, mastered, favorite, todayLearned)
	r.units = stats.UnitProgress(cat, mastered)
	r.categories = stats.CategoryBreakdown(cat, mastered)
	r.daily = daily
	r.recent = stats.RecentScores(history, 10)
	r.streak = achievements.ConsecutiveDays(days, time.Now())

	snap, err := achievements.LoadSnapshot(st)
	if err != nil {
		r.errMsg = err.Error()
		return r
	}
	r.statuses = achievements.Evaluate(snap, cat, time.Now())
	return r
}

func (r *ReportScreen) Init() tea.Cmd {
	return nil
}

func (r *ReportScreen) Title() string {
	return "Progress Report"
}

func (r *ReportScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "Tab", Description: "Stats / Achievements"},
		{Key: "Esc", Description: "Back"},
	}
}

func (r *ReportScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	if kmsg, ok := msg.(tea.KeyMsg); ok {
		switch kmsg.String() {
		case "tab", "left", "right", "h", "l":
			if r.active == tabStats {
				r.active = tabAchievements
			} else {
				r.active = tabStats
			}
		}
	}
	return r, nil
}

func (r *ReportScreen) View(width, height int) string {
	if r.errMsg != "" {
		return lipgloss.NewStyle().
			Width(width).
			Align(lipgloss.Center).
			Foreground(theme.Error).
			Render("\n" + r.errMsg)
	}

	var sb strings.Builder
	sb.WriteString("\n")
	sb.WriteString(r.renderTabs(width))
	sb.WriteString("\n\n")

	if r.active == tabStats {
		sb.WriteString(r.renderStats(width))
	} else {
		sb.WriteString(r.renderAchievements(width))
	}
	return sb.String()
}

func (r *ReportScreen) renderTabs(width int) string {
	active := lipgloss.NewStyle().Foreground(theme.Primary).Bold(true).Underline(true)
	inactive := lipgloss.NewStyle().Foreground(theme.TextDim)

	statsLabel := "Statistics"
	achLabel := "Achievements"
	if r.active == tabStats {
		statsLabel = active.Render(statsLabel)
		achLabel = inactive.Render(achLabel)
	} else {
		statsLabel = inactive.Render(statsLabel)
		achLabel = active.Render(achLabel)
	}
	return lipgloss.PlaceHorizontal(width, lipgloss.Center, statsLabel+"    "+achLabel)
}

func (r *ReportScreen) renderStats(width int) string {
	var sb strings.Builder

	o := r.overview
	overviewLine := fmt.Sprintf(
		"Mastered %d/%d (%d%%)    Favorites %d    Today +%d    Streak %d day",
		o.Mastered, o.TotalWords, o.MasteredPercent, o.Favorites, o.TodayLearned, r.streak)
	sb.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center,
		lipgloss.NewStyle().Foreground(theme.Text).Bold(true).Render(overviewLine)))
	sb.WriteString("\n\n")

	barWidth := width / 2
	if barWidth > 44 {
		barWidth = 44
	}

	sb.WriteString(heading("Units", width))
	for _, u := range r.units {
		bar := components.NewProgressBar(
			fmt.Sprintf("%-10s", u.Unit.Label()), u.Percent/100, true, barWidth)
		sb.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, bar.View()))
		sb.WriteString("\n")
	}
	sb.WriteString("\n")

	sb.WriteString(heading("Categories", width))
	for _, c := range r.categories {
		line := fmt.Sprintf("%-12s %d/%d mastered", c.Category, c.Mastered, c.Total)
		sb.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center,
			lipgloss.NewStyle().Foreground(theme.Text).Render(line)))
		sb.WriteString("\n")
	}
	sb.WriteString("\n")

	sb.WriteString(heading("Last 7 days", width))
	sb.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, r.renderDaily()))
	sb.WriteString("\n\n")

	if len(r.recent) > 0 {
		sb.WriteString(heading("Recent quiz scores", width))
		sb.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, r.renderScores()))
		sb.WriteString("\n")
	}

	return sb.String()
}

// renderDaily draws one column per day, sized by words learned.
func (r *ReportScreen) renderDaily() string {
	var parts []string
	for _, d := range r.daily {
		label := d.Day.Format("01-02")
		style := lipgloss.NewStyle().Foreground(theme.TextDim)
		if d.Count > 0 {
			style = lipgloss.NewStyle().Foreground(theme.Secondary).Bold(true)
		}
		parts = append(parts, style.Render(fmt.Sprintf("%s:%d", label, d.Count)))
	}
	return strings.Join(parts, "  ")
}

func (r *ReportScreen) renderScores() string {
	var parts []string
	for _, s := range r.recent {
		style := lipgloss.NewStyle().Foreground(theme.Error)
		switch {
		case s >= 90:
			style = lipgloss.NewStyle().Foreground(theme.Success)
		case s >= 70:
			style = lipgloss.NewStyle().Foreground(theme.Secondary)
		case s >= 60:
			style = lipgloss.NewStyle().Foreground(theme.Accent)
		}
		parts = append(parts, style.Render(fmt.Sprintf("%d", s)))
	}
	return strings.Join(parts, "  ")
}

func (r *ReportScreen) renderAchievements(width int) string {
	var sb strings.Builder
	unlockedCount := 0
	for _, st := range r.statuses {
		if st.Unlocked {
			unlockedCount++
		}
	}

	sb.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center,
		lipgloss.NewStyle().Foreground(theme.TextDim).Render(
			fmt.Sprintf("%d of %d unlocked", unlockedCount, len(r.statuses)))))
	sb.WriteString("\n\n")

	for _, st := range r.statuses {
		mark := "🔒"
		style := lipgloss.NewStyle().Foreground(theme.TextDim)
		if st.Unlocked {
			mark = "🏆"
			style = lipgloss.NewStyle().Foreground(theme.Accent)
		}
		line := fmt.Sprintf("%s %-22s %s", mark, st.Title, st.Description)
		sb.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, style.Render(line)))
		sb.WriteString("\n")
	}
	return sb.String()
}

func heading(text string, width int) string {
	return lipgloss.PlaceHorizontal(width, lipgloss.Center,
		lipgloss.NewStyle().Foreground(theme.Primary).Bold(true).Render(text)) + "\n"
}
