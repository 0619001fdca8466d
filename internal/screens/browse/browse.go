// Package browse implements the word list screen: scrolling, live
// search, unit/category/difficulty filters, a favorites-only view, and
// per-word mastered/favorite toggles.
package browse

import (
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"

	"github.com/abhisek/lexio/internal/catalog"
	"github.com/abhisek/lexio/internal/progress"
	"github.com/abhisek/lexio/internal/screen"
	"github.com/abhisek/lexio/internal/tts"
	"github.com/abhisek/lexio/internal/ui/components"
	"github.com/abhisek/lexio/internal/ui/layout"
)

// BrowseScreen shows the catalog as a navigable list.
type BrowseScreen struct {
	cat     *catalog.Catalog
	store   *progress.Store
	speaker tts.Speaker

	words  []catalog.Word // current filtered view
	cursor int
	offset int

	units   []catalog.Unit
	unitIdx int // -1 means all units
	cats    []string
	catIdx  int // -1 means all categories
	diffs   []catalog.Difficulty
	diffIdx int // -1 means all difficulties
	favOnly bool

	search    components.TextInput
	searching bool
	term      string

	showDetail   bool
	confirmClear bool

	mastered map[int]bool
	favorite map[int]bool
	errMsg   string
}

var _ screen.Screen = (*BrowseScreen)(nil)
var _ screen.KeyHintProvider = (*BrowseScreen)(nil)

// New creates a new BrowseScreen over the full catalog.
func New(cat *catalog.Catalog, st *progress.Store, speaker tts.Speaker) *BrowseScreen {
	b := &BrowseScreen{
		cat:     cat,
		store:   st,
		speaker: speaker,
		units:   cat.Units(),
		unitIdx: -1,
		cats:    cat.Categories(),
		catIdx:  -1,
		diffs:   []catalog.Difficulty{catalog.DifficultyEasy, catalog.DifficultyMedium, catalog.DifficultyHard},
		diffIdx: -1,
		search:  components.NewTextInput("Search words...", false, 30),
	}
	b.loadSets()
	b.applyFilter()
	return b
}

func (b *BrowseScreen) loadSets() {
	var err error
	if b.mastered, err = b.store.MasteredIDs(); err != nil {
		b.errMsg = err.Error()
		b.mastered = map[int]bool{}
	}
	if b.favorite, err = b.store.FavoriteIDs(); err != nil {
		b.errMsg = err.Error()
		b.favorite = map[int]bool{}
	}
}

// applyFilter rebuilds the visible word list from the active filters and
// search term, clamping the cursor.
func (b *BrowseScreen) applyFilter() {
	var opts catalog.FilterOpts
	if b.unitIdx >= 0 {
		opts.Unit = &b.units[b.unitIdx]
	}
	if b.catIdx >= 0 {
		opts.Category = b.cats[b.catIdx]
	}
	if b.diffIdx >= 0 {
		opts.Difficulty = b.diffs[b.diffIdx]
	}
	pool := b.cat.Filter(opts)
	if b.favOnly {
		var favs []catalog.Word
		for _, w := range pool {
			if b.favorite[w.ID] {
				favs = append(favs, w)
			}
		}
		pool = favs
	}
	b.words = catalog.Match(pool, b.term)

	if b.cursor >= len(b.words) {
		b.cursor = len(b.words) - 1
	}
	if b.cursor < 0 {
		b.cursor = 0
	}
	b.offset = 0
	b.showDetail = false
}

func (b *BrowseScreen) Init() tea.Cmd {
	return nil
}

// ConsumesEsc reports whether esc should cancel the search or a pending
// confirmation instead of leaving the screen.
func (b *BrowseScreen) ConsumesEsc() bool {
	return b.searching || b.confirmClear
}

func (b *BrowseScreen) Title() string {
	return "Browse"
}

func (b *BrowseScreen) KeyHints() []layout.KeyHint {
	if b.searching {
		return []layout.KeyHint{
			{Key: "Enter", Description: "Done"},
			{Key: "Esc", Description: "Cancel search"},
		}
	}
	if b.confirmClear {
		return []layout.KeyHint{
			{Key: "Y", Description: "Clear all favorites"},
			{Key: "Esc", Description: "Cancel"},
		}
	}
	hints := []layout.KeyHint{
		{Key: "↑↓", Description: "Navigate"},
		{Key: "Enter", Description: "Reveal"},
		{Key: "M", Description: "Mastered"},
		{Key: "F", Description: "Favorite"},
		{Key: "S", Description: "Speak"},
		{Key: "/", Description: "Search"},
		{Key: "U", Description: "Unit"},
		{Key: "C", Description: "Category"},
		{Key: "D", Description: "Level"},
		{Key: "V", Description: "Favorites"},
	}
	if b.favOnly {
		hints = append(hints, layout.KeyHint{Key: "X", Description: "Clear all"})
	}
	return append(hints,
		layout.KeyHint{Key: "R", Description: "Reset filters"},
		layout.KeyHint{Key: "Esc", Description: "Back"},
	)
}

func (b *BrowseScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	kmsg, ok := msg.(tea.KeyMsg)
	if !ok {
		if b.searching {
			var cmd tea.Cmd
			b.search, cmd = b.search.Update(msg)
			return b, cmd
		}
		return b, nil
	}

	if b.confirmClear {
		switch kmsg.String() {
		case "y":
			b.confirmClear = false
			return b, b.clearFavorites()
		default:
			b.confirmClear = false
			return b, nil
		}
	}

	if b.searching {
		switch kmsg.String() {
		case "enter":
			b.searching = false
			return b, nil
		case "esc":
			b.searching = false
			b.term = ""
			b.search.Model.SetValue("")
			b.applyFilter()
			return b, nil
		default:
			var cmd tea.Cmd
			b.search, cmd = b.search.Update(msg)
			b.term = b.search.Value()
			b.applyFilter()
			return b, cmd
		}
	}

	switch kmsg.String() {
	case "up", "k":
		if b.cursor > 0 {
			b.cursor--
		}
		b.showDetail = false
	case "down", "j":
		if b.cursor < len(b.words)-1 {
			b.cursor++
		}
		b.showDetail = false
	case "enter":
		return b, b.reveal()
	case "m":
		return b, b.toggleMastered()
	case "f":
		return b, b.toggleFavorite()
	case "s", "p":
		return b, b.speak()
	case "/":
		b.searching = true
		return b, b.search.Init()
	case "u":
		b.cycleUnit()
	case "c":
		b.catIdx = cycleIndex(b.catIdx, len(b.cats))
		b.applyFilter()
	case "d":
		b.diffIdx = cycleIndex(b.diffIdx, len(b.diffs))
		b.applyFilter()
	case "v":
		b.favOnly = !b.favOnly
		b.applyFilter()
	case "x":
		if b.favOnly && len(b.favorite) > 0 {
			b.confirmClear = true
		}
	case "r":
		b.resetFilters()
	}

	return b, nil
}

// cycleIndex steps -1 (no filter) through each option and back to -1.
func cycleIndex(idx, n int) int {
	idx++
	if idx >= n {
		return -1
	}
	return idx
}

// reveal shows the translation for the selected word and counts it as
// learned today.
func (b *BrowseScreen) reveal() tea.Cmd {
	if len(b.words) == 0 {
		return nil
	}
	b.showDetail = !b.showDetail
	if b.showDetail {
		w := b.words[b.cursor]
		if err := b.store.MarkLearned(w.ID); err != nil {
			b.errMsg = err.Error()
		}
	}
	return nil
}

func (b *BrowseScreen) toggleMastered() tea.Cmd {
	if len(b.words) == 0 {
		return nil
	}
	w := b.words[b.cursor]
	on, err := b.store.ToggleMastered(w.ID)
	if err != nil {
		b.errMsg = err.Error()
		return nil
	}
	b.mastered[w.ID] = on
	if !on {
		delete(b.mastered, w.ID)
	}
	return nil
}

func (b *BrowseScreen) toggleFavorite() tea.Cmd {
	if len(b.words) == 0 {
		return nil
	}
	w := b.words[b.cursor]
	on, err := b.store.ToggleFavorite(w.ID)
	if err != nil {
		b.errMsg = err.Error()
		return nil
	}
	b.favorite[w.ID] = on
	if !on {
		delete(b.favorite, w.ID)
	}
	return nil
}

func (b *BrowseScreen) speak() tea.Cmd {
	if len(b.words) == 0 || b.speaker == nil {
		return nil
	}
	word := b.words[b.cursor].English
	speaker := b.speaker
	return func() tea.Msg {
		_ = speaker.Speak(word)
		return nil
	}
}

// cycleUnit advances the unit filter: all units, then each unit in order.
func (b *BrowseScreen) cycleUnit() {
	b.unitIdx = cycleIndex(b.unitIdx, len(b.units))
	b.term = ""
	b.search.Model.SetValue("")
	b.applyFilter()
}

// resetFilters drops every active filter and the search term.
func (b *BrowseScreen) resetFilters() {
	b.unitIdx = -1
	b.catIdx = -1
	b.diffIdx = -1
	b.favOnly = false
	b.term = ""
	b.search.Model.SetValue("")
	b.applyFilter()
}

func (b *BrowseScreen) clearFavorites() tea.Cmd {
	if err := b.store.ClearFavorites(); err != nil {
		b.errMsg = err.Error()
		return nil
	}
	b.favorite = map[int]bool{}
	b.applyFilter()
	return nil
}

func (b *BrowseScreen) unitLabel() string {
	if b.unitIdx < 0 {
		return "All units"
	}
	return b.units[b.unitIdx].Label()
}

func (b *BrowseScreen) selectedWord() (catalog.Word, bool) {
	if len(b.words) == 0 {
		return catalog.Word{}, false
	}
	return b.words[b.cursor], true
}

func (b *BrowseScreen) statusLine() string {
	parts := []string{b.unitLabel()}
	if b.catIdx >= 0 {
		parts = append(parts, b.cats[b.catIdx])
	}
	if b.diffIdx >= 0 {
		parts = append(parts, string(b.diffs[b.diffIdx]))
	}
	if b.favOnly {
		parts = append(parts, "favorites")
	}
	parts = append(parts, fmt.Sprintf("%d words", len(b.words)))
	return strings.Join(parts, " · ")
}
