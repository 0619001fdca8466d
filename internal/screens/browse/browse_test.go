package browse

import (
	"path/filepath"
	"testing"

	tea "charm.land/bubbletea/v2"

	"github.com/abhisek/lexio/internal/catalog"
	"github.com/abhisek/lexio/internal/progress"
	"github.com/abhisek/lexio/internal/tts"
)

func keyPress(r rune) tea.KeyPressMsg {
	return tea.KeyPressMsg{Code: r, Text: string(r)}
}

func testBrowse(t *testing.T) (*BrowseScreen, *progress.Store) {
	t.Helper()

	cat, err := catalog.Default()
	if err != nil {
		t.Fatalf("Default: %v", err)
	}
	st, err := progress.Open(filepath.Join(t.TempDir(), "test.db"))
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	t.Cleanup(func() { _ = st.Close() })

	return New(cat, st, tts.Noop{}), st
}

func TestShowsWholeCatalogByDefault(t *testing.T) {
	b, _ := testBrowse(t)
	if len(b.words) != b.cat.Len() {
		t.Errorf("visible words = %d, want %d", len(b.words), b.cat.Len())
	}
}

func TestUnitFilterCycles(t *testing.T) {
	b, _ := testBrowse(t)

	total := len(b.words)
	b.Update(keyPress('u'))
	if b.unitIdx != 0 {
		t.Fatalf("unitIdx = %d, want 0", b.unitIdx)
	}
	if len(b.words) >= total {
		t.Errorf("unit filter did not narrow the list: %d words", len(b.words))
	}

	// Cycling past the last unit returns to the full list.
	for i := 0; i < len(b.units); i++ {
		b.Update(keyPress('u'))
	}
	if b.unitIdx != -1 {
		t.Errorf("unitIdx = %d, want -1 after full cycle", b.unitIdx)
	}
	if len(b.words) != total {
		t.Errorf("visible words = %d, want %d", len(b.words), total)
	}
}

func TestToggleMasteredPersists(t *testing.T) {
	b, st := testBrowse(t)

	word := b.words[b.cursor]
	b.Update(keyPress('m'))

	if !b.mastered[word.ID] {
		t.Error("screen state should show the word as mastered")
	}
	ids, err := st.MasteredIDs()
	if err != nil {
		t.Fatalf("MasteredIDs: %v", err)
	}
	if !ids[word.ID] {
		t.Error("store should have the word as mastered")
	}

	// Second press flips it back off.
	b.Update(keyPress('m'))
	ids, _ = st.MasteredIDs()
	if ids[word.ID] {
		t.Error("second toggle should unmark the word")
	}
}

func TestRevealMarksLearned(t *testing.T) {
	b, st := testBrowse(t)

	b.Update(tea.KeyPressMsg{Code: tea.KeyEnter})
	if !b.showDetail {
		t.Fatal("enter should open the detail card")
	}

	count, err := st.TodayLearnedCount()
	if err != nil {
		t.Fatalf("TodayLearnedCount: %v", err)
	}
	if count != 1 {
		t.Errorf("TodayLearnedCount = %d, want 1", count)
	}

	// Revealing the same word again does not double count.
	b.Update(tea.KeyPressMsg{Code: tea.KeyEnter})
	b.Update(tea.KeyPressMsg{Code: tea.KeyEnter})
	count, _ = st.TodayLearnedCount()
	if count != 1 {
		t.Errorf("TodayLearnedCount after re-reveal = %d, want 1", count)
	}
}

func TestSearchNarrowsList(t *testing.T) {
	b, _ := testBrowse(t)

	b.Update(keyPress('/'))
	if !b.searching {
		t.Fatal("slash should enter search mode")
	}

	for _, r := range "apple" {
		b.Update(keyPress(r))
	}
	if len(b.words) == 0 {
		t.Fatal("search for a catalog word should match")
	}
	for _, w := range b.words {
		if w.English != "apple" {
			t.Errorf("unexpected match %q", w.English)
		}
	}
}

func TestFavoritesViewAndClearAll(t *testing.T) {
	b, st := testBrowse(t)

	// Favorite the first two words, then switch to the favorites view.
	b.Update(keyPress('f'))
	b.Update(keyPress('j'))
	b.Update(keyPress('f'))
	b.Update(keyPress('v'))

	if !b.favOnly {
		t.Fatal("v should enable the favorites view")
	}
	if len(b.words) != 2 {
		t.Fatalf("favorites view shows %d words, want 2", len(b.words))
	}

	// x asks for confirmation; a non-y key cancels.
	b.Update(keyPress('x'))
	if !b.confirmClear {
		t.Fatal("x should ask for confirmation")
	}
	b.Update(keyPress('n'))
	if b.confirmClear {
		t.Fatal("non-y key should cancel the confirmation")
	}
	if len(b.words) != 2 {
		t.Fatalf("cancel must keep favorites, got %d words", len(b.words))
	}

	// y clears every favorite, in memory and in the store.
	b.Update(keyPress('x'))
	b.Update(keyPress('y'))
	if len(b.words) != 0 {
		t.Errorf("favorites view shows %d words after clear, want 0", len(b.words))
	}
	favs, err := st.FavoriteIDs()
	if err != nil {
		t.Fatalf("FavoriteIDs: %v", err)
	}
	if len(favs) != 0 {
		t.Errorf("store still holds %d favorites", len(favs))
	}
}

func TestCategoryAndDifficultyFiltersNarrow(t *testing.T) {
	b, _ := testBrowse(t)
	total := len(b.words)

	b.Update(keyPress('c'))
	if b.catIdx != 0 {
		t.Fatalf("catIdx = %d, want 0", b.catIdx)
	}
	if len(b.words) >= total {
		t.Errorf("category filter did not narrow the list: %d words", len(b.words))
	}

	b.Update(keyPress('d'))
	if b.diffIdx != 0 {
		t.Fatalf("diffIdx = %d, want 0", b.diffIdx)
	}

	// r drops every filter at once.
	b.Update(keyPress('r'))
	if b.catIdx != -1 || b.diffIdx != -1 || b.unitIdx != -1 || b.favOnly {
		t.Error("reset should clear all filters")
	}
	if len(b.words) != total {
		t.Errorf("reset shows %d words, want %d", len(b.words), total)
	}
}
