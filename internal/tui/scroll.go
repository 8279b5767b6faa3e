package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/viewport"
	"github.com/charmbracelet/lipgloss"

	"github.com/alexisbeaulieu97/wordbook/internal/lookup"
	"github.com/alexisbeaulieu97/wordbook/internal/theme"
)

// span is the first and last content line of a rendered block.
type span struct {
	start int
	end   int
}

// layoutBlocks wraps each block to width and stacks them with gap blank lines
// between, returning the content and the line span of every block.
func layoutBlocks(width int, blocks []string, gap int) (string, []span) {
	wrap := lipgloss.NewStyle().Width(width)

	var b strings.Builder
	spans := make([]span, 0, len(blocks))
	line := 0
	for i, block := range blocks {
		if i > 0 {
			b.WriteString(strings.Repeat("\n", gap+1))
			line += gap
		}
		rendered := wrap.Render(block)
		height := lipgloss.Height(rendered)
		spans = append(spans, span{start: line, end: line + height - 1})
		b.WriteString(rendered)
		line += height
	}
	return b.String(), spans
}

// resultsLayout renders the results pane body. The spans cover the entry
// blocks only and are empty when no entries are shown.
func (m Model) resultsLayout(st theme.Styles, state lookup.State) (string, []span) {
	var blocks []string
	if state.Pending {
		blocks = append(blocks, fmt.Sprintf("%s Looking up %q...", m.spinner.View(), state.Query))
	}

	selected := -1
	if m.focus == FocusResults {
		selected = m.resultCursor
	}

	first := len(blocks)
	hasEntries := false
	switch {
	case state.NotFound != nil:
		blocks = append(blocks, RenderNotFound(st, *state.NotFound))
	case len(state.Entries) > 0:
		blocks = append(blocks, entryBlocks(st, state.Entries, selected)...)
		hasEntries = true
	case !state.Pending:
		blocks = append(blocks, st.Muted.Render("Search for a word to see its definitions"))
	}

	content, spans := layoutBlocks(m.viewport.Width, blocks, 1)
	if !hasEntries {
		return content, nil
	}
	return content, spans[first:]
}

// favoritesLayout renders the favorites pane body: the label, then one block
// per favorite. The spans cover the favorite blocks only.
func (m Model) favoritesLayout(st theme.Styles) (string, []span) {
	favs := m.favorites.List()
	blocks := []string{st.Title.Render(FavoritesLabel)}
	if len(favs) == 0 {
		blocks = append(blocks, st.Muted.Render("No favorites yet"))
		content, _ := layoutBlocks(m.favViewport.Width, blocks, 0)
		return content, nil
	}

	selected := -1
	if m.focus == FocusFavorites {
		selected = m.favoriteCursor
	}
	blocks = append(blocks, favoriteBlocks(st, favs, selected)...)

	content, spans := layoutBlocks(m.favViewport.Width, blocks, 0)
	return content, spans[1:]
}

// syncPanes loads the current state into both viewports.
func (m *Model) syncPanes() {
	st := m.theme.Styles()
	results, _ := m.resultsLayout(st, m.lookup.State())
	m.viewport.SetContent(results)
	favs, _ := m.favoritesLayout(st)
	m.favViewport.SetContent(favs)
}

// revealSelection scrolls the focused pane until its selected block is visible.
func (m *Model) revealSelection() {
	m.syncPanes()

	st := m.theme.Styles()
	switch m.focus {
	case FocusResults:
		_, spans := m.resultsLayout(st, m.lookup.State())
		reveal(&m.viewport, spans, m.resultCursor)
	case FocusFavorites:
		_, spans := m.favoritesLayout(st)
		reveal(&m.favViewport, spans, m.favoriteCursor)
	}
}

// reveal keeps the start of a block taller than the viewport in view.
func reveal(vp *viewport.Model, spans []span, i int) {
	if i < 0 || i >= len(spans) {
		return
	}
	s := spans[i]
	switch {
	case s.start < vp.YOffset:
		vp.SetYOffset(s.start)
	case s.end >= vp.YOffset+vp.Height:
		vp.SetYOffset(min(s.start, s.end-vp.Height+1))
	}
}

func scroll(vp *viewport.Model, lines int) {
	vp.SetYOffset(vp.YOffset + lines)
}
