package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/alexisbeaulieu97/wordbook/internal/lookup"
	"github.com/alexisbeaulieu97/wordbook/internal/theme"
)

// View renders the current model state
func (m Model) View() string {
	st := m.theme.Styles()
	if m.showHelp {
		return m.renderHelp(st)
	}

	state := m.lookup.State()

	var content strings.Builder
	content.WriteString(m.renderHeader(st))
	content.WriteString("\n")
	content.WriteString(m.input.View())
	content.WriteString("\n")

	if state.ValidationError != "" {
		content.WriteString(st.Error.Render(state.ValidationError))
		content.WriteString("\n")
	}
	if m.errorMsg != "" {
		content.WriteString(st.Error.Render(m.errorMsg))
		content.WriteString("\n")
	}
	if m.status != "" {
		content.WriteString(st.Muted.Render(m.status))
		content.WriteString("\n")
	}

	results := m.resultsPane(st)
	favs := m.favoritesPane(st)
	if m.width >= splitWidth {
		content.WriteString(lipgloss.JoinHorizontal(lipgloss.Top, results, favs))
	} else {
		content.WriteString(lipgloss.JoinVertical(lipgloss.Left, results, favs))
	}
	content.WriteString("\n")
	content.WriteString(m.renderFooter(st))

	return content.String()
}

func (m Model) renderHeader(st theme.Styles) string {
	icon := "☀"
	if st.Mode == theme.Dark {
		icon = "☾"
	}
	title := st.Title.UnsetMarginBottom().Render("wordbook")
	mode := st.Muted.Render(fmt.Sprintf("%s %s", icon, st.Mode.Short()))
	return lipgloss.JoinHorizontal(lipgloss.Top, title, "  ", mode)
}

// resultsContent is the unframed body of the results pane.
func (m Model) resultsContent(st theme.Styles, state lookup.State) string {
	content, _ := m.resultsLayout(st, state)
	return content
}

func (m Model) resultsPane(st theme.Styles) string {
	width, _ := m.paneWidths()
	frame := st.Pane
	if m.focus == FocusResults {
		frame = st.Focused
	}
	return frame.Width(max(width-2, 10)).Render(m.viewport.View())
}

// favoritesContent is the unframed body of the favorites pane.
func (m Model) favoritesContent(st theme.Styles) string {
	content, _ := m.favoritesLayout(st)
	return content
}

func (m Model) favoritesPane(st theme.Styles) string {
	_, width := m.paneWidths()
	frame := st.Pane
	if m.focus == FocusFavorites {
		frame = st.Focused
	}
	return frame.Width(max(width-2, 10)).Render(m.favViewport.View())
}

func (m Model) renderFooter(st theme.Styles) string {
	var hints string
	switch m.focus {
	case FocusInput:
		hints = "enter: search • tab: results • ctrl+t: theme • esc: quit"
	case FocusResults:
		hints = "↑/↓: select • pgup/pgdn: scroll • a: add favorite • tab: favorites • ?: help • esc: back"
	case FocusFavorites:
		hints = "↑/↓: select • pgup/pgdn: scroll • d: delete • tab: search • ?: help • esc: back"
	}
	return st.Footer.Render(hints)
}

func (m Model) renderHelp(st theme.Styles) string {
	keys := []struct{ key, desc string }{
		{"enter", "Search for the typed word"},
		{"tab", "Move focus to the next pane"},
		{"shift+tab", "Move focus to the previous pane"},
		{"↑/↓ k/j", "Select a result or favorite"},
		{"pgup/pgdn", "Scroll the focused pane"},
		{"a", "Add the selected result to favorites"},
		{"d", "Delete the selected favorite"},
		{"ctrl+t", "Toggle light/dark theme"},
		{"esc", "Back to search, or quit"},
		{"ctrl+c", "Quit"},
	}

	lines := []string{st.Title.Render("Keyboard shortcuts")}
	for _, k := range keys {
		lines = append(lines, lipgloss.JoinHorizontal(lipgloss.Top, st.HelpKey.Render(k.key), st.HelpDesc.Render(k.desc)))
	}
	lines = append(lines, "", st.Muted.Render("Press ? or esc to close"))
	return st.Pane.Render(strings.Join(lines, "\n"))
}
