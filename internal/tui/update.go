package tui

import (
	"errors"
	"fmt"

	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/alexisbeaulieu97/wordbook/internal/lookup"
)

// Update handles incoming messages and updates the model
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	next, cmd := m.handle(msg)
	model := next.(Model)
	model.syncPanes()
	return model, cmd
}

func (m Model) handle(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.resize()
		return m, nil

	case tea.KeyMsg:
		return m.handleKeyPress(msg)

	case spinner.TickMsg:
		if !m.lookup.State().Pending {
			return m, nil
		}
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd

	case SearchResultMsg:
		if m.lookup.Resolve(msg.Ticket, msg.Result, msg.Err) {
			m.resultCursor = 0
			m.syncPanes()
			m.viewport.GotoTop()
		}
		return m, nil

	case clearStatusMsg:
		if msg.seq == m.statusSeq {
			m.status = ""
		}
		return m, nil
	}

	return m, nil
}

func (m Model) handleKeyPress(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if m.showHelp {
		switch msg.String() {
		case "ctrl+c":
			return m, tea.Quit
		case "?", "esc", "q":
			m.showHelp = false
		}
		return m, nil
	}

	switch msg.String() {
	case "ctrl+c":
		return m, tea.Quit
	case "ctrl+t":
		return m.toggleTheme()
	case "tab":
		return m.setFocus(m.focus.next())
	case "shift+tab":
		return m.setFocus(m.focus.prev())
	case "esc":
		if m.focus != FocusInput {
			return m.setFocus(FocusInput)
		}
		return m, tea.Quit
	}

	switch m.focus {
	case FocusInput:
		return m.handleInputKeys(msg)
	case FocusResults:
		return m.handleResultKeys(msg)
	case FocusFavorites:
		return m.handleFavoriteKeys(msg)
	}
	return m, nil
}

func (m Model) handleInputKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if msg.Type == tea.KeyEnter {
		return m.search()
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	m.lookup.SetQuery(m.input.Value())
	return m, cmd
}

func (m Model) handleResultKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	entries := m.lookup.State().Entries

	switch msg.String() {
	case "q":
		return m, tea.Quit
	case "?":
		m.showHelp = true
	case "up", "k":
		if m.resultCursor > 0 {
			m.resultCursor--
			m.revealSelection()
		}
	case "down", "j":
		if m.resultCursor < len(entries)-1 {
			m.resultCursor++
			m.revealSelection()
		}
	case "pgup":
		scroll(&m.viewport, -m.viewport.Height/2)
	case "pgdown":
		scroll(&m.viewport, m.viewport.Height/2)
	case "a", "enter":
		return m.addSelected()
	}
	return m, nil
}

func (m Model) handleFavoriteKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "q":
		return m, tea.Quit
	case "?":
		m.showHelp = true
	case "up", "k":
		if m.favoriteCursor > 0 {
			m.favoriteCursor--
			m.revealSelection()
		}
	case "down", "j":
		if m.favoriteCursor < m.favorites.Len()-1 {
			m.favoriteCursor++
			m.revealSelection()
		}
	case "pgup":
		scroll(&m.favViewport, -m.favViewport.Height/2)
	case "pgdown":
		scroll(&m.favViewport, m.favViewport.Height/2)
	case "d", "delete", "x":
		return m.deleteSelected()
	}
	return m, nil
}

func (m Model) setFocus(f Focus) (tea.Model, tea.Cmd) {
	m.focus = f
	m.revealSelection()
	if f == FocusInput {
		return m, m.input.Focus()
	}
	m.input.Blur()
	return m, nil
}

func (m Model) search() (tea.Model, tea.Cmd) {
	m.lookup.SetQuery(m.input.Value())
	ticket, err := m.lookup.Begin()
	if err != nil {
		if !errors.Is(err, lookup.ErrEmptyQuery) {
			m.log.Error(err, "search not started")
		}
		return m, nil
	}

	m.log.WithFields(map[string]any{"term": ticket.Query, "seq": ticket.Seq}).Debug("search issued")
	return m, tea.Batch(m.spinner.Tick, searchCmd(m.ctx, m.lookup, ticket))
}

func (m Model) addSelected() (tea.Model, tea.Cmd) {
	entry, ok := m.lookup.Entry(m.resultCursor)
	if !ok {
		return m, nil
	}

	added, err := m.favorites.Add(m.ctx, entry)
	if err != nil {
		m.errorMsg = fmt.Sprintf("Could not save favorites: %v", err)
		return m, nil
	}
	m.errorMsg = ""
	if !added {
		return m, m.setStatus(fmt.Sprintf("%q is already a favorite", entry.Word))
	}
	return m, m.setStatus(fmt.Sprintf("Added %q to favorites", entry.Word))
}

func (m Model) deleteSelected() (tea.Model, tea.Cmd) {
	list := m.favorites.List()
	if m.favoriteCursor < 0 || m.favoriteCursor >= len(list) {
		return m, nil
	}

	word := list[m.favoriteCursor].Word
	if _, err := m.favorites.RemoveWord(m.ctx, word); err != nil {
		m.errorMsg = fmt.Sprintf("Could not save favorites: %v", err)
		return m, nil
	}
	m.errorMsg = ""
	m.clampCursors()
	m.revealSelection()
	return m, m.setStatus(fmt.Sprintf("Removed %q from favorites", word))
}

func (m Model) toggleTheme() (tea.Model, tea.Cmd) {
	mode, err := m.theme.Toggle()
	if err != nil {
		m.errorMsg = fmt.Sprintf("Could not save theme: %v", err)
		return m, nil
	}
	m.spinner.Style = m.theme.Styles().Spinner
	return m, m.setStatus(fmt.Sprintf("Switched to %s theme", mode.Short()))
}
