package tui

import (
	"context"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/alexisbeaulieu97/wordbook/internal/lookup"
)

const statusTimeout = 3 * time.Second

// searchCmd fetches the ticket's term off the event loop.
func searchCmd(ctx context.Context, c *lookup.Controller, t lookup.Ticket) tea.Cmd {
	return func() tea.Msg {
		result, err := c.Fetch(ctx, t)
		return SearchResultMsg{Ticket: t, Result: result, Err: err}
	}
}

func clearStatusCmd(seq int) tea.Cmd {
	return tea.Tick(statusTimeout, func(time.Time) tea.Msg {
		return clearStatusMsg{seq: seq}
	})
}
