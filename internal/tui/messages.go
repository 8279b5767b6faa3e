package tui

import (
	"github.com/alexisbeaulieu97/wordbook/internal/dictionary"
	"github.com/alexisbeaulieu97/wordbook/internal/lookup"
)

// Focus identifies which pane receives key presses.
type Focus int

const (
	FocusInput Focus = iota
	FocusResults
	FocusFavorites
)

func (f Focus) next() Focus {
	return (f + 1) % 3
}

func (f Focus) prev() Focus {
	return (f + 2) % 3
}

// SearchResultMsg carries the outcome of one issued search.
type SearchResultMsg struct {
	Ticket lookup.Ticket
	Result dictionary.Result
	Err    error
}

// clearStatusMsg dismisses the flash line if it still belongs to seq.
type clearStatusMsg struct {
	seq int
}
