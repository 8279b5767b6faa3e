// Package tui is the interactive terminal view: a search box, the result
// blocks of the latest lookup, and the favorites pane.
package tui

import (
	"context"

	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/alexisbeaulieu97/wordbook/internal/favorites"
	"github.com/alexisbeaulieu97/wordbook/internal/logger"
	"github.com/alexisbeaulieu97/wordbook/internal/lookup"
	"github.com/alexisbeaulieu97/wordbook/internal/theme"
)

const (
	defaultWidth  = 80
	defaultHeight = 24
	// chromeHeight is the space taken by the header, input, status lines,
	// pane borders and footer.
	chromeHeight = 10
	// splitWidth is the narrowest terminal that shows both panes side by side.
	splitWidth = 100
)

// Options wires the model to its state owners.
type Options struct {
	Context   context.Context
	Lookup    *lookup.Controller
	Favorites *favorites.Store
	Theme     *theme.Manager
	Logger    *logger.Logger
}

// Model is the Bubble Tea model for the wordbook TUI.
type Model struct {
	ctx       context.Context
	lookup    *lookup.Controller
	favorites *favorites.Store
	theme     *theme.Manager
	log       *logger.Logger

	input       textinput.Model
	spinner     spinner.Model
	viewport    viewport.Model
	favViewport viewport.Model

	focus          Focus
	resultCursor   int
	favoriteCursor int
	showHelp       bool

	status    string
	statusSeq int
	errorMsg  string

	width  int
	height int
}

// NewModel builds the initial model with the search box focused.
func NewModel(opts Options) Model {
	ctx := opts.Context
	if ctx == nil {
		ctx = context.Background()
	}
	log := opts.Logger
	if log == nil {
		log = logger.Nop()
	}

	styles := opts.Theme.Styles()

	input := textinput.New()
	input.Placeholder = "Type a word and press enter"
	input.Prompt = "Search: "
	input.CharLimit = 64
	input.SetValue(opts.Lookup.Query())
	input.Focus()

	s := spinner.New()
	s.Spinner = spinner.Dot
	s.Style = styles.Spinner

	m := Model{
		ctx:         ctx,
		lookup:      opts.Lookup,
		favorites:   opts.Favorites,
		theme:       opts.Theme,
		log:         log.Component("tui"),
		input:       input,
		spinner:     s,
		viewport:    viewport.New(defaultWidth, defaultHeight),
		favViewport: viewport.New(defaultWidth, defaultHeight),
		focus:       FocusInput,
		width:       defaultWidth,
		height:      defaultHeight,
	}
	m.resize()
	m.syncPanes()
	return m
}

// Init initializes the model and returns initial commands
func (m Model) Init() tea.Cmd {
	return textinput.Blink
}

// Focus returns the pane that currently receives keys.
func (m Model) Focus() Focus {
	return m.focus
}

// Run starts the program and blocks until the user quits.
func Run(opts Options, programOpts ...tea.ProgramOption) error {
	m := NewModel(opts)
	_, err := tea.NewProgram(m, programOpts...).Run()
	return err
}

func (m *Model) resize() {
	resultsWidth, favoritesWidth := m.paneWidths()
	m.input.Width = max(m.width-len(m.input.Prompt)-4, 10)
	m.viewport.Width = max(resultsWidth-4, 10)
	m.favViewport.Width = max(favoritesWidth-4, 10)

	body := max(m.height-chromeHeight, 8)
	if m.width >= splitWidth {
		m.viewport.Height = body
		m.favViewport.Height = body
		return
	}
	// Stacked panes share the body; the second border takes two more lines.
	m.viewport.Height = max(body*2/3, 5)
	m.favViewport.Height = max(body-m.viewport.Height-2, 3)
}

// paneWidths splits the terminal between results and favorites.
func (m Model) paneWidths() (int, int) {
	if m.width < splitWidth {
		return m.width, m.width
	}
	favoritesWidth := m.width / 3
	return m.width - favoritesWidth, favoritesWidth
}

func (m *Model) clampCursors() {
	results := len(m.lookup.State().Entries)
	if m.resultCursor >= results {
		m.resultCursor = max(results-1, 0)
	}
	favs := m.favorites.Len()
	if m.favoriteCursor >= favs {
		m.favoriteCursor = max(favs-1, 0)
	}
}

func (m *Model) setStatus(text string) tea.Cmd {
	m.statusSeq++
	m.status = text
	return clearStatusCmd(m.statusSeq)
}
