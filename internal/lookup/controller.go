// Package lookup holds the search state machine: the current query, the last
// applied result, and the validation and not-found states derived from it.
package lookup

import (
	"context"
	"errors"
	"sync"

	"github.com/alexisbeaulieu97/wordbook/internal/dictionary"
	"github.com/alexisbeaulieu97/wordbook/internal/logger"
	"github.com/alexisbeaulieu97/wordbook/internal/query"
)

// ValidationMessage is shown when a search is attempted with no input.
const ValidationMessage = "Please enter a word"

// ErrEmptyQuery is returned by Begin and Search when the query is blank.
var ErrEmptyQuery = errors.New("empty query")

// Fetcher performs the remote lookup for a term.
type Fetcher interface {
	Lookup(ctx context.Context, term string) (dictionary.Result, error)
}

// Ticket identifies one issued search.
type Ticket struct {
	Seq   uint64
	Query string
}

// State is a snapshot of the controller for rendering.
type State struct {
	Query           string
	Entries         []dictionary.WordEntry
	NotFound        *dictionary.ErrorPayload
	ValidationError string
	Pending         bool
}

// Controller owns the query text and the result of the latest search.
type Controller struct {
	mu         sync.Mutex
	fetcher    Fetcher
	log        *logger.Logger
	query      string
	entries    []dictionary.WordEntry
	notFound   *dictionary.ErrorPayload
	validation string
	issued     uint64
	pending    bool
}

// New creates a Controller that fetches through f.
func New(f Fetcher, log *logger.Logger) *Controller {
	if log == nil {
		log = logger.Nop()
	}
	return &Controller{fetcher: f, log: log.Component("lookup")}
}

// SetQuery replaces the current input text.
func (c *Controller) SetQuery(text string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.query = text
}

// Query returns the current input text.
func (c *Controller) Query() string {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.query
}

// Begin validates the query and issues a new ticket. A blank query sets the
// validation message and returns ErrEmptyQuery.
func (c *Controller) Begin() (Ticket, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	term := query.Normalize(c.query)
	if term == "" {
		c.validation = ValidationMessage
		return Ticket{}, ErrEmptyQuery
	}

	c.validation = ""
	c.issued++
	c.pending = true
	return Ticket{Seq: c.issued, Query: term}, nil
}

// Fetch runs the remote lookup for t. It does not touch controller state and
// is safe to call from a background goroutine.
func (c *Controller) Fetch(ctx context.Context, t Ticket) (dictionary.Result, error) {
	return c.fetcher.Lookup(ctx, t.Query)
}

// Resolve applies the outcome of t if t is still the latest issued ticket and
// reports whether it was. Failures are logged and leave the visible state
// untouched.
func (c *Controller) Resolve(t Ticket, result dictionary.Result, err error) bool {
	c.mu.Lock()
	defer c.mu.Unlock()

	log := c.log.WithFields(map[string]any{"seq": t.Seq, "term": t.Query})
	if t.Seq != c.issued {
		log.WithFields(map[string]any{"latest": c.issued}).Debug("discarding stale lookup response")
		return false
	}
	c.pending = false

	if err != nil {
		log.Error(err, "lookup failed")
		return true
	}

	log = log.WithFields(map[string]any{"kind": result.Kind.String(), "status": result.Status})
	switch result.Kind {
	case dictionary.KindWordList:
		c.entries = result.Entries
		c.notFound = nil
	case dictionary.KindNotFound:
		c.entries = nil
		c.notFound = result.NotFound
		log.Info("no definitions found")
	default:
		log.Error(result.Err, "lookup returned an unusable response")
	}
	return true
}

// Search runs Begin, Fetch and Resolve in sequence. Unlike Resolve it also
// returns request and malformed-response errors to the caller.
func (c *Controller) Search(ctx context.Context) error {
	t, err := c.Begin()
	if err != nil {
		return err
	}

	result, err := c.Fetch(ctx, t)
	c.Resolve(t, result, err)
	if err != nil {
		return err
	}
	if result.Kind == dictionary.KindMalformed {
		return result.Err
	}
	return nil
}

// State returns a snapshot of the controller. The validation message is only
// reported while the query is blank.
func (c *Controller) State() State {
	c.mu.Lock()
	defer c.mu.Unlock()

	state := State{
		Query:    c.query,
		NotFound: c.notFound,
		Pending:  c.pending,
	}
	if c.entries != nil {
		state.Entries = make([]dictionary.WordEntry, len(c.entries))
		copy(state.Entries, c.entries)
	}
	if c.validation != "" && query.IsBlank(c.query) {
		state.ValidationError = c.validation
	}
	return state
}

// Entry returns the i-th entry of the current result.
func (c *Controller) Entry(i int) (dictionary.WordEntry, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if i < 0 || i >= len(c.entries) {
		return dictionary.WordEntry{}, false
	}
	return c.entries[i], true
}
