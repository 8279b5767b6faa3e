// Package theme holds the light/dark display preference and the style set
// each mode renders with.
package theme

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"sync"

	"github.com/alexisbeaulieu97/wordbook/internal/logger"
	"github.com/alexisbeaulieu97/wordbook/internal/storage"
	wordbookerrors "github.com/alexisbeaulieu97/wordbook/pkg/errors"
)

// StorageKey is the key the mode is kept under in durable storage.
const StorageKey = "theme"

// Mode is the persisted theme identifier.
type Mode string

const (
	Light Mode = "theme-light"
	Dark  Mode = "theme-dark"
)

// Toggle returns the opposite mode. Anything that is not Dark becomes Dark.
func (m Mode) Toggle() Mode {
	if m == Dark {
		return Light
	}
	return Dark
}

// Short returns "light" or "dark".
func (m Mode) Short() string {
	return strings.TrimPrefix(string(m), "theme-")
}

// ParseMode accepts either the stored form or its short name.
func ParseMode(s string) (Mode, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case string(Light), "light":
		return Light, nil
	case string(Dark), "dark":
		return Dark, nil
	default:
		return "", wordbookerrors.NewValidationError("theme", fmt.Sprintf("unknown theme %q (want light or dark)", s), nil)
	}
}

// Manager reads and writes the mode in durable storage.
type Manager struct {
	mu    sync.RWMutex
	store storage.Store
	log   *logger.Logger
	mode  Mode
}

// NewManager loads the stored mode. A missing or unrecognised value falls
// back to Light.
func NewManager(store storage.Store, log *logger.Logger) (*Manager, error) {
	if log == nil {
		log = logger.Nop()
	}
	m := &Manager{store: store, log: log.Component("theme"), mode: Light}

	data, err := store.Get(StorageKey)
	switch {
	case errors.Is(err, storage.ErrNotFound):
		return m, nil
	case err != nil:
		return nil, wordbookerrors.NewStorageError(StorageKey, err)
	}

	var stored string
	if err := json.Unmarshal(data, &stored); err != nil {
		m.log.Warn("ignoring unreadable theme value")
		return m, nil
	}
	if mode, err := ParseMode(stored); err == nil {
		m.mode = mode
	}
	return m, nil
}

// Mode returns the active mode.
func (m *Manager) Mode() Mode {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.mode
}

// Styles returns the style set for the active mode.
func (m *Manager) Styles() Styles {
	return StylesFor(m.Mode())
}

// Toggle flips the mode, persists it and returns the new mode.
func (m *Manager) Toggle() (Mode, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	next := m.mode.Toggle()
	if err := m.save(next); err != nil {
		return m.mode, err
	}
	m.mode = next
	return next, nil
}

// Set persists mode as the active mode.
func (m *Manager) Set(mode Mode) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if err := m.save(mode); err != nil {
		return err
	}
	m.mode = mode
	return nil
}

func (m *Manager) save(mode Mode) error {
	data, err := json.Marshal(string(mode))
	if err != nil {
		return wordbookerrors.NewStorageError(StorageKey, err)
	}
	if err := m.store.Set(StorageKey, data); err != nil {
		m.log.Error(err, "failed to persist theme")
		return wordbookerrors.NewStorageError(StorageKey, err)
	}
	m.log.WithFields(map[string]any{"mode": string(mode)}).Info("theme changed")
	return nil
}
