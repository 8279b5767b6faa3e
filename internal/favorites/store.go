// Package favorites keeps the user's saved words: an insertion-ordered
// collection with at most one entry per word, persisted on every change.
package favorites

import (
	"context"
	"fmt"
	"sync"

	"github.com/alexisbeaulieu97/wordbook/internal/dictionary"
	"github.com/alexisbeaulieu97/wordbook/internal/logger"
)

// Store is the in-memory favorites collection backed by a Repository.
type Store struct {
	mu      sync.RWMutex
	repo    Repository
	log     *logger.Logger
	entries []dictionary.WordEntry
}

// NewStore restores the collection from repo. A restore failure is returned
// unchanged so startup can abort on it.
func NewStore(ctx context.Context, repo Repository, log *logger.Logger) (*Store, error) {
	if log == nil {
		log = logger.Nop()
	}

	entries, err := repo.Load(ctx)
	if err != nil {
		return nil, fmt.Errorf("restore favorites: %w", err)
	}

	s := &Store{
		repo:    repo,
		log:     log.Component("favorites"),
		entries: dedupe(entries),
	}
	s.log.WithFields(map[string]any{"count": len(s.entries)}).Debug("favorites restored")
	return s, nil
}

// Add appends a copy of entry unless an entry with the same word is already
// saved. It reports whether the collection changed; only a change is persisted,
// and a failed save leaves the collection untouched.
func (s *Store) Add(ctx context.Context, entry dictionary.WordEntry) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.indexOf(entry.Word) >= 0 {
		return false, nil
	}

	next := make([]dictionary.WordEntry, len(s.entries), len(s.entries)+1)
	copy(next, s.entries)
	next = append(next, entry.Clone())
	if err := s.persist(ctx, next); err != nil {
		return false, err
	}
	s.entries = next
	s.log.WithFields(map[string]any{"word": entry.Word}).Info("favorite added")
	return true, nil
}

// Remove drops every entry whose word matches entry.
func (s *Store) Remove(ctx context.Context, entry dictionary.WordEntry) (int, error) {
	return s.RemoveWord(ctx, entry.Word)
}

// RemoveWord drops every entry saved under word and persists the collection,
// returning how many entries were removed.
func (s *Store) RemoveWord(ctx context.Context, word string) (int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	kept := make([]dictionary.WordEntry, 0, len(s.entries))
	for _, e := range s.entries {
		if e.Word != word {
			kept = append(kept, e)
		}
	}
	removed := len(s.entries) - len(kept)

	if err := s.persist(ctx, kept); err != nil {
		return 0, err
	}
	s.entries = kept
	s.log.WithFields(map[string]any{"word": word, "removed": removed}).Info("favorite removed")
	return removed, nil
}

// Clear drops every favorite and deletes the stored collection, returning how
// many entries were dropped.
func (s *Store) Clear(ctx context.Context) (int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.repo.Clear(ctx); err != nil {
		s.log.Error(err, "failed to clear favorites")
		return 0, fmt.Errorf("clear favorites: %w", err)
	}
	cleared := len(s.entries)
	s.entries = []dictionary.WordEntry{}
	s.log.WithFields(map[string]any{"removed": cleared}).Info("favorites cleared")
	return cleared, nil
}

// List returns a copy of the collection in insertion order.
func (s *Store) List() []dictionary.WordEntry {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]dictionary.WordEntry, len(s.entries))
	copy(out, s.entries)
	return out
}

// Get returns the saved entry for word.
func (s *Store) Get(word string) (dictionary.WordEntry, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if i := s.indexOf(word); i >= 0 {
		return s.entries[i], true
	}
	return dictionary.WordEntry{}, false
}

// Contains reports whether word is saved.
func (s *Store) Contains(word string) bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.indexOf(word) >= 0
}

// Len returns the number of saved entries.
func (s *Store) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.entries)
}

func (s *Store) indexOf(word string) int {
	for i, e := range s.entries {
		if e.Word == word {
			return i
		}
	}
	return -1
}

// persist saves next; callers swap it in only after a successful save.
func (s *Store) persist(ctx context.Context, next []dictionary.WordEntry) error {
	if err := s.repo.Save(ctx, next); err != nil {
		s.log.Error(err, "failed to persist favorites")
		return fmt.Errorf("persist favorites: %w", err)
	}
	return nil
}

// dedupe keeps the first entry per word, preserving order.
func dedupe(entries []dictionary.WordEntry) []dictionary.WordEntry {
	seen := make(map[string]struct{}, len(entries))
	out := make([]dictionary.WordEntry, 0, len(entries))
	for _, e := range entries {
		if _, ok := seen[e.Word]; ok {
			continue
		}
		seen[e.Word] = struct{}{}
		out = append(out, e)
	}
	return out
}
