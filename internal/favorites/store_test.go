package favorites

import (
	"context"
	"encoding/json"
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/alexisbeaulieu97/wordbook/internal/dictionary"
	"github.com/alexisbeaulieu97/wordbook/internal/storage"
	wordbookerrors "github.com/alexisbeaulieu97/wordbook/pkg/errors"
)

func entry(word, definition string) dictionary.WordEntry {
	return dictionary.WordEntry{
		Word:      word,
		Phonetics: []dictionary.Phonetic{},
		Meanings: []dictionary.Meaning{{
			PartOfSpeech: "noun",
			Definitions: []dictionary.Definition{{
				Definition: definition,
				Synonyms:   []string{},
				Antonyms:   []string{},
			}},
		}},
	}
}

func newStore(t *testing.T, backing storage.Store) *Store {
	t.Helper()
	s, err := NewStore(context.Background(), NewStoreRepository(backing), nil)
	require.NoError(t, err)
	return s
}

func persisted(t *testing.T, backing storage.Store) []dictionary.WordEntry {
	t.Helper()
	data, err := backing.Get(StorageKey)
	require.NoError(t, err)
	var entries []dictionary.WordEntry
	require.NoError(t, json.Unmarshal(data, &entries))
	return entries
}

func TestNewStoreStartsEmptyWhenNothingStored(t *testing.T) {
	t.Parallel()

	s := newStore(t, storage.NewMemoryStore())
	assert.Zero(t, s.Len())
	assert.Empty(t, s.List())
}

func TestAddKeepsFirstEntryPerWord(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	backing := storage.NewMemoryStore()
	s := newStore(t, backing)

	added, err := s.Add(ctx, entry("kitten", "A young cat."))
	require.NoError(t, err)
	assert.True(t, added)

	added, err = s.Add(ctx, entry("kitten", "Something else entirely."))
	require.NoError(t, err)
	assert.False(t, added)

	require.Equal(t, 1, s.Len())
	got, ok := s.Get("kitten")
	require.True(t, ok)
	assert.Equal(t, "A young cat.", got.Meanings[0].Definitions[0].Definition)

	assert.Equal(t, 1, backing.Writes(), "a no-op add must not persist")
	assert.Len(t, persisted(t, backing), 1)
}

func TestAddIsCaseSensitive(t *testing.T) {
	t.Parallel()

	s := newStore(t, storage.NewMemoryStore())
	_, err := s.Add(context.Background(), entry("Latino", "a"))
	require.NoError(t, err)
	_, err = s.Add(context.Background(), entry("latino", "b"))
	require.NoError(t, err)

	assert.Equal(t, 2, s.Len())
}

func TestAddStoresIndependentCopy(t *testing.T) {
	t.Parallel()

	s := newStore(t, storage.NewMemoryStore())
	e := entry("kitten", "A young cat.")
	_, err := s.Add(context.Background(), e)
	require.NoError(t, err)

	e.Meanings[0].Definitions[0].Definition = "mutated"
	got, _ := s.Get("kitten")
	assert.Equal(t, "A young cat.", got.Meanings[0].Definitions[0].Definition)
}

func TestRemoveShrinksCollectionAndPersists(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	backing := storage.NewMemoryStore()
	s := newStore(t, backing)

	for _, w := range []string{"kitten", "latino", "puppy"} {
		_, err := s.Add(ctx, entry(w, w))
		require.NoError(t, err)
	}

	removed, err := s.Remove(ctx, entry("latino", "different content"))
	require.NoError(t, err)
	assert.Equal(t, 1, removed)
	assert.Equal(t, 2, s.Len())
	assert.False(t, s.Contains("latino"))

	stored := persisted(t, backing)
	require.Len(t, stored, 2)
	assert.Equal(t, "kitten", stored[0].Word)
	assert.Equal(t, "puppy", stored[1].Word)
}

func TestRemoveMissingWordStillPersists(t *testing.T) {
	t.Parallel()

	backing := storage.NewMemoryStore()
	s := newStore(t, backing)

	removed, err := s.RemoveWord(context.Background(), "ghost")
	require.NoError(t, err)
	assert.Zero(t, removed)
	assert.Equal(t, 1, backing.Writes())
	assert.Empty(t, persisted(t, backing))
}

func TestRestoreReproducesOrderedCollection(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	backing := storage.NewMemoryStore()
	first := newStore(t, backing)

	kitten := entry("kitten", "A young cat.")
	kitten.Phonetics = []dictionary.Phonetic{{Text: "/ˈkɪtən/", Audio: "https://example.com/kitten.mp3"}}
	kitten.Origin = "late Middle English"
	for _, e := range []dictionary.WordEntry{kitten, entry("latino", "b"), entry("apple", "c")} {
		_, err := first.Add(ctx, e)
		require.NoError(t, err)
	}

	second := newStore(t, backing)
	if diff := cmp.Diff(first.List(), second.List()); diff != "" {
		t.Errorf("restored favorites (-want, +got):\n%s", diff)
	}
}

func TestRestoreMalformedValueFails(t *testing.T) {
	t.Parallel()

	backing := storage.NewMemoryStore()
	require.NoError(t, backing.Set(StorageKey, []byte(`{"not":"a list"`)))

	_, err := NewStore(context.Background(), NewStoreRepository(backing), nil)
	require.Error(t, err)

	var parseErr *wordbookerrors.ParseError
	assert.True(t, errors.As(err, &parseErr))
}

func TestRestoreNullValueIsEmpty(t *testing.T) {
	t.Parallel()

	backing := storage.NewMemoryStore()
	require.NoError(t, backing.Set(StorageKey, []byte(`null`)))

	s := newStore(t, backing)
	assert.Zero(t, s.Len())
}

func TestRestoreDropsDuplicateWords(t *testing.T) {
	t.Parallel()

	backing := storage.NewMemoryStore()
	data, err := json.Marshal([]dictionary.WordEntry{entry("a", "1"), entry("a", "2"), entry("b", "3")})
	require.NoError(t, err)
	require.NoError(t, backing.Set(StorageKey, data))

	s := newStore(t, backing)
	list := s.List()
	require.Len(t, list, 2)
	assert.Equal(t, "1", list[0].Meanings[0].Definitions[0].Definition)
}

type failingRepo struct {
	saveErr error
	saved   [][]dictionary.WordEntry
}

func (f *failingRepo) Load(context.Context) ([]dictionary.WordEntry, error) {
	return []dictionary.WordEntry{entry("latino", "b")}, nil
}

func (f *failingRepo) Save(_ context.Context, entries []dictionary.WordEntry) error {
	if f.saveErr != nil {
		return f.saveErr
	}
	f.saved = append(f.saved, entries)
	return nil
}

func (f *failingRepo) Clear(context.Context) error {
	return f.saveErr
}

func TestAddLeavesCollectionUnchangedOnPersistFailure(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	repo := &failingRepo{saveErr: errors.New("disk full")}
	s, err := NewStore(ctx, repo, nil)
	require.NoError(t, err)

	added, err := s.Add(ctx, entry("kitten", "a"))
	require.Error(t, err)
	assert.False(t, added)
	assert.Contains(t, err.Error(), "disk full")
	assert.Equal(t, 1, s.Len())
	assert.False(t, s.Contains("kitten"))

	repo.saveErr = nil
	added, err = s.Add(ctx, entry("kitten", "a"))
	require.NoError(t, err)
	assert.True(t, added)
	require.Len(t, repo.saved, 1)
	require.Len(t, repo.saved[0], 2)
	assert.Equal(t, "kitten", repo.saved[0][1].Word)
}

func TestRemoveWordLeavesCollectionUnchangedOnPersistFailure(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	repo := &failingRepo{saveErr: errors.New("disk full")}
	s, err := NewStore(ctx, repo, nil)
	require.NoError(t, err)

	removed, err := s.RemoveWord(ctx, "latino")
	require.Error(t, err)
	assert.Zero(t, removed)
	assert.True(t, s.Contains("latino"))

	repo.saveErr = nil
	removed, err = s.RemoveWord(ctx, "latino")
	require.NoError(t, err)
	assert.Equal(t, 1, removed)
	assert.Zero(t, s.Len())
	require.Len(t, repo.saved, 1)
	assert.Empty(t, repo.saved[0])
}

func TestClearDeletesStoredCollection(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	backing := storage.NewMemoryStore()
	s := newStore(t, backing)
	_, err := s.Add(ctx, entry("kitten", "a"))
	require.NoError(t, err)
	_, err = s.Add(ctx, entry("latino", "b"))
	require.NoError(t, err)

	cleared, err := s.Clear(ctx)
	require.NoError(t, err)
	assert.Equal(t, 2, cleared)
	assert.Zero(t, s.Len())

	_, err = backing.Get(StorageKey)
	assert.ErrorIs(t, err, storage.ErrNotFound)
	assert.Zero(t, newStore(t, backing).Len())
}

func TestClearKeepsCollectionOnFailure(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	repo := &failingRepo{saveErr: errors.New("read-only")}
	s, err := NewStore(ctx, repo, nil)
	require.NoError(t, err)

	cleared, err := s.Clear(ctx)
	require.Error(t, err)
	assert.Zero(t, cleared)
	assert.True(t, s.Contains("latino"))
}

func TestFileBackedFavoritesSurviveReload(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	backing, err := storage.NewFileStore(dir)
	require.NoError(t, err)

	s := newStore(t, backing)
	_, err = s.Add(context.Background(), entry("kitten", "A young cat."))
	require.NoError(t, err)

	reopened, err := storage.NewFileStore(dir)
	require.NoError(t, err)
	assert.True(t, newStore(t, reopened).Contains("kitten"))
}
