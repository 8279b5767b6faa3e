package favorites

import (
	"context"
	"encoding/json"
	"errors"

	"github.com/alexisbeaulieu97/wordbook/internal/dictionary"
	"github.com/alexisbeaulieu97/wordbook/internal/storage"
	wordbookerrors "github.com/alexisbeaulieu97/wordbook/pkg/errors"
)

// StorageKey is the key favorites are kept under in session storage.
const StorageKey = "favorites"

// Repository loads and saves the whole favorites collection.
type Repository interface {
	Load(ctx context.Context) ([]dictionary.WordEntry, error)
	Save(ctx context.Context, entries []dictionary.WordEntry) error
	Clear(ctx context.Context) error
}

// StoreRepository keeps favorites as a JSON array in a storage.Store.
type StoreRepository struct {
	store storage.Store
	key   string
}

// NewStoreRepository returns a Repository backed by store.
func NewStoreRepository(store storage.Store) *StoreRepository {
	return &StoreRepository{store: store, key: StorageKey}
}

// Load returns the stored collection. An absent value yields an empty
// collection; a value that does not decode yields a ParseError.
func (r *StoreRepository) Load(ctx context.Context) ([]dictionary.WordEntry, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	data, err := r.store.Get(r.key)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return []dictionary.WordEntry{}, nil
		}
		return nil, wordbookerrors.NewStorageError(r.key, err)
	}

	var entries []dictionary.WordEntry
	if err := json.Unmarshal(data, &entries); err != nil {
		return nil, wordbookerrors.NewParseError(r.key, 0, err)
	}
	if entries == nil {
		entries = []dictionary.WordEntry{}
	}
	return entries, nil
}

// Save overwrites the stored collection.
func (r *StoreRepository) Save(ctx context.Context, entries []dictionary.WordEntry) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if entries == nil {
		entries = []dictionary.WordEntry{}
	}

	data, err := json.Marshal(entries)
	if err != nil {
		return wordbookerrors.NewStorageError(r.key, err)
	}
	if err := r.store.Set(r.key, data); err != nil {
		return wordbookerrors.NewStorageError(r.key, err)
	}
	return nil
}

// Clear deletes the stored collection; a later Load yields an empty one.
func (r *StoreRepository) Clear(ctx context.Context) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if err := r.store.Delete(r.key); err != nil {
		return wordbookerrors.NewStorageError(r.key, err)
	}
	return nil
}
