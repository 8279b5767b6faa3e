// Package storage provides the key/value persistence used for session-scoped
// favorites and the durable theme preference.
package storage

import (
	"errors"
	"fmt"
	"regexp"
)

// ErrNotFound is returned by Get when no value is stored under a key.
var ErrNotFound = errors.New("storage: key not found")

var keyPattern = regexp.MustCompile(`^[a-z0-9_-]+$`)

// Store persists opaque values under short keys.
type Store interface {
	Get(key string) ([]byte, error)
	Set(key string, value []byte) error
	Delete(key string) error
}

// ValidateKey reports whether key can be used with a Store.
func ValidateKey(key string) error {
	if !keyPattern.MatchString(key) {
		return fmt.Errorf("invalid storage key %q: must match %s", key, keyPattern.String())
	}
	return nil
}
