package errors

import (
	"fmt"
)

// ParseError represents a decoding failure for a config file or a stored
// value. Line is only known for YAML sources.
type ParseError struct {
	Path    string
	Line    int
	Message string
	Err     error
}

// NewParseError constructs a ParseError.
func NewParseError(path string, line int, err error) error {
	message := ""
	if err != nil {
		message = err.Error()
	}
	return &ParseError{Path: path, Line: line, Message: message, Err: err}
}

func (e *ParseError) Error() string {
	if e == nil {
		return ""
	}

	if e.Line > 0 {
		return fmt.Sprintf("parse error: %s:%d: %s", e.Path, e.Line, e.Message)
	}
	return fmt.Sprintf("parse error: %s: %s", e.Path, e.Message)
}

// Unwrap exposes the underlying error.
func (e *ParseError) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.Err
}

// ValidationError captures configuration validation issues.
type ValidationError struct {
	Field   string
	Message string
	Err     error
}

// NewValidationError constructs a ValidationError.
func NewValidationError(field, message string, err error) error {
	return &ValidationError{Field: field, Message: message, Err: err}
}

func (e *ValidationError) Error() string {
	if e == nil {
		return ""
	}
	if e.Field != "" {
		return fmt.Sprintf("validation error: %s: %s", e.Field, e.Message)
	}
	return fmt.Sprintf("validation error: %s", e.Message)
}

// Unwrap exposes the underlying error.
func (e *ValidationError) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.Err
}

// LookupError reports a failed dictionary request for a term.
type LookupError struct {
	Term string
	Err  error
}

// NewLookupError constructs a LookupError.
func NewLookupError(term string, err error) error {
	return &LookupError{Term: term, Err: err}
}

func (e *LookupError) Error() string {
	if e == nil {
		return ""
	}
	if e.Term != "" {
		return fmt.Sprintf("lookup error for %q: %v", e.Term, e.Err)
	}
	return fmt.Sprintf("lookup error: %v", e.Err)
}

// Unwrap exposes the root error.
func (e *LookupError) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.Err
}

// StorageError indicates a persistence failure for a storage key.
type StorageError struct {
	Key     string
	Message string
	Err     error
}

// NewStorageError constructs a StorageError for the given key.
func NewStorageError(key string, err error) error {
	message := ""
	if err != nil {
		message = err.Error()
	}
	return &StorageError{Key: key, Message: message, Err: err}
}

func (e *StorageError) Error() string {
	if e == nil {
		return ""
	}
	if e.Key != "" {
		return fmt.Sprintf("storage error [%s]: %s", e.Key, e.Message)
	}
	return fmt.Sprintf("storage error: %s", e.Message)
}

// Unwrap exposes the underlying error.
func (e *StorageError) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.Err
}
