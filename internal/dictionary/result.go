package dictionary

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
)

// Kind tags the shape of a classified service reply.
type Kind int

const (
	// KindWordList is a non-empty list of entries.
	KindWordList Kind = iota + 1
	// KindNotFound is the service's structured "no definitions" reply.
	KindNotFound
	// KindMalformed is a success status whose body could not be validated.
	KindMalformed
)

func (k Kind) String() string {
	switch k {
	case KindWordList:
		return "word-list"
	case KindNotFound:
		return "not-found"
	case KindMalformed:
		return "malformed"
	default:
		return "unknown"
	}
}

// Result is a validated service reply.
type Result struct {
	Kind     Kind
	Status   int
	Entries  []WordEntry
	NotFound *ErrorPayload
	Raw      []byte
	Err      error
}

// ErrMalformed marks replies whose body did not match either known shape.
var ErrMalformed = errors.New("malformed dictionary response")

// StatusError reports an HTTP status that is neither success nor not-found.
type StatusError struct {
	Status int
	Body   string
}

func (e *StatusError) Error() string {
	if e == nil {
		return ""
	}
	if e.Body == "" {
		return fmt.Sprintf("unexpected status %d", e.Status)
	}
	return fmt.Sprintf("unexpected status %d: %s", e.Status, e.Body)
}

// DefaultNotFound is used when a 404 reply carries no usable payload.
func DefaultNotFound() ErrorPayload {
	return ErrorPayload{
		Title:      "No Definitions Found",
		Message:    "Sorry pal, we couldn't find definitions for the word you were looking for.",
		Resolution: "You can try the search again at later time or head to the web instead.",
	}
}

// Classify branches on status first and then validates the body into a
// Result. Only statuses other than 200 and 404 produce an error.
func Classify(status int, body []byte) (Result, error) {
	result := Result{Status: status, Raw: body}
	trimmed := bytes.TrimSpace(body)

	switch status {
	case http.StatusOK:
		return classifySuccess(result, trimmed), nil
	case http.StatusNotFound:
		payload, ok := decodeErrorPayload(trimmed)
		if !ok {
			payload = DefaultNotFound()
		}
		result.Kind = KindNotFound
		result.NotFound = &payload
		return result, nil
	default:
		return result, &StatusError{Status: status, Body: snippet(trimmed)}
	}
}

func classifySuccess(result Result, body []byte) Result {
	if len(body) == 0 {
		return malformed(result, fmt.Errorf("%w: empty body", ErrMalformed))
	}

	switch body[0] {
	case '[':
		var entries []WordEntry
		if err := json.Unmarshal(body, &entries); err != nil {
			return malformed(result, fmt.Errorf("%w: %v", ErrMalformed, err))
		}
		if len(entries) == 0 {
			payload := DefaultNotFound()
			result.Kind = KindNotFound
			result.NotFound = &payload
			return result
		}
		for i := range entries {
			if entries[i].Word == "" {
				return malformed(result, fmt.Errorf("%w: entry %d has no word", ErrMalformed, i))
			}
			entries[i].sanitize()
		}
		result.Kind = KindWordList
		result.Entries = entries
		return result
	case '{':
		payload, ok := decodeErrorPayload(body)
		if !ok {
			return malformed(result, fmt.Errorf("%w: object without title or message", ErrMalformed))
		}
		result.Kind = KindNotFound
		result.NotFound = &payload
		return result
	default:
		return malformed(result, fmt.Errorf("%w: unexpected body %q", ErrMalformed, snippet(body)))
	}
}

func decodeErrorPayload(body []byte) (ErrorPayload, bool) {
	var payload ErrorPayload
	if len(body) == 0 || body[0] != '{' {
		return payload, false
	}
	if err := json.Unmarshal(body, &payload); err != nil {
		return payload, false
	}
	if payload.Title == "" && payload.Message == "" {
		return payload, false
	}
	return payload, true
}

func malformed(result Result, err error) Result {
	result.Kind = KindMalformed
	result.Err = err
	return result
}

func snippet(body []byte) string {
	const limit = 120
	if len(body) <= limit {
		return string(body)
	}
	return string(body[:limit]) + "..."
}
