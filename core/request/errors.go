package request

import (
	"errors"
	"fmt"
	"strings"
)

// ErrInvalidRequest is the root of every request validation error.
var ErrInvalidRequest = errors.New("invalid request")

// ErrNoItems is returned when the input holds no entries at all.
var ErrNoItems = fmt.Errorf("%w: no valid items entered", ErrInvalidRequest)

// EntryError describes one rejected entry.
type EntryError struct {
	// Position is the 1-based index of the entry in the input.
	Position int    `json:"position"`
	Raw      string `json:"raw"`
	Reason   string `json:"reason"`

	// Suggestions holds near matches for an unknown name, best first. Empty when nothing is close.
	Suggestions []string `json:"suggestions,omitempty"`
}

func (e EntryError) String() string {
	s := fmt.Sprintf("entry %d %q: %s", e.Position, e.Raw, e.Reason)
	if len(e.Suggestions) > 0 {
		s += " (did you mean " + strings.Join(e.Suggestions, ", ") + "?)"
	}
	return s
}

// Error collects every rejected entry of one request.
type Error struct {
	Entries []EntryError `json:"entries"`
}

func (e *Error) Error() string {
	parts := make([]string, len(e.Entries))
	for i, entry := range e.Entries {
		parts[i] = entry.String()
	}
	return "invalid request: " + strings.Join(parts, "; ")
}

func (e *Error) Unwrap() error {
	return ErrInvalidRequest
}
