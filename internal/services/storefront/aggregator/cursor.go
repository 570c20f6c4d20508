package aggregator

import (
	"encoding/base64"
	"encoding/json"
	"errors"
	"fmt"
)

// maxCursorLength bounds the encoded cursor accepted from a request.
const maxCursorLength = 4096

// ErrInvalidCursor reports a cursor that cannot be decoded.
var ErrInvalidCursor = errors.New("invalid feed cursor")

// SourceState is the pagination progress of one catalog source.
type SourceState struct {
	CurrentPage   int  `json:"p"`
	LastPage      int  `json:"l"`
	TotalProducts int  `json:"t"`
	HasMore       bool `json:"m"`
}

// Cursor is the feed position handed to browsers between loads. Sources
// absent from States have not produced any products yet.
type Cursor struct {
	States map[string]SourceState `json:"s,omitempty"`
	Shown  int                    `json:"n,omitempty"`
}

// State returns the progress of source and whether it has been seen.
func (c Cursor) State(source string) (SourceState, bool) {
	state, ok := c.States[source]
	return state, ok
}

// HasMore reports whether any seen source has pages left.
func (c Cursor) HasMore() bool {
	for _, state := range c.States {
		if state.HasMore {
			return true
		}
	}
	return false
}

// TotalProducts sums the totals reported by the seen sources.
func (c Cursor) TotalProducts() int {
	total := 0
	for _, state := range c.States {
		total += state.TotalProducts
	}
	return total
}

// WithShown returns a copy of c with the shown counter set.
func (c Cursor) WithShown(shown int) Cursor {
	next := c.clone()
	if shown < 0 {
		shown = 0
	}
	next.Shown = shown
	return next
}

func (c Cursor) clone() Cursor {
	next := Cursor{Shown: c.Shown}
	if len(c.States) > 0 {
		next.States = make(map[string]SourceState, len(c.States))
		for name, state := range c.States {
			next.States[name] = state
		}
	}
	return next
}

// Encode serializes c for a URL query value. The zero cursor encodes as "".
func (c Cursor) Encode() string {
	if len(c.States) == 0 && c.Shown == 0 {
		return ""
	}
	data, err := json.Marshal(c)
	if err != nil {
		return ""
	}
	return base64.RawURLEncoding.EncodeToString(data)
}

// DecodeCursor parses an encoded cursor. An empty value is the initial cursor.
func DecodeCursor(raw string) (Cursor, error) {
	if raw == "" {
		return Cursor{}, nil
	}
	if len(raw) > maxCursorLength {
		return Cursor{}, fmt.Errorf("%w: too long", ErrInvalidCursor)
	}
	data, err := base64.RawURLEncoding.DecodeString(raw)
	if err != nil {
		return Cursor{}, fmt.Errorf("%w: %v", ErrInvalidCursor, err)
	}
	var c Cursor
	if err := json.Unmarshal(data, &c); err != nil {
		return Cursor{}, fmt.Errorf("%w: %v", ErrInvalidCursor, err)
	}
	if c.Shown < 0 {
		return Cursor{}, fmt.Errorf("%w: negative shown count", ErrInvalidCursor)
	}
	// Sources that answer without pagination are stored at page 0.
	for name, state := range c.States {
		if name == "" || state.CurrentPage < 0 || state.LastPage < 0 || state.TotalProducts < 0 {
			return Cursor{}, fmt.Errorf("%w: bad state for source %q", ErrInvalidCursor, name)
		}
	}
	return c, nil
}
