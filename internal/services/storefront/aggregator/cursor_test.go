package aggregator

import (
	"encoding/base64"
	"errors"
	"strings"
	"testing"
)

func TestCursorEncodeDecode(t *testing.T) {
	t.Parallel()

	cursor := Cursor{
		States: map[string]SourceState{
			"burjmall": {CurrentPage: 2, LastPage: 5, TotalProducts: 48, HasMore: true},
			"coffeepl": {CurrentPage: 1, LastPage: 1, TotalProducts: 7},
		},
		Shown: 27,
	}
	encoded := cursor.Encode()
	if strings.ContainsAny(encoded, "+/=") {
		t.Fatalf("Encode() = %q, want URL-safe unpadded value", encoded)
	}
	decoded, err := DecodeCursor(encoded)
	if err != nil {
		t.Fatalf("DecodeCursor() error = %v", err)
	}
	if decoded.Shown != 27 || len(decoded.States) != 2 || decoded.States["burjmall"] != cursor.States["burjmall"] {
		t.Fatalf("DecodeCursor() = %+v", decoded)
	}
	if !decoded.HasMore() || decoded.TotalProducts() != 55 {
		t.Fatalf("HasMore() = %v, TotalProducts() = %d", decoded.HasMore(), decoded.TotalProducts())
	}
}

func TestZeroCursorEncodesEmpty(t *testing.T) {
	t.Parallel()

	if got := (Cursor{}).Encode(); got != "" {
		t.Fatalf("Encode() = %q, want empty", got)
	}
	c, err := DecodeCursor("")
	if err != nil || len(c.States) != 0 || c.Shown != 0 {
		t.Fatalf("DecodeCursor(\"\") = %+v, %v", c, err)
	}
}

func TestDecodeCursorRejectsGarbage(t *testing.T) {
	t.Parallel()

	encode := func(s string) string { return base64.RawURLEncoding.EncodeToString([]byte(s)) }
	tests := map[string]string{
		"not base64":     "***",
		"not json":       encode("hello"),
		"negative page":  encode(`{"s":{"a":{"p":-1,"l":2,"t":3,"m":true}}}`),
		"empty name":     encode(`{"s":{"":{"p":1,"l":2,"t":3}}}`),
		"negative shown": encode(`{"n":-4}`),
		"too long":       strings.Repeat("a", maxCursorLength+1),
	}
	for name, raw := range tests {
		if _, err := DecodeCursor(raw); !errors.Is(err, ErrInvalidCursor) {
			t.Fatalf("%s: DecodeCursor() error = %v, want ErrInvalidCursor", name, err)
		}
	}
}

func TestDecodeCursorAcceptsPageZero(t *testing.T) {
	t.Parallel()

	raw := base64.RawURLEncoding.EncodeToString([]byte(`{"s":{"a":{"p":0,"l":0,"t":0}}}`))
	c, err := DecodeCursor(raw)
	if err != nil {
		t.Fatalf("DecodeCursor() error = %v", err)
	}
	if state, ok := c.State("a"); !ok || state.CurrentPage != 0 || state.HasMore {
		t.Fatalf("State(a) = %+v, %v", state, ok)
	}
}

func TestWithShownCopiesStates(t *testing.T) {
	t.Parallel()

	original := Cursor{States: map[string]SourceState{"a": {CurrentPage: 1, LastPage: 2, HasMore: true}}}
	next := original.WithShown(10)
	next.States["a"] = SourceState{CurrentPage: 2, LastPage: 2}
	if original.States["a"].CurrentPage != 1 {
		t.Fatal("WithShown() shares state map with original")
	}
	if next.Shown != 10 || original.Shown != 0 {
		t.Fatalf("Shown = %d/%d", next.Shown, original.Shown)
	}
}
