// Package keymap parses key-sequence notation into ordered key sequences.
//
// A keymap string is the left-hand side of a vim binding line: consecutive
// units with no separators, each unit either a bare character or a <...>
// tag. "ZZ", "dd", "<c-b>jj", and "<leader>w" are all keymaps.
package keymap

import (
	"fmt"
	"strings"

	"github.com/TundraClimate/viks/key"
)

// Keymap is an immutable ordered sequence of keys. Order is significant;
// two keymaps are equal when they have the same keys in the same order.
type Keymap struct {
	keys []key.Key
}

// Parse parses key-sequence notation into a Keymap.
//
// The input is consumed left to right in a single pass: a '<' opens a tag
// that runs through the next '>', and any other character is one key.
// The first failing unit aborts the parse; errors wrap the key package
// sentinels and carry the byte offset of the failing unit.
func Parse(s string) (*Keymap, error) {
	if s == "" {
		return nil, key.ErrEmptyInput
	}

	keys := make([]key.Key, 0, 4) // most keymaps are short

	for i := 0; i < len(s); {
		var unit string
		if s[i] == '<' {
			end := strings.IndexByte(s[i:], '>')
			if end == -1 {
				return nil, fmt.Errorf("at offset %d: %w", i, key.ErrUnterminatedTag)
			}
			unit = s[i : i+end+1]
		} else {
			unit = s[i : i+1]
		}

		k, err := key.Parse(unit)
		if err != nil {
			return nil, fmt.Errorf("at offset %d: %w", i, err)
		}
		keys = append(keys, k)
		i += len(unit)
	}

	return &Keymap{keys: keys}, nil
}

// MustParse parses key-sequence notation and panics on error.
// Use only for known-valid notation in initialization code.
func MustParse(s string) *Keymap {
	m, err := Parse(s)
	if err != nil {
		panic("invalid keymap notation: " + s + ": " + err.Error())
	}
	return m
}

// FromKeys builds a Keymap from already-parsed keys.
func FromKeys(keys ...key.Key) *Keymap {
	owned := make([]key.Key, len(keys))
	copy(owned, keys)
	return &Keymap{keys: owned}
}

// Len returns the number of keys in the keymap.
func (m *Keymap) Len() int {
	return len(m.keys)
}

// At returns the key at the given index.
// It returns the zero Key if the index is out of bounds.
func (m *Keymap) At(index int) key.Key {
	if index < 0 || index >= len(m.keys) {
		return key.Key{}
	}
	return m.keys[index]
}

// Keys returns a copy of the keys in order.
func (m *Keymap) Keys() []key.Key {
	out := make([]key.Key, len(m.keys))
	copy(out, m.keys)
	return out
}

// Equal returns true if two keymaps hold the same keys in the same order.
func (m *Keymap) Equal(other *Keymap) bool {
	if m == nil || other == nil {
		return m == other
	}
	if len(m.keys) != len(other.keys) {
		return false
	}
	for i, k := range m.keys {
		if k != other.keys[i] {
			return false
		}
	}
	return true
}

// String returns the canonical notation for the keymap: each key's
// canonical form concatenated in order. The result parses back to an
// equal Keymap.
func (m *Keymap) String() string {
	var sb strings.Builder
	for _, k := range m.keys {
		sb.WriteString(k.String())
	}
	return sb.String()
}

// MarshalText encodes the keymap as its canonical notation.
func (m *Keymap) MarshalText() ([]byte, error) {
	return []byte(m.String()), nil
}

// UnmarshalText parses a keymap from its notation.
func (m *Keymap) UnmarshalText(text []byte) error {
	parsed, err := Parse(string(text))
	if err != nil {
		return err
	}
	*m = *parsed
	return nil
}
