package key

import "fmt"

// Key is a single parsed key: a base Code plus its modifier set.
// It is an immutable value; two Keys are equal exactly when their Code and
// Mods are equal, regardless of how either was spelled in source text.
type Key struct {
	// Code identifies the base key.
	Code Code

	// Mods contains the active modifier keys.
	Mods Modifier
}

// NewKey builds a Key directly from a code and modifier set.
// Most callers should use Parse instead.
func NewKey(code Code, mods Modifier) Key {
	return Key{Code: code, Mods: mods}
}

// Equals returns true if two keys represent the same key press.
func (k Key) Equals(other Key) bool {
	return k == other
}

// WithModifier returns a copy with the specified modifier added.
func (k Key) WithModifier(mod Modifier) Key {
	k.Mods = k.Mods.With(mod)
	return k
}

// Matches checks if this key matches a notation string.
func (k Key) Matches(spec string) bool {
	parsed, err := Parse(spec)
	if err != nil {
		return false
	}
	return k == parsed
}

// String returns the canonical notation for the key. The result parses
// back to an equal Key, and stays unambiguous when concatenated into a
// sequence, so '<' always renders as "<lt>" and space as "<space>".
//
// Examples: "a", "A", "<enter>", "<c-x>", "<c-a-del>"
func (k Key) String() string {
	// Shift on a letter spells as the uppercase letter when it is the
	// only modifier.
	if k.Code.IsLetter() && k.Mods == ModShift {
		return string(rune(k.Code) - ('a' - 'A'))
	}

	if k.Code.IsPrintable() && k.Code != CodeLessThan && k.Mods.IsEmpty() {
		return string(rune(k.Code))
	}

	return "<" + k.Mods.tagPrefix() + k.Code.tagName() + ">"
}

// GoString implements fmt.GoStringer for debugging.
func (k Key) GoString() string {
	return fmt.Sprintf("Key{Code: %s, Mods: %s}", k.Code, k.Mods)
}

// MarshalText encodes the key as its canonical notation.
func (k Key) MarshalText() ([]byte, error) {
	return []byte(k.String()), nil
}

// UnmarshalText parses a key from its notation.
func (k *Key) UnmarshalText(text []byte) error {
	parsed, err := Parse(string(text))
	if err != nil {
		return err
	}
	*k = parsed
	return nil
}
