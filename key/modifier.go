package key

import "strings"

// Modifier represents keyboard modifier keys.
type Modifier uint8

const (
	// ModNone indicates no modifiers.
	ModNone Modifier = 0

	// ModShift indicates the Shift key.
	ModShift Modifier = 1 << iota

	// ModCtrl indicates the Control key.
	ModCtrl

	// ModAlt indicates the Alt key.
	ModAlt
)

// Has returns true if m contains the specified modifier.
func (m Modifier) Has(mod Modifier) bool {
	return m&mod != 0
}

// HasShift returns true if Shift is set.
func (m Modifier) HasShift() bool {
	return m.Has(ModShift)
}

// HasCtrl returns true if Control is set.
func (m Modifier) HasCtrl() bool {
	return m.Has(ModCtrl)
}

// HasAlt returns true if Alt is set.
func (m Modifier) HasAlt() bool {
	return m.Has(ModAlt)
}

// With returns a new Modifier with the specified modifier added.
func (m Modifier) With(mod Modifier) Modifier {
	return m | mod
}

// Without returns a new Modifier with the specified modifier removed.
func (m Modifier) Without(mod Modifier) Modifier {
	return m &^ mod
}

// IsEmpty returns true if no modifiers are set.
func (m Modifier) IsEmpty() bool {
	return m == ModNone
}

// String returns a human-readable representation like "Ctrl+Shift".
func (m Modifier) String() string {
	if m == ModNone {
		return ""
	}

	var parts []string
	if m.HasCtrl() {
		parts = append(parts, "Ctrl")
	}
	if m.HasAlt() {
		parts = append(parts, "Alt")
	}
	if m.HasShift() {
		parts = append(parts, "Shift")
	}
	return strings.Join(parts, "+")
}

// tagPrefix returns the modifier prefix portion of a tag, like "c-a-s-".
func (m Modifier) tagPrefix() string {
	var sb strings.Builder
	if m.HasCtrl() {
		sb.WriteString("c-")
	}
	if m.HasAlt() {
		sb.WriteString("a-")
	}
	if m.HasShift() {
		sb.WriteString("s-")
	}
	return sb.String()
}

// modifierFromChar resolves a tag modifier letter (case-insensitive).
// Returns ModNone and false for anything other than s, a, or c.
func modifierFromChar(ch byte) (Modifier, bool) {
	switch ch {
	case 's', 'S':
		return ModShift, true
	case 'a', 'A':
		return ModAlt, true
	case 'c', 'C':
		return ModCtrl, true
	}
	return ModNone, false
}
