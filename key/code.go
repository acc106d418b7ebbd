package key

import "fmt"

// Code identifies a base key. Printable characters use their ASCII value,
// so a Code is one of the named constants below or a printable byte in the
// range '!' to '~'. Letter codes are always the lowercase letter; an
// uppercase spelling parses to the lowercase Code plus ModShift.
type Code uint8

const (
	// CodeNone represents no key.
	CodeNone Code = 0

	// CodeBackspace is the Backspace key ("<bs>").
	CodeBackspace Code = 8

	// CodeTab is the Tab key ("<tab>").
	CodeTab Code = 9

	// CodeEnter is the Enter key ("<enter>" or "<cr>").
	CodeEnter Code = 13

	// CodeEsc is the Escape key ("<esc>").
	CodeEsc Code = 27

	// CodeSpace is the space bar ("<space>" or "<leader>").
	CodeSpace Code = 32

	// CodeLessThan is the '<' character. It has its own tag ("<lt>")
	// because a bare '<' opens tag syntax inside a sequence.
	CodeLessThan Code = '<'

	// CodeDelete is the Delete key ("<del>").
	CodeDelete Code = 127
)

// IsPrintable returns true if the code is a printable character key.
func (c Code) IsPrintable() bool {
	return c >= '!' && c <= '~'
}

// IsLetter returns true if the code is a letter key.
// Letter codes are always lowercase.
func (c Code) IsLetter() bool {
	return c >= 'a' && c <= 'z'
}

// IsSpecial returns true if this is a special (non-character) key.
func (c Code) IsSpecial() bool {
	return c != CodeNone && !c.IsPrintable()
}

// Rune returns the character for printable codes and space.
// It returns 0 for other special keys.
func (c Code) Rune() rune {
	if c.IsPrintable() || c == CodeSpace {
		return rune(c)
	}
	return 0
}

// String returns a human-readable name for the code.
func (c Code) String() string {
	switch c {
	case CodeNone:
		return "None"
	case CodeBackspace:
		return "Backspace"
	case CodeTab:
		return "Tab"
	case CodeEnter:
		return "Enter"
	case CodeEsc:
		return "Esc"
	case CodeSpace:
		return "Space"
	case CodeDelete:
		return "Delete"
	}
	if c.IsPrintable() {
		return string(rune(c))
	}
	return fmt.Sprintf("Code(%d)", uint8(c))
}

// codeNameMap maps special-key tag names (lowercase) to Code values.
var codeNameMap = map[string]Code{
	"enter":  CodeEnter,
	"cr":     CodeEnter,
	"tab":    CodeTab,
	"esc":    CodeEsc,
	"space":  CodeSpace,
	"leader": CodeSpace,
	"bs":     CodeBackspace,
	"del":    CodeDelete,
	"lt":     CodeLessThan,
}

// tagName returns the canonical tag spelling of the code's base, without
// modifiers or delimiters. Printable codes other than '<' spell themselves.
func (c Code) tagName() string {
	switch c {
	case CodeEnter:
		return "enter"
	case CodeTab:
		return "tab"
	case CodeEsc:
		return "esc"
	case CodeSpace:
		return "space"
	case CodeBackspace:
		return "bs"
	case CodeDelete:
		return "del"
	case CodeLessThan:
		return "lt"
	}
	return string(rune(c))
}

// codeFromChar resolves a bare character to its Code. Uppercase letters
// fold to the lowercase Code plus Shift. The second return is false for
// characters outside the supported set.
func codeFromChar(ch byte) (Code, Modifier, bool) {
	if ch >= 'A' && ch <= 'Z' {
		return Code(ch + ('a' - 'A')), ModShift, true
	}
	if ch >= '!' && ch <= '~' {
		return Code(ch), ModNone, true
	}
	return CodeNone, ModNone, false
}
