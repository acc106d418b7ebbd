package key

import (
	"errors"
	"fmt"
	"strings"
)

// Parse errors
var (
	ErrEmptyInput        = errors.New("empty key notation")
	ErrUnterminatedTag   = errors.New("unterminated key tag")
	ErrUnrecognizedToken = errors.New("unrecognized key token")
)

// Parse parses one unit of key notation into a Key.
//
// The input is either a single character ("a", "A", "1", "@") or a
// complete <...> tag ("<enter>", "<c-x>", "<c-a-del>"). A lone "<" is the
// less-than character itself; any longer input starting with '<' must be a
// closed tag. Modifier prefixes s-, a-, c- stack in any order and tag
// contents are matched case-insensitively.
//
// Errors wrap ErrEmptyInput, ErrUnterminatedTag, or ErrUnrecognizedToken
// and can be classified with errors.Is.
func Parse(spec string) (Key, error) {
	if spec == "" {
		return Key{}, ErrEmptyInput
	}

	if len(spec) == 1 {
		code, mods, ok := codeFromChar(spec[0])
		if !ok {
			return Key{}, fmt.Errorf("%w: %q", ErrUnrecognizedToken, spec)
		}
		return Key{Code: code, Mods: mods}, nil
	}

	if spec[0] != '<' {
		return Key{}, fmt.Errorf("%w: %q", ErrUnrecognizedToken, spec)
	}
	if spec[len(spec)-1] != '>' {
		return Key{}, fmt.Errorf("%w: %q", ErrUnterminatedTag, spec)
	}

	code, mods, err := resolveTag(spec[1 : len(spec)-1])
	if err != nil {
		return Key{}, err
	}
	return Key{Code: code, Mods: mods}, nil
}

// resolveTag resolves the inner content of a <...> tag. Each leading
// modifier prefix adds to the set and the remainder resolves recursively,
// so "c-a-del" is Ctrl+Alt over "del".
func resolveTag(inner string) (Code, Modifier, error) {
	if inner == "" {
		return CodeNone, ModNone, fmt.Errorf("empty tag: %w", ErrEmptyInput)
	}

	if len(inner) >= 2 && inner[1] == '-' {
		if mod, ok := modifierFromChar(inner[0]); ok {
			code, mods, err := resolveTag(inner[2:])
			if err != nil {
				return CodeNone, ModNone, err
			}
			return code, mods.With(mod), nil
		}
	}

	if len(inner) == 1 {
		code, mods, ok := codeFromChar(inner[0])
		if !ok {
			return CodeNone, ModNone, fmt.Errorf("%w: %q", ErrUnrecognizedToken, inner)
		}
		return code, mods, nil
	}

	if code, ok := codeNameMap[strings.ToLower(inner)]; ok {
		return code, ModNone, nil
	}

	return CodeNone, ModNone, fmt.Errorf("%w: %q", ErrUnrecognizedToken, inner)
}

// MustParse parses key notation and panics on error.
// Use only for known-valid notation in initialization code.
func MustParse(spec string) Key {
	k, err := Parse(spec)
	if err != nil {
		panic("invalid key notation: " + spec + ": " + err.Error())
	}
	return k
}

// Normalize parses key notation and re-formats it to its canonical form.
func Normalize(spec string) (string, error) {
	k, err := Parse(spec)
	if err != nil {
		return "", err
	}
	return k.String(), nil
}
