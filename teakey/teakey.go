// Package teakey converts Bubble Tea key messages into parsed keys, so
// tea programs can match incoming input against notation-defined bindings.
package teakey

import (
	"errors"
	"fmt"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/TundraClimate/viks/key"
)

// ErrUnsupportedKey reports a key message with no notation equivalent
// (function keys, arrows, multi-rune input, pasted text).
var ErrUnsupportedKey = errors.New("key has no notation equivalent")

// FromKeyMsg converts a Bubble Tea key message into a Key.
//
// The Alt flag maps to the Alt modifier and dedicated ctrl key types map
// to the letter plus the Control modifier. Terminal aliases apply here
// too: Ctrl-I arrives as Tab, Ctrl-M as Enter.
func FromKeyMsg(msg tea.KeyMsg) (key.Key, error) {
	if msg.Paste {
		return key.Key{}, fmt.Errorf("%w: pasted input", ErrUnsupportedKey)
	}

	var mods key.Modifier
	if msg.Alt {
		mods = key.ModAlt
	}

	switch msg.Type {
	case tea.KeyRunes:
		if len(msg.Runes) != 1 {
			return key.Key{}, fmt.Errorf("%w: %q", ErrUnsupportedKey, string(msg.Runes))
		}
		return fromRune(msg.Runes[0], mods)
	case tea.KeySpace:
		return key.NewKey(key.CodeSpace, mods), nil
	case tea.KeyEnter:
		return key.NewKey(key.CodeEnter, mods), nil
	case tea.KeyTab:
		return key.NewKey(key.CodeTab, mods), nil
	case tea.KeyEsc:
		return key.NewKey(key.CodeEsc, mods), nil
	case tea.KeyBackspace:
		return key.NewKey(key.CodeBackspace, mods), nil
	case tea.KeyDelete:
		return key.NewKey(key.CodeDelete, mods), nil
	}

	if t := msg.Type; t >= tea.KeyCtrlA && t <= tea.KeyCtrlZ {
		code := key.Code('a' + byte(t-tea.KeyCtrlA))
		return key.NewKey(code, mods.With(key.ModCtrl)), nil
	}

	return key.Key{}, fmt.Errorf("%w: %s", ErrUnsupportedKey, msg.String())
}

// Match reports whether a key message matches a notation string.
// Invalid notation and unsupported messages never match.
func Match(msg tea.KeyMsg, spec string) bool {
	want, err := key.Parse(spec)
	if err != nil {
		return false
	}
	got, err := FromKeyMsg(msg)
	if err != nil {
		return false
	}
	return got == want
}

func fromRune(r rune, mods key.Modifier) (key.Key, error) {
	if r == ' ' {
		return key.NewKey(key.CodeSpace, mods), nil
	}
	k, err := key.Parse(string(r))
	if err != nil {
		return key.Key{}, fmt.Errorf("%w: %q", ErrUnsupportedKey, r)
	}
	k.Mods = k.Mods.With(mods)
	return k, nil
}
