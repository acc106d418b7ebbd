// Package tcellkey converts between parsed keys and tcell key events, so
// tcell applications can match incoming events against notation-defined
// bindings.
package tcellkey

import (
	"errors"
	"fmt"

	"github.com/gdamore/tcell/v2"

	"github.com/TundraClimate/viks/key"
)

// ErrUnsupportedKey reports a tcell event with no notation equivalent
// (function keys, arrows, meta-modified keys, non-ASCII runes).
var ErrUnsupportedKey = errors.New("key has no notation equivalent")

// FromEventKey converts a tcell key event into a Key.
//
// Both backspace encodings (BS and DEL) map to the Backspace key, and
// control letters reported as dedicated tcell keys map to the letter plus
// the Control modifier. Note the terminal aliases: Ctrl-I arrives as Tab,
// Ctrl-M as Enter.
func FromEventKey(ev *tcell.EventKey) (key.Key, error) {
	mods, err := fromMask(ev.Modifiers())
	if err != nil {
		return key.Key{}, err
	}

	switch ev.Key() {
	case tcell.KeyRune:
		return fromRune(ev.Rune(), mods)
	case tcell.KeyEnter:
		return key.NewKey(key.CodeEnter, mods), nil
	case tcell.KeyTab:
		return key.NewKey(key.CodeTab, mods), nil
	case tcell.KeyEsc:
		return key.NewKey(key.CodeEsc, mods), nil
	case tcell.KeyBackspace, tcell.KeyBackspace2:
		return key.NewKey(key.CodeBackspace, mods), nil
	case tcell.KeyDelete:
		return key.NewKey(key.CodeDelete, mods), nil
	}

	if k := ev.Key(); k >= tcell.KeyCtrlA && k <= tcell.KeyCtrlZ {
		code := key.Code('a' + byte(k-tcell.KeyCtrlA))
		return key.NewKey(code, mods.With(key.ModCtrl)), nil
	}

	// NewEventKey turns a space rune into Key(' ').
	if ev.Key() == tcell.Key(' ') {
		return key.NewKey(key.CodeSpace, mods), nil
	}

	return key.Key{}, fmt.Errorf("%w: %s", ErrUnsupportedKey, ev.Name())
}

// ToEventKey converts a Key into a tcell key event.
//
// Shift on a letter renders as the uppercase rune with the shift bit
// dropped, matching how terminals deliver shifted letters. Control on a
// letter renders as the dedicated tcell control key.
func ToEventKey(k key.Key) *tcell.EventKey {
	mask := toMask(k.Mods)

	switch k.Code {
	case key.CodeEnter:
		return tcell.NewEventKey(tcell.KeyEnter, 0, mask)
	case key.CodeTab:
		return tcell.NewEventKey(tcell.KeyTab, 0, mask)
	case key.CodeEsc:
		return tcell.NewEventKey(tcell.KeyEsc, 0, mask)
	case key.CodeBackspace:
		return tcell.NewEventKey(tcell.KeyBackspace2, 0, mask)
	case key.CodeDelete:
		return tcell.NewEventKey(tcell.KeyDelete, 0, mask)
	case key.CodeSpace:
		return tcell.NewEventKey(tcell.KeyRune, ' ', mask)
	}

	if k.Code.IsLetter() && k.Mods.HasCtrl() {
		ctrl := tcell.KeyCtrlA + tcell.Key(byte(k.Code)-'a')
		return tcell.NewEventKey(ctrl, rune(k.Code), mask)
	}

	r := rune(k.Code)
	if k.Code.IsLetter() && k.Mods.HasShift() {
		r -= 'a' - 'A'
		mask &^= tcell.ModShift
	}
	return tcell.NewEventKey(tcell.KeyRune, r, mask)
}

// Match reports whether a tcell event matches a notation string.
// Invalid notation and unsupported events never match.
func Match(ev *tcell.EventKey, spec string) bool {
	want, err := key.Parse(spec)
	if err != nil {
		return false
	}
	got, err := FromEventKey(ev)
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

func fromMask(mask tcell.ModMask) (key.Modifier, error) {
	if mask&tcell.ModMeta != 0 {
		return key.ModNone, fmt.Errorf("%w: meta modifier", ErrUnsupportedKey)
	}

	var mods key.Modifier
	if mask&tcell.ModShift != 0 {
		mods = mods.With(key.ModShift)
	}
	if mask&tcell.ModCtrl != 0 {
		mods = mods.With(key.ModCtrl)
	}
	if mask&tcell.ModAlt != 0 {
		mods = mods.With(key.ModAlt)
	}
	return mods, nil
}

func toMask(mods key.Modifier) tcell.ModMask {
	var mask tcell.ModMask
	if mods.HasShift() {
		mask |= tcell.ModShift
	}
	if mods.HasCtrl() {
		mask |= tcell.ModCtrl
	}
	if mods.HasAlt() {
		mask |= tcell.ModAlt
	}
	return mask
}
