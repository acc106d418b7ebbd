package tcellkey

import (
	"errors"
	"testing"

	"github.com/gdamore/tcell/v2"

	"github.com/TundraClimate/viks/key"
)

func TestFromEventKey(t *testing.T) {
	tests := []struct {
		name string
		ev   *tcell.EventKey
		want key.Key
	}{
		{"rune", tcell.NewEventKey(tcell.KeyRune, 'a', tcell.ModNone), key.MustParse("a")},
		{"upper rune", tcell.NewEventKey(tcell.KeyRune, 'A', tcell.ModNone), key.MustParse("A")},
		{"alt rune", tcell.NewEventKey(tcell.KeyRune, 'x', tcell.ModAlt), key.MustParse("<a-x>")},
		{"space", tcell.NewEventKey(tcell.KeyRune, ' ', tcell.ModNone), key.MustParse("<space>")},
		{"less than", tcell.NewEventKey(tcell.KeyRune, '<', tcell.ModNone), key.MustParse("<lt>")},
		{"enter", tcell.NewEventKey(tcell.KeyEnter, 0, tcell.ModNone), key.MustParse("<enter>")},
		{"escape", tcell.NewEventKey(tcell.KeyEsc, 0, tcell.ModNone), key.MustParse("<esc>")},
		{"tab", tcell.NewEventKey(tcell.KeyTab, 0, tcell.ModNone), key.MustParse("<tab>")},
		{"backspace", tcell.NewEventKey(tcell.KeyBackspace2, 0, tcell.ModNone), key.MustParse("<bs>")},
		{"delete", tcell.NewEventKey(tcell.KeyDelete, 0, tcell.ModNone), key.MustParse("<del>")},
		{"ctrl letter", tcell.NewEventKey(tcell.KeyCtrlX, 'x', tcell.ModCtrl), key.MustParse("<c-x>")},
	}

	for _, tt := range tests {
		got, err := FromEventKey(tt.ev)
		if err != nil {
			t.Errorf("%s: FromEventKey error = %v", tt.name, err)
			continue
		}
		if got != tt.want {
			t.Errorf("%s: FromEventKey = %#v, want %#v", tt.name, got, tt.want)
		}
	}
}

func TestFromEventKeyUnsupported(t *testing.T) {
	events := []*tcell.EventKey{
		tcell.NewEventKey(tcell.KeyF1, 0, tcell.ModNone),
		tcell.NewEventKey(tcell.KeyUp, 0, tcell.ModNone),
		tcell.NewEventKey(tcell.KeyRune, 'é', tcell.ModNone),
		tcell.NewEventKey(tcell.KeyRune, 'a', tcell.ModMeta),
	}

	for _, ev := range events {
		if _, err := FromEventKey(ev); !errors.Is(err, ErrUnsupportedKey) {
			t.Errorf("FromEventKey(%s) error = %v, want ErrUnsupportedKey", ev.Name(), err)
		}
	}
}

func TestToEventKeyRoundTrip(t *testing.T) {
	specs := []string{
		"a", "A", "1", ".", "<lt>",
		"<enter>", "<tab>", "<esc>", "<bs>", "<del>", "<space>",
		"<c-x>", "<a-x>", "<c-a-x>", "<a-enter>",
	}

	for _, spec := range specs {
		k := key.MustParse(spec)
		back, err := FromEventKey(ToEventKey(k))
		if err != nil {
			t.Errorf("%s: round trip error = %v", spec, err)
			continue
		}
		if back != k {
			t.Errorf("%s: round trip = %#v, want %#v", spec, back, k)
		}
	}
}

func TestMatch(t *testing.T) {
	ev := tcell.NewEventKey(tcell.KeyRune, 'Z', tcell.ModNone)
	if !Match(ev, "Z") {
		t.Error("Match(Z, Z) = false")
	}
	if !Match(ev, "<s-z>") {
		t.Error("Match(Z, <s-z>) = false")
	}
	if Match(ev, "z") {
		t.Error("Match(Z, z) = true")
	}
	if Match(ev, "<bogus>") {
		t.Error("Match against invalid notation = true")
	}
	if Match(tcell.NewEventKey(tcell.KeyF1, 0, tcell.ModNone), "a") {
		t.Error("Match of unsupported event = true")
	}
}
