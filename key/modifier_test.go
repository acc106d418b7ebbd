package key

import "testing"

func TestModifierFlags(t *testing.T) {
	m := ModNone
	if !m.IsEmpty() {
		t.Error("ModNone.IsEmpty() = false")
	}

	m = m.With(ModCtrl).With(ModShift)
	if !m.HasCtrl() || !m.HasShift() || m.HasAlt() {
		t.Errorf("unexpected flags in %v", m)
	}

	// duplicates collapse
	if m.With(ModCtrl) != m {
		t.Error("adding a present modifier changed the set")
	}

	m = m.Without(ModCtrl)
	if m.HasCtrl() {
		t.Error("Without(ModCtrl) left Ctrl set")
	}
	if !m.HasShift() {
		t.Error("Without(ModCtrl) cleared Shift")
	}
}

func TestModifierOrderIndependence(t *testing.T) {
	a := ModNone.With(ModCtrl).With(ModAlt)
	b := ModNone.With(ModAlt).With(ModCtrl)
	if a != b {
		t.Errorf("Ctrl+Alt = %v, Alt+Ctrl = %v", a, b)
	}
}

func TestModifierString(t *testing.T) {
	tests := []struct {
		mod  Modifier
		want string
	}{
		{ModNone, ""},
		{ModShift, "Shift"},
		{ModCtrl | ModAlt, "Ctrl+Alt"},
		{ModCtrl | ModAlt | ModShift, "Ctrl+Alt+Shift"},
	}

	for _, tt := range tests {
		if got := tt.mod.String(); got != tt.want {
			t.Errorf("Modifier(%d).String() = %q, want %q", tt.mod, got, tt.want)
		}
	}
}

func TestModifierFromChar(t *testing.T) {
	tests := []struct {
		ch   byte
		want Modifier
		ok   bool
	}{
		{'s', ModShift, true},
		{'S', ModShift, true},
		{'c', ModCtrl, true},
		{'C', ModCtrl, true},
		{'a', ModAlt, true},
		{'A', ModAlt, true},
		{'x', ModNone, false},
		{'-', ModNone, false},
	}

	for _, tt := range tests {
		got, ok := modifierFromChar(tt.ch)
		if got != tt.want || ok != tt.ok {
			t.Errorf("modifierFromChar(%q) = %v, %v, want %v, %v", tt.ch, got, ok, tt.want, tt.ok)
		}
	}
}
