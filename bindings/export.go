package bindings

import (
	"fmt"

	"github.com/tidwall/sjson"

	"github.com/TundraClimate/viks/keymap"
)

// ExportJSON renders the set as a JSON document with every key sequence
// rewritten to its canonical notation, so exported files compare stably
// regardless of how the bindings were originally spelled.
func ExportJSON(s *Set) ([]byte, error) {
	out := []byte(`{}`)
	var err error

	if s.Name != "" {
		if out, err = sjson.SetBytes(out, "name", s.Name); err != nil {
			return nil, fmt.Errorf("encoding bindings: %w", err)
		}
	}
	if s.Mode != "" {
		if out, err = sjson.SetBytes(out, "mode", s.Mode); err != nil {
			return nil, fmt.Errorf("encoding bindings: %w", err)
		}
	}

	for i, b := range s.Bindings {
		m, perr := keymap.Parse(b.Keys)
		if perr != nil {
			return nil, fmt.Errorf("binding %d (%s): %w", i, b.Keys, perr)
		}

		prefix := fmt.Sprintf("bindings.%d.", i)
		fields := []struct {
			path, value string
		}{
			{"keys", m.String()},
			{"action", b.Action},
			{"mode", b.Mode},
			{"description", b.Description},
		}
		for _, f := range fields {
			if f.value == "" && f.path != "keys" && f.path != "action" {
				continue
			}
			if out, err = sjson.SetBytes(out, prefix+f.path, f.value); err != nil {
				return nil, fmt.Errorf("encoding bindings: %w", err)
			}
		}
	}

	if len(s.Bindings) == 0 {
		if out, err = sjson.SetRawBytes(out, "bindings", []byte(`[]`)); err != nil {
			return nil, fmt.Errorf("encoding bindings: %w", err)
		}
	}

	return out, nil
}
