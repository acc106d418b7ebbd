// Package bindings defines keybinding configuration: named sets of
// key-sequence-to-action mappings, with loaders for TOML, YAML, and JSON
// binding files. The notation in each binding's Keys field is validated
// and resolved through the keymap package.
package bindings

import (
	"fmt"

	"github.com/TundraClimate/viks/keymap"
)

// Binding represents a single key-to-action mapping.
type Binding struct {
	// Keys is the key sequence that triggers this binding.
	// Examples: "j", "ZZ", "<c-s>", "<leader>w"
	Keys string `json:"keys" toml:"keys" yaml:"keys"`

	// Action is the command the binding invokes.
	// Examples: "cursor.down", "editor.save", "mode.insert"
	Action string `json:"action" toml:"action" yaml:"action"`

	// Mode restricts the binding to an editing mode.
	// Empty means all modes.
	Mode string `json:"mode,omitempty" toml:"mode,omitempty" yaml:"mode,omitempty"`

	// Description provides documentation for the binding.
	Description string `json:"description,omitempty" toml:"description,omitempty" yaml:"description,omitempty"`
}

// NewBinding creates a binding with the given keys and action.
func NewBinding(keys, action string) Binding {
	return Binding{
		Keys:   keys,
		Action: action,
	}
}

// WithMode sets the mode for this binding.
func (b Binding) WithMode(mode string) Binding {
	b.Mode = mode
	return b
}

// WithDescription sets the description for this binding.
func (b Binding) WithDescription(desc string) Binding {
	b.Description = desc
	return b
}

// Set is a named collection of bindings, typically one config file.
type Set struct {
	// Name is the set identifier.
	Name string `json:"name,omitempty" toml:"name,omitempty" yaml:"name,omitempty"`

	// Mode is the default mode for bindings in this set.
	Mode string `json:"mode,omitempty" toml:"mode,omitempty" yaml:"mode,omitempty"`

	// Bindings are the key-to-action mappings.
	Bindings []Binding `json:"bindings" toml:"bindings" yaml:"bindings"`
}

// NewSet creates an empty binding set with the given name.
func NewSet(name string) *Set {
	return &Set{
		Name:     name,
		Bindings: make([]Binding, 0),
	}
}

// Add appends a binding to this set.
func (s *Set) Add(keys, action string) *Set {
	s.Bindings = append(s.Bindings, NewBinding(keys, action))
	return s
}

// AddBinding appends a fully configured binding to this set.
func (s *Set) AddBinding(binding Binding) *Set {
	s.Bindings = append(s.Bindings, binding)
	return s
}

// Validate checks that every binding has keys, an action, and key
// notation that parses.
func (s *Set) Validate() error {
	for i, b := range s.Bindings {
		if b.Keys == "" {
			return fmt.Errorf("binding %d: empty keys", i)
		}
		if b.Action == "" {
			return fmt.Errorf("binding %d (%s): empty action", i, b.Keys)
		}
		if _, err := keymap.Parse(b.Keys); err != nil {
			return fmt.Errorf("binding %d (%s): %w", i, b.Keys, err)
		}
	}
	return nil
}

// ParsedBinding is a binding with its key sequence resolved.
type ParsedBinding struct {
	Binding
	Keymap *keymap.Keymap
}

// ParsedSet is a binding set with every key sequence resolved.
type ParsedSet struct {
	*Set
	ParsedBindings []ParsedBinding
}

// Parse resolves the key notation of every binding in the set.
func (s *Set) Parse() (*ParsedSet, error) {
	parsed := &ParsedSet{
		Set:            s,
		ParsedBindings: make([]ParsedBinding, 0, len(s.Bindings)),
	}

	for _, b := range s.Bindings {
		m, err := keymap.Parse(b.Keys)
		if err != nil {
			return nil, fmt.Errorf("parsing %q: %w", b.Keys, err)
		}
		parsed.ParsedBindings = append(parsed.ParsedBindings, ParsedBinding{
			Binding: b,
			Keymap:  m,
		})
	}

	return parsed, nil
}

// Lookup returns the parsed bindings whose keymap equals the given one.
// Bindings that fail to parse are skipped; call Validate first to reject
// them up front.
func (s *Set) Lookup(m *keymap.Keymap) []Binding {
	var out []Binding
	for _, b := range s.Bindings {
		parsed, err := keymap.Parse(b.Keys)
		if err != nil {
			continue
		}
		if parsed.Equal(m) {
			out = append(out, b)
		}
	}
	return out
}
