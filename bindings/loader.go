package bindings

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/pelletier/go-toml/v2"
	"github.com/tidwall/gjson"
	"gopkg.in/yaml.v3"
)

// Loader loads binding sets from configuration files.
type Loader struct {
	// searchPaths are directories to search for binding files.
	searchPaths []string
}

// NewLoader creates a new binding loader.
func NewLoader() *Loader {
	return &Loader{
		searchPaths: make([]string, 0),
	}
}

// AddSearchPath adds a directory to search for binding files.
func (l *Loader) AddSearchPath(path string) {
	l.searchPaths = append(l.searchPaths, path)
}

// LoadFile loads a binding set, picking the format from the file
// extension (.toml, .yaml/.yml, or .json).
func (l *Loader) LoadFile(path string) (*Set, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading binding file %s: %w", path, err)
	}

	switch strings.ToLower(filepath.Ext(path)) {
	case ".toml":
		return ParseTOML(data)
	case ".yaml", ".yml":
		return ParseYAML(data)
	case ".json":
		return ParseJSON(data)
	default:
		return nil, fmt.Errorf("unsupported binding file format: %s", path)
	}
}

// LoadTOML loads a TOML binding set from a reader.
func (l *Loader) LoadTOML(r io.Reader) (*Set, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("reading bindings: %w", err)
	}
	return ParseTOML(data)
}

// LoadYAML loads a YAML binding set from a reader.
func (l *Loader) LoadYAML(r io.Reader) (*Set, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("reading bindings: %w", err)
	}
	return ParseYAML(data)
}

// LoadJSON loads a JSON binding set from a reader.
func (l *Loader) LoadJSON(r io.Reader) (*Set, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("reading bindings: %w", err)
	}
	return ParseJSON(data)
}

// LoadAll loads every binding file found in the search paths.
// Files that fail to load are skipped.
func (l *Loader) LoadAll() ([]*Set, error) {
	sets := make([]*Set, 0)

	for _, dir := range l.searchPaths {
		for _, pattern := range []string{"*.toml", "*.yaml", "*.yml", "*.json"} {
			matches, err := filepath.Glob(filepath.Join(dir, pattern))
			if err != nil {
				continue
			}
			for _, path := range matches {
				set, err := l.LoadFile(path)
				if err != nil {
					continue
				}
				sets = append(sets, set)
			}
		}
	}

	return sets, nil
}

// ParseTOML parses a TOML binding set.
func ParseTOML(data []byte) (*Set, error) {
	var set Set
	if err := toml.Unmarshal(data, &set); err != nil {
		return nil, fmt.Errorf("decoding TOML bindings: %w", err)
	}
	return &set, nil
}

// ParseYAML parses a YAML binding set.
func ParseYAML(data []byte) (*Set, error) {
	var set Set
	if err := yaml.Unmarshal(data, &set); err != nil {
		return nil, fmt.Errorf("decoding YAML bindings: %w", err)
	}
	return &set, nil
}

// ParseJSON parses a JSON binding set. Unknown fields are ignored and
// missing optional fields default to empty, so hand-written files stay
// loadable across versions.
func ParseJSON(data []byte) (*Set, error) {
	if !gjson.ValidBytes(data) {
		return nil, fmt.Errorf("decoding JSON bindings: invalid JSON")
	}

	root := gjson.ParseBytes(data)
	set := &Set{
		Name:     root.Get("name").String(),
		Mode:     root.Get("mode").String(),
		Bindings: make([]Binding, 0),
	}

	for _, b := range root.Get("bindings").Array() {
		set.Bindings = append(set.Bindings, Binding{
			Keys:        b.Get("keys").String(),
			Action:      b.Get("action").String(),
			Mode:        b.Get("mode").String(),
			Description: b.Get("description").String(),
		})
	}

	return set, nil
}
