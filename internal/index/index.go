/*
Package index maintains the tool page map consumed by the site's client-side code.

The map is a flat JSON object from tool name to site-relative page path:

	{
	  "Acme AI": "tools/acme-ai.html",
	  "Moddy": "tools/moddy.html"
	}
*/
package index

import (
	"bytes"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sort"
)

// PageMap maps tool names to generated page paths.
type PageMap struct {
	paths  map[string]string
	owners map[string]string
}

// Entry is one name → path association.
type Entry struct {
	Name string
	Path string
}

// New creates an empty page map.
func New() *PageMap {
	return &PageMap{
		paths:  make(map[string]string),
		owners: make(map[string]string),
	}
}

// Add maps name to path. If path was already claimed, it returns the name that
// claimed it last and true; path then belongs to name.
func (m *PageMap) Add(name, path string) (string, bool) {
	previous, taken := m.owners[path]
	m.paths[name] = path
	m.owners[path] = name
	return previous, taken
}

// Path returns the page path for name.
func (m *PageMap) Path(name string) (string, bool) {
	p, ok := m.paths[name]
	return p, ok
}

// Len returns the number of mapped names.
func (m *PageMap) Len() int {
	return len(m.paths)
}

// Entries returns all associations sorted by name.
func (m *PageMap) Entries() []Entry {
	entries := make([]Entry, 0, len(m.paths))
	for name, p := range m.paths {
		entries = append(entries, Entry{Name: name, Path: p})
	}
	sort.Slice(entries, func(i, j int) bool {
		return entries[i].Name < entries[j].Name
	})
	return entries
}

// Paths returns the distinct page paths, sorted.
func (m *PageMap) Paths() []string {
	paths := make([]string, 0, len(m.owners))
	for p := range m.owners {
		paths = append(paths, p)
	}
	sort.Strings(paths)
	return paths
}

// MarshalJSON implements json.Marshaler.
func (m *PageMap) MarshalJSON() ([]byte, error) {
	return encode(m.paths)
}

// UnmarshalJSON implements json.Unmarshaler.
func (m *PageMap) UnmarshalJSON(data []byte) error {
	var paths map[string]string
	if err := json.Unmarshal(data, &paths); err != nil {
		return err
	}
	fresh := New()
	for name, p := range paths {
		fresh.Add(name, p)
	}
	*m = *fresh
	return nil
}

// Write stores the map at path, replacing any previous file.
func Write(path string, m *PageMap) error {
	data, err := encode(m.paths)
	if err != nil {
		return fmt.Errorf("failed to marshal page map: %w", err)
	}
	if err := atomicWrite(path, data); err != nil {
		return fmt.Errorf("failed to write page map: %w", err)
	}
	return nil
}

// Read loads a page map written by Write.
func Read(path string) (*PageMap, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read page map: %w", err)
	}

	m := New()
	if err := json.Unmarshal(data, m); err != nil {
		return nil, fmt.Errorf("failed to parse page map %s: %w", path, err)
	}
	return m, nil
}

// encode writes names verbatim: no HTML escaping, two-space indent.
func encode(paths map[string]string) ([]byte, error) {
	var buf bytes.Buffer
	encoder := json.NewEncoder(&buf)
	encoder.SetEscapeHTML(false)
	encoder.SetIndent("", "  ")
	if err := encoder.Encode(paths); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func atomicWrite(path string, data []byte) error {
	// Write to temp file in same directory
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return err
	}

	tmpPath := path + ".tmp"
	if err := os.WriteFile(tmpPath, data, 0644); err != nil {
		return err
	}

	// Atomic rename
	if err := os.Rename(tmpPath, path); err != nil {
		os.Remove(tmpPath)
		return err
	}
	return nil
}
