package catalog

import (
	_ "embed"
	"errors"
	"fmt"
	"net/url"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

// Version is the only catalog file format version understood
const Version = 1

//go:embed defaults.yaml
var defaultsYAML []byte

// Item is a single speed-dial entry
type Item struct {
	ID       string `yaml:"id"`
	Name     string `yaml:"name"`
	URL      string `yaml:"url"`
	Icon     string `yaml:"icon,omitempty"`
	Category string `yaml:"category,omitempty"`
}

// Catalog is the ordered set of dashboard sites
type Catalog struct {
	Version   int    `yaml:"version"`
	Pinned    []Item `yaml:"pinned"`
	Utilities []Item `yaml:"utilities"`
}

// Source describes where a loaded catalog came from
type Source string

const (
	SourceDefault Source = "built-in"
	SourceFile    Source = "file"
)

// Default returns a fresh copy of the built-in catalog
func Default() *Catalog {
	c, err := Parse(defaultsYAML)
	if err != nil {
		// defaults.yaml is compiled in and covered by tests
		panic(fmt.Sprintf("catalog: invalid embedded defaults: %v", err))
	}
	return c
}

// Parse decodes and validates catalog YAML
func Parse(data []byte) (*Catalog, error) {
	var c Catalog
	if err := yaml.Unmarshal(data, &c); err != nil {
		return nil, fmt.Errorf("failed to parse catalog: %w", err)
	}
	if err := c.Validate(); err != nil {
		return nil, err
	}
	return &c, nil
}

// LoadFile reads a catalog from path
func LoadFile(path string) (*Catalog, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read catalog file: %w", err)
	}
	c, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return c, nil
}

// Load returns the user catalog at path, or the built-in one when path is
// empty or the file does not exist.
func Load(path string) (*Catalog, Source, error) {
	if path == "" {
		return Default(), SourceDefault, nil
	}
	if _, err := os.Stat(path); errors.Is(err, os.ErrNotExist) {
		return Default(), SourceDefault, nil
	}
	c, err := LoadFile(path)
	if err != nil {
		return nil, SourceFile, err
	}
	return c, SourceFile, nil
}

// Validate checks the version, required fields, URL syntax and ID uniqueness
func (c *Catalog) Validate() error {
	if c.Version != Version {
		return fmt.Errorf("unsupported catalog version: %d (expected %d)", c.Version, Version)
	}

	seen := make(map[string]bool, c.Len())
	for i, item := range c.All() {
		if strings.TrimSpace(item.ID) == "" {
			return fmt.Errorf("site %d: id is required", i)
		}
		if seen[item.ID] {
			return fmt.Errorf("site %q: duplicate id", item.ID)
		}
		seen[item.ID] = true

		if strings.TrimSpace(item.Name) == "" {
			return fmt.Errorf("site %q: name is required", item.ID)
		}
		u, err := url.Parse(item.URL)
		if err != nil || u.Host == "" || (u.Scheme != "http" && u.Scheme != "https") {
			return fmt.Errorf("site %q: invalid url %q", item.ID, item.URL)
		}
	}
	return nil
}

// Len is the number of grid items (pinned + utilities)
func (c *Catalog) Len() int {
	if c == nil {
		return 0
	}
	return len(c.Pinned) + len(c.Utilities)
}

// All returns every item in grid order
func (c *Catalog) All() []Item {
	if c == nil {
		return nil
	}
	all := make([]Item, 0, c.Len())
	all = append(all, c.Pinned...)
	return append(all, c.Utilities...)
}

// ItemAt resolves a grid index
func (c *Catalog) ItemAt(i int) (Item, bool) {
	if c == nil || i < 0 || i >= c.Len() {
		return Item{}, false
	}
	if i < len(c.Pinned) {
		return c.Pinned[i], true
	}
	return c.Utilities[i-len(c.Pinned)], true
}

// Find looks an item up by id, returning its grid index
func (c *Catalog) Find(id string) (Item, int, bool) {
	for i, item := range c.All() {
		if item.ID == id {
			return item, i, true
		}
	}
	return Item{}, -1, false
}

// IsPinned reports whether grid index i falls in the pinned group
func (c *Catalog) IsPinned(i int) bool {
	return c != nil && i >= 0 && i < len(c.Pinned)
}

// Marshal encodes the catalog as YAML
func (c *Catalog) Marshal() ([]byte, error) {
	data, err := yaml.Marshal(c)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal catalog: %w", err)
	}
	return data, nil
}

// WriteFile saves c to path atomically, creating parent directories.
func WriteFile(path string, c *Catalog) error {
	if err := c.Validate(); err != nil {
		return err
	}
	if err := os.MkdirAll(filepath.Dir(path), 0700); err != nil {
		return fmt.Errorf("failed to create catalog directory: %w", err)
	}

	data, err := c.Marshal()
	if err != nil {
		return err
	}
	header := []byte("# Odin TV speed-dial sites\n# Pinned sites fill the first grid row; utilities follow.\n\n")
	data = append(header, data...)

	tmpPath := path + ".tmp"
	if err := os.WriteFile(tmpPath, data, 0600); err != nil {
		return fmt.Errorf("failed to write temporary catalog file: %w", err)
	}
	if err := os.Rename(tmpPath, path); err != nil {
		os.Remove(tmpPath)
		return fmt.Errorf("failed to save catalog file: %w", err)
	}
	return nil
}
