// Package dataset loads book catalogs from YAML.
package dataset

import (
	"bytes"
	_ "embed"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/felixgeelhaar/reducekit/examples/catalog"
)

//go:embed books.yaml
var sampleYAML []byte

// Sample returns the embedded sample catalog
func Sample() catalog.Catalog {
	c, err := Load(bytes.NewReader(sampleYAML))
	if err != nil {
		panic(fmt.Sprintf("dataset: embedded sample is invalid: %v", err))
	}
	return c
}

// LoadFile reads a catalog from a YAML file
func LoadFile(path string) (catalog.Catalog, error) {
	f, err := os.Open(path)
	if err != nil {
		return catalog.Catalog{}, fmt.Errorf("open dataset: %w", err)
	}
	defer func() { _ = f.Close() }()
	return Load(f)
}

// Load decodes and validates a catalog
func Load(r io.Reader) (catalog.Catalog, error) {
	var c catalog.Catalog
	if err := yaml.NewDecoder(r).Decode(&c); err != nil {
		return catalog.Catalog{}, fmt.Errorf("parse dataset: %w", err)
	}
	if err := Validate(c); err != nil {
		return catalog.Catalog{}, err
	}
	return c, nil
}

// Validate checks that book ids are unique and that every author and genre
// reference resolves.
func Validate(c catalog.Catalog) error {
	seen := make(map[string]bool, len(c.Books))
	for i, b := range c.Books {
		if b.ID == "" {
			return fmt.Errorf("book %d: id is required", i)
		}
		if seen[b.ID] {
			return fmt.Errorf("book %q: duplicate id", b.ID)
		}
		seen[b.ID] = true

		if _, ok := c.Authors[b.Author]; !ok {
			return fmt.Errorf("book %q: unknown author %q", b.ID, b.Author)
		}
		for _, g := range b.Genres {
			if _, ok := c.Genres[g]; !ok {
				return fmt.Errorf("book %q: unknown genre %q", b.ID, g)
			}
		}
	}
	return nil
}
