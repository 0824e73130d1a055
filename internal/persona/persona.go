// Package persona holds the read-only catalog of target-model personas.
package persona

import (
	_ "embed"
	"errors"
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"
)

//go:embed personas.yaml
var defaultCatalog []byte

// ErrNotFound is returned when no persona has the requested ID.
var ErrNotFound = errors.New("persona not found")

// Persona is a named system-prompt template for a downstream model.
type Persona struct {
	ID          string `yaml:"id" json:"id"`
	Name        string `yaml:"name" json:"name"`
	Title       string `yaml:"title" json:"title"`
	Description string `yaml:"description" json:"description"`
	Prompt      string `yaml:"prompt" json:"prompt"`
}

// Catalog is an ordered, immutable set of personas keyed by ID.
type Catalog struct {
	personas []Persona
	byID     map[string]int
}

type catalogFile struct {
	Personas []Persona `yaml:"personas"`
}

// Default returns the catalog compiled into the binary.
func Default() (*Catalog, error) {
	return Parse(defaultCatalog)
}

// Load reads a catalog from a YAML file. An empty path yields the default catalog.
func Load(path string) (*Catalog, error) {
	if path == "" {
		return Default()
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read persona file: %w", err)
	}
	return Parse(data)
}

// Parse decodes and validates a YAML catalog document.
func Parse(data []byte) (*Catalog, error) {
	var f catalogFile
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("decode personas: %w", err)
	}
	return New(f.Personas)
}

// New builds a catalog from records. IDs must be unique and every field set.
func New(personas []Persona) (*Catalog, error) {
	if len(personas) == 0 {
		return nil, errors.New("persona catalog is empty")
	}
	c := &Catalog{
		personas: make([]Persona, 0, len(personas)),
		byID:     make(map[string]int, len(personas)),
	}
	for i, p := range personas {
		p.Prompt = strings.TrimSpace(p.Prompt)
		if err := validate(p); err != nil {
			return nil, fmt.Errorf("persona %d: %w", i, err)
		}
		if _, dup := c.byID[p.ID]; dup {
			return nil, fmt.Errorf("duplicate persona id %q", p.ID)
		}
		c.byID[p.ID] = len(c.personas)
		c.personas = append(c.personas, p)
	}
	return c, nil
}

func validate(p Persona) error {
	switch {
	case strings.TrimSpace(p.ID) == "":
		return errors.New("id is required")
	case strings.TrimSpace(p.Name) == "":
		return fmt.Errorf("%s: name is required", p.ID)
	case strings.TrimSpace(p.Title) == "":
		return fmt.Errorf("%s: title is required", p.ID)
	case strings.TrimSpace(p.Description) == "":
		return fmt.Errorf("%s: description is required", p.ID)
	case p.Prompt == "":
		return fmt.Errorf("%s: prompt is required", p.ID)
	}
	return nil
}

// All returns the personas in catalog order. The slice is a copy.
func (c *Catalog) All() []Persona {
	out := make([]Persona, len(c.personas))
	copy(out, c.personas)
	return out
}

// Get returns the persona with the given ID.
func (c *Catalog) Get(id string) (Persona, error) {
	i, ok := c.byID[id]
	if !ok {
		return Persona{}, ErrNotFound
	}
	return c.personas[i], nil
}

// Len reports the number of personas.
func (c *Catalog) Len() int { return len(c.personas) }
