package provider

import (
	_ "embed"
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/goccy/go-yaml"
)

//go:embed profiles.yaml
var defaultProfiles []byte

// Catalog is the ordered set of known provider profiles.
type Catalog struct {
	Providers []Profile `yaml:"providers"`
}

// Default returns the built-in profiles.
func Default() (*Catalog, error) {
	return Parse(defaultProfiles)
}

// LoadFile reads a catalog from a YAML file, replacing the built-in one.
func LoadFile(path string) (*Catalog, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read provider catalog: %w", err)
	}
	return Parse(data)
}

// Parse decodes and validates a YAML catalog.
func Parse(data []byte) (*Catalog, error) {
	var c Catalog
	if err := yaml.Unmarshal(data, &c); err != nil {
		return nil, fmt.Errorf("parse provider catalog: %w", err)
	}
	if len(c.Providers) == 0 {
		return nil, errors.New("provider catalog is empty")
	}

	seen := make(map[string]struct{}, len(c.Providers))
	for _, p := range c.Providers {
		if err := p.Validate(); err != nil {
			return nil, err
		}
		if _, dup := seen[p.Name]; dup {
			return nil, fmt.Errorf("provider %q defined twice", p.Name)
		}
		seen[p.Name] = struct{}{}
	}
	return &c, nil
}

// Get returns the profile called name.
func (c *Catalog) Get(name string) (Profile, bool) {
	for _, p := range c.Providers {
		if p.Name == name {
			return p, true
		}
	}
	return Profile{}, false
}

// Names lists the profiles in catalog order.
func (c *Catalog) Names() []string {
	names := make([]string, len(c.Providers))
	for i, p := range c.Providers {
		names[i] = p.Name
	}
	return names
}

// Select returns the named profiles in the order given. An empty list
// selects every profile.
func (c *Catalog) Select(names []string) ([]Profile, error) {
	if len(names) == 0 {
		return append([]Profile(nil), c.Providers...), nil
	}
	out := make([]Profile, 0, len(names))
	for _, name := range names {
		name = strings.TrimSpace(name)
		if name == "" {
			continue
		}
		p, ok := c.Get(name)
		if !ok {
			return nil, fmt.Errorf("unknown provider %q (known: %s)", name, strings.Join(c.Names(), ", "))
		}
		out = append(out, p)
	}
	if len(out) == 0 {
		return nil, errors.New("no providers selected")
	}
	return out, nil
}
