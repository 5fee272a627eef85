package flow

import (
	_ "embed"
	"fmt"

	"gopkg.in/yaml.v3"
)

//go:embed flows.yaml
var defaultFlows []byte

type catalogDocument struct {
	Flows []Definition `yaml:"flows"`
}

// Catalog maps a category to its step sequence. It is static configuration
// and is safe for concurrent use once built.
type Catalog struct {
	order []Category
	flows map[Category]Definition
}

// DefaultCatalog returns the catalog shipped with the binary.
func DefaultCatalog() *Catalog {
	c, err := ParseCatalog(defaultFlows)
	if err != nil {
		panic(fmt.Sprintf("embedded flows.yaml: %v", err))
	}
	return c
}

// ParseCatalog decodes and validates a YAML catalog document.
func ParseCatalog(data []byte) (*Catalog, error) {
	var doc catalogDocument
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidCatalog, err)
	}
	return NewCatalog(doc.Flows...)
}

// NewCatalog builds a catalog from explicit definitions.
func NewCatalog(defs ...Definition) (*Catalog, error) {
	if len(defs) == 0 {
		return nil, fmt.Errorf("%w: no flows", ErrInvalidCatalog)
	}

	c := &Catalog{flows: make(map[Category]Definition, len(defs))}
	for _, d := range defs {
		if d.Category == "" {
			return nil, fmt.Errorf("%w: empty category", ErrInvalidCatalog)
		}
		if _, dup := c.flows[d.Category]; dup {
			return nil, fmt.Errorf("%w: duplicate category %q", ErrInvalidCatalog, d.Category)
		}
		if len(d.Steps) == 0 {
			return nil, fmt.Errorf("%w: category %q has no steps", ErrInvalidCatalog, d.Category)
		}
		if d.Pricing != PricingNightly && d.Pricing != PricingHourly {
			return nil, fmt.Errorf("%w: category %q has unknown pricing %q", ErrInvalidCatalog, d.Category, d.Pricing)
		}

		seen := make(map[StepKey]bool, len(d.Steps))
		for _, s := range d.Steps {
			if !s.Known() {
				return nil, fmt.Errorf("%w: category %q uses unknown step %q", ErrInvalidCatalog, d.Category, s)
			}
			if seen[s] {
				return nil, fmt.Errorf("%w: category %q repeats step %q", ErrInvalidCatalog, d.Category, s)
			}
			seen[s] = true
		}

		if d.Label == "" {
			d.Label = string(d.Category)
		}
		c.flows[d.Category] = d.clone()
		c.order = append(c.order, d.Category)
	}
	return c, nil
}

// Resolve returns the flow for category. The returned definition is a copy;
// callers may not change the catalog through it.
func (c *Catalog) Resolve(category Category) (Definition, error) {
	d, ok := c.flows[category]
	if !ok {
		return Definition{}, fmt.Errorf("%w: %q", ErrUnknownCategory, category)
	}
	return d.clone(), nil
}

// Categories lists all definitions in catalog order.
func (c *Catalog) Categories() []Definition {
	out := make([]Definition, 0, len(c.order))
	for _, cat := range c.order {
		out = append(out, c.flows[cat].clone())
	}
	return out
}
