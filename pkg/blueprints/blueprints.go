// Package blueprints is the registry of built-in diagrams.
//
// A [Blueprint] is a named, reusable diagram declaration. The CLI lists,
// renders and exports blueprints by name.
package blueprints

import (
	"slices"
	"strings"

	"github.com/matzehuels/archdraw/pkg/diagram"
	"github.com/matzehuels/archdraw/pkg/errors"
)

// Blueprint declares one diagram.
type Blueprint struct {
	Name        string // registry key, e.g. "tfe-mounted-disk"
	Title       string // diagram title; also determines the filename
	Description string

	// Direction is the blueprint's preferred layout direction.
	Direction diagram.Direction

	// Declare fills in the diagram's nodes, clusters and edges.
	Declare func(d *diagram.Diagram) error
}

// Build creates a fresh diagram from the blueprint. Options are applied
// after the blueprint's own, so callers can override direction or formats.
func (b Blueprint) Build(opts ...diagram.Option) (*diagram.Diagram, error) {
	base := []diagram.Option{diagram.WithDirection(b.Direction)}
	d, err := diagram.New(b.Title, append(base, opts...)...)
	if err != nil {
		return nil, err
	}
	if err := b.Declare(d); err != nil {
		return nil, err
	}
	if err := d.Validate(); err != nil {
		return nil, err
	}
	return d, nil
}

var registry = map[string]Blueprint{}

func register(b Blueprint) {
	if _, dup := registry[b.Name]; dup {
		panic("blueprints: duplicate name " + b.Name)
	}
	registry[b.Name] = b
}

// Get returns the blueprint with the given name.
func Get(name string) (Blueprint, error) {
	if b, ok := registry[strings.ToLower(strings.TrimSpace(name))]; ok {
		return b, nil
	}
	return Blueprint{}, errors.New(errors.ErrCodeUnknownBlueprint, "unknown blueprint: %q (available: %s)", name, strings.Join(Names(), ", "))
}

// Names returns the registered names, sorted.
func Names() []string {
	names := make([]string, 0, len(registry))
	for name := range registry {
		names = append(names, name)
	}
	slices.Sort(names)
	return names
}

// All returns every blueprint sorted by name.
func All() []Blueprint {
	out := make([]Blueprint, 0, len(registry))
	for _, name := range Names() {
		out = append(out, registry[name])
	}
	return out
}
