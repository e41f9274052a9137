// Package nodes is the registry of built-in node kinds, keyed by
// "provider.category.Name" (e.g. "aws.network.Route53").
//
// Programs usually refer to kinds directly through the provider packages
// ([aws], [generic]). The registry serves definition files, which name kinds
// by key.
//
// [aws]: github.com/matzehuels/archdraw/pkg/diagram/nodes/aws
// [generic]: github.com/matzehuels/archdraw/pkg/diagram/nodes/generic
package nodes

import (
	"slices"
	"strings"

	"github.com/matzehuels/archdraw/pkg/diagram"
	"github.com/matzehuels/archdraw/pkg/diagram/nodes/aws"
	"github.com/matzehuels/archdraw/pkg/diagram/nodes/generic"
	"github.com/matzehuels/archdraw/pkg/errors"
)

var registry = build(aws.Kinds(), generic.Kinds())

func build(groups ...[]diagram.Kind) map[string]diagram.Kind {
	m := make(map[string]diagram.Kind)
	for _, g := range groups {
		for _, k := range g {
			m[strings.ToLower(k.Key())] = k
		}
	}
	return m
}

// Lookup returns the kind registered under key. Keys are matched
// case-insensitively.
func Lookup(key string) (diagram.Kind, error) {
	if k, ok := registry[strings.ToLower(strings.TrimSpace(key))]; ok {
		return k, nil
	}
	return diagram.Kind{}, errors.New(errors.ErrCodeUnknownKind, "unknown node kind: %q", key)
}

// All returns every registered kind sorted by key.
func All() []diagram.Kind {
	out := make([]diagram.Kind, 0, len(registry))
	for _, k := range registry {
		out = append(out, k)
	}
	slices.SortFunc(out, func(a, b diagram.Kind) int { return strings.Compare(a.Key(), b.Key()) })
	return out
}

// Providers returns the distinct provider names, sorted.
func Providers() []string {
	var out []string
	for _, k := range registry {
		if !slices.Contains(out, k.Provider) {
			out = append(out, k.Provider)
		}
	}
	slices.Sort(out)
	return out
}
