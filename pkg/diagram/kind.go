package diagram

import (
	"path"
	"strings"
)

// Kind describes the category of a node: which provider and service it
// stands for, and how it is drawn.
//
// When an icon directory is configured at render time, Icon is resolved
// relative to it and drawn above the label. Without icons, Shape and
// FillColor are used instead.
type Kind struct {
	Provider  string // e.g. "aws"
	Category  string // e.g. "network"
	Name      string // e.g. "Route53"
	Shape     string // Graphviz shape used without icons
	FillColor string // fill used without icons
	Icon      string // icon path relative to the icon directory
}

// Key returns the dotted lookup key, e.g. "aws.network.Route53".
func (k Kind) Key() string {
	return strings.Join([]string{k.Provider, k.Category, k.Name}, ".")
}

// IsZero reports whether k is the zero Kind.
func (k Kind) IsZero() bool {
	return k.Provider == "" && k.Category == "" && k.Name == ""
}

// IconPath returns the icon path, defaulting to
// "<provider>/<category>/<lowercase name>.png".
func (k Kind) IconPath() string {
	if k.Icon != "" {
		return k.Icon
	}
	return path.Join(k.Provider, k.Category, strings.ToLower(k.Name)+".png")
}
