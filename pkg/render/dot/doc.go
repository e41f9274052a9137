// Package dot serializes diagrams as Graphviz DOT source.
//
// # Usage
//
//	src, err := dot.ToDOT(d, dot.Options{})
//
// The output can be rendered in process with
// [github.com/matzehuels/archdraw/pkg/render], saved as a .dot file, or
// processed with external Graphviz tools.
//
// # Layout
//
// The graph uses the diagram's direction as rankdir and its curve style as
// splines. Clusters are emitted as nested "cluster_<id>" subgraphs, with
// background colors cycling by depth (light blue, green, purple, yellow) so
// nesting reads at a glance. Attribute overrides set on the diagram or a
// cluster replace the defaults key by key.
//
// # Icons
//
// Without an icon directory, each node is a rounded, filled shape colored by
// its kind. With [Options.IconDir], each node is a fixed-size box showing
// the kind's icon with the label below it.
package dot
