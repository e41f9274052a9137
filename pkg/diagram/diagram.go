package diagram

import (
	"github.com/matzehuels/archdraw/pkg/errors"
)

// Scope is a region of a diagram that nodes and clusters can be declared in.
// Both [*Diagram] (the top level) and [*Cluster] implement it.
type Scope interface {
	// Node creates a node of the given kind and registers it in the scope.
	Node(kind Kind, label string) *Node
	// Cluster opens a nested cluster, runs fn inside it and closes it.
	Cluster(label string, fn func(*Cluster), opts ...ClusterOption) *Cluster
}

// Diagram is the top-level canvas. It owns every node, cluster and edge
// declared within it.
//
// Construction methods never panic. The first invalid declaration (a bad
// label, a mutation after [Diagram.Seal]) is recorded and reported by
// [Diagram.Err] and [Diagram.Validate]; edges report errors directly from
// [Diagram.Connect].
type Diagram struct {
	title      string
	filename   string
	direction  Direction
	curveStyle CurveStyle
	formats    []Format
	show       bool
	strict     bool
	autolabel  bool
	graphAttr  Attrs
	nodeAttr   Attrs
	edgeAttr   Attrs
	ids        IDGenerator

	rootNodes    []*Node
	rootClusters []*Cluster
	nodes        []*Node
	clusters     []*Cluster
	edges        []*Edge

	sealed bool
	err    error
}

var _ Scope = (*Diagram)(nil)

// New creates an empty diagram.
//
// Defaults: top-to-bottom direction, orthogonal edges, a single PNG output,
// random IDs, show disabled.
func New(title string, opts ...Option) (*Diagram, error) {
	if err := errors.ValidateTitle(title); err != nil {
		return nil, err
	}
	d := &Diagram{
		title:      title,
		direction:  TopToBottom,
		curveStyle: Ortho,
		formats:    []Format{FormatPNG},
		ids:        RandomIDs(),
	}
	for _, opt := range opts {
		opt(d)
	}

	if d.direction == "" {
		d.direction = TopToBottom
	}
	if !d.direction.Valid() {
		return nil, errors.New(errors.ErrCodeInvalidDirection, "invalid direction: %q", d.direction)
	}
	if d.curveStyle == "" {
		d.curveStyle = Ortho
	}
	if !d.curveStyle.Valid() {
		return nil, errors.New(errors.ErrCodeInvalidCurveStyle, "invalid curve style: %q", d.curveStyle)
	}
	if len(d.formats) == 0 {
		d.formats = []Format{FormatPNG}
	}
	for _, f := range d.formats {
		if !f.Valid() {
			return nil, errors.New(errors.ErrCodeInvalidFormat, "invalid format: %q", f)
		}
	}
	if d.filename != "" {
		if err := errors.ValidateFilename(d.filename); err != nil {
			return nil, err
		}
	}
	return d, nil
}

// Title returns the diagram title.
func (d *Diagram) Title() string { return d.title }

// Direction returns the rank direction.
func (d *Diagram) Direction() Direction { return d.direction }

// CurveStyle returns the edge routing style.
func (d *Diagram) CurveStyle() CurveStyle { return d.curveStyle }

// Formats returns the output formats in the order they were requested.
func (d *Diagram) Formats() []Format { return append([]Format(nil), d.formats...) }

// Show reports whether the rendered file should be opened.
func (d *Diagram) Show() bool { return d.show }

// Strict reports whether a strict digraph is emitted.
func (d *Diagram) Strict() bool { return d.strict }

// Autolabel reports whether node labels are prefixed with their kind name.
func (d *Diagram) Autolabel() bool { return d.autolabel }

// GraphAttr returns a copy of the graph attribute overrides.
func (d *Diagram) GraphAttr() Attrs { return d.graphAttr.clone() }

// NodeAttr returns a copy of the node attribute overrides.
func (d *Diagram) NodeAttr() Attrs { return d.nodeAttr.clone() }

// EdgeAttr returns a copy of the edge attribute overrides.
func (d *Diagram) EdgeAttr() Attrs { return d.edgeAttr.clone() }

// Filename returns the output filename stem: the explicit filename if one
// was given, otherwise the normalized title.
func (d *Diagram) Filename() string {
	if d.filename != "" {
		return d.filename
	}
	return NormalizeFilename(d.title)
}

// Node creates a node at the top level of the diagram.
func (d *Diagram) Node(kind Kind, label string) *Node {
	n := d.newNode(kind, label, nil)
	if n != nil {
		d.rootNodes = append(d.rootNodes, n)
	}
	return n
}

// Cluster opens a top-level cluster and runs fn inside it.
func (d *Diagram) Cluster(label string, fn func(*Cluster), opts ...ClusterOption) *Cluster {
	c := d.newCluster(label, nil, opts)
	if c == nil {
		return nil
	}
	d.rootClusters = append(d.rootClusters, c)
	c.run(fn)
	return c
}

// Nodes returns every node in declaration order.
func (d *Diagram) Nodes() []*Node { return append([]*Node(nil), d.nodes...) }

// RootNodes returns the nodes declared outside any cluster.
func (d *Diagram) RootNodes() []*Node { return append([]*Node(nil), d.rootNodes...) }

// Clusters returns every cluster in declaration (depth-first) order.
func (d *Diagram) Clusters() []*Cluster { return append([]*Cluster(nil), d.clusters...) }

// RootClusters returns the top-level clusters.
func (d *Diagram) RootClusters() []*Cluster { return append([]*Cluster(nil), d.rootClusters...) }

// Edges returns every edge in declaration order.
func (d *Diagram) Edges() []*Edge { return append([]*Edge(nil), d.edges...) }

// NodeCount returns the number of nodes.
func (d *Diagram) NodeCount() int { return len(d.nodes) }

// EdgeCount returns the number of edges.
func (d *Diagram) EdgeCount() int { return len(d.edges) }

// MaxDepth returns the deepest cluster nesting level, 0 without clusters.
func (d *Diagram) MaxDepth() int {
	depth := 0
	for _, c := range d.clusters {
		depth = max(depth, c.depth)
	}
	return depth
}

// Stats summarizes the size of a diagram.
type Stats struct {
	Nodes    int
	Edges    int
	Clusters int
	MaxDepth int
}

// Stats returns node, edge and cluster counts.
func (d *Diagram) Stats() Stats {
	return Stats{
		Nodes:    len(d.nodes),
		Edges:    len(d.edges),
		Clusters: len(d.clusters),
		MaxDepth: d.MaxDepth(),
	}
}

// Owns reports whether n was created by this diagram.
func (d *Diagram) Owns(n *Node) bool {
	return n != nil && n.diagram == d
}

// Seal marks the diagram as finalized. Later declarations are rejected.
func (d *Diagram) Seal() { d.sealed = true }

// Sealed reports whether [Diagram.Seal] has been called.
func (d *Diagram) Sealed() bool { return d.sealed }

// Err returns the first construction error, if any.
func (d *Diagram) Err() error { return d.err }

// Validate checks the invariants of the whole diagram: no construction
// errors, and every edge joins two nodes owned by this diagram.
func (d *Diagram) Validate() error {
	if d.err != nil {
		return d.err
	}
	for _, e := range d.edges {
		if !d.Owns(e.from) || !d.Owns(e.to) {
			return errors.New(errors.ErrCodeForeignNode, "edge %s references a node outside diagram %q", e, d.title)
		}
	}
	return nil
}

func (d *Diagram) fail(err error) {
	if d.err == nil {
		d.err = err
	}
}

func (d *Diagram) checkOpen() bool {
	if d.sealed {
		d.fail(errors.New(errors.ErrCodeInvalidInput, "diagram %q is sealed", d.title))
		return false
	}
	return true
}

func (d *Diagram) newNode(kind Kind, label string, parent *Cluster) *Node {
	if !d.checkOpen() {
		return nil
	}
	if err := errors.ValidateLabel(label); err != nil {
		d.fail(err)
		return nil
	}
	n := &Node{
		id:      d.ids("node"),
		label:   label,
		kind:    kind,
		diagram: d,
		cluster: parent,
	}
	d.nodes = append(d.nodes, n)
	return n
}

func (d *Diagram) newCluster(label string, parent *Cluster, opts []ClusterOption) *Cluster {
	if !d.checkOpen() {
		return nil
	}
	if err := errors.ValidateLabel(label); err != nil {
		d.fail(err)
		return nil
	}
	c := &Cluster{
		id:      d.ids("cluster"),
		label:   label,
		diagram: d,
		parent:  parent,
		depth:   1,
	}
	if parent != nil {
		c.depth = parent.depth + 1
	}
	for _, opt := range opts {
		opt(c)
	}
	d.clusters = append(d.clusters, c)
	return c
}
