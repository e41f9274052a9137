package diagram

import "github.com/matzehuels/archdraw/pkg/errors"

// Cluster is a labeled visual grouping of nodes and nested clusters.
type Cluster struct {
	id        string
	label     string
	diagram   *Diagram
	parent    *Cluster
	depth     int
	nodes     []*Node
	clusters  []*Cluster
	graphAttr Attrs
	open      bool
}

var _ Scope = (*Cluster)(nil)

// ClusterOption configures a cluster when it is opened.
type ClusterOption func(*Cluster)

// WithClusterAttr overrides a Graphviz attribute of this cluster only,
// e.g. its "bgcolor".
func WithClusterAttr(key, value string) ClusterOption {
	return func(c *Cluster) { c.graphAttr.set(key, value) }
}

// ID returns the cluster identifier, unique within its diagram.
func (c *Cluster) ID() string { return c.id }

// Label returns the cluster label.
func (c *Cluster) Label() string { return c.label }

// Parent returns the enclosing cluster, or nil for a top-level cluster.
func (c *Cluster) Parent() *Cluster { return c.parent }

// Depth returns the nesting level: 1 for a top-level cluster.
func (c *Cluster) Depth() int { return c.depth }

// Nodes returns the nodes declared directly in this cluster.
func (c *Cluster) Nodes() []*Node { return append([]*Node(nil), c.nodes...) }

// Clusters returns the clusters nested directly in this cluster.
func (c *Cluster) Clusters() []*Cluster { return append([]*Cluster(nil), c.clusters...) }

// GraphAttr returns a copy of the attribute overrides for this cluster.
func (c *Cluster) GraphAttr() Attrs { return c.graphAttr.clone() }

// Open reports whether the cluster's scope function is still running.
func (c *Cluster) Open() bool { return c.open }

// Node creates a node inside this cluster. The cluster's scope function
// must still be running.
func (c *Cluster) Node(kind Kind, label string) *Node {
	if !c.checkOpen() {
		return nil
	}
	n := c.diagram.newNode(kind, label, c)
	if n != nil {
		c.nodes = append(c.nodes, n)
	}
	return n
}

// Cluster opens a cluster nested in c and runs fn inside it.
func (c *Cluster) Cluster(label string, fn func(*Cluster), opts ...ClusterOption) *Cluster {
	if !c.checkOpen() {
		return nil
	}
	child := c.diagram.newCluster(label, c, opts)
	if child == nil {
		return nil
	}
	c.clusters = append(c.clusters, child)
	child.run(fn)
	return child
}

// checkOpen records a sticky error when c's scope has already exited.
func (c *Cluster) checkOpen() bool {
	if c == nil {
		return false
	}
	if !c.open {
		c.diagram.fail(errors.New(errors.ErrCodeInvalidInput, "cluster %q is closed", c.label))
		return false
	}
	return true
}

func (c *Cluster) run(fn func(*Cluster)) {
	if fn == nil {
		return
	}
	c.open = true
	defer func() { c.open = false }()
	fn(c)
}
