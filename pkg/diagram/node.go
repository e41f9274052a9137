package diagram

// Node is a labeled leaf in the diagram, one infrastructure element.
type Node struct {
	id      string
	label   string
	kind    Kind
	diagram *Diagram
	cluster *Cluster
}

// ID returns the node identifier, unique within its diagram.
func (n *Node) ID() string { return n.id }

// Label returns the label as declared.
func (n *Node) Label() string { return n.label }

// Kind returns the node category.
func (n *Node) Kind() Kind { return n.kind }

// Cluster returns the innermost enclosing cluster, or nil at the top level.
func (n *Node) Cluster() *Cluster { return n.cluster }

// DisplayLabel returns the label drawn in the diagram. With autolabel on,
// the kind name is prepended on its own line.
func (n *Node) DisplayLabel() string {
	if n.diagram != nil && n.diagram.autolabel && n.kind.Name != "" {
		if n.label == "" {
			return n.kind.Name
		}
		return n.kind.Name + "\n" + n.label
	}
	return n.label
}

// String returns the label, or the ID for unlabeled nodes.
func (n *Node) String() string {
	if n == nil {
		return "<nil>"
	}
	if n.label != "" {
		return n.label
	}
	return n.id
}
