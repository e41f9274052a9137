package diagram

import (
	"fmt"
	"strings"

	"github.com/matzehuels/archdraw/pkg/errors"
)

// EdgeDirection selects which end(s) of an edge carry an arrowhead.
type EdgeDirection int

const (
	// Forward draws an arrow at the target: request flows from -> to.
	Forward EdgeDirection = iota
	// Reverse draws an arrow at the source.
	Reverse
	// Both draws arrows at both ends.
	Both
	// Undirected draws a plain line.
	Undirected
)

// DOT returns the Graphviz "dir" attribute value.
func (d EdgeDirection) DOT() string {
	switch d {
	case Reverse:
		return "back"
	case Both:
		return "both"
	case Undirected:
		return "none"
	default:
		return "forward"
	}
}

// String returns the name used in definition files.
func (d EdgeDirection) String() string {
	switch d {
	case Reverse:
		return "reverse"
	case Both:
		return "both"
	case Undirected:
		return "none"
	default:
		return "forward"
	}
}

// ParseEdgeDirection parses "forward" (or ">>"), "reverse" ("<<"), "both"
// and "none" ("-"). The empty string means forward.
func ParseEdgeDirection(s string) (EdgeDirection, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "forward", ">>":
		return Forward, nil
	case "reverse", "back", "<<":
		return Reverse, nil
	case "both":
		return Both, nil
	case "none", "-":
		return Undirected, nil
	}
	return Forward, errors.New(errors.ErrCodeInvalidInput, "invalid edge direction: %q", s)
}

// Edge is a relationship between two nodes of the same diagram.
type Edge struct {
	from, to  *Node
	label     string
	color     string
	style     string
	direction EdgeDirection
}

// EdgeOption configures an edge.
type EdgeOption func(*Edge)

// WithLabel sets the edge label.
func WithLabel(label string) EdgeOption {
	return func(e *Edge) { e.label = label }
}

// WithColor sets the edge color, e.g. "firebrick" or "#7B8894".
func WithColor(color string) EdgeOption {
	return func(e *Edge) { e.color = color }
}

// WithStyle sets the Graphviz edge style, e.g. "dashed" or "bold".
func WithStyle(style string) EdgeOption {
	return func(e *Edge) { e.style = style }
}

// WithEdgeDirection sets which ends carry arrowheads.
func WithEdgeDirection(dir EdgeDirection) EdgeOption {
	return func(e *Edge) { e.direction = dir }
}

// From returns the source node.
func (e *Edge) From() *Node { return e.from }

// To returns the target node.
func (e *Edge) To() *Node { return e.to }

// Label returns the edge label.
func (e *Edge) Label() string { return e.label }

// Color returns the edge color, empty for the default.
func (e *Edge) Color() string { return e.color }

// Style returns the edge style, empty for the default.
func (e *Edge) Style() string { return e.style }

// Direction returns the arrowhead direction.
func (e *Edge) Direction() EdgeDirection { return e.direction }

// String formats the edge as "from -> to".
func (e *Edge) String() string {
	return fmt.Sprintf("%s -> %s", e.from, e.to)
}

// Connect declares an edge from -> to. Both nodes must have been created by
// this diagram.
func (d *Diagram) Connect(from, to *Node, opts ...EdgeOption) (*Edge, error) {
	if d.sealed {
		return nil, errors.New(errors.ErrCodeInvalidInput, "diagram %q is sealed", d.title)
	}
	if from == nil || to == nil {
		return nil, errors.New(errors.ErrCodeInvalidInput, "edge endpoints cannot be nil")
	}
	if !d.Owns(from) {
		return nil, errors.New(errors.ErrCodeForeignNode, "node %s does not belong to diagram %q", from, d.title)
	}
	if !d.Owns(to) {
		return nil, errors.New(errors.ErrCodeForeignNode, "node %s does not belong to diagram %q", to, d.title)
	}

	e := &Edge{from: from, to: to}
	for _, opt := range opts {
		opt(e)
	}
	if err := errors.ValidateLabel(e.label); err != nil {
		return nil, err
	}
	d.edges = append(d.edges, e)
	return e, nil
}

// Chain connects each node to the next: Chain(a, b, c) declares a -> b and
// b -> c. The same options apply to every edge. Nothing is added if any
// pair is invalid.
func (d *Diagram) Chain(nodes []*Node, opts ...EdgeOption) ([]*Edge, error) {
	for i, n := range nodes {
		if n == nil {
			return nil, errors.New(errors.ErrCodeInvalidInput, "chain node %d is nil", i)
		}
		if !d.Owns(n) {
			return nil, errors.New(errors.ErrCodeForeignNode, "node %s does not belong to diagram %q", n, d.title)
		}
	}
	edges := make([]*Edge, 0, max(len(nodes)-1, 0))
	for i := 0; i+1 < len(nodes); i++ {
		e, err := d.Connect(nodes[i], nodes[i+1], opts...)
		if err != nil {
			d.edges = d.edges[:len(d.edges)-len(edges)]
			return nil, err
		}
		edges = append(edges, e)
	}
	return edges, nil
}
