package io

import (
	"fmt"
	"strings"

	"github.com/matzehuels/archdraw/pkg/diagram"
	"github.com/matzehuels/archdraw/pkg/diagram/nodes"
	"github.com/matzehuels/archdraw/pkg/diagram/nodes/generic"
	"github.com/matzehuels/archdraw/pkg/errors"
)

// Definition is the flat, reference-by-ID form of a diagram shared by the
// TOML and JSON formats.
type Definition struct {
	Diagram  Header       `toml:"diagram"`
	Clusters []ClusterDef `toml:"cluster,omitempty"`
	Nodes    []NodeDef    `toml:"node,omitempty"`
	Edges    []EdgeDef    `toml:"edge,omitempty"`
}

// Header holds diagram-wide settings. Empty fields take the diagram defaults.
type Header struct {
	Title      string   `toml:"title"`
	Filename   string   `toml:"filename,omitempty"`
	Direction  string   `toml:"direction,omitempty"`
	CurveStyle string   `toml:"curve,omitempty"`
	Formats    []string `toml:"formats,omitempty"`
	Show       bool     `toml:"show,omitempty"`
	Strict     bool     `toml:"strict,omitempty"`
	Autolabel  bool     `toml:"autolabel,omitempty"`
}

// ClusterDef declares a cluster. An empty Parent places it at the top level.
type ClusterDef struct {
	ID     string `toml:"id"`
	Label  string `toml:"label"`
	Parent string `toml:"parent,omitempty"`
}

// NodeDef declares a node. An empty Cluster places it at the top level.
type NodeDef struct {
	ID      string `toml:"id"`
	Kind    string `toml:"kind,omitempty"`
	Label   string `toml:"label"`
	Cluster string `toml:"cluster,omitempty"`
}

// EdgeDef declares an edge between two node IDs.
type EdgeDef struct {
	From      string `toml:"from"`
	To        string `toml:"to"`
	Label     string `toml:"label,omitempty"`
	Color     string `toml:"color,omitempty"`
	Style     string `toml:"style,omitempty"`
	Direction string `toml:"direction,omitempty"`
}

func invalid(format string, args ...any) error {
	return errors.New(errors.ErrCodeInvalidDefinition, format, args...)
}

// options converts the header into diagram options.
func (h Header) options() ([]diagram.Option, error) {
	var opts []diagram.Option
	if h.Direction != "" {
		dir, err := diagram.ParseDirection(h.Direction)
		if err != nil {
			return nil, err
		}
		opts = append(opts, diagram.WithDirection(dir))
	}
	if h.CurveStyle != "" {
		c, err := diagram.ParseCurveStyle(h.CurveStyle)
		if err != nil {
			return nil, err
		}
		opts = append(opts, diagram.WithCurveStyle(c))
	}
	if len(h.Formats) > 0 {
		formats, err := diagram.ParseFormats(strings.Join(h.Formats, ","))
		if err != nil {
			return nil, err
		}
		opts = append(opts, diagram.WithFormats(formats...))
	}
	if h.Filename != "" {
		opts = append(opts, diagram.WithFilename(h.Filename))
	}
	return append(opts,
		diagram.WithShow(h.Show),
		diagram.WithStrict(h.Strict),
		diagram.WithAutolabel(h.Autolabel),
	), nil
}

// Build checks the definition and declares it as a new diagram. Options
// are applied after the header's, so callers can override any setting.
func (def Definition) Build(opts ...diagram.Option) (*diagram.Diagram, error) {
	if strings.TrimSpace(def.Diagram.Title) == "" {
		return nil, invalid("diagram title is required")
	}
	base, err := def.Diagram.options()
	if err != nil {
		return nil, err
	}

	clusters, children, err := def.clusterTree()
	if err != nil {
		return nil, err
	}
	members, kinds, err := def.nodeKinds(clusters)
	if err != nil {
		return nil, err
	}

	d, err := diagram.New(def.Diagram.Title, append(base, opts...)...)
	if err != nil {
		return nil, err
	}

	built := make(map[string]*diagram.Node, len(def.Nodes))
	declare := func(s diagram.Scope, clusterID string) {
		for _, i := range members[clusterID] {
			n := def.Nodes[i]
			built[n.ID] = s.Node(kinds[i], n.Label)
		}
	}
	var open func(s diagram.Scope, parentID string)
	open = func(s diagram.Scope, parentID string) {
		for _, i := range children[parentID] {
			c := def.Clusters[i]
			s.Cluster(c.Label, func(inner *diagram.Cluster) {
				declare(inner, c.ID)
				open(inner, c.ID)
			})
		}
	}
	declare(d, "")
	open(d, "")
	if err := d.Err(); err != nil {
		return nil, err
	}

	for i, e := range def.Edges {
		from, to := built[e.From], built[e.To]
		if from == nil {
			return nil, invalid("edge %d: unknown node %q", i+1, e.From)
		}
		if to == nil {
			return nil, invalid("edge %d: unknown node %q", i+1, e.To)
		}
		dir, err := diagram.ParseEdgeDirection(e.Direction)
		if err != nil {
			return nil, fmt.Errorf("edge %s -> %s: %w", e.From, e.To, err)
		}
		if _, err := d.Connect(from, to,
			diagram.WithLabel(e.Label),
			diagram.WithColor(e.Color),
			diagram.WithStyle(e.Style),
			diagram.WithEdgeDirection(dir),
		); err != nil {
			return nil, fmt.Errorf("edge %s -> %s: %w", e.From, e.To, err)
		}
	}
	return d, d.Validate()
}

// clusterTree indexes clusters by ID and groups child indices by parent ID
// ("" for the top level), rejecting duplicates, dangling parents and cycles.
func (def Definition) clusterTree() (map[string]ClusterDef, map[string][]int, error) {
	byID := make(map[string]ClusterDef, len(def.Clusters))
	children := make(map[string][]int)
	for i, c := range def.Clusters {
		if c.ID == "" {
			return nil, nil, invalid("cluster %d: id is required", i+1)
		}
		if _, dup := byID[c.ID]; dup {
			return nil, nil, invalid("duplicate cluster id %q", c.ID)
		}
		byID[c.ID] = c
		children[c.Parent] = append(children[c.Parent], i)
	}
	for _, c := range def.Clusters {
		seen := map[string]bool{c.ID: true}
		for p := c.Parent; p != ""; p = byID[p].Parent {
			if _, ok := byID[p]; !ok {
				return nil, nil, invalid("cluster %q: unknown parent %q", c.ID, p)
			}
			if seen[p] {
				return nil, nil, invalid("cluster %q: parent cycle through %q", c.ID, p)
			}
			seen[p] = true
		}
	}
	return byID, children, nil
}

// nodeKinds groups node indices by cluster ID and resolves each node's kind.
func (def Definition) nodeKinds(clusters map[string]ClusterDef) (map[string][]int, []diagram.Kind, error) {
	members := make(map[string][]int)
	kinds := make([]diagram.Kind, len(def.Nodes))
	seen := make(map[string]bool, len(def.Nodes))
	for i, n := range def.Nodes {
		if n.ID == "" {
			return nil, nil, invalid("node %d: id is required", i+1)
		}
		if seen[n.ID] {
			return nil, nil, invalid("duplicate node id %q", n.ID)
		}
		seen[n.ID] = true
		if _, ok := clusters[n.Cluster]; n.Cluster != "" && !ok {
			return nil, nil, invalid("node %q: unknown cluster %q", n.ID, n.Cluster)
		}

		kinds[i] = generic.Blank
		if n.Kind != "" {
			k, err := nodes.Lookup(n.Kind)
			if err != nil {
				return nil, nil, fmt.Errorf("node %q: %w", n.ID, err)
			}
			kinds[i] = k
		}
		members[n.Cluster] = append(members[n.Cluster], i)
	}
	return members, kinds, nil
}

// FromDiagram converts a diagram to its definition. IDs are derived from
// labels and made unique with a numeric suffix.
func FromDiagram(d *diagram.Diagram) Definition {
	formats := make([]string, 0, len(d.Formats()))
	for _, f := range d.Formats() {
		formats = append(formats, string(f))
	}
	def := Definition{Diagram: Header{
		Title:      d.Title(),
		Direction:  string(d.Direction()),
		CurveStyle: string(d.CurveStyle()),
		Formats:    formats,
		Show:       d.Show(),
		Strict:     d.Strict(),
		Autolabel:  d.Autolabel(),
	}}
	if d.Filename() != diagram.NormalizeFilename(d.Title()) {
		def.Diagram.Filename = d.Filename()
	}

	ids := newIDs()
	clusterIDs := make(map[*diagram.Cluster]string)
	for _, c := range d.Clusters() {
		id := ids.next(c.Label())
		clusterIDs[c] = id
		def.Clusters = append(def.Clusters, ClusterDef{ID: id, Label: c.Label(), Parent: clusterIDs[c.Parent()]})
	}
	nodeIDs := make(map[*diagram.Node]string)
	for _, n := range d.Nodes() {
		id := ids.next(n.Label())
		nodeIDs[n] = id
		nd := NodeDef{ID: id, Label: n.Label(), Cluster: clusterIDs[n.Cluster()]}
		if !n.Kind().IsZero() {
			nd.Kind = n.Kind().Key()
		}
		def.Nodes = append(def.Nodes, nd)
	}
	for _, e := range d.Edges() {
		ed := EdgeDef{From: nodeIDs[e.From()], To: nodeIDs[e.To()], Label: e.Label(), Color: e.Color(), Style: e.Style()}
		if e.Direction() != diagram.Forward {
			ed.Direction = e.Direction().String()
		}
		def.Edges = append(def.Edges, ed)
	}
	return def
}

type idSet map[string]bool

func newIDs() idSet { return idSet{} }

func (s idSet) next(label string) string {
	base := diagram.NormalizeFilename(label)
	if base == diagram.DefaultFilename {
		base = "item"
	}
	id := base
	for i := 2; s[id]; i++ {
		id = fmt.Sprintf("%s_%d", base, i)
	}
	s[id] = true
	return id
}
