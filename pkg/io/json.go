package io

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/matzehuels/archdraw/pkg/diagram"
)

type structure struct {
	Title     string        `json:"title"`
	Filename  string        `json:"filename"`
	Direction string        `json:"direction"`
	Nodes     []jsonNode    `json:"nodes"`
	Clusters  []jsonCluster `json:"clusters"`
	Edges     []jsonEdge    `json:"edges"`
}

type jsonNode struct {
	ID    string `json:"id"`
	Label string `json:"label"`
	Kind  string `json:"kind,omitempty"`
}

type jsonCluster struct {
	ID       string        `json:"id"`
	Label    string        `json:"label"`
	Nodes    []jsonNode    `json:"nodes,omitempty"`
	Clusters []jsonCluster `json:"clusters,omitempty"`
}

type jsonEdge struct {
	From      string `json:"from"`
	To        string `json:"to"`
	Label     string `json:"label,omitempty"`
	Color     string `json:"color,omitempty"`
	Style     string `json:"style,omitempty"`
	Direction string `json:"direction,omitempty"`
}

// WriteJSON encodes the structure of d as indented JSON.
func WriteJSON(d *diagram.Diagram, w io.Writer) error {
	def := FromDiagram(d)
	out := structure{
		Title:     def.Diagram.Title,
		Filename:  d.Filename(),
		Direction: def.Diagram.Direction,
		Nodes:     []jsonNode{},
		Clusters:  []jsonCluster{},
		Edges:     make([]jsonEdge, len(def.Edges)),
	}

	byCluster := make(map[string][]jsonNode)
	for _, n := range def.Nodes {
		byCluster[n.Cluster] = append(byCluster[n.Cluster], jsonNode{ID: n.ID, Label: n.Label, Kind: n.Kind})
	}
	children := make(map[string][]ClusterDef)
	for _, c := range def.Clusters {
		children[c.Parent] = append(children[c.Parent], c)
	}
	var nest func(parent string) []jsonCluster
	nest = func(parent string) []jsonCluster {
		var out []jsonCluster
		for _, c := range children[parent] {
			out = append(out, jsonCluster{ID: c.ID, Label: c.Label, Nodes: byCluster[c.ID], Clusters: nest(c.ID)})
		}
		return out
	}
	if root := byCluster[""]; root != nil {
		out.Nodes = root
	}
	if top := nest(""); top != nil {
		out.Clusters = top
	}
	for i, e := range def.Edges {
		out.Edges[i] = jsonEdge(e)
	}

	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(out); err != nil {
		return fmt.Errorf("encode: %w", err)
	}
	return nil
}

// ExportJSON writes the structure of d to a JSON file at path.
func ExportJSON(d *diagram.Diagram, path string) error {
	f, err := create(path)
	if err != nil {
		return err
	}
	defer f.Close()
	return WriteJSON(d, f)
}

// ReadJSON decodes a structure written by [WriteJSON] and builds the
// diagram. It applies the same checks as [ReadTOML]. ReadJSON does not
// close r.
func ReadJSON(r io.Reader, opts ...diagram.Option) (*diagram.Diagram, error) {
	var in structure
	if err := json.NewDecoder(r).Decode(&in); err != nil {
		return nil, fmt.Errorf("decode: %w", err)
	}

	def := Definition{Diagram: Header{Title: in.Title, Direction: in.Direction}}
	if in.Filename != "" && in.Filename != diagram.NormalizeFilename(in.Title) {
		def.Diagram.Filename = in.Filename
	}
	addNodes := func(nodes []jsonNode, cluster string) {
		for _, n := range nodes {
			def.Nodes = append(def.Nodes, NodeDef{ID: n.ID, Kind: n.Kind, Label: n.Label, Cluster: cluster})
		}
	}
	var flatten func(clusters []jsonCluster, parent string)
	flatten = func(clusters []jsonCluster, parent string) {
		for _, c := range clusters {
			def.Clusters = append(def.Clusters, ClusterDef{ID: c.ID, Label: c.Label, Parent: parent})
			addNodes(c.Nodes, c.ID)
			flatten(c.Clusters, c.ID)
		}
	}
	addNodes(in.Nodes, "")
	flatten(in.Clusters, "")
	for _, e := range in.Edges {
		def.Edges = append(def.Edges, EdgeDef(e))
	}
	return def.Build(opts...)
}

// ImportJSON reads a structure file at path and builds the diagram.
func ImportJSON(path string, opts ...diagram.Option) (*diagram.Diagram, error) {
	f, err := open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return ReadJSON(f, opts...)
}
