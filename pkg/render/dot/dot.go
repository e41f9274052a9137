package dot

import (
	"fmt"
	"os"
	"path/filepath"
	"slices"
	"strings"

	"github.com/matzehuels/archdraw/pkg/diagram"
	"github.com/matzehuels/archdraw/pkg/errors"
)

// Options configures DOT generation.
type Options struct {
	// IconDir enables icon mode: each node is drawn with the image at
	// IconDir/<kind icon path>. Every referenced icon must exist.
	// When empty, nodes are drawn as filled shapes.
	IconDir string
}

// clusterColors are cycled by nesting depth, outermost first.
var clusterColors = []string{"#E5F5FD", "#EBF3E7", "#ECE8F6", "#FDF7E3"}

// attr is one key/value pair. Ordered slices keep the output stable.
type attr struct{ key, value string }

type attrs []attr

func (a attrs) with(overrides diagram.Attrs) attrs {
	out := slices.Clone(a)
	for i, kv := range out {
		if v, ok := overrides[kv.key]; ok {
			out[i].value = v
		}
	}
	var extra []string
	for k := range overrides {
		if !slices.ContainsFunc(out, func(kv attr) bool { return kv.key == k }) {
			extra = append(extra, k)
		}
	}
	slices.Sort(extra)
	for _, k := range extra {
		out = append(out, attr{k, overrides[k]})
	}
	return out
}

func (a attrs) String() string {
	parts := make([]string, len(a))
	for i, kv := range a {
		parts[i] = kv.key + "=" + quote(kv.value)
	}
	return strings.Join(parts, ", ")
}

// dotEscaper escapes what a DOT double-quoted string cannot hold verbatim.
// Graphviz reads "\n" as a centered line break; every other rune is kept
// as UTF-8.
var dotEscaper = strings.NewReplacer(`\`, `\\`, `"`, `\"`, "\n", `\n`)

// quote returns s as a DOT double-quoted string.
func quote(s string) string {
	return `"` + dotEscaper.Replace(s) + `"`
}

func graphDefaults(d *diagram.Diagram) attrs {
	return attrs{
		{"label", d.Title()},
		{"rankdir", string(d.Direction())},
		{"splines", string(d.CurveStyle())},
		{"pad", "2.0"},
		{"nodesep", "0.60"},
		{"ranksep", "0.75"},
		{"fontname", "Sans-Serif"},
		{"fontsize", "15"},
		{"fontcolor", "#2D3436"},
	}
}

func nodeDefaults(icons bool) attrs {
	if icons {
		return attrs{
			{"shape", "box"},
			{"style", "rounded"},
			{"fixedsize", "true"},
			{"width", "1.4"},
			{"height", "1.4"},
			{"labelloc", "b"},
			{"imagescale", "true"},
			{"fontname", "Sans-Serif"},
			{"fontsize", "13"},
			{"fontcolor", "#2D3436"},
		}
	}
	return attrs{
		{"shape", "box"},
		{"style", "rounded,filled"},
		{"fillcolor", "white"},
		{"width", "1.4"},
		{"height", "0.6"},
		{"margin", "0.2,0.1"},
		{"fontname", "Sans-Serif"},
		{"fontsize", "13"},
		{"fontcolor", "#2D3436"},
	}
}

func edgeDefaults() attrs {
	return attrs{{"color", "#7B8894"}}
}

func clusterAttrs(c *diagram.Cluster) attrs {
	return attrs{
		{"label", c.Label()},
		{"shape", "box"},
		{"style", "rounded"},
		{"labeljust", "l"},
		{"pencolor", "#AEB6BE"},
		{"bgcolor", clusterColors[(c.Depth()-1)%len(clusterColors)]},
		{"fontname", "Sans-Serif"},
		{"fontsize", "12"},
	}.with(c.GraphAttr())
}

// ToDOT serializes d as Graphviz DOT source.
//
// Clusters become "cluster_"-prefixed subgraphs nested the same way they were
// declared, so Graphviz draws them as boxes. Node and edge order follows
// declaration order. With [Options.IconDir] set, a missing icon file fails
// with an ErrCodeIconNotFound error.
func ToDOT(d *diagram.Diagram, opts Options) (string, error) {
	if err := d.Validate(); err != nil {
		return "", err
	}

	w := &writer{opts: opts, icons: opts.IconDir != ""}
	if d.Strict() {
		w.line(0, "strict digraph %s {", quote(d.Title()))
	} else {
		w.line(0, "digraph %s {", quote(d.Title()))
	}
	w.line(1, "graph [%s];", graphDefaults(d).with(d.GraphAttr()))
	w.line(1, "node [%s];", nodeDefaults(w.icons).with(d.NodeAttr()))
	w.line(1, "edge [%s];", edgeDefaults().with(d.EdgeAttr()))

	if len(d.RootNodes()) > 0 {
		w.blank()
	}
	for _, n := range d.RootNodes() {
		if err := w.node(1, n); err != nil {
			return "", err
		}
	}
	for _, c := range d.RootClusters() {
		w.blank()
		if err := w.cluster(1, c); err != nil {
			return "", err
		}
	}

	if len(d.Edges()) > 0 {
		w.blank()
	}
	for _, e := range d.Edges() {
		w.line(1, "%s -> %s [%s];", quote(e.From().ID()), quote(e.To().ID()), edgeAttrs(d, e))
	}
	w.line(0, "}")
	return w.buf.String(), nil
}

type writer struct {
	buf   strings.Builder
	opts  Options
	icons bool
}

func (w *writer) line(depth int, format string, args ...any) {
	w.buf.WriteString(strings.Repeat("  ", depth))
	fmt.Fprintf(&w.buf, format, args...)
	w.buf.WriteByte('\n')
}

func (w *writer) blank() { w.buf.WriteByte('\n') }

func (w *writer) cluster(depth int, c *diagram.Cluster) error {
	w.line(depth, "subgraph %s {", quote("cluster_"+c.ID()))
	w.line(depth+1, "graph [%s];", clusterAttrs(c))
	for _, n := range c.Nodes() {
		if err := w.node(depth+1, n); err != nil {
			return err
		}
	}
	for _, child := range c.Clusters() {
		if err := w.cluster(depth+1, child); err != nil {
			return err
		}
	}
	w.line(depth, "}")
	return nil
}

func (w *writer) node(depth int, n *diagram.Node) error {
	a, err := w.nodeAttrs(n)
	if err != nil {
		return err
	}
	w.line(depth, "%s [%s];", quote(n.ID()), a)
	return nil
}

func (w *writer) nodeAttrs(n *diagram.Node) (attrs, error) {
	label := n.DisplayLabel()
	a := attrs{{"label", label}}
	k := n.Kind()

	if w.icons {
		icon := filepath.Join(w.opts.IconDir, filepath.FromSlash(k.IconPath()))
		if _, err := os.Stat(icon); err != nil {
			return nil, errors.Wrap(errors.ErrCodeIconNotFound, err, "icon for %s (%s)", n, k.Key())
		}
		a = append(a, attr{"image", icon})
		// Each extra label line needs room below the icon.
		if lines := strings.Count(label, "\n"); lines > 0 {
			a = append(a, attr{"height", fmt.Sprintf("%.1f", 1.4+0.4*float64(lines))})
		}
		return a, nil
	}

	if k.Shape != "" && k.Shape != "box" {
		a = append(a, attr{"shape", k.Shape})
	}
	if k.FillColor != "" {
		a = append(a, attr{"fillcolor", k.FillColor})
	}
	if k.Name != "" {
		a = append(a, attr{"tooltip", k.Key()})
	}
	return a, nil
}

func edgeAttrs(d *diagram.Diagram, e *diagram.Edge) attrs {
	a := attrs{{"dir", e.Direction().DOT()}}
	if e.Label() != "" {
		// Orthogonal routing cannot place regular edge labels.
		key := "label"
		if d.CurveStyle() == diagram.Ortho {
			key = "xlabel"
		}
		a = append(a, attr{key, e.Label()})
	}
	if e.Color() != "" {
		a = append(a, attr{"color", e.Color()})
	}
	if e.Style() != "" {
		a = append(a, attr{"style", e.Style()})
	}
	return a
}
