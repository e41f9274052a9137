package dot

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/matzehuels/archdraw/pkg/diagram"
	"github.com/matzehuels/archdraw/pkg/diagram/nodes/aws"
	"github.com/matzehuels/archdraw/pkg/errors"
)

func sample(t *testing.T, opts ...diagram.Option) *diagram.Diagram {
	t.Helper()
	opts = append([]diagram.Option{diagram.WithIDGenerator(diagram.SequentialIDs())}, opts...)
	d, err := diagram.New("Sample", opts...)
	if err != nil {
		t.Fatal(err)
	}
	client := d.Node(aws.Client, "Client")
	var dns, db *diagram.Node
	d.Cluster("AWS", func(c *diagram.Cluster) {
		dns = c.Node(aws.Route53, "DNS")
		c.Cluster("VPC", func(vpc *diagram.Cluster) {
			db = vpc.Node(aws.RDS, "db")
		})
	})
	if _, err := d.Chain([]*diagram.Node{client, dns, db}); err != nil {
		t.Fatal(err)
	}
	return d
}

func TestToDOT_Basic(t *testing.T) {
	out, err := ToDOT(sample(t), Options{})
	if err != nil {
		t.Fatalf("ToDOT() error: %v", err)
	}

	for _, want := range []string{
		`digraph "Sample" {`,
		`label="Sample"`,
		`rankdir="TB"`,
		`splines="ortho"`,
		`subgraph "cluster_cluster1" {`,
		`subgraph "cluster_cluster2" {`,
		`"node1" [label="Client"`,
		`"node1" -> "node2" [dir="forward"];`,
		`"node2" -> "node3" [dir="forward"];`,
		`color="#7B8894"`,
	} {
		if !strings.Contains(out, want) {
			t.Errorf("ToDOT() output missing %s\n%s", want, out)
		}
	}
	if strings.HasPrefix(out, "strict") {
		t.Error("ToDOT() should not be strict by default")
	}
}

func TestToDOT_ClusterNesting(t *testing.T) {
	out, err := ToDOT(sample(t), Options{})
	if err != nil {
		t.Fatal(err)
	}

	outer := strings.Index(out, `subgraph "cluster_cluster1"`)
	inner := strings.Index(out, `subgraph "cluster_cluster2"`)
	db := strings.Index(out, `"node3" [`)
	if outer < 0 || inner < outer || db < inner {
		t.Errorf("nesting order wrong: outer=%d inner=%d db=%d", outer, inner, db)
	}
	if !strings.Contains(out, `bgcolor="#E5F5FD"`) || !strings.Contains(out, `bgcolor="#EBF3E7"`) {
		t.Error("clusters should be colored by depth")
	}
	if !strings.Contains(out, `shape="cylinder"`) {
		t.Error("kind shape not applied to RDS node")
	}
}

func TestToDOT_Options(t *testing.T) {
	d := sample(t,
		diagram.WithStrict(true),
		diagram.WithDirection(diagram.LeftToRight),
		diagram.WithCurveStyle(diagram.Curved),
		diagram.WithGraphAttr("bgcolor", "transparent"),
		diagram.WithGraphAttr("pad", "0.5"),
		diagram.WithNodeAttr("fontsize", "10"),
	)
	out, err := ToDOT(d, Options{})
	if err != nil {
		t.Fatal(err)
	}

	for _, want := range []string{
		`strict digraph "Sample"`,
		`rankdir="LR"`,
		`splines="curved"`,
		`pad="0.5"`,
		`bgcolor="transparent"`,
		`fontsize="10"`,
	} {
		if !strings.Contains(out, want) {
			t.Errorf("ToDOT() output missing %s", want)
		}
	}
	if strings.Contains(out, `pad="2.0"`) {
		t.Error("override should replace default pad")
	}
}

func TestToDOT_EdgeAttributes(t *testing.T) {
	d, _ := diagram.New("edges", diagram.WithIDGenerator(diagram.SequentialIDs()))
	a := d.Node(aws.Client, "a")
	b := d.Node(aws.EC2, "b")
	if _, err := d.Connect(a, b,
		diagram.WithLabel("443"),
		diagram.WithColor("firebrick"),
		diagram.WithStyle("dashed"),
		diagram.WithEdgeDirection(diagram.Both),
	); err != nil {
		t.Fatal(err)
	}

	out, err := ToDOT(d, Options{})
	if err != nil {
		t.Fatal(err)
	}
	want := `"node1" -> "node2" [dir="both", xlabel="443", color="firebrick", style="dashed"];`
	if !strings.Contains(out, want) {
		t.Errorf("ToDOT() missing %s\n%s", want, out)
	}
}

func TestToDOT_MultilineLabel(t *testing.T) {
	d, _ := diagram.New("ml", diagram.WithAutolabel(true), diagram.WithIDGenerator(diagram.SequentialIDs()))
	d.Node(aws.EC2, "TFE instance")

	out, err := ToDOT(d, Options{})
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(out, `label="EC2\nTFE instance"`) {
		t.Errorf("autolabel not applied:\n%s", out)
	}
}

func TestToDOT_Icons(t *testing.T) {
	dir := t.TempDir()
	for _, k := range []diagram.Kind{aws.Client, aws.Route53, aws.RDS} {
		path := filepath.Join(dir, filepath.FromSlash(k.IconPath()))
		if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
			t.Fatal(err)
		}
		if err := os.WriteFile(path, []byte("png"), 0644); err != nil {
			t.Fatal(err)
		}
	}

	out, err := ToDOT(sample(t), Options{IconDir: dir})
	if err != nil {
		t.Fatalf("ToDOT() error: %v", err)
	}
	if !strings.Contains(out, `fixedsize="true"`) || !strings.Contains(out, `labelloc="b"`) {
		t.Error("icon mode should use fixed-size node defaults")
	}
	if !strings.Contains(out, "route53.png") {
		t.Error("icon path missing from output")
	}
}

func TestToDOT_MissingIcon(t *testing.T) {
	_, err := ToDOT(sample(t), Options{IconDir: t.TempDir()})
	if !errors.Is(err, errors.ErrCodeIconNotFound) {
		t.Errorf("ToDOT() error = %v, want %s", err, errors.ErrCodeIconNotFound)
	}
}

func TestToDOT_InvalidDiagram(t *testing.T) {
	d, _ := diagram.New("bad")
	d.Node(aws.EC2, "bad\x01")
	if _, err := ToDOT(d, Options{}); !errors.Is(err, errors.ErrCodeInvalidLabel) {
		t.Errorf("ToDOT() error = %v, want %s", err, errors.ErrCodeInvalidLabel)
	}
}

func TestToDOT_Deterministic(t *testing.T) {
	first, _ := ToDOT(sample(t, diagram.WithGraphAttr("b", "1"), diagram.WithGraphAttr("a", "2")), Options{})
	second, _ := ToDOT(sample(t, diagram.WithGraphAttr("a", "2"), diagram.WithGraphAttr("b", "1")), Options{})
	if first != second {
		t.Error("ToDOT() output should not depend on override order")
	}
}

func TestQuote(t *testing.T) {
	tests := []struct {
		in, want string
	}{
		{"plain", `"plain"`},
		{`say "hi"`, `"say \"hi\""`},
		{`C:\icons`, `"C:\\icons"`},
		{"EC2\nTFE instance", `"EC2\nTFE instance"`},
		{"zero\u200bwidth", "\"zero\u200bwidth\""},
		{"\ufeffbom", "\"\ufeffbom\""},
		{"Zürich", `"Zürich"`},
	}
	for _, tt := range tests {
		if got := quote(tt.in); got != tt.want {
			t.Errorf("quote(%q) = %s, want %s", tt.in, got, tt.want)
		}
	}
}

func TestToDOTKeepsInvisibleRunes(t *testing.T) {
	d, err := diagram.New("Edge\u200bcase", diagram.WithIDGenerator(diagram.SequentialIDs()))
	if err != nil {
		t.Fatal(err)
	}
	d.Node(aws.EC2, "web\ufeff")
	out, err := ToDOT(d, Options{})
	if err != nil {
		t.Fatal(err)
	}
	if strings.Contains(out, `\u200b`) || strings.Contains(out, `\ufeff`) {
		t.Errorf("DOT should carry the runes as UTF-8, not Go escapes:\n%s", out)
	}
	if !strings.Contains(out, "digraph \"Edge\u200bcase\"") || !strings.Contains(out, "label=\"web\ufeff\"") {
		t.Errorf("missing raw labels:\n%s", out)
	}
}
