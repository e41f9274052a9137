package io

import (
	"bytes"
	"encoding/json"
	"path/filepath"
	"strings"
	"testing"
)

func TestWriteJSON(t *testing.T) {
	d, err := ReadTOML(strings.NewReader(mountedDisk))
	if err != nil {
		t.Fatal(err)
	}

	var buf bytes.Buffer
	if err := WriteJSON(d, &buf); err != nil {
		t.Fatalf("WriteJSON() error: %v", err)
	}

	var got structure
	if err := json.Unmarshal(buf.Bytes(), &got); err != nil {
		t.Fatalf("invalid JSON: %v", err)
	}
	if got.Title != d.Title() || got.Filename != "tfe_fdo_on_docker_in_mounted_disk_mode" || got.Direction != "TB" {
		t.Errorf("header = %q %q %q", got.Title, got.Filename, got.Direction)
	}
	if len(got.Nodes) != 1 || got.Nodes[0].ID != "client" {
		t.Errorf("root nodes = %+v", got.Nodes)
	}
	if len(got.Clusters) != 1 || got.Clusters[0].Label != "AWS" {
		t.Fatalf("clusters = %+v", got.Clusters)
	}
	subnet := got.Clusters[0].Clusters[0].Clusters[0]
	if subnet.Label != "Public Subnet" || len(subnet.Nodes) != 1 || subnet.Nodes[0].Kind != "aws.compute.EC2" {
		t.Errorf("innermost cluster = %+v", subnet)
	}
	if len(got.Edges) != 2 || got.Edges[1].From != "dns" || got.Edges[1].To != "tfe_instance" {
		t.Errorf("edges = %+v", got.Edges)
	}
}

func TestWriteJSONEmpty(t *testing.T) {
	d, err := ReadTOML(strings.NewReader("[diagram]\ntitle = \"empty\""))
	if err != nil {
		t.Fatal(err)
	}
	var buf bytes.Buffer
	if err := WriteJSON(d, &buf); err != nil {
		t.Fatal(err)
	}
	for _, want := range []string{`"nodes": []`, `"clusters": []`, `"edges": []`} {
		if !strings.Contains(buf.String(), want) {
			t.Errorf("output missing %s:\n%s", want, buf.String())
		}
	}
}

func TestJSONRoundTrip(t *testing.T) {
	orig, err := ReadTOML(strings.NewReader(mountedDisk))
	if err != nil {
		t.Fatal(err)
	}

	path := filepath.Join(t.TempDir(), "structure.json")
	if err := ExportJSON(orig, path); err != nil {
		t.Fatalf("ExportJSON() error: %v", err)
	}
	back, err := ImportJSON(path)
	if err != nil {
		t.Fatalf("ImportJSON() error: %v", err)
	}
	if back.Stats() != orig.Stats() {
		t.Errorf("stats = %+v, want %+v", back.Stats(), orig.Stats())
	}
	if back.Filename() != orig.Filename() {
		t.Errorf("Filename() = %q, want %q", back.Filename(), orig.Filename())
	}

	var a, b bytes.Buffer
	_ = WriteJSON(orig, &a)
	_ = WriteJSON(back, &b)
	if a.String() != b.String() {
		t.Errorf("re-export differs:\n%s\n---\n%s", a.String(), b.String())
	}
}

func TestReadJSONInvalid(t *testing.T) {
	if _, err := ReadJSON(strings.NewReader("{")); err == nil {
		t.Error("ReadJSON() should fail on malformed JSON")
	}
	src := `{"title": "x", "nodes": [{"id": "a", "label": "a"}], "edges": [{"from": "a", "to": "z"}]}`
	if _, err := ReadJSON(strings.NewReader(src)); err == nil {
		t.Error("ReadJSON() should fail on a dangling edge")
	}
}
