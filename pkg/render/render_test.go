package render

import (
	"bytes"
	"context"
	"strings"
	"testing"

	"github.com/matzehuels/archdraw/pkg/diagram"
	"github.com/matzehuels/archdraw/pkg/errors"
)

const simpleDOT = `digraph G { a -> b; }`

func TestRenderDOTPassthrough(t *testing.T) {
	out, err := Render(context.Background(), simpleDOT, diagram.FormatDOT)
	if err != nil {
		t.Fatalf("Render(dot) error: %v", err)
	}
	if string(out) != simpleDOT {
		t.Errorf("Render(dot) = %q, want source unchanged", out)
	}
}

func TestRenderSVG(t *testing.T) {
	svg, err := Render(context.Background(), simpleDOT, diagram.FormatSVG)
	if err != nil {
		t.Fatalf("Render(svg) error: %v", err)
	}
	if !strings.Contains(string(svg), "<svg") {
		t.Error("Render(svg) output missing <svg> tag")
	}
	if !strings.Contains(string(svg), `viewBox="0 0 `) {
		t.Error("Render(svg) should normalize the view box origin")
	}
}

func TestRenderPNG(t *testing.T) {
	png, err := Render(context.Background(), simpleDOT, diagram.FormatPNG)
	if err != nil {
		t.Fatalf("Render(png) error: %v", err)
	}
	if !bytes.HasPrefix(png, []byte("\x89PNG")) {
		t.Error("Render(png) output is not a PNG")
	}
}

func TestRenderAll(t *testing.T) {
	out, err := RenderAll(context.Background(), simpleDOT, []diagram.Format{diagram.FormatSVG, diagram.FormatDOT})
	if err != nil {
		t.Fatalf("RenderAll() error: %v", err)
	}
	if len(out) != 2 {
		t.Errorf("RenderAll() returned %d artifacts, want 2", len(out))
	}
}

func TestRenderInvalidDOT(t *testing.T) {
	_, err := Render(context.Background(), "this is not dot {", diagram.FormatSVG)
	if !errors.Is(err, errors.ErrCodeRender) {
		t.Errorf("Render(invalid) error = %v, want %s", err, errors.ErrCodeRender)
	}
}

func TestRenderInvalidFormat(t *testing.T) {
	_, err := Render(context.Background(), simpleDOT, diagram.Format("gif"))
	if !errors.Is(err, errors.ErrCodeInvalidFormat) {
		t.Errorf("Render(gif) error = %v, want %s", err, errors.ErrCodeInvalidFormat)
	}
}

func TestRenderPDF(t *testing.T) {
	if !HasRSVG() {
		t.Skip("rsvg-convert not installed")
	}
	pdf, err := Render(context.Background(), simpleDOT, diagram.FormatPDF)
	if err != nil {
		t.Fatalf("Render(pdf) error: %v", err)
	}
	if !bytes.HasPrefix(pdf, []byte("%PDF")) {
		t.Error("Render(pdf) output is not a PDF")
	}
}

func TestRenderPDFWithoutRSVG(t *testing.T) {
	t.Setenv("PATH", t.TempDir())
	if HasRSVG() {
		t.Fatal("HasRSVG() = true with an empty PATH")
	}
	_, err := Render(context.Background(), simpleDOT, diagram.FormatPDF)
	if !errors.Is(err, errors.ErrCodeRender) {
		t.Fatalf("Render(pdf) error = %v, want %s", err, errors.ErrCodeRender)
	}
	if !strings.Contains(err.Error(), "librsvg") {
		t.Errorf("error should name the missing tool: %v", err)
	}
}

func TestRendererUnsupportedFormat(t *testing.T) {
	ctx := context.Background()
	r, err := newRenderer(ctx)
	if err != nil {
		t.Fatal(err)
	}
	defer r.close()
	if _, err := r.render(ctx, simpleDOT, diagram.Format("gif")); !errors.Is(err, errors.ErrCodeUnsupported) {
		t.Errorf("render(gif) error = %v, want %s", err, errors.ErrCodeUnsupported)
	}
}

func TestRenderCanceled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	if _, err := Render(ctx, simpleDOT, diagram.FormatSVG); err != context.Canceled {
		t.Errorf("Render(canceled) error = %v, want context.Canceled", err)
	}
}

func TestNormalizeViewBox(t *testing.T) {
	in := []byte(`<svg width="62pt" height="116pt" viewBox="0.00 0.00 62.00 116.00" xmlns="http://www.w3.org/2000/svg"><g/></svg>`)
	out := string(normalizeViewBox(in))
	if !strings.Contains(out, `viewBox="0 0 62.00 116.00" width="62" height="116"`) {
		t.Errorf("normalizeViewBox() = %s", out)
	}

	noBox := []byte(`<svg><g/></svg>`)
	if string(normalizeViewBox(noBox)) != string(noBox) {
		t.Error("normalizeViewBox() should leave SVG without viewBox unchanged")
	}
}
