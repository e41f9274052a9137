package render

import (
	"bytes"
	"context"
	"fmt"
	"regexp"
	"strconv"

	"github.com/goccy/go-graphviz"

	"github.com/matzehuels/archdraw/pkg/diagram"
	"github.com/matzehuels/archdraw/pkg/errors"
)

// Render renders DOT source to the given format.
func Render(ctx context.Context, dot string, format diagram.Format) ([]byte, error) {
	out, err := RenderAll(ctx, dot, []diagram.Format{format})
	if err != nil {
		return nil, err
	}
	return out[format], nil
}

// RenderAll renders DOT source to every requested format. The source is
// parsed once per format by a shared Graphviz instance.
func RenderAll(ctx context.Context, dot string, formats []diagram.Format) (map[diagram.Format][]byte, error) {
	out := make(map[diagram.Format][]byte, len(formats))
	var r *renderer
	defer func() {
		if r != nil {
			r.close()
		}
	}()

	for _, f := range formats {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		if f == diagram.FormatDOT {
			out[f] = []byte(dot)
			continue
		}
		if !f.Valid() {
			return nil, errors.New(errors.ErrCodeInvalidFormat, "invalid format: %q", f)
		}
		if r == nil {
			var err error
			if r, err = newRenderer(ctx); err != nil {
				return nil, err
			}
		}

		data, err := r.render(ctx, dot, f)
		if err != nil {
			return nil, errors.Wrap(errors.ErrCodeRender, err, "render %s", f)
		}
		out[f] = data
	}
	return out, nil
}

type renderer struct {
	gv *graphviz.Graphviz
}

func newRenderer(ctx context.Context) (*renderer, error) {
	gv, err := graphviz.New(ctx)
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeRender, err, "init graphviz")
	}
	return &renderer{gv: gv}, nil
}

func (r *renderer) close() { _ = r.gv.Close() }

func (r *renderer) render(ctx context.Context, dot string, f diagram.Format) ([]byte, error) {
	switch f {
	case diagram.FormatPDF:
		svg, err := r.graphviz(ctx, dot, graphviz.SVG)
		if err != nil {
			return nil, err
		}
		return ToPDF(svg)
	case diagram.FormatSVG:
		svg, err := r.graphviz(ctx, dot, graphviz.SVG)
		if err != nil {
			return nil, err
		}
		return normalizeViewBox(svg), nil
	case diagram.FormatPNG:
		return r.graphviz(ctx, dot, graphviz.PNG)
	case diagram.FormatJPG:
		return r.graphviz(ctx, dot, graphviz.JPG)
	}
	return nil, errors.New(errors.ErrCodeUnsupported, "unsupported format: %s", f)
}

func (r *renderer) graphviz(ctx context.Context, dot string, f graphviz.Format) ([]byte, error) {
	g, err := graphviz.ParseBytes([]byte(dot))
	if err != nil {
		return nil, fmt.Errorf("parse DOT: %w", err)
	}
	defer g.Close()

	var buf bytes.Buffer
	if err := r.gv.Render(ctx, g, f, &buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

var (
	svgTagRe  = regexp.MustCompile(`<svg[^>]*>`)
	viewBoxRe = regexp.MustCompile(`viewBox="([0-9.]+)\s+([0-9.]+)\s+([0-9.]+)\s+([0-9.]+)"`)
)

// normalizeViewBox rewrites the root tag so the SVG scales from a zero
// origin with pixel width and height matching the view box.
func normalizeViewBox(svg []byte) []byte {
	match := viewBoxRe.FindSubmatch(svg)
	if match == nil {
		return svg
	}

	w, _ := strconv.ParseFloat(string(match[3]), 64)
	h, _ := strconv.ParseFloat(string(match[4]), 64)
	if w == 0 || h == 0 {
		return svg
	}

	tag := fmt.Sprintf(`<svg xmlns="http://www.w3.org/2000/svg" xmlns:xlink="http://www.w3.org/1999/xlink" viewBox="0 0 %.2f %.2f" width="%.0f" height="%.0f">`,
		w, h, w, h)
	return svgTagRe.ReplaceAll(svg, []byte(tag))
}
