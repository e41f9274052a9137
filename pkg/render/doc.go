// Package render turns DOT source into image bytes.
//
// PNG, JPG and SVG are produced in process by Graphviz (via
// [github.com/goccy/go-graphviz], which embeds Graphviz as WebAssembly, so
// no system installation is needed). PDF is produced by converting the SVG
// with the external rsvg-convert tool from librsvg. The DOT format returns
// the source unchanged.
//
//	src, _ := dot.ToDOT(d, dot.Options{})
//	png, err := render.Render(ctx, src, diagram.FormatPNG)
//
// [RenderAll] renders several formats with a single Graphviz instance.
package render
