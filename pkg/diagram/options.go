package diagram

import (
	"strings"

	"github.com/matzehuels/archdraw/pkg/errors"
)

// Direction is the rank direction of the laid-out diagram.
type Direction string

// Supported directions. The zero value is treated as [TopToBottom].
const (
	TopToBottom Direction = "TB"
	BottomToTop Direction = "BT"
	LeftToRight Direction = "LR"
	RightToLeft Direction = "RL"
)

var directionAliases = map[string]Direction{
	"tb": TopToBottom, "top-to-bottom": TopToBottom,
	"bt": BottomToTop, "bottom-to-top": BottomToTop,
	"lr": LeftToRight, "left-to-right": LeftToRight,
	"rl": RightToLeft, "right-to-left": RightToLeft,
}

// ParseDirection accepts the Graphviz rankdir codes (case-insensitive) and
// their spelled-out forms such as "top-to-bottom".
func ParseDirection(s string) (Direction, error) {
	if d, ok := directionAliases[strings.ToLower(strings.TrimSpace(s))]; ok {
		return d, nil
	}
	return "", errors.New(errors.ErrCodeInvalidDirection, "invalid direction: %q (must be TB, BT, LR or RL)", s)
}

// Valid reports whether d is one of the supported directions.
func (d Direction) Valid() bool {
	switch d {
	case TopToBottom, BottomToTop, LeftToRight, RightToLeft:
		return true
	}
	return false
}

// CurveStyle controls how edges are routed.
type CurveStyle string

// Supported curve styles. The zero value is treated as [Ortho].
const (
	Ortho    CurveStyle = "ortho"
	Curved   CurveStyle = "curved"
	Spline   CurveStyle = "spline"
	Polyline CurveStyle = "polyline"
)

// ParseCurveStyle parses a curve style name (case-insensitive).
func ParseCurveStyle(s string) (CurveStyle, error) {
	c := CurveStyle(strings.ToLower(strings.TrimSpace(s)))
	if !c.Valid() {
		return "", errors.New(errors.ErrCodeInvalidCurveStyle, "invalid curve style: %q (must be ortho, curved, spline or polyline)", s)
	}
	return c, nil
}

// Valid reports whether c is one of the supported curve styles.
func (c CurveStyle) Valid() bool {
	switch c {
	case Ortho, Curved, Spline, Polyline:
		return true
	}
	return false
}

// Format is an output file format.
type Format string

// Supported output formats.
const (
	FormatPNG Format = "png"
	FormatJPG Format = "jpg"
	FormatSVG Format = "svg"
	FormatPDF Format = "pdf"
	FormatDOT Format = "dot"
)

// Ext returns the file extension for f, without the leading dot.
func (f Format) Ext() string { return string(f) }

// Valid reports whether f is a supported output format.
func (f Format) Valid() bool {
	switch f {
	case FormatPNG, FormatJPG, FormatSVG, FormatPDF, FormatDOT:
		return true
	}
	return false
}

// ParseFormat parses a single format name. "jpeg" is accepted as "jpg".
func ParseFormat(s string) (Format, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	if s == "jpeg" {
		s = "jpg"
	}
	f := Format(s)
	if !f.Valid() {
		return "", errors.New(errors.ErrCodeInvalidFormat, "invalid format: %q (must be png, jpg, svg, pdf or dot)", s)
	}
	return f, nil
}

// ParseFormats parses a comma-separated list of formats, dropping duplicates.
// An empty string yields the default of a single PNG.
func ParseFormats(s string) ([]Format, error) {
	if strings.TrimSpace(s) == "" {
		return []Format{FormatPNG}, nil
	}
	var out []Format
	seen := make(map[Format]bool)
	for _, part := range strings.Split(s, ",") {
		f, err := ParseFormat(part)
		if err != nil {
			return nil, err
		}
		if !seen[f] {
			seen[f] = true
			out = append(out, f)
		}
	}
	return out, nil
}

// Attrs holds raw Graphviz attributes that override archdraw's defaults.
type Attrs map[string]string

func (a Attrs) clone() Attrs {
	if len(a) == 0 {
		return nil
	}
	out := make(Attrs, len(a))
	for k, v := range a {
		out[k] = v
	}
	return out
}

func (a *Attrs) set(key, value string) {
	if *a == nil {
		*a = make(Attrs)
	}
	(*a)[key] = value
}

// Option configures a [Diagram] at construction time.
type Option func(*Diagram)

// WithDirection sets the rank direction.
func WithDirection(dir Direction) Option {
	return func(d *Diagram) { d.direction = dir }
}

// WithCurveStyle sets the edge routing style.
func WithCurveStyle(c CurveStyle) Option {
	return func(d *Diagram) { d.curveStyle = c }
}

// WithFormats sets the output formats. The first format is the one opened
// when the diagram is shown.
func WithFormats(formats ...Format) Option {
	return func(d *Diagram) { d.formats = append([]Format(nil), formats...) }
}

// WithFilename overrides the output filename stem derived from the title.
func WithFilename(name string) Option {
	return func(d *Diagram) { d.filename = name }
}

// WithShow opens the first rendered file once the diagram has been drawn.
func WithShow(show bool) Option {
	return func(d *Diagram) { d.show = show }
}

// WithStrict emits a strict digraph, collapsing duplicate edges.
func WithStrict(strict bool) Option {
	return func(d *Diagram) { d.strict = strict }
}

// WithAutolabel prefixes every node label with its kind name.
func WithAutolabel(autolabel bool) Option {
	return func(d *Diagram) { d.autolabel = autolabel }
}

// WithGraphAttr overrides a graph-level Graphviz attribute.
func WithGraphAttr(key, value string) Option {
	return func(d *Diagram) { d.graphAttr.set(key, value) }
}

// WithNodeAttr overrides a default node attribute.
func WithNodeAttr(key, value string) Option {
	return func(d *Diagram) { d.nodeAttr.set(key, value) }
}

// WithEdgeAttr overrides a default edge attribute.
func WithEdgeAttr(key, value string) Option {
	return func(d *Diagram) { d.edgeAttr.set(key, value) }
}

// WithIDGenerator replaces the random ID source, e.g. with [SequentialIDs].
func WithIDGenerator(gen IDGenerator) Option {
	return func(d *Diagram) {
		if gen != nil {
			d.ids = gen
		}
	}
}
