package pipeline

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/charmbracelet/log"

	"github.com/matzehuels/archdraw/pkg/cache"
	"github.com/matzehuels/archdraw/pkg/diagram"
	"github.com/matzehuels/archdraw/pkg/errors"
	"github.com/matzehuels/archdraw/pkg/observability"
	"github.com/matzehuels/archdraw/pkg/render"
	"github.com/matzehuels/archdraw/pkg/render/dot"
)

// Options configures how a diagram is drawn.
type Options struct {
	// OutDir is the directory files are written to. Defaults to ".".
	OutDir string

	// IconDir enables icon mode; see [dot.Options].
	IconDir string

	// Formats overrides the diagram's own formats when non-empty.
	Formats []diagram.Format

	// Show overrides the diagram's show flag when non-nil.
	Show *bool

	// Opener opens a rendered file. Defaults to [OpenFile].
	Opener func(ctx context.Context, path string) error

	// Logger receives progress messages. Defaults to log.Default().
	Logger *log.Logger

	// Cache holds previously rendered artifacts. Defaults to no caching.
	Cache cache.Cache
}

// Result describes a finished drawing.
type Result struct {
	Title    string
	Files    []string // written paths, in format order
	DOT      string
	Stats    diagram.Stats
	Duration time.Duration
	Opened   string // path passed to the opener, if any
	Cached   int    // formats served from the cache
}

func (o *Options) setDefaults() error {
	if o.OutDir == "" {
		o.OutDir = "."
	}
	if err := errors.ValidateOutputDir(o.OutDir); err != nil {
		return err
	}
	if o.Logger == nil {
		o.Logger = log.Default()
	}
	if o.Opener == nil {
		o.Opener = OpenFile
	}
	if o.Cache == nil {
		o.Cache = cache.NewNullCache()
	}
	return nil
}

// Build creates a diagram, runs fn to declare its contents and draws it.
// An error returned by fn aborts before anything is written.
func Build(ctx context.Context, title string, dopts []diagram.Option, opts Options, fn func(*diagram.Diagram) error) (*Result, error) {
	d, err := diagram.New(title, dopts...)
	if err != nil {
		return nil, err
	}
	if fn != nil {
		if err := fn(d); err != nil {
			return nil, fmt.Errorf("build %q: %w", title, err)
		}
	}
	return Draw(ctx, d, opts)
}

// Draw validates, seals, renders and writes d.
func Draw(ctx context.Context, d *diagram.Diagram, opts Options) (*Result, error) {
	if err := opts.setDefaults(); err != nil {
		return nil, err
	}
	logger := opts.Logger
	start := time.Now()

	if err := d.Validate(); err != nil {
		return nil, err
	}
	d.Seal()

	stats := d.Stats()
	observability.Draw().OnBuild(ctx, d.Title(), stats.Nodes, stats.Edges, stats.Clusters)
	logger.Debug("declared diagram",
		"title", d.Title(),
		"nodes", stats.Nodes,
		"edges", stats.Edges,
		"clusters", stats.Clusters,
		"depth", stats.MaxDepth)

	src, err := dot.ToDOT(d, dot.Options{IconDir: opts.IconDir})
	if err != nil {
		return nil, err
	}

	formats := opts.Formats
	if len(formats) == 0 {
		formats = d.Formats()
	}
	names := formatNames(formats)

	artifacts, cached := lookupCached(ctx, opts, src, formats)
	var misses []diagram.Format
	for _, f := range formats {
		if _, ok := artifacts[f]; !ok {
			misses = append(misses, f)
		}
	}

	renderStart := time.Now()
	observability.Draw().OnRenderStart(ctx, d.Title(), names)
	rendered, err := render.RenderAll(ctx, src, misses)
	observability.Draw().OnRenderComplete(ctx, d.Title(), names, time.Since(renderStart), err)
	if err != nil {
		return nil, err
	}
	for f, data := range rendered {
		artifacts[f] = data
		if f == diagram.FormatDOT {
			continue
		}
		if err := opts.Cache.Set(ctx, cache.ArtifactKey(src, string(f)), data, cache.DefaultTTL); err != nil {
			logger.Warn("cache write failed", "format", f, "err", err)
		}
	}
	logger.Debug("rendered diagram", "formats", names, "cached", cached, "duration", time.Since(renderStart))

	if err := os.MkdirAll(opts.OutDir, 0755); err != nil {
		return nil, fmt.Errorf("create output directory: %w", err)
	}

	res := &Result{
		Title:  d.Title(),
		DOT:    src,
		Stats:  stats,
		Cached: cached,
	}
	for _, f := range formats {
		path := filepath.Join(opts.OutDir, d.Filename()+"."+f.Ext())
		data := artifacts[f]
		if err := os.WriteFile(path, data, 0644); err != nil {
			return nil, fmt.Errorf("write %s: %w", path, err)
		}
		observability.Draw().OnWrite(ctx, path, len(data))
		logger.Debug("wrote file", "path", path, "bytes", len(data))
		res.Files = append(res.Files, path)
	}

	show := d.Show()
	if opts.Show != nil {
		show = *opts.Show
	}
	if show && len(res.Files) > 0 {
		if err := opts.Opener(ctx, res.Files[0]); err != nil {
			return nil, fmt.Errorf("open %s: %w", res.Files[0], err)
		}
		res.Opened = res.Files[0]
	}

	res.Duration = time.Since(start)
	return res, nil
}

// lookupCached returns the artifacts already cached for src. Cache read
// errors count as misses.
func lookupCached(ctx context.Context, opts Options, src string, formats []diagram.Format) (map[diagram.Format][]byte, int) {
	out := make(map[diagram.Format][]byte, len(formats))
	for _, f := range formats {
		if f == diagram.FormatDOT {
			continue
		}
		data, ok, err := opts.Cache.Get(ctx, cache.ArtifactKey(src, string(f)))
		if err != nil {
			opts.Logger.Warn("cache read failed", "format", f, "err", err)
			continue
		}
		if ok {
			out[f] = data
		}
	}
	return out, len(out)
}

func formatNames(formats []diagram.Format) []string {
	out := make([]string, len(formats))
	for i, f := range formats {
		out[i] = string(f)
	}
	return out
}
