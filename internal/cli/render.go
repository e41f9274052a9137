package cli

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/matzehuels/archdraw/pkg/blueprints"
	"github.com/matzehuels/archdraw/pkg/diagram"
	"github.com/matzehuels/archdraw/pkg/errors"
	dio "github.com/matzehuels/archdraw/pkg/io"
	"github.com/matzehuels/archdraw/pkg/pipeline"
)

// renderOpts holds the command-line flags for the render command.
type renderOpts struct {
	outDir    string // output directory
	formats   string // comma-separated formats; empty keeps the diagram's
	direction string // overrides the diagram direction
	curve     string // overrides the edge curve style
	show      bool   // open the first output file
	showSet   bool   // show came from a flag or the config, not the diagram
	iconDir   string // icon directory; enables icon mode
	stableIDs bool   // sequential node IDs for reproducible DOT output
	watch     bool   // re-render whenever the definition file changes
	noCache   bool   // always run Graphviz
}

func (c *CLI) renderCommand() *cobra.Command {
	var opts renderOpts

	cmd := &cobra.Command{
		Use:   "render [blueprint|file.toml]",
		Short: "Render a blueprint or definition file",
		Long: `Render a built-in blueprint or a TOML/JSON definition file.

Output files are named after the diagram title, e.g. the title
"TFE FDO on Docker in Mounted Disk mode" is written to
tfe_fdo_on_docker_in_mounted_disk_mode.png. Without an argument on a
terminal, an interactive blueprint picker is shown.`,
		Example: `  archdraw render tfe-mounted-disk
  archdraw render stack.toml -f png,svg -o docs/
  archdraw render stack.toml --watch --show`,
		Args:              cobra.MaximumNArgs(1),
		ValidArgsFunction: completeTargets,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := c.config()
			if err != nil {
				return err
			}
			opts.applyConfig(cmd, cfg)

			target, err := resolveTarget(args)
			if err != nil || target == "" {
				return err
			}
			if opts.watch {
				return c.runWatch(cmd.Context(), cmd.OutOrStdout(), target, &opts)
			}
			_, err = c.runRender(cmd.Context(), cmd.OutOrStdout(), target, &opts)
			return err
		},
	}

	cmd.Flags().StringVarP(&opts.outDir, "output", "o", ".", "output directory")
	cmd.Flags().StringVarP(&opts.formats, "format", "f", "", "output format(s): png, jpg, svg, pdf, dot (comma-separated)")
	cmd.Flags().StringVar(&opts.direction, "direction", "", "layout direction: TB, BT, LR, RL")
	cmd.Flags().StringVar(&opts.curve, "curve", "", "edge style: ortho, curved, spline, polyline")
	cmd.Flags().BoolVar(&opts.show, "show", false, "open the rendered file")
	cmd.Flags().StringVar(&opts.iconDir, "icons", "", "icon directory (default $"+iconDirEnv+")")
	cmd.Flags().BoolVar(&opts.stableIDs, "stable-ids", false, "use sequential node IDs for reproducible output")
	cmd.Flags().BoolVarP(&opts.watch, "watch", "w", false, "re-render when the definition file changes")
	cmd.Flags().BoolVar(&opts.noCache, "no-cache", false, "disable the rendered artifact cache")

	return cmd
}

// applyConfig fills flags the user did not set from the config file.
func (o *renderOpts) applyConfig(cmd *cobra.Command, cfg Config) {
	if !cmd.Flags().Changed("output") && cfg.OutDir != "" {
		o.outDir = cfg.OutDir
	}
	if !cmd.Flags().Changed("format") && len(cfg.Formats) > 0 {
		o.formats = strings.Join(cfg.Formats, ",")
	}
	o.showSet = cmd.Flags().Changed("show")
	if !o.showSet && cfg.Show != nil {
		o.show, o.showSet = *cfg.Show, true
	}
	o.iconDir = resolveIconDir(o.iconDir, cfg)
}

// diagramOptions converts the override flags into diagram options.
func (o *renderOpts) diagramOptions() ([]diagram.Option, error) {
	var opts []diagram.Option
	if o.direction != "" {
		dir, err := diagram.ParseDirection(o.direction)
		if err != nil {
			return nil, err
		}
		opts = append(opts, diagram.WithDirection(dir))
	}
	if o.curve != "" {
		c, err := diagram.ParseCurveStyle(o.curve)
		if err != nil {
			return nil, err
		}
		opts = append(opts, diagram.WithCurveStyle(c))
	}
	if o.formats != "" {
		formats, err := diagram.ParseFormats(o.formats)
		if err != nil {
			return nil, err
		}
		opts = append(opts, diagram.WithFormats(formats...))
	}
	if o.stableIDs {
		opts = append(opts, diagram.WithIDGenerator(diagram.SequentialIDs()))
	}
	return opts, nil
}

// resolveTarget returns the argument, or asks for a blueprint when none was
// given and stdin is a terminal. An empty result means the user quit.
func resolveTarget(args []string) (string, error) {
	if len(args) == 1 {
		return args[0], nil
	}
	if !isTerminal(os.Stdin) || !isTerminal(os.Stdout) {
		return "", errors.New(errors.ErrCodeInvalidInput, "a blueprint name or definition file is required (see 'archdraw list')")
	}
	return pickBlueprint()
}

// isDefinitionFile reports whether target names a definition file rather
// than a blueprint.
func isDefinitionFile(target string) bool {
	switch strings.ToLower(filepath.Ext(target)) {
	case ".toml", ".json":
		return true
	}
	return strings.ContainsRune(target, os.PathSeparator)
}

// loadDiagram builds the diagram for a blueprint name or a definition file.
func loadDiagram(target string, opts ...diagram.Option) (*diagram.Diagram, error) {
	if !isDefinitionFile(target) {
		b, err := blueprints.Get(target)
		if err != nil {
			return nil, err
		}
		return b.Build(opts...)
	}
	if strings.EqualFold(filepath.Ext(target), ".json") {
		return dio.ImportJSON(target, opts...)
	}
	return dio.ImportTOML(target, opts...)
}

// runRender loads target, draws it and prints the written files.
func (c *CLI) runRender(ctx context.Context, w io.Writer, target string, opts *renderOpts) (*pipeline.Result, error) {
	logger := loggerFromContext(ctx)

	dopts, err := opts.diagramOptions()
	if err != nil {
		return nil, err
	}
	d, err := loadDiagram(target, dopts...)
	if err != nil {
		return nil, err
	}
	logger.Debug("Loaded diagram", "title", d.Title(), "nodes", d.NodeCount(), "edges", d.EdgeCount())

	store := c.newCache(opts.noCache)
	defer store.Close()

	popts := pipeline.Options{
		OutDir:  opts.outDir,
		IconDir: opts.iconDir,
		Logger:  logger,
		Cache:   store,
	}
	if opts.showSet {
		popts.Show = &opts.show
	}

	prog := newProgress(logger)
	spinner := newSpinner(ctx, os.Stderr, fmt.Sprintf("Rendering %s...", d.Title()))
	spinner.Start()
	res, err := pipeline.Draw(ctx, d, popts)
	spinner.Stop()
	if err != nil {
		return nil, err
	}
	prog.done("Rendered diagram", "title", d.Title(), "files", len(res.Files), "cached", res.Cached)

	printSuccess(w, "Rendered %s", StyleHighlight.Render(res.Title))
	printStats(w, res.Stats)
	for _, f := range res.Files {
		printFile(w, f)
	}
	return res, nil
}

// completeTargets completes blueprint names and definition files.
func completeTargets(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
	if len(args) > 0 {
		return nil, cobra.ShellCompDirectiveNoFileComp
	}
	var out []string
	for _, b := range blueprints.All() {
		if strings.HasPrefix(b.Name, toComplete) {
			out = append(out, b.Name+"\t"+b.Title)
		}
	}
	return out, cobra.ShellCompDirectiveDefault
}
