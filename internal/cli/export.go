package cli

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/matzehuels/archdraw/pkg/diagram"
	"github.com/matzehuels/archdraw/pkg/errors"
	dio "github.com/matzehuels/archdraw/pkg/io"
	"github.com/matzehuels/archdraw/pkg/render/dot"
)

const (
	exportDOT  = "dot"
	exportJSON = "json"
	exportTOML = "toml"
)

type exportOpts struct {
	format    string
	output    string
	iconDir   string
	direction string
}

func (c *CLI) exportCommand() *cobra.Command {
	opts := exportOpts{format: exportDOT}

	cmd := &cobra.Command{
		Use:   "export <blueprint|file>",
		Short: "Print the DOT source, structure JSON or TOML definition of a diagram",
		Example: `  archdraw export tfe-mounted-disk
  archdraw export tfe-mounted-disk --format toml -o tfe.toml
  archdraw export stack.toml --format json`,
		Args:              cobra.ExactArgs(1),
		ValidArgsFunction: completeTargets,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := c.config()
			if err != nil {
				return err
			}
			opts.iconDir = resolveIconDir(opts.iconDir, cfg)

			var w io.Writer = cmd.OutOrStdout()
			if opts.output != "" && opts.output != "-" {
				f, err := os.Create(opts.output)
				if err != nil {
					return fmt.Errorf("create %s: %w", opts.output, err)
				}
				defer f.Close()
				w = f
			}
			return runExport(w, args[0], opts)
		},
	}

	cmd.Flags().StringVar(&opts.format, "format", opts.format, "export format: dot, json, toml")
	cmd.Flags().StringVarP(&opts.output, "output", "o", "", "output file (default stdout)")
	cmd.Flags().StringVar(&opts.iconDir, "icons", "", "icon directory for DOT output")
	cmd.Flags().StringVar(&opts.direction, "direction", "", "layout direction: TB, BT, LR, RL")

	return cmd
}

func runExport(w io.Writer, target string, opts exportOpts) error {
	// Sequential IDs keep exports diffable.
	dopts := []diagram.Option{diagram.WithIDGenerator(diagram.SequentialIDs())}
	if opts.direction != "" {
		dir, err := diagram.ParseDirection(opts.direction)
		if err != nil {
			return err
		}
		dopts = append(dopts, diagram.WithDirection(dir))
	}
	d, err := loadDiagram(target, dopts...)
	if err != nil {
		return err
	}

	switch opts.format {
	case exportDOT:
		src, err := dot.ToDOT(d, dot.Options{IconDir: opts.iconDir})
		if err != nil {
			return err
		}
		_, err = io.WriteString(w, src)
		return err
	case exportJSON:
		return dio.WriteJSON(d, w)
	case exportTOML:
		return dio.WriteTOML(d, w)
	default:
		return errors.New(errors.ErrCodeInvalidFormat, "invalid export format: %q (must be dot, json or toml)", opts.format)
	}
}
