package cli

import (
	"context"
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/matzehuels/spanlayout/pkg/expr"
	pkgio "github.com/matzehuels/spanlayout/pkg/io"
	"github.com/matzehuels/spanlayout/pkg/pipeline"
	"github.com/matzehuels/spanlayout/pkg/render/sysgraph"
	"github.com/matzehuels/spanlayout/pkg/solver"
)

type graphOpts struct {
	output string
	format string
	width  int
	height int
	values bool
}

// graphCommand creates the graph command.
func (c *CLI) graphCommand() *cobra.Command {
	opts := graphOpts{format: "dot", values: true}

	cmd := &cobra.Command{
		Use:   "graph <constraints|document>",
		Short: "Draw which constraints mention which unknowns",
		Long: `Graph draws the incidence graph of a constraint system: one box per
constraint, one ellipse per unknown, coloured by how the solver classified it.
A .json, .toml or .yaml argument is read as a layout document and its full span
system at --width x --height is drawn.`,
		Example: `  spanlayout graph system.txt -f svg -o system.svg
  spanlayout graph page.toml --width 1200 | dot -Tpng > page.png`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.runGraph(cmd.Context(), cmd.OutOrStdout(), cmd.InOrStdin(), args[0], opts)
		},
	}

	cmd.Flags().StringVarP(&opts.output, "output", "o", "", "output file (default: stdout)")
	cmd.Flags().StringVarP(&opts.format, "format", "f", opts.format, "output format: dot, svg, pdf, png")
	cmd.Flags().IntVar(&opts.width, "width", 0, "container width for documents (default: intrinsic)")
	cmd.Flags().IntVar(&opts.height, "height", 0, "container height for documents (default: intrinsic)")
	cmd.Flags().BoolVar(&opts.values, "values", opts.values, "show solved values")

	return cmd
}

func (c *CLI) runGraph(ctx context.Context, w io.Writer, stdin io.Reader, input string, opts graphOpts) error {
	logger := loggerFromContext(ctx)

	system, err := loadSystem(input, stdin, opts.width, opts.height)
	if err != nil {
		return err
	}
	sol := solver.Solve(system)
	logger.Debug("solved system", "constraints", system.Len(), "inconsistent", sol.Inconsistencies.Sorted())

	dot := sysgraph.ToDOT(system, sysgraph.Options{Solution: &sol, Values: opts.values})

	var data []byte
	switch opts.format {
	case "dot":
		data = []byte(dot)
	case pipeline.FormatSVG:
		data, err = sysgraph.RenderSVG(dot)
	case pipeline.FormatPDF:
		data, err = sysgraph.RenderPDF(dot)
	case pipeline.FormatPNG:
		data, err = sysgraph.RenderPNG(dot, pipeline.DefaultScale)
	default:
		return fmt.Errorf("invalid format: %s (must be 'dot', 'svg', 'pdf', or 'png')", opts.format)
	}
	if err != nil {
		return err
	}

	if opts.output == "" {
		_, err = w.Write(data)
		return err
	}
	if err := writeArtifact(opts.output, data); err != nil {
		return err
	}
	logger.Infof("Generated %s", opts.output)
	return nil
}

// loadSystem reads a constraint file, or a layout document's span system.
func loadSystem(input string, stdin io.Reader, width, height int) (expr.System, error) {
	if !pkgio.IsDocument(input) {
		lines, err := readConstraints(input, stdin)
		if err != nil {
			return expr.System{}, err
		}
		return pipeline.ParseSystem(lines)
	}

	doc, err := pkgio.Load(input)
	if err != nil {
		return expr.System{}, err
	}
	l, err := doc.Build()
	if err != nil {
		return expr.System{}, err
	}
	if width == 0 {
		width = l.Width()
	}
	if height == 0 {
		height = l.Height()
	}
	return l.System(width, height), nil
}
