package cli

import (
	"context"
	"fmt"
	"io"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	pkgio "github.com/matzehuels/spanlayout/pkg/io"
	"github.com/matzehuels/spanlayout/pkg/pipeline"
)

type layoutOpts struct {
	output  string
	width   int
	height  int
	table   bool
	noCache bool
}

// layoutCommand creates the layout command.
func (c *CLI) layoutCommand() *cobra.Command {
	var opts layoutOpts

	cmd := &cobra.Command{
		Use:   "layout <document>",
		Short: "Resize a layout document",
		Long: `Layout resizes the container of a JSON, TOML or YAML layout document and writes
the document with the new item geometry. Without --output the document is
written to stdout as JSON.`,
		Example: `  spanlayout layout page.toml --width 1200
  spanlayout layout page.json --width 1200 --height 800 -o page-wide.json`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.runLayout(cmd.Context(), cmd.OutOrStdout(), args[0], opts)
		},
	}

	cmd.Flags().StringVarP(&opts.output, "output", "o", "", "output document (.json, .toml or .yaml)")
	cmd.Flags().IntVar(&opts.width, "width", 0, "container width (default: intrinsic)")
	cmd.Flags().IntVar(&opts.height, "height", 0, "container height (default: intrinsic)")
	cmd.Flags().BoolVar(&opts.table, "table", false, "print the item table instead of a document")
	cmd.Flags().BoolVar(&opts.noCache, "no-cache", false, "disable the result cache")

	return cmd
}

func (c *CLI) runLayout(ctx context.Context, w io.Writer, input string, opts layoutOpts) error {
	logger := loggerFromContext(ctx)

	doc, err := pkgio.Load(input)
	if err != nil {
		return err
	}
	runner, err := c.newRunner(opts.noCache)
	if err != nil {
		return err
	}
	defer runner.Close()

	prog := newProgress(logger)
	res, err := runner.Layout(ctx, pipeline.Options{Document: doc, Width: opts.width, Height: opts.height})
	if err != nil {
		return err
	}
	prog.done(fmt.Sprintf("Resolved %s", res))
	warnUnsolved(logger, res)

	if opts.table {
		fmt.Fprintln(w, itemTable(res.Scene.Items))
		printStats([]string{fmt.Sprintf("%d items", len(res.Scene.Items)),
			fmt.Sprintf("%dx%d", res.Scene.Width, res.Scene.Height)}, res.CacheHit)
		return nil
	}

	out := pkgio.FromItems(res.Scene.Items, doc.Constraints)
	if opts.output == "" {
		return pkgio.WriteJSON(out, w)
	}
	if err := pkgio.Save(out, opts.output); err != nil {
		return err
	}
	printSuccess("Resized to %dx%d", res.Scene.Width, res.Scene.Height)
	printFile(opts.output)
	return nil
}

// warnUnsolved logs dropped container pins and unknowns the layout could
// not determine. It logs rather than prints so stdout stays a clean document.
func warnUnsolved(logger *log.Logger, res *pipeline.LayoutResult) {
	if res.Scene.Width != res.Width || res.Scene.Height != res.Height {
		logger.Warn("requested size is not reachable",
			"requested", fmt.Sprintf("%dx%d", res.Width, res.Height),
			"kept", fmt.Sprintf("%dx%d", res.Scene.Width, res.Scene.Height))
	}
	if n := len(res.Solution.Underdetermined); n > 0 {
		logger.Debug("underdetermined unknowns", "names", res.Solution.Underdetermined.Sorted())
	}
	if n := len(res.Solution.Inconsistencies); n > 0 {
		logger.Warn("inconsistent unknowns", "names", res.Solution.Inconsistencies.Sorted())
	}
}
