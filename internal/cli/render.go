package cli

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/spf13/cobra"

	pkgio "github.com/matzehuels/spanlayout/pkg/io"
	"github.com/matzehuels/spanlayout/pkg/pipeline"
)

type renderOpts struct {
	output  string   // output file (single format) or base path
	formats []string // svg, png, pdf, json
	width   int
	height  int
	labels  bool
	scale   float64
	noCache bool
	refresh bool
}

// renderCommand creates the render command.
func (c *CLI) renderCommand() *cobra.Command {
	var formatsStr string
	opts := renderOpts{scale: pipeline.DefaultScale, labels: true}

	cmd := &cobra.Command{
		Use:   "render <document>",
		Short: "Render a resized layout to SVG, PNG, PDF or JSON",
		Example: `  spanlayout render page.toml --width 1200
  spanlayout render page.json -f svg,png -o out/page`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			opts.formats = parseFormats(formatsStr)
			if err := pipeline.ValidateFormats(opts.formats); err != nil {
				return err
			}
			return c.runRender(cmd.Context(), args[0], opts)
		},
	}

	cmd.Flags().StringVarP(&opts.output, "output", "o", "", "output file (single format) or base path (multiple)")
	cmd.Flags().StringVarP(&formatsStr, "format", "f", "", "output format(s): svg (default), png, pdf, json (comma-separated)")
	cmd.Flags().IntVar(&opts.width, "width", 0, "container width (default: intrinsic)")
	cmd.Flags().IntVar(&opts.height, "height", 0, "container height (default: intrinsic)")
	cmd.Flags().BoolVar(&opts.labels, "labels", opts.labels, "draw item names")
	cmd.Flags().Float64Var(&opts.scale, "scale", opts.scale, "PNG scale factor")
	cmd.Flags().BoolVar(&opts.noCache, "no-cache", false, "disable the result cache")
	cmd.Flags().BoolVar(&opts.refresh, "refresh", false, "recompute even when cached")

	return cmd
}

func (c *CLI) runRender(ctx context.Context, input string, opts renderOpts) error {
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

	spinner := newSpinnerWithContext(ctx, "Rendering "+strings.Join(opts.formats, ", "))
	spinner.Start()
	res, err := runner.Execute(ctx, pipeline.Options{
		Document: doc,
		Width:    opts.width,
		Height:   opts.height,
		Formats:  opts.formats,
		Labels:   opts.labels,
		Scale:    opts.scale,
		Refresh:  opts.refresh,
		Logger:   logger,
	})
	if err != nil {
		spinner.StopWithError("Render failed")
		return err
	}
	spinner.Stop()
	warnUnsolved(logger, res.Layout)

	base := basePath(opts.output, input)
	printSuccess("Rendered %s", res.Layout)
	for _, format := range opts.formats {
		path := base + "." + format
		if len(opts.formats) == 1 && opts.output != "" {
			path = opts.output
		}
		if filepath.Clean(path) == filepath.Clean(input) {
			path = base + ".resized." + format
		}
		if err := writeArtifact(path, res.Artifacts[format]); err != nil {
			return err
		}
		printFile(path)
	}
	printStats([]string{
		fmt.Sprintf("layout %s", res.Stats.LayoutTime.Round(time.Millisecond)),
		fmt.Sprintf("render %s", res.Stats.RenderTime.Round(time.Millisecond)),
	}, res.CacheInfo.LayoutHit && res.CacheInfo.RenderHit)
	return nil
}

// basePath derives the output path without extension. An empty output uses
// the input path, and a known format extension on output is stripped.
func basePath(output, input string) string {
	if output == "" {
		return strings.TrimSuffix(input, filepath.Ext(input))
	}
	ext := filepath.Ext(output)
	if pipeline.ValidFormats[strings.TrimPrefix(ext, ".")] {
		return strings.TrimSuffix(output, ext)
	}
	return output
}

func writeArtifact(path string, data []byte) error {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return err
		}
	}
	return os.WriteFile(path, data, 0644)
}
