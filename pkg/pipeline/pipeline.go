// Package pipeline runs the solve → layout → render stages shared by the CLI
// and the API server.
//
// Each stage is cached by content hash through a [cache.Cache] and reports
// to the [observability] hooks:
//
//	runner := pipeline.NewRunner(c, nil, logger)
//	res, err := runner.Execute(ctx, pipeline.Options{
//	    Document: doc,
//	    Width:    1200,
//	    Formats:  []string{"svg", "json"},
//	})
//	svg := res.Artifacts["svg"]
//
// Stages can be run on their own: [Runner.Solve] for a bare constraint
// system, [Runner.Layout] to resolve a document and [Runner.Render] to draw
// a resolved scene.
package pipeline

import (
	"fmt"
	"io"
	"time"

	"github.com/charmbracelet/log"

	"github.com/matzehuels/spanlayout/pkg/cache"
	"github.com/matzehuels/spanlayout/pkg/errors"
	pkgio "github.com/matzehuels/spanlayout/pkg/io"
	"github.com/matzehuels/spanlayout/pkg/render"
	"github.com/matzehuels/spanlayout/pkg/solver"
)

// DefaultScale is the PNG scale factor.
const DefaultScale = 2.0

// Output formats.
const (
	FormatSVG  = "svg"
	FormatPNG  = "png"
	FormatPDF  = "pdf"
	FormatJSON = "json"
)

// ValidFormats is the set of supported output formats.
var ValidFormats = map[string]bool{
	FormatSVG:  true,
	FormatPNG:  true,
	FormatPDF:  true,
	FormatJSON: true,
}

// Options configures a pipeline run. It is also the request body of the API.
type Options struct {
	// Solve input: one constraint per entry.
	Constraints []string `json:"constraints,omitempty"`

	// Layout input. Width and Height are the requested container size;
	// zero keeps the document's intrinsic size on that axis.
	Document *pkgio.Document `json:"document,omitempty"`
	Width    int             `json:"width,omitempty"`
	Height   int             `json:"height,omitempty"`

	// Render options
	Formats []string `json:"formats,omitempty"`
	Labels  bool     `json:"labels,omitempty"`
	Scale   float64  `json:"scale,omitempty"`

	// Refresh bypasses cache reads. Results are still written.
	Refresh bool `json:"refresh,omitempty"`

	Logger *log.Logger `json:"-"`
}

// SolveResult is the outcome of [Runner.Solve].
type SolveResult struct {
	SystemHash string `json:"system_hash"`
	// Kind names the hardest equation category in the system.
	Kind     string          `json:"kind"`
	Solution solver.Solution `json:"solution"`
	CacheHit bool            `json:"cache_hit"`
}

// LayoutResult is the outcome of [Runner.Layout].
type LayoutResult struct {
	DocHash  string          `json:"doc_hash"`
	Width    int             `json:"requested_width"`
	Height   int             `json:"requested_height"`
	Scene    render.Scene    `json:"scene"`
	Solution solver.Solution `json:"solution"`
	CacheHit bool            `json:"cache_hit"`
}

// Result contains the outputs of [Runner.Execute].
type Result struct {
	Layout    *LayoutResult
	Artifacts map[string][]byte
	Stats     Stats
	CacheInfo CacheInfo
}

// Stats contains stage timings.
type Stats struct {
	Items      int
	LayoutTime time.Duration
	RenderTime time.Duration
}

// CacheInfo tracks cache hits for each stage.
type CacheInfo struct {
	LayoutHit bool
	RenderHit bool
}

// ValidateFormat checks that a format is valid.
func ValidateFormat(format string) error {
	if !ValidFormats[format] {
		return errors.New(errors.ErrCodeInvalidInput, "invalid format: %q (must be one of: svg, png, pdf, json)", format)
	}
	return nil
}

// ValidateFormats checks that all formats are valid.
func ValidateFormats(formats []string) error {
	for _, f := range formats {
		if err := ValidateFormat(f); err != nil {
			return err
		}
	}
	return nil
}

// SetDefaults fills zero-valued render and runtime options. It is idempotent.
func (o *Options) SetDefaults() {
	if len(o.Formats) == 0 {
		o.Formats = []string{FormatSVG}
	}
	if o.Scale == 0 {
		o.Scale = DefaultScale
	}
	if o.Logger == nil {
		o.Logger = log.NewWithOptions(io.Discard, log.Options{})
	}
}

// ValidateForSolve checks the fields needed by [Runner.Solve].
func (o *Options) ValidateForSolve() error {
	if len(o.Constraints) == 0 {
		return errors.New(errors.ErrCodeInvalidInput, "at least one constraint is required")
	}
	return nil
}

// ValidateForLayout checks the fields needed by [Runner.Layout].
func (o *Options) ValidateForLayout() error {
	if o.Document == nil {
		return errors.New(errors.ErrCodeInvalidInput, "document is required")
	}
	if err := errors.ValidateSize("width", o.Width); err != nil {
		return err
	}
	return errors.ValidateSize("height", o.Height)
}

// ValidateForRender checks the fields needed by [Runner.Render].
func (o *Options) ValidateForRender() error {
	o.SetDefaults()
	if o.Scale < 0 {
		return errors.New(errors.ErrCodeInvalidInput, "scale must be positive, got %g", o.Scale)
	}
	return ValidateFormats(o.Formats)
}

// Validate checks everything [Runner.Execute] needs and applies defaults.
func (o *Options) Validate() error {
	o.SetDefaults()
	if err := o.ValidateForLayout(); err != nil {
		return err
	}
	return o.ValidateForRender()
}

// LayoutKeyOpts returns the cache key options of the layout stage.
func (o *Options) LayoutKeyOpts() cache.LayoutKeyOpts {
	return cache.LayoutKeyOpts{Width: o.Width, Height: o.Height}
}

// RenderKeyOpts returns the cache key options of one rendered format.
func (o *Options) RenderKeyOpts(format string) cache.RenderKeyOpts {
	return cache.RenderKeyOpts{Format: format, Labels: o.Labels, Scale: o.Scale}
}

func (o *Options) svgOptions() []render.SVGOption {
	if o.Labels {
		return []render.SVGOption{render.WithLabels()}
	}
	return nil
}

func (r LayoutResult) String() string {
	return fmt.Sprintf("%dx%d (%d items)", r.Scene.Width, r.Scene.Height, len(r.Scene.Items))
}
