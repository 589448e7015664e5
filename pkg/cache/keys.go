package cache

// Keyer builds cache keys for the pipeline stages.
type Keyer interface {
	SolutionKey(systemHash string) string
	LayoutKey(docHash string, opts LayoutKeyOpts) string
	RenderKey(layoutHash string, opts RenderKeyOpts) string
}

// LayoutKeyOpts are the inputs besides the document that change a resolved layout.
type LayoutKeyOpts struct {
	Width  int `json:"width"`
	Height int `json:"height"`
}

// RenderKeyOpts are the inputs besides the layout that change a rendered artifact.
type RenderKeyOpts struct {
	Format string  `json:"format"`
	Labels bool    `json:"labels"`
	Scale  float64 `json:"scale"`
}

// DefaultKeyer is the unscoped [Keyer].
type DefaultKeyer struct{}

// NewDefaultKeyer returns a [DefaultKeyer].
func NewDefaultKeyer() Keyer {
	return DefaultKeyer{}
}

// SolutionKey returns the key of a solved constraint system.
func (DefaultKeyer) SolutionKey(systemHash string) string {
	return hashKey("solution", systemHash)
}

// LayoutKey returns the key of a layout resolved at a container size.
func (DefaultKeyer) LayoutKey(docHash string, opts LayoutKeyOpts) string {
	return hashKey("layout", docHash, opts)
}

// RenderKey returns the key of a rendered artifact.
func (DefaultKeyer) RenderKey(layoutHash string, opts RenderKeyOpts) string {
	return hashKey("render", layoutHash, opts)
}
