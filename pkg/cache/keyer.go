package cache

// LayoutKeyOpts lists the options that change a computed layout.
type LayoutKeyOpts struct {
	Orientation       string  `json:"orientation"`
	NodeWidth         float64 `json:"node_width"`
	NodeHeight        float64 `json:"node_height"`
	HorizontalSpacing float64 `json:"horizontal_spacing"`
	VerticalSpacing   float64 `json:"vertical_spacing"`
	MaxNodesPerLevel  int     `json:"max_nodes_per_level"`
	Reduce            bool    `json:"reduce"`
}

// Keyer builds cache keys.
type Keyer interface {
	// LayoutKey returns the key of a layout of the blocks hashed to
	// blocksHash, computed with opts.
	LayoutKey(blocksHash string, opts LayoutKeyOpts) string
}

// DefaultKeyer produces "layout:<sha256>" keys.
type DefaultKeyer struct{}

// NewDefaultKeyer creates the default keyer.
func NewDefaultKeyer() Keyer { return DefaultKeyer{} }

// LayoutKey implements Keyer.
func (DefaultKeyer) LayoutKey(blocksHash string, opts LayoutKeyOpts) string {
	return hashKey("layout", blocksHash, opts)
}
