package layout

import (
	"github.com/go-playground/validator/v10"

	"github.com/matzehuels/blockgraph/pkg/errors"
)

// Default dimensions used by DefaultConfig.
const (
	DefaultNodeWidth         = 200.0
	DefaultNodeHeight        = 60.0
	DefaultHorizontalSpacing = 40.0
	DefaultVerticalSpacing   = 80.0
)

var validate = validator.New()

// Config controls block sizes, gaps and direction.
type Config struct {
	NodeWidth         float64     `json:"node_width" toml:"node_width" validate:"gt=0"`
	NodeHeight        float64     `json:"node_height" toml:"node_height" validate:"gt=0"`
	HorizontalSpacing float64     `json:"horizontal_spacing" toml:"horizontal_spacing" validate:"gte=0"`
	VerticalSpacing   float64     `json:"vertical_spacing" toml:"vertical_spacing" validate:"gte=0"`
	Orientation       Orientation `json:"orientation" toml:"orientation" validate:"oneof=ttb btt ltr rtl"`

	// MaxNodesPerLevel wraps a level onto additional rows once it holds more
	// blocks than this. Zero disables wrapping.
	MaxNodesPerLevel int `json:"max_nodes_per_level" toml:"max_nodes_per_level" validate:"gte=0"`
}

// DefaultConfig returns a top-to-bottom layout without wrapping.
func DefaultConfig() Config {
	return Config{
		NodeWidth:         DefaultNodeWidth,
		NodeHeight:        DefaultNodeHeight,
		HorizontalSpacing: DefaultHorizontalSpacing,
		VerticalSpacing:   DefaultVerticalSpacing,
		Orientation:       TopToBottom,
	}
}

// Validate returns an INVALID_CONFIG error describing the first bad field.
func (c Config) Validate() error {
	if err := validate.Struct(c); err != nil {
		var verrs validator.ValidationErrors
		if errors.As(err, &verrs) && len(verrs) > 0 {
			f := verrs[0]
			return errors.Wrap(errors.ErrCodeInvalidConfig, err, "layout %s fails %q (got %v)", f.Field(), f.Tag(), f.Value())
		}
		return errors.Wrap(errors.ErrCodeInvalidConfig, err, "invalid layout config")
	}
	return nil
}

// axes resolves the config into level-axis and sibling-axis measures.
type axes struct {
	levelSize, levelGap     float64
	siblingSize, siblingGap float64
}

func (c Config) axes() axes {
	if c.Orientation.IsVertical() {
		return axes{
			levelSize: c.NodeHeight, levelGap: c.VerticalSpacing,
			siblingSize: c.NodeWidth, siblingGap: c.HorizontalSpacing,
		}
	}
	return axes{
		levelSize: c.NodeWidth, levelGap: c.HorizontalSpacing,
		siblingSize: c.NodeHeight, siblingGap: c.VerticalSpacing,
	}
}
