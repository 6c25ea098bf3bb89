// Package config loads blockgraph settings from a TOML file.
//
// A config file has two tables, both optional:
//
//	[layout]
//	orientation = "ltr"
//	node_width = 180
//	node_height = 50
//	horizontal_spacing = 30
//	vertical_spacing = 60
//	max_nodes_per_level = 6
//
//	[render]
//	detailed = true
//	reduce = true
//	dim_color = "#cccccc"
//	language = "en"
//
// Missing keys keep their defaults ([layout.DefaultConfig] for the layout
// table). Unknown keys are rejected so typos do not go unnoticed. CLI flags
// override file values.
package config

import (
	"fmt"
	"os"

	"github.com/BurntSushi/toml"
	"github.com/go-playground/validator/v10"

	"github.com/matzehuels/blockgraph/pkg/block"
	"github.com/matzehuels/blockgraph/pkg/errors"
	"github.com/matzehuels/blockgraph/pkg/layout"
)

// DefaultFileName is the config file the CLI looks for in the working
// directory when --config is not given.
const DefaultFileName = "blockgraph.toml"

// DefaultDimColor is the fill used for dimmed blocks.
const DefaultDimColor = "#d3d3d3"

var validate = validator.New()

// File is the parsed contents of a config file.
type File struct {
	Layout layout.Config `toml:"layout"`
	Render Render        `toml:"render"`
}

// Render holds output settings shared by the render and browse commands.
type Render struct {
	// Detailed adds level and extension fields to diagram labels.
	Detailed bool `toml:"detailed"`
	// Reduce drops transitive prerequisite edges before drawing.
	Reduce bool `toml:"reduce"`
	// DimColor fills dimmed blocks.
	DimColor string `toml:"dim_color" validate:"required,hexcolor"`
	// Language picks the title shown for each block.
	Language string `toml:"language" validate:"oneof=de en"`
}

// Default returns the built-in settings.
func Default() File {
	return File{
		Layout: layout.DefaultConfig(),
		Render: Render{
			DimColor: DefaultDimColor,
			Language: block.LangDE,
		},
	}
}

// Parse decodes TOML data on top of the defaults and validates the result.
func Parse(data []byte) (File, error) {
	f := Default()
	md, err := toml.Decode(string(data), &f)
	if err != nil {
		return File{}, errors.Wrap(errors.ErrCodeInvalidFormat, err, "decode config")
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		return File{}, errors.New(errors.ErrCodeInvalidConfig, "unknown config key %q", undecoded[0].String())
	}

	o, err := layout.ParseOrientation(string(f.Layout.Orientation))
	if err != nil {
		return File{}, err
	}
	f.Layout.Orientation = o

	if err := f.Validate(); err != nil {
		return File{}, err
	}
	return f, nil
}

// Load reads and parses the config file at path.
func Load(path string) (File, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return File{}, errors.Wrap(errors.ErrCodeFileNotFound, err, "config file %s", path)
		}
		return File{}, errors.Wrap(errors.ErrCodeInvalidInput, err, "read config %s", path)
	}
	f, err := Parse(data)
	if err != nil {
		return File{}, fmt.Errorf("%s: %w", path, err)
	}
	return f, nil
}

// LoadOptional loads path when it exists and returns the defaults otherwise.
func LoadOptional(path string) (File, error) {
	f, err := Load(path)
	if errors.Is(err, errors.ErrCodeFileNotFound) {
		return Default(), nil
	}
	return f, err
}

// Validate checks both tables. It returns an INVALID_CONFIG error naming the
// first bad field.
func (f File) Validate() error {
	if err := f.Layout.Validate(); err != nil {
		return err
	}
	if err := validate.Struct(f.Render); err != nil {
		var verrs validator.ValidationErrors
		if errors.As(err, &verrs) && len(verrs) > 0 {
			fe := verrs[0]
			return errors.Wrap(errors.ErrCodeInvalidConfig, err, "render %s fails %q (got %v)", fe.Field(), fe.Tag(), fe.Value())
		}
		return errors.Wrap(errors.ErrCodeInvalidConfig, err, "invalid render config")
	}
	return nil
}
