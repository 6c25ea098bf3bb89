package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/matzehuels/blockgraph/pkg/errors"
	"github.com/matzehuels/blockgraph/pkg/layout"
)

func TestParse(t *testing.T) {
	data := []byte(`
[layout]
orientation = "LTR"
node_width = 180
max_nodes_per_level = 4

[render]
reduce = true
language = "en"
`)
	f, err := Parse(data)
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}

	want := layout.DefaultConfig()
	want.Orientation = layout.LeftToRight
	want.NodeWidth = 180
	want.MaxNodesPerLevel = 4
	if f.Layout != want {
		t.Errorf("Layout = %+v, want %+v", f.Layout, want)
	}
	if !f.Render.Reduce || f.Render.Detailed || f.Render.Language != "en" {
		t.Errorf("Render = %+v", f.Render)
	}
	if f.Render.DimColor != DefaultDimColor {
		t.Errorf("DimColor = %q, want default", f.Render.DimColor)
	}
}

func TestParse_Empty(t *testing.T) {
	f, err := Parse(nil)
	if err != nil {
		t.Fatalf("Parse(nil): %v", err)
	}
	if f != Default() {
		t.Errorf("Parse(nil) = %+v, want defaults", f)
	}
}

func TestParse_Errors(t *testing.T) {
	tests := []struct {
		name string
		data string
		code errors.Code
	}{
		{"Syntax", "[layout\n", errors.ErrCodeInvalidFormat},
		{"UnknownKey", "[layout]\nnode_depth = 3\n", errors.ErrCodeInvalidConfig},
		{"BadOrientation", "[layout]\norientation = \"diagonal\"\n", errors.ErrCodeInvalidConfig},
		{"ZeroWidth", "[layout]\nnode_width = 0\n", errors.ErrCodeInvalidConfig},
		{"BadColor", "[render]\ndim_color = \"grey\"\n", errors.ErrCodeInvalidConfig},
		{"BadLanguage", "[render]\nlanguage = \"fr\"\n", errors.ErrCodeInvalidConfig},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Parse([]byte(tt.data))
			if !errors.Is(err, tt.code) {
				t.Errorf("Parse() error = %v, want %s", err, tt.code)
			}
		})
	}
}

func TestLoad(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, DefaultFileName)
	if err := os.WriteFile(path, []byte("[render]\ndetailed = true\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	f, err := Load(path)
	if err != nil || !f.Render.Detailed {
		t.Fatalf("Load = %+v, %v", f, err)
	}

	if _, err := Load(filepath.Join(dir, "missing.toml")); !errors.Is(err, errors.ErrCodeFileNotFound) {
		t.Errorf("missing file error = %v, want FILE_NOT_FOUND", err)
	}

	f, err = LoadOptional(filepath.Join(dir, "missing.toml"))
	if err != nil || f != Default() {
		t.Errorf("LoadOptional(missing) = %+v, %v", f, err)
	}
}
