package io

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/matzehuels/blockgraph/pkg/block"
	"github.com/matzehuels/blockgraph/pkg/errors"
)

// Format is a block file encoding.
type Format string

const (
	FormatJSON Format = "json"
	FormatYAML Format = "yaml"
)

// FormatFromPath returns the format implied by the extension of path.
func FormatFromPath(path string) (Format, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".json":
		return FormatJSON, nil
	case ".yaml", ".yml":
		return FormatYAML, nil
	}
	return "", errors.New(errors.ErrCodeUnsupported, "unsupported block file %q (want .json, .yaml or .yml)", path)
}

// blockFile is the object form of a block file.
type blockFile struct {
	Blocks []block.Block `json:"blocks" yaml:"blocks"`
}

// ReadBlocks decodes and validates a block file from r. ReadBlocks does not
// close r.
func ReadBlocks(r io.Reader, format Format) ([]block.Block, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeInternal, err, "read blocks")
	}

	var blocks []block.Block
	switch format {
	case FormatJSON:
		blocks, err = decodeJSON(data)
	case FormatYAML:
		blocks, err = decodeYAML(data)
	default:
		return nil, errors.New(errors.ErrCodeUnsupported, "unsupported format %q", format)
	}
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeInvalidFormat, err, "decode %s blocks", format)
	}

	if err := block.ValidateAll(blocks); err != nil {
		return nil, err
	}
	return blocks, nil
}

func decodeJSON(data []byte) ([]block.Block, error) {
	trimmed := bytes.TrimSpace(data)
	if len(trimmed) == 0 {
		return nil, fmt.Errorf("empty input")
	}
	if trimmed[0] == '[' {
		var blocks []block.Block
		err := json.Unmarshal(trimmed, &blocks)
		return blocks, err
	}
	var f blockFile
	err := json.Unmarshal(trimmed, &f)
	return f.Blocks, err
}

func decodeYAML(data []byte) ([]block.Block, error) {
	var root yaml.Node
	if err := yaml.Unmarshal(data, &root); err != nil {
		return nil, err
	}
	if root.Kind != yaml.DocumentNode || len(root.Content) == 0 {
		return nil, fmt.Errorf("empty input")
	}

	doc := root.Content[0]
	if doc.Kind == yaml.SequenceNode {
		var blocks []block.Block
		err := doc.Decode(&blocks)
		return blocks, err
	}
	var f blockFile
	err := doc.Decode(&f)
	return f.Blocks, err
}

// ImportBlocks reads the block file at path.
func ImportBlocks(path string) ([]block.Block, error) {
	format, err := FormatFromPath(path)
	if err != nil {
		return nil, err
	}
	f, err := os.Open(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, errors.Wrap(errors.ErrCodeFileNotFound, err, "open %s", path)
		}
		return nil, errors.Wrap(errors.ErrCodeInternal, err, "open %s", path)
	}
	defer f.Close()

	blocks, err := ReadBlocks(f, format)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return blocks, nil
}
