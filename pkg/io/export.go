package io

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/matzehuels/blockgraph/pkg/block"
	"github.com/matzehuels/blockgraph/pkg/errors"
	"github.com/matzehuels/blockgraph/pkg/graph"
	"github.com/matzehuels/blockgraph/pkg/layout"
)

// LayoutDocument is the serialized result of one layout run.
type LayoutDocument struct {
	Orientation layout.Orientation `json:"orientation"`
	Width       float64            `json:"width"`
	Height      float64            `json:"height"`
	Selected    string             `json:"selected,omitempty"`
	Blocks      []PositionedBlock  `json:"blocks"`
	Edges       []LayoutEdge       `json:"edges"`
	Diagnostics Diagnostics        `json:"diagnostics"`
}

// PositionedBlock is a block with its level, rectangle and visibility.
type PositionedBlock struct {
	Block    block.Block     `json:"block"`
	Level    int             `json:"level"`
	Position layout.Position `json:"position"`
	Visible  bool            `json:"visible"`
	Dimmed   bool            `json:"dimmed,omitempty"`
}

// LayoutEdge is an edge with its drawn segment. Line is nil for dangling
// edges.
type LayoutEdge struct {
	From string         `json:"from"`
	To   string         `json:"to"`
	Type graph.EdgeType `json:"type"`
	Line *layout.Line   `json:"line,omitempty"`
}

// Diagnostics reports conditions that do not stop a layout.
type Diagnostics struct {
	Cycles           [][]string `json:"cycles,omitempty"`
	TopologicalOrder []string   `json:"topological_order,omitempty"`
	RemovedEdges     int        `json:"removed_edges,omitempty"`
	DanglingEdges    int        `json:"dangling_edges,omitempty"`
}

// Acyclic reports whether no prerequisite cycle was found.
func (d Diagnostics) Acyclic() bool { return len(d.Cycles) == 0 }

// WriteLayout encodes doc as indented JSON to w.
func WriteLayout(w io.Writer, doc *LayoutDocument) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(doc); err != nil {
		return errors.Wrap(errors.ErrCodeInternal, err, "encode layout")
	}
	return nil
}

// ExportLayout writes doc to the file at path.
// The file is created with 0644 permissions.
func ExportLayout(path string, doc *LayoutDocument) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}
	if err := WriteLayout(f, doc); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}

// ReadLayout decodes a layout document from r.
func ReadLayout(r io.Reader) (*LayoutDocument, error) {
	var doc LayoutDocument
	if err := json.NewDecoder(r).Decode(&doc); err != nil {
		return nil, errors.Wrap(errors.ErrCodeInvalidFormat, err, "decode layout")
	}
	return &doc, nil
}
