package io

import (
	"context"
	"io"

	"github.com/BurntSushi/toml"

	"github.com/graphlab/wgraph/pkg/errors"
	"github.com/graphlab/wgraph/pkg/graph"
)

// WriteTOML encodes g as a TOML document with the same shape as the JSON
// format: a "vertices" array of tables and an "edges" array of tables.
func WriteTOML(g *graph.Graph, w io.Writer) error {
	enc := toml.NewEncoder(w)
	enc.Indent = ""
	if err := enc.Encode(fromGraph(g)); err != nil {
		return errors.Wrap(errors.ErrCodeInternal, err, "encode toml")
	}
	return nil
}

// ReadTOML decodes a TOML document from r into a graph.
// Validation rules are the same as for [ReadJSON].
func ReadTOML(r io.Reader) (*graph.Graph, error) {
	var doc document
	if _, err := toml.NewDecoder(r).Decode(&doc); err != nil {
		return nil, errors.Wrap(errors.ErrCodeParse, err, "decode toml")
	}
	return doc.toGraph()
}

// ImportTOML reads the TOML file at path and returns the decoded graph.
func ImportTOML(path string) (*graph.Graph, error) {
	return Load(context.Background(), path, Options{Format: FormatTOML})
}

// ExportTOML writes g to a TOML file at path.
func ExportTOML(g *graph.Graph, path string) error {
	return Save(context.Background(), g, path, Options{Format: FormatTOML})
}
