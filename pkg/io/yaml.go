package io

import (
	"context"
	"io"

	"gopkg.in/yaml.v3"

	"github.com/graphlab/wgraph/pkg/errors"
	"github.com/graphlab/wgraph/pkg/graph"
)

// WriteYAML encodes g as a YAML document indented by two spaces.
func WriteYAML(g *graph.Graph, w io.Writer) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(fromGraph(g)); err != nil {
		return errors.Wrap(errors.ErrCodeInternal, err, "encode yaml")
	}
	if err := enc.Close(); err != nil {
		return errors.Wrap(errors.ErrCodeInternal, err, "encode yaml")
	}
	return nil
}

// ReadYAML decodes a YAML document from r into a graph.
// Validation rules are the same as for [ReadJSON]; an empty input is a
// PARSE_ERROR.
func ReadYAML(r io.Reader) (*graph.Graph, error) {
	var doc document
	if err := yaml.NewDecoder(r).Decode(&doc); err != nil {
		return nil, errors.Wrap(errors.ErrCodeParse, err, "decode yaml")
	}
	return doc.toGraph()
}

// ImportYAML reads the YAML file at path and returns the decoded graph.
func ImportYAML(path string) (*graph.Graph, error) {
	return Load(context.Background(), path, Options{Format: FormatYAML})
}

// ExportYAML writes g to a YAML file at path.
func ExportYAML(g *graph.Graph, path string) error {
	return Save(context.Background(), g, path, Options{Format: FormatYAML})
}
