package io

import (
	"context"
	"encoding/json"
	"io"

	"github.com/graphlab/wgraph/pkg/errors"
	"github.com/graphlab/wgraph/pkg/graph"
)

// WriteJSON encodes g as an indented JSON document and writes it to w.
// Fields appear in a fixed order (vertices, edges; from, weight, to) so the
// output is stable across runs and can be re-imported with [ReadJSON].
func WriteJSON(g *graph.Graph, w io.Writer) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(fromGraph(g)); err != nil {
		return errors.Wrap(errors.ErrCodeInternal, err, "encode json")
	}
	return nil
}

// ReadJSON decodes a JSON document from r into a graph.
//
// The input must be an object with "vertices" and "edges" arrays:
//
//	{
//	  "vertices": [{"number": 0}, {"number": 1}],
//	  "edges": [{"from": 0, "weight": 5, "to": 1}]
//	}
//
// ReadJSON returns PARSE_ERROR if the JSON is malformed, a required field is
// missing or a vertex number repeats, and NOT_FOUND if an edge references a
// vertex that is not listed. The returned graph has been reconciled.
// ReadJSON does not close r.
func ReadJSON(r io.Reader) (*graph.Graph, error) {
	var doc document
	if err := json.NewDecoder(r).Decode(&doc); err != nil {
		return nil, errors.Wrap(errors.ErrCodeParse, err, "decode json")
	}
	return doc.toGraph()
}

// ImportJSON reads the JSON file at path and returns the decoded graph.
// The whole file is read before decoding.
func ImportJSON(path string) (*graph.Graph, error) {
	return Load(context.Background(), path, Options{Format: FormatJSON})
}

// ExportJSON writes g to a JSON file at path, replacing any existing file.
func ExportJSON(g *graph.Graph, path string) error {
	return Save(context.Background(), g, path, Options{Format: FormatJSON})
}
