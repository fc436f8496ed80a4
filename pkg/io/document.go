package io

import (
	"github.com/graphlab/wgraph/pkg/errors"
	"github.com/graphlab/wgraph/pkg/graph"
)

// document is the structured wire shape shared by the JSON, TOML and YAML
// codecs. Pointer fields distinguish a missing key from a zero value so that
// absent required fields can be reported.
type document struct {
	Vertices *[]vertexRecord `json:"vertices" toml:"vertices" yaml:"vertices"`
	Edges    *[]edgeRecord   `json:"edges" toml:"edges" yaml:"edges"`
}

type vertexRecord struct {
	Number *int `json:"number" toml:"number" yaml:"number"`
}

type edgeRecord struct {
	From   *int `json:"from" toml:"from" yaml:"from"`
	Weight *int `json:"weight" toml:"weight" yaml:"weight"`
	To     *int `json:"to" toml:"to" yaml:"to"`
}

func ptr(v int) *int { return &v }

// fromGraph converts g to its wire shape. Derived adjacency is not part of it.
func fromGraph(g *graph.Graph) document {
	vs := make([]vertexRecord, 0, g.VertexCount())
	for _, v := range g.Vertices() {
		vs = append(vs, vertexRecord{Number: ptr(v.Number)})
	}
	es := make([]edgeRecord, 0, g.EdgeCount())
	for _, e := range g.Edges() {
		es = append(es, edgeRecord{From: ptr(e.From), Weight: ptr(e.Weight), To: ptr(e.To)})
	}
	return document{Vertices: &vs, Edges: &es}
}

// toGraph validates the decoded shape and builds a reconciled graph.
//
// Missing fields and duplicate vertex numbers are PARSE_ERROR. Edges that
// reference absent vertices surface the NOT_FOUND from reconciliation.
func (d document) toGraph() (*graph.Graph, error) {
	if d.Vertices == nil {
		return nil, errors.New(errors.ErrCodeParse, "missing required field %q", "vertices")
	}
	if d.Edges == nil {
		return nil, errors.New(errors.ErrCodeParse, "missing required field %q", "edges")
	}

	vertices := make([]graph.Vertex, len(*d.Vertices))
	for i, v := range *d.Vertices {
		if v.Number == nil {
			return nil, errors.New(errors.ErrCodeParse, "vertex %d: missing required field %q", i, "number")
		}
		vertices[i] = graph.Vertex{Number: *v.Number}
	}

	edges := make([]graph.Edge, len(*d.Edges))
	for i, e := range *d.Edges {
		switch {
		case e.From == nil:
			return nil, errors.New(errors.ErrCodeParse, "edge %d: missing required field %q", i, "from")
		case e.To == nil:
			return nil, errors.New(errors.ErrCodeParse, "edge %d: missing required field %q", i, "to")
		case e.Weight == nil:
			return nil, errors.New(errors.ErrCodeParse, "edge %d: missing required field %q", i, "weight")
		}
		edges[i] = graph.Edge{From: *e.From, To: *e.To, Weight: *e.Weight}
	}

	g, err := graph.FromRecords(vertices, edges)
	if errors.Is(err, errors.ErrCodeConflict) {
		return nil, errors.Wrap(errors.ErrCodeParse, err, "invalid document")
	}
	return g, err
}
