package graph

import "slices"

// Highlight pairs a graph with a selection of vertices and edges to emphasize
// when the graph is displayed. It is a passive carrier: selections are not
// validated against the graph, and references to absent vertices or edges
// are kept as given.
type Highlight struct {
	Graph *Graph

	vertices []Vertex
	edges    []Edge
}

// NewHighlight wraps g with empty selections.
func NewHighlight(g *Graph) *Highlight {
	return &Highlight{
		Graph:    g,
		vertices: []Vertex{},
		edges:    []Edge{},
	}
}

// WithVertices replaces the highlighted vertices and returns h for chaining.
// Calling it with no arguments (a nil slice) keeps the current selection;
// passing an empty non-nil slice clears it.
//
//	h := graph.NewHighlight(g).
//	    WithVertices(graph.Vertex{Number: 0}, graph.Vertex{Number: 2}).
//	    WithEdges()
func (h *Highlight) WithVertices(vs ...Vertex) *Highlight {
	if vs != nil {
		h.vertices = slices.Clone(vs)
	}
	return h
}

// WithEdges replaces the highlighted edges and returns h for chaining.
// A nil slice keeps the current selection; an empty non-nil slice clears it.
func (h *Highlight) WithEdges(es ...Edge) *Highlight {
	if es != nil {
		h.edges = slices.Clone(es)
	}
	return h
}

// HighlightedVertices returns a copy of the highlighted vertices. Never nil.
func (h *Highlight) HighlightedVertices() []Vertex {
	if h.vertices == nil {
		return []Vertex{}
	}
	return slices.Clone(h.vertices)
}

// HighlightedEdges returns a copy of the highlighted edges. Never nil.
func (h *Highlight) HighlightedEdges() []Edge {
	if h.edges == nil {
		return []Edge{}
	}
	return slices.Clone(h.edges)
}

// IsVertexHighlighted reports whether vertex n is in the selection.
func (h *Highlight) IsVertexHighlighted(n int) bool {
	return slices.ContainsFunc(h.vertices, func(v Vertex) bool { return v.Number == n })
}

// IsEdgeHighlighted reports whether an edge from→to is in the selection.
func (h *Highlight) IsEdgeHighlighted(from, to int) bool {
	return slices.ContainsFunc(h.edges, func(e Edge) bool { return e.connects(from, to) })
}
