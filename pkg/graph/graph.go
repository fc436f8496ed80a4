package graph

import (
	"cmp"
	"context"
	"maps"
	"slices"

	"github.com/graphlab/wgraph/pkg/errors"
	"github.com/graphlab/wgraph/pkg/observability"
)

// DefaultWeight is the weight used by [Graph.AddUnitEdge].
const DefaultWeight = 1

// Graph is a directed weighted graph over integer-numbered vertices.
//
// Vertices and edges are kept in insertion order. Edges reference vertices
// by number only; the adjacency view is recomputed from the edge list on
// every query, so it can never go stale after a mutation.
//
// The zero value is an empty graph ready to use.
// Graph is not safe for concurrent use without external synchronization.
type Graph struct {
	vertices []Vertex
	edges    []Edge
}

// New creates an empty graph.
func New() *Graph {
	return &Graph{}
}

// NewWithVertices creates a graph with vertices numbered 0..n-1 and no edges.
// A non-positive n yields an empty graph.
func NewWithVertices(n int) *Graph {
	g := &Graph{}
	for i := 0; i < n; i++ {
		g.vertices = append(g.vertices, Vertex{Number: i})
	}
	return g
}

// FromRecords builds a graph from decoded vertex and edge records and runs a
// full reconciliation pass.
//
// Vertex numbers must be unique (CONFLICT otherwise). Edges are taken
// verbatim: the uniqueness of (from, to) pairs is enforced on insertion only,
// not on load. An edge referencing an absent vertex fails with NOT_FOUND.
func FromRecords(vertices []Vertex, edges []Edge) (*Graph, error) {
	seen := make(map[int]bool, len(vertices))
	for _, v := range vertices {
		if seen[v.Number] {
			return nil, errors.New(errors.ErrCodeConflict, "duplicate vertex %d", v.Number)
		}
		seen[v.Number] = true
	}
	g := &Graph{
		vertices: slices.Clone(vertices),
		edges:    slices.Clone(edges),
	}
	if err := g.Reconcile(); err != nil {
		return nil, err
	}
	return g, nil
}

// index maps each vertex number to its position in g.vertices.
func (g *Graph) index() map[int]int {
	idx := make(map[int]int, len(g.vertices))
	for i, v := range g.vertices {
		idx[v.Number] = i
	}
	return idx
}

// Reconcile resolves the endpoints of every edge against the vertex set.
// It returns NOT_FOUND for the first edge whose source or target vertex does
// not exist. Reconcile holds no derived state and may be called repeatedly.
func (g *Graph) Reconcile() error {
	idx := g.index()
	for _, e := range g.edges {
		if err := reconcileEdge(idx, e); err != nil {
			return err
		}
	}
	return nil
}

func reconcileEdge(idx map[int]int, e Edge) error {
	if _, ok := idx[e.From]; !ok {
		return errors.New(errors.ErrCodeNotFound, "edge %d->%d: vertex %d does not exist", e.From, e.To, e.From)
	}
	if _, ok := idx[e.To]; !ok {
		return errors.New(errors.ErrCodeNotFound, "edge %d->%d: vertex %d does not exist", e.From, e.To, e.To)
	}
	return nil
}

// AddVertex appends a vertex numbered one above the current maximum and
// returns its number. On a graph without vertices there is no maximum to
// extend, so AddVertex fails with INVALID_INPUT; use [Graph.AddVertexNumber]
// to seed the first vertex explicitly.
func (g *Graph) AddVertex() (int, error) {
	if len(g.vertices) == 0 {
		return 0, errors.New(errors.ErrCodeInvalidInput, "graph has no vertices; add the first one with an explicit number")
	}
	next := slices.MaxFunc(g.vertices, func(a, b Vertex) int { return cmp.Compare(a.Number, b.Number) }).Number + 1
	g.vertices = append(g.vertices, Vertex{Number: next})
	g.notify("add_vertex")
	return next, nil
}

// AddVertexNumber appends a vertex with an explicit number.
// Returns INVALID_INPUT for a negative number and CONFLICT if the number
// is already taken.
func (g *Graph) AddVertexNumber(n int) error {
	if err := errors.ValidateVertexNumber(n); err != nil {
		return err
	}
	if g.HasVertex(n) {
		return errors.New(errors.ErrCodeConflict, "vertex %d already exists", n)
	}
	g.vertices = append(g.vertices, Vertex{Number: n})
	g.notify("add_vertex")
	return nil
}

// RemoveVertex deletes vertex n together with every edge incident to it,
// then compacts numbering: every vertex numbered above n moves down by one,
// and surviving edges are renumbered alongside so they keep pointing at the
// same vertices. Returns NOT_FOUND if n does not exist.
func (g *Graph) RemoveVertex(n int) error {
	pos, ok := g.index()[n]
	if !ok {
		return errors.New(errors.ErrCodeNotFound, "vertex %d does not exist", n)
	}

	g.edges = slices.DeleteFunc(g.edges, func(e Edge) bool { return e.touches(n) })
	g.vertices = slices.Delete(g.vertices, pos, pos+1)

	shift := func(x int) int {
		if x > n {
			return x - 1
		}
		return x
	}
	for i := range g.vertices {
		g.vertices[i].Number = shift(g.vertices[i].Number)
	}
	for i := range g.edges {
		g.edges[i].From = shift(g.edges[i].From)
		g.edges[i].To = shift(g.edges[i].To)
	}

	g.notify("remove_vertex")
	return nil
}

// AddEdge inserts the directed edge from→to with the given weight.
// Returns CONFLICT if an edge from→to already exists (the existing weight is
// left unchanged) and NOT_FOUND if either endpoint is absent. Nothing is
// modified on failure.
func (g *Graph) AddEdge(from, to, weight int) error {
	if _, ok := g.Edge(from, to); ok {
		return errors.New(errors.ErrCodeConflict, "edge %d->%d already exists", from, to)
	}
	e := Edge{From: from, To: to, Weight: weight}
	if err := reconcileEdge(g.index(), e); err != nil {
		return err
	}
	g.edges = append(g.edges, e)
	g.notify("add_edge")
	return nil
}

// AddUnitEdge inserts from→to with [DefaultWeight].
func (g *Graph) AddUnitEdge(from, to int) error {
	return g.AddEdge(from, to, DefaultWeight)
}

// RemoveEdge deletes the edge from→to.
// Returns NOT_FOUND, leaving the edge list unchanged, if it does not exist.
func (g *Graph) RemoveEdge(from, to int) error {
	i := slices.IndexFunc(g.edges, func(e Edge) bool { return e.connects(from, to) })
	if i < 0 {
		return errors.New(errors.ErrCodeNotFound, "edge %d->%d does not exist", from, to)
	}
	g.edges = slices.Delete(g.edges, i, i+1)
	g.notify("remove_edge")
	return nil
}

// Vertices returns a copy of the vertices in insertion order.
func (g *Graph) Vertices() []Vertex { return slices.Clone(g.vertices) }

// Edges returns a copy of the edges in insertion order.
func (g *Graph) Edges() []Edge { return slices.Clone(g.edges) }

// VertexCount returns the number of vertices.
func (g *Graph) VertexCount() int { return len(g.vertices) }

// EdgeCount returns the number of edges.
func (g *Graph) EdgeCount() int { return len(g.edges) }

// HasVertex reports whether a vertex numbered n exists.
func (g *Graph) HasVertex(n int) bool {
	return slices.ContainsFunc(g.vertices, func(v Vertex) bool { return v.Number == n })
}

// Edge returns the first edge from→to and true, or a zero Edge and false.
func (g *Graph) Edge(from, to int) (Edge, bool) {
	i := slices.IndexFunc(g.edges, func(e Edge) bool { return e.connects(from, to) })
	if i < 0 {
		return Edge{}, false
	}
	return g.edges[i], true
}

// Numbers returns all vertex numbers in ascending order.
func (g *Graph) Numbers() []int {
	nums := make([]int, len(g.vertices))
	for i, v := range g.vertices {
		nums[i] = v.Number
	}
	slices.Sort(nums)
	return nums
}

// Adjacency returns the outgoing edges of vertex n in edge insertion order.
// Returns NOT_FOUND if n does not exist. The result is computed from the
// current edge list.
func (g *Graph) Adjacency(n int) ([]AdjacencyEntry, error) {
	if !g.HasVertex(n) {
		return nil, errors.New(errors.ErrCodeNotFound, "vertex %d does not exist", n)
	}
	var out []AdjacencyEntry
	for _, e := range g.edges {
		if e.From == n {
			out = append(out, AdjacencyEntry{Destination: e.To, Weight: e.Weight})
		}
	}
	return out, nil
}

// AdjacencyMap returns the outgoing edges of every vertex keyed by vertex
// number. Vertices without outgoing edges map to an empty (non-nil) slice.
func (g *Graph) AdjacencyMap() map[int][]AdjacencyEntry {
	m := make(map[int][]AdjacencyEntry, len(g.vertices))
	for _, v := range g.vertices {
		m[v.Number] = []AdjacencyEntry{}
	}
	for _, e := range g.edges {
		if _, ok := m[e.From]; ok {
			m[e.From] = append(m[e.From], AdjacencyEntry{Destination: e.To, Weight: e.Weight})
		}
	}
	return m
}

// Clone returns an independent copy of the graph.
func (g *Graph) Clone() *Graph {
	return &Graph{
		vertices: slices.Clone(g.vertices),
		edges:    slices.Clone(g.edges),
	}
}

// Equal reports whether g and other have the same set of vertex numbers and
// the same set of edges, ignoring insertion order.
func (g *Graph) Equal(other *Graph) bool {
	if other == nil {
		return false
	}
	if !slices.Equal(g.Numbers(), other.Numbers()) {
		return false
	}
	return maps.Equal(edgeSet(g.edges), edgeSet(other.edges))
}

func edgeSet(edges []Edge) map[Edge]int {
	m := make(map[Edge]int, len(edges))
	for _, e := range edges {
		m[e]++
	}
	return m
}

func (g *Graph) notify(op string) {
	observability.Storage().OnMutate(context.Background(), observability.Event{
		Op:       op,
		Vertices: len(g.vertices),
		Edges:    len(g.edges),
	})
}
