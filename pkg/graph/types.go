package graph

import "fmt"

// Vertex is a graph node identified by its number.
//
// Numbers are unique within a graph. They are dense (0..n-1) for graphs
// built with [NewWithVertices] or decoded from a matrix, and stay dense
// across [Graph.RemoveVertex], which compacts them.
type Vertex struct {
	Number int
}

// Edge is a directed weighted connection between two vertex numbers.
// The edge list of a [Graph] is the source of truth for its structure.
type Edge struct {
	From   int
	To     int
	Weight int
}

// String formats the edge as "from->to (weight)".
func (e Edge) String() string {
	return fmt.Sprintf("%d->%d (%d)", e.From, e.To, e.Weight)
}

// connects reports whether the edge runs from→to.
func (e Edge) connects(from, to int) bool { return e.From == from && e.To == to }

// touches reports whether n is either endpoint of the edge.
func (e Edge) touches(n int) bool { return e.From == n || e.To == n }

// AdjacencyEntry is one outgoing edge seen from its source vertex.
// Entries are derived from the edge list on demand and are never stored.
type AdjacencyEntry struct {
	Destination int
	Weight      int
}
