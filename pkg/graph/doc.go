// Package graph provides a small directed weighted graph container.
//
// # Overview
//
// A [Graph] holds two ordered collections: vertices, identified by integer
// numbers, and weighted directed edges between vertex numbers. The edge list
// is the source of truth. Per-vertex adjacency is a derived view computed on
// demand by [Graph.Adjacency] and [Graph.AdjacencyMap].
//
// # Basic Usage
//
//	g := graph.NewWithVertices(3)
//	_ = g.AddEdge(0, 1, 5)
//	_ = g.AddEdge(1, 2, 3)
//
//	adj, _ := g.Adjacency(0) // [{Destination: 1, Weight: 5}]
//
// # Invariants
//
//   - Vertex numbers are unique.
//   - At most one edge per ordered pair, enforced by [Graph.AddEdge].
//   - Edge endpoints must exist when an edge is added or a graph is loaded.
//   - [Graph.RemoveVertex] compacts numbering: vertices and edge endpoints
//     above the removed number shift down by one.
//
// # Errors
//
// Operations return coded errors from pkg/errors:
//
//   - NOT_FOUND: a referenced vertex or edge is absent
//   - CONFLICT: an edge between the same ordered pair already exists
//   - INVALID_INPUT: [Graph.AddVertex] on an empty graph, negative numbers
//
// Mutations either apply fully or leave the graph unchanged.
//
// # Highlight
//
// [Highlight] attaches a selection of vertices and edges to a graph for
// display. It does not render anything and never fails.
//
// # Concurrency
//
// Graph instances are not safe for concurrent use. Each graph is an
// independent value; [Graph.Clone] produces a copy that shares nothing.
package graph
