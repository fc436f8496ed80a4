package io_test

import (
	"fmt"
	"os"
	"strings"

	"github.com/graphlab/wgraph/pkg/graph"
	"github.com/graphlab/wgraph/pkg/io"
)

func ExampleWriteMatrix() {
	g := graph.NewWithVertices(3)
	_ = g.AddEdge(0, 1, 5)
	_ = g.AddEdge(1, 2, 3)

	_ = io.WriteMatrix(g, os.Stdout, io.DefaultSeparator)
	// Output:
	// ;5;
	// ;;3
	// ;;
}

func ExampleReadJSON() {
	doc := `{
		"vertices": [{"number": 0}, {"number": 1}],
		"edges": [{"from": 0, "weight": 5, "to": 1}]
	}`

	g, err := io.ReadJSON(strings.NewReader(doc))
	if err != nil {
		fmt.Println("Error:", err)
		return
	}
	adj, _ := g.Adjacency(0)
	fmt.Println("Vertices:", g.Numbers())
	fmt.Println("Adjacency of 0:", adj)
	// Output:
	// Vertices: [0 1]
	// Adjacency of 0: [{1 5}]
}

func ExampleReadJSON_danglingEdge() {
	doc := `{"vertices": [{"number": 0}], "edges": [{"from": 0, "weight": 1, "to": 4}]}`

	_, err := io.ReadJSON(strings.NewReader(doc))
	fmt.Println(err)
	// Output:
	// NOT_FOUND: edge 0->4: vertex 4 does not exist
}
