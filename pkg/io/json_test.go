package io

import (
	"bytes"
	"strings"
	"testing"

	"github.com/sebdah/goldie/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/graphlab/wgraph/pkg/errors"
	"github.com/graphlab/wgraph/pkg/graph"
)

// sample builds vertices {0,1,2} with edges 0->1 (5) and 1->2 (3).
func sample(t *testing.T) *graph.Graph {
	t.Helper()
	g := graph.NewWithVertices(3)
	require.NoError(t, g.AddEdge(0, 1, 5))
	require.NoError(t, g.AddEdge(1, 2, 3))
	return g
}

func TestWriteJSONGolden(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WriteJSON(sample(t), &buf))

	gold := goldie.New(t)
	gold.Assert(t, "sample_json", buf.Bytes())
}

func TestJSONRoundTrip(t *testing.T) {
	orig := sample(t)

	var buf bytes.Buffer
	require.NoError(t, WriteJSON(orig, &buf))

	got, err := ReadJSON(&buf)
	require.NoError(t, err)
	assert.True(t, orig.Equal(got))
}

func TestReadJSONSparseNumbers(t *testing.T) {
	input := `{
		"vertices": [{"number": 4}, {"number": 9}],
		"edges": [{"from": 9, "weight": -2, "to": 4}]
	}`

	g, err := ReadJSON(strings.NewReader(input))
	require.NoError(t, err)
	assert.Equal(t, []int{4, 9}, g.Numbers())

	e, ok := g.Edge(9, 4)
	require.True(t, ok)
	assert.Equal(t, -2, e.Weight)

	adj, err := g.Adjacency(9)
	require.NoError(t, err)
	assert.Equal(t, []graph.AdjacencyEntry{{Destination: 4, Weight: -2}}, adj)
}

func TestReadJSONEmptyGraph(t *testing.T) {
	g, err := ReadJSON(strings.NewReader(`{"vertices": [], "edges": []}`))
	require.NoError(t, err)
	assert.Zero(t, g.VertexCount())
	assert.Zero(t, g.EdgeCount())
}

func TestReadJSONErrors(t *testing.T) {
	tests := []struct {
		name  string
		input string
		code  errors.Code
	}{
		{"malformed", `{"vertices": [`, errors.ErrCodeParse},
		{"not an object", `[1, 2, 3]`, errors.ErrCodeParse},
		{"missing vertices", `{"edges": []}`, errors.ErrCodeParse},
		{"missing edges", `{"vertices": []}`, errors.ErrCodeParse},
		{"missing number", `{"vertices": [{}], "edges": []}`, errors.ErrCodeParse},
		{"missing from", `{"vertices": [{"number": 0}], "edges": [{"to": 0, "weight": 1}]}`, errors.ErrCodeParse},
		{"missing to", `{"vertices": [{"number": 0}], "edges": [{"from": 0, "weight": 1}]}`, errors.ErrCodeParse},
		{"missing weight", `{"vertices": [{"number": 0}], "edges": [{"from": 0, "to": 0}]}`, errors.ErrCodeParse},
		{"duplicate vertex", `{"vertices": [{"number": 1}, {"number": 1}], "edges": []}`, errors.ErrCodeParse},
		{"dangling from", `{"vertices": [{"number": 0}], "edges": [{"from": 3, "weight": 1, "to": 0}]}`, errors.ErrCodeNotFound},
		{"dangling to", `{"vertices": [{"number": 0}], "edges": [{"from": 0, "weight": 1, "to": 3}]}`, errors.ErrCodeNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			g, err := ReadJSON(strings.NewReader(tt.input))
			require.Error(t, err)
			assert.Nil(t, g)
			assert.Equal(t, tt.code, errors.GetCode(err))
		})
	}
}

func TestWriteJSONOmitsAdjacency(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WriteJSON(sample(t), &buf))
	assert.NotContains(t, buf.String(), "adjacency")
}
