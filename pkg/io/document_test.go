package io

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/graphlab/wgraph/pkg/errors"
	"github.com/graphlab/wgraph/pkg/graph"
)

func TestTOMLRoundTrip(t *testing.T) {
	orig := sample(t)

	var buf bytes.Buffer
	require.NoError(t, WriteTOML(orig, &buf))
	assert.Contains(t, buf.String(), "[[vertices]]")
	assert.Contains(t, buf.String(), "[[edges]]")

	got, err := ReadTOML(&buf)
	require.NoError(t, err)
	assert.True(t, orig.Equal(got))
}

func TestReadTOML(t *testing.T) {
	input := `
[[vertices]]
number = 0

[[vertices]]
number = 1

[[edges]]
from = 1
weight = 9
to = 0
`
	g, err := ReadTOML(strings.NewReader(input))
	require.NoError(t, err)
	assert.Equal(t, []graph.Edge{{From: 1, To: 0, Weight: 9}}, g.Edges())
}

func TestReadTOMLErrors(t *testing.T) {
	tests := []struct {
		name  string
		input string
		code  errors.Code
	}{
		{"malformed", "[[vertices]\nnumber = ", errors.ErrCodeParse},
		{"missing edges", "[[vertices]]\nnumber = 0\n", errors.ErrCodeParse},
		{"dangling edge", "[[vertices]]\nnumber = 0\n\n[[edges]]\nfrom = 0\nweight = 1\nto = 5\n", errors.ErrCodeNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ReadTOML(strings.NewReader(tt.input))
			require.Error(t, err)
			assert.Equal(t, tt.code, errors.GetCode(err))
		})
	}
}

func TestYAMLRoundTrip(t *testing.T) {
	orig := sample(t)

	var buf bytes.Buffer
	require.NoError(t, WriteYAML(orig, &buf))
	assert.Contains(t, buf.String(), "vertices:")
	assert.Contains(t, buf.String(), "edges:")

	got, err := ReadYAML(&buf)
	require.NoError(t, err)
	assert.True(t, orig.Equal(got))
}

func TestReadYAML(t *testing.T) {
	input := `
vertices:
  - number: 2
  - number: 5
edges:
  - {from: 2, weight: 4, to: 5}
`
	g, err := ReadYAML(strings.NewReader(input))
	require.NoError(t, err)
	assert.Equal(t, []int{2, 5}, g.Numbers())
	assert.Equal(t, []graph.Edge{{From: 2, To: 5, Weight: 4}}, g.Edges())
}

func TestReadYAMLErrors(t *testing.T) {
	tests := []struct {
		name  string
		input string
		code  errors.Code
	}{
		{"empty", "", errors.ErrCodeParse},
		{"malformed", "vertices: [", errors.ErrCodeParse},
		{"missing vertices", "edges: []\n", errors.ErrCodeParse},
		{"missing weight", "vertices:\n  - number: 0\nedges:\n  - {from: 0, to: 0}\n", errors.ErrCodeParse},
		{"duplicate vertex", "vertices:\n  - number: 0\n  - number: 0\nedges: []\n", errors.ErrCodeParse},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ReadYAML(strings.NewReader(tt.input))
			require.Error(t, err)
			assert.Equal(t, tt.code, errors.GetCode(err))
		})
	}
}
