package io

import (
	"bufio"
	"context"
	"io"
	"strconv"
	"strings"

	"github.com/graphlab/wgraph/pkg/errors"
	"github.com/graphlab/wgraph/pkg/graph"
)

// DefaultSeparator delimits matrix cells when no separator is configured.
const DefaultSeparator = ';'

// maxMatrixLine bounds a single matrix row. At a few bytes per cell this
// leaves room for graphs far beyond what the format is meant for.
const maxMatrixLine = 16 << 20

// WriteMatrix encodes g as an N×N adjacency matrix and writes it to w.
//
// Rows and columns follow the vertex numbers in ascending order. Cell (y, x)
// holds the weight of the edge from the y-th to the x-th vertex, or is blank
// when there is no such edge. Cells are joined by sep and every row ends with
// a newline:
//
//	;5;
//	;;3
//	;;
//
// If a loaded graph carries several edges for one pair, the first one wins.
func WriteMatrix(g *graph.Graph, w io.Writer, sep rune) error {
	if err := errors.ValidateSeparator(sep); err != nil {
		return err
	}

	nums := g.Numbers()
	pos := make(map[int]int, len(nums))
	for i, n := range nums {
		pos[n] = i
	}

	cells := make([][]string, len(nums))
	for y := range cells {
		cells[y] = make([]string, len(nums))
	}
	filled := make(map[[2]int]bool, g.EdgeCount())
	for _, e := range g.Edges() {
		y, x := pos[e.From], pos[e.To]
		if filled[[2]int{y, x}] {
			continue
		}
		filled[[2]int{y, x}] = true
		cells[y][x] = strconv.Itoa(e.Weight)
	}

	var b strings.Builder
	s := string(sep)
	for _, row := range cells {
		b.WriteString(strings.Join(row, s))
		b.WriteByte('\n')
	}
	if _, err := io.WriteString(w, b.String()); err != nil {
		return errors.Wrap(errors.ErrCodeInternal, err, "write matrix")
	}
	return nil
}

// ReadMatrix decodes an adjacency matrix from r.
//
// Every line is a row; N rows produce vertices 0..N-1. Each row is split on
// sep into N cells. A cell holding an integer (surrounding spaces ignored)
// becomes an edge from the row's vertex to the column's vertex with that
// weight; blank or non-numeric cells mean "no edge". Rows with a single
// trailing separator (N+1 fields, last one blank) are accepted as well.
//
// ReadMatrix returns INVALID_INPUT for an unusable separator and PARSE_ERROR
// for unreadable input or a row whose field count does not match N.
func ReadMatrix(r io.Reader, sep rune) (*graph.Graph, error) {
	if err := errors.ValidateSeparator(sep); err != nil {
		return nil, err
	}

	var rows []string
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 64*1024), maxMatrixLine)
	for sc.Scan() {
		rows = append(rows, sc.Text())
	}
	if err := sc.Err(); err != nil {
		return nil, errors.Wrap(errors.ErrCodeParse, err, "read matrix")
	}

	n := len(rows)
	vertices := make([]graph.Vertex, n)
	var edges []graph.Edge
	s := string(sep)
	for y, row := range rows {
		vertices[y] = graph.Vertex{Number: y}

		fields := strings.Split(row, s)
		if len(fields) == n+1 && strings.TrimSpace(fields[n]) == "" {
			fields = fields[:n]
		}
		if len(fields) != n {
			return nil, errors.New(errors.ErrCodeParse, "matrix row %d has %d fields, want %d", y, len(fields), n)
		}

		for x, cell := range fields {
			weight, err := strconv.Atoi(strings.TrimSpace(cell))
			if err != nil {
				continue
			}
			edges = append(edges, graph.Edge{From: y, To: x, Weight: weight})
		}
	}

	return graph.FromRecords(vertices, edges)
}

// ImportMatrix reads the matrix file at path using sep as cell separator.
func ImportMatrix(path string, sep rune) (*graph.Graph, error) {
	return Load(context.Background(), path, Options{Format: FormatMatrix, Separator: sep})
}

// ExportMatrix writes g as a matrix file at path using sep as cell separator.
func ExportMatrix(g *graph.Graph, path string, sep rune) error {
	return Save(context.Background(), g, path, Options{Format: FormatMatrix, Separator: sep})
}
