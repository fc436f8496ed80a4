package cli

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/spf13/cobra"

	"github.com/graphlab/wgraph/pkg/errors"
	"github.com/graphlab/wgraph/pkg/graph"
)

// showOpts holds the command-line flags for the show command.
type showOpts struct {
	vertices []int    // vertex numbers to highlight
	edges    []string // edges to highlight, as "FROM:TO"
}

// showCommand creates the show command that prints a graph as an adjacency
// table with optional highlighting.
func (c *CLI) showCommand() *cobra.Command {
	var opts showOpts

	cmd := &cobra.Command{
		Use:   "show [file]",
		Short: "Print a graph as an adjacency table",
		Example: `  wgraph show graph.json
  wgraph show graph.csv --highlight 0,2 --highlight-edge 0:1`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.runShow(cmd.Context(), args[0], opts)
		},
	}

	cmd.Flags().IntSliceVar(&opts.vertices, "highlight", nil, "vertex numbers to highlight (comma-separated)")
	cmd.Flags().StringSliceVar(&opts.edges, "highlight-edge", nil, "edges to highlight as FROM:TO (comma-separated)")

	return cmd
}

func (c *CLI) runShow(ctx context.Context, path string, opts showOpts) error {
	g, err := c.loadGraph(ctx, path)
	if err != nil {
		return err
	}

	h, err := opts.highlight(g)
	if err != nil {
		return err
	}

	fmt.Println(StyleTitle.Render(path))
	printStats(g.VertexCount(), g.EdgeCount())
	if g.VertexCount() == 0 {
		printInfo("Graph has no vertices")
		return nil
	}
	fmt.Println(renderMatrix(h))
	return nil
}

// highlight builds the selection from the flags. Vertices and edges that are
// not in g are kept in the selection and simply never rendered.
func (o showOpts) highlight(g *graph.Graph) (*graph.Highlight, error) {
	vs := make([]graph.Vertex, 0, len(o.vertices))
	for _, n := range o.vertices {
		vs = append(vs, graph.Vertex{Number: n})
	}
	es := make([]graph.Edge, 0, len(o.edges))
	for _, ref := range o.edges {
		from, to, err := parseEdgeRef(ref)
		if err != nil {
			return nil, err
		}
		if e, ok := g.Edge(from, to); ok {
			es = append(es, e)
			continue
		}
		es = append(es, graph.Edge{From: from, To: to})
	}
	return graph.NewHighlight(g).WithVertices(vs...).WithEdges(es...), nil
}

// parseEdgeRef parses "FROM:TO" into its vertex numbers.
func parseEdgeRef(s string) (from, to int, err error) {
	a, b, ok := strings.Cut(strings.TrimSpace(s), ":")
	if ok {
		from, err = strconv.Atoi(strings.TrimSpace(a))
	}
	if ok && err == nil {
		to, err = strconv.Atoi(strings.TrimSpace(b))
	}
	if !ok || err != nil {
		return 0, 0, errors.New(errors.ErrCodeInvalidInput, "invalid edge %q (want FROM:TO)", s)
	}
	return from, to, nil
}

// renderMatrix draws the adjacency table of h.Graph. Rows are sources and
// columns destinations, both in ascending vertex order. Highlighted vertices
// color their row and column header; highlighted edges color their cell.
func renderMatrix(h *graph.Highlight) string {
	nums := h.Graph.Numbers()

	headers := make([]string, 0, len(nums)+1)
	headers = append(headers, "")
	for _, n := range nums {
		headers = append(headers, strconv.Itoa(n))
	}

	rows := make([][]string, len(nums))
	for y, from := range nums {
		row := make([]string, 0, len(nums)+1)
		row = append(row, strconv.Itoa(from))
		for _, to := range nums {
			cell := "·"
			if e, ok := h.Graph.Edge(from, to); ok {
				cell = strconv.Itoa(e.Weight)
			}
			row = append(row, cell)
		}
		rows[y] = row
	}

	headerStyle := lipgloss.NewStyle().Foreground(colorGray).Bold(true).Padding(0, 1)
	cellStyle := lipgloss.NewStyle().Padding(0, 1).Align(lipgloss.Right)

	t := table.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(lipgloss.NewStyle().Foreground(colorDim)).
		Headers(headers...).
		Rows(rows...).
		StyleFunc(func(row, col int) lipgloss.Style {
			if row == table.HeaderRow {
				if col > 0 && h.IsVertexHighlighted(nums[col-1]) {
					return headerStyle.Foreground(colorYellow)
				}
				return headerStyle
			}
			if col == 0 {
				if h.IsVertexHighlighted(nums[row]) {
					return headerStyle.Foreground(colorYellow)
				}
				return headerStyle
			}
			from, to := nums[row], nums[col-1]
			switch {
			case h.IsEdgeHighlighted(from, to):
				return cellStyle.Inherit(StyleHighlight)
			case rows[row][col] == "·":
				return cellStyle.Foreground(colorDim)
			}
			return cellStyle.Foreground(colorWhite)
		})

	return t.Render()
}
