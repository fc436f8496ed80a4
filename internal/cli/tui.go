package cli

import (
	"fmt"
	"strconv"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"

	"github.com/graphlab/wgraph/pkg/graph"
)

// List styles
var (
	listSelectedStyle = lipgloss.NewStyle().Bold(true).Foreground(colorCyan)
	listNormalStyle   = lipgloss.NewStyle().Foreground(colorWhite)
	listDimStyle      = lipgloss.NewStyle().Foreground(colorDim)
)

// maxMatrixPreview is the largest vertex count for which the inspector also
// draws the full adjacency table.
const maxMatrixPreview = 12

// =============================================================================
// VertexListModel - Interactive vertex browser
// =============================================================================

// VertexListModel is the bubbletea model for browsing the vertices of a graph
// and the outgoing edges of the vertex under the cursor.
type VertexListModel struct {
	Graph    *graph.Graph
	Numbers  []int
	Cursor   int
	Selected *graph.Vertex
	Height   int
	Offset   int
}

// NewVertexListModel creates a new vertex list model.
func NewVertexListModel(g *graph.Graph) VertexListModel {
	return VertexListModel{
		Graph:   g,
		Numbers: g.Numbers(),
		Height:  15,
	}
}

func (m VertexListModel) Init() tea.Cmd {
	return nil
}

func (m VertexListModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c", "esc":
			return m, tea.Quit
		case "up", "k":
			if m.Cursor > 0 {
				m.Cursor--
				if m.Cursor < m.Offset {
					m.Offset = m.Cursor
				}
			}
		case "down", "j":
			if m.Cursor < len(m.Numbers)-1 {
				m.Cursor++
				if m.Cursor >= m.Offset+m.Height {
					m.Offset = m.Cursor - m.Height + 1
				}
			}
		case "home", "g":
			m.Cursor, m.Offset = 0, 0
		case "end", "G":
			if len(m.Numbers) > 0 {
				m.Cursor = len(m.Numbers) - 1
				m.Offset = max(0, m.Cursor-m.Height+1)
			}
		case "enter":
			if len(m.Numbers) == 0 {
				return m, nil
			}
			m.Selected = &graph.Vertex{Number: m.Numbers[m.Cursor]}
			return m, tea.Quit
		}
	case tea.WindowSizeMsg:
		m.Height = msg.Height - 8
		if m.Height < 5 {
			m.Height = 5
		}
	}
	return m, nil
}

// highlight selects the vertex under the cursor and its outgoing edges.
func (m VertexListModel) highlight() *graph.Highlight {
	h := graph.NewHighlight(m.Graph)
	if len(m.Numbers) == 0 {
		return h
	}
	n := m.Numbers[m.Cursor]
	var out []graph.Edge
	for _, e := range m.Graph.Edges() {
		if e.From == n {
			out = append(out, e)
		}
	}
	return h.WithVertices(graph.Vertex{Number: n}).WithEdges(out...)
}

func (m VertexListModel) View() string {
	var b strings.Builder

	b.WriteString(StyleTitle.Render("Vertices"))
	b.WriteString("  ")
	b.WriteString(listDimStyle.Render(formatStats(m.Graph.VertexCount(), m.Graph.EdgeCount())))
	b.WriteString("\n")
	b.WriteString(listDimStyle.Render("↑/↓ navigate  ⏎ select  q quit"))
	b.WriteString("\n\n")

	if len(m.Numbers) == 0 {
		b.WriteString(listDimStyle.Render("  (no vertices)"))
		b.WriteString("\n")
		return b.String()
	}

	end := min(m.Offset+m.Height, len(m.Numbers))
	var list strings.Builder
	for i := m.Offset; i < end; i++ {
		n := m.Numbers[i]
		adj, _ := m.Graph.Adjacency(n)
		line := fmt.Sprintf("%-6d %s", n, listDimStyle.Render(fmt.Sprintf("%d out", len(adj))))
		if i == m.Cursor {
			list.WriteString(listSelectedStyle.Render("▸ " + line))
		} else {
			list.WriteString(listNormalStyle.Render("  " + line))
		}
		list.WriteString("\n")
	}

	detail := m.adjacencyTable(m.Numbers[m.Cursor])
	b.WriteString(lipgloss.JoinHorizontal(lipgloss.Top, list.String(), "   ", detail))
	b.WriteString("\n")

	if len(m.Numbers) <= maxMatrixPreview {
		b.WriteString(renderMatrix(m.highlight()))
		b.WriteString("\n")
	}

	b.WriteString(listDimStyle.Render(fmt.Sprintf("  [%d/%d]", m.Cursor+1, len(m.Numbers))))
	return b.String()
}

// adjacencyTable lists the outgoing edges of vertex n.
func (m VertexListModel) adjacencyTable(n int) string {
	adj, err := m.Graph.Adjacency(n)
	if err != nil || len(adj) == 0 {
		return listDimStyle.Render(fmt.Sprintf("vertex %d has no outgoing edges", n))
	}

	rows := make([][]string, len(adj))
	for i, a := range adj {
		rows[i] = []string{strconv.Itoa(n), iconArrow, strconv.Itoa(a.Destination), strconv.Itoa(a.Weight)}
	}

	headerStyle := lipgloss.NewStyle().Foreground(colorGray).Bold(true)
	t := table.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(lipgloss.NewStyle().Foreground(colorDim)).
		Headers("From", "", "To", "Weight").
		Rows(rows...).
		StyleFunc(func(row, col int) lipgloss.Style {
			if row == table.HeaderRow {
				return headerStyle
			}
			if col == 3 {
				return StyleNumber
			}
			return listNormalStyle
		})
	return t.Render()
}
