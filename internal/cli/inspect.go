package cli

import (
	"context"
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
)

// inspectCommand creates the inspect command that opens an interactive
// vertex browser. Selecting a vertex prints its outgoing edges on exit.
func (c *CLI) inspectCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "inspect [file]",
		Short: "Browse the vertices and edges of a graph interactively",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.runInspect(cmd.Context(), args[0])
		},
	}
}

func (c *CLI) runInspect(ctx context.Context, path string) error {
	g, err := c.loadGraph(ctx, path)
	if err != nil {
		return err
	}

	p := tea.NewProgram(NewVertexListModel(g), tea.WithContext(ctx))
	finalModel, err := p.Run()
	if err != nil {
		return err
	}

	fm, ok := finalModel.(VertexListModel)
	if !ok || fm.Selected == nil {
		return nil
	}

	n := fm.Selected.Number
	adj, err := g.Adjacency(n)
	if err != nil {
		return err
	}
	printKeyValue("Vertex", StyleNumber.Render(fmt.Sprint(n)))
	printKeyValue("Out-degree", fmt.Sprint(len(adj)))
	if len(adj) == 0 {
		printDetail("no outgoing edges")
	}
	for _, a := range adj {
		printDetail("%d %s %d (weight %d)", n, iconArrow, a.Destination, a.Weight)
	}
	return nil
}
