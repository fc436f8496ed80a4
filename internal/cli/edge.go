package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/graphlab/wgraph/pkg/graph"
)

// edgeCommand creates the edge command group.
func (c *CLI) edgeCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "edge",
		Short: "Add or remove edges in a graph file",
	}

	cmd.AddCommand(c.edgeAddCommand())
	cmd.AddCommand(c.edgeRemoveCommand())

	return cmd
}

// edgeAddCommand creates the "edge add" subcommand.
func (c *CLI) edgeAddCommand() *cobra.Command {
	weight := graph.DefaultWeight

	cmd := &cobra.Command{
		Use:   "add [file] [from] [to]",
		Short: "Add a weighted edge between two existing vertices",
		Example: `  wgraph edge add graph.json 0 1 --weight 5
  wgraph edge add graph.csv 2 2`,
		Args: cobra.ExactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			from, to, err := parseEndpoints(args[1], args[2])
			if err != nil {
				return err
			}
			return c.editGraph(cmd.Context(), args[0], func(g *graph.Graph) (string, error) {
				if err := g.AddEdge(from, to, weight); err != nil {
					return "", err
				}
				return fmt.Sprintf("Added edge %s", graph.Edge{From: from, To: to, Weight: weight}), nil
			})
		},
	}

	cmd.Flags().IntVarP(&weight, "weight", "w", weight, "edge weight")

	return cmd
}

// edgeRemoveCommand creates the "edge remove" subcommand.
func (c *CLI) edgeRemoveCommand() *cobra.Command {
	return &cobra.Command{
		Use:     "remove [file] [from] [to]",
		Aliases: []string{"rm"},
		Short:   "Remove the edge between two vertices",
		Args:    cobra.ExactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			from, to, err := parseEndpoints(args[1], args[2])
			if err != nil {
				return err
			}
			return c.editGraph(cmd.Context(), args[0], func(g *graph.Graph) (string, error) {
				e, _ := g.Edge(from, to)
				if err := g.RemoveEdge(from, to); err != nil {
					return "", err
				}
				return fmt.Sprintf("Removed edge %s", e), nil
			})
		},
	}
}

func parseEndpoints(from, to string) (int, int, error) {
	f, err := parseVertexArg(from)
	if err != nil {
		return 0, 0, err
	}
	t, err := parseVertexArg(to)
	if err != nil {
		return 0, 0, err
	}
	return f, t, nil
}
