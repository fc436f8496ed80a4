package cli

import (
	"context"
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/graphlab/wgraph/pkg/errors"
	"github.com/graphlab/wgraph/pkg/graph"
)

// vertexCommand creates the vertex command group.
func (c *CLI) vertexCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "vertex",
		Short: "Add or remove vertices in a graph file",
	}

	cmd.AddCommand(c.vertexAddCommand())
	cmd.AddCommand(c.vertexRemoveCommand())

	return cmd
}

// vertexAddCommand creates the "vertex add" subcommand. Without --number the
// new vertex is numbered one above the current maximum.
func (c *CLI) vertexAddCommand() *cobra.Command {
	number := -1

	cmd := &cobra.Command{
		Use:   "add [file]",
		Short: "Add a vertex",
		Example: `  wgraph vertex add graph.json
  wgraph vertex add graph.json --number 0`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			explicit := cmd.Flags().Changed("number")
			return c.editGraph(cmd.Context(), args[0], func(g *graph.Graph) (string, error) {
				if explicit {
					if err := g.AddVertexNumber(number); err != nil {
						return "", err
					}
					return fmt.Sprintf("Added vertex %d", number), nil
				}
				n, err := g.AddVertex()
				if err != nil {
					printNextStep("Seed the first vertex", fmt.Sprintf("%s vertex add %s --number 0", appName, args[0]))
					return "", err
				}
				return fmt.Sprintf("Added vertex %d", n), nil
			})
		},
	}

	cmd.Flags().IntVar(&number, "number", number, "explicit vertex number (required for an empty graph)")

	return cmd
}

// vertexRemoveCommand creates the "vertex remove" subcommand.
func (c *CLI) vertexRemoveCommand() *cobra.Command {
	return &cobra.Command{
		Use:     "remove [file] [number]",
		Aliases: []string{"rm"},
		Short:   "Remove a vertex and its incident edges, renumbering the vertices above it",
		Args:    cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			n, err := parseVertexArg(args[1])
			if err != nil {
				return err
			}
			return c.editGraph(cmd.Context(), args[0], func(g *graph.Graph) (string, error) {
				before := g.EdgeCount()
				if err := g.RemoveVertex(n); err != nil {
					return "", err
				}
				msg := fmt.Sprintf("Removed vertex %d", n)
				if dropped := before - g.EdgeCount(); dropped > 0 {
					msg += fmt.Sprintf(" and %s", plural(dropped, "edge", "edges"))
				}
				if shifted := countAbove(g.Numbers(), n); shifted > 0 {
					printWarning("%s renumbered", plural(shifted, "vertex", "vertices"))
				}
				return msg, nil
			})
		},
	}
}

// editGraph loads path, applies edit and writes the graph back on success.
// A failed edit leaves the file untouched.
func (c *CLI) editGraph(ctx context.Context, path string, edit func(*graph.Graph) (string, error)) error {
	g, err := c.loadGraph(ctx, path)
	if err != nil {
		return err
	}

	msg, err := edit(g)
	if err != nil {
		return err
	}

	if err := c.saveGraph(ctx, g, path); err != nil {
		return err
	}

	loggerFromContext(ctx).Debug("graph updated", "path", path)
	printSuccess("%s", msg)
	printFile(path)
	printStats(g.VertexCount(), g.EdgeCount())
	return nil
}

func parseVertexArg(s string) (int, error) {
	n, err := strconv.Atoi(s)
	if err != nil {
		return 0, errors.New(errors.ErrCodeInvalidInput, "invalid vertex number %q", s)
	}
	return n, nil
}

// countAbove returns how many numbers are at least n.
func countAbove(numbers []int, n int) int {
	count := 0
	for _, v := range numbers {
		if v >= n {
			count++
		}
	}
	return count
}
