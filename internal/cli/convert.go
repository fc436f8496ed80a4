package cli

import (
	"context"

	"github.com/spf13/cobra"

	graphio "github.com/graphlab/wgraph/pkg/io"
)

// convertOpts holds the command-line flags for the convert command.
type convertOpts struct {
	to string // output format; empty means detect from the output extension
}

// convertCommand creates the convert command that re-encodes a graph file.
// The input format follows --format or the input extension; the output
// format follows --to or the output extension.
func (c *CLI) convertCommand() *cobra.Command {
	var opts convertOpts

	cmd := &cobra.Command{
		Use:   "convert [input] [output]",
		Short: "Convert a graph file between JSON, TOML, YAML and matrix formats",
		Example: `  wgraph convert graph.json graph.csv
  wgraph convert graph.csv graph.yaml --separator ,
  wgraph convert graph.txt out.dat --to toml`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.runConvert(cmd.Context(), args[0], args[1], opts)
		},
	}

	cmd.Flags().StringVar(&opts.to, "to", "", "output format: json, toml, yaml, matrix (default: by extension)")

	return cmd
}

func (c *CLI) runConvert(ctx context.Context, input, output string, opts convertOpts) error {
	logger := loggerFromContext(ctx)
	prog := newProgress(logger)

	g, err := c.loadGraph(ctx, input)
	if err != nil {
		return err
	}

	out, err := c.fileOptions()
	if err != nil {
		return err
	}
	out.Format = ""
	if opts.to != "" {
		if out.Format, err = graphio.ParseFormat(opts.to); err != nil {
			return err
		}
	}
	if err := graphio.Save(ctx, g, output, out); err != nil {
		return err
	}

	prog.done("Converted " + input)
	printSuccess("Converted %s", input)
	printFile(output)
	printStats(g.VertexCount(), g.EdgeCount())
	if f, _ := resolvedFormat(output, out.Format); f == graphio.FormatMatrix && !dense(g.Numbers()) {
		printWarning("Vertex numbers are not contiguous; matrix rows are numbered from 0")
	}
	return nil
}

func resolvedFormat(path string, f graphio.Format) (graphio.Format, error) {
	if f != "" {
		return f, nil
	}
	return graphio.DetectFormat(path)
}

// dense reports whether sorted numbers are exactly 0..len-1.
func dense(numbers []int) bool {
	for i, n := range numbers {
		if n != i {
			return false
		}
	}
	return true
}
