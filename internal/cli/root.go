package cli

import (
	"github.com/spf13/cobra"

	"github.com/graphlab/wgraph/pkg/buildinfo"
	graphio "github.com/graphlab/wgraph/pkg/io"
)

// RootCommand creates the root cobra command with all subcommands registered.
//
// Persistent flags are bound to the configuration so that every command sees
// the same resolved values:
//
//	--config     config file (default $XDG_CONFIG_HOME/wgraph/config.yaml)
//	--separator  matrix cell separator (default ";")
//	--format     force json, toml, yaml or matrix instead of detecting by extension
//	--verbose    debug logging
//
// The config file is read and the log level applied in PersistentPreRunE,
// before any subcommand runs.
func (c *CLI) RootCommand() *cobra.Command {
	var cfgFile string

	root := &cobra.Command{
		Use:           appName,
		Short:         "wgraph edits directed weighted graphs stored as documents or matrices",
		Long:          `wgraph is a CLI tool for creating, converting and inspecting small directed weighted graphs stored as JSON, TOML, YAML or delimited adjacency matrices.`,
		Version:       buildinfo.Version,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if err := c.loadConfig(cfgFile); err != nil {
				return err
			}
			if c.verbose() {
				c.SetLogLevel(LogDebug)
			}
			c.Logger.Debug("starting", "build", buildinfo.Summary(), "config", c.config.ConfigFileUsed())
			cmd.SetContext(withLogger(cmd.Context(), c.Logger))
			return nil
		},
	}

	root.SetVersionTemplate(buildinfo.Template())

	flags := root.PersistentFlags()
	flags.StringVar(&cfgFile, "config", "", "config file (default $XDG_CONFIG_HOME/wgraph/config.yaml)")
	flags.String(keySeparator, string(graphio.DefaultSeparator), "matrix cell separator")
	flags.String(keyFormat, "", "file format: json, toml, yaml, matrix (default: by extension)")
	flags.BoolP(keyVerbose, "v", false, "enable verbose logging")
	_ = c.bindFlags(flags)

	_ = root.RegisterFlagCompletionFunc(keyFormat, func(*cobra.Command, []string, string) ([]string, cobra.ShellCompDirective) {
		names := make([]string, len(graphio.Formats))
		for i, f := range graphio.Formats {
			names[i] = string(f)
		}
		return names, cobra.ShellCompDirectiveNoFileComp
	})

	// Register all subcommands
	root.AddCommand(c.convertCommand())
	root.AddCommand(c.showCommand())
	root.AddCommand(c.inspectCommand())
	root.AddCommand(c.vertexCommand())
	root.AddCommand(c.edgeCommand())
	root.AddCommand(c.completionCommand())

	return root
}
