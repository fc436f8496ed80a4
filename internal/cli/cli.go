// Package cli implements the wgraph command-line interface.
package cli

import (
	"context"
	"io"
	"os"
	"path/filepath"

	"github.com/charmbracelet/log"
	"github.com/spf13/viper"

	"github.com/graphlab/wgraph/pkg/graph"
	graphio "github.com/graphlab/wgraph/pkg/io"
	"github.com/graphlab/wgraph/pkg/observability"
)

// =============================================================================
// Constants
// =============================================================================

const (
	// appName is the application name used for directories and display.
	appName = "wgraph"

	// envPrefix namespaces environment overrides (WGRAPH_SEPARATOR, ...).
	envPrefix = "WGRAPH"
)

// Log levels exported for use in main.go.
const (
	LogDebug = log.DebugLevel
	LogInfo  = log.InfoLevel
)

// =============================================================================
// CLI - Central CLI State
// =============================================================================

// CLI holds shared state for all commands.
type CLI struct {
	Logger *log.Logger
	config *viper.Viper
}

// New creates a new CLI instance with a default logger and configuration.
// Storage hooks are registered so that loads, saves and mutations are
// logged at debug level.
func New(w io.Writer, level log.Level) *CLI {
	c := &CLI{
		Logger: newLogger(w, level),
		config: newConfig(),
	}
	observability.SetStorageHooks(&storageLogger{logger: c.Logger})
	return c
}

// SetLogLevel updates the logger's level.
func (c *CLI) SetLogLevel(level log.Level) {
	c.Logger.SetLevel(level)
}

// =============================================================================
// Graph Files
// =============================================================================

// loadGraph reads the graph file at path using the configured format and
// separator.
func (c *CLI) loadGraph(ctx context.Context, path string) (*graph.Graph, error) {
	opts, err := c.fileOptions()
	if err != nil {
		return nil, err
	}
	return graphio.Load(ctx, path, opts)
}

// saveGraph writes g back to path with the same options loadGraph used.
func (c *CLI) saveGraph(ctx context.Context, g *graph.Graph, path string) error {
	opts, err := c.fileOptions()
	if err != nil {
		return err
	}
	return graphio.Save(ctx, g, path, opts)
}

// =============================================================================
// Paths
// =============================================================================

// configDir returns the config directory using XDG standard (~/.config/wgraph/).
func configDir() (string, error) {
	if configHome := os.Getenv("XDG_CONFIG_HOME"); configHome != "" {
		return filepath.Join(configHome, appName), nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".config", appName), nil
}
