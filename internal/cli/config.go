package cli

import (
	"os"
	"path/filepath"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"github.com/graphlab/wgraph/pkg/errors"
	graphio "github.com/graphlab/wgraph/pkg/io"
)

// Configuration keys. Each key is also a persistent flag and can be set via
// WGRAPH_<KEY> in the environment.
const (
	keySeparator = "separator"
	keyFormat    = "format"
	keyVerbose   = "verbose"
)

// configFileName is looked up in configDir when --config is not given.
const configFileName = "config.yaml"

// newConfig returns a viper instance with defaults and environment binding.
// Precedence is flag, then environment, then config file, then default.
func newConfig() *viper.Viper {
	v := viper.New()
	v.SetDefault(keySeparator, string(graphio.DefaultSeparator))
	v.SetDefault(keyFormat, "")
	v.SetDefault(keyVerbose, false)
	v.SetEnvPrefix(envPrefix)
	v.AutomaticEnv()
	return v
}

// bindFlags connects the persistent flags to their configuration keys.
func (c *CLI) bindFlags(fs *pflag.FlagSet) error {
	for _, key := range []string{keySeparator, keyFormat, keyVerbose} {
		if err := c.config.BindPFlag(key, fs.Lookup(key)); err != nil {
			return errors.Wrap(errors.ErrCodeInternal, err, "bind flag %s", key)
		}
	}
	return nil
}

// loadConfig reads the configuration file. An explicit path must exist; the
// default location ($XDG_CONFIG_HOME/wgraph/config.yaml) is optional.
func (c *CLI) loadConfig(path string) error {
	explicit := path != ""
	if !explicit {
		dir, err := configDir()
		if err != nil {
			return nil
		}
		path = filepath.Join(dir, configFileName)
		if _, err := os.Stat(path); os.IsNotExist(err) {
			return nil
		}
	}

	c.config.SetConfigFile(path)
	if err := c.config.ReadInConfig(); err != nil {
		if explicit && os.IsNotExist(err) {
			return errors.Wrap(errors.ErrCodeFileNotFound, err, "config file %s", path)
		}
		return errors.Wrap(errors.ErrCodeInvalidFormat, err, "read config %s", path)
	}
	return nil
}

// verbose reports whether debug logging is requested.
func (c *CLI) verbose() bool {
	return c.config.GetBool(keyVerbose)
}

// separator returns the configured matrix cell separator.
func (c *CLI) separator() (rune, error) {
	return errors.ParseSeparator(c.config.GetString(keySeparator))
}

// format returns the configured format override, or "" to detect formats
// from file extensions.
func (c *CLI) format() (graphio.Format, error) {
	name := c.config.GetString(keyFormat)
	if name == "" {
		return "", nil
	}
	return graphio.ParseFormat(name)
}

// fileOptions combines format and separator into load/save options.
func (c *CLI) fileOptions() (graphio.Options, error) {
	sep, err := c.separator()
	if err != nil {
		return graphio.Options{}, err
	}
	f, err := c.format()
	if err != nil {
		return graphio.Options{}, err
	}
	return graphio.Options{Format: f, Separator: sep}, nil
}
