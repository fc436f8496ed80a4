package cli

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/graphlab/wgraph/pkg/errors"
	graphio "github.com/graphlab/wgraph/pkg/io"
)

func TestConfigDefaults(t *testing.T) {
	c, _ := newTestCLI(t)

	opts, err := c.fileOptions()
	if err != nil {
		t.Fatalf("fileOptions: %v", err)
	}
	if opts.Separator != graphio.DefaultSeparator {
		t.Errorf("separator = %q, want %q", opts.Separator, graphio.DefaultSeparator)
	}
	if opts.Format != "" {
		t.Errorf("format = %q, want empty", opts.Format)
	}
	if c.verbose() {
		t.Error("verbose should default to false")
	}
}

func TestConfigFile(t *testing.T) {
	c, _ := newTestCLI(t)
	cfg := filepath.Join(t.TempDir(), "wgraph.yaml")
	if err := os.WriteFile(cfg, []byte("separator: \"|\"\nformat: matrix\n"), 0644); err != nil {
		t.Fatal(err)
	}

	if err := c.loadConfig(cfg); err != nil {
		t.Fatalf("loadConfig: %v", err)
	}
	opts, err := c.fileOptions()
	if err != nil {
		t.Fatalf("fileOptions: %v", err)
	}
	if opts.Separator != '|' || opts.Format != graphio.FormatMatrix {
		t.Errorf("options = %+v, want separator | and matrix", opts)
	}
}

func TestConfigDefaultLocation(t *testing.T) {
	c, _ := newTestCLI(t)
	dir := filepath.Join(os.Getenv("XDG_CONFIG_HOME"), appName)
	if err := os.MkdirAll(dir, 0755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(filepath.Join(dir, configFileName), []byte("separator: \",\"\n"), 0644); err != nil {
		t.Fatal(err)
	}

	in := writeSample(t, "g.json")
	out := filepath.Join(t.TempDir(), "g.csv")
	if err := execute(t, c, "convert", in, out); err != nil {
		t.Fatalf("convert: %v", err)
	}
	if got, want := readFile(t, out), ",5,\n,,3\n,,\n"; got != want {
		t.Errorf("matrix = %q, want %q", got, want)
	}
}

func TestConfigMissingDefaultIsIgnored(t *testing.T) {
	c, _ := newTestCLI(t)
	if err := c.loadConfig(""); err != nil {
		t.Errorf("loadConfig with no default file: %v", err)
	}
}

func TestConfigMissingExplicitFile(t *testing.T) {
	c, _ := newTestCLI(t)
	err := c.loadConfig(filepath.Join(t.TempDir(), "missing.yaml"))
	wantCode(t, err, errors.ErrCodeFileNotFound)
}

func TestConfigPrecedence(t *testing.T) {
	cfg := filepath.Join(t.TempDir(), "wgraph.yaml")
	if err := os.WriteFile(cfg, []byte("separator: \"|\"\n"), 0644); err != nil {
		t.Fatal(err)
	}
	in := writeSample(t, "g.json")

	tests := []struct {
		name string
		env  string
		args []string
		want string
	}{
		{"config file", "", nil, "|5|\n||3\n||\n"},
		{"env over config", "#", nil, "#5#\n##3\n##\n"},
		{"flag over env", "#", []string{"--separator", "/"}, "/5/\n//3\n//\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c, _ := newTestCLI(t)
			t.Setenv("WGRAPH_SEPARATOR", tt.env)

			out := filepath.Join(t.TempDir(), "g.csv")
			args := append([]string{"--config", cfg}, tt.args...)
			args = append(args, "convert", in, out)
			if err := execute(t, c, args...); err != nil {
				t.Fatalf("convert: %v", err)
			}
			if got := readFile(t, out); got != tt.want {
				t.Errorf("matrix = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestConfigInvalidFormat(t *testing.T) {
	c, _ := newTestCLI(t)
	t.Setenv("WGRAPH_FORMAT", "xml")

	_, err := c.fileOptions()
	wantCode(t, err, errors.ErrCodeUnsupported)
}
