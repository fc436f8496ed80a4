package io

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/graphlab/wgraph/pkg/errors"
	"github.com/graphlab/wgraph/pkg/graph"
	"github.com/graphlab/wgraph/pkg/observability"
)

// Format identifies a persisted graph encoding.
type Format string

// Supported formats.
const (
	FormatJSON   Format = "json"
	FormatTOML   Format = "toml"
	FormatYAML   Format = "yaml"
	FormatMatrix Format = "matrix"
)

// Formats lists every supported format in display order.
var Formats = []Format{FormatJSON, FormatTOML, FormatYAML, FormatMatrix}

var extensions = map[string]Format{
	".json":   FormatJSON,
	".toml":   FormatTOML,
	".yaml":   FormatYAML,
	".yml":    FormatYAML,
	".csv":    FormatMatrix,
	".txt":    FormatMatrix,
	".matrix": FormatMatrix,
}

type codec struct {
	read  func(r io.Reader, sep rune) (*graph.Graph, error)
	write func(g *graph.Graph, w io.Writer, sep rune) error
}

var codecs = map[Format]codec{
	FormatJSON: {
		read:  func(r io.Reader, _ rune) (*graph.Graph, error) { return ReadJSON(r) },
		write: func(g *graph.Graph, w io.Writer, _ rune) error { return WriteJSON(g, w) },
	},
	FormatTOML: {
		read:  func(r io.Reader, _ rune) (*graph.Graph, error) { return ReadTOML(r) },
		write: func(g *graph.Graph, w io.Writer, _ rune) error { return WriteTOML(g, w) },
	},
	FormatYAML: {
		read:  func(r io.Reader, _ rune) (*graph.Graph, error) { return ReadYAML(r) },
		write: func(g *graph.Graph, w io.Writer, _ rune) error { return WriteYAML(g, w) },
	},
	FormatMatrix: {
		read:  ReadMatrix,
		write: WriteMatrix,
	},
}

// ParseFormat converts a user-supplied format name to a Format.
// Matching is case-insensitive; "yml" and "csv" are accepted as aliases.
func ParseFormat(name string) (Format, error) {
	switch f := Format(strings.ToLower(strings.TrimSpace(name))); f {
	case FormatJSON, FormatTOML, FormatYAML, FormatMatrix:
		return f, nil
	case "yml":
		return FormatYAML, nil
	case "csv":
		return FormatMatrix, nil
	}
	return "", errors.New(errors.ErrCodeUnsupported, "unsupported format %q (want json, toml, yaml or matrix)", name)
}

// DetectFormat infers the format from the file extension of path.
func DetectFormat(path string) (Format, error) {
	ext := strings.ToLower(filepath.Ext(path))
	if f, ok := extensions[ext]; ok {
		return f, nil
	}
	return "", errors.New(errors.ErrCodeUnsupported, "cannot infer format of %s from extension %q", path, ext)
}

// Options selects how a file is read or written.
type Options struct {
	// Format overrides extension-based detection when set.
	Format Format
	// Separator delimits matrix cells. Zero means DefaultSeparator.
	Separator rune
}

func (o Options) resolve(path string) (Format, rune, error) {
	sep := o.Separator
	if sep == 0 {
		sep = DefaultSeparator
	}
	if o.Format != "" {
		f, err := ParseFormat(string(o.Format))
		return f, sep, err
	}
	f, err := DetectFormat(path)
	return f, sep, err
}

// Load reads the whole file at path and decodes it into a reconciled graph.
//
// The format comes from opts.Format or, when empty, from the file extension.
// A missing file is FILE_NOT_FOUND; decoding errors keep the codes described
// on the individual readers. Storage hooks receive an OnLoad event.
func Load(ctx context.Context, path string, opts Options) (*graph.Graph, error) {
	format, sep, err := opts.resolve(path)
	if err != nil {
		return nil, err
	}

	start := time.Now()
	g, err := load(path, format, sep)

	ev := observability.Event{Format: string(format), Path: path}
	if g != nil {
		ev.Vertices, ev.Edges = g.VertexCount(), g.EdgeCount()
	}
	observability.Storage().OnLoad(ctx, ev, time.Since(start), err)
	return g, err
}

func load(path string, format Format, sep rune) (*graph.Graph, error) {
	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return nil, errors.Wrap(errors.ErrCodeFileNotFound, err, "open %s", path)
	}
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeInternal, err, "read %s", path)
	}
	g, err := codecs[format].read(bytes.NewReader(data), sep)
	if err != nil {
		return nil, fmt.Errorf("load %s: %w", path, err)
	}
	return g, nil
}

// Save encodes g and writes it to path in a single write, replacing any
// existing file. A crash mid-write can leave a truncated file behind.
// Storage hooks receive an OnSave event.
func Save(ctx context.Context, g *graph.Graph, path string, opts Options) error {
	format, sep, err := opts.resolve(path)
	if err != nil {
		return err
	}

	start := time.Now()
	err = save(g, path, format, sep)

	ev := observability.Event{
		Format:   string(format),
		Path:     path,
		Vertices: g.VertexCount(),
		Edges:    g.EdgeCount(),
	}
	observability.Storage().OnSave(ctx, ev, time.Since(start), err)
	return err
}

func save(g *graph.Graph, path string, format Format, sep rune) error {
	var buf bytes.Buffer
	if err := codecs[format].write(g, &buf, sep); err != nil {
		return err
	}
	if err := os.WriteFile(path, buf.Bytes(), 0644); err != nil {
		return errors.Wrap(errors.ErrCodeInternal, err, "write %s", path)
	}
	return nil
}
