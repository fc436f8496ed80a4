package cli

import (
	"bytes"
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/charmbracelet/log"

	"github.com/graphlab/wgraph/pkg/observability"
)

func TestNewLogger(t *testing.T) {
	var buf bytes.Buffer
	logger := newLogger(&buf, log.InfoLevel)

	if logger == nil {
		t.Fatal("newLogger() returned nil")
	}

	logger.Info("test message")

	if buf.Len() == 0 {
		t.Error("logger should have written output")
	}
}

func TestNewLoggerLevels(t *testing.T) {
	tests := []struct {
		name    string
		level   log.Level
		logFunc func(*log.Logger)
		wantLog bool
	}{
		{
			name:    "info at info level",
			level:   log.InfoLevel,
			logFunc: func(l *log.Logger) { l.Info("test") },
			wantLog: true,
		},
		{
			name:    "debug at info level",
			level:   log.InfoLevel,
			logFunc: func(l *log.Logger) { l.Debug("test") },
			wantLog: false,
		},
		{
			name:    "debug at debug level",
			level:   log.DebugLevel,
			logFunc: func(l *log.Logger) { l.Debug("test") },
			wantLog: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			logger := newLogger(&buf, tt.level)
			tt.logFunc(logger)

			gotLog := buf.Len() > 0
			if gotLog != tt.wantLog {
				t.Errorf("got log output = %v, want %v", gotLog, tt.wantLog)
			}
		})
	}
}

func TestProgress(t *testing.T) {
	var buf bytes.Buffer
	logger := newLogger(&buf, log.InfoLevel)

	prog := newProgress(logger)
	time.Sleep(5 * time.Millisecond)
	prog.done("converted graph")

	if !strings.Contains(buf.String(), "converted graph") {
		t.Errorf("progress.done() output = %q, want message", buf.String())
	}
}

func TestLoggerFromContext(t *testing.T) {
	var buf bytes.Buffer
	custom := newLogger(&buf, log.InfoLevel)

	if got := loggerFromContext(withLogger(context.Background(), custom)); got != custom {
		t.Error("loggerFromContext should return the attached logger")
	}
	if got := loggerFromContext(context.Background()); got == nil {
		t.Error("loggerFromContext should fall back to the default logger")
	}
}

func TestStorageLogger(t *testing.T) {
	tests := []struct {
		name  string
		level log.Level
		emit  func(observability.StorageHooks)
		want  string
	}{
		{
			name:  "load",
			level: log.DebugLevel,
			emit: func(h observability.StorageHooks) {
				h.OnLoad(context.Background(), observability.Event{Format: "json", Path: "g.json", Vertices: 3, Edges: 2}, time.Millisecond, nil)
			},
			want: "loaded graph",
		},
		{
			name:  "load failure",
			level: log.DebugLevel,
			emit: func(h observability.StorageHooks) {
				h.OnLoad(context.Background(), observability.Event{Format: "json", Path: "g.json"}, 0, errors.New("boom"))
			},
			want: "load failed",
		},
		{
			name:  "save",
			level: log.DebugLevel,
			emit: func(h observability.StorageHooks) {
				h.OnSave(context.Background(), observability.Event{Format: "matrix", Path: "g.csv"}, time.Millisecond, nil)
			},
			want: "saved graph",
		},
		{
			name:  "mutation",
			level: log.DebugLevel,
			emit: func(h observability.StorageHooks) {
				h.OnMutate(context.Background(), observability.Event{Op: "add_edge", Vertices: 2, Edges: 1})
			},
			want: "add_edge",
		},
		{
			name:  "hidden at info level",
			level: log.InfoLevel,
			emit: func(h observability.StorageHooks) {
				h.OnMutate(context.Background(), observability.Event{Op: "add_edge"})
			},
			want: "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			tt.emit(&storageLogger{logger: newLogger(&buf, tt.level)})

			if tt.want == "" {
				if buf.Len() != 0 {
					t.Errorf("expected no output, got %q", buf.String())
				}
				return
			}
			if !strings.Contains(buf.String(), tt.want) {
				t.Errorf("output = %q, want it to contain %q", buf.String(), tt.want)
			}
		})
	}
}
