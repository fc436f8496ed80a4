// Package observability provides hooks for logging and metrics around graph
// storage.
//
// Library packages emit events through a small hook interface without taking
// a dependency on any logging or metrics backend. The CLI registers a
// logger-backed implementation at startup; everything else sees the no-op
// default.
//
// # Usage
//
// Register hooks at application startup:
//
//	func main() {
//	    observability.SetStorageHooks(&myStorageHooks{})
//	    // ... run application
//	}
//
// Libraries call hooks to emit events:
//
//	start := time.Now()
//	g, err := load(path)
//	observability.Storage().OnLoad(ctx, observability.Event{Format: "json", Path: path}, time.Since(start), err)
package observability

import (
	"context"
	"sync"
	"time"
)

// Event describes a storage operation on a graph.
type Event struct {
	Format   string // "json", "toml", "yaml" or "matrix"; empty for in-memory mutations
	Path     string // file path for load/save, empty when reading from a stream
	Op       string // mutation name for OnMutate (e.g. "add_edge")
	Vertices int    // vertex count after the operation
	Edges    int    // edge count after the operation
}

// StorageHooks receives events from graph persistence and mutation.
type StorageHooks interface {
	// OnLoad records a completed (or failed) deserialization.
	OnLoad(ctx context.Context, ev Event, duration time.Duration, err error)

	// OnSave records a completed (or failed) serialization.
	OnSave(ctx context.Context, ev Event, duration time.Duration, err error)

	// OnMutate records a successful structural change to a graph.
	OnMutate(ctx context.Context, ev Event)
}

// NoopStorageHooks is a no-op implementation of StorageHooks.
type NoopStorageHooks struct{}

func (NoopStorageHooks) OnLoad(context.Context, Event, time.Duration, error) {}
func (NoopStorageHooks) OnSave(context.Context, Event, time.Duration, error) {}
func (NoopStorageHooks) OnMutate(context.Context, Event)                     {}

var (
	storageHooks StorageHooks = NoopStorageHooks{}
	hooksMu      sync.RWMutex
)

// SetStorageHooks registers custom storage hooks.
// This should be called once at application startup. A nil h is ignored.
func SetStorageHooks(h StorageHooks) {
	hooksMu.Lock()
	defer hooksMu.Unlock()
	if h != nil {
		storageHooks = h
	}
}

// Storage returns the registered storage hooks.
func Storage() StorageHooks {
	hooksMu.RLock()
	defer hooksMu.RUnlock()
	return storageHooks
}

// Reset restores all hooks to their no-op defaults.
// This is primarily useful for testing.
func Reset() {
	hooksMu.Lock()
	defer hooksMu.Unlock()
	storageHooks = NoopStorageHooks{}
}
