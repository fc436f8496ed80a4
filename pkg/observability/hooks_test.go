package observability

import (
	"context"
	"errors"
	"testing"
	"time"
)

func TestNoopHooksDoNotPanic(t *testing.T) {
	ctx := context.Background()

	s := NoopStorageHooks{}
	s.OnLoad(ctx, Event{Format: "json", Path: "graph.json", Vertices: 3, Edges: 2}, time.Millisecond, nil)
	s.OnSave(ctx, Event{Format: "matrix", Path: "graph.csv"}, time.Millisecond, errors.New("disk full"))
	s.OnMutate(ctx, Event{Op: "add_edge", Vertices: 3, Edges: 3})
}

func TestGlobalHooksRegistry(t *testing.T) {
	Reset()

	if _, ok := Storage().(NoopStorageHooks); !ok {
		t.Error("Storage() should return NoopStorageHooks by default")
	}

	custom := &recordingHooks{}
	SetStorageHooks(custom)
	if Storage() != custom {
		t.Error("SetStorageHooks should set custom hooks")
	}

	Storage().OnMutate(context.Background(), Event{Op: "remove_vertex"})
	if len(custom.mutations) != 1 || custom.mutations[0].Op != "remove_vertex" {
		t.Errorf("mutations = %+v, want one remove_vertex event", custom.mutations)
	}

	Reset()
	if _, ok := Storage().(NoopStorageHooks); !ok {
		t.Error("Reset() should restore NoopStorageHooks")
	}
}

func TestSetNilHooksIsIgnored(t *testing.T) {
	Reset()

	custom := &recordingHooks{}
	SetStorageHooks(custom)
	SetStorageHooks(nil)

	if Storage() != custom {
		t.Error("SetStorageHooks(nil) should be ignored")
	}

	Reset()
}

type recordingHooks struct {
	NoopStorageHooks
	mutations []Event
}

func (r *recordingHooks) OnMutate(_ context.Context, ev Event) {
	r.mutations = append(r.mutations, ev)
}
