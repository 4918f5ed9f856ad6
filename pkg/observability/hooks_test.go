package observability

import (
	"context"
	"testing"
	"time"
)

func TestNoopHooksDoNotPanic(t *testing.T) {
	ctx := context.Background()

	h := NoopRunHooks{}
	h.OnLoad(ctx, "look_up.json", 51, time.Millisecond, nil)
	h.OnEvaluateStart(ctx, 3, 6)
	h.OnEvaluateComplete(ctx, 6, time.Second, nil)
	h.OnWrite(ctx, "routes", "cypher.csv", nil)
}

func TestGlobalHooksRegistry(t *testing.T) {
	Reset()

	if _, ok := Run().(NoopRunHooks); !ok {
		t.Error("Run() should return NoopRunHooks by default")
	}

	custom := &testRunHooks{}
	SetRunHooks(custom)
	if Run() != custom {
		t.Error("SetRunHooks should set custom hooks")
	}

	Run().OnWrite(context.Background(), "summary", "output.json", nil)
	if len(custom.writes) != 1 || custom.writes[0] != "summary" {
		t.Errorf("writes = %v, want [summary]", custom.writes)
	}

	Reset()
	if _, ok := Run().(NoopRunHooks); !ok {
		t.Error("Reset() should restore NoopRunHooks")
	}
}

func TestSetNilHooksIsIgnored(t *testing.T) {
	Reset()

	custom := &testRunHooks{}
	SetRunHooks(custom)

	// Setting nil should be ignored
	SetRunHooks(nil)

	if Run() != custom {
		t.Error("SetRunHooks(nil) should be ignored")
	}

	Reset()
}

type testRunHooks struct {
	NoopRunHooks
	writes []string
}

func (h *testRunHooks) OnWrite(_ context.Context, kind, _ string, _ error) {
	h.writes = append(h.writes, kind)
}
