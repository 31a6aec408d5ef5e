package rdfopts

import (
	"context"
	"testing"

	"github.com/goliatone/go-rdf-options/pkg/activity"
)

func TestWithActivityHooksClonesAndFiltersNil(t *testing.T) {
	hook := activity.HookFunc(func(context.Context, activity.Event) error { return nil })

	world := NewWorld(WithActivityHooks(activity.Hooks{nil, hook}))
	hooks := world.ActivityHooks()
	if len(hooks) != 1 {
		t.Fatalf("expected 1 hook, got %d", len(hooks))
	}

	// Mutate returned slice and ensure original configuration is unaffected.
	hooks[0] = nil
	again := world.ActivityHooks()
	if len(again) != 1 || again[0] == nil {
		t.Fatalf("expected cloned hooks unaffected by mutation, got %+v", again)
	}
}

func TestActivityHooksDefaultNil(t *testing.T) {
	world := NewWorld()
	if hooks := world.ActivityHooks(); hooks != nil {
		t.Fatalf("expected nil hooks by default, got %+v", hooks)
	}
	if err := world.emit(context.Background(), activity.Event{Verb: "option.set"}); err != nil {
		t.Fatalf("emit without hooks must be a no-op, got %v", err)
	}
}

func TestNewWorldSkipsNilOptions(t *testing.T) {
	world := NewWorld(nil, WithActivityChannel("  "))
	if world.activityEmitter() == nil || world.activityEmitter().Enabled() {
		t.Fatalf("expected a disabled emitter")
	}
	if _, ok := world.uriFactory().(urlFactory); !ok {
		t.Fatalf("expected the net/url factory by default")
	}
	if _, ok := world.schemaGenerator().(descriptorGenerator); !ok {
		t.Fatalf("expected the descriptor schema generator by default")
	}
	if _, ok := world.evaluatorLogger().(noopEvaluatorLogger); !ok {
		t.Fatalf("expected the no-op evaluator logger by default")
	}
}
