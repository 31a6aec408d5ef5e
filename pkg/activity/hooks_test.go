package activity

import (
	"context"
	"errors"
	"testing"
	"time"
)

func TestNormalizeEventTrimsClonesAndDefaults(t *testing.T) {
	meta := map[string]any{"option": "scanForRDF"}
	recipients := []string{" a ", "b "}
	evt := Event{
		Verb:       " option.set ",
		ActorID:    " actor ",
		UserID:     " user ",
		TenantID:   " tenant ",
		ObjectType: " option ",
		ObjectID:   " scanForRDF ",
		Channel:    " rdf-options ",
		Recipients: recipients,
		Metadata:   meta,
	}

	got := NormalizeEvent(evt)

	if got.Verb != "option.set" || got.ObjectType != "option" || got.ObjectID != "scanForRDF" {
		t.Fatalf("unexpected normalized fields: %+v", got)
	}
	if got.ActorID != "actor" || got.UserID != "user" || got.TenantID != "tenant" || got.Channel != "rdf-options" {
		t.Fatalf("unexpected trimming: %+v", got)
	}
	if got.OccurredAt.IsZero() {
		t.Fatalf("expected OccurredAt to be set")
	}
	got.Metadata["option"] = "changed"
	if evt.Metadata["option"] != "scanForRDF" {
		t.Fatalf("expected original metadata untouched: %+v", evt.Metadata)
	}
	got.Recipients[0] = "changed"
	if recipients[0] != " a " {
		t.Fatalf("expected original recipients untouched: %+v", recipients)
	}
}

func TestHooksNotifyShortCircuitsMissingRequired(t *testing.T) {
	capture := &CaptureHook{}
	hooks := Hooks{capture}
	if err := hooks.Notify(context.Background(), Event{Verb: "option.set"}); err != nil {
		t.Fatalf("expected nil error, got %v", err)
	}
	if len(capture.Snapshot()) != 0 {
		t.Fatalf("expected no events captured, got %d", len(capture.Snapshot()))
	}
}

func TestHooksNotifyFanOutAndJoinErrors(t *testing.T) {
	capture := &CaptureHook{}
	boom1 := errors.New("boom1")
	boom2 := errors.New("boom2")
	var ctxSeen bool
	hooks := Hooks{
		HookFunc(func(ctx context.Context, event Event) error {
			ctxSeen = ctx != nil
			return nil
		}),
		capture,
		HookFunc(func(_ context.Context, _ Event) error { return boom1 }),
		nil,
		HookFunc(func(_ context.Context, _ Event) error { return boom2 }),
	}

	err := hooks.Notify(nil, Event{Verb: "option.set", ObjectType: "option", ObjectID: "noNet"})
	if !errors.Is(err, boom1) || !errors.Is(err, boom2) {
		t.Fatalf("expected joined error, got %v", err)
	}
	if !ctxSeen {
		t.Fatalf("expected context fallback to be non-nil")
	}
	if len(capture.Snapshot()) != 1 {
		t.Fatalf("expected event to be captured once, got %d", len(capture.Snapshot()))
	}
}

func TestEmitterDisabledAndEnabled(t *testing.T) {
	capture := &CaptureHook{}
	event := Event{Verb: "option.set", ObjectType: "option", ObjectID: "noNet"}

	disabled := NewEmitter(Hooks{capture}, Config{Enabled: false})
	if disabled.Enabled() {
		t.Fatalf("expected emitter to be disabled")
	}
	if err := disabled.Emit(context.Background(), event); err != nil {
		t.Fatalf("expected nil error, got %v", err)
	}
	if len(capture.Snapshot()) != 0 {
		t.Fatalf("expected no events captured when disabled")
	}

	enabled := NewEmitter(Hooks{capture}, Config{Enabled: true})
	if !enabled.Enabled() {
		t.Fatalf("expected emitter to be enabled")
	}
	if err := enabled.Emit(context.Background(), event); err != nil {
		t.Fatalf("emit: %v", err)
	}
	events := capture.Snapshot()
	if len(events) != 1 {
		t.Fatalf("expected one event captured, got %d", len(events))
	}
	if events[0].Channel != DefaultChannel {
		t.Fatalf("expected default channel applied, got %q", events[0].Channel)
	}
}

func TestEmitterWithoutHooksIsDisabled(t *testing.T) {
	emitter := NewEmitter(Hooks{nil}, Config{Enabled: true})
	if emitter.Enabled() {
		t.Fatalf("expected emitter without hooks to be disabled")
	}
	var nilEmitter *Emitter
	if nilEmitter.Enabled() {
		t.Fatalf("expected nil emitter to be disabled")
	}
}

func TestEmitterPreservesExplicitChannel(t *testing.T) {
	capture := &CaptureHook{}
	emitter := NewEmitter(Hooks{capture}, Config{Enabled: true, Channel: "default"})
	at := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)

	err := emitter.Emit(context.Background(), Event{
		Verb:       "option.set",
		ObjectType: "option",
		ObjectID:   "noNet",
		Channel:    "custom",
		OccurredAt: at,
	})
	if err != nil {
		t.Fatalf("emit: %v", err)
	}
	events := capture.Snapshot()
	if events[0].Channel != "custom" {
		t.Fatalf("expected explicit channel preserved, got %q", events[0].Channel)
	}
	if !events[0].OccurredAt.Equal(at) {
		t.Fatalf("expected occurred_at preserved, got %v", events[0].OccurredAt)
	}
}
