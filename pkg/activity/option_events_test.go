package activity

import (
	"context"
	"testing"
)

func TestBuildOptionSetEventIncludesOptionMetadata(t *testing.T) {
	meta := map[string]any{"custom": "value"}
	input := OptionEventInput{
		ActorID:    " actor ",
		Option:     "noNet",
		OptionURI:  "http://feature.librdf.org/raptor-noNet",
		Area:       "parser",
		Metadata:   meta,
		OldValue:   0,
		NewValue:   1,
		Recipients: []string{"ops@example.com"},
		Channel:    "rdf-options",
	}

	event := BuildOptionSetEvent(input)

	if event.Verb != "option.set" {
		t.Fatalf("expected verb option.set got %s", event.Verb)
	}
	if event.ObjectType != ObjectTypeOption || event.ObjectID != input.OptionURI {
		t.Fatalf("unexpected object fields: %+v", event)
	}
	if event.ActorID != "actor" {
		t.Fatalf("expected trimmed actor, got %q", event.ActorID)
	}
	if event.Metadata["option"] != "noNet" || event.Metadata["area"] != "parser" {
		t.Fatalf("expected option metadata, got %+v", event.Metadata)
	}
	if event.Metadata["old_value"] != 0 || event.Metadata["new_value"] != 1 {
		t.Fatalf("expected old/new values, got %v %v", event.Metadata["old_value"], event.Metadata["new_value"])
	}
	if event.Metadata["custom"] != "value" {
		t.Fatalf("expected custom metadata preserved, got %+v", event.Metadata)
	}
	event.Metadata["custom"] = "changed"
	if meta["custom"] != "value" {
		t.Fatalf("expected input metadata untouched")
	}
	event.Recipients[0] = "changed"
	if input.Recipients[0] != "ops@example.com" {
		t.Fatalf("expected input recipients untouched, got %v", input.Recipients)
	}
}

func TestBuildOptionSetEventFallsBackToName(t *testing.T) {
	event := BuildOptionSetEvent(OptionEventInput{Option: "scanForRDF"})
	if event.ObjectID != "scanForRDF" {
		t.Fatalf("expected option name as object ID, got %q", event.ObjectID)
	}
}

func TestBuildStateCopiedEventUsesFallbackObjectID(t *testing.T) {
	event := BuildStateCopiedEvent(OptionEventInput{})
	if event.Verb != "option.state.copied" {
		t.Fatalf("expected verb option.state.copied got %s", event.Verb)
	}
	if event.ObjectID != ObjectTypeState {
		t.Fatalf("expected fallback object ID %q, got %q", ObjectTypeState, event.ObjectID)
	}
	if event.Metadata != nil {
		t.Fatalf("expected nil metadata, got %+v", event.Metadata)
	}
}

func TestBuildDocumentAppliedEventRecordsSource(t *testing.T) {
	event := BuildDocumentAppliedEvent(OptionEventInput{
		ObjectID: "parser-1",
		Source:   "settings.yaml",
		Area:     "parser",
	})
	if event.Verb != "option.document.applied" || event.ObjectType != ObjectTypeState {
		t.Fatalf("unexpected event: %+v", event)
	}
	if event.ObjectID != "parser-1" || event.Metadata["source"] != "settings.yaml" {
		t.Fatalf("unexpected object id or metadata: %+v", event)
	}
}

func TestBuildOptionEventsWorkWithHooks(t *testing.T) {
	capture := &CaptureHook{}
	hooks := Hooks{capture}

	event := BuildOptionSetEvent(OptionEventInput{Option: "autoIndent", NewValue: 1})
	if err := hooks.Notify(context.Background(), event); err != nil {
		t.Fatalf("notify: %v", err)
	}
	events := capture.Snapshot()
	if len(events) != 1 {
		t.Fatalf("expected capture to record event, got %d", len(events))
	}
	if events[0].Verb != "option.set" {
		t.Fatalf("expected verb option.set, got %s", events[0].Verb)
	}
}
