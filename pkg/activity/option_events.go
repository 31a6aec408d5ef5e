package activity

import (
	"strings"
	"time"
)

const (
	// ObjectTypeOption marks events about a single option value.
	ObjectTypeOption = "option"
	// ObjectTypeState marks events about a whole option state.
	ObjectTypeState = "option.state"
)

// OptionEventInput describes the common fields for option lifecycle events.
type OptionEventInput struct {
	ActorID    string
	UserID     string
	TenantID   string
	ObjectID   string
	Channel    string
	Recipients []string
	Metadata   map[string]any
	Option     string
	OptionURI  string
	Area       string
	Source     string
	OldValue   any
	NewValue   any
	OccurredAt time.Time
}

// BuildOptionSetEvent constructs a normalized activity event for a value change.
func BuildOptionSetEvent(input OptionEventInput) Event {
	return buildOptionEvent("option.set", ObjectTypeOption, input)
}

// BuildStateCopiedEvent constructs an event describing a whole-state copy.
func BuildStateCopiedEvent(input OptionEventInput) Event {
	return buildOptionEvent("option.state.copied", ObjectTypeState, input)
}

// BuildDocumentAppliedEvent constructs an event describing a settings document
// applied to a state.
func BuildDocumentAppliedEvent(input OptionEventInput) Event {
	return buildOptionEvent("option.document.applied", ObjectTypeState, input)
}

func buildOptionEvent(verb, objectType string, input OptionEventInput) Event {
	metadata := cloneMap(input.Metadata)
	if input.Option != "" {
		metadata = ensureMetadata(metadata)
		metadata["option"] = input.Option
	}
	if input.OptionURI != "" {
		metadata = ensureMetadata(metadata)
		metadata["option_uri"] = input.OptionURI
	}
	if input.Area != "" {
		metadata = ensureMetadata(metadata)
		metadata["area"] = input.Area
	}
	if input.Source != "" {
		metadata = ensureMetadata(metadata)
		metadata["source"] = input.Source
	}
	if input.OldValue != nil {
		metadata = ensureMetadata(metadata)
		metadata["old_value"] = input.OldValue
	}
	if input.NewValue != nil {
		metadata = ensureMetadata(metadata)
		metadata["new_value"] = input.NewValue
	}

	recipients := input.Recipients
	if len(recipients) > 0 {
		recipients = append([]string{}, input.Recipients...)
	}

	objectID := strings.TrimSpace(input.ObjectID)
	if objectID == "" {
		objectID = strings.TrimSpace(input.OptionURI)
	}
	if objectID == "" {
		objectID = strings.TrimSpace(input.Option)
	}
	if objectID == "" {
		objectID = objectType
	}

	return Event{
		Verb:       verb,
		ActorID:    strings.TrimSpace(input.ActorID),
		UserID:     strings.TrimSpace(input.UserID),
		TenantID:   strings.TrimSpace(input.TenantID),
		ObjectType: objectType,
		ObjectID:   objectID,
		Channel:    strings.TrimSpace(input.Channel),
		Recipients: recipients,
		Metadata:   metadata,
		OccurredAt: input.OccurredAt,
	}
}

func ensureMetadata(meta map[string]any) map[string]any {
	if meta == nil {
		return map[string]any{}
	}
	return meta
}
