package usersink

import (
	"context"
	"strings"
	"time"

	"github.com/goliatone/go-rdf-options/pkg/activity"
	usertypes "github.com/goliatone/go-users/pkg/types"
	"github.com/google/uuid"
)

// Hook forwards option events to a go-users ActivitySink.
type Hook struct {
	Sink usertypes.ActivitySink
	// Source is recorded under data["source"] when the event does not carry one.
	Source string
}

// Notify maps the event into an ActivityRecord and forwards it to the sink.
// Events missing a verb, object type or object ID are dropped.
func (h Hook) Notify(ctx context.Context, event activity.Event) error {
	if h.Sink == nil {
		return nil
	}

	normalized := activity.NormalizeEvent(event)
	if normalized.Verb == "" || normalized.ObjectType == "" || normalized.ObjectID == "" {
		return nil
	}
	if ctx == nil {
		ctx = context.Background()
	}

	record := usertypes.ActivityRecord{
		ActorID:    parseUUID(normalized.ActorID),
		UserID:     parseUUID(normalized.UserID),
		TenantID:   parseUUID(normalized.TenantID),
		Verb:       normalized.Verb,
		ObjectType: normalized.ObjectType,
		ObjectID:   normalized.ObjectID,
		Channel:    normalized.Channel,
		Data:       normalized.Metadata,
		OccurredAt: normalized.OccurredAt,
	}
	if record.OccurredAt.IsZero() {
		record.OccurredAt = time.Now()
	}
	if source := strings.TrimSpace(h.Source); source != "" {
		if record.Data == nil {
			record.Data = map[string]any{}
		}
		if _, ok := record.Data["source"]; !ok {
			record.Data["source"] = source
		}
	}
	if len(normalized.Recipients) > 0 {
		if record.Data == nil {
			record.Data = map[string]any{}
		}
		record.Data["recipients"] = normalized.Recipients
	}

	return h.Sink.Log(ctx, record)
}

// parseUUID returns uuid.Nil for anything that is not a UUID; option events
// from anonymous callers carry no actor.
func parseUUID(input string) uuid.UUID {
	id, err := uuid.Parse(strings.TrimSpace(input))
	if err != nil {
		return uuid.Nil
	}
	return id
}
