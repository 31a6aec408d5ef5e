package rdfopts

import (
	"context"
	"fmt"

	"github.com/goliatone/go-rdf-options/pkg/activity"
)

// WithActivityHooks attaches activity hooks to the World. Hooks are cloned and
// nil entries dropped.
func WithActivityHooks(hooks activity.Hooks) Option {
	normalized := cloneActivityHooks(hooks)
	return func(cfg *worldConfig) {
		cfg.activityHooks = normalized
	}
}

// ActivityHooks returns a cloned slice of the configured activity hooks.
func (w *World) ActivityHooks() activity.Hooks {
	if w == nil {
		return nil
	}
	return cloneActivityHooks(w.cfg.activityHooks)
}

func cloneActivityHooks(hooks activity.Hooks) activity.Hooks {
	if len(hooks) == 0 {
		return nil
	}
	normalized := make([]activity.ActivityHook, 0, len(hooks))
	for _, hook := range hooks {
		if hook == nil {
			continue
		}
		normalized = append(normalized, hook)
	}
	if len(normalized) == 0 {
		return nil
	}
	return activity.Hooks(normalized)
}

func (w *World) emit(ctx context.Context, event activity.Event) error {
	emitter := w.activityEmitter()
	if !emitter.Enabled() {
		return nil
	}
	if err := emitter.Emit(ctx, event); err != nil {
		return fmt.Errorf("rdfopts: activity: %w", err)
	}
	return nil
}
