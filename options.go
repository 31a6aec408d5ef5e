package rdfopts

import (
	"strings"

	"github.com/goliatone/go-rdf-options/pkg/activity"
)

// Option configures a World.
type Option func(*worldConfig)

type worldConfig struct {
	uris            URIFactory
	evaluator       Evaluator
	programCache    ProgramCache
	functions       *FunctionRegistry
	logger          EvaluatorLogger
	schemaGenerator SchemaGenerator
	activityHooks   activity.Hooks
	channel         string
}

func applyOptions(opts []Option) worldConfig {
	cfg := worldConfig{}
	for _, opt := range opts {
		if opt != nil {
			opt(&cfg)
		}
	}
	return cfg
}

// NewWorld constructs a World. Without options it builds URIs with net/url,
// evaluates queries with expr and emits no activity.
func NewWorld(opts ...Option) *World {
	cfg := applyOptions(opts)
	return &World{
		cfg: cfg,
		emitter: activity.NewEmitter(cfg.activityHooks, activity.Config{
			Enabled: len(cfg.activityHooks) > 0,
			Channel: cfg.channel,
		}),
	}
}

// WithURIFactory replaces the default net/url based factory.
func WithURIFactory(factory URIFactory) Option {
	return func(cfg *worldConfig) {
		cfg.uris = factory
	}
}

// WithEvaluator configures the query evaluator.
func WithEvaluator(e Evaluator) Option {
	return func(cfg *worldConfig) {
		cfg.evaluator = e
	}
}

// WithSchemaGenerator configures a custom schema generator implementation.
func WithSchemaGenerator(generator SchemaGenerator) Option {
	return func(cfg *worldConfig) {
		cfg.schemaGenerator = generator
	}
}

// WithActivityChannel overrides the channel stamped on emitted events.
func WithActivityChannel(channel string) Option {
	return func(cfg *worldConfig) {
		cfg.channel = strings.TrimSpace(channel)
	}
}

func (w *World) uriFactory() URIFactory {
	if w == nil || w.cfg.uris == nil {
		return NewURLFactory()
	}
	return w.cfg.uris
}

func (w *World) programCache() ProgramCache {
	if w == nil {
		return nil
	}
	return w.cfg.programCache
}

func (w *World) functionRegistry() *FunctionRegistry {
	if w == nil {
		return nil
	}
	return w.cfg.functions
}

func (w *World) evaluatorLogger() EvaluatorLogger {
	if w != nil && w.cfg.logger != nil {
		return w.cfg.logger
	}
	return noopEvaluatorLogger{}
}

func (w *World) schemaGenerator() SchemaGenerator {
	if w != nil && w.cfg.schemaGenerator != nil {
		return w.cfg.schemaGenerator
	}
	return DefaultSchemaGenerator()
}

func (w *World) activityEmitter() *activity.Emitter {
	if w == nil {
		return nil
	}
	return w.emitter
}
