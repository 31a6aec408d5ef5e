package rdfopts

import (
	"sync"
	"time"

	"github.com/goliatone/go-rdf-options/pkg/activity"
)

// World carries the collaborators the registry needs at runtime: the URI
// factory, the query evaluator and the activity hooks. The catalog itself is
// static; a World only decides how URIs are built and how events are reported.
// A World is safe for concurrent use once constructed.
type World struct {
	cfg     worldConfig
	emitter *activity.Emitter

	fallbackOnce sync.Once
	fallback     Evaluator
}

// SchemaFormat identifies the representation a schema document encodes.
type SchemaFormat string

const (
	// SchemaFormatDescriptors represents the flattened field descriptors.
	SchemaFormatDescriptors SchemaFormat = "descriptors"
	// SchemaFormatOpenAPI represents OpenAPI-compatible JSON Schema documents.
	SchemaFormatOpenAPI SchemaFormat = "openapi"
)

// SchemaDocument encapsulates a generated schema output alongside its format
// identifier. Document must be JSON-serialisable.
type SchemaDocument struct {
	Format   SchemaFormat
	Area     Area
	Document any
}

// SchemaGenerator describes the options applicable to an area. Implementations
// must be safe for concurrent use.
type SchemaGenerator interface {
	Generate(area Area, descriptors []Descriptor) (SchemaDocument, error)
}

// RuleContext carries the inputs of a single query evaluation.
type RuleContext struct {
	Snapshot any
	Now      *time.Time
	Args     map[string]any
	Metadata map[string]any
	Area     Area
}

func (ctx RuleContext) withDefaultNow() RuleContext {
	if ctx.Now != nil {
		return ctx
	}
	now := time.Now()
	ctx.Now = &now
	return ctx
}

func (ctx RuleContext) timestamp() time.Time {
	ctx = ctx.withDefaultNow()
	return *ctx.Now
}

func (ctx RuleContext) withDefaultMaps() RuleContext {
	if ctx.Args == nil {
		ctx.Args = map[string]any{}
	}
	if ctx.Metadata == nil {
		ctx.Metadata = map[string]any{}
	}
	return ctx
}

func (ctx RuleContext) withDefaults() RuleContext {
	return ctx.withDefaultNow().withDefaultMaps()
}

func (ctx RuleContext) areaLabel() string {
	if ctx.Area == AreaNone {
		return "any"
	}
	return ctx.Area.String()
}

// Evaluator executes expressions against a rule context.
type Evaluator interface {
	Evaluate(ctx RuleContext, expr string) (any, error)
	Compile(expr string, opts ...CompileOption) (CompiledRule, error)
}

// CompiledRule represents a reusable expression program.
type CompiledRule interface {
	Evaluate(ctx RuleContext) (any, error)
}

// CompileOption configures evaluator compile behaviour. The built-in engines
// accept none.
type CompileOption interface {
	applyCompileOption(*compileConfig)
}

type compileConfig struct{}
