package rdfopts

import (
	"context"
	"fmt"
	"strings"
	"time"
)

// Engine names accepted by NewEvaluator.
const (
	EngineExpr = "expr"
	EngineCEL  = "cel"
	EngineJS   = "js"
)

var queryBindingNames = []string{
	"id", "name", "label", "valueType", "numeric", "areas", "mask", "uri",
	"now", "args", "metadata", "call",
}

func isReservedQueryName(name string) bool {
	for _, reserved := range queryBindingNames {
		if strings.EqualFold(reserved, name) {
			return true
		}
	}
	return false
}

// NewEvaluator builds the evaluator for a named engine. The js engine is only
// available in binaries built with the js_eval tag.
func NewEvaluator(engine string, cache ProgramCache, registry *FunctionRegistry) (Evaluator, error) {
	switch strings.ToLower(strings.TrimSpace(engine)) {
	case "", EngineExpr:
		return NewExprEvaluator(ExprWithProgramCache(cache), ExprWithFunctionRegistry(registry)), nil
	case EngineCEL:
		return NewCELEvaluator(CELWithProgramCache(cache), CELWithFunctionRegistry(registry)), nil
	case EngineJS:
		if !jsEvaluatorAvailable() {
			return nil, fmt.Errorf("%w: %s (build with -tags js_eval)", ErrUnknownEngine, engine)
		}
		return NewJSEvaluator(JSWithProgramCache(cache), JSWithFunctionRegistry(registry)), nil
	default:
		return nil, fmt.Errorf("%w: %s", ErrUnknownEngine, engine)
	}
}

// QueryOption configures a single Select call.
type QueryOption func(*queryConfig)

type queryConfig struct {
	args     map[string]any
	metadata map[string]any
}

// WithQueryArgs binds values to the args map seen by the expression.
func WithQueryArgs(args map[string]any) QueryOption {
	return func(cfg *queryConfig) {
		cfg.args = mergeQueryValues(cfg.args, args)
	}
}

// WithQueryMetadata binds values to the metadata map seen by the expression.
func WithQueryMetadata(metadata map[string]any) QueryOption {
	return func(cfg *queryConfig) {
		cfg.metadata = mergeQueryValues(cfg.metadata, metadata)
	}
}

func mergeQueryValues(dst, src map[string]any) map[string]any {
	if len(src) == 0 {
		return dst
	}
	if dst == nil {
		dst = make(map[string]any, len(src))
	}
	for key, value := range src {
		dst[key] = value
	}
	return dst
}

// Select returns the descriptors, in identity order, for which expression
// evaluates to true.
func (w *World) Select(ctx context.Context, expression string, opts ...QueryOption) ([]Descriptor, error) {
	return w.SelectForArea(ctx, AreaNone, expression, opts...)
}

// SelectForArea is Select restricted to descriptors applicable to area.
// AreaNone means every area.
func (w *World) SelectForArea(ctx context.Context, area Area, expression string, opts ...QueryOption) ([]Descriptor, error) {
	if strings.TrimSpace(expression) == "" {
		return nil, fmt.Errorf("rdfopts: query expression must not be empty")
	}
	var cfg queryConfig
	for _, opt := range opts {
		if opt != nil {
			opt(&cfg)
		}
	}
	evaluator, err := w.resolveEvaluator()
	if err != nil {
		return nil, err
	}
	engine := evaluatorEngineName(evaluator)
	label := RuleContext{Area: area}.areaLabel()

	start := time.Now()
	matches, err := w.selectWith(ctx, evaluator, area, expression, cfg)
	if err != nil {
		err = wrapEvaluationError(engine, expression, label, err)
	}
	w.evaluatorLogger().LogEvaluation(EvaluatorLogEvent{
		Engine:   engine,
		Expr:     expression,
		Area:     label,
		Duration: time.Since(start),
		Matches:  len(matches),
		Err:      err,
	})
	if err != nil {
		return nil, err
	}
	return matches, nil
}

func (w *World) selectWith(ctx context.Context, evaluator Evaluator, area Area, expression string, cfg queryConfig) ([]Descriptor, error) {
	rule, err := evaluator.Compile(expression)
	if err != nil {
		return nil, err
	}
	now := time.Now()
	var matches []Descriptor
	for i := range descriptors {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		d := descriptors[i]
		if area != AreaNone && !d.Area.Intersects(area) {
			continue
		}
		result, err := rule.Evaluate(RuleContext{
			Snapshot: queryBinding(d),
			Now:      &now,
			Area:     area,
			Args:     cfg.args,
			Metadata: cfg.metadata,
		})
		if err != nil {
			return nil, err
		}
		ok, isBool := result.(bool)
		if !isBool {
			return nil, fmt.Errorf("%w: %s yielded %T", ErrQueryResult, d.Name, result)
		}
		if ok {
			matches = append(matches, d)
		}
	}
	return matches, nil
}

// queryBinding exposes a descriptor to query expressions.
func queryBinding(d Descriptor) map[string]any {
	return map[string]any{
		"id":        int(d.ID),
		"name":      d.Name,
		"label":     d.Label,
		"valueType": d.ValueType.String(),
		"numeric":   d.ValueType.Numeric(),
		"areas":     d.Area.Names(),
		"mask":      int(d.Area),
		"uri":       d.URI(),
	}
}

func (w *World) resolveEvaluator() (Evaluator, error) {
	if w == nil {
		return nil, ErrNoEvaluator
	}
	if w.cfg.evaluator != nil {
		return w.cfg.evaluator, nil
	}
	w.fallbackOnce.Do(func() {
		w.fallback, _ = NewEvaluator(EngineExpr, w.programCache(), w.functionRegistry())
	})
	if w.fallback == nil {
		return nil, ErrNoEvaluator
	}
	return w.fallback, nil
}

func evaluatorEngineName(e Evaluator) string {
	if e == nil {
		return "unknown"
	}
	switch fmt.Sprintf("%T", e) {
	case "*rdfopts.exprEvaluator":
		return EngineExpr
	case "*rdfopts.celEvaluator":
		return EngineCEL
	case "*rdfopts.jsEvaluator":
		return EngineJS
	default:
		return "custom"
	}
}
