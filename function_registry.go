package rdfopts

import (
	"fmt"
	"sort"
	"strings"
	"sync"
)

// Function represents a callable made available to query expressions.
type Function func(args ...any) (any, error)

// FunctionRegistry stores custom query functions. Lookups ignore case; the
// registered spelling is what expressions call.
type FunctionRegistry struct {
	mu        sync.RWMutex
	functions map[string]registeredFunction
}

type registeredFunction struct {
	name string
	fn   Function
}

func NewFunctionRegistry() *FunctionRegistry {
	return &FunctionRegistry{
		functions: make(map[string]registeredFunction),
	}
}

// Register stores fn under name. Names must be unique and must not shadow a
// query binding.
func (r *FunctionRegistry) Register(name string, fn Function) error {
	if fn == nil {
		return fmt.Errorf("rdfopts: function %q is nil", name)
	}
	name = strings.TrimSpace(name)
	key := strings.ToLower(name)
	if key == "" {
		return fmt.Errorf("rdfopts: function name must not be empty")
	}
	if isReservedQueryName(key) {
		return fmt.Errorf("rdfopts: function %q shadows a query binding", name)
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.functions == nil {
		r.functions = make(map[string]registeredFunction)
	}
	if _, exists := r.functions[key]; exists {
		return fmt.Errorf("rdfopts: function %q already registered", name)
	}
	r.functions[key] = registeredFunction{name: name, fn: fn}
	return nil
}

// Clone returns a shallow copy of the registry.
func (r *FunctionRegistry) Clone() *FunctionRegistry {
	if r == nil {
		return nil
	}
	r.mu.RLock()
	defer r.mu.RUnlock()
	clone := &FunctionRegistry{
		functions: make(map[string]registeredFunction, len(r.functions)),
	}
	for key, entry := range r.functions {
		clone.functions[key] = entry
	}
	return clone
}

// Call executes the function registered for name.
func (r *FunctionRegistry) Call(name string, args ...any) (any, error) {
	if r == nil {
		return nil, fmt.Errorf("rdfopts: function registry is nil")
	}
	r.mu.RLock()
	entry, ok := r.functions[strings.ToLower(name)]
	r.mu.RUnlock()
	if !ok {
		return nil, fmt.Errorf("rdfopts: function %q not registered", name)
	}
	return entry.fn(args...)
}

// Names returns the registered spellings sorted alphabetically.
func (r *FunctionRegistry) Names() []string {
	if r == nil {
		return nil
	}
	r.mu.RLock()
	defer r.mu.RUnlock()
	names := make([]string, 0, len(r.functions))
	for _, entry := range r.functions {
		names = append(names, entry.name)
	}
	sort.Strings(names)
	return names
}

// WithFunctionRegistry makes a copy of registry available to every query
// evaluator the World builds.
func WithFunctionRegistry(registry *FunctionRegistry) Option {
	return func(cfg *worldConfig) {
		if registry == nil {
			return
		}
		cfg.functions = registry.Clone()
	}
}

// WithCustomFunction registers fn under name for the World. Invalid or
// duplicate registrations are ignored.
func WithCustomFunction(name string, fn Function) Option {
	return func(cfg *worldConfig) {
		if cfg.functions == nil {
			cfg.functions = NewFunctionRegistry()
		}
		_ = cfg.functions.Register(name, fn)
	}
}
