// Package registry implements the tool registry and dynamic dispatch core:
// a function registry binding declared transformFn names to a uniform
// callable through per-function adapters, and a tool registry answering
// lookup, search and relation queries over the static catalogs.
package registry

import (
	"fmt"
	"sort"

	"textforge/internal/transform"
)

// FunctionRegistry maps transformFn names to uniform callables. It is
// populated once at construction and read-only afterwards, so it is safe for
// unlimited concurrent readers.
type FunctionRegistry struct {
	funcs map[string]transform.Func
}

// NewFunctionRegistry returns an empty registry.
func NewFunctionRegistry() *FunctionRegistry {
	return &FunctionRegistry{funcs: make(map[string]transform.Func)}
}

// Register binds a name to a callable. Registering a name twice panics:
// duplicate registrations are always a programming error and failing at
// startup is preferable to silently shadowing a function.
func (r *FunctionRegistry) Register(name string, fn transform.Func) {
	if _, exists := r.funcs[name]; exists {
		panic(fmt.Sprintf("function %q registered twice", name))
	}
	r.funcs[name] = fn
}

// Resolve returns the callable registered under name. Absence is a normal
// outcome (stale catalogs, user-supplied names), never a panic.
func (r *FunctionRegistry) Resolve(name string) (transform.Func, bool) {
	fn, ok := r.funcs[name]
	return fn, ok
}

// Has reports whether name is registered without resolving it.
func (r *FunctionRegistry) Has(name string) bool {
	_, ok := r.funcs[name]
	return ok
}

// Names returns all registered names, sorted for deterministic output.
func (r *FunctionRegistry) Names() []string {
	names := make([]string, 0, len(r.funcs))
	for name := range r.funcs {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Len returns the number of registered functions.
func (r *FunctionRegistry) Len() int {
	return len(r.funcs)
}
