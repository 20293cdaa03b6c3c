// Package transform provides the pure transformation functions the registry
// dispatches to. Every function is stateless and performs no I/O; generators
// draw from crypto/rand but are otherwise self-contained.
package transform

// Options carries the optional, named parameters of a transformation, as
// declared by the owning tool's option schema. Values arrive as loosely typed
// JSON (numbers may be float64); adapters are responsible for coercion and
// defaults.
type Options map[string]any

// Func is the uniform calling contract every registered transformation is
// adapted to. Input errors are reported through the error channel with a
// descriptive, user-facing message.
type Func func(input string, opts Options) (string, error)
