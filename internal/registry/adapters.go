package registry

import (
	"encoding/json"
	"fmt"

	"textforge/internal/transform"
)

// Adapters normalize the native transformation signatures to the uniform
// transform.Func contract. Each native shape gets one small named
// constructor; bindings.go pairs them with the concrete functions. Option
// values arrive as loosely typed JSON, so the extractors coerce and fall
// back to the declared default on absence or wrong type.

// Plain adapts an infallible func(string) string.
func Plain(fn func(string) string) transform.Func {
	return func(input string, _ transform.Options) (string, error) {
		return fn(input), nil
	}
}

// Fallible adapts a func(string) (string, error).
func Fallible(fn func(string) (string, error)) transform.Func {
	return func(input string, _ transform.Options) (string, error) {
		return fn(input)
	}
}

// WithIntOption adapts a function taking one numeric parameter, pulled from
// the named option with a default.
func WithIntOption(fn func(string, int) string, name string, def int) transform.Func {
	return func(input string, opts transform.Options) (string, error) {
		return fn(input, intOption(opts, name, def)), nil
	}
}

// FallibleWithIntOption is WithIntOption for fallible functions.
func FallibleWithIntOption(fn func(string, int) (string, error), name string, def int) transform.Func {
	return func(input string, opts transform.Options) (string, error) {
		return fn(input, intOption(opts, name, def))
	}
}

// WithStringOption adapts a function taking one string parameter with a
// default (e.g. a sort order).
func WithStringOption(fn func(string, string) string, name, def string) transform.Func {
	return func(input string, opts transform.Options) (string, error) {
		return fn(input, stringOption(opts, name, def)), nil
	}
}

// WithKeyOption adapts a function requiring a keyed parameter (cipher key,
// HMAC secret). The key defaults to empty; rejecting an empty key with a
// descriptive error is the underlying function's responsibility.
func WithKeyOption(fn func(string, string) (string, error), name string) transform.Func {
	return func(input string, opts transform.Options) (string, error) {
		return fn(input, stringOption(opts, name, ""))
	}
}

// Generator adapts a no-input generator; the input argument is ignored.
func Generator(fn func() string) transform.Func {
	return func(_ string, _ transform.Options) (string, error) {
		return fn(), nil
	}
}

// GeneratorWithIntOption adapts a generator taking a size/count parameter.
func GeneratorWithIntOption(fn func(int) (string, error), name string, def int) transform.Func {
	return func(_ string, opts transform.Options) (string, error) {
		return fn(intOption(opts, name, def))
	}
}

// GeneratorWithRange adapts a generator taking min/max bounds.
func GeneratorWithRange(fn func(int, int) (string, error), minName string, minDef int, maxName string, maxDef int) transform.Func {
	return func(_ string, opts transform.Options) (string, error) {
		return fn(intOption(opts, minName, minDef), intOption(opts, maxName, maxDef))
	}
}

// Structured adapts a function returning a non-string result; the result is
// serialized to pretty-printed JSON to satisfy the string contract.
func Structured[T any](fn func(string) (T, error)) transform.Func {
	return func(input string, _ transform.Options) (string, error) {
		v, err := fn(input)
		if err != nil {
			return "", err
		}
		out, err := json.MarshalIndent(v, "", "  ")
		if err != nil {
			return "", fmt.Errorf("serializing result: %w", err)
		}
		return string(out), nil
	}
}

func intOption(opts transform.Options, name string, def int) int {
	if opts == nil {
		return def
	}
	switch v := opts[name].(type) {
	case int:
		return v
	case int64:
		return int(v)
	case float64:
		return int(v)
	case json.Number:
		if n, err := v.Int64(); err == nil {
			return int(n)
		}
	}
	return def
}

func stringOption(opts transform.Options, name, def string) string {
	if opts == nil {
		return def
	}
	if v, ok := opts[name].(string); ok {
		return v
	}
	return def
}
