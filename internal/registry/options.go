package registry

import (
	"textforge/internal/catalog"
	"textforge/internal/transform"
)

// ApplyOptionDefaults builds the invocation options for a tool: the caller's
// supplied values merged over the tool's declared defaults. Supplied keys
// the tool does not declare are passed through untouched; the adapters
// ignore what they do not need.
func ApplyOptionDefaults(t catalog.Tool, supplied transform.Options) transform.Options {
	opts := make(transform.Options, len(t.Options)+len(supplied))
	for _, opt := range t.Options {
		if opt.Default != nil {
			opts[opt.Name] = opt.Default
		}
	}
	for k, v := range supplied {
		opts[k] = v
	}
	return opts
}
