package catalog

// Option kinds for OptionSpec.Kind.
const (
	OptionText     = "text"
	OptionNumber   = "number"
	OptionSelect   = "select"
	OptionCheckbox = "checkbox"
)

// OptionSpec describes one declared parameter of a tool. Kind selects the
// UI control; Default is applied by callers for keys the user did not supply.
type OptionSpec struct {
	Name    string   `json:"name"`
	Label   string   `json:"label"`
	Kind    string   `json:"kind"`
	Default any      `json:"default,omitempty"`
	Choices []string `json:"choices,omitempty"` // select kind only
	Min     int      `json:"min,omitempty"`     // number kind only
	Max     int      `json:"max,omitempty"`     // number kind only
}

// Tool declares one transformation's metadata. TransformFn names the callable
// in the function registry; the catalog never references behavior directly.
type Tool struct {
	ID                string       `json:"id"`
	Name              string       `json:"name"`
	Description       string       `json:"description"`
	CategoryID        string       `json:"categoryId"`
	Slug              string       `json:"slug"`
	TransformFn       string       `json:"transformFn"`
	IsAsync           bool         `json:"isAsync,omitempty"`
	IsGenerator       bool         `json:"isGenerator,omitempty"`
	Options           []OptionSpec `json:"options,omitempty"`
	Keywords          []string     `json:"keywords"`
	ReverseFn         string       `json:"reverseFn,omitempty"`
	InputPlaceholder  string       `json:"inputPlaceholder,omitempty"`
	OutputPlaceholder string       `json:"outputPlaceholder,omitempty"`
}

// Tools returns the full tool catalog: both batches concatenated in
// declaration order. The returned slice is a copy.
func Tools() []Tool {
	out := make([]Tool, 0, len(toolsBatch1)+len(toolsBatch2))
	out = append(out, toolsBatch1...)
	out = append(out, toolsBatch2...)
	return out
}
