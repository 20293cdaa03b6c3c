// Package quickmenu is a second, smaller instantiation of the function
// registry pattern: a fixed set of context-menu style entries bound to their
// own registry instance. It shares no state with the default registry; the
// pure transformation library is the only common code.
package quickmenu

import (
	"textforge/internal/registry"
	"textforge/internal/transform"
)

// Item is one quick-menu entry.
type Item struct {
	ID    string `json:"id"`
	Title string `json:"title"`
	Fn    string `json:"fn"`
}

// Menu holds the quick-menu items and the registry instance resolving them.
type Menu struct {
	items     []Item
	functions *registry.FunctionRegistry
}

var menuItems = []Item{
	{ID: "quick-upper", Title: "UPPERCASE", Fn: "toUpperCase"},
	{ID: "quick-lower", Title: "lowercase", Fn: "toLowerCase"},
	{ID: "quick-camel", Title: "camelCase", Fn: "toCamelCase"},
	{ID: "quick-base64", Title: "Base64 encode", Fn: "base64Encode"},
	{ID: "quick-base64-decode", Title: "Base64 decode", Fn: "base64Decode"},
	{ID: "quick-url", Title: "URL encode", Fn: "urlEncode"},
	{ID: "quick-url-decode", Title: "URL decode", Fn: "urlDecode"},
	{ID: "quick-rot13", Title: "ROT13", Fn: "rot13"},
	{ID: "quick-slug", Title: "Slugify", Fn: "slugify"},
}

// New builds the quick menu with its own function registry holding only the
// subset of transformations the menu exposes.
func New() *Menu {
	r := registry.NewFunctionRegistry()
	r.Register("toUpperCase", registry.Plain(transform.ToUpperCase))
	r.Register("toLowerCase", registry.Plain(transform.ToLowerCase))
	r.Register("toCamelCase", registry.Plain(transform.ToCamelCase))
	r.Register("base64Encode", registry.Plain(transform.Base64Encode))
	r.Register("base64Decode", registry.Fallible(transform.Base64Decode))
	r.Register("urlEncode", registry.Plain(transform.URLEncode))
	r.Register("urlDecode", registry.Fallible(transform.URLDecode))
	r.Register("rot13", registry.Plain(transform.Rot13))
	r.Register("slugify", registry.Plain(transform.Slugify))

	items := make([]Item, len(menuItems))
	copy(items, menuItems)
	return &Menu{items: items, functions: r}
}

// Items returns the menu entries in declaration order.
func (m *Menu) Items() []Item {
	out := make([]Item, len(m.items))
	copy(out, m.items)
	return out
}

// Get returns the menu item with the given id.
func (m *Menu) Get(id string) (Item, bool) {
	for _, item := range m.items {
		if item.ID == id {
			return item, true
		}
	}
	return Item{}, false
}

// Apply runs the transformation behind the given menu item id.
func (m *Menu) Apply(id, input string) (string, bool, error) {
	item, ok := m.Get(id)
	if !ok {
		return "", false, nil
	}
	fn, ok := m.functions.Resolve(item.Fn)
	if !ok {
		return "", false, nil
	}
	out, err := fn(input, nil)
	return out, true, err
}

// Functions exposes the menu's registry for completeness checks.
func (m *Menu) Functions() *registry.FunctionRegistry {
	return m.functions
}
