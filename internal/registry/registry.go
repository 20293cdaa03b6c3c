package registry

import (
	"fmt"
	"strings"

	"textforge/internal/catalog"
)

// CategoryWithCount is a category plus the number of tools it contains.
// Computed on demand; the catalogs never change at runtime.
type CategoryWithCount struct {
	catalog.Category
	ToolCount int `json:"toolCount"`
}

// ToolWithCategory is a tool merged with its resolved category, for display
// contexts needing both.
type ToolWithCategory struct {
	catalog.Tool
	Category catalog.Category `json:"category"`
}

// SlugPair is one valid (category, tool) address, used to enumerate every
// tool URL for static page generation.
type SlugPair struct {
	Category string `json:"category"`
	Tool     string `json:"tool"`
}

// popularToolIDs is the hand-curated list behind PopularTools. Entries that
// fall out of the catalog are dropped silently at query time; the sync is
// additionally checked by a test.
var popularToolIDs = []string{
	"uuid-v4",
	"base64-encode",
	"json-format",
	"camel-case",
	"rot13",
	"sha256-hash",
	"url-encode",
	"hex-to-rgb",
}

// ToolRegistry answers lookup, search and relation queries over the static
// catalogs. It is built once and read-only afterwards; every query treats
// absence as a normal (zero, false) or empty-slice result, never an error.
type ToolRegistry struct {
	tools      []catalog.Tool
	categories []catalog.Category
	byID       map[string]catalog.Tool
	bySlug     map[string]catalog.Tool
	byCategory map[string][]catalog.Tool
}

// NewToolRegistry builds the registry, validating the catalogs eagerly:
// duplicate tool ids, duplicate slugs (global — see the slug note on
// GetToolBySlug) and dangling category references all fail construction.
func NewToolRegistry(categories []catalog.Category, tools []catalog.Tool) (*ToolRegistry, error) {
	r := &ToolRegistry{
		tools:      tools,
		categories: categories,
		byID:       make(map[string]catalog.Tool, len(tools)),
		bySlug:     make(map[string]catalog.Tool, len(tools)),
		byCategory: make(map[string][]catalog.Tool),
	}

	catIDs := make(map[string]struct{}, len(categories))
	catSlugs := make(map[string]struct{}, len(categories))
	for _, c := range categories {
		if _, dup := catIDs[c.ID]; dup {
			return nil, fmt.Errorf("duplicate category id %q", c.ID)
		}
		if _, dup := catSlugs[c.Slug]; dup {
			return nil, fmt.Errorf("duplicate category slug %q", c.Slug)
		}
		catIDs[c.ID] = struct{}{}
		catSlugs[c.Slug] = struct{}{}
	}

	for _, t := range tools {
		if _, dup := r.byID[t.ID]; dup {
			return nil, fmt.Errorf("duplicate tool id %q", t.ID)
		}
		if _, dup := r.bySlug[t.Slug]; dup {
			return nil, fmt.Errorf("duplicate tool slug %q", t.Slug)
		}
		if _, ok := catIDs[t.CategoryID]; !ok {
			return nil, fmt.Errorf("tool %q references unknown category %q", t.ID, t.CategoryID)
		}
		r.byID[t.ID] = t
		r.bySlug[t.Slug] = t
		r.byCategory[t.CategoryID] = append(r.byCategory[t.CategoryID], t)
	}

	return r, nil
}

// MustNewToolRegistry is NewToolRegistry that panics on invalid catalogs,
// for process initialization where a bad catalog is unrecoverable.
func MustNewToolRegistry(categories []catalog.Category, tools []catalog.Tool) *ToolRegistry {
	r, err := NewToolRegistry(categories, tools)
	if err != nil {
		panic(err)
	}
	return r
}

// NewDefaultToolRegistry builds the registry over the shipped catalogs.
func NewDefaultToolRegistry() *ToolRegistry {
	return MustNewToolRegistry(catalog.Categories(), catalog.Tools())
}

// GetToolByID returns the tool with the given id.
func (r *ToolRegistry) GetToolByID(id string) (catalog.Tool, bool) {
	t, ok := r.byID[id]
	return t, ok
}

// GetToolBySlug returns the tool with the given slug across all categories.
// The data model only promises per-category slug uniqueness; this registry
// additionally enforces global uniqueness at construction so the lookup is
// unambiguous. Callers that have a category should prefer GetTool.
func (r *ToolRegistry) GetToolBySlug(slug string) (catalog.Tool, bool) {
	t, ok := r.bySlug[slug]
	return t, ok
}

// GetTool resolves the (categorySlug, toolSlug) composite key: the category
// must exist and the tool must belong to it. A slug match in a different
// category is not-found.
func (r *ToolRegistry) GetTool(categorySlug, toolSlug string) (catalog.Tool, bool) {
	c, ok := r.categoryBySlug(categorySlug)
	if !ok {
		return catalog.Tool{}, false
	}
	t, ok := r.bySlug[toolSlug]
	if !ok || t.CategoryID != c.ID {
		return catalog.Tool{}, false
	}
	return t, true
}

// GetToolWithCategory returns the tool and its resolved category.
func (r *ToolRegistry) GetToolWithCategory(toolID string) (ToolWithCategory, bool) {
	t, ok := r.byID[toolID]
	if !ok {
		return ToolWithCategory{}, false
	}
	c, ok := r.categoryByID(t.CategoryID)
	if !ok {
		return ToolWithCategory{}, false
	}
	return ToolWithCategory{Tool: t, Category: c}, true
}

// GetToolsByCategory returns the tools of a category in catalog order.
// Unknown or empty categories yield an empty slice.
func (r *ToolRegistry) GetToolsByCategory(categoryID string) []catalog.Tool {
	tools := r.byCategory[categoryID]
	out := make([]catalog.Tool, len(tools))
	copy(out, tools)
	return out
}

// GetToolsByCategorySlug is GetToolsByCategory addressed by slug.
func (r *ToolRegistry) GetToolsByCategorySlug(categorySlug string) []catalog.Tool {
	c, ok := r.categoryBySlug(categorySlug)
	if !ok {
		return []catalog.Tool{}
	}
	return r.GetToolsByCategory(c.ID)
}

// ListAllTools returns the full catalog in declaration order.
func (r *ToolRegistry) ListAllTools() []catalog.Tool {
	out := make([]catalog.Tool, len(r.tools))
	copy(out, r.tools)
	return out
}

// ListAllCategories returns all categories in declaration order.
func (r *ToolRegistry) ListAllCategories() []catalog.Category {
	out := make([]catalog.Category, len(r.categories))
	copy(out, r.categories)
	return out
}

// ListCategoriesWithCounts returns every category with its tool count.
func (r *ToolRegistry) ListCategoriesWithCounts() []CategoryWithCount {
	out := make([]CategoryWithCount, len(r.categories))
	for i, c := range r.categories {
		out[i] = CategoryWithCount{Category: c, ToolCount: len(r.byCategory[c.ID])}
	}
	return out
}

// TotalToolCount returns the size of the full catalog.
func (r *ToolRegistry) TotalToolCount() int {
	return len(r.tools)
}

// CategoryToolCount returns the number of tools in a category, 0 when the
// category is unknown or empty.
func (r *ToolRegistry) CategoryToolCount(categoryID string) int {
	return len(r.byCategory[categoryID])
}

// SearchTools returns the tools whose name, description and keywords
// together contain every whitespace-separated query term as a substring,
// case-insensitively, in catalog order. An empty or all-whitespace query
// returns an empty result rather than the full catalog.
func (r *ToolRegistry) SearchTools(query string) []catalog.Tool {
	terms := strings.Fields(strings.ToLower(strings.TrimSpace(query)))
	if len(terms) == 0 {
		return []catalog.Tool{}
	}

	matches := []catalog.Tool{}
	for _, t := range r.tools {
		haystack := strings.ToLower(t.Name + " " + t.Description + " " + strings.Join(t.Keywords, " "))
		matched := true
		for _, term := range terms {
			if !strings.Contains(haystack, term) {
				matched = false
				break
			}
		}
		if matched {
			matches = append(matches, t)
		}
	}
	return matches
}

// GetAllToolSlugs returns exactly one (category, tool) slug pair per tool in
// catalog order. If a category lookup ever fails the raw category id is used
// so enumeration never drops a tool.
func (r *ToolRegistry) GetAllToolSlugs() []SlugPair {
	out := make([]SlugPair, len(r.tools))
	for i, t := range r.tools {
		categorySlug := t.CategoryID
		if c, ok := r.categoryByID(t.CategoryID); ok {
			categorySlug = c.Slug
		}
		out[i] = SlugPair{Category: categorySlug, Tool: t.Slug}
	}
	return out
}

// GetRelatedTools returns up to limit tools sharing a category with the
// given tool, excluding the tool itself, in catalog order. Unknown ids and
// non-positive limits yield an empty slice.
func (r *ToolRegistry) GetRelatedTools(toolID string, limit int) []catalog.Tool {
	t, ok := r.byID[toolID]
	if !ok || limit <= 0 {
		return []catalog.Tool{}
	}
	related := []catalog.Tool{}
	for _, other := range r.byCategory[t.CategoryID] {
		if other.ID == t.ID {
			continue
		}
		related = append(related, other)
		if len(related) == limit {
			break
		}
	}
	return related
}

// DefaultRelatedLimit is the related-tools truncation used by callers that
// do not choose their own.
const DefaultRelatedLimit = 5

// GetPopularTools resolves the curated popular list against the catalog,
// silently dropping ids that no longer resolve.
func (r *ToolRegistry) GetPopularTools() []catalog.Tool {
	out := []catalog.Tool{}
	for _, id := range popularToolIDs {
		if t, ok := r.byID[id]; ok {
			out = append(out, t)
		}
	}
	return out
}

func (r *ToolRegistry) categoryByID(id string) (catalog.Category, bool) {
	for _, c := range r.categories {
		if c.ID == id {
			return c, true
		}
	}
	return catalog.Category{}, false
}

func (r *ToolRegistry) categoryBySlug(slug string) (catalog.Category, bool) {
	for _, c := range r.categories {
		if c.Slug == slug {
			return c, true
		}
	}
	return catalog.Category{}, false
}
