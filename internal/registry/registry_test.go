package registry

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"textforge/internal/catalog"
)

func TestLookupConsistency(t *testing.T) {
	r := NewDefaultToolRegistry()
	for _, tool := range r.ListAllTools() {
		byID, ok := r.GetToolByID(tool.ID)
		require.True(t, ok, "tool %q not found by id", tool.ID)
		assert.Equal(t, tool, byID)

		c, ok := catalog.GetCategoryByID(tool.CategoryID)
		require.True(t, ok)
		composite, ok := r.GetTool(c.Slug, tool.Slug)
		require.True(t, ok, "tool %q not found by (%s, %s)", tool.ID, c.Slug, tool.Slug)
		assert.Equal(t, tool, composite)
	}
}

func TestGetToolNotFound(t *testing.T) {
	r := NewDefaultToolRegistry()

	_, ok := r.GetToolByID("nope")
	assert.False(t, ok)
	_, ok = r.GetToolBySlug("nope")
	assert.False(t, ok)
	_, ok = r.GetTool("nope", "rot13")
	assert.False(t, ok)
	_, ok = r.GetTool("ciphers", "nope")
	assert.False(t, ok)
	// Slug exists, but in a different category.
	_, ok = r.GetTool("text", "rot13")
	assert.False(t, ok)
}

func TestGetToolWithCategory(t *testing.T) {
	r := NewDefaultToolRegistry()

	wc, ok := r.GetToolWithCategory("rot13")
	require.True(t, ok)
	assert.Equal(t, "rot13", wc.Tool.ID)
	assert.Equal(t, catalog.CategoryCiphers, wc.Category.ID)

	_, ok = r.GetToolWithCategory("nope")
	assert.False(t, ok)
}

func TestCountConsistency(t *testing.T) {
	r := NewDefaultToolRegistry()
	total := 0
	for _, c := range r.ListAllCategories() {
		count := r.CategoryToolCount(c.ID)
		assert.Equal(t, len(r.GetToolsByCategory(c.ID)), count)
		total += count
	}
	assert.Equal(t, r.TotalToolCount(), total)
	assert.Zero(t, r.CategoryToolCount("nope"))
}

func TestListCategoriesWithCounts(t *testing.T) {
	r := NewDefaultToolRegistry()
	withCounts := r.ListCategoriesWithCounts()
	require.Len(t, withCounts, len(r.ListAllCategories()))
	for _, cc := range withCounts {
		assert.Equal(t, r.CategoryToolCount(cc.ID), cc.ToolCount)
		assert.Positive(t, cc.ToolCount, "category %q has no tools", cc.ID)
	}
}

func TestGetToolsByCategorySlugUnknown(t *testing.T) {
	r := NewDefaultToolRegistry()
	assert.Empty(t, r.GetToolsByCategorySlug("nope"))
	assert.Empty(t, r.GetToolsByCategory("nope"))
}

func TestSearchEmptyQueryReturnsNothing(t *testing.T) {
	r := NewDefaultToolRegistry()
	assert.Empty(t, r.SearchTools(""))
	assert.Empty(t, r.SearchTools("   "))
	assert.Empty(t, r.SearchTools("\t\n"))
}

func TestSearchCaseInsensitive(t *testing.T) {
	r := NewDefaultToolRegistry()
	lower := r.SearchTools("base64")
	upper := r.SearchTools("BASE64")
	assert.Equal(t, lower, upper)
	require.NotEmpty(t, lower)
}

func TestSearchANDSemantics(t *testing.T) {
	r := NewDefaultToolRegistry()
	for _, tool := range r.SearchTools("json format") {
		haystack := tool.Name + " " + tool.Description
		for _, kw := range tool.Keywords {
			haystack += " " + kw
		}
		assert.Contains(t, strings.ToLower(haystack), "json")
		assert.Contains(t, strings.ToLower(haystack), "format")
	}
	require.NotEmpty(t, r.SearchTools("json format"))
}

func TestSearchPreservesCatalogOrder(t *testing.T) {
	r := NewDefaultToolRegistry()
	matches := r.SearchTools("case")
	position := make(map[string]int)
	for i, tool := range r.ListAllTools() {
		position[tool.ID] = i
	}
	for i := 1; i < len(matches); i++ {
		assert.Less(t, position[matches[i-1].ID], position[matches[i].ID])
	}
}

func TestRelatedToolsExclusionAndLimit(t *testing.T) {
	r := NewDefaultToolRegistry()

	related := r.GetRelatedTools("rot13", DefaultRelatedLimit)
	assert.LessOrEqual(t, len(related), DefaultRelatedLimit)
	for _, tool := range related {
		assert.NotEqual(t, "rot13", tool.ID)
		assert.Equal(t, catalog.CategoryCiphers, tool.CategoryID)
	}

	assert.Empty(t, r.GetRelatedTools("nope", 5))
	assert.Empty(t, r.GetRelatedTools("rot13", 0))
	assert.Len(t, r.GetRelatedTools("rot13", 2), 2)
}

func TestPopularToolsAllResolve(t *testing.T) {
	r := NewDefaultToolRegistry()
	popular := r.GetPopularTools()
	// The curated list must stay in sync with the catalog.
	assert.Len(t, popular, len(popularToolIDs))
}

func TestGetAllToolSlugs(t *testing.T) {
	r := NewDefaultToolRegistry()
	pairs := r.GetAllToolSlugs()
	require.Len(t, pairs, r.TotalToolCount())
	for i, tool := range r.ListAllTools() {
		c, ok := catalog.GetCategoryByID(tool.CategoryID)
		require.True(t, ok)
		assert.Equal(t, SlugPair{Category: c.Slug, Tool: tool.Slug}, pairs[i])
	}
}

func TestConstructionRejectsDuplicateToolID(t *testing.T) {
	cats := []catalog.Category{{ID: "a", Slug: "a", Name: "A"}}
	tools := []catalog.Tool{
		{ID: "t", Slug: "t1", CategoryID: "a", TransformFn: "x", Keywords: []string{"k"}},
		{ID: "t", Slug: "t2", CategoryID: "a", TransformFn: "x", Keywords: []string{"k"}},
	}
	_, err := NewToolRegistry(cats, tools)
	assert.ErrorContains(t, err, "duplicate tool id")
}

func TestConstructionRejectsDuplicateSlug(t *testing.T) {
	cats := []catalog.Category{
		{ID: "a", Slug: "a", Name: "A"},
		{ID: "b", Slug: "b", Name: "B"},
	}
	tools := []catalog.Tool{
		{ID: "t1", Slug: "same", CategoryID: "a", TransformFn: "x", Keywords: []string{"k"}},
		{ID: "t2", Slug: "same", CategoryID: "b", TransformFn: "x", Keywords: []string{"k"}},
	}
	// Global slug uniqueness is enforced even across categories.
	_, err := NewToolRegistry(cats, tools)
	assert.ErrorContains(t, err, "duplicate tool slug")
}

func TestConstructionRejectsDanglingCategory(t *testing.T) {
	cats := []catalog.Category{{ID: "a", Slug: "a", Name: "A"}}
	tools := []catalog.Tool{
		{ID: "t", Slug: "t", CategoryID: "missing", TransformFn: "x", Keywords: []string{"k"}},
	}
	_, err := NewToolRegistry(cats, tools)
	assert.ErrorContains(t, err, "unknown category")
}

func TestConstructionRejectsDuplicateCategory(t *testing.T) {
	cats := []catalog.Category{
		{ID: "a", Slug: "a", Name: "A"},
		{ID: "a", Slug: "a2", Name: "A again"},
	}
	_, err := NewToolRegistry(cats, nil)
	assert.ErrorContains(t, err, "duplicate category id")
}
