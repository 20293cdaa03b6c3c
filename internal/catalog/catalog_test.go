package catalog

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCategorySlugsAreUnique(t *testing.T) {
	seen := make(map[string]bool)
	for _, c := range Categories() {
		assert.False(t, seen[c.Slug], "duplicate category slug %q", c.Slug)
		seen[c.Slug] = true
	}
}

func TestCategorySlugMatchesID(t *testing.T) {
	// Convention, not a hard requirement: callers rely on slug == id.
	for _, c := range Categories() {
		assert.Equal(t, c.ID, c.Slug, "category %q", c.ID)
	}
}

func TestGetCategoryByIDAndSlug(t *testing.T) {
	for _, c := range Categories() {
		byID, ok := GetCategoryByID(c.ID)
		require.True(t, ok)
		assert.Equal(t, c, byID)

		bySlug, ok := GetCategoryBySlug(c.Slug)
		require.True(t, ok)
		assert.Equal(t, c, bySlug)
	}

	_, ok := GetCategoryByID("does-not-exist")
	assert.False(t, ok)
	_, ok = GetCategoryBySlug("does-not-exist")
	assert.False(t, ok)
}

func TestCategoryIDsOrder(t *testing.T) {
	ids := CategoryIDs()
	slugs := CategorySlugs()
	cats := Categories()
	require.Len(t, ids, len(cats))
	require.Len(t, slugs, len(cats))
	for i, c := range cats {
		assert.Equal(t, c.ID, ids[i])
		assert.Equal(t, c.Slug, slugs[i])
	}
}

func TestToolIDsAreUnique(t *testing.T) {
	seen := make(map[string]bool)
	for _, tool := range Tools() {
		assert.False(t, seen[tool.ID], "duplicate tool id %q", tool.ID)
		seen[tool.ID] = true
	}
}

func TestToolSlugsUniquePerCategory(t *testing.T) {
	seen := make(map[string]bool)
	for _, tool := range Tools() {
		key := tool.CategoryID + "/" + tool.Slug
		assert.False(t, seen[key], "duplicate slug %q in category %q", tool.Slug, tool.CategoryID)
		seen[key] = true
	}
}

func TestToolCategoryReferencesResolve(t *testing.T) {
	for _, tool := range Tools() {
		_, ok := GetCategoryByID(tool.CategoryID)
		assert.True(t, ok, "tool %q references unknown category %q", tool.ID, tool.CategoryID)
	}
}

func TestToolKeywordsNotEmpty(t *testing.T) {
	for _, tool := range Tools() {
		assert.NotEmpty(t, tool.Keywords, "tool %q has no keywords", tool.ID)
	}
}

func TestToolsPreserveDeclarationOrder(t *testing.T) {
	first := Tools()
	second := Tools()
	assert.Equal(t, first, second)
	require.NotEmpty(t, first)
	assert.Equal(t, "reverse-text", first[0].ID)
}

func TestToolsReturnsCopy(t *testing.T) {
	tools := Tools()
	tools[0].ID = "mutated"
	assert.Equal(t, "reverse-text", Tools()[0].ID)
}

func TestGeneratorsAreFlagged(t *testing.T) {
	for _, tool := range Tools() {
		if tool.CategoryID == CategoryGenerators {
			assert.True(t, tool.IsGenerator, "tool %q in generators must be flagged", tool.ID)
		} else {
			assert.False(t, tool.IsGenerator, "tool %q outside generators must not be flagged", tool.ID)
		}
	}
}
