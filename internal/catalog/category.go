// Package catalog declares the static category and tool records the
// registries are built from. The catalogs are pure data: assembled once,
// never mutated, with declaration order preserved for deterministic
// iteration.
package catalog

// Category ids. Slugs match ids by convention.
const (
	CategoryText       = "text"
	CategoryCase       = "case"
	CategoryEncoding   = "encoding"
	CategoryHashing    = "hashing"
	CategoryFormatters = "formatters"
	CategoryColors     = "colors"
	CategoryGenerators = "generators"
	CategoryCiphers    = "ciphers"
)

// Category describes a group of related tools.
type Category struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
	Icon        string `json:"icon"`
	Slug        string `json:"slug"`
}

var categories = []Category{
	{ID: CategoryText, Name: "Text Utilities", Description: "Counting, reversing, slugifying and other everyday text operations", Icon: "📝", Slug: CategoryText},
	{ID: CategoryCase, Name: "Case Conversion", Description: "Convert between camelCase, snake_case, kebab-case and friends", Icon: "🔤", Slug: CategoryCase},
	{ID: CategoryEncoding, Name: "Encoding & Decoding", Description: "Base64, URL, HTML entities, hex, binary and morse code", Icon: "🔁", Slug: CategoryEncoding},
	{ID: CategoryHashing, Name: "Hashing", Description: "MD5, SHA family, HMAC and checksums", Icon: "🔒", Slug: CategoryHashing},
	{ID: CategoryFormatters, Name: "Formatters", Description: "Pretty-print, minify and reorganize structured text", Icon: "🧹", Slug: CategoryFormatters},
	{ID: CategoryColors, Name: "Color Tools", Description: "Convert and inspect colors across hex, RGB and HSL", Icon: "🎨", Slug: CategoryColors},
	{ID: CategoryGenerators, Name: "Generators", Description: "UUIDs, passwords, random numbers and placeholder text", Icon: "🎲", Slug: CategoryGenerators},
	{ID: CategoryCiphers, Name: "Classical Ciphers", Description: "ROT13, Caesar, Vigenère and other pencil-and-paper ciphers", Icon: "🗝️", Slug: CategoryCiphers},
}

// Categories returns all categories in declaration order. The returned slice
// is a copy; callers may not mutate the catalog.
func Categories() []Category {
	out := make([]Category, len(categories))
	copy(out, categories)
	return out
}

// GetCategoryByID returns the category with the given id.
func GetCategoryByID(id string) (Category, bool) {
	for _, c := range categories {
		if c.ID == id {
			return c, true
		}
	}
	return Category{}, false
}

// GetCategoryBySlug returns the category with the given slug.
func GetCategoryBySlug(slug string) (Category, bool) {
	for _, c := range categories {
		if c.Slug == slug {
			return c, true
		}
	}
	return Category{}, false
}

// CategoryIDs returns all category ids in declaration order.
func CategoryIDs() []string {
	ids := make([]string, len(categories))
	for i, c := range categories {
		ids[i] = c.ID
	}
	return ids
}

// CategorySlugs returns all category slugs in declaration order.
func CategorySlugs() []string {
	slugs := make([]string, len(categories))
	for i, c := range categories {
		slugs[i] = c.Slug
	}
	return slugs
}
