package drawguide

import "context"

// CategoryList is the result of the list_categories operation.
type CategoryList struct {
	Categories     []string `json:"categories"`
	SuggestedTerms []string `json:"suggestedTerms"`
}

// CategorySource lists drawing categories.
type CategorySource interface {
	Categories(ctx context.Context) ([]string, error)
}

// CategoryParser extracts category names from a page listing them.
type CategoryParser interface {
	// ParseCategories returns names in page order without duplicates.
	// Returns ESTRUCTURE when the page has no category marker.
	ParseCategories(html string) ([]string, error)
}

var defaultCategories = []string{
	"Animals", "People", "Plants", "Cartoons", "Objects",
	"Anime", "Video Games", "Flowers", "Comics",
}

var defaultSuggestedTerms = []string{
	"Animals (cat, dog, lion, elephant, etc.)",
	"Cartoon Characters (Mickey Mouse, Pikachu, etc.)",
	"Anime Characters (Naruto, Goku, etc.)",
	"Flowers (rose, tulip, sunflower, etc.)",
	"Objects (house, car, tree, etc.)",
	"People (face, body, girl, boy, etc.)",
}

// DefaultCategories returns a copy of the curated category table.
func DefaultCategories() []string {
	return append([]string(nil), defaultCategories...)
}

// DefaultSuggestedTerms returns a copy of the curated search suggestions.
func DefaultSuggestedTerms() []string {
	return append([]string(nil), defaultSuggestedTerms...)
}

// Ensure StaticCategories implements CategorySource.
var _ CategorySource = StaticCategories{}

// StaticCategories serves the curated category table.
type StaticCategories struct{}

// Categories returns DefaultCategories. It never fails.
func (StaticCategories) Categories(ctx context.Context) ([]string, error) {
	return DefaultCategories(), nil
}
