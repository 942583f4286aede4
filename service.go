package drawguide

import "context"

// Operation names exposed to clients.
const (
	OpSearch         = "search"
	OpGetGuide       = "get_guide"
	OpListCategories = "list_categories"
)

// GuideService is the operation surface exposed to clients.
// Implementations hold no state between calls.
type GuideService interface {
	// Search returns up to query.Limit reachable results.
	Search(ctx context.Context, query SearchQuery) (*SearchResponse, error)

	// GetGuide fetches a guide page and converts it to Markdown.
	// Returns EUNSUPPORTEDDOMAIN without any network call for foreign URLs.
	GetGuide(ctx context.Context, req GuideRequest) (*Guide, error)

	// ListCategories never fails; it degrades to the curated table.
	ListCategories(ctx context.Context) (*CategoryList, error)
}
