package drawguide

// ExtractResult holds the extracted content from a guide page.
type ExtractResult struct {
	// Title is the page heading, falling back to the document title.
	Title string

	// ContentHTML is the inner HTML of the main content region with ad
	// blocks and scripts removed. Empty when nothing remains.
	ContentHTML string
}

// Extractor locates the main content region of a guide page.
type Extractor interface {
	// Extract returns ESTRUCTURE when the content marker is missing,
	// which means the site markup changed.
	Extract(html string) (*ExtractResult, error)
}
