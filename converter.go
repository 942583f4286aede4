package drawguide

// Converter converts HTML to Markdown.
type Converter interface {
	// Convert transforms HTML content into Markdown.
	// Blank input converts to an empty string.
	// The same input always yields byte-identical output.
	Convert(html string) (string, error)
}
