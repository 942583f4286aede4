// Package goquery implements HTML traversal for drawguide using CSS
// selectors: guide content extraction, search result ranking and category
// parsing. Selectors come from drawguide.Site.
package goquery

import (
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/fwojciec/drawguide"
)

// Ensure Extractor implements drawguide.Extractor at compile time.
var _ drawguide.Extractor = (*Extractor)(nil)

// unknownTitle is reported when a page has neither <h1> nor <title>.
const unknownTitle = "Unknown Title"

// Extractor locates the main content region of a guide page by the site's
// content marker and strips ad blocks and scripts from it.
type Extractor struct {
	content string
	ads     string
}

// NewExtractor creates an Extractor using the site's content and ad markers.
func NewExtractor(site drawguide.Site) *Extractor {
	return &Extractor{
		content: site.ContentSelector,
		ads:     site.AdSelector,
	}
}

// Extract returns the title and the cleaned inner HTML of the content region.
func (e *Extractor) Extract(html string) (*drawguide.ExtractResult, error) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		return nil, drawguide.Errorf(drawguide.EINVALID, "failed to parse HTML: %v", err)
	}

	content := doc.Find(e.content).First()
	if content.Length() == 0 {
		return nil, drawguide.Errorf(drawguide.ESTRUCTURE, "page structure not recognized: no %q element", e.content)
	}

	if e.ads != "" {
		content.Find(e.ads).Remove()
	}
	content.Find("script, style, noscript").Remove()
	promoteLazyImages(content)

	contentHTML, err := content.Html()
	if err != nil {
		return nil, drawguide.Errorf(drawguide.EINTERNAL, "rendering guide content: %v", err)
	}
	if strings.TrimSpace(content.Text()) == "" && content.Find("img").Length() == 0 {
		contentHTML = ""
	}

	return &drawguide.ExtractResult{
		Title:       pageTitle(doc),
		ContentHTML: contentHTML,
	}, nil
}

// pageTitle returns the first <h1>, else <title>, else unknownTitle.
func pageTitle(doc *goquery.Document) string {
	if title := collapseSpace(doc.Find("h1").First().Text()); title != "" {
		return title
	}
	if title := collapseSpace(doc.Find("title").First().Text()); title != "" {
		return title
	}
	return unknownTitle
}

// promoteLazyImages copies data-src or data-lazy-src into src when src is
// missing or a data: placeholder.
func promoteLazyImages(sel *goquery.Selection) {
	sel.Find("img").Each(func(_ int, img *goquery.Selection) {
		src, _ := img.Attr("src")
		if src != "" && !strings.HasPrefix(src, "data:") {
			return
		}
		for _, attr := range []string{"data-lazy-src", "data-src"} {
			if lazy, ok := img.Attr(attr); ok && lazy != "" {
				img.SetAttr("src", lazy)
				return
			}
		}
	})
}

// collapseSpace trims s and collapses internal whitespace runs.
func collapseSpace(s string) string {
	return strings.Join(strings.Fields(s), " ")
}
