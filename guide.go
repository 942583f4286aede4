package drawguide

import (
	"net/url"
	"strings"
)

// GuideRequest asks for a single guide page.
type GuideRequest struct {
	URL string `json:"url"`
}

// Validate returns EINVALID if the URL is missing, unparseable or not HTTP.
// A URL without a scheme is rewritten to https. Domain membership is
// checked by the dispatcher.
func (r *GuideRequest) Validate() error {
	r.URL = strings.TrimSpace(r.URL)
	if r.URL == "" {
		return Errorf(EINVALID, "url required")
	}
	if !strings.Contains(r.URL, "://") {
		r.URL = "https://" + strings.TrimPrefix(r.URL, "//")
	}
	u, err := url.Parse(r.URL)
	if err != nil {
		return Errorf(EINVALID, "invalid url %q: %v", r.URL, err)
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return Errorf(EINVALID, "url %q must use http or https", r.URL)
	}
	if u.Host == "" {
		return Errorf(EINVALID, "url %q has no host", r.URL)
	}
	return nil
}

// Guide is a single drawing tutorial converted to Markdown.
type Guide struct {
	Title  string `json:"title"`
	URL    string `json:"url"`
	Source string `json:"source"`

	// Content is the guide body as Markdown.
	Content string `json:"content"`

	// ContentLength is the number of characters in Content.
	ContentLength int `json:"contentLength"`

	// ContentHash fingerprints Content (hex xxhash64).
	ContentHash string `json:"contentHash"`
}
