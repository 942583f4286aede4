package drawguide

import (
	"net"
	"net/url"
	"strings"

	"golang.org/x/net/publicsuffix"
)

// SourceEasy is the only supported search source.
const SourceEasy = "easy"

// Site describes the scraped tutorial site: where it lives and the
// structural markers used to find content on its pages. The markers are
// brittle to redesigns; a mismatch surfaces as ESTRUCTURE.
type Site struct {
	// Name is the human-readable source name reported in results.
	Name string

	// Key is the source identifier accepted by search.
	Key string

	// BaseURL is the site root without a trailing slash.
	BaseURL string

	// Domain is the registrable domain guide URLs must belong to.
	Domain string

	SearchPath     string
	CategoriesPath string
	SitemapPath    string

	// CSS selectors.
	ContentSelector     string
	AdSelector          string
	SearchEntrySelector string
	CategorySelector    string
}

// DefaultSite returns the configuration for easydrawingguides.com.
func DefaultSite() Site {
	return Site{
		Name:                "Easy Drawing Guides",
		Key:                 SourceEasy,
		BaseURL:             "https://easydrawingguides.com",
		Domain:              "easydrawingguides.com",
		SearchPath:          "/",
		CategoriesPath:      "/",
		SitemapPath:         "/category-sitemap.xml",
		ContentSelector:     "div.inside-article",
		AdSelector:          "div.mv-ad-box",
		SearchEntrySelector: "article.post",
		CategorySelector:    "li.cat-item a",
	}
}

// WithBaseURL returns a copy of the site rooted at baseURL.
// The domain becomes the registrable domain of the new URL's host, so a
// www base still owns the apex. IP hosts are kept as they are.
func (s Site) WithBaseURL(baseURL string) Site {
	s.BaseURL = strings.TrimRight(baseURL, "/")
	u, err := url.Parse(s.BaseURL)
	if err != nil || u.Hostname() == "" {
		return s
	}
	host := strings.TrimSuffix(strings.ToLower(u.Hostname()), ".")
	s.Domain = host
	if net.ParseIP(host) == nil {
		if registrable, err := publicsuffix.EffectiveTLDPlusOne(host); err == nil {
			s.Domain = registrable
		}
	}
	return s
}

// SearchURL returns the site search URL for a query.
func (s Site) SearchURL(query string) string {
	return s.BaseURL + s.SearchPath + "?" + url.Values{"s": {query}}.Encode()
}

// CategoriesURL returns the URL of the page listing categories.
func (s Site) CategoriesURL() string {
	return s.BaseURL + s.CategoriesPath
}

// SitemapURL returns the URL of the category sitemap.
func (s Site) SitemapURL() string {
	return s.BaseURL + s.SitemapPath
}

// NormalizeURL reduces a URL to lower-cased scheme and host plus the path
// without a trailing slash. Query and fragment are dropped. Unparseable
// input is returned unchanged.
func NormalizeURL(raw string) string {
	u, err := url.Parse(strings.TrimSpace(raw))
	if err != nil || u.Host == "" {
		return raw
	}
	return strings.ToLower(u.Scheme) + "://" + strings.ToLower(u.Host) + strings.TrimRight(u.Path, "/")
}
