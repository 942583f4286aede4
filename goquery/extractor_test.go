package goquery_test

import (
	"testing"

	"github.com/fwojciec/drawguide"
	"github.com/fwojciec/drawguide/goquery"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Ensure Extractor implements drawguide.Extractor at compile time.
var _ drawguide.Extractor = (*goquery.Extractor)(nil)

func TestExtractor_Extract(t *testing.T) {
	t.Parallel()

	t.Run("keeps content and removes ad blocks", func(t *testing.T) {
		t.Parallel()

		html := `<!DOCTYPE html>
<html>
<head><title>How to Draw a Cat - Easy Drawing Guides</title></head>
<body>
<div class="inside-article">
	<h1>How to Draw a Cat</h1>
	<h2>Step 1</h2>
	<p>Begin by drawing a circle for the head.</p>
	<div class="mv-ad-box">Buy our premium pencils now</div>
</div>
</body>
</html>`

		result, err := goquery.NewExtractor(drawguide.DefaultSite()).Extract(html)

		require.NoError(t, err)
		assert.Equal(t, "How to Draw a Cat", result.Title)
		assert.Contains(t, result.ContentHTML, "<h2>Step 1</h2>")
		assert.Contains(t, result.ContentHTML, "Begin by drawing a circle")
		assert.NotContains(t, result.ContentHTML, "premium pencils")
		assert.NotContains(t, result.ContentHTML, "mv-ad-box")
	})

	t.Run("removes nested ad blocks and scripts", func(t *testing.T) {
		t.Parallel()

		html := `<div class="inside-article">
	<div class="entry-content">
		<p>Step text</p>
		<div class="mv-ad-box"><div class="mv-ad-box">nested ad</div></div>
		<script>track()</script>
		<style>.x{}</style>
	</div>
</div>`

		result, err := goquery.NewExtractor(drawguide.DefaultSite()).Extract(html)

		require.NoError(t, err)
		assert.Contains(t, result.ContentHTML, "Step text")
		assert.NotContains(t, result.ContentHTML, "nested ad")
		assert.NotContains(t, result.ContentHTML, "track()")
		assert.NotContains(t, result.ContentHTML, ".x{}")
	})

	t.Run("returns structure error when content marker is missing", func(t *testing.T) {
		t.Parallel()

		html := `<html><body><div class="content"><p>Redesigned page</p></div></body></html>`

		_, err := goquery.NewExtractor(drawguide.DefaultSite()).Extract(html)

		require.Error(t, err)
		assert.Equal(t, drawguide.ESTRUCTURE, drawguide.ErrorCode(err))
		assert.Contains(t, drawguide.ErrorMessage(err), "page structure not recognized")
	})

	t.Run("returns empty content when only ads remain", func(t *testing.T) {
		t.Parallel()

		html := `<html><head><title>Empty</title></head><body>
<div class="inside-article"><div class="mv-ad-box">ad</div>  </div>
</body></html>`

		result, err := goquery.NewExtractor(drawguide.DefaultSite()).Extract(html)

		require.NoError(t, err)
		assert.Empty(t, result.ContentHTML)
		assert.Equal(t, "Empty", result.Title)
	})

	t.Run("falls back to title element and unknown title", func(t *testing.T) {
		t.Parallel()

		ext := goquery.NewExtractor(drawguide.DefaultSite())

		result, err := ext.Extract(`<html><head><title> Dog   Sketch </title></head><body><div class="inside-article"><p>x</p></div></body></html>`)
		require.NoError(t, err)
		assert.Equal(t, "Dog Sketch", result.Title)

		result, err = ext.Extract(`<div class="inside-article"><p>x</p></div>`)
		require.NoError(t, err)
		assert.Equal(t, "Unknown Title", result.Title)
	})

	t.Run("promotes lazy image sources", func(t *testing.T) {
		t.Parallel()

		html := `<div class="inside-article">
	<img src="data:image/gif;base64,R0lGOD" data-lazy-src="https://easydrawingguides.com/wp-content/uploads/cat-step-1.png" alt="Cat step 1">
	<img data-src="https://easydrawingguides.com/wp-content/uploads/cat-step-2.png" alt="Cat step 2">
	<img src="https://easydrawingguides.com/wp-content/uploads/cat-step-3.png" data-src="ignored.png" alt="Cat step 3">
</div>`

		result, err := goquery.NewExtractor(drawguide.DefaultSite()).Extract(html)

		require.NoError(t, err)
		assert.Contains(t, result.ContentHTML, `src="https://easydrawingguides.com/wp-content/uploads/cat-step-1.png"`)
		assert.Contains(t, result.ContentHTML, `src="https://easydrawingguides.com/wp-content/uploads/cat-step-2.png"`)
		assert.Contains(t, result.ContentHTML, `src="https://easydrawingguides.com/wp-content/uploads/cat-step-3.png"`)
		assert.NotContains(t, result.ContentHTML, `src="ignored.png"`)
	})

	t.Run("keeps image-only content", func(t *testing.T) {
		t.Parallel()

		html := `<div class="inside-article"><img src="/cat.png" alt="Cat"></div>`

		result, err := goquery.NewExtractor(drawguide.DefaultSite()).Extract(html)

		require.NoError(t, err)
		assert.Contains(t, result.ContentHTML, "cat.png")
	})

	t.Run("uses configured markers", func(t *testing.T) {
		t.Parallel()

		site := drawguide.DefaultSite()
		site.ContentSelector = "main#guide"
		site.AdSelector = ".promo"

		result, err := goquery.NewExtractor(site).Extract(`<main id="guide"><p>Steps</p><aside class="promo">Promo</aside></main>`)

		require.NoError(t, err)
		assert.Contains(t, result.ContentHTML, "Steps")
		assert.NotContains(t, result.ContentHTML, "Promo")
	})

	t.Run("is deterministic", func(t *testing.T) {
		t.Parallel()

		html := `<div class="inside-article"><h2>Step 1</h2><ul><li>a</li><li>b</li></ul><a href="/next/">Next</a></div>`
		ext := goquery.NewExtractor(drawguide.DefaultSite())

		first, err := ext.Extract(html)
		require.NoError(t, err)
		second, err := ext.Extract(html)
		require.NoError(t, err)

		assert.Equal(t, first, second)
	})
}
