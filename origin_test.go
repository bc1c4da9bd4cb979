package sitegen

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuildOriginHTML(t *testing.T) {
	site, _, _ := newTestSite(t)
	writeFile(t, filepath.Join(site.ContentRoot, "origin.json"),
		`{"body": {"en": "<p>water</p>", "es": "<p>agua</p>"}}`)

	html, ok := site.BuildOriginHTML()
	require.True(t, ok)
	assert.Contains(t, html, "<p>water</p>")
	assert.Contains(t, html, "<p>agua</p>")
	assert.Contains(t, html, "origin-en")
	assert.Contains(t, html, "origin-es")
}

func TestBuildOriginHTMLAbsent(t *testing.T) {
	site, _, _ := newTestSite(t)
	html, ok := site.BuildOriginHTML()
	assert.False(t, ok)
	assert.Empty(t, html)
}

func TestBuildOriginHTMLMalformedFallsBack(t *testing.T) {
	site, _, out := newTestSite(t)
	writeFile(t, filepath.Join(site.ContentRoot, "origin.json"), "{nope")

	_, ok := site.BuildOriginHTML()
	assert.False(t, ok)
	assert.Contains(t, out.String(), "origin.json")
}

func TestInjectOrigin(t *testing.T) {
	page := "<main><!-- __ORIGIN_HTML__ --></main>"

	assert.Equal(t, "<main><div>x</div></main>", InjectOrigin(page, "<div>x</div>"))

	// no origin content: template passes through untouched
	assert.Equal(t, page, InjectOrigin(page, ""))
}

func TestInjectOriginFirstOccurrenceOnly(t *testing.T) {
	page := "<!-- __ORIGIN_HTML__ --><!-- __ORIGIN_HTML__ -->"
	assert.Equal(t, "x<!-- __ORIGIN_HTML__ -->", InjectOrigin(page, "x"))
}
