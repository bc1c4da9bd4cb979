package sitegen

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRenderPages(t *testing.T) {
	site, _, _ := newTestSite(t)
	writeFile(t, filepath.Join(site.TemplatesDir, "entry.html"), "<html></html>")
	writeFile(t, filepath.Join(site.TemplatesDir, "page.html"),
		"<title>/*__PAGE_TITLE__*/</title><main><!-- __PAGE_HTML__ --></main>")
	writeFile(t, filepath.Join(site.ContentRoot, "pages", "about-site.md"),
		"---\ntitle: About\n---\n\nSome *emphasis* here.\n")

	require.NoError(t, site.Build())

	page := readFile(t, filepath.Join(site.OutputDir, "about-site.html"))
	assert.Contains(t, page, "<title>About</title>")
	assert.Contains(t, page, "<em>emphasis</em>")
}

func TestRenderPagesMissingWrapperWarns(t *testing.T) {
	site, _, out := newTestSite(t)
	writeFile(t, filepath.Join(site.TemplatesDir, "entry.html"), "<html></html>")
	writeFile(t, filepath.Join(site.ContentRoot, "pages", "a.md"), "# A\n")

	require.NoError(t, site.Build())

	assert.Contains(t, out.String(), "page.html")
	assert.NoFileExists(t, filepath.Join(site.OutputDir, "a.html"))
}

func TestRenderPagesNoPagesDirIsSilent(t *testing.T) {
	site, _, out := newTestSite(t)
	writeFile(t, filepath.Join(site.TemplatesDir, "entry.html"), "<html></html>")

	require.NoError(t, site.Build())
	assert.NotContains(t, out.String(), "page.html")
}
