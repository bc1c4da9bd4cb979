package sitegen

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReadPostsSortsDescendingByDate(t *testing.T) {
	site, _, _ := newTestSite(t)
	postsDir := filepath.Join(site.ContentRoot, "posts")
	writeFile(t, filepath.Join(postsDir, "older.json"), `{"date": "2024-01-01", "title": "older"}`)
	writeFile(t, filepath.Join(postsDir, "newer.json"), `{"date": "2024-06-01", "title": "newer"}`)
	writeFile(t, filepath.Join(postsDir, "undated.json"), `{"title": "undated"}`)

	posts := site.ReadPosts()
	require.Len(t, posts, 3)
	assert.Equal(t, "newer", posts[0].(map[string]any)["title"])
	assert.Equal(t, "older", posts[1].(map[string]any)["title"])
	assert.Equal(t, "undated", posts[2].(map[string]any)["title"])
}

func TestReadPostsSkipsMalformedWithWarning(t *testing.T) {
	site, _, out := newTestSite(t)
	postsDir := filepath.Join(site.ContentRoot, "posts")
	writeFile(t, filepath.Join(postsDir, "good.json"), `{"date": "2024-01-01"}`)
	writeFile(t, filepath.Join(postsDir, "broken.json"), `{"date": `)

	posts := site.ReadPosts()
	assert.Len(t, posts, 1)
	assert.Contains(t, out.String(), "broken.json")
}

func TestReadPostsIgnoresNonJSONFiles(t *testing.T) {
	site, _, _ := newTestSite(t)
	postsDir := filepath.Join(site.ContentRoot, "posts")
	writeFile(t, filepath.Join(postsDir, "post.json"), `{"date": "2024-01-01"}`)
	writeFile(t, filepath.Join(postsDir, "notes.txt"), "not a post")

	assert.Len(t, site.ReadPosts(), 1)
}

func TestReadPostsMissingDirIsEmpty(t *testing.T) {
	site, _, _ := newTestSite(t)
	assert.Empty(t, site.ReadPosts())
}

func TestReadUnlinkedDefault(t *testing.T) {
	site, _, _ := newTestSite(t)
	assert.Equal(t, []any{}, site.ReadUnlinked())
}

func TestReadAboutDefault(t *testing.T) {
	site, _, _ := newTestSite(t)
	assert.Equal(t, map[string]any{"en": "", "es": ""}, site.ReadAbout())
}

func TestContactEmail(t *testing.T) {
	site, _, _ := newTestSite(t)
	assert.Equal(t, "", site.ContactEmail())

	writeFile(t, filepath.Join(site.ContentRoot, "site.json"),
		`{"contact_email": "a@b.com", "unrelated": 42}`)
	assert.Equal(t, "a@b.com", site.ContactEmail())
}
