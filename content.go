package sitegen

import (
	"os"
	"path/filepath"
	"sort"
	"strings"

	gut "github.com/panyam/goutils/utils"
)

// ReadPosts loads every *.json file in the posts directory, newest
// first.  A post is whatever JSON document its author wrote - the
// loader does not validate structure; by convention each post carries
// a sortable "date" string.  Files that fail to parse are reported and
// dropped so one bad post never takes down the build.  A missing posts
// directory just means no posts.
func (s *Site) ReadPosts() []any {
	dir := filepath.Join(s.ContentRoot, "posts")
	entries, err := os.ReadDir(dir)
	if err != nil {
		return []any{}
	}
	posts := []any{}
	for _, entry := range entries {
		if entry.IsDir() || !strings.HasSuffix(entry.Name(), ".json") {
			continue
		}
		data, err := os.ReadFile(filepath.Join(dir, entry.Name()))
		var parsed any
		if err == nil {
			parsed, err = gut.JsonDecodeBytes(data)
		}
		if err != nil {
			s.Console.Warnf("skipping post %s: %v", entry.Name(), err)
			continue
		}
		posts = append(posts, parsed)
	}
	// Descending string compare; undated posts sort last.
	sort.SliceStable(posts, func(i, j int) bool {
		return postDate(posts[i]) > postDate(posts[j])
	})
	return posts
}

func postDate(post any) string {
	obj, ok := post.(map[string]any)
	if !ok {
		return ""
	}
	date, _ := obj["date"].(string)
	return date
}

func (s *Site) contentPath(name string) string {
	return filepath.Join(s.ContentRoot, name)
}

// ReadUnlinked loads the unlinked comments list, defaulting to an
// empty list when absent.
func (s *Site) ReadUnlinked() any {
	return s.ReadJSON(s.contentPath("unlinked-comments.json"), []any{})
}

// ReadAbout loads the bilingual about blurb, defaulting to empty
// strings for both languages.
func (s *Site) ReadAbout() any {
	return s.ReadJSON(s.contentPath("about.json"), map[string]any{"en": "", "es": ""})
}

// ContactEmail returns the contact address from site.json, or "" when
// the config is absent or carries none.  Every other field of
// site.json is ignored here.
func (s *Site) ContactEmail() string {
	cfg, _ := s.ReadJSON(s.contentPath("site.json"), map[string]any{}).(map[string]any)
	email, _ := cfg["contact_email"].(string)
	return email
}
