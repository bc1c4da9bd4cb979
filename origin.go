package sitegen

import (
	"fmt"
	"strings"
)

// TokenOriginHTML is the placeholder replaced in the origin-consuming
// templates.
const TokenOriginHTML = "<!-- __ORIGIN_HTML__ -->"

// BuildOriginHTML renders content/origin.json as a fixed two column
// layout, English beside Spanish.  The bodies are author-supplied HTML
// fragments and are embedded verbatim, no escaping.  ok is false when
// the document is absent, which is a normal state for the site.
func (s *Site) BuildOriginHTML() (html string, ok bool) {
	doc, ok := s.ReadJSON(s.contentPath("origin.json"), nil).(map[string]any)
	if !ok {
		return "", false
	}
	body, _ := doc["body"].(map[string]any)
	en, _ := body["en"].(string)
	es, _ := body["es"].(string)
	return fmt.Sprintf(`<div class="origin">
  <div class="origin-col origin-en">
%s
  </div>
  <div class="origin-col origin-es">
%s
  </div>
</div>`, en, es), true
}

// InjectOrigin replaces the origin placeholder in html with the
// rendered fragment, first occurrence only.  With no origin content
// the template passes through untouched and the placeholder comment
// stays in place, rendering as nothing.
func InjectOrigin(html, originHTML string) string {
	if originHTML == "" {
		return html
	}
	return strings.Replace(html, TokenOriginHTML, originHTML, 1)
}
