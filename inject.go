package sitegen

import (
	"encoding/json"
	"strings"
)

// Tokens replaced in the blog template.  Tokens are matched as literal
// text, first occurrence only; the templates are never parsed as
// markup.
const (
	TokenPostsJSON    = "/*__POSTS_JSON__*/"
	TokenUnlinkedJSON = "/*__UNLINKED_JSON__*/"
	TokenAboutJSON    = "/*__ABOUT_JSON__*/"
	TokenContactEmail = "/*__CONTACT_EMAIL__*/"
)

// An Injection binds one placeholder token to the text that replaces
// it.  Declaring a template's injection points up front, instead of
// scattering Replace calls, lets the builder notice a token that never
// matched - the usual symptom of a renamed placeholder.
type Injection struct {
	Token string
	Value string
}

// Apply substitutes every declared injection into html, first match
// only per token.  name identifies the template in warnings.
func (s *Site) Apply(name, html string, injections []Injection) string {
	for _, inj := range injections {
		if !strings.Contains(html, inj.Token) {
			s.Console.Warnf("%s: placeholder %s not found", name, inj.Token)
			continue
		}
		html = strings.Replace(html, inj.Token, inj.Value, 1)
	}
	return html
}

// BlogInjections loads the blog page's data sources and serializes
// them for substitution.  Missing sources fall back to their defaults,
// the page still renders.
func (s *Site) BlogInjections() []Injection {
	return []Injection{
		{TokenPostsJSON, marshalJSON(s.ReadPosts())},
		{TokenUnlinkedJSON, marshalJSON(s.ReadUnlinked())},
		{TokenAboutJSON, marshalJSON(s.ReadAbout())},
		{TokenContactEmail, s.ContactEmail()},
	}
}

// InjectData renders the blog template text.
func (s *Site) InjectData(html string) string {
	return s.Apply("blog.html", html, s.BlogInjections())
}

func marshalJSON(v any) string {
	data, err := json.Marshal(v)
	if err != nil {
		// everything handed in came out of a JSON decode
		return "null"
	}
	return string(data)
}
