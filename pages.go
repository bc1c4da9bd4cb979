package sitegen

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"

	"github.com/adrg/frontmatter"
	chromahtml "github.com/alecthomas/chroma/v2/formatters/html"
	"github.com/yuin/goldmark"
	highlighting "github.com/yuin/goldmark-highlighting/v2"
	"github.com/yuin/goldmark/extension"
	"github.com/yuin/goldmark/parser"
	"github.com/yuin/goldmark/renderer/html"
	"go.abhg.dev/goldmark/anchor"
)

// Tokens replaced in the page wrapper template.
const (
	TokenPageTitle = "/*__PAGE_TITLE__*/"
	TokenPageHTML  = "<!-- __PAGE_HTML__ -->"
)

type pageMatter struct {
	Title string `yaml:"title"`
}

func newMarkdown() goldmark.Markdown {
	return goldmark.New(
		goldmark.WithExtensions(
			extension.GFM,
			extension.Typographer,
			highlighting.NewHighlighting(
				highlighting.WithStyle("monokai"),
				highlighting.WithFormatOptions(
					chromahtml.WithLineNumbers(true),
				),
			),
			&anchor.Extender{},
		),
		goldmark.WithParserOptions(
			parser.WithAutoHeadingID(),
		),
		goldmark.WithRendererOptions(
			html.WithUnsafe(),
		),
	)
}

// RenderPages converts content/pages/*.md into standalone HTML files
// in the staging tree, each wrapped by templates/page.html.  The whole
// step is optional: no pages directory means nothing to do, and a
// missing wrapper template downgrades to a warning.
func (s *Site) RenderPages(ctx *BuildContext) {
	dir := filepath.Join(s.ContentRoot, "pages")
	entries, err := os.ReadDir(dir)
	if err != nil {
		return
	}
	wrapper, err := os.ReadFile(filepath.Join(s.TemplatesDir, "page.html"))
	if err != nil {
		s.Console.Warnf("skipping markdown pages: missing template page.html")
		return
	}
	md := newMarkdown()
	for _, entry := range entries {
		if entry.IsDir() || filepath.Ext(entry.Name()) != ".md" {
			continue
		}
		name := entry.Name()
		f, err := os.Open(filepath.Join(dir, name))
		if err != nil {
			s.Console.Warnf("skipping page %s: %v", name, err)
			continue
		}
		var matter pageMatter
		rest, err := frontmatter.Parse(f, &matter)
		f.Close()
		if err != nil {
			s.Console.Warnf("skipping page %s: %v", name, err)
			continue
		}
		var buf bytes.Buffer
		if err := md.Convert(rest, &buf); err != nil {
			s.Console.Warnf("skipping page %s: %v", name, err)
			continue
		}
		out := s.Apply(name, string(wrapper), []Injection{
			{TokenPageTitle, matter.Title},
			{TokenPageHTML, buf.String()},
		})
		outName := strings.TrimSuffix(name, ".md") + ".html"
		if err := os.WriteFile(filepath.Join(ctx.StagingDir, outName), []byte(out), 0644); err != nil {
			s.Console.Warnf("could not write %s: %v", outName, err)
			continue
		}
		s.Console.Okf("page %s", outName)
	}
}
