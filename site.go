package sitegen

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	gut "github.com/panyam/goutils/utils"
)

// The Site object is the central type in sitegen.  It holds the
// directory layout of one project and is the entry point for building
// it.  The zero value plus Init gives the conventional layout
// (content/, templates/, assets/, dist/, CNAME).
type Site struct {
	// ContentRoot holds the JSON content: posts/, origin.json,
	// about.json, site.json, unlinked-comments.json and the optional
	// markdown pages/ directory.
	ContentRoot string

	// TemplatesDir holds the HTML templates with their placeholder
	// tokens.
	TemplatesDir string

	// AssetsDir is mirrored verbatim into the output under assets/.
	AssetsDir string

	// OutputDir is fully regenerated on every build.  Nothing is
	// cached across builds.
	OutputDir string

	// CNAMEFile is copied into the output when present, for static
	// hosts that route custom domains off a marker file.
	CNAMEFile string

	// Console receives the progress lines.  Defaults to stdout.
	Console *Console

	initialized bool
}

// BuildContext carries the state of one build invocation through every
// step.  All steps write into StagingDir; the finished tree replaces
// OutputDir only after the last step, so an interrupted build cannot
// leave a half-written site behind.
type BuildContext struct {
	StagingDir string
	OriginHTML string
	HasOrigin  bool
	StartedAt  time.Time
}

// Initializes the Site, filling in the conventional layout for any
// directory left unset.
func (s *Site) Init() *Site {
	if s.ContentRoot == "" {
		s.ContentRoot = DefaultContentRoot
	}
	if s.TemplatesDir == "" {
		s.TemplatesDir = DefaultTemplatesDir
	}
	if s.AssetsDir == "" {
		s.AssetsDir = DefaultAssetsDir
	}
	if s.OutputDir == "" {
		s.OutputDir = DefaultOutputDir
	}
	if s.CNAMEFile == "" {
		s.CNAMEFile = DefaultCNAMEFile
	}
	s.ContentRoot = gut.ExpandUserPath(s.ContentRoot)
	s.TemplatesDir = gut.ExpandUserPath(s.TemplatesDir)
	s.AssetsDir = gut.ExpandUserPath(s.AssetsDir)
	s.OutputDir = gut.ExpandUserPath(s.OutputDir)
	if s.Console == nil {
		s.Console = NewConsole(nil)
	}
	s.initialized = true
	return s
}

func (s *Site) templatePath(name string) string {
	return filepath.Join(s.TemplatesDir, name)
}

// Build runs the whole pipeline: origin fragment, entry page, the
// origin-consuming pages, the blog page, assets, the custom domain
// marker and the markdown pages.  Every step is independently fault
// tolerant except the entry page, whose template the site cannot exist
// without.
func (s *Site) Build() error {
	if !s.initialized {
		s.Init()
	}
	ctx := &BuildContext{StartedAt: time.Now()}

	if err := EnsureDir(filepath.Dir(s.OutputDir)); err != nil {
		return err
	}
	staging, err := os.MkdirTemp(filepath.Dir(s.OutputDir), ".sitegen-*")
	if err != nil {
		return fmt.Errorf("could not create staging dir: %w", err)
	}
	defer os.RemoveAll(staging)
	if err := os.Chmod(staging, 0755); err != nil {
		return err
	}
	ctx.StagingDir = staging

	ctx.OriginHTML, ctx.HasOrigin = s.BuildOriginHTML()
	if ctx.HasOrigin {
		s.Console.Okf("origin content loaded")
	} else {
		s.Console.Notef("no origin content")
	}

	entry, err := os.ReadFile(s.templatePath("entry.html"))
	if err != nil {
		s.Console.Failf("required template entry.html: %v", err)
		return fmt.Errorf("missing required template entry.html: %w", err)
	}
	if err := os.WriteFile(filepath.Join(staging, "index.html"), entry, 0644); err != nil {
		return err
	}
	s.Console.Okf("index.html")

	for _, name := range []string{"ripple.html", "clean.html"} {
		data, err := os.ReadFile(s.templatePath(name))
		if err != nil {
			s.Console.Warnf("skipping %s: %v", name, err)
			continue
		}
		out := InjectOrigin(string(data), ctx.OriginHTML)
		if err := os.WriteFile(filepath.Join(staging, name), []byte(out), 0644); err != nil {
			s.Console.Warnf("could not write %s: %v", name, err)
			continue
		}
		s.Console.Okf("%s", name)
	}

	if data, err := os.ReadFile(s.templatePath("blog.html")); err != nil {
		s.Console.Warnf("skipping blog.html: %v", err)
	} else {
		out := s.InjectData(string(data))
		if err := os.WriteFile(filepath.Join(staging, "blog.html"), []byte(out), 0644); err != nil {
			s.Console.Warnf("could not write blog.html: %v", err)
		} else {
			s.Console.Okf("blog.html")
		}
	}

	if _, err := os.Stat(s.AssetsDir); err == nil {
		if err := CopyDir(s.AssetsDir, filepath.Join(staging, "assets")); err != nil {
			s.Console.Warnf("copying assets: %v", err)
		} else {
			s.Console.Okf("assets")
		}
	} else {
		s.Console.Notef("no assets dir")
	}

	if data, err := os.ReadFile(s.CNAMEFile); err == nil {
		if err := os.WriteFile(filepath.Join(staging, filepath.Base(s.CNAMEFile)), data, 0644); err != nil {
			s.Console.Warnf("could not write %s: %v", filepath.Base(s.CNAMEFile), err)
		} else {
			s.Console.Okf("%s", filepath.Base(s.CNAMEFile))
		}
	}

	s.RenderPages(ctx)

	// Commit: swap the staged tree into place.
	if err := os.RemoveAll(s.OutputDir); err != nil {
		return fmt.Errorf("could not clear %s: %w", s.OutputDir, err)
	}
	if err := os.Rename(staging, s.OutputDir); err != nil {
		return fmt.Errorf("could not commit build to %s: %w", s.OutputDir, err)
	}

	s.Console.Okf("built %s in %s", s.OutputDir, time.Since(ctx.StartedAt).Round(time.Millisecond))
	return nil
}
