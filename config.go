package sitegen

import (
	"fmt"
	"os"
	"strings"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/confmap"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/providers/posflag"
	"github.com/knadh/koanf/v2"
	"github.com/spf13/pflag"
)

// Conventional project layout.
const (
	DefaultContentRoot  = "content"
	DefaultTemplatesDir = "templates"
	DefaultAssetsDir    = "assets"
	DefaultOutputDir    = "dist"
	DefaultCNAMEFile    = "CNAME"
)

// Config is the tool-level configuration (the directory layout),
// distinct from the site's own content/site.json.  Sources, lowest to
// highest precedence: built-in defaults, sitegen.yaml, SITEGEN_*
// environment variables, command line flags.
type Config struct {
	ContentRoot  string `koanf:"content_root"`
	TemplatesDir string `koanf:"templates_dir"`
	AssetsDir    string `koanf:"assets_dir"`
	OutputDir    string `koanf:"output_dir"`
	CNAMEFile    string `koanf:"cname_file"`
}

// FindConfigFile returns the config file to use: the explicit path if
// given, otherwise sitegen.yaml / sitegen.yml when one exists.
func FindConfigFile(explicit string) string {
	if explicit != "" {
		return explicit
	}
	for _, name := range []string{"sitegen.yaml", "sitegen.yml"} {
		if _, err := os.Stat(name); err == nil {
			return name
		}
	}
	return ""
}

// LoadConfig merges the configuration sources.  flags may be nil.
func LoadConfig(cfgFile string, flags *pflag.FlagSet) (*Config, error) {
	k := koanf.New(".")

	if err := k.Load(confmap.Provider(map[string]interface{}{
		"content_root":  DefaultContentRoot,
		"templates_dir": DefaultTemplatesDir,
		"assets_dir":    DefaultAssetsDir,
		"output_dir":    DefaultOutputDir,
		"cname_file":    DefaultCNAMEFile,
	}, "."), nil); err != nil {
		return nil, fmt.Errorf("failed to load defaults: %w", err)
	}

	if path := FindConfigFile(cfgFile); path != "" {
		if err := k.Load(file.Provider(path), yaml.Parser()); err != nil {
			return nil, fmt.Errorf("error reading config file %s: %w", path, err)
		}
	}

	// SITEGEN_OUTPUT_DIR -> output_dir
	if err := k.Load(env.Provider("SITEGEN_", ".", func(s string) string {
		return strings.ToLower(strings.TrimPrefix(s, "SITEGEN_"))
	}), nil); err != nil {
		return nil, fmt.Errorf("failed to load env vars: %w", err)
	}

	if flags != nil {
		if err := k.Load(posflag.ProviderWithFlag(flags, ".", k, func(f *pflag.Flag) (string, interface{}) {
			// Only flags that were explicitly set override the file
			// and env values.
			if !f.Changed {
				return "", nil
			}
			return strings.ReplaceAll(f.Name, "-", "_"), posflag.FlagVal(flags, f)
		}), nil); err != nil {
			return nil, fmt.Errorf("failed to load flags: %w", err)
		}
	}

	var cfg Config
	if err := k.Unmarshal("", &cfg); err != nil {
		return nil, fmt.Errorf("unable to decode config: %w", err)
	}
	return &cfg, nil
}

// Site constructs an initialized Site from the resolved configuration.
func (c *Config) Site() *Site {
	return (&Site{
		ContentRoot:  c.ContentRoot,
		TemplatesDir: c.TemplatesDir,
		AssetsDir:    c.AssetsDir,
		OutputDir:    c.OutputDir,
		CNAMEFile:    c.CNAMEFile,
	}).Init()
}
