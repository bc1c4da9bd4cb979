package main

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/avelez/sitegen"
)

var cfgFile string

func main() {
	root := &cobra.Command{
		Use:          "sitegen",
		Short:        "Build the site from JSON content and HTML templates",
		SilenceUsage: true,
	}
	root.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default sitegen.yaml)")
	root.AddCommand(buildCmd())
	if err := root.Execute(); err != nil {
		os.Exit(1)
	}
}

func buildCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "build",
		Short: "Render templates and copy assets into the output directory",
		Long: `Build regenerates the whole output directory from scratch: the entry
page, the origin pages, the blog page with its injected JSON content,
optional markdown pages, static assets and the custom domain marker.
Outputs are staged and swapped into place only when every step has run.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := sitegen.LoadConfig(cfgFile, cmd.Flags())
			if err != nil {
				return err
			}
			return cfg.Site().Build()
		},
	}
	flags := cmd.Flags()
	flags.String("content-root", sitegen.DefaultContentRoot, "directory holding the JSON content")
	flags.String("templates-dir", sitegen.DefaultTemplatesDir, "directory holding the HTML templates")
	flags.String("assets-dir", sitegen.DefaultAssetsDir, "static assets directory mirrored into the output")
	flags.String("output-dir", sitegen.DefaultOutputDir, "directory the site is generated into")
	flags.String("cname-file", sitegen.DefaultCNAMEFile, "custom domain marker file copied into the output")
	return cmd
}
