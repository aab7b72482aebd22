package main

import (
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/treeline-ui/treeline/internal/config"
	"github.com/treeline-ui/treeline/internal/docsite"
)

func buildCmd() *cobra.Command {
	var (
		configPath string
		outDir     string
	)

	cmd := &cobra.Command{
		Use:   "build",
		Short: "Export the documentation site as static files",
		Long: `Export the documentation site as static files.

Every page is written as <path>/index.html under the output
directory, ready for any static host.

Examples:
  treeline build
  treeline build --out=public`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runBuild(configPath, outDir)
		},
	}

	cmd.Flags().StringVarP(&configPath, "config", "c", config.ConfigFileName, "Path to treeline.toml")
	cmd.Flags().StringVarP(&outDir, "out", "o", "", "Output directory (default from config)")

	return cmd
}

func runBuild(configPath, outDir string) error {
	logger := slog.New(slog.NewTextHandler(os.Stderr, nil))

	cfg, err := config.Load(configPath)
	if err != nil {
		return err
	}
	if outDir == "" {
		outDir = cfg.Paths.Output
	}

	site := docsite.New(cfg, logger)
	if err := site.Reload(); err != nil {
		return err
	}
	return site.Export(outDir)
}
