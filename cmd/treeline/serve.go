package main

import (
	"context"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/treeline-ui/treeline/internal/config"
	"github.com/treeline-ui/treeline/internal/docsite"
	"github.com/treeline-ui/treeline/internal/livereload"
)

func serveCmd() *cobra.Command {
	var (
		configPath string
		host       string
		port       int
		watch      bool
	)

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Run the documentation site locally",
		Long: `Run the documentation site locally.

With --watch, the content directory is observed and connected
browsers reload automatically when a page changes.

Examples:
  treeline serve
  treeline serve --watch
  treeline serve --port=9000 --host=0.0.0.0`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runServe(configPath, host, port, watch)
		},
	}

	cmd.Flags().StringVarP(&configPath, "config", "c", config.ConfigFileName, "Path to treeline.toml")
	cmd.Flags().StringVarP(&host, "host", "H", "", "Host to bind to (default from config)")
	cmd.Flags().IntVarP(&port, "port", "p", 0, "Port to run on (default from config)")
	cmd.Flags().BoolVarP(&watch, "watch", "w", false, "Reload browsers on content changes")

	return cmd
}

func runServe(configPath, host string, port int, watch bool) error {
	logger := slog.New(slog.NewTextHandler(os.Stderr, nil))

	cfg, err := config.Load(configPath)
	if err != nil {
		return err
	}
	if host != "" {
		cfg.Server.Host = host
	}
	if port != 0 {
		cfg.Server.Port = port
	}

	site := docsite.New(cfg, logger)
	if err := site.Reload(); err != nil {
		return err
	}

	server := docsite.NewServer(site, docsite.ServerOptions{
		LiveReload: watch,
		Logger:     logger,
	})

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if watch {
		watcher, err := livereload.NewWatcher([]string{cfg.Paths.Content}, 0, logger)
		if err != nil {
			return err
		}
		defer watcher.Close()

		go watcher.Run(ctx, func(path string) {
			logger.Info("content changed", "path", path)
			if err := site.Reload(); err != nil {
				logger.Error("reload failed", "error", err)
				return
			}
			server.Reload().Broadcast(livereload.Message{
				Type: livereload.TypeReload,
				File: path,
			})
		})
	}

	return server.Start(ctx)
}
