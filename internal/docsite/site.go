package docsite

import (
	"fmt"
	"log/slog"
	"strings"
	"sync"

	"github.com/treeline-ui/treeline/internal/config"
)

// Site holds the rendered page set. Reload swaps the whole set
// atomically, so the server can keep answering requests while content
// is re-read.
type Site struct {
	cfg    *config.Config
	logger *slog.Logger

	mu    sync.RWMutex
	pages map[string]*Page
}

// New creates a Site for the given configuration. Call Reload to read
// the content directory before serving.
func New(cfg *config.Config, logger *slog.Logger) *Site {
	if logger == nil {
		logger = slog.Default()
	}
	return &Site{
		cfg:    cfg,
		logger: logger,
		pages:  make(map[string]*Page),
	}
}

// Config returns the site configuration.
func (s *Site) Config() *config.Config {
	return s.cfg
}

// Reload re-reads the content directory.
func (s *Site) Reload() error {
	pages, err := loadPages(s.cfg.Paths.Content)
	if err != nil {
		return fmt.Errorf("load content: %w", err)
	}

	s.mu.Lock()
	s.pages = pages
	s.mu.Unlock()

	s.logger.Info("content loaded", "pages", len(pages), "dir", s.cfg.Paths.Content)
	return nil
}

// Page looks up a page by URL path. Trailing slashes are ignored, so
// "/docs/" finds "/docs".
func (s *Site) Page(path string) (*Page, bool) {
	if path != "/" {
		path = strings.TrimSuffix(path, "/")
	}
	if path == "" {
		path = "/"
	}

	s.mu.RLock()
	defer s.mu.RUnlock()
	p, ok := s.pages[path]
	return p, ok
}

// Paths returns all page paths in sorted order.
func (s *Site) Paths() []string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return sortedPaths(s.pages)
}
