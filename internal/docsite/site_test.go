package docsite

import (
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/treeline-ui/treeline/internal/config"
	"github.com/treeline-ui/treeline/pkg/nav"
)

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

// testSite builds a small site from a temp content directory.
func testSite(t *testing.T) *Site {
	t.Helper()

	content := t.TempDir()
	files := map[string]string{
		"index.md":        "# Welcome\n\nThe Treeline docs.",
		"docs/index.md":   "# Docs\n\nStart here.",
		"docs/install.md": "# Install\n\nRun `go get`.\n\n| a | b |\n|---|---|\n| 1 | 2 |",
	}
	for name, src := range files {
		path := filepath.Join(content, filepath.FromSlash(name))
		if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
			t.Fatal(err)
		}
		if err := os.WriteFile(path, []byte(src), 0o644); err != nil {
			t.Fatal(err)
		}
	}

	cfg := config.Default()
	cfg.Site.Title = "Treeline"
	cfg.Paths.Content = content
	cfg.Paths.Static = ""
	cfg.Nav = []nav.Item{
		{Label: "Home", URL: "/", ExactMatch: true},
		{
			Label: "Docs",
			URL:   "/docs",
			Children: []nav.Item{
				{Label: "Install", URL: "/docs/install"},
			},
		},
	}

	s := New(cfg, testLogger())
	if err := s.Reload(); err != nil {
		t.Fatalf("Reload: %v", err)
	}
	return s
}

func TestSitePageLookup(t *testing.T) {
	s := testSite(t)

	tests := []struct {
		path      string
		wantTitle string
		wantOK    bool
	}{
		{path: "/", wantTitle: "Welcome", wantOK: true},
		{path: "/docs", wantTitle: "Docs", wantOK: true},
		{path: "/docs/", wantTitle: "Docs", wantOK: true},
		{path: "/docs/install", wantTitle: "Install", wantOK: true},
		{path: "/missing", wantOK: false},
	}

	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			page, ok := s.Page(tt.path)
			if ok != tt.wantOK {
				t.Fatalf("Page(%q) ok = %v, want %v", tt.path, ok, tt.wantOK)
			}
			if ok && page.Title != tt.wantTitle {
				t.Errorf("Title = %q, want %q", page.Title, tt.wantTitle)
			}
		})
	}
}

func TestSiteMarkdownRendering(t *testing.T) {
	s := testSite(t)

	page, _ := s.Page("/docs/install")
	if !strings.Contains(page.Body, "<code>go get</code>") {
		t.Errorf("inline code not rendered: %q", page.Body)
	}
	// GFM tables.
	if !strings.Contains(page.Body, "<table>") {
		t.Errorf("table not rendered: %q", page.Body)
	}
}

func TestRenderHTMLLayout(t *testing.T) {
	s := testSite(t)

	page, _ := s.Page("/docs/install")
	out, err := s.RenderHTML(page, false)
	if err != nil {
		t.Fatalf("RenderHTML: %v", err)
	}

	if !strings.HasPrefix(out, "<!doctype html>") {
		t.Errorf("missing doctype: %q", out[:40])
	}
	if !strings.Contains(out, "<title>Install - Treeline</title>") {
		t.Errorf("missing title in %q", out)
	}
	// Sidebar highlights the page's own entry.
	if !strings.Contains(out, `<a aria-current="page" href="/docs/install">Install</a>`) {
		t.Errorf("sidebar missing current link: %q", out)
	}
	if strings.Contains(out, "__reload") {
		t.Error("reload script injected without live reload")
	}
}

func TestRenderHTMLLiveReload(t *testing.T) {
	s := testSite(t)

	page, _ := s.Page("/")
	out, err := s.RenderHTML(page, true)
	if err != nil {
		t.Fatalf("RenderHTML: %v", err)
	}
	if !strings.Contains(out, "__reload") {
		t.Error("reload script missing")
	}
}

func TestExport(t *testing.T) {
	s := testSite(t)
	out := t.TempDir()

	if err := s.Export(out); err != nil {
		t.Fatalf("Export: %v", err)
	}

	for _, file := range []string{
		"index.html",
		"docs/index.html",
		"docs/install/index.html",
	} {
		path := filepath.Join(out, filepath.FromSlash(file))
		data, err := os.ReadFile(path)
		if err != nil {
			t.Fatalf("missing export %s: %v", file, err)
		}
		if !strings.Contains(string(data), "<!doctype html>") {
			t.Errorf("%s is not a full document", file)
		}
	}
}
