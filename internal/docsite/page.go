package docsite

import (
	"bytes"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"
)

// Page is one rendered documentation page.
type Page struct {
	// Path is the URL path of the page (e.g. "/docs/install").
	Path string

	// Title is the first level-1 heading, or a name derived from the
	// file name when the document has none.
	Title string

	// Body is the rendered HTML of the Markdown source.
	Body string

	// Source is the Markdown file the page came from.
	Source string
}

// markdown is the shared converter. GFM covers tables, strikethrough,
// autolinks, and task lists.
var markdown = goldmark.New(
	goldmark.WithExtensions(extension.GFM),
)

// loadPages scans root for Markdown files and renders them.
func loadPages(root string) (map[string]*Page, error) {
	pages := make(map[string]*Page)

	err := filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() || !strings.HasSuffix(d.Name(), ".md") {
			return nil
		}

		rel, err := filepath.Rel(root, path)
		if err != nil {
			return err
		}

		page, err := loadPage(path, rel)
		if err != nil {
			return fmt.Errorf("load %s: %w", rel, err)
		}
		pages[page.Path] = page
		return nil
	})
	if err != nil {
		return nil, err
	}
	return pages, nil
}

// loadPage renders a single Markdown file.
func loadPage(path, rel string) (*Page, error) {
	src, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	var buf bytes.Buffer
	if err := markdown.Convert(src, &buf); err != nil {
		return nil, err
	}

	urlPath := pathFor(rel)
	return &Page{
		Path:   urlPath,
		Title:  titleOf(src, urlPath),
		Body:   buf.String(),
		Source: path,
	}, nil
}

// pathFor maps a content-relative file name to its URL path.
// "index.md" becomes "/", "docs/index.md" becomes "/docs", and
// "docs/install.md" becomes "/docs/install".
func pathFor(rel string) string {
	p := filepath.ToSlash(strings.TrimSuffix(rel, ".md"))
	p = strings.TrimSuffix(p, "index")
	p = "/" + strings.Trim(p, "/")
	return p
}

// titleOf extracts the first level-1 ATX heading from the source.
func titleOf(src []byte, urlPath string) string {
	for _, line := range strings.Split(string(src), "\n") {
		line = strings.TrimSpace(line)
		if strings.HasPrefix(line, "# ") {
			return strings.TrimSpace(strings.TrimPrefix(line, "# "))
		}
	}

	// Fall back to the last path segment.
	if urlPath == "/" {
		return "Home"
	}
	seg := urlPath[strings.LastIndex(urlPath, "/")+1:]
	seg = strings.ReplaceAll(seg, "-", " ")
	return strings.ToUpper(seg[:1]) + seg[1:]
}

// sortedPaths returns page paths in deterministic order.
func sortedPaths(pages map[string]*Page) []string {
	paths := make([]string, 0, len(pages))
	for p := range pages {
		paths = append(paths, p)
	}
	sort.Strings(paths)
	return paths
}
