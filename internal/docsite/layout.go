package docsite

import (
	"github.com/treeline-ui/treeline/internal/livereload"
	"github.com/treeline-ui/treeline/pkg/html"
	"github.com/treeline-ui/treeline/pkg/nav"
)

// layoutOptions controls per-render layout variations.
type layoutOptions struct {
	// liveReload injects the reload client script.
	liveReload bool
}

// renderPage produces the full HTML document for a page. The sidebar
// navigation is resolved against the page's own path, so the entry
// leading to it is highlighted.
func (s *Site) renderPage(page *Page, opts layoutOptions) *html.Node {
	title := page.Title
	if s.cfg.Site.Title != "" {
		title = page.Title + " - " + s.cfg.Site.Title
	}

	var reload *html.Node
	if opts.liveReload {
		reload = html.Script(html.Raw(livereload.Script))
	}

	var description *html.Node
	if s.cfg.Site.Description != "" {
		description = html.MetaEl(html.Name("description"), html.Content(s.cfg.Site.Description))
	}

	return html.Html(html.Lang("en"),
		html.Head(
			html.MetaEl(html.Charset("utf-8")),
			html.MetaEl(html.Name("viewport"), html.Content("width=device-width, initial-scale=1")),
			description,
			html.TitleEl(html.Text(title)),
			html.LinkEl(html.Rel("stylesheet"), html.Href("/static/site.css")),
		),
		html.Body(
			html.Header(html.Class("site-header"),
				html.A(html.Href("/"), html.Class("site-title"), html.Text(s.cfg.Site.Title)),
			),
			html.Div(html.Class("layout"),
				html.Aside(html.Class("sidebar"),
					nav.Render(s.cfg.Nav, page.Path, nav.RenderOptions{Label: "Documentation"}),
				),
				html.Main(html.Class("content"),
					html.Article(html.Raw(page.Body)),
				),
			),
			reload,
		),
	)
}

// RenderHTML renders a page to its final HTML document string.
func (s *Site) RenderHTML(page *Page, liveReload bool) (string, error) {
	doc := s.renderPage(page, layoutOptions{liveReload: liveReload})
	out, err := html.NewRenderer(html.Config{}).RenderToString(doc)
	if err != nil {
		return "", err
	}
	return "<!doctype html>" + out, nil
}
