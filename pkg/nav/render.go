package nav

import "github.com/treeline-ui/treeline/pkg/html"

// RenderOptions configures navigation markup generation.
type RenderOptions struct {
	// Label is the aria-label of the nav element (default: "Main").
	Label string

	// RootClass is the class of the nav element (default: "treeline-nav").
	RootClass string

	// Expanded adds the "expanded" class to the nav element, for the
	// collapsible mobile state.
	Expanded bool
}

// Render resolves a navigation tree against a location and generates
// its markup.
//
// Structure: nav > ul > li per entry, with a nested ul for children.
// Entries with a URL render as links, entries without one as spans.
// Active entries carry the "active" class, the best match per sibling
// group carries "matches" and aria-current="page".
func Render(items []Item, location string, opts RenderOptions) *html.Node {
	if opts.Label == "" {
		opts.Label = "Main"
	}
	if opts.RootClass == "" {
		opts.RootClass = "treeline-nav"
	}

	expanded := ""
	if opts.Expanded {
		expanded = "expanded"
	}

	return html.Nav(
		html.ClassIf(opts.RootClass, expanded),
		html.AriaLabel(opts.Label),
		renderLevel(Resolve(items, location)),
	)
}

// renderLevel renders one sibling group as a list.
func renderLevel(states []State) *html.Node {
	if len(states) == 0 {
		return nil
	}

	entries := make([]*html.Node, len(states))
	for i, st := range states {
		entries[i] = renderEntry(st)
	}
	return html.Ul(entries)
}

// renderEntry renders a single entry and its children.
func renderEntry(st State) *html.Node {
	active := ""
	if st.Active {
		active = "active"
	}
	matches := ""
	if st.Matches {
		matches = "matches"
	}

	// aria-current belongs on the end of the active chain: a matching
	// entry whose children are all inactive.
	current := st.Matches
	for _, child := range st.Children {
		if child.Active {
			current = false
			break
		}
	}

	var label *html.Node
	switch {
	case st.Item.URL == "":
		label = html.Span(html.Class("nav-heading"), html.Text(st.Item.Label))
	case current:
		label = html.A(
			html.Href(st.Item.URL),
			html.AriaCurrent("page"),
			html.Text(st.Item.Label),
		)
	default:
		label = html.A(html.Href(st.Item.URL), html.Text(st.Item.Label))
	}

	return html.Li(
		html.ClassIf("nav-item", active, matches),
		label,
		renderLevel(st.Children),
	)
}
