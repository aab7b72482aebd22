// Package docsite renders and serves the documentation website.
//
// Markdown files under the content directory become pages keyed by
// URL path. The same page set backs the development server (Serve)
// and the static export (Export); both render pages through the
// shared layout, with the navigation sidebar resolved against the
// page's own path.
package docsite
