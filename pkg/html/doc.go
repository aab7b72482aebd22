// Package html builds and renders static HTML node trees.
//
// Elements are created with variadic factory functions:
//
//	Div(Class("sidebar"),
//	    Nav(AriaLabel("Main"),
//	        Ul(Li(A(Href("/docs"), Text("Docs"))))),
//	)
//
// Arguments can be nil (skipped, allowing conditional attributes),
// Attr, []Attr, *Node, []*Node, or string. Rendering escapes text and
// attribute values; Raw bypasses escaping and must only be fed trusted
// markup.
package html
