package html

// voidElements are elements that cannot have children.
var voidElements = map[string]bool{
	"area":   true,
	"base":   true,
	"br":     true,
	"col":    true,
	"embed":  true,
	"hr":     true,
	"img":    true,
	"input":  true,
	"link":   true,
	"meta":   true,
	"param":  true,
	"source": true,
	"track":  true,
	"wbr":    true,
}

// IsVoidElement returns true if the tag is a void element.
func IsVoidElement(tag string) bool {
	return voidElements[tag]
}

// newElement creates a Node with the given tag and arguments.
// Arguments can be: nil, Attr, []Attr, *Node, []*Node, string.
func newElement(tag string, args []any) *Node {
	node := &Node{
		Kind:     KindElement,
		Tag:      tag,
		Props:    make(Props),
		Children: make([]*Node, 0),
	}

	for _, arg := range args {
		switch v := arg.(type) {
		case nil:
			// Ignore nil (allows conditional attributes)
			continue

		case Attr:
			if v.Key != "" {
				node.Props[v.Key] = v.Value
			}

		case []Attr:
			for _, a := range v {
				if a.Key != "" {
					node.Props[a.Key] = a.Value
				}
			}

		case *Node:
			if v != nil {
				node.Children = append(node.Children, v)
			}

		case []*Node:
			for _, c := range v {
				if c != nil {
					node.Children = append(node.Children, c)
				}
			}

		case string:
			node.Children = append(node.Children, Text(v))
		}
	}

	return node
}

// Document structure

func Html(args ...any) *Node { return newElement("html", args) }
func Head(args ...any) *Node { return newElement("head", args) }
func Body(args ...any) *Node { return newElement("body", args) }

// TitleEl creates a <title> element (named to avoid conflict with the
// Title attribute helper).
func TitleEl(args ...any) *Node { return newElement("title", args) }

func MetaEl(args ...any) *Node  { return newElement("meta", args) }
func LinkEl(args ...any) *Node  { return newElement("link", args) }
func Script(args ...any) *Node  { return newElement("script", args) }
func StyleEl(args ...any) *Node { return newElement("style", args) }

// Sectioning

func Header(args ...any) *Node  { return newElement("header", args) }
func Footer(args ...any) *Node  { return newElement("footer", args) }
func Main(args ...any) *Node    { return newElement("main", args) }
func Aside(args ...any) *Node   { return newElement("aside", args) }
func Nav(args ...any) *Node     { return newElement("nav", args) }
func Section(args ...any) *Node { return newElement("section", args) }
func Article(args ...any) *Node { return newElement("article", args) }

// Content

func Div(args ...any) *Node  { return newElement("div", args) }
func Span(args ...any) *Node { return newElement("span", args) }
func P(args ...any) *Node    { return newElement("p", args) }
func H1(args ...any) *Node   { return newElement("h1", args) }
func H2(args ...any) *Node   { return newElement("h2", args) }
func H3(args ...any) *Node   { return newElement("h3", args) }
func H4(args ...any) *Node   { return newElement("h4", args) }
func Pre(args ...any) *Node  { return newElement("pre", args) }
func Code(args ...any) *Node { return newElement("code", args) }
func Hr(args ...any) *Node   { return newElement("hr", args) }
func Br(args ...any) *Node   { return newElement("br", args) }

// Lists and links

func Ul(args ...any) *Node     { return newElement("ul", args) }
func Ol(args ...any) *Node     { return newElement("ol", args) }
func Li(args ...any) *Node     { return newElement("li", args) }
func A(args ...any) *Node      { return newElement("a", args) }
func Button(args ...any) *Node { return newElement("button", args) }
func Img(args ...any) *Node    { return newElement("img", args) }
