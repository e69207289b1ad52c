package vdom

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

// El creates an element with the given tag.
// Arguments can be: nil, Attr, []Attr, EventHandler, []EventHandler,
// *Node, []*Node, reactive.Node, or a primitive.
func El(tag string, args ...any) *Node {
	return createElement(tag, args)
}

func createElement(tag string, args []any) *Node {
	node := &Node{Kind: KindElement, Tag: tag}

	for _, arg := range args {
		switch v := arg.(type) {
		case nil:
			// Ignore nil (allows conditional arguments)
			continue

		case Attr:
			if !v.IsEmpty() {
				node.Attrs = append(node.Attrs, v)
			}

		case []Attr:
			for _, a := range v {
				if !a.IsEmpty() {
					node.Attrs = append(node.Attrs, a)
				}
			}

		case EventHandler:
			if v.Handler != nil {
				node.Events = append(node.Events, v)
			}

		case []EventHandler:
			for _, h := range v {
				if h.Handler != nil {
					node.Events = append(node.Events, h)
				}
			}

		default:
			if !voidElements[tag] {
				node.Children = appendChild(node.Children, arg)
			}
		}
	}

	return node
}

// Document sections

func Article(args ...any) *Node { return createElement("article", args) }
func Aside(args ...any) *Node   { return createElement("aside", args) }
func Footer(args ...any) *Node  { return createElement("footer", args) }
func Header(args ...any) *Node  { return createElement("header", args) }
func Main(args ...any) *Node    { return createElement("main", args) }
func Nav(args ...any) *Node     { return createElement("nav", args) }
func Section(args ...any) *Node { return createElement("section", args) }

// Headings

func H1(args ...any) *Node { return createElement("h1", args) }
func H2(args ...any) *Node { return createElement("h2", args) }
func H3(args ...any) *Node { return createElement("h3", args) }
func H4(args ...any) *Node { return createElement("h4", args) }
func H5(args ...any) *Node { return createElement("h5", args) }
func H6(args ...any) *Node { return createElement("h6", args) }

// Content grouping

func Div(args ...any) *Node  { return createElement("div", args) }
func P(args ...any) *Node    { return createElement("p", args) }
func Pre(args ...any) *Node  { return createElement("pre", args) }
func Ul(args ...any) *Node   { return createElement("ul", args) }
func Ol(args ...any) *Node   { return createElement("ol", args) }
func Li(args ...any) *Node   { return createElement("li", args) }
func Hr(args ...any) *Node   { return createElement("hr", args) }
func Span(args ...any) *Node { return createElement("span", args) }

// Inline text

func A(args ...any) *Node      { return createElement("a", args) }
func B(args ...any) *Node      { return createElement("b", args) }
func Br(args ...any) *Node     { return createElement("br", args) }
func Code(args ...any) *Node   { return createElement("code", args) }
func Em(args ...any) *Node     { return createElement("em", args) }
func I(args ...any) *Node      { return createElement("i", args) }
func Small(args ...any) *Node  { return createElement("small", args) }
func Strong(args ...any) *Node { return createElement("strong", args) }

// Forms

func Button(args ...any) *Node   { return createElement("button", args) }
func Fieldset(args ...any) *Node { return createElement("fieldset", args) }
func Form(args ...any) *Node     { return createElement("form", args) }
func Input(args ...any) *Node    { return createElement("input", args) }
func Label(args ...any) *Node    { return createElement("label", args) }
func Option(args ...any) *Node   { return createElement("option", args) }
func Select(args ...any) *Node   { return createElement("select", args) }
func Textarea(args ...any) *Node { return createElement("textarea", args) }

// Tables

func Table(args ...any) *Node { return createElement("table", args) }
func Tbody(args ...any) *Node { return createElement("tbody", args) }
func Td(args ...any) *Node    { return createElement("td", args) }
func Th(args ...any) *Node    { return createElement("th", args) }
func Thead(args ...any) *Node { return createElement("thead", args) }
func Tr(args ...any) *Node    { return createElement("tr", args) }

// Media

func Img(args ...any) *Node { return createElement("img", args) }
