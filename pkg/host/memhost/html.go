package memhost

import (
	"sort"
	"strings"

	"github.com/cespare/xxhash/v2"

	"github.com/vango-dev/reflow/pkg/host"
)

// voidElements are elements that cannot have children and have no closing tag.
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

// HTML serializes n and its descendants. Attributes are sorted by name
// so the output is deterministic. Properties are not serialized.
func (t *Tree) HTML(n host.Node) string {
	var b strings.Builder
	writeHTML(&b, node(n))
	return b.String()
}

// InnerHTML serializes the children of n.
func (t *Tree) InnerHTML(n host.Node) string {
	var b strings.Builder
	for _, c := range node(n).children {
		writeHTML(&b, c)
	}
	return b.String()
}

// Fingerprint hashes the serialized form of n.
func (t *Tree) Fingerprint(n host.Node) uint64 {
	return xxhash.Sum64String(t.HTML(n))
}

func writeHTML(b *strings.Builder, n *Node) {
	if n.IsText() {
		b.WriteString(escapeHTML(n.text))
		return
	}
	b.WriteByte('<')
	b.WriteString(n.tag)

	names := make([]string, 0, len(n.attrs))
	for name := range n.attrs {
		names = append(names, name)
	}
	sort.Strings(names)
	for _, name := range names {
		b.WriteByte(' ')
		b.WriteString(name)
		if v := n.attrs[name]; v != "" {
			b.WriteString(`="`)
			b.WriteString(escapeAttr(v))
			b.WriteByte('"')
		}
	}
	b.WriteByte('>')

	if voidElements[n.tag] {
		return
	}
	for _, c := range n.children {
		writeHTML(b, c)
	}
	b.WriteString("</")
	b.WriteString(n.tag)
	b.WriteByte('>')
}

// escapeHTML escapes text for inclusion in HTML content.
func escapeHTML(s string) string {
	var buf strings.Builder
	buf.Grow(len(s))

	for _, r := range s {
		switch r {
		case '&':
			buf.WriteString("&amp;")
		case '<':
			buf.WriteString("&lt;")
		case '>':
			buf.WriteString("&gt;")
		case '"':
			buf.WriteString("&quot;")
		case '\'':
			buf.WriteString("&#39;")
		default:
			buf.WriteRune(r)
		}
	}

	return buf.String()
}

// escapeAttr escapes text for inclusion in a quoted attribute value.
// Whitespace that could break attribute parsing is escaped as well.
func escapeAttr(s string) string {
	var buf strings.Builder
	buf.Grow(len(s))

	for _, r := range s {
		switch r {
		case '&':
			buf.WriteString("&amp;")
		case '<':
			buf.WriteString("&lt;")
		case '>':
			buf.WriteString("&gt;")
		case '"':
			buf.WriteString("&quot;")
		case '\'':
			buf.WriteString("&#39;")
		case '\n':
			buf.WriteString("&#10;")
		case '\r':
			buf.WriteString("&#13;")
		case '\t':
			buf.WriteString("&#9;")
		default:
			buf.WriteRune(r)
		}
	}

	return buf.String()
}
