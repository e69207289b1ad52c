// Package memhost is an in-memory host tree. Tests, benchmarks and the
// CLI mount onto it.
package memhost

import (
	"slices"
	"strings"

	"github.com/vango-dev/reflow/internal/errors"
	"github.com/vango-dev/reflow/pkg/host"
)

// Node is an element or text node.
type Node struct {
	id       uint64
	tag      string
	text     string
	attrs    map[string]string
	props    map[string]any
	parent   *Node
	children []*Node
	handlers map[string][]*handler
}

type handler struct {
	fn   func(host.Event)
	live bool
}

func (n *Node) ID() uint64 { return n.id }

// Tag returns the element tag, or "" for a text node.
func (n *Node) Tag() string { return n.tag }

// IsText reports whether n is a text node.
func (n *Node) IsText() bool { return n.tag == "" }

// Parent returns the parent node, or nil when detached.
func (n *Node) Parent() *Node { return n.parent }

// Children returns the child nodes. The slice must not be modified.
func (n *Node) Children() []*Node { return n.children }

// Attr returns an attribute value.
func (n *Node) Attr(name string) (string, bool) {
	v, ok := n.attrs[name]
	return v, ok
}

// TextContent returns the concatenated text of n and its descendants.
func (n *Node) TextContent() string {
	if n.IsText() {
		return n.text
	}
	var b strings.Builder
	n.writeText(&b)
	return b.String()
}

func (n *Node) writeText(b *strings.Builder) {
	if n.IsText() {
		b.WriteString(n.text)
		return
	}
	for _, c := range n.children {
		c.writeText(b)
	}
}

// Stats counts tree mutations.
type Stats struct {
	Creates int
	Inserts int
	Moves   int
	Removes int
}

// Tree implements host.Host in memory.
type Tree struct {
	nextID uint64
	stats  Stats
}

var _ host.Host = (*Tree)(nil)

// New returns an empty tree.
func New() *Tree {
	return &Tree{}
}

// Stats returns the mutation counters.
func (t *Tree) Stats() Stats {
	return t.stats
}

// ResetStats zeroes the mutation counters.
func (t *Tree) ResetStats() {
	t.stats = Stats{}
}

func (t *Tree) newNode(tag, text string) *Node {
	t.nextID++
	t.stats.Creates++
	return &Node{id: t.nextID, tag: tag, text: text}
}

func (t *Tree) CreateElement(tag string) host.Node {
	return t.newNode(tag, "")
}

func (t *Tree) CreateTextNode(text string) host.Node {
	return t.newNode("", text)
}

func (t *Tree) SetText(n host.Node, text string) {
	node(n).text = text
}

func (t *Tree) InsertAt(parent host.Node, index int, child host.Node) {
	p, c := node(parent), node(child)
	if index < 0 {
		panic(errors.New("R001").WithField("index", index).WithField("length", len(p.children)))
	}
	var ref *Node
	if index < len(p.children) {
		ref = p.children[index]
	}
	if ref == c {
		return
	}
	moved := c.parent != nil
	if moved {
		t.detach(c)
	}
	if ref == nil {
		p.children = append(p.children, c)
	} else {
		i := slices.Index(p.children, ref)
		p.children = slices.Insert(p.children, i, c)
	}
	c.parent = p
	if moved {
		t.stats.Moves++
	} else {
		t.stats.Inserts++
	}
}

func (t *Tree) AppendChild(parent, child host.Node) {
	t.InsertAt(parent, len(node(parent).children), child)
}

func (t *Tree) ChildCount(parent host.Node) int {
	return len(node(parent).children)
}

func (t *Tree) ChildAt(parent host.Node, i int) host.Node {
	p := node(parent)
	if i < 0 || i >= len(p.children) {
		return nil
	}
	return p.children[i]
}

func (t *Tree) SetAttribute(n host.Node, name, value string) {
	nd := node(n)
	if nd.attrs == nil {
		nd.attrs = make(map[string]string)
	}
	nd.attrs[name] = value
}

func (t *Tree) RemoveAttribute(n host.Node, name string) {
	delete(node(n).attrs, name)
}

func (t *Tree) SetProperty(n host.Node, name string, value any) {
	nd := node(n)
	if nd.props == nil {
		nd.props = make(map[string]any)
	}
	nd.props[name] = value
}

func (t *Tree) GetProperty(n host.Node, name string) any {
	return node(n).props[name]
}

func (t *Tree) AddEventListener(n host.Node, event string, fn func(host.Event)) func() {
	nd := node(n)
	if nd.handlers == nil {
		nd.handlers = make(map[string][]*handler)
	}
	h := &handler{fn: fn, live: true}
	nd.handlers[event] = append(nd.handlers[event], h)
	return func() {
		if !h.live {
			return
		}
		h.live = false
		nd.handlers[event] = slices.DeleteFunc(nd.handlers[event], func(x *handler) bool { return x == h })
		if len(nd.handlers[event]) == 0 {
			delete(nd.handlers, event)
		}
	}
}

// ListenerCount returns the number of event listeners on n.
func (t *Tree) ListenerCount(n host.Node) int {
	total := 0
	for _, hs := range node(n).handlers {
		total += len(hs)
	}
	return total
}

// Dispatch delivers an event of type typ to target and then to each of
// its ancestors.
func (t *Tree) Dispatch(target host.Node, typ string, data map[string]any) {
	e := host.Event{Type: typ, Target: target, Source: t, Data: data}
	for cur := node(target); cur != nil; cur = cur.parent {
		for _, h := range slices.Clone(cur.handlers[typ]) {
			if h.live {
				h.fn(e)
			}
		}
	}
}

func (t *Tree) Remove(n host.Node) {
	nd := node(n)
	if nd.parent == nil {
		return
	}
	t.detach(nd)
	t.stats.Removes++
}

func (t *Tree) detach(c *Node) {
	p := c.parent
	i := slices.Index(p.children, c)
	if i < 0 {
		panic(errors.New("R002").WithField("child", c.id).WithField("parent", p.id))
	}
	p.children = slices.Delete(p.children, i, i+1)
	c.parent = nil
}

func node(n host.Node) *Node {
	return n.(*Node)
}
