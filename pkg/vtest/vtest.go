package vtest

import (
	"strings"
	"testing"

	"github.com/vango-dev/reflow/pkg/host"
	"github.com/vango-dev/reflow/pkg/host/memhost"
	"github.com/vango-dev/reflow/pkg/reactive"
	"github.com/vango-dev/reflow/pkg/render"
	"github.com/vango-dev/reflow/pkg/vdom"
)

// Harness is a tree mounted onto a memhost.Tree under a <body> root.
type Harness struct {
	Tree    *memhost.Tree
	Root    host.Node
	Mounted *render.Mounted
}

// Mount renders node into a fresh tree and unmounts it when the test
// ends. The root scope watches watch.
//
// Example:
//
//	h := vtest.Mount(t, vdom.Comp(TodoList, todos), todos)
func Mount(tb testing.TB, node *vdom.Node, watch ...reactive.Node) *Harness {
	tb.Helper()
	h := mount(node, watch)
	tb.Cleanup(h.Mounted.Unmount)
	return h
}

func mount(node *vdom.Node, watch []reactive.Node, opts ...render.Option) *Harness {
	tree := memhost.New()
	root := tree.CreateElement("body")
	m := render.New(tree, opts...).Mount(node, root, watch...)
	return &Harness{Tree: tree, Root: root, Mounted: m}
}

// HTML serializes the mounted content.
func (h *Harness) HTML() string {
	return h.Tree.InnerHTML(h.Root)
}

// Text returns the concatenated text of the mounted content.
func (h *Harness) Text() string {
	return h.Root.(*memhost.Node).TextContent()
}

// Find returns the first element with tag in document order, or nil.
func (h *Harness) Find(tag string) *memhost.Node {
	if all := h.find(tag, true); len(all) > 0 {
		return all[0]
	}
	return nil
}

// FindAll returns every element with tag in document order.
func (h *Harness) FindAll(tag string) []*memhost.Node {
	return h.find(tag, false)
}

func (h *Harness) find(tag string, first bool) []*memhost.Node {
	var out []*memhost.Node
	var walk func(n *memhost.Node) bool
	walk = func(n *memhost.Node) bool {
		for _, c := range n.Children() {
			if c.Tag() == tag {
				out = append(out, c)
				if first {
					return true
				}
			}
			if walk(c) {
				return true
			}
		}
		return false
	}
	walk(h.Root.(*memhost.Node))
	return out
}

// Click dispatches a click event on n.
func (h *Harness) Click(n host.Node) {
	h.Tree.Dispatch(n, "click", nil)
}

// Input sets the value property of n and dispatches an input event.
func (h *Harness) Input(n host.Node, value any) {
	h.Tree.SetProperty(n, "value", value)
	h.Tree.Dispatch(n, "input", nil)
}

// RenderToString mounts node, serializes it and unmounts it again.
//
// Example:
//
//	html := vtest.RenderToString(MyComponent())
//	if !strings.Contains(html, "expected text") {
//	    t.Error("missing expected text")
//	}
func RenderToString(node *vdom.Node) string {
	h := mount(node, nil)
	defer h.Mounted.Unmount()
	return h.HTML()
}

// ExpectContains asserts that rendered output contains expected substring.
//
// Example:
//
//	vtest.ExpectContains(t, h.HTML(), "Welcome Admin")
func ExpectContains(t testing.TB, html, expected string) {
	t.Helper()
	if !strings.Contains(html, expected) {
		t.Errorf("expected rendered output to contain %q, got:\n%s", expected, truncate(html, 500))
	}
}

// ExpectNotContains asserts that rendered output does not contain substring.
//
// Example:
//
//	vtest.ExpectNotContains(t, h.HTML(), "Error")
func ExpectNotContains(t testing.TB, html, unexpected string) {
	t.Helper()
	if strings.Contains(html, unexpected) {
		t.Errorf("expected rendered output to NOT contain %q, got:\n%s", unexpected, truncate(html, 500))
	}
}

// ExpectElement asserts that rendered output contains a specific tag.
//
// Example:
//
//	vtest.ExpectElement(t, h.HTML(), "button")
func ExpectElement(t testing.TB, html, tag string) {
	t.Helper()
	if !strings.Contains(html, "<"+tag) {
		t.Errorf("expected rendered output to contain <%s> element, got:\n%s", tag, truncate(html, 500))
	}
}

// ExpectAttribute asserts that rendered output contains an attribute value.
//
// Example:
//
//	vtest.ExpectAttribute(t, h.HTML(), "class", "btn-primary")
func ExpectAttribute(t testing.TB, html, attr, value string) {
	t.Helper()
	needle := attr + `="` + value + `"`
	if !strings.Contains(html, needle) {
		t.Errorf("expected attribute %s=%q not found, got:\n%s", attr, value, truncate(html, 500))
	}
}

// truncate truncates a string to max length with ellipsis.
func truncate(s string, max int) string {
	if len(s) <= max {
		return s
	}
	return s[:max] + "..."
}
