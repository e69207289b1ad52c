package render

import (
	"github.com/vango-dev/reflow/pkg/host"
	"github.com/vango-dev/reflow/pkg/index"
	"github.com/vango-dev/reflow/pkg/reactive"
	"github.com/vango-dev/reflow/pkg/vdom"
)

// renderScoped calls body while parent collects derivations, then renders
// the result under a child scope that watches watch, the body's locals
// and everything the body derived.
func (r *Renderer) renderScoped(parent *reactive.DeriveListener, watch []reactive.Node, body func(*reactive.Locals) *vdom.Node, el host.Node, cursor *index.Range) (func(), *index.Range) {
	child := reactive.NewDeriveListener(watch, parent)
	collector := parent
	if collector == nil {
		collector = child
	}

	locals := reactive.NewLocals()
	var (
		node  *vdom.Node
		edges []reactive.Edge
	)
	func() {
		collector.Begin()
		defer func() { edges = collector.Extract() }()
		node = body(locals)
	}()

	for _, v := range locals.Values() {
		child.Watch(v)
	}
	for _, e := range edges {
		child.Watch(e.Derived)
	}

	unrender, next := r.Render(node, el, cursor, child)
	return func() {
		unrender()
		if parent != nil {
			parent.RemoveChild(child)
		}
		for _, e := range edges {
			e.Detach()
		}
		child.Close()
	}, next
}

func (r *Renderer) renderComponent(c *vdom.ComponentSpec, parent host.Node, cursor *index.Range, scope *reactive.DeriveListener) (func(), *index.Range) {
	r.logger.Debug("render component", "component", c.Name)
	return r.renderScoped(scope, nil, c.Render, parent, cursor)
}
