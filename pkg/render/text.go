package render

import (
	"github.com/vango-dev/reflow/pkg/host"
	"github.com/vango-dev/reflow/pkg/index"
	"github.com/vango-dev/reflow/pkg/reactive"
	"github.com/vango-dev/reflow/pkg/vdom"
)

func (r *Renderer) renderPrimitive(v any, parent host.Node, cursor *index.Range) (func(), *index.Range) {
	n := r.host.CreateTextNode(vdom.Stringify(v))
	r.insert(parent, cursor, n)
	return func() { r.remove(n, cursor) }, cursor
}

func (r *Renderer) renderValue(v reactive.Node, parent host.Node, cursor *index.Range) (func(), *index.Range) {
	n := r.host.CreateTextNode("")
	id := v.AddAnyListener(func(x any) {
		r.host.SetText(n, vdom.Stringify(x))
	})
	r.insert(parent, cursor, n)
	return func() {
		v.RemoveUpdateListener(id)
		r.remove(n, cursor)
	}, cursor
}

// renderChildren threads cursor through children in order.
func (r *Renderer) renderChildren(children []*vdom.Node, parent host.Node, cursor *index.Range, scope *reactive.DeriveListener) (func(), *index.Range) {
	unrenders := make([]func(), 0, len(children))
	for _, c := range children {
		u, next := r.Render(c, parent, cursor, scope)
		unrenders = append(unrenders, u)
		cursor = next
	}
	return func() {
		for _, u := range unrenders {
			u()
		}
	}, cursor
}
