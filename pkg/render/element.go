package render

import (
	"strconv"
	"strings"

	"github.com/vango-dev/reflow/pkg/host"
	"github.com/vango-dev/reflow/pkg/index"
	"github.com/vango-dev/reflow/pkg/reactive"
	"github.com/vango-dev/reflow/pkg/vdom"
)

func (r *Renderer) renderElement(node *vdom.Node, parent host.Node, cursor *index.Range, scope *reactive.DeriveListener) (func(), *index.Range) {
	el := r.host.CreateElement(node.Tag)

	var cleanups []func()
	for _, a := range node.Attrs {
		key := a.Key
		if v, ok := a.Value.(reactive.Node); ok {
			id := v.AddAnyListener(func(x any) { r.setAttr(el, key, x) })
			cleanups = append(cleanups, func() { v.RemoveUpdateListener(id) })
			continue
		}
		r.setAttr(el, key, a.Value)
	}
	for _, h := range node.Events {
		cleanups = append(cleanups, r.host.AddEventListener(el, h.Event, h.Handler))
	}

	unrenderChildren, _ := r.renderChildren(node.Children, el, index.New(0), scope)
	r.insert(parent, cursor, el)

	return func() {
		for _, c := range cleanups {
			c()
		}
		unrenderChildren()
		r.remove(el, cursor)
	}, cursor
}

// setAttr applies one attribute value to el.
//
//	value, checked, selected  host property
//	aria-* with a bool        "true" / "false"
//	boolean attributes        "" while truthy, removed otherwise
//	anything else             stringified, removed when nil
func (r *Renderer) setAttr(el host.Node, key string, v any) {
	switch {
	case vdom.IsPropertyAttr(key):
		r.host.SetProperty(el, key, v)
		return
	case strings.HasPrefix(key, "aria-"):
		if b, ok := v.(bool); ok {
			r.host.SetAttribute(el, key, strconv.FormatBool(b))
			return
		}
	case vdom.IsBooleanAttr(key):
		if vdom.Truthy(v) {
			r.host.SetAttribute(el, key, "")
		} else {
			r.host.RemoveAttribute(el, key)
		}
		return
	}

	if v == nil {
		r.host.RemoveAttribute(el, key)
		return
	}
	r.host.SetAttribute(el, key, vdom.Stringify(v))
}
