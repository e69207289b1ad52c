package render

import (
	"github.com/vango-dev/reflow/pkg/host"
	"github.com/vango-dev/reflow/pkg/index"
	"github.com/vango-dev/reflow/pkg/reactive"
	"github.com/vango-dev/reflow/pkg/vdom"
)

func (r *Renderer) renderCondition(c *vdom.ConditionSpec, parent host.Node, cursor *index.Range, scope *reactive.DeriveListener) (func(), *index.Range) {
	head := cursor.Next()
	tail := head.Next()

	var (
		unrender func()
		shown    bool
		rendered bool
	)
	drop := func() {
		if unrender != nil {
			unrender()
			unrender = nil
		}
	}

	id := c.If.AddAnyListener(func(v any) {
		t := vdom.Truthy(v)
		if rendered && t == shown {
			return
		}
		if rendered {
			r.logger.Debug("condition swap", "value", c.If.Name(), "truthy", t)
		}
		rendered, shown = true, t

		drop()
		head.SetCount(0)
		head.SetChild(tail)
		head.UpdateChildren()

		branch := c.Else
		if t {
			branch = c.Then
		}
		if branch == nil {
			return
		}
		unrender, _ = r.renderScoped(scope, nil, func(*reactive.Locals) *vdom.Node {
			return branch()
		}, parent, head)
	})

	return func() {
		c.If.RemoveUpdateListener(id)
		drop()
	}, tail
}
