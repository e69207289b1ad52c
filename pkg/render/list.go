package render

import (
	"context"
	"time"

	"go.opentelemetry.io/otel/attribute"

	"github.com/vango-dev/reflow/pkg/host"
	"github.com/vango-dev/reflow/pkg/index"
	"github.com/vango-dev/reflow/pkg/listdiff"
	"github.com/vango-dev/reflow/pkg/reactive"
	"github.com/vango-dev/reflow/pkg/vdom"
)

// list is the state of one mounted keyed list.
type list struct {
	r      *Renderer
	spec   *vdom.ListSpec
	parent host.Node
	scope  *reactive.DeriveListener
	mgr    *index.ListManager
	prev   any
}

func (r *Renderer) renderList(spec *vdom.ListSpec, parent host.Node, cursor *index.Range, scope *reactive.DeriveListener) (func(), *index.Range) {
	l := &list{
		r:      r,
		spec:   spec,
		parent: parent,
		scope:  scope,
		mgr:    index.NewListManager(cursor.Next()),
		prev:   spec.Snapshot(),
	}
	for i := range spec.Len(l.prev) {
		l.add(i, i)
	}

	synced := false
	id := spec.Data.AddAnyListener(func(any) {
		if !synced {
			synced = true
			return
		}
		l.reconcile()
	})

	return func() {
		spec.Data.RemoveUpdateListener(id)
		for i := l.mgr.Len() - 1; i >= 0; i-- {
			l.remove(i)
		}
	}, l.mgr.Output()
}

// reconcile brings the rendered items in line with the current data.
func (l *list) reconcile() {
	start := time.Now()
	next := l.spec.Snapshot()
	actions := l.spec.Diff(l.prev, next)

	_, span := l.r.startSpan(context.Background(), "reflow.list.reconcile",
		attribute.Int("reflow.list.size", l.spec.Len(next)),
		attribute.Int("reflow.list.actions", len(actions)),
	)
	defer span.End()

	end := l.mgr.StartBatch()
	for _, a := range actions {
		switch a.Kind {
		case listdiff.Remove:
			l.remove(a.A)
		case listdiff.Replace:
			l.remove(a.A)
			l.add(a.A, a.B)
		case listdiff.Move:
			l.move(a.A, a.B)
		case listdiff.Add:
			l.add(a.A, a.A)
		}
	}
	end()
	l.mgr.UpdateValues()
	l.prev = next

	counts := listdiff.Count(actions)
	l.r.metrics.reconciled(counts, time.Since(start))
	if len(actions) > 0 {
		l.r.logger.Debug("list reconciled",
			"size", l.mgr.Len(),
			"add", counts[listdiff.Add],
			"remove", counts[listdiff.Remove],
			"replace", counts[listdiff.Replace],
			"move", counts[listdiff.Move],
		)
	}
}

// add renders a new item at position i, projecting the data at key.
func (l *list) add(i, key int) {
	value, tmpl := l.spec.Item(key)
	it := &index.Item{Value: value, Range: index.New(0)}
	l.mgr.AddToList(i, it)

	unrender, end := l.r.renderScoped(l.scope, []reactive.Node{value}, func(*reactive.Locals) *vdom.Node {
		return tmpl()
	}, l.parent, it.Range)
	it.Unrender = unrender
	it.End = end
	end.UpdateChildren()
}

func (l *list) remove(i int) {
	it := l.mgr.Item(i)
	it.Unrender()
	if v, ok := it.Value.(vdom.ItemValue); ok {
		v.Deactivate()
	}
	l.mgr.RemoveFromList(i)
}

// move relinks the item at from to position to and moves its host nodes
// after it. Host insertion follows insertBefore semantics: moving forward
// every node goes before the node that follows the item's new slot, and
// moving backward each node goes to its own final position.
func (l *list) move(from, to int) {
	h := l.r.host
	it := l.mgr.Item(from)
	start, end := it.Range.Start(), it.End.NextIndex()
	nodes := make([]host.Node, 0, end-start)
	for k := start; k < end; k++ {
		nodes = append(nodes, h.ChildAt(l.parent, k))
	}

	l.mgr.MoveInList(from, to)
	if len(nodes) == 0 {
		return
	}

	s := it.Range.Start()
	for k, n := range nodes {
		if to > from {
			h.InsertAt(l.parent, s+len(nodes), n)
		} else {
			h.InsertAt(l.parent, s+k, n)
		}
	}
}
