package render

import (
	"context"
	"log/slog"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"

	"github.com/vango-dev/reflow/internal/errors"
	"github.com/vango-dev/reflow/pkg/host"
	"github.com/vango-dev/reflow/pkg/index"
	"github.com/vango-dev/reflow/pkg/reactive"
	"github.com/vango-dev/reflow/pkg/vdom"
)

// Renderer mounts vdom trees onto a host.
type Renderer struct {
	host    host.Host
	logger  *slog.Logger
	metrics *metrics
	tracer  trace.Tracer
}

// Option configures a Renderer.
type Option func(*Renderer)

// WithLogger sets the logger. Mounts, list reconciles and condition
// swaps are logged at Debug.
func WithLogger(l *slog.Logger) Option {
	return func(r *Renderer) {
		r.logger = l
	}
}

// New creates a renderer for h.
func New(h host.Host, opts ...Option) *Renderer {
	r := &Renderer{host: h}
	for _, opt := range opts {
		opt(r)
	}
	if r.logger == nil {
		r.logger = slog.Default()
	}
	return r
}

// Host returns the host the renderer edits.
func (r *Renderer) Host() host.Host {
	return r.host
}

// Render mounts node into parent at cursor and returns a func that tears
// it down together with the range that follows the rendered content.
// Nodes that render no host nodes return cursor itself.
func (r *Renderer) Render(node *vdom.Node, parent host.Node, cursor *index.Range, scope *reactive.DeriveListener) (unrender func(), next *index.Range) {
	if node == nil {
		return func() {}, cursor
	}
	switch node.Kind {
	case vdom.KindPrimitive:
		return r.renderPrimitive(node.Primitive, parent, cursor)
	case vdom.KindValue:
		return r.renderValue(node.Value, parent, cursor)
	case vdom.KindFragment:
		return r.renderChildren(node.Children, parent, cursor, scope)
	case vdom.KindElement:
		return r.renderElement(node, parent, cursor, scope)
	case vdom.KindList:
		return r.renderList(node.List, parent, cursor, scope)
	case vdom.KindCondition:
		return r.renderCondition(node.Cond, parent, cursor, scope)
	case vdom.KindComponent:
		return r.renderComponent(node.Comp, parent, cursor, scope)
	}
	panic(errors.New("R003").WithField("kind", node.Kind.String()))
}

// Mounted is a tree mounted by Mount.
type Mounted struct {
	r        *Renderer
	scope    *reactive.DeriveListener
	unrender func()
	next     *index.Range
	done     bool
}

// Mount renders root as the first children of parent under a fresh root
// scope. The root scope watches watch, so values the tree derives from
// them are released by Unmount.
func (r *Renderer) Mount(root *vdom.Node, parent host.Node, watch ...reactive.Node) *Mounted {
	return r.MountContext(context.Background(), root, parent, watch...)
}

// MountContext is Mount with a context for the mount span.
func (r *Renderer) MountContext(ctx context.Context, root *vdom.Node, parent host.Node, watch ...reactive.Node) *Mounted {
	_, span := r.startSpan(ctx, "reflow.mount")
	defer span.End()

	scope := reactive.NewDeriveListener(watch, nil)
	unrender, next := r.Render(root, parent, index.New(0), scope)

	nodes := next.NextIndex()
	span.SetAttributes(attribute.Int("reflow.mount.nodes", nodes))
	r.metrics.mount()
	r.logger.Debug("mounted", "nodes", nodes)

	return &Mounted{r: r, scope: scope, unrender: unrender, next: next}
}

// Next returns the range following the mounted content. Its NextIndex is
// the number of host children the tree occupies.
func (m *Mounted) Next() *index.Range {
	return m.next
}

// Scope returns the root derive scope.
func (m *Mounted) Scope() *reactive.DeriveListener {
	return m.scope
}

// Unmount removes every host node and listener the tree created. It is
// idempotent.
func (m *Mounted) Unmount() {
	if m.done {
		return
	}
	m.done = true
	m.unrender()
	m.scope.Close()
	m.r.logger.Debug("unmounted")
}

// insert places n at the end of cursor and shifts everything after it.
func (r *Renderer) insert(parent host.Node, cursor *index.Range, n host.Node) {
	r.host.InsertAt(parent, cursor.NextIndex(), n)
	cursor.Increment().UpdateChildren()
	r.metrics.nodeAdded()
}

func (r *Renderer) remove(n host.Node, cursor *index.Range) {
	r.host.Remove(n)
	cursor.Decrement().UpdateChildren()
	r.metrics.nodeRemoved()
}
