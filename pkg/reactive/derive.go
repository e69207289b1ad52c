package reactive

import (
	"sync"

	mapset "github.com/deckarep/golang-set/v2"
	"github.com/petermattis/goid"
)

// Edge is a derivation from Source to Derived.
type Edge struct {
	Source  Node
	Derived Node
}

// Detach stops Source from updating Derived.
func (e Edge) Detach() {
	d, ok := e.Derived.(Derived)
	if !ok {
		return
	}
	if w, ok := e.Source.(writableParent); ok {
		w.removePropertyValue(d)
	}
	e.Source.RemoveDerivedValue(d)
}

type edgeKey struct {
	source, derived uint64
}

type watch struct {
	node Node
	id   ListenerID
}

// DeriveListener watches a set of values for new derivations. While a
// listener is collecting (between Begin and Extract), every derivation
// from any watched value made on the same goroutine is recorded by the
// innermost collecting listener.
type DeriveListener struct {
	parent   *DeriveListener
	children mapset.Set[*DeriveListener]
	watched  []watch

	frames []*frame
	closed bool
}

// frame holds the edges of one Begin/Extract pair.
type frame struct {
	edges []Edge
	seen  mapset.Set[edgeKey]
}

// NewDeriveListener creates a listener watching values. A non-nil parent
// closes the listener when it is closed itself.
func NewDeriveListener(values []Node, parent *DeriveListener) *DeriveListener {
	l := &DeriveListener{
		parent:   parent,
		children: mapset.NewThreadUnsafeSet[*DeriveListener](),
	}
	for _, v := range values {
		l.Watch(v)
	}
	if parent != nil {
		parent.children.Add(l)
	}
	return l
}

// Watch adds v to the watched values.
func (l *DeriveListener) Watch(v Node) {
	if v == nil {
		return
	}
	id := v.AddDeriveListener(func(source, derived Node) {
		collect(Edge{Source: source, Derived: derived})
	})
	l.watched = append(l.watched, watch{node: v, id: id})
}

// Begin makes l the innermost collecting listener of the current
// goroutine. Begin calls nest; each is closed by one Extract.
func (l *DeriveListener) Begin() {
	l.frames = append(l.frames, &frame{seen: mapset.NewThreadUnsafeSet[edgeKey]()})
	s := stackFor(goid.Get(), true)
	*s = append(*s, l)
}

// Extract stops collecting and returns the edges recorded since the
// matching Begin. Edges recorded by an enclosing Begin on the same
// listener are left to its own Extract.
func (l *DeriveListener) Extract() []Edge {
	gid := goid.Get()
	if s := stackFor(gid, false); s != nil {
		if n := len(*s); n > 0 && (*s)[n-1] == l {
			(*s)[n-1] = nil
			*s = (*s)[:n-1]
		}
		if len(*s) == 0 {
			collecting.Delete(gid)
		}
	}
	n := len(l.frames)
	if n == 0 {
		return nil
	}
	f := l.frames[n-1]
	l.frames[n-1] = nil
	l.frames = l.frames[:n-1]
	return f.edges
}

// Parent returns the listener l was created under.
func (l *DeriveListener) Parent() *DeriveListener {
	return l.parent
}

// Children returns the number of open child listeners.
func (l *DeriveListener) Children() int {
	return l.children.Cardinality()
}

// Watched returns the number of watched values.
func (l *DeriveListener) Watched() int {
	return len(l.watched)
}

// RemoveChild forgets child without closing it.
func (l *DeriveListener) RemoveChild(child *DeriveListener) {
	l.children.Remove(child)
}

// Close unregisters l from every watched value and closes its children.
// Close is idempotent.
func (l *DeriveListener) Close() {
	if l.closed {
		return
	}
	l.closed = true
	for _, w := range l.watched {
		w.node.RemoveDeriveListener(w.id)
	}
	l.watched = nil
	for _, c := range l.children.ToSlice() {
		c.Close()
	}
	l.children.Clear()
	if l.parent != nil {
		l.parent.children.Remove(l)
	}
}

func (l *DeriveListener) record(e Edge) {
	if len(l.frames) == 0 {
		return
	}
	f := l.frames[len(l.frames)-1]
	if !f.seen.Add(edgeKey{source: e.Source.ID(), derived: e.Derived.ID()}) {
		return
	}
	f.edges = append(f.edges, e)
}

// collecting maps goroutine ids to their stack of collecting listeners.
var collecting sync.Map

func stackFor(gid int64, create bool) *[]*DeriveListener {
	if v, ok := collecting.Load(gid); ok {
		return v.(*[]*DeriveListener)
	}
	if !create {
		return nil
	}
	s := new([]*DeriveListener)
	collecting.Store(gid, s)
	return s
}

// collect hands e to the innermost collecting listener of the current
// goroutine. Derivations made outside a collection are not recorded.
func collect(e Edge) {
	s := stackFor(goid.Get(), false)
	if s == nil || len(*s) == 0 {
		return
	}
	(*s)[len(*s)-1].record(e)
}
