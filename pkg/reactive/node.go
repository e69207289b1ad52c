package reactive

import "fmt"

// ListenerID identifies a registered update or derive listener.
type ListenerID uint64

// DeriveFunc is called when derived is created from source.
type DeriveFunc func(source, derived Node)

// Node is the type-erased view of a reactive cell.
type Node interface {
	// ID returns the unique identifier of this node.
	ID() uint64

	// Name returns a label for logs and diagnostics.
	Name() string

	// ExtractAny returns the current value.
	ExtractAny() any

	// AddDerivedValue registers d to be updated whenever this node changes
	// and fires the derive listeners. Adding d twice is a no-op.
	AddDerivedValue(d Derived)

	// RemoveDerivedValue stops updating d. Removing an unknown d is a no-op.
	RemoveDerivedValue(d Derived)

	// AddDeriveListener registers fn to be called whenever a value is
	// derived from this node.
	AddDeriveListener(fn DeriveFunc) ListenerID

	// RemoveDeriveListener unregisters a derive listener.
	RemoveDeriveListener(id ListenerID)

	// AddAnyListener registers fn, calls it with the current value and
	// again after every accepted change.
	AddAnyListener(fn func(any)) ListenerID

	// RemoveUpdateListener unregisters an update listener. It is idempotent.
	RemoveUpdateListener(id ListenerID)

	DerivedCount() int
	UpdateListenerCount() int
	DeriveListenerCount() int
}

// Derived is a node that recomputes itself from the nodes it depends on.
type Derived interface {
	Node
	update()
}

// Value is a typed reactive cell.
type Value[T any] interface {
	Node

	// Extract returns the current value. It is O(1) and side-effect free.
	Extract() T

	// AddUpdateListener calls fn with the current value immediately and
	// after every accepted change.
	AddUpdateListener(fn func(T)) ListenerID
}

// base holds the registrations shared by every node type.
type base struct {
	id    uint64
	name  string
	self  Node
	owner int64

	derived         list[Derived]
	deriveListeners list[DeriveFunc]
	updateListeners list[func()]
}

func (b *base) init(self Node, name string) {
	b.id = nextID()
	b.self = self
	b.name = name
	track()
}

// ID returns the unique identifier of this node.
func (b *base) ID() uint64 {
	return b.id
}

// Name returns the name set with SetName or WithName, or a generated one.
func (b *base) Name() string {
	if b.name != "" {
		return b.name
	}
	return fmt.Sprintf("value#%d", b.id)
}

// SetName labels the node for logs and diagnostics.
func (b *base) SetName(name string) {
	b.name = name
}

func (b *base) AddDerivedValue(d Derived) {
	if !b.derived.add(d.ID(), d) {
		return
	}
	b.fireDerive(d)
}

func (b *base) RemoveDerivedValue(d Derived) {
	b.derived.remove(d.ID())
}

func (b *base) AddDeriveListener(fn DeriveFunc) ListenerID {
	id := ListenerID(nextID())
	b.deriveListeners.add(uint64(id), fn)
	return id
}

func (b *base) RemoveDeriveListener(id ListenerID) {
	b.deriveListeners.remove(uint64(id))
}

func (b *base) AddAnyListener(fn func(any)) ListenerID {
	return b.addListener(func() { fn(b.self.ExtractAny()) })
}

func (b *base) RemoveUpdateListener(id ListenerID) {
	b.updateListeners.remove(uint64(id))
}

func (b *base) DerivedCount() int       { return b.derived.len() }
func (b *base) UpdateListenerCount() int { return b.updateListeners.len() }
func (b *base) DeriveListenerCount() int { return b.deriveListeners.len() }

// addListener registers a thunk that reads the current value itself,
// and runs it once for the initial sync.
func (b *base) addListener(thunk func()) ListenerID {
	id := ListenerID(nextID())
	b.updateListeners.add(uint64(id), thunk)
	thunk()
	return id
}

func (b *base) fireDerive(d Node) {
	for _, e := range b.deriveListeners.snapshot() {
		if e.live {
			e.fn(b.self, d)
		}
	}
}

func (b *base) notify() {
	for _, e := range b.updateListeners.snapshot() {
		if e.live {
			e.fn()
		}
	}
}

func (b *base) updateDerived() {
	for _, e := range b.derived.snapshot() {
		if e.live {
			e.fn.update()
		}
	}
}

// as converts an untyped value to T, mapping nil to T's zero value.
func as[T any](v any) T {
	if v == nil {
		var zero T
		return zero
	}
	return v.(T)
}
