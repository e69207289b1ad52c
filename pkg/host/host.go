// Package host defines the tree the renderer mounts onto.
//
// A Host creates nodes and edits their child lists, attributes,
// properties and event listeners. The renderer only ever addresses
// children by position, so a Host needs no notion of keys or ids beyond
// node identity.
package host

// Node is an opaque handle to a host tree node.
type Node interface {
	ID() uint64
}

// Host is the capability set the renderer needs from a tree.
type Host interface {
	CreateElement(tag string) Node
	CreateTextNode(text string) Node
	SetText(n Node, text string)

	// InsertAt inserts child before the child currently at index, or
	// appends it when index >= ChildCount(parent). The reference child is
	// resolved before a child that already has a parent is detached.
	// Inserting a node before itself is a no-op.
	InsertAt(parent Node, index int, child Node)
	AppendChild(parent, child Node)
	ChildCount(parent Node) int
	ChildAt(parent Node, i int) Node

	SetAttribute(n Node, name, value string)
	RemoveAttribute(n Node, name string)
	SetProperty(n Node, name string, value any)
	GetProperty(n Node, name string) any

	// AddEventListener registers fn for event on n and returns a func
	// that removes it.
	AddEventListener(n Node, event string, fn func(Event)) (remove func())

	// Remove detaches n from its parent.
	Remove(n Node)
}

// Event is delivered to listeners registered with AddEventListener.
type Event struct {
	Type   string
	Target Node
	Source Host
	Data   map[string]any
}

// Property reads a property of the event's target, falling back to the
// event's own data.
func (e Event) Property(name string) any {
	if e.Source != nil && e.Target != nil {
		if v := e.Source.GetProperty(e.Target, name); v != nil {
			return v
		}
	}
	return e.Data[name]
}
