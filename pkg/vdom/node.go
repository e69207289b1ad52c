package vdom

import (
	"reflect"
	"runtime"
	"slices"
	"strings"

	"github.com/vango-dev/reflow/pkg/host"
	"github.com/vango-dev/reflow/pkg/listdiff"
	"github.com/vango-dev/reflow/pkg/reactive"
)

// Kind is the node type discriminator.
type Kind uint8

const (
	KindPrimitive Kind = iota // string, number, bool or nil
	KindValue                 // text that follows a reactive value
	KindFragment              // grouping without wrapper
	KindElement               // <div>, <button>, etc.
	KindList                  // keyed list
	KindCondition             // if/then/else
	KindComponent             // component call
)

// String returns the string representation of the Kind.
func (k Kind) String() string {
	switch k {
	case KindPrimitive:
		return "Primitive"
	case KindValue:
		return "Value"
	case KindFragment:
		return "Fragment"
	case KindElement:
		return "Element"
	case KindList:
		return "List"
	case KindCondition:
		return "Condition"
	case KindComponent:
		return "Component"
	default:
		return "Unknown"
	}
}

// Node is one node of a tree to mount.
type Node struct {
	Kind Kind

	Tag      string         // KindElement
	Attrs    []Attr         // KindElement
	Events   []EventHandler // KindElement
	Children []*Node        // KindElement, KindFragment

	Primitive any          // KindPrimitive
	Value     reactive.Node // KindValue

	List *ListSpec      // KindList
	Cond *ConditionSpec // KindCondition
	Comp *ComponentSpec // KindComponent
}

// Attr is an element attribute. Value is static or a reactive.Node.
type Attr struct {
	Key   string
	Value any
}

// IsEmpty returns true if this is an empty attribute.
func (a Attr) IsEmpty() bool {
	return a.Key == ""
}

// EventHandler is an element event listener.
type EventHandler struct {
	Event   string
	Handler func(host.Event)
}

// ItemValue is the per-item projection of a list's data.
type ItemValue interface {
	reactive.Node
	SetProperty(key any)
	Deactivate()
}

// ListSpec is the type-erased form of a keyed list.
type ListSpec struct {
	Data reactive.Node

	// Snapshot copies the current data.
	Snapshot func() any

	// Diff computes the edits from a snapshot to the current data.
	Diff func(prev, next any) []listdiff.Action

	// Len returns the length of a snapshot.
	Len func(data any) int

	// Item projects the data at index and returns the projection with
	// the item template bound to it.
	Item func(index int) (ItemValue, func() *Node)
}

// ConditionSpec selects Then or Else by the truthiness of If.
type ConditionSpec struct {
	If   reactive.Node
	Then func() *Node
	Else func() *Node
}

// ComponentSpec is a component applied to its props.
type ComponentSpec struct {
	Name   string
	Render func(l *reactive.Locals) *Node
}

// Text creates a primitive text node.
func Text(s string) *Node {
	return &Node{Kind: KindPrimitive, Primitive: s}
}

// Primitive creates a primitive leaf for a string, number, bool or nil.
func Primitive(v any) *Node {
	return &Node{Kind: KindPrimitive, Primitive: v}
}

// Val creates a text leaf that follows v.
func Val(v reactive.Node) *Node {
	return &Node{Kind: KindValue, Value: v}
}

// Fragment groups children without a wrapper element.
func Fragment(children ...any) *Node {
	n := &Node{Kind: KindFragment}
	for _, c := range children {
		n.Children = appendChild(n.Children, c)
	}
	return n
}

// Condition renders then while cond is truthy and otherwise els. then
// and els may be a *Node, a func() *Node or nil.
func Condition(cond reactive.Node, then, els any) *Node {
	return &Node{Kind: KindCondition, Cond: &ConditionSpec{
		If:   cond,
		Then: branch(then),
		Else: branch(els),
	}}
}

func branch(b any) func() *Node {
	switch v := b.(type) {
	case nil:
		return nil
	case func() *Node:
		return v
	case *Node:
		if v == nil {
			return nil
		}
		return func() *Node { return v }
	}
	n := toNode(b)
	return func() *Node { return n }
}

// List renders each item of data with each. key extracts item identity;
// a nil key keys items by themselves.
func List[E any](data reactive.Value[[]E], key func(E) any, each func(reactive.Projection[E]) *Node) *Node {
	return &Node{Kind: KindList, List: &ListSpec{
		Data: data,
		Snapshot: func() any {
			return slices.Clone(data.Extract())
		},
		Diff: func(prev, next any) []listdiff.Action {
			return listdiff.Diff(prev.([]E), next.([]E), key)
		},
		Len: func(v any) int {
			return len(v.([]E))
		},
		Item: func(i int) (ItemValue, func() *Node) {
			p := reactive.Project[E](data, i)
			return p, func() *Node { return each(p) }
		},
	}}
}

// Comp applies a component to its props.
func Comp[P any](fn func(P, *reactive.Locals) *Node, props P) *Node {
	return &Node{Kind: KindComponent, Comp: &ComponentSpec{
		Name: funcName(fn),
		Render: func(l *reactive.Locals) *Node {
			return fn(props, l)
		},
	}}
}

func funcName(fn any) string {
	f := runtime.FuncForPC(reflect.ValueOf(fn).Pointer())
	if f == nil {
		return "component"
	}
	name := f.Name()
	if i := strings.LastIndexByte(name, '/'); i >= 0 {
		name = name[i+1:]
	}
	return name
}

// toNode converts a child argument to a node, or nil if it renders
// nothing.
func toNode(arg any) *Node {
	switch v := arg.(type) {
	case nil:
		return nil
	case *Node:
		return v
	case reactive.Node:
		return Val(v)
	}
	return Primitive(arg)
}

func appendChild(children []*Node, arg any) []*Node {
	switch v := arg.(type) {
	case nil:
		return children
	case []*Node:
		for _, c := range v {
			if c != nil {
				children = append(children, c)
			}
		}
		return children
	case []any:
		for _, c := range v {
			children = appendChild(children, c)
		}
		return children
	}
	if n := toNode(arg); n != nil {
		children = append(children, n)
	}
	return children
}
