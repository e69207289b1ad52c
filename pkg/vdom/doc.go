// Package vdom builds the node trees the renderer mounts.
//
// A Node is a tagged union: a primitive leaf, a reactive value leaf, a
// fragment, an element, a keyed list, a condition or a component. The
// renderer dispatches on Kind.
//
// # Element API
//
// Elements are created with variadic factory functions. Arguments may be
// attributes, event handlers, child nodes, reactive values (rendered as
// text that follows the value) and primitives:
//
//	count := reactive.NewInput(0)
//	Div(Class("counter"),
//	    Span("Count: ", count),
//	    Button(OnClick(func(host.Event) { count.ChangeWith(inc) }), "+"),
//	)
//
// Attribute helpers accept either a static value or a reactive.Node; the
// renderer keeps reactive attributes in sync.
//
// # Control Flow
//
//	Condition(loggedIn, func() *Node { return Dashboard() }, Text("Sign in"))
//
//	List(todos, listdiff.KeyField[Todo]("ID"), func(t reactive.Projection[Todo]) *Node {
//	    return Li(reactive.Property[string](t, "Title"))
//	})
//
// # Components
//
// A component is a function of its props and a Locals used to create
// owned state:
//
//	func Counter(start int, l *reactive.Locals) *vdom.Node {
//	    n := reactive.CreateState(l, start)
//	    return Button(OnClick(...), n)
//	}
//
//	Comp(Counter, 3)
package vdom
