// Package vtest provides testing helpers for reflow components.
//
// The vtest package mounts trees onto an in-memory host and offers query
// helpers and render assertions, so component tests read like a script
// of user actions.
//
// # Quick Start
//
//	func TestCounter(t *testing.T) {
//	    h := vtest.Mount(t, vdom.Comp(Counter, 1))
//	    h.Click(h.Find("button"))
//	    vtest.ExpectContains(t, h.HTML(), "2")
//	}
//
// # Queries
//
// Find and FindAll search the mounted tree depth-first by tag. Input sets
// the value property of a node and fires an input event the way a
// browser would after typing.
//
// # One-Liner Rendering
//
// For static trees, RenderToString mounts, serializes and unmounts:
//
//	html := vtest.RenderToString(vdom.Div(vdom.Class("box"), "hi"))
package vtest
