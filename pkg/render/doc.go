// Package render mounts vdom trees onto a host tree and keeps them in
// sync with the reactive values they read.
//
// The renderer never diffs trees. Reactive leaves, attributes, conditions
// and lists subscribe to their values and edit the host in place. Host
// positions are tracked by an index.Range chain so that an edit deep in
// the tree knows where its nodes live in the parent's child list.
//
// # Basic Usage
//
//	tree := memhost.New()
//	root := tree.CreateElement("body")
//
//	r := render.New(tree, render.WithLogger(logger))
//	m := r.Mount(vdom.Comp(App, props), root)
//	defer m.Unmount()
//
// # Scopes
//
// Every component, condition branch and list item renders under its own
// reactive.DeriveListener. Values derived from watched values while the
// body runs are detached again when that body is unrendered, so a
// mounted tree leaves no listeners behind after Unmount.
//
// # Observability
//
// WithMetrics registers Prometheus collectors for mounts, list actions
// and live host nodes. WithTracing starts OpenTelemetry spans around
// Mount and every list reconcile.
package render
