// Package reactive implements the value graph: input values, computed
// values, keyed property projections, proxies and sorted array views.
//
// Every cell is a Node. Values derived from a node (computed values,
// proxies, read-only projections, sorted views) register with it and are
// updated synchronously, depth-first, whenever it changes. Writable
// property projections of input values are tracked separately so that a
// write through one projection updates its ancestors without re-deriving
// its siblings.
//
// # Basic Usage
//
//	name := reactive.NewInput("Ada Lovelace")
//	first := reactive.Computed(name, func(s string) string {
//	    return strings.Fields(s)[0]
//	})
//	first.AddUpdateListener(func(v string) { fmt.Println(v) }) // prints Ada
//	name.Change("Grace Hopper")                               // prints Grace
//
// Changes that are equal under the value's equality function are dropped
// before any listener runs. The default equality is StrictEqual.
//
// # Projections
//
//	store := reactive.NewInput(map[string]any{"count": 1})
//	count := reactive.InputProperty[int](store, "count")
//	count.Change(2) // store.Extract()["count"] == 2
//
// # Scopes
//
// A DeriveListener records which values were derived from the values it
// watches while it is collecting. Renderers use it to sever exactly the
// edges a component introduced when that component unmounts.
//
// # Threading
//
// Propagation is synchronous and unlocked. A value must only be changed
// from one goroutine; SetDiagnostics(true) turns that into a checked
// invariant.
package reactive
