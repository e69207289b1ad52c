// Package listdiff computes the edits that turn one keyed list into
// another.
//
// Diff emits removals first (descending), then replacements, then moves,
// then additions (ascending). Replaying the actions in order on a copy
// of the current list yields the next list; Apply does exactly that.
//
//	actions := listdiff.Diff(current, next, listdiff.KeyField[Todo]("ID"))
//	for _, a := range actions {
//	    fmt.Println(a)
//	}
//
// Items whose key is nil are keyed by the item itself, so keys (and
// unkeyed items) must be comparable.
package listdiff
