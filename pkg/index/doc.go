// Package index tracks where rendered subtrees sit inside their parent's
// child list.
//
// A Range covers count consecutive children starting at start. Ranges
// form a singly linked chain in document order, and each range starts
// where its predecessor ends. After a range's count changes or the chain
// is spliced, UpdateChildren re-propagates start positions downstream.
//
// ListManager keeps the ranges of a keyed list's items in list order
// between an input boundary and an output boundary.
package index
