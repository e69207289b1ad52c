package index

import "github.com/vango-dev/reflow/internal/errors"

// Positioned is the per-item data view of a list item. The manager
// re-points it at the item's current position.
type Positioned interface {
	SetProperty(key any)
}

// Item is the bookkeeping for one rendered list item. Range is the head
// of the item's own chain segment and End its last range; the item's
// subtree ranges are threaded between them.
type Item struct {
	Value    Positioned
	Range    *Range
	End      *Range
	Unrender func()
}

func (it *Item) tail() *Range {
	if it.End != nil {
		return it.End
	}
	return it.Range
}

// ListManager keeps the items of a keyed list in list order and their
// ranges linked between an input and an output boundary.
type ListManager struct {
	items  []*Item
	input  *Range
	output *Range
}

// NewListManager roots a list at input. The output boundary is spliced
// in right after input.
func NewListManager(input *Range) *ListManager {
	return &ListManager{input: input, output: input.Next()}
}

// Input returns the input boundary.
func (m *ListManager) Input() *Range {
	return m.input
}

// Output returns the output boundary, the range following the list.
func (m *ListManager) Output() *Range {
	return m.output
}

// Len returns the number of items.
func (m *ListManager) Len() int {
	return len(m.items)
}

// Item returns the item at i.
func (m *ListManager) Item(i int) *Item {
	if i < 0 || i >= len(m.items) {
		panic(outOfRange(i, len(m.items)))
	}
	return m.items[i]
}

// Items returns the items in list order.
func (m *ListManager) Items() []*Item {
	return m.items
}

// GetRange returns the head range of the item at i. -1 gives the input
// boundary and Len() the output boundary.
func (m *ListManager) GetRange(i int) *Range {
	switch {
	case i == -1:
		return m.input
	case i == len(m.items):
		return m.output
	case i >= 0 && i < len(m.items):
		return m.items[i].Range
	}
	panic(outOfRange(i, len(m.items)))
}

// Tail returns the last range of the item at i, with the same boundary
// rules as GetRange.
func (m *ListManager) Tail(i int) *Range {
	switch {
	case i == -1:
		return m.input
	case i == len(m.items):
		return m.output
	case i >= 0 && i < len(m.items):
		return m.items[i].tail()
	}
	panic(outOfRange(i, len(m.items)))
}

// AddToList inserts it at i and links it between its neighbours, then
// re-propagates positions from the predecessor.
func (m *ListManager) AddToList(i int, it *Item) {
	if i < 0 || i > len(m.items) {
		panic(outOfRange(i, len(m.items)))
	}
	m.items = append(m.items, nil)
	copy(m.items[i+1:], m.items[i:])
	m.items[i] = it

	prev := m.Tail(i - 1)
	prev.SetChild(it.Range)
	it.tail().SetChild(m.GetRange(i + 1))
	prev.UpdateChildren()
	it.tail().UpdateChildren()
}

// RemoveFromList unlinks the item at i and returns it.
func (m *ListManager) RemoveFromList(i int) *Item {
	if i < 0 || i >= len(m.items) {
		panic(outOfRange(i, len(m.items)))
	}
	it := m.items[i]
	prev := m.Tail(i - 1)
	prev.SetChild(m.GetRange(i + 1))
	copy(m.items[i:], m.items[i+1:])
	m.items[len(m.items)-1] = nil
	m.items = m.items[:len(m.items)-1]
	it.tail().SetChild(nil)
	prev.UpdateChildren()
	return it
}

// MoveInList relinks the item at from so that it ends up at to.
func (m *ListManager) MoveInList(from, to int) {
	it := m.RemoveFromList(from)
	m.AddToList(to, it)
}

// StartBatch detaches whatever follows the list so that edits inside the
// batch do not propagate past it. The returned func reattaches it and
// propagates once.
func (m *ListManager) StartBatch() (end func()) {
	detached := m.output.child
	m.output.child = nil
	return func() {
		m.output.child = detached
		m.output.UpdateChildren()
	}
}

// UpdateValues re-points every item's value at its position.
func (m *ListManager) UpdateValues() {
	for i, it := range m.items {
		if it.Value != nil {
			it.Value.SetProperty(i)
		}
	}
}

func outOfRange(i, length int) *errors.Error {
	return errors.New("R001").WithField("index", i).WithField("length", length)
}
