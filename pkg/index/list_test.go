package index

import (
	stderrors "errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vango-dev/reflow/internal/errors"
)

type position struct {
	key any
}

func (p *position) SetProperty(key any) {
	p.key = key
}

func newItem(key int, count int) *Item {
	r := New(0)
	r.SetCount(count)
	return &Item{Value: &position{key: key}, Range: r, Unrender: func() {}}
}

func TestOutputFollowsInput(t *testing.T) {
	input := New(0)
	m := NewListManager(input)

	assert.Same(t, m.Output(), input.Child())
	assert.Same(t, input, m.Input())
}

func TestAddToList(t *testing.T) {
	input := New(0)
	m := NewListManager(input)
	it := newItem(0, 0)

	m.AddToList(0, it)

	assert.Equal(t, []*Item{it}, m.Items())
	assert.Equal(t, []*Range{input, it.Range, m.Output()}, input.Chain())
}

func TestAddMultiple(t *testing.T) {
	input := New(0)
	m := NewListManager(input)
	it1, it2, it3 := newItem(0, 1), newItem(1, 1), newItem(2, 1)

	m.AddToList(0, it1)
	m.AddToList(1, it2)
	m.AddToList(0, it3)

	assert.Equal(t, []*Item{it3, it1, it2}, m.Items())
	assert.Equal(t, []*Range{input, it3.Range, it1.Range, it2.Range, m.Output()}, input.Chain())
	assert.Equal(t, 0, it3.Range.Start())
	assert.Equal(t, 1, it1.Range.Start())
	assert.Equal(t, 2, it2.Range.Start())
	assert.Equal(t, 3, m.Output().Start())
}

func TestRemoveFromList(t *testing.T) {
	input := New(0)
	m := NewListManager(input)
	it1, it2, it3 := newItem(0, 2), newItem(1, 3), newItem(2, 1)
	m.AddToList(0, it1)
	m.AddToList(1, it2)
	m.AddToList(2, it3)

	removed := m.RemoveFromList(1)

	assert.Same(t, it2, removed)
	assert.Equal(t, []*Item{it1, it3}, m.Items())
	assert.Equal(t, []*Range{input, it1.Range, it3.Range, m.Output()}, input.Chain())
	assert.Equal(t, 2, it3.Range.Start())
	assert.Equal(t, 3, m.Output().Start())
	assert.Nil(t, it2.Range.Child())
}

func TestItemSegment(t *testing.T) {
	input := New(0)
	m := NewListManager(input)
	first := newItem(0, 1)
	m.AddToList(0, first)

	// An item whose subtree spans two ranges.
	second := newItem(1, 1)
	second.End = New(0)
	second.End.SetCount(2)
	second.Range.SetChild(second.End)
	m.AddToList(1, second)

	assert.Equal(t, []*Range{input, first.Range, second.Range, second.End, m.Output()}, input.Chain())
	assert.Equal(t, 2, second.End.Start())
	assert.Equal(t, 4, m.Output().Start())
	assert.Same(t, second.End, m.Tail(1))

	m.MoveInList(1, 0)
	assert.Equal(t, []*Range{input, second.Range, second.End, first.Range, m.Output()}, input.Chain())
	assert.Equal(t, 0, second.Range.Start())
	assert.Equal(t, 3, first.Range.Start())
	assert.Equal(t, 4, m.Output().Start())
}

func TestMoveWithEmptyItems(t *testing.T) {
	input := New(0)
	m := NewListManager(input)
	items := []*Item{newItem(0, 0), newItem(1, 2), newItem(2, 0), newItem(3, 1)}
	for i, it := range items {
		m.AddToList(i, it)
	}

	m.MoveInList(1, 3)
	m.MoveInList(0, 2)

	var starts []int
	for _, r := range input.Chain() {
		starts = append(starts, r.Start())
	}
	want := []int{0}
	pos := 0
	for _, it := range m.Items() {
		want = append(want, pos)
		pos += it.Range.Count()
	}
	want = append(want, pos)
	assert.Equal(t, want, starts)
}

func TestGetRange(t *testing.T) {
	input := New(0)
	m := NewListManager(input)
	it1, it2 := newItem(0, 0), newItem(1, 0)
	m.AddToList(0, it1)
	m.AddToList(1, it2)

	assert.Same(t, input, m.GetRange(-1))
	assert.Same(t, it1.Range, m.GetRange(0))
	assert.Same(t, it2.Range, m.GetRange(1))
	assert.Same(t, m.Output(), m.GetRange(2))
	assert.Same(t, it2, m.Item(1))
	assert.Equal(t, 2, m.Len())
}

func TestGetRangeOutOfRange(t *testing.T) {
	m := NewListManager(New(0))
	m.AddToList(0, newItem(0, 0))

	for _, i := range []int{-2, 2} {
		func() {
			defer func() {
				r := recover()
				require.NotNil(t, r, "GetRange(%d) should panic", i)
				var e *errors.Error
				require.True(t, stderrors.As(r.(error), &e))
				assert.Equal(t, "R001", e.Code)
				v, _ := e.Field("index")
				assert.Equal(t, i, v)
			}()
			m.GetRange(i)
		}()
	}
}

func TestStartBatch(t *testing.T) {
	input := New(0)
	m := NewListManager(input)
	m.AddToList(0, newItem(0, 1))
	after := m.Output().Next()

	end := m.StartBatch()
	assert.Nil(t, m.Output().Child())

	m.AddToList(1, newItem(1, 4))
	assert.Equal(t, 1, after.Start())

	end()
	assert.Same(t, after, m.Output().Child())
	assert.Equal(t, 5, after.Start())
}

func TestUpdateValues(t *testing.T) {
	m := NewListManager(New(0))
	it1, it2 := newItem(0, 0), newItem(1, 0)
	m.AddToList(0, it1)
	m.AddToList(0, it2)

	assert.Equal(t, 0, it1.Value.(*position).key)
	assert.Equal(t, 1, it2.Value.(*position).key)

	m.UpdateValues()

	assert.Equal(t, 1, it1.Value.(*position).key)
	assert.Equal(t, 0, it2.Value.(*position).key)
}
