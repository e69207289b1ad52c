package reactive

import (
	"slices"

	"github.com/vango-dev/reflow/internal/errors"
)

// InputArrayViewValue is a sorted view over a slice value. Writes
// through the view's projections land at the matching position of the
// source when the source is writable.
type InputArrayViewValue[E any] struct {
	base
	source     Value[[]E]
	writable   writableParent
	cmp        func(a, b E) int
	view       []E
	indexes    []int
	properties list[Derived]
}

// Sorted returns a view of source ordered by cmp. The sort is stable and
// a nil cmp keeps the source order.
func Sorted[E any](source Value[[]E], cmp func(a, b E) int) *InputArrayViewValue[E] {
	s := &InputArrayViewValue[E]{source: source, cmp: cmp}
	s.writable, _ = source.(writableParent)
	s.init(s, "")
	s.sort()
	source.AddDerivedValue(s)
	return s
}

func (s *InputArrayViewValue[E]) Extract() []E {
	return s.view
}

func (s *InputArrayViewValue[E]) ExtractAny() any {
	return s.view
}

func (s *InputArrayViewValue[E]) AddUpdateListener(fn func([]E)) ListenerID {
	return s.addListener(func() { fn(s.view) })
}

// Indexes maps each view position to its position in the source.
func (s *InputArrayViewValue[E]) Indexes() []int {
	return s.indexes
}

// Get returns a writable projection of the view at position i.
func (s *InputArrayViewValue[E]) Get(i int, opts ...Option[E]) *InputPropertyValue[E] {
	return InputProperty[E](s, i, opts...)
}

// Deactivate detaches the view from its source.
func (s *InputArrayViewValue[E]) Deactivate() {
	s.source.RemoveDerivedValue(s)
}

func (s *InputArrayViewValue[E]) sort() {
	src := s.source.Extract()
	idx := make([]int, len(src))
	for i := range idx {
		idx[i] = i
	}
	if s.cmp != nil {
		slices.SortStableFunc(idx, func(a, b int) int {
			return s.cmp(src[a], src[b])
		})
	}
	view := make([]E, len(src))
	for i, j := range idx {
		view[i] = src[j]
	}
	s.indexes = idx
	s.view = view
}

func (s *InputArrayViewValue[E]) update() {
	s.sort()
	s.notify()
	s.updateDerived()
	for _, e := range s.properties.snapshot() {
		if e.live {
			e.fn.update()
		}
	}
}

func (s *InputArrayViewValue[E]) addPropertyValue(p Derived) {
	if s.properties.add(p.ID(), p) {
		s.fireDerive(p)
	}
}

func (s *InputArrayViewValue[E]) removePropertyValue(p Derived) {
	s.properties.remove(p.ID())
}

// setChild writes into the source. The source propagates back into the
// view through update, which re-sorts.
func (s *InputArrayViewValue[E]) setChild(key, child any) {
	if s.writable == nil {
		panic(errors.New("R011").WithField("parent", s.source.Name()))
	}
	i, ok := intKey(key)
	if !ok || i < 0 || i >= len(s.indexes) {
		panic(errors.New("R001").WithField("index", key).WithField("length", len(s.indexes)))
	}
	s.writable.setChild(s.indexes[i], child)
}
