package reactive

import "time"

// writableParent is a node whose value can be written through a keyed
// child projection.
type writableParent interface {
	Node
	addPropertyValue(p Derived)
	removePropertyValue(p Derived)

	// setChild stores child at key and propagates to this node's
	// listeners and derived values, then upward. Sibling projections
	// are not re-derived.
	setChild(key, child any)
}

// InputValue is a mutable root of the value graph.
type InputValue[T any] struct {
	base
	value      T
	equal      func(a, b T) bool
	properties list[Derived]
}

// NewInput creates an InputValue holding v.
func NewInput[T any](v T, opts ...Option[T]) *InputValue[T] {
	o := applyOptions(opts)
	in := &InputValue[T]{value: v, equal: o.equal}
	in.init(in, o.name)
	return in
}

// Extract returns the current value.
func (v *InputValue[T]) Extract() T {
	return v.value
}

// ExtractAny returns the current value.
func (v *InputValue[T]) ExtractAny() any {
	return v.value
}

// AddUpdateListener calls fn now and after every accepted change.
func (v *InputValue[T]) AddUpdateListener(fn func(T)) ListenerID {
	return v.addListener(func() { fn(v.value) })
}

// Equal returns the equality function of this value.
func (v *InputValue[T]) Equal() func(a, b T) bool {
	return v.equal
}

// Change stores next unless it equals the current value, then notifies
// update listeners, derived values and property projections, in that
// order.
func (v *InputValue[T]) Change(next T) {
	checkAffinity(&v.base)
	if v.equal(v.value, next) {
		return
	}
	v.value = next
	v.notify()
	v.updateDerived()
	v.updateProperties()
}

// ChangeWith applies fn to the current value and changes to the result.
func (v *InputValue[T]) ChangeWith(fn func(T) T) {
	v.Change(fn(v.value))
}

// Debounce is reserved for time-windowed updates and currently returns
// the value itself.
func (v *InputValue[T]) Debounce(time.Duration) *InputValue[T] {
	return v
}

// Get returns a writable projection of the value at key.
func (v *InputValue[T]) Get(key any, opts ...Option[any]) *InputPropertyValue[any] {
	return InputProperty[any](v, key, opts...)
}

// RemovePropertyValue stops updating p when this value changes.
func (v *InputValue[T]) RemovePropertyValue(p Derived) {
	v.removePropertyValue(p)
}

// PropertyCount returns the number of attached property projections.
func (v *InputValue[T]) PropertyCount() int {
	return v.properties.len()
}

func (v *InputValue[T]) addPropertyValue(p Derived) {
	if v.properties.add(p.ID(), p) {
		v.fireDerive(p)
	}
}

func (v *InputValue[T]) removePropertyValue(p Derived) {
	v.properties.remove(p.ID())
}

func (v *InputValue[T]) setChild(key, child any) {
	checkAffinity(&v.base)
	v.value = as[T](setKey(v.value, key, child))
	v.notify()
	v.updateDerived()
}

func (v *InputValue[T]) updateProperties() {
	for _, e := range v.properties.snapshot() {
		if e.live {
			e.fn.update()
		}
	}
}
