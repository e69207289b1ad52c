package reactive

import "github.com/vango-dev/reflow/internal/errors"

// Projection is a value that reads its parent through a mutable key.
type Projection[E any] interface {
	Value[E]

	// Key returns the key the projection currently reads.
	Key() any

	// SetProperty re-points the projection at key and propagates once.
	SetProperty(key any)

	// Deactivate detaches the projection from its parent. It keeps the
	// last value it read.
	Deactivate()
}

// Project returns a writable projection when parent can be written
// through, and a read-only one otherwise.
func Project[E any](parent Node, key any, opts ...Option[E]) Projection[E] {
	if _, ok := parent.(writableParent); ok {
		return InputProperty[E](parent, key, opts...)
	}
	return Property[E](parent, key, opts...)
}

// PropertyValue is a read-only projection of any node through a key.
type PropertyValue[E any] struct {
	base
	parent Node
	key    any
	value  E
	equal  func(a, b E) bool
}

// Property creates a read-only projection of parent at key.
func Property[E any](parent Node, key any, opts ...Option[E]) *PropertyValue[E] {
	o := applyOptions(opts)
	p := &PropertyValue[E]{parent: parent, key: key, equal: o.equal}
	p.init(p, o.name)
	p.value = as[E](getKey(parent.ExtractAny(), key))
	parent.AddDerivedValue(p)
	return p
}

func (p *PropertyValue[E]) Extract() E {
	return p.value
}

func (p *PropertyValue[E]) ExtractAny() any {
	return p.value
}

func (p *PropertyValue[E]) AddUpdateListener(fn func(E)) ListenerID {
	return p.addListener(func() { fn(p.value) })
}

func (p *PropertyValue[E]) Key() any {
	return p.key
}

// Parent returns the projected node.
func (p *PropertyValue[E]) Parent() Node {
	return p.parent
}

func (p *PropertyValue[E]) SetProperty(key any) {
	if strictEqualAny(p.key, key) {
		return
	}
	p.key = key
	p.update()
}

func (p *PropertyValue[E]) Deactivate() {
	p.parent.RemoveDerivedValue(p)
}

// Get returns a nested read-only projection.
func (p *PropertyValue[E]) Get(key any) *PropertyValue[any] {
	return Property[any](p, key)
}

func (p *PropertyValue[E]) update() {
	next := as[E](getKey(p.parent.ExtractAny(), p.key))
	if p.equal(p.value, next) {
		return
	}
	p.value = next
	p.notify()
	p.updateDerived()
}

// InputPropertyValue is a writable projection. Writes go into the
// parent's value at the key and propagate upward through the parents.
type InputPropertyValue[E any] struct {
	base
	parent     writableParent
	key        any
	value      E
	equal      func(a, b E) bool
	properties list[Derived]
}

// InputProperty creates a writable projection of parent at key. parent
// must be an InputValue, an InputPropertyValue or an InputArrayViewValue.
func InputProperty[E any](parent Node, key any, opts ...Option[E]) *InputPropertyValue[E] {
	wp, ok := parent.(writableParent)
	if !ok {
		panic(errors.New("R011").WithField("parent", parent.Name()).WithField("key", key))
	}
	o := applyOptions(opts)
	p := &InputPropertyValue[E]{parent: wp, key: key, equal: o.equal}
	p.init(p, o.name)
	p.value = as[E](getKey(wp.ExtractAny(), key))
	wp.addPropertyValue(p)
	return p
}

func (p *InputPropertyValue[E]) Extract() E {
	return p.value
}

func (p *InputPropertyValue[E]) ExtractAny() any {
	return p.value
}

func (p *InputPropertyValue[E]) AddUpdateListener(fn func(E)) ListenerID {
	return p.addListener(func() { fn(p.value) })
}

func (p *InputPropertyValue[E]) Key() any {
	return p.key
}

// Parent returns the projected node.
func (p *InputPropertyValue[E]) Parent() Node {
	return p.parent
}

// Equal returns the equality function of this projection.
func (p *InputPropertyValue[E]) Equal() func(a, b E) bool {
	return p.equal
}

// Change writes next into the parent at the key unless it equals the
// current value. Ancestors are notified first, then this projection's
// listeners, derived values and nested projections.
func (p *InputPropertyValue[E]) Change(next E) {
	checkAffinity(&p.base)
	if p.equal(p.value, next) {
		return
	}
	p.value = next
	p.parent.setChild(p.key, next)
	p.notify()
	p.updateDerived()
	p.updateProperties()
}

// ChangeWith applies fn to the current value and changes to the result.
func (p *InputPropertyValue[E]) ChangeWith(fn func(E) E) {
	p.Change(fn(p.value))
}

func (p *InputPropertyValue[E]) SetProperty(key any) {
	if strictEqualAny(p.key, key) {
		return
	}
	p.key = key
	p.update()
}

func (p *InputPropertyValue[E]) Deactivate() {
	p.parent.removePropertyValue(p)
}

// Get returns a nested writable projection.
func (p *InputPropertyValue[E]) Get(key any, opts ...Option[any]) *InputPropertyValue[any] {
	return InputProperty[any](p, key, opts...)
}

// RemovePropertyValue stops updating a nested projection.
func (p *InputPropertyValue[E]) RemovePropertyValue(c Derived) {
	p.removePropertyValue(c)
}

func (p *InputPropertyValue[E]) addPropertyValue(c Derived) {
	if p.properties.add(c.ID(), c) {
		p.fireDerive(c)
	}
}

func (p *InputPropertyValue[E]) removePropertyValue(c Derived) {
	p.properties.remove(c.ID())
}

func (p *InputPropertyValue[E]) setChild(key, child any) {
	p.value = as[E](setKey(p.value, key, child))
	p.parent.setChild(p.key, p.value)
	p.notify()
	p.updateDerived()
}

func (p *InputPropertyValue[E]) update() {
	next := as[E](getKey(p.parent.ExtractAny(), p.key))
	if p.equal(p.value, next) {
		return
	}
	p.value = next
	p.notify()
	p.updateDerived()
	p.updateProperties()
}

func (p *InputPropertyValue[E]) updateProperties() {
	for _, e := range p.properties.snapshot() {
		if e.live {
			e.fn.update()
		}
	}
}
