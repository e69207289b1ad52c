package reactive

import "time"

// ComputedValue is a pure derivation of a fixed set of inputs.
type ComputedValue[T any] struct {
	base
	value   T
	compute func() T
	equal   func(a, b T) bool
}

func newComputed[T any](inputs []Node, compute func() T, opts []Option[T]) *ComputedValue[T] {
	o := applyOptions(opts)
	c := &ComputedValue[T]{compute: compute, equal: o.equal}
	c.init(c, o.name)
	c.value = compute()
	for _, in := range inputs {
		in.AddDerivedValue(c)
	}
	return c
}

// Computed derives a value from src with fn.
func Computed[S, T any](src Value[S], fn func(S) T, opts ...Option[T]) *ComputedValue[T] {
	return newComputed([]Node{src}, func() T { return fn(src.Extract()) }, opts)
}

// Combine derives a value from several inputs. fn reads the inputs
// itself; it is re-run whenever any of them changes.
func Combine[T any](inputs []Node, fn func() T, opts ...Option[T]) *ComputedValue[T] {
	return newComputed(inputs, fn, opts)
}

// Combine2 derives a value from two inputs.
func Combine2[A, B, T any](a Value[A], b Value[B], fn func(A, B) T, opts ...Option[T]) *ComputedValue[T] {
	return newComputed([]Node{a, b}, func() T { return fn(a.Extract(), b.Extract()) }, opts)
}

func (c *ComputedValue[T]) Extract() T {
	return c.value
}

func (c *ComputedValue[T]) ExtractAny() any {
	return c.value
}

func (c *ComputedValue[T]) AddUpdateListener(fn func(T)) ListenerID {
	return c.addListener(func() { fn(c.value) })
}

// Get returns a read-only projection of the computed value at key.
func (c *ComputedValue[T]) Get(key any) *PropertyValue[any] {
	return Property[any](c, key)
}

// Debounce is reserved for time-windowed updates and currently returns
// the value itself.
func (c *ComputedValue[T]) Debounce(time.Duration) *ComputedValue[T] {
	return c
}

func (c *ComputedValue[T]) update() {
	next := c.compute()
	if c.equal(c.value, next) {
		return
	}
	c.value = next
	c.notify()
	c.updateDerived()
}
