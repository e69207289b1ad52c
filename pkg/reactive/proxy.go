package reactive

// ProxyValue forwards to a target that can be swapped at runtime while
// everything depending on the proxy keeps its registration.
type ProxyValue[T any] struct {
	base
	target Value[T]
}

// NewProxy creates a proxy of target.
func NewProxy[T any](target Value[T]) *ProxyValue[T] {
	p := &ProxyValue[T]{}
	p.init(p, "")
	p.SetTarget(target)
	return p
}

// SetTarget unsubscribes from the current target, subscribes to t and
// propagates once.
func (p *ProxyValue[T]) SetTarget(t Value[T]) {
	if p.target != nil {
		p.target.RemoveDerivedValue(p)
	}
	p.target = t
	t.AddDerivedValue(p)
	p.update()
}

// Target returns the current target.
func (p *ProxyValue[T]) Target() Value[T] {
	return p.target
}

func (p *ProxyValue[T]) Extract() T {
	return p.target.Extract()
}

func (p *ProxyValue[T]) ExtractAny() any {
	return p.target.Extract()
}

func (p *ProxyValue[T]) AddUpdateListener(fn func(T)) ListenerID {
	return p.addListener(func() { fn(p.target.Extract()) })
}

// Get returns a read-only projection of the proxied value at key.
func (p *ProxyValue[T]) Get(key any) *PropertyValue[any] {
	return Property[any](p, key)
}

// Deactivate detaches the proxy from its target.
func (p *ProxyValue[T]) Deactivate() {
	p.target.RemoveDerivedValue(p)
}

func (p *ProxyValue[T]) update() {
	p.notify()
	p.updateDerived()
}
