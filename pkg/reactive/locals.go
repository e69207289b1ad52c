package reactive

// Locals collects the values a component creates for itself so the
// renderer can watch them for derivations made by nested children.
type Locals struct {
	values []Node
}

// NewLocals returns an empty collection.
func NewLocals() *Locals {
	return &Locals{}
}

// CreateState creates an input value owned by l.
func CreateState[T any](l *Locals, v T, opts ...Option[T]) *InputValue[T] {
	in := NewInput(v, opts...)
	l.Add(in)
	return in
}

// Add records an existing value as owned by l.
func (l *Locals) Add(v Node) {
	l.values = append(l.values, v)
}

// Values returns the owned values in creation order.
func (l *Locals) Values() []Node {
	if l == nil {
		return nil
	}
	return l.values
}
